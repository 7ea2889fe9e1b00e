// Package schema holds the in-memory XML Schema object model.
//
// A Schema is the root of a strictly tree-shaped graph: every component is
// owned by exactly one parent and Clone produces a non-aliased deep copy.
// References between components (ref=, type=, base=, refer=) are stored as
// QualifiedName values and are never dereferenced by this package.
package schema
