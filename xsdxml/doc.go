// Package xsdxml reads XML Schema documents into the schema object model
// and writes the model back as XML.
//
// Every ReadX function expects the cursor on the start tag of X and leaves
// it just past the matching end tag. The admissible children of each
// grammar production are declared as tables mapping a child tag to the
// handler that reads the child and installs it into its parent; a single
// driver walks the children of the current element through those tables.
// The first grammar violation aborts the read and no partially built
// component is returned.
package xsdxml
