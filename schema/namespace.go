package schema

import "iter"

// XSDNamespace is the XML Schema namespace URI.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// NamespaceMap holds the namespace declarations of a schema document.
// Every prefix maps to one URI; several prefixes may share a URI, as in
// xmlns="urn:t" xmlns:tns="urn:t". Prefix lookups return the prefix bound
// most recently. Iteration follows binding order.
type NamespaceMap struct {
	byPrefix map[string]string
	byURI    map[string]string
	order    []string
}

// NewNamespaceMap returns an empty map.
func NewNamespaceMap() *NamespaceMap {
	return &NamespaceMap{
		byPrefix: make(map[string]string),
		byURI:    make(map[string]string),
	}
}

// Bind binds prefix to uri, replacing any earlier binding of prefix. The
// empty prefix is the default namespace.
func (m *NamespaceMap) Bind(prefix, uri string) {
	if m.byPrefix == nil {
		m.byPrefix = make(map[string]string)
		m.byURI = make(map[string]string)
	}
	if oldURI, ok := m.byPrefix[prefix]; ok {
		m.removeFromOrder(prefix)
		if m.byURI[oldURI] == prefix {
			m.rebindURI(oldURI)
		}
	}
	m.byPrefix[prefix] = uri
	m.byURI[uri] = prefix
	m.order = append(m.order, prefix)
}

// rebindURI points uri at the latest prefix still bound to it.
func (m *NamespaceMap) rebindURI(uri string) {
	for i := len(m.order) - 1; i >= 0; i-- {
		if p := m.order[i]; m.byPrefix[p] == uri {
			m.byURI[uri] = p
			return
		}
	}
	delete(m.byURI, uri)
}

func (m *NamespaceMap) removeFromOrder(prefix string) {
	for i, p := range m.order {
		if p == prefix {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// URI returns the URI bound to prefix.
func (m *NamespaceMap) URI(prefix string) (string, bool) {
	if m == nil {
		return "", false
	}
	uri, ok := m.byPrefix[prefix]
	return uri, ok
}

// Prefix returns the prefix bound most recently to uri.
func (m *NamespaceMap) Prefix(uri string) (string, bool) {
	if m == nil {
		return "", false
	}
	prefix, ok := m.byURI[uri]
	return prefix, ok
}

// Len returns the number of bindings.
func (m *NamespaceMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// All yields prefix/URI pairs in binding order.
func (m *NamespaceMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, prefix := range m.order {
			if !yield(prefix, m.byPrefix[prefix]) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (m *NamespaceMap) Clone() *NamespaceMap {
	if m == nil {
		return nil
	}
	clone := NewNamespaceMap()
	for prefix, uri := range m.All() {
		clone.Bind(prefix, uri)
	}
	return clone
}

// MarshalYAML renders the bindings as a prefix to URI mapping.
func (m *NamespaceMap) MarshalYAML() (any, error) {
	out := make(map[string]string, m.Len())
	for prefix, uri := range m.All() {
		out[prefix] = uri
	}
	return out, nil
}
