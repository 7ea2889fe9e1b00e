package schema

// Schema is the root of a parsed schema document. It owns every top-level
// component in document order, grouped by kind.
type Schema struct {
	Identifiable         `yaml:",inline"`
	TargetNamespace      string            `yaml:"targetNamespace,omitempty"`
	Version              string            `yaml:"version,omitempty"`
	Lang                 string            `yaml:"lang,omitempty"`
	AttributeFormDefault Form              `yaml:"attributeFormDefault,omitempty"`
	ElementFormDefault   Form              `yaml:"elementFormDefault,omitempty"`
	BlockDefault         DerivationSet     `yaml:"blockDefault,omitempty"`
	FinalDefault         DerivationSet     `yaml:"finalDefault,omitempty"`
	Namespaces           *NamespaceMap     `yaml:"namespaces,omitempty"`
	Includes             []*Include        `yaml:"includes,omitempty"`
	Imports              []*Import         `yaml:"imports,omitempty"`
	Redefines            []*Redefine       `yaml:"redefines,omitempty"`
	Annotations          []*Annotation     `yaml:"annotations,omitempty"`
	SimpleTypes          []*SimpleType     `yaml:"simpleTypes,omitempty"`
	ComplexTypes         []*ComplexType    `yaml:"complexTypes,omitempty"`
	Groups               []*Group          `yaml:"groups,omitempty"`
	AttributeGroups      []*AttributeGroup `yaml:"attributeGroups,omitempty"`
	Elements             []*Element        `yaml:"elements,omitempty"`
	Attributes           []*Attribute      `yaml:"attributes,omitempty"`
	Notations            []*Notation       `yaml:"notations,omitempty"`
}

// NewSchema returns an empty schema with an empty namespace map.
func NewSchema() *Schema {
	return &Schema{Namespaces: NewNamespaceMap()}
}

// XSDPrefix returns the prefix bound to the XML Schema namespace, or "xs"
// when none is bound.
func (s *Schema) XSDPrefix() string {
	if prefix, ok := s.Namespaces.Prefix(XSDNamespace); ok {
		return prefix
	}
	return "xs"
}

// ResolveNamespace returns the URI bound to the prefix of name.
func (s *Schema) ResolveNamespace(name QualifiedName) (string, bool) {
	return s.Namespaces.URI(name.Prefix)
}

// FindElement returns the global element declaration with the given name.
func (s *Schema) FindElement(name string) *Element {
	for _, e := range s.Elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// FindAttribute returns the global attribute declaration with the given name.
func (s *Schema) FindAttribute(name string) *Attribute {
	for _, a := range s.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// FindComplexType returns the global complex type with the given name.
func (s *Schema) FindComplexType(name string) *ComplexType {
	for _, ct := range s.ComplexTypes {
		if ct.Name == name {
			return ct
		}
	}
	return nil
}

// FindSimpleType returns the global simple type with the given name.
func (s *Schema) FindSimpleType(name string) *SimpleType {
	for _, st := range s.SimpleTypes {
		if st.Name == name {
			return st
		}
	}
	return nil
}

// FindGroup returns the global model group with the given name.
func (s *Schema) FindGroup(name string) *Group {
	for _, g := range s.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FindAttributeGroup returns the global attribute group with the given name.
func (s *Schema) FindAttributeGroup(name string) *AttributeGroup {
	for _, g := range s.AttributeGroups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Clone returns a deep copy sharing no node with s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Namespaces = s.Namespaces.Clone()
	clone.Includes = cloneAll(s.Includes, (*Include).Clone)
	clone.Imports = cloneAll(s.Imports, (*Import).Clone)
	clone.Redefines = cloneAll(s.Redefines, (*Redefine).Clone)
	clone.Annotations = cloneAll(s.Annotations, (*Annotation).Clone)
	clone.SimpleTypes = cloneAll(s.SimpleTypes, (*SimpleType).Clone)
	clone.ComplexTypes = cloneAll(s.ComplexTypes, (*ComplexType).Clone)
	clone.Groups = cloneAll(s.Groups, (*Group).Clone)
	clone.AttributeGroups = cloneAll(s.AttributeGroups, (*AttributeGroup).Clone)
	clone.Elements = cloneAll(s.Elements, (*Element).Clone)
	clone.Attributes = cloneAll(s.Attributes, (*Attribute).Clone)
	clone.Notations = cloneAll(s.Notations, (*Notation).Clone)
	return &clone
}

func cloneAll[T any](in []*T, cloneFn func(*T) *T) []*T {
	if in == nil {
		return nil
	}
	out := make([]*T, len(in))
	for i, v := range in {
		out[i] = cloneFn(v)
	}
	return out
}
