package schema

// AbstractAttribute is an entry of an attribute list: *Attribute or
// *AttributeGroup.
type AbstractAttribute interface {
	CloneAttribute() AbstractAttribute
	isAttribute()
}

// Attribute is an attribute declaration (Name set) or reference (Ref set).
// The type is given by Type or by an inline SimpleType, never both.
type Attribute struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Name         string        `yaml:"name,omitempty"`
	Ref          QualifiedName `yaml:"ref,omitempty"`
	Type         QualifiedName `yaml:"type,omitempty"`
	SimpleType   *SimpleType   `yaml:"simpleType,omitempty"`
	Use          AttributeUse  `yaml:"use"`
	Default      string        `yaml:"default,omitempty"`
	Fixed        string        `yaml:"fixed,omitempty"`
	Form         Form          `yaml:"form,omitempty"`
}

// IsReference reports whether the attribute refers to a global declaration.
func (a *Attribute) IsReference() bool { return !a.Ref.IsZero() }

func (a *Attribute) isAttribute() {}

// CloneAttribute implements AbstractAttribute.
func (a *Attribute) CloneAttribute() AbstractAttribute { return a.Clone() }

// Clone returns a deep copy.
func (a *Attribute) Clone() *Attribute {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Annotated = a.Annotated.clone()
	clone.SimpleType = a.SimpleType.Clone()
	return &clone
}

// AttributeGroup is a named attribute group definition or a reference.
type AttributeGroup struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Name         string              `yaml:"name,omitempty"`
	Ref          QualifiedName       `yaml:"ref,omitempty"`
	Attributes   []AbstractAttribute `yaml:"-"`
	AnyAttribute *AnyAttribute       `yaml:"anyAttribute,omitempty"`
}

// IsReference reports whether the group refers to a global definition.
func (g *AttributeGroup) IsReference() bool { return !g.Ref.IsZero() }

func (g *AttributeGroup) isAttribute() {}

func (g *AttributeGroup) isRedefinable() {}

// CloneAttribute implements AbstractAttribute.
func (g *AttributeGroup) CloneAttribute() AbstractAttribute { return g.Clone() }

// Clone returns a deep copy.
func (g *AttributeGroup) Clone() *AttributeGroup {
	if g == nil {
		return nil
	}
	clone := *g
	clone.Annotated = g.Annotated.clone()
	clone.Attributes = cloneAttributes(g.Attributes)
	clone.AnyAttribute = g.AnyAttribute.Clone()
	return &clone
}

func cloneAttributes(in []AbstractAttribute) []AbstractAttribute {
	if in == nil {
		return nil
	}
	out := make([]AbstractAttribute, len(in))
	for i, a := range in {
		out[i] = a.CloneAttribute()
	}
	return out
}
