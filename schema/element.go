package schema

// Element is an element declaration (Name set) or a reference to a global
// declaration (Ref set). A declaration's type is given by a type= name or
// by one inline simple or complex type; the setters keep these exclusive.
type Element struct {
	Identifiable        `yaml:",inline"`
	Annotated           `yaml:",inline"`
	Name                string                `yaml:"name,omitempty"`
	Ref                 QualifiedName         `yaml:"ref,omitempty"`
	SubstitutionGroup   QualifiedName         `yaml:"substitutionGroup,omitempty"`
	Default             string                `yaml:"default,omitempty"`
	Fixed               string                `yaml:"fixed,omitempty"`
	Form                Form                  `yaml:"form,omitempty"`
	Block               DerivationSet         `yaml:"block,omitempty"`
	Final               DerivationSet         `yaml:"final,omitempty"`
	Nillable            bool                  `yaml:"nillable,omitempty"`
	Abstract            bool                  `yaml:"abstract,omitempty"`
	Occurs              Occurs                `yaml:"occurs"`
	IdentityConstraints []*IdentityConstraint `yaml:"identityConstraints,omitempty"`
	typeName            QualifiedName
	simpleType          *SimpleType
	complexType         *ComplexType
}

// NewElement returns an element declaration with default bounds.
func NewElement(name string) *Element {
	return &Element{Name: name, Occurs: DefaultOccurs()}
}

// NewElementRef returns an element reference with default bounds.
func NewElementRef(ref QualifiedName) *Element {
	return &Element{Ref: ref, Occurs: DefaultOccurs()}
}

// Occurrence implements Particle.
func (e *Element) Occurrence() Occurs { return e.Occurs }

// IsReference reports whether the element refers to a global declaration.
func (e *Element) IsReference() bool { return !e.Ref.IsZero() }

// TypeName returns the type= name, zero when absent.
func (e *Element) TypeName() QualifiedName { return e.typeName }

// SimpleType returns the inline simple type, or nil.
func (e *Element) SimpleType() *SimpleType { return e.simpleType }

// ComplexType returns the inline complex type, or nil.
func (e *Element) ComplexType() *ComplexType { return e.complexType }

// SetType sets the type= name and drops any inline type.
func (e *Element) SetType(name QualifiedName) {
	e.simpleType = nil
	e.complexType = nil
	e.typeName = name
}

// SetSimpleType installs an inline simple type and drops the other
// alternatives.
func (e *Element) SetSimpleType(st *SimpleType) {
	e.typeName = QualifiedName{}
	e.complexType = nil
	e.simpleType = st
}

// SetComplexType installs an inline complex type and drops the other
// alternatives.
func (e *Element) SetComplexType(ct *ComplexType) {
	e.typeName = QualifiedName{}
	e.simpleType = nil
	e.complexType = ct
}

// AddIdentityConstraint appends a unique, key or keyref constraint.
func (e *Element) AddIdentityConstraint(ic *IdentityConstraint) {
	e.IdentityConstraints = append(e.IdentityConstraints, ic)
}

func (e *Element) cloneParticle() Particle { return e.Clone() }

// Clone returns a deep copy.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Annotated = e.Annotated.clone()
	clone.simpleType = e.simpleType.Clone()
	clone.complexType = e.complexType.Clone()
	if e.IdentityConstraints != nil {
		clone.IdentityConstraints = make([]*IdentityConstraint, len(e.IdentityConstraints))
		for i, ic := range e.IdentityConstraints {
			clone.IdentityConstraints[i] = ic.Clone()
		}
	}
	return &clone
}
