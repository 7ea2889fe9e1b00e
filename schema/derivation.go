package schema

// TypeDerivation is the derivation step of a SimpleContent, ComplexContent
// or SimpleType: *Extension, *RestrictionSimpleContent,
// *RestrictionComplexContent or *RestrictionSimpleType.
type TypeDerivation interface {
	BaseType() QualifiedName
	CloneDerivation() TypeDerivation
	isTypeDerivation()
}

// Extension derives a type by extending Base. Content is only used under
// complexContent.
type Extension struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Base         QualifiedName       `yaml:"base"`
	Content      Content             `yaml:"-"`
	Attributes   []AbstractAttribute `yaml:"-"`
	AnyAttribute *AnyAttribute       `yaml:"anyAttribute,omitempty"`
}

// BaseType implements TypeDerivation.
func (e *Extension) BaseType() QualifiedName { return e.Base }

func (e *Extension) isTypeDerivation() {}

// CloneDerivation implements TypeDerivation.
func (e *Extension) CloneDerivation() TypeDerivation { return e.Clone() }

// Clone returns a deep copy.
func (e *Extension) Clone() *Extension {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Annotated = e.Annotated.clone()
	clone.Content = cloneContent(e.Content)
	clone.Attributes = cloneAttributes(e.Attributes)
	clone.AnyAttribute = e.AnyAttribute.Clone()
	return &clone
}

// RestrictionSimpleContent restricts a type with simple content.
type RestrictionSimpleContent struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Base         QualifiedName       `yaml:"base"`
	SimpleType   *SimpleType         `yaml:"simpleType,omitempty"`
	Facets       []Facet             `yaml:"facets,omitempty"`
	Attributes   []AbstractAttribute `yaml:"-"`
	AnyAttribute *AnyAttribute       `yaml:"anyAttribute,omitempty"`
}

// BaseType implements TypeDerivation.
func (r *RestrictionSimpleContent) BaseType() QualifiedName { return r.Base }

func (r *RestrictionSimpleContent) isTypeDerivation() {}

// CloneDerivation implements TypeDerivation.
func (r *RestrictionSimpleContent) CloneDerivation() TypeDerivation { return r.Clone() }

// Clone returns a deep copy.
func (r *RestrictionSimpleContent) Clone() *RestrictionSimpleContent {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Annotated = r.Annotated.clone()
	clone.SimpleType = r.SimpleType.Clone()
	clone.Facets = cloneFacets(r.Facets)
	clone.Attributes = cloneAttributes(r.Attributes)
	clone.AnyAttribute = r.AnyAttribute.Clone()
	return &clone
}

// RestrictionComplexContent restricts a type with complex content.
type RestrictionComplexContent struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Base         QualifiedName       `yaml:"base"`
	Content      Content             `yaml:"-"`
	Attributes   []AbstractAttribute `yaml:"-"`
	AnyAttribute *AnyAttribute       `yaml:"anyAttribute,omitempty"`
}

// BaseType implements TypeDerivation.
func (r *RestrictionComplexContent) BaseType() QualifiedName { return r.Base }

func (r *RestrictionComplexContent) isTypeDerivation() {}

// CloneDerivation implements TypeDerivation.
func (r *RestrictionComplexContent) CloneDerivation() TypeDerivation { return r.Clone() }

// Clone returns a deep copy.
func (r *RestrictionComplexContent) Clone() *RestrictionComplexContent {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Annotated = r.Annotated.clone()
	clone.Content = cloneContent(r.Content)
	clone.Attributes = cloneAttributes(r.Attributes)
	clone.AnyAttribute = r.AnyAttribute.Clone()
	return &clone
}

// RestrictionSimpleType restricts a simple type by facets. Documents
// always carry Base unless they were read with anonymous restriction
// bases allowed, where SimpleType then supplies the base type.
type RestrictionSimpleType struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Base         QualifiedName `yaml:"base,omitempty"`
	SimpleType   *SimpleType   `yaml:"simpleType,omitempty"`
	Facets       []Facet       `yaml:"facets,omitempty"`
}

// BaseType implements TypeDerivation.
func (r *RestrictionSimpleType) BaseType() QualifiedName { return r.Base }

func (r *RestrictionSimpleType) isTypeDerivation() {}

func (r *RestrictionSimpleType) isSimpleTypeConstructor() {}

// CloneDerivation implements TypeDerivation.
func (r *RestrictionSimpleType) CloneDerivation() TypeDerivation { return r.Clone() }

func (r *RestrictionSimpleType) cloneConstructor() SimpleTypeConstructor { return r.Clone() }

// AddFacet appends a facet in document order.
func (r *RestrictionSimpleType) AddFacet(f Facet) {
	r.Facets = append(r.Facets, f)
}

// Clone returns a deep copy.
func (r *RestrictionSimpleType) Clone() *RestrictionSimpleType {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Annotated = r.Annotated.clone()
	clone.SimpleType = r.SimpleType.Clone()
	clone.Facets = cloneFacets(r.Facets)
	return &clone
}

// SimpleContent holds exactly one of an *Extension or a
// *RestrictionSimpleContent.
type SimpleContent struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	derivation   TypeDerivation
}

// Derivation returns the extension or restriction.
func (s *SimpleContent) Derivation() TypeDerivation { return s.derivation }

// Extension returns the extension, or nil.
func (s *SimpleContent) Extension() *Extension {
	ext, _ := s.derivation.(*Extension)
	return ext
}

// Restriction returns the restriction, or nil.
func (s *SimpleContent) Restriction() *RestrictionSimpleContent {
	r, _ := s.derivation.(*RestrictionSimpleContent)
	return r
}

// SetExtension replaces the derivation with ext.
func (s *SimpleContent) SetExtension(ext *Extension) {
	s.derivation = nil
	if ext != nil {
		s.derivation = ext
	}
}

// SetRestriction replaces the derivation with r.
func (s *SimpleContent) SetRestriction(r *RestrictionSimpleContent) {
	s.derivation = nil
	if r != nil {
		s.derivation = r
	}
}

// Clone returns a deep copy.
func (s *SimpleContent) Clone() *SimpleContent {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Annotated = s.Annotated.clone()
	if s.derivation != nil {
		clone.derivation = s.derivation.CloneDerivation()
	}
	return &clone
}

// ComplexContent holds exactly one of an *Extension or a
// *RestrictionComplexContent.
type ComplexContent struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Mixed        bool `yaml:"mixed,omitempty"`
	derivation   TypeDerivation
}

// Derivation returns the extension or restriction.
func (c *ComplexContent) Derivation() TypeDerivation { return c.derivation }

// Extension returns the extension, or nil.
func (c *ComplexContent) Extension() *Extension {
	ext, _ := c.derivation.(*Extension)
	return ext
}

// Restriction returns the restriction, or nil.
func (c *ComplexContent) Restriction() *RestrictionComplexContent {
	r, _ := c.derivation.(*RestrictionComplexContent)
	return r
}

// SetExtension replaces the derivation with ext.
func (c *ComplexContent) SetExtension(ext *Extension) {
	c.derivation = nil
	if ext != nil {
		c.derivation = ext
	}
}

// SetRestriction replaces the derivation with r.
func (c *ComplexContent) SetRestriction(r *RestrictionComplexContent) {
	c.derivation = nil
	if r != nil {
		c.derivation = r
	}
}

// Clone returns a deep copy.
func (c *ComplexContent) Clone() *ComplexContent {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Annotated = c.Annotated.clone()
	if c.derivation != nil {
		clone.derivation = c.derivation.CloneDerivation()
	}
	return &clone
}
