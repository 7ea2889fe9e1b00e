package schema

// ComplexType is a complex type definition. Its content is one of three
// exclusive branches: a SimpleContent, a ComplexContent, or a particle
// Content together with an attribute list and an optional attribute
// wildcard. The setters keep the branches exclusive.
type ComplexType struct {
	Identifiable   `yaml:",inline"`
	Annotated      `yaml:",inline"`
	Name           string        `yaml:"name,omitempty"`
	Abstract       bool          `yaml:"abstract,omitempty"`
	Mixed          bool          `yaml:"mixed,omitempty"`
	Block          DerivationSet `yaml:"block,omitempty"`
	Final          DerivationSet `yaml:"final,omitempty"`
	simpleContent  *SimpleContent
	complexContent *ComplexContent
	content        Content
	attributes     []AbstractAttribute
	anyAttribute   *AnyAttribute
}

// NewComplexType returns an empty complex type with the given name.
func NewComplexType(name string) *ComplexType {
	return &ComplexType{Name: name}
}

// SimpleContent returns the simple content branch, or nil.
func (c *ComplexType) SimpleContent() *SimpleContent { return c.simpleContent }

// ComplexContent returns the complex content branch, or nil.
func (c *ComplexType) ComplexContent() *ComplexContent { return c.complexContent }

// Content returns the particle of the particle branch, or nil.
func (c *ComplexType) Content() Content { return c.content }

// Attributes returns the attribute list of the particle branch.
func (c *ComplexType) Attributes() []AbstractAttribute { return c.attributes }

// AnyAttribute returns the attribute wildcard of the particle branch, or nil.
func (c *ComplexType) AnyAttribute() *AnyAttribute { return c.anyAttribute }

// IsEmpty reports whether no branch is set.
func (c *ComplexType) IsEmpty() bool {
	return c.simpleContent == nil && c.complexContent == nil && c.content == nil &&
		len(c.attributes) == 0 && c.anyAttribute == nil
}

// SetSimpleContent installs sc and clears every other branch.
func (c *ComplexType) SetSimpleContent(sc *SimpleContent) {
	c.clearParticleBranch()
	c.complexContent = nil
	c.simpleContent = sc
}

// SetComplexContent installs cc and clears every other branch.
func (c *ComplexType) SetComplexContent(cc *ComplexContent) {
	c.clearParticleBranch()
	c.simpleContent = nil
	c.complexContent = cc
}

// SetContent installs the particle and clears simple and complex content.
func (c *ComplexType) SetContent(content Content) {
	c.clearDerivedBranches()
	c.content = content
}

// AddAttribute appends to the attribute list and clears simple and complex
// content.
func (c *ComplexType) AddAttribute(attr AbstractAttribute) {
	c.clearDerivedBranches()
	c.attributes = append(c.attributes, attr)
}

// SetAnyAttribute installs the wildcard and clears simple and complex
// content.
func (c *ComplexType) SetAnyAttribute(anyAttr *AnyAttribute) {
	c.clearDerivedBranches()
	c.anyAttribute = anyAttr
}

func (c *ComplexType) clearParticleBranch() {
	c.content = nil
	c.attributes = nil
	c.anyAttribute = nil
}

func (c *ComplexType) clearDerivedBranches() {
	c.simpleContent = nil
	c.complexContent = nil
}

func (c *ComplexType) isRedefinable() {}

// Clone returns a deep copy.
func (c *ComplexType) Clone() *ComplexType {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Annotated = c.Annotated.clone()
	clone.simpleContent = c.simpleContent.Clone()
	clone.complexContent = c.complexContent.Clone()
	clone.content = cloneContent(c.content)
	clone.attributes = cloneAttributes(c.attributes)
	clone.anyAttribute = c.anyAttribute.Clone()
	return &clone
}
