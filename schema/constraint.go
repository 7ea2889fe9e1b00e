package schema

// IdentityConstraintKind distinguishes unique, key and keyref.
type IdentityConstraintKind uint8

const (
	UniqueConstraint IdentityConstraintKind = iota
	KeyConstraint
	KeyRefConstraint
)

// String returns the element name of the constraint kind.
func (k IdentityConstraintKind) String() string {
	switch k {
	case KeyConstraint:
		return "key"
	case KeyRefConstraint:
		return "keyref"
	default:
		return "unique"
	}
}

// MarshalYAML renders the kind as its element name.
func (k IdentityConstraintKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Selector is the selector XPath of an identity constraint.
type Selector struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	XPath        string `yaml:"xpath"`
}

// Clone returns a deep copy.
func (s *Selector) Clone() *Selector {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Annotated = s.Annotated.clone()
	return &clone
}

// Field is one field XPath of an identity constraint.
type Field struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	XPath        string `yaml:"xpath"`
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Annotated = f.Annotated.clone()
	return &clone
}

// IdentityConstraint is a unique, key or keyref declaration. Refer names the
// key or unique constraint a keyref points to; it is stored by name and
// never resolved here.
type IdentityConstraint struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Kind         IdentityConstraintKind `yaml:"kind"`
	Name         string                 `yaml:"name"`
	Selector     *Selector              `yaml:"selector"`
	Fields       []*Field               `yaml:"fields"`
	Refer        QualifiedName          `yaml:"refer,omitempty"`
}

// NewUnique returns a unique constraint.
func NewUnique(name string) *IdentityConstraint {
	return &IdentityConstraint{Kind: UniqueConstraint, Name: name}
}

// NewKey returns a key constraint.
func NewKey(name string) *IdentityConstraint {
	return &IdentityConstraint{Kind: KeyConstraint, Name: name}
}

// NewKeyRef returns a keyref constraint referring to refer.
func NewKeyRef(name string, refer QualifiedName) *IdentityConstraint {
	return &IdentityConstraint{Kind: KeyRefConstraint, Name: name, Refer: refer}
}

// AddField appends a field XPath.
func (c *IdentityConstraint) AddField(f *Field) {
	c.Fields = append(c.Fields, f)
}

// Clone returns a deep copy.
func (c *IdentityConstraint) Clone() *IdentityConstraint {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Annotated = c.Annotated.clone()
	clone.Selector = c.Selector.Clone()
	if c.Fields != nil {
		clone.Fields = make([]*Field, len(c.Fields))
		for i, f := range c.Fields {
			clone.Fields[i] = f.Clone()
		}
	}
	return &clone
}
