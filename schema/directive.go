package schema

// Include is an <include> directive. The location is stored, never fetched.
type Include struct {
	Identifiable   `yaml:",inline"`
	Annotated      `yaml:",inline"`
	SchemaLocation string `yaml:"schemaLocation"`
}

// Clone returns a deep copy.
func (i *Include) Clone() *Include {
	if i == nil {
		return nil
	}
	clone := *i
	clone.Annotated = i.Annotated.clone()
	return &clone
}

// Import is an <import> directive.
type Import struct {
	Identifiable   `yaml:",inline"`
	Annotated      `yaml:",inline"`
	Namespace      string `yaml:"namespace,omitempty"`
	SchemaLocation string `yaml:"schemaLocation,omitempty"`
}

// Clone returns a deep copy.
func (i *Import) Clone() *Import {
	if i == nil {
		return nil
	}
	clone := *i
	clone.Annotated = i.Annotated.clone()
	return &clone
}

// Redefinable is a child of <redefine>: *Annotation, *SimpleType,
// *ComplexType, *Group or *AttributeGroup.
type Redefinable interface {
	isRedefinable()
}

// Redefine is a <redefine> directive; its children keep document order.
type Redefine struct {
	Identifiable   `yaml:",inline"`
	SchemaLocation string        `yaml:"schemaLocation"`
	Components     []Redefinable `yaml:"-"`
}

// Add appends a redefined component.
func (r *Redefine) Add(c Redefinable) {
	r.Components = append(r.Components, c)
}

// Clone returns a deep copy.
func (r *Redefine) Clone() *Redefine {
	if r == nil {
		return nil
	}
	clone := *r
	if r.Components != nil {
		clone.Components = make([]Redefinable, len(r.Components))
		for i, c := range r.Components {
			clone.Components[i] = cloneRedefinable(c)
		}
	}
	return &clone
}

func cloneRedefinable(c Redefinable) Redefinable {
	switch typed := c.(type) {
	case *Annotation:
		return typed.Clone()
	case *SimpleType:
		return typed.Clone()
	case *ComplexType:
		return typed.Clone()
	case *Group:
		return typed.Clone()
	case *AttributeGroup:
		return typed.Clone()
	default:
		return c
	}
}

// Notation is a <notation> declaration.
type Notation struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Name         string `yaml:"name"`
	Public       string `yaml:"public,omitempty"`
	System       string `yaml:"system,omitempty"`
}

// Clone returns a deep copy.
func (n *Notation) Clone() *Notation {
	if n == nil {
		return nil
	}
	clone := *n
	clone.Annotated = n.Annotated.clone()
	return &clone
}
