package schema

// Any is an element wildcard particle.
type Any struct {
	Identifiable    `yaml:",inline"`
	Annotated       `yaml:",inline"`
	Occurs          Occurs          `yaml:"occurs"`
	Namespace       string          `yaml:"namespace,omitempty"`
	ProcessContents ProcessContents `yaml:"processContents"`
}

// NewAny returns a strict wildcard with default bounds.
func NewAny() *Any {
	return &Any{Occurs: DefaultOccurs()}
}

// Occurrence implements Particle.
func (a *Any) Occurrence() Occurs { return a.Occurs }

func (a *Any) cloneParticle() Particle { return a.Clone() }

// Clone returns a deep copy.
func (a *Any) Clone() *Any {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Annotated = a.Annotated.clone()
	return &clone
}

// AnyAttribute is an attribute wildcard.
type AnyAttribute struct {
	Identifiable    `yaml:",inline"`
	Annotated       `yaml:",inline"`
	Namespace       string          `yaml:"namespace,omitempty"`
	ProcessContents ProcessContents `yaml:"processContents"`
}

// Clone returns a deep copy.
func (a *AnyAttribute) Clone() *AnyAttribute {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Annotated = a.Annotated.clone()
	return &clone
}
