package schema

// Particle is a content-model node with occurrence bounds: *Element,
// *Sequence, *Choice, *All, *Group or *Any.
type Particle interface {
	Occurrence() Occurs
	cloneParticle() Particle
}

// Content is a model group particle usable as the content of a complex
// type, derivation or group: *Sequence, *Choice, *All or *Group.
type Content interface {
	Particle
	isContent()
}

// Sequence is an ordered model group of elements, groups, nested model
// groups and wildcards.
type Sequence struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Occurs       Occurs     `yaml:"occurs"`
	Particles    []Particle `yaml:"-"`
}

// NewSequence returns an empty sequence with default bounds.
func NewSequence() *Sequence {
	return &Sequence{Occurs: DefaultOccurs()}
}

// Occurrence implements Particle.
func (s *Sequence) Occurrence() Occurs { return s.Occurs }

func (s *Sequence) isContent() {}

func (s *Sequence) cloneParticle() Particle { return s.Clone() }

// Clone returns a deep copy.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Annotated = s.Annotated.clone()
	clone.Particles = cloneParticles(s.Particles)
	return &clone
}

// Choice is a model group of which exactly one particle is chosen.
type Choice struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Occurs       Occurs     `yaml:"occurs"`
	Particles    []Particle `yaml:"-"`
}

// NewChoice returns an empty choice with default bounds.
func NewChoice() *Choice {
	return &Choice{Occurs: DefaultOccurs()}
}

// Occurrence implements Particle.
func (c *Choice) Occurrence() Occurs { return c.Occurs }

func (c *Choice) isContent() {}

func (c *Choice) cloneParticle() Particle { return c.Clone() }

// Clone returns a deep copy.
func (c *Choice) Clone() *Choice {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Annotated = c.Annotated.clone()
	clone.Particles = cloneParticles(c.Particles)
	return &clone
}

// All is an unordered model group of element declarations.
type All struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Occurs       Occurs     `yaml:"occurs"`
	Elements     []*Element `yaml:"elements,omitempty"`
}

// NewAll returns an empty all group with default bounds.
func NewAll() *All {
	return &All{Occurs: DefaultOccurs()}
}

// Occurrence implements Particle.
func (a *All) Occurrence() Occurs { return a.Occurs }

func (a *All) isContent() {}

func (a *All) cloneParticle() Particle { return a.Clone() }

// Clone returns a deep copy.
func (a *All) Clone() *All {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Annotated = a.Annotated.clone()
	if a.Elements != nil {
		clone.Elements = make([]*Element, len(a.Elements))
		for i, e := range a.Elements {
			clone.Elements[i] = e.Clone()
		}
	}
	return &clone
}

// Group is a named model group definition (Name set, Content set) or a
// reference to one (Ref set). Content is a *Sequence, *Choice or *All.
type Group struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Name         string        `yaml:"name,omitempty"`
	Ref          QualifiedName `yaml:"ref,omitempty"`
	Occurs       Occurs        `yaml:"occurs"`
	Content      Content       `yaml:"-"`
}

// NewGroup returns a group with default bounds.
func NewGroup() *Group {
	return &Group{Occurs: DefaultOccurs()}
}

// Occurrence implements Particle.
func (g *Group) Occurrence() Occurs { return g.Occurs }

// IsReference reports whether the group refers to another definition.
func (g *Group) IsReference() bool { return !g.Ref.IsZero() }

func (g *Group) isContent() {}

func (g *Group) isRedefinable() {}

func (g *Group) cloneParticle() Particle { return g.Clone() }

// Clone returns a deep copy.
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	clone := *g
	clone.Annotated = g.Annotated.clone()
	clone.Content = cloneContent(g.Content)
	return &clone
}

func cloneParticles(in []Particle) []Particle {
	if in == nil {
		return nil
	}
	out := make([]Particle, len(in))
	for i, p := range in {
		out[i] = p.cloneParticle()
	}
	return out
}

func cloneContent(c Content) Content {
	if c == nil {
		return nil
	}
	return c.cloneParticle().(Content)
}
