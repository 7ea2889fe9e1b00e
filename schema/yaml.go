package schema

// YAML views for components whose state sits behind interfaces or
// unexported fields. Polymorphic children are rendered as single-key
// mappings named after their element, e.g. {sequence: {...}}.

type tagged = map[string]any

// ParticleKind returns the element name of a particle.
func ParticleKind(p Particle) string {
	switch p.(type) {
	case *Element:
		return "element"
	case *Sequence:
		return "sequence"
	case *Choice:
		return "choice"
	case *All:
		return "all"
	case *Group:
		return "group"
	case *Any:
		return "any"
	default:
		return ""
	}
}

// AttributeKind returns the element name of an attribute list entry.
func AttributeKind(a AbstractAttribute) string {
	switch a.(type) {
	case *Attribute:
		return "attribute"
	case *AttributeGroup:
		return "attributeGroup"
	default:
		return ""
	}
}

func particlesView(ps []Particle) []tagged {
	if len(ps) == 0 {
		return nil
	}
	out := make([]tagged, 0, len(ps))
	for _, p := range ps {
		out = append(out, tagged{ParticleKind(p): p})
	}
	return out
}

func contentView(c Content) tagged {
	if c == nil {
		return nil
	}
	return tagged{ParticleKind(c): c}
}

func attributesView(as []AbstractAttribute) []tagged {
	if len(as) == 0 {
		return nil
	}
	out := make([]tagged, 0, len(as))
	for _, a := range as {
		out = append(out, tagged{AttributeKind(a): a})
	}
	return out
}

// MarshalYAML implements yaml.Marshaler.
func (s *Sequence) MarshalYAML() (any, error) {
	type plain Sequence
	return struct {
		plain     `yaml:",inline"`
		Particles []tagged `yaml:"particles,omitempty"`
	}{plain(*s), particlesView(s.Particles)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Choice) MarshalYAML() (any, error) {
	type plain Choice
	return struct {
		plain     `yaml:",inline"`
		Particles []tagged `yaml:"particles,omitempty"`
	}{plain(*c), particlesView(c.Particles)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (g *Group) MarshalYAML() (any, error) {
	type plain Group
	return struct {
		plain   `yaml:",inline"`
		Content tagged `yaml:"content,omitempty"`
	}{plain(*g), contentView(g.Content)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (g *AttributeGroup) MarshalYAML() (any, error) {
	type plain AttributeGroup
	return struct {
		plain      `yaml:",inline"`
		Attributes []tagged `yaml:"attributes,omitempty"`
	}{plain(*g), attributesView(g.Attributes)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (e *Extension) MarshalYAML() (any, error) {
	type plain Extension
	return struct {
		plain      `yaml:",inline"`
		Content    tagged   `yaml:"content,omitempty"`
		Attributes []tagged `yaml:"attributes,omitempty"`
	}{plain(*e), contentView(e.Content), attributesView(e.Attributes)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *RestrictionSimpleContent) MarshalYAML() (any, error) {
	type plain RestrictionSimpleContent
	return struct {
		plain      `yaml:",inline"`
		Attributes []tagged `yaml:"attributes,omitempty"`
	}{plain(*r), attributesView(r.Attributes)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *RestrictionComplexContent) MarshalYAML() (any, error) {
	type plain RestrictionComplexContent
	return struct {
		plain      `yaml:",inline"`
		Content    tagged   `yaml:"content,omitempty"`
		Attributes []tagged `yaml:"attributes,omitempty"`
	}{plain(*r), contentView(r.Content), attributesView(r.Attributes)}, nil
}

func derivationView(d TypeDerivation) tagged {
	switch d.(type) {
	case *Extension:
		return tagged{"extension": d}
	case nil:
		return nil
	default:
		return tagged{"restriction": d}
	}
}

// MarshalYAML implements yaml.Marshaler.
func (s *SimpleContent) MarshalYAML() (any, error) {
	type plain SimpleContent
	return struct {
		plain      `yaml:",inline"`
		Derivation tagged `yaml:"derivation,omitempty"`
	}{plain(*s), derivationView(s.derivation)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *ComplexContent) MarshalYAML() (any, error) {
	type plain ComplexContent
	return struct {
		plain      `yaml:",inline"`
		Derivation tagged `yaml:"derivation,omitempty"`
	}{plain(*c), derivationView(c.derivation)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (s *SimpleType) MarshalYAML() (any, error) {
	type plain SimpleType
	var constructor tagged
	switch typed := s.constructor.(type) {
	case *RestrictionSimpleType:
		constructor = tagged{"restriction": typed}
	case *List:
		constructor = tagged{"list": typed}
	case *Union:
		constructor = tagged{"union": typed}
	}
	return struct {
		plain       `yaml:",inline"`
		Constructor tagged `yaml:"constructor,omitempty"`
	}{plain(*s), constructor}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *ComplexType) MarshalYAML() (any, error) {
	type plain ComplexType
	return struct {
		plain          `yaml:",inline"`
		SimpleContent  *SimpleContent  `yaml:"simpleContent,omitempty"`
		ComplexContent *ComplexContent `yaml:"complexContent,omitempty"`
		Content        tagged          `yaml:"content,omitempty"`
		Attributes     []tagged        `yaml:"attributes,omitempty"`
		AnyAttribute   *AnyAttribute   `yaml:"anyAttribute,omitempty"`
	}{
		plain(*c),
		c.simpleContent,
		c.complexContent,
		contentView(c.content),
		attributesView(c.attributes),
		c.anyAttribute,
	}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (e *Element) MarshalYAML() (any, error) {
	type plain Element
	var typeName *QualifiedName
	if !e.typeName.IsZero() {
		name := e.typeName
		typeName = &name
	}
	return struct {
		plain       `yaml:",inline"`
		Type        *QualifiedName `yaml:"type,omitempty"`
		SimpleType  *SimpleType    `yaml:"simpleType,omitempty"`
		ComplexType *ComplexType   `yaml:"complexType,omitempty"`
	}{plain(*e), typeName, e.simpleType, e.complexType}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *Redefine) MarshalYAML() (any, error) {
	type plain Redefine
	components := make([]tagged, 0, len(r.Components))
	for _, c := range r.Components {
		var kind string
		switch c.(type) {
		case *Annotation:
			kind = "annotation"
		case *SimpleType:
			kind = "simpleType"
		case *ComplexType:
			kind = "complexType"
		case *Group:
			kind = "group"
		case *AttributeGroup:
			kind = "attributeGroup"
		}
		components = append(components, tagged{kind: c})
	}
	return struct {
		plain      `yaml:",inline"`
		Components []tagged `yaml:"components,omitempty"`
	}{plain(*r), components}, nil
}
