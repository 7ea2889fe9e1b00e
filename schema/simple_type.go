package schema

// SimpleTypeConstructor is the variety of a simple type:
// *RestrictionSimpleType, *List or *Union.
type SimpleTypeConstructor interface {
	cloneConstructor() SimpleTypeConstructor
	isSimpleTypeConstructor()
}

// SimpleType is a named or anonymous simple type definition owning exactly
// one constructor.
type SimpleType struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Name         string        `yaml:"name,omitempty"`
	Final        DerivationSet `yaml:"final,omitempty"`
	constructor  SimpleTypeConstructor
}

// Constructor returns the restriction, list or union.
func (s *SimpleType) Constructor() SimpleTypeConstructor { return s.constructor }

// Restriction returns the restriction constructor, or nil.
func (s *SimpleType) Restriction() *RestrictionSimpleType {
	r, _ := s.constructor.(*RestrictionSimpleType)
	return r
}

// List returns the list constructor, or nil.
func (s *SimpleType) List() *List {
	l, _ := s.constructor.(*List)
	return l
}

// Union returns the union constructor, or nil.
func (s *SimpleType) Union() *Union {
	u, _ := s.constructor.(*Union)
	return u
}

// SetRestriction replaces the constructor with r.
func (s *SimpleType) SetRestriction(r *RestrictionSimpleType) {
	s.constructor = nil
	if r != nil {
		s.constructor = r
	}
}

// SetList replaces the constructor with l.
func (s *SimpleType) SetList(l *List) {
	s.constructor = nil
	if l != nil {
		s.constructor = l
	}
}

// SetUnion replaces the constructor with u.
func (s *SimpleType) SetUnion(u *Union) {
	s.constructor = nil
	if u != nil {
		s.constructor = u
	}
}

func (s *SimpleType) isRedefinable() {}

// Clone returns a deep copy.
func (s *SimpleType) Clone() *SimpleType {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Annotated = s.Annotated.clone()
	if s.constructor != nil {
		clone.constructor = s.constructor.cloneConstructor()
	}
	return &clone
}

// List derives a list type from ItemType or an inline SimpleType.
type List struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	ItemType     QualifiedName `yaml:"itemType,omitempty"`
	SimpleType   *SimpleType   `yaml:"simpleType,omitempty"`
}

func (l *List) isSimpleTypeConstructor() {}

func (l *List) cloneConstructor() SimpleTypeConstructor { return l.Clone() }

// Clone returns a deep copy.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	clone := *l
	clone.Annotated = l.Annotated.clone()
	clone.SimpleType = l.SimpleType.Clone()
	return &clone
}

// Union derives a union of MemberTypes and inline SimpleTypes.
type Union struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	MemberTypes  []QualifiedName `yaml:"memberTypes,omitempty"`
	SimpleTypes  []*SimpleType   `yaml:"simpleTypes,omitempty"`
}

func (u *Union) isSimpleTypeConstructor() {}

func (u *Union) cloneConstructor() SimpleTypeConstructor { return u.Clone() }

// Clone returns a deep copy.
func (u *Union) Clone() *Union {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Annotated = u.Annotated.clone()
	clone.MemberTypes = cloneQNames(u.MemberTypes)
	if u.SimpleTypes != nil {
		clone.SimpleTypes = make([]*SimpleType, len(u.SimpleTypes))
		for i, st := range u.SimpleTypes {
			clone.SimpleTypes[i] = st.Clone()
		}
	}
	return &clone
}
