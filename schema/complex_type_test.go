package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplexTypeBranchesAreExclusive(t *testing.T) {
	t.Run("simple content clears everything", func(t *testing.T) {
		ct := NewComplexType("T")
		ct.SetContent(NewSequence())
		ct.AddAttribute(&Attribute{Name: "a"})
		ct.SetAnyAttribute(&AnyAttribute{})
		ct.SetComplexContent(&ComplexContent{})

		sc := &SimpleContent{}
		ct.SetSimpleContent(sc)

		assert.Same(t, sc, ct.SimpleContent())
		assert.Nil(t, ct.ComplexContent())
		assert.Nil(t, ct.Content())
		assert.Empty(t, ct.Attributes())
		assert.Nil(t, ct.AnyAttribute())
	})

	t.Run("complex content clears everything", func(t *testing.T) {
		ct := NewComplexType("T")
		ct.SetContent(NewChoice())
		ct.AddAttribute(&Attribute{Name: "a"})
		ct.SetSimpleContent(&SimpleContent{})

		cc := &ComplexContent{Mixed: true}
		ct.SetComplexContent(cc)

		assert.Same(t, cc, ct.ComplexContent())
		assert.Nil(t, ct.SimpleContent())
		assert.Nil(t, ct.Content())
		assert.Empty(t, ct.Attributes())
	})

	t.Run("particle branch members coexist", func(t *testing.T) {
		ct := NewComplexType("T")
		ct.SetSimpleContent(&SimpleContent{})

		seq := NewSequence()
		ct.SetContent(seq)
		assert.Nil(t, ct.SimpleContent())

		ct.SetComplexContent(&ComplexContent{})
		ct.AddAttribute(&Attribute{Name: "a"})
		assert.Nil(t, ct.ComplexContent())

		ct.SetContent(seq)
		ct.AddAttribute(&AttributeGroup{Ref: NewQualifiedName("tns", "G")})
		anyAttr := &AnyAttribute{ProcessContents: Lax}
		ct.SetAnyAttribute(anyAttr)

		assert.Same(t, seq, ct.Content())
		require.Len(t, ct.Attributes(), 2)
		assert.Equal(t, "attributeGroup", AttributeKind(ct.Attributes()[1]))
		assert.Same(t, anyAttr, ct.AnyAttribute())
	})
}

type complexTypeMutator struct {
	name     string
	particle bool
	apply    func(*ComplexType)
	applied  func(*ComplexType) bool
}

func complexTypeMutators() []complexTypeMutator {
	sc := &SimpleContent{}
	cc := &ComplexContent{}
	seq := NewSequence()
	attr := &Attribute{Name: "a"}
	anyAttr := &AnyAttribute{}
	return []complexTypeMutator{
		{
			name:    "SetSimpleContent",
			apply:   func(ct *ComplexType) { ct.SetSimpleContent(sc) },
			applied: func(ct *ComplexType) bool { return ct.SimpleContent() == sc },
		},
		{
			name:    "SetComplexContent",
			apply:   func(ct *ComplexType) { ct.SetComplexContent(cc) },
			applied: func(ct *ComplexType) bool { return ct.ComplexContent() == cc },
		},
		{
			name:     "SetContent",
			particle: true,
			apply:    func(ct *ComplexType) { ct.SetContent(seq) },
			applied:  func(ct *ComplexType) bool { return ct.Content() == Content(seq) },
		},
		{
			name:     "AddAttribute",
			particle: true,
			apply:    func(ct *ComplexType) { ct.AddAttribute(attr) },
			applied: func(ct *ComplexType) bool {
				as := ct.Attributes()
				return len(as) > 0 && as[len(as)-1] == AbstractAttribute(attr)
			},
		},
		{
			name:     "SetAnyAttribute",
			particle: true,
			apply:    func(ct *ComplexType) { ct.SetAnyAttribute(anyAttr) },
			applied:  func(ct *ComplexType) bool { return ct.AnyAttribute() == anyAttr },
		},
	}
}

func assertSingleBranch(t *testing.T, ct *ComplexType) {
	t.Helper()
	particleSet := ct.Content() != nil || len(ct.Attributes()) > 0 || ct.AnyAttribute() != nil
	branches := 0
	for _, set := range []bool{ct.SimpleContent() != nil, ct.ComplexContent() != nil, particleSet} {
		if set {
			branches++
		}
	}
	assert.LessOrEqual(t, branches, 1)
}

func TestComplexTypeMutatorOrder(t *testing.T) {
	for _, first := range complexTypeMutators() {
		for _, second := range complexTypeMutators() {
			t.Run(first.name+"/"+second.name, func(t *testing.T) {
				ct := NewComplexType("T")
				first.apply(ct)
				assertSingleBranch(t, ct)
				second.apply(ct)
				assertSingleBranch(t, ct)

				assert.True(t, second.applied(ct), "last call must win")
				if first.particle && second.particle {
					assert.True(t, first.applied(ct), "particle branch members coexist")
				}
				if first.name != second.name && !(first.particle && second.particle) {
					assert.False(t, first.applied(ct), "other branch must be cleared")
				}
			})
		}
	}
}

func TestComplexTypeIsEmpty(t *testing.T) {
	ct := NewComplexType("T")
	assert.True(t, ct.IsEmpty())

	ct.SetAnyAttribute(&AnyAttribute{})
	assert.False(t, ct.IsEmpty())

	ct.SetSimpleContent(nil)
	assert.True(t, ct.IsEmpty())
}

func TestElementTypeAlternatives(t *testing.T) {
	e := NewElement("e")
	assert.Equal(t, DefaultOccurs(), e.Occurs)

	e.SetType(NewQualifiedName("xs", "string"))
	assert.Equal(t, "xs:string", e.TypeName().String())

	st := &SimpleType{}
	e.SetSimpleType(st)
	assert.True(t, e.TypeName().IsZero())
	assert.Same(t, st, e.SimpleType())

	ct := NewComplexType("")
	e.SetComplexType(ct)
	assert.Nil(t, e.SimpleType())
	assert.Same(t, ct, e.ComplexType())

	e.SetType(NewQualifiedName("", "local"))
	assert.Nil(t, e.ComplexType())
	assert.Equal(t, "local", e.TypeName().String())

	ref := NewElementRef(NewQualifiedName("tns", "order"))
	assert.True(t, ref.IsReference())
	assert.False(t, e.IsReference())
}

func TestSimpleTypeConstructorReplaced(t *testing.T) {
	st := &SimpleType{Name: "S"}
	st.SetRestriction(&RestrictionSimpleType{Base: NewQualifiedName("xs", "string")})
	require.NotNil(t, st.Restriction())

	st.SetList(&List{ItemType: NewQualifiedName("xs", "int")})
	assert.Nil(t, st.Restriction())
	require.NotNil(t, st.List())

	st.SetUnion(&Union{MemberTypes: []QualifiedName{NewQualifiedName("xs", "int")}})
	assert.Nil(t, st.List())
	require.NotNil(t, st.Union())

	st.SetRestriction(nil)
	assert.Nil(t, st.Constructor())
}

func TestDerivationContentReplaced(t *testing.T) {
	sc := &SimpleContent{}
	sc.SetExtension(&Extension{Base: NewQualifiedName("xs", "decimal")})
	require.NotNil(t, sc.Extension())
	sc.SetRestriction(&RestrictionSimpleContent{Base: NewQualifiedName("tns", "Price")})
	assert.Nil(t, sc.Extension())
	assert.Equal(t, "tns:Price", sc.Derivation().BaseType().String())

	cc := &ComplexContent{}
	cc.SetRestriction(&RestrictionComplexContent{Base: NewQualifiedName("xs", "anyType")})
	cc.SetExtension(&Extension{Base: NewQualifiedName("tns", "Base")})
	assert.Nil(t, cc.Restriction())
	assert.Equal(t, "tns:Base", cc.Derivation().BaseType().String())
}

func TestOccurs(t *testing.T) {
	tests := []struct {
		occurs    Occurs
		text      string
		valid     bool
		isDefault bool
	}{
		{occurs: DefaultOccurs(), text: "1..1", valid: true, isDefault: true},
		{occurs: Occurs{Min: 0, Max: Unbounded}, text: "0..unbounded", valid: true},
		{occurs: Occurs{Min: 5, Max: Unbounded}, text: "5..unbounded", valid: true},
		{occurs: Occurs{Min: 3, Max: 2}, text: "3..2", valid: false},
		{occurs: Occurs{}, text: "0..0", valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.occurs.String())
			assert.Equal(t, tt.valid, tt.occurs.Valid())
			assert.Equal(t, tt.isDefault, tt.occurs.IsDefault())
		})
	}
}

func TestDerivationSet(t *testing.T) {
	var s DerivationSet
	assert.Empty(t, s.String())

	s = s.Add(DerivationUnion).Add(DerivationExtension)
	assert.Equal(t, "extension union", s.String())
	assert.True(t, s.Has(DerivationUnion))
	assert.False(t, s.Has(DerivationList))

	assert.Equal(t, "extension restriction substitution", ElementBlockDerivations.String())
	assert.Equal(t, []string{"restriction", "list", "union"}, SimpleTypeDerivations.Tokens())

	m, ok := LookupDerivationMethod("substitution")
	require.True(t, ok)
	assert.Equal(t, DerivationSubstitution, m)
	_, ok = LookupDerivationMethod("#all")
	assert.False(t, ok)
}

func TestFacetTypes(t *testing.T) {
	types := FacetTypes()
	require.Len(t, types, 12)
	for _, ft := range types {
		got, ok := LookupFacetType(ft.String())
		require.True(t, ok, ft.String())
		assert.Equal(t, ft, got)
	}
	_, ok := LookupFacetType("assertion")
	assert.False(t, ok)
	assert.Equal(t, "FacetType(12)", FacetType(12).String())
}
