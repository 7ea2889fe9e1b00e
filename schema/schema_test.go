package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNamespaceMapRebinding(t *testing.T) {
	m := NewNamespaceMap()
	m.Bind("xs", XSDNamespace)
	m.Bind("tns", "urn:a")
	m.Bind("", "urn:d")

	// rebinding a prefix drops its old URI
	m.Bind("tns", "urn:b")
	_, ok := m.Prefix("urn:a")
	assert.False(t, ok)
	uri, ok := m.URI("tns")
	require.True(t, ok)
	assert.Equal(t, "urn:b", uri)

	// a second prefix for a URI keeps the first one
	m.Bind("xsd", XSDNamespace)
	uri, ok = m.URI("xs")
	require.True(t, ok)
	assert.Equal(t, XSDNamespace, uri)
	prefix, ok := m.Prefix(XSDNamespace)
	require.True(t, ok)
	assert.Equal(t, "xsd", prefix)

	var order []string
	for p, u := range m.All() {
		order = append(order, p+"="+u)
	}
	assert.Equal(t, []string{"xs=" + XSDNamespace, "=urn:d", "tns=urn:b", "xsd=" + XSDNamespace}, order)
	assert.Equal(t, 4, m.Len())
}

func TestNamespaceMapSharedURI(t *testing.T) {
	m := NewNamespaceMap()
	m.Bind("", "urn:t")
	m.Bind("tns", "urn:t")

	for _, p := range []string{"", "tns"} {
		uri, ok := m.URI(p)
		require.True(t, ok, "prefix %q", p)
		assert.Equal(t, "urn:t", uri)
	}
	prefix, _ := m.Prefix("urn:t")
	assert.Equal(t, "tns", prefix)

	// moving the latest prefix away falls back to the earlier one
	m.Bind("tns", "urn:other")
	prefix, ok := m.Prefix("urn:t")
	require.True(t, ok)
	assert.Equal(t, "", prefix)

	m.Bind("", "urn:d")
	_, ok = m.Prefix("urn:t")
	assert.False(t, ok)

	clone := m.Clone()
	assert.Equal(t, m, clone)
}

func TestSchemaResolveDefaultNamespace(t *testing.T) {
	s := NewSchema()
	s.TargetNamespace = "urn:t"
	s.Namespaces.Bind("xs", XSDNamespace)
	s.Namespaces.Bind("", "urn:t")
	s.Namespaces.Bind("tns", "urn:t")

	for _, name := range []QualifiedName{NewQualifiedName("", "T"), NewQualifiedName("tns", "T")} {
		uri, ok := s.ResolveNamespace(name)
		require.True(t, ok, "%v", name)
		assert.Equal(t, "urn:t", uri)
	}
}

func TestNamespaceMapNil(t *testing.T) {
	var m *NamespaceMap
	assert.Equal(t, 0, m.Len())
	_, ok := m.URI("xs")
	assert.False(t, ok)
	_, ok = m.Prefix(XSDNamespace)
	assert.False(t, ok)
	assert.Nil(t, m.Clone())

	var zero NamespaceMap
	zero.Bind("a", "urn:a")
	assert.Equal(t, 1, zero.Len())
}

func TestSchemaXSDPrefix(t *testing.T) {
	s := NewSchema()
	assert.Equal(t, "xs", s.XSDPrefix())

	s.Namespaces.Bind("", XSDNamespace)
	assert.Equal(t, "", s.XSDPrefix())

	s.Namespaces.Bind("tns", "urn:t")
	uri, ok := s.ResolveNamespace(NewQualifiedName("tns", "T"))
	require.True(t, ok)
	assert.Equal(t, "urn:t", uri)
}

func TestSchemaFind(t *testing.T) {
	s := NewSchema()
	s.Elements = append(s.Elements, NewElement("a"), NewElement("b"))
	s.Attributes = append(s.Attributes, &Attribute{Name: "lang"})
	s.ComplexTypes = append(s.ComplexTypes, NewComplexType("T"))
	s.SimpleTypes = append(s.SimpleTypes, &SimpleType{Name: "S"})
	s.Groups = append(s.Groups, &Group{Name: "G"})
	s.AttributeGroups = append(s.AttributeGroups, &AttributeGroup{Name: "AG"})

	assert.Same(t, s.Elements[1], s.FindElement("b"))
	assert.Nil(t, s.FindElement("c"))
	assert.Same(t, s.Attributes[0], s.FindAttribute("lang"))
	assert.Same(t, s.ComplexTypes[0], s.FindComplexType("T"))
	assert.Same(t, s.SimpleTypes[0], s.FindSimpleType("S"))
	assert.Same(t, s.Groups[0], s.FindGroup("G"))
	assert.Same(t, s.AttributeGroups[0], s.FindAttributeGroup("AG"))
}

func TestAnnotationItems(t *testing.T) {
	a := NewAnnotation()
	a.AddDocumentation("urn:doc", "en", "first")
	a.AddAppInfo("urn:tool", "gen")
	a.AddDocumentation("", "", "second")

	require.Len(t, a.Items, 3)
	docs := a.Documentation()
	require.Len(t, docs, 2)
	assert.Equal(t, "first", docs[0].Value)
	assert.Equal(t, "en", docs[0].Lang)
	assert.Equal(t, "second", docs[1].Value)
	assert.Equal(t, []AnnotationItem{{Kind: AppInfo, Source: "urn:tool", Value: "gen"}}, a.AppInfos())

	var none *Annotation
	assert.Nil(t, none.Documentation())
}

func sampleSchema() *Schema {
	s := NewSchema()
	s.Namespaces.Bind("xs", XSDNamespace)
	s.TargetNamespace = "urn:t"

	seq := NewSequence()
	el := NewElement("a")
	el.SetType(NewQualifiedName("xs", "string"))
	el.Annotation = NewAnnotation()
	el.Annotation.AddDocumentation("", "", "doc")
	seq.Particles = append(seq.Particles, el)

	ct := NewComplexType("T")
	ct.Final = ComplexTypeDerivations
	ct.SetContent(seq)
	ct.AddAttribute(&Attribute{Name: "n", Type: NewQualifiedName("xs", "int"), Use: UseRequired})
	s.ComplexTypes = append(s.ComplexTypes, ct)

	st := &SimpleType{Name: "S"}
	r := &RestrictionSimpleType{Base: NewQualifiedName("xs", "string")}
	r.AddFacet(NewFacet(FacetPattern, "[a-z]+"))
	st.SetRestriction(r)
	s.SimpleTypes = append(s.SimpleTypes, st)

	redef := &Redefine{SchemaLocation: "old.xsd"}
	redef.Add(&Group{Name: "G", Content: NewChoice()})
	s.Redefines = append(s.Redefines, redef)
	return s
}

func TestSchemaCloneSharesNothing(t *testing.T) {
	s := sampleSchema()
	clone := s.Clone()
	require.Equal(t, s, clone)

	cloneSeq := clone.ComplexTypes[0].Content().(*Sequence)
	cloneEl := cloneSeq.Particles[0].(*Element)
	cloneEl.Name = "changed"
	cloneEl.Annotation.Items[0].Value = "changed"
	clone.SimpleTypes[0].Restriction().Facets[0].Value = "changed"
	clone.Namespaces.Bind("tns", "urn:t")
	clone.Redefines[0].Components[0].(*Group).Name = "changed"
	clone.ComplexTypes[0].Attributes()[0].(*Attribute).Name = "changed"

	origEl := s.ComplexTypes[0].Content().(*Sequence).Particles[0].(*Element)
	assert.Equal(t, "a", origEl.Name)
	assert.Equal(t, "doc", origEl.Annotation.Items[0].Value)
	assert.Equal(t, "[a-z]+", s.SimpleTypes[0].Restriction().Facets[0].Value)
	assert.Equal(t, 1, s.Namespaces.Len())
	assert.Equal(t, "G", s.Redefines[0].Components[0].(*Group).Name)
	assert.Equal(t, "n", s.ComplexTypes[0].Attributes()[0].(*Attribute).Name)

	assert.Nil(t, (*Schema)(nil).Clone())
}

func TestSchemaYAML(t *testing.T) {
	out, err := yaml.Marshal(sampleSchema())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc), string(out))

	assert.Equal(t, "urn:t", doc["targetNamespace"])
	assert.Equal(t, map[string]any{"xs": XSDNamespace}, doc["namespaces"])

	cts := doc["complexTypes"].([]any)
	require.Len(t, cts, 1)
	ct := cts[0].(map[string]any)
	assert.Equal(t, "T", ct["name"])
	assert.Equal(t, []any{"extension", "restriction"}, ct["final"])

	seq := ct["content"].(map[string]any)["sequence"].(map[string]any)
	assert.Equal(t, map[string]any{"min": "1", "max": "1"}, seq["occurs"])
	particles := seq["particles"].([]any)
	require.Len(t, particles, 1)
	el := particles[0].(map[string]any)["element"].(map[string]any)
	assert.Equal(t, "a", el["name"])
	assert.Equal(t, map[string]any{"prefix": "xs", "local": "string"}, el["type"])

	attrs := ct["attributes"].([]any)
	attr := attrs[0].(map[string]any)["attribute"].(map[string]any)
	assert.Equal(t, "required", attr["use"])

	sts := doc["simpleTypes"].([]any)
	restriction := sts[0].(map[string]any)["constructor"].(map[string]any)["restriction"].(map[string]any)
	facets := restriction["facets"].([]any)
	assert.Equal(t, "pattern", facets[0].(map[string]any)["type"])

	redefs := doc["redefines"].([]any)
	components := redefs[0].(map[string]any)["components"].([]any)
	group := components[0].(map[string]any)["group"].(map[string]any)
	assert.Equal(t, "G", group["name"])
	assert.Contains(t, group["content"], "choice")
}
