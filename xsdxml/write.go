package xsdxml

import (
	"fmt"
	"strings"

	"github.com/claudiobogossian/terralib5-sub033/schema"
)

// XMLWriter receives the element, attribute and text events produced by
// an Encoder. *xmlcursor.Writer implements it.
type XMLWriter interface {
	WriteStartElement(tag string) error
	WriteAttribute(name, value string) error
	WriteValue(text string) error
	WriteEndElement(tag string) error
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithPrefix sets the prefix of emitted XML Schema tags; "" writes
// unprefixed tags. The default is "xs".
func WithPrefix(prefix string) EncoderOption {
	return func(e *Encoder) { e.prefix = prefix }
}

// Encoder writes schema components as XML Schema markup. The first write
// error stops all further output and is returned by Encode.
type Encoder struct {
	w      XMLWriter
	err    error
	prefix string
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w XMLWriter, opts ...EncoderOption) *Encoder {
	e := &Encoder{w: w, prefix: "xs"}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// SaveSchema writes s with the prefix it binds to the XML Schema
// namespace.
func SaveSchema(w XMLWriter, s *schema.Schema) error {
	if s == nil {
		return fmt.Errorf("save schema: nil schema")
	}
	return NewEncoder(w, WithPrefix(s.XSDPrefix())).Encode(s)
}

// Save writes a single component.
func Save(w XMLWriter, component any, opts ...EncoderOption) error {
	return NewEncoder(w, opts...).Encode(component)
}

// Encode writes component, which must be one of the schema package's
// component types.
func (e *Encoder) Encode(component any) error {
	if e.w == nil {
		return fmt.Errorf("encode: nil writer")
	}
	switch c := component.(type) {
	case *schema.Schema:
		e.schema(c)
	case *schema.Element:
		e.element(c)
	case *schema.Attribute:
		e.attribute(c)
	case *schema.AttributeGroup:
		e.attributeGroup(c)
	case *schema.ComplexType:
		e.complexType(c)
	case *schema.SimpleType:
		e.simpleType(c)
	case *schema.Group:
		e.group(c)
	case *schema.Sequence:
		e.modelGroup("sequence", c.Identifiable, c.Annotated, c.Occurs, c.Particles)
	case *schema.Choice:
		e.modelGroup("choice", c.Identifiable, c.Annotated, c.Occurs, c.Particles)
	case *schema.All:
		e.all(c)
	case *schema.Any:
		e.anyElement(c)
	case *schema.AnyAttribute:
		e.anyAttribute(c)
	case *schema.SimpleContent:
		e.simpleContent(c)
	case *schema.ComplexContent:
		e.complexContent(c)
	case *schema.Extension:
		e.extension(c)
	case *schema.RestrictionSimpleContent:
		e.restrictionSimpleContent(c)
	case *schema.RestrictionComplexContent:
		e.restrictionComplexContent(c)
	case *schema.RestrictionSimpleType:
		e.restrictionSimpleType(c)
	case *schema.List:
		e.list(c)
	case *schema.Union:
		e.union(c)
	case schema.Facet:
		e.facet(c)
	case *schema.IdentityConstraint:
		e.identityConstraint(c)
	case *schema.Selector:
		e.xpathLeaf("selector", c.Identifiable, c.Annotated, c.XPath)
	case *schema.Field:
		e.xpathLeaf("field", c.Identifiable, c.Annotated, c.XPath)
	case *schema.Include:
		e.include(c)
	case *schema.Import:
		e.importDirective(c)
	case *schema.Redefine:
		e.redefine(c)
	case *schema.Notation:
		e.notation(c)
	case *schema.Annotation:
		e.annotation(c)
	default:
		return fmt.Errorf("encode: unsupported component %T", component)
	}
	return e.err
}

func (e *Encoder) tag(local string) string {
	if e.prefix == "" {
		return local
	}
	return e.prefix + ":" + local
}

func (e *Encoder) start(local string) {
	if e.err == nil {
		e.err = e.w.WriteStartElement(e.tag(local))
	}
}

func (e *Encoder) end(local string) {
	if e.err == nil {
		e.err = e.w.WriteEndElement(e.tag(local))
	}
}

func (e *Encoder) text(s string) {
	if e.err == nil && s != "" {
		e.err = e.w.WriteValue(s)
	}
}

// attr writes name when value is non-empty.
func (e *Encoder) attr(name, value string) {
	if e.err == nil && value != "" {
		e.err = e.w.WriteAttribute(name, value)
	}
}

func (e *Encoder) flag(name string, v bool) {
	if v {
		e.attr(name, "true")
	}
}

func (e *Encoder) qname(name string, q schema.QualifiedName) {
	if !q.IsZero() {
		e.attr(name, q.String())
	}
}

func (e *Encoder) occurs(o schema.Occurs) {
	if o.Min != 1 {
		e.attr("minOccurs", o.MinString())
	}
	if o.Max != 1 {
		e.attr("maxOccurs", o.MaxString())
	}
}

func (e *Encoder) processContents(p schema.ProcessContents) {
	if p != schema.Strict {
		e.attr("processContents", p.String())
	}
}

func (e *Encoder) schema(s *schema.Schema) {
	e.start("schema")
	declared := false
	for prefix, uri := range s.Namespaces.All() {
		if prefix == "" {
			e.attr("xmlns", uri)
		} else {
			e.attr("xmlns:"+prefix, uri)
		}
		declared = declared || (uri == schema.XSDNamespace && prefix == e.prefix)
	}
	if !declared {
		if e.prefix == "" {
			e.attr("xmlns", schema.XSDNamespace)
		} else {
			e.attr("xmlns:"+e.prefix, schema.XSDNamespace)
		}
	}
	e.attr("id", s.ID)
	e.attr("targetNamespace", s.TargetNamespace)
	e.attr("version", s.Version)
	e.attr("xml:lang", s.Lang)
	e.attr("attributeFormDefault", s.AttributeFormDefault.String())
	e.attr("elementFormDefault", s.ElementFormDefault.String())
	e.attr("blockDefault", s.BlockDefault.String())
	e.attr("finalDefault", s.FinalDefault.String())

	for _, inc := range s.Includes {
		e.include(inc)
	}
	for _, imp := range s.Imports {
		e.importDirective(imp)
	}
	for _, r := range s.Redefines {
		e.redefine(r)
	}
	for _, a := range s.Annotations {
		e.annotation(a)
	}
	for _, st := range s.SimpleTypes {
		e.simpleType(st)
	}
	for _, ct := range s.ComplexTypes {
		e.complexType(ct)
	}
	for _, g := range s.Groups {
		e.group(g)
	}
	for _, g := range s.AttributeGroups {
		e.attributeGroup(g)
	}
	for _, el := range s.Elements {
		e.element(el)
	}
	for _, a := range s.Attributes {
		e.attribute(a)
	}
	for _, n := range s.Notations {
		e.notation(n)
	}
	e.end("schema")
}

func (e *Encoder) annotation(a *schema.Annotation) {
	if a == nil {
		return
	}
	e.start("annotation")
	e.attr("id", a.ID)
	for _, item := range a.Items {
		tag := item.Kind.String()
		e.start(tag)
		e.attr("source", item.Source)
		if item.Kind == schema.Documentation {
			e.attr("xml:lang", item.Lang)
		}
		e.text(item.Value)
		e.end(tag)
	}
	e.end("annotation")
}

// leaf writes the annotation and end tag of a component without other
// children.
func (e *Encoder) leaf(local string, annotated schema.Annotated) {
	e.annotation(annotated.Annotation)
	e.end(local)
}

func (e *Encoder) include(inc *schema.Include) {
	e.start("include")
	e.attr("id", inc.ID)
	e.attr("schemaLocation", inc.SchemaLocation)
	e.leaf("include", inc.Annotated)
}

func (e *Encoder) importDirective(imp *schema.Import) {
	e.start("import")
	e.attr("id", imp.ID)
	e.attr("namespace", imp.Namespace)
	e.attr("schemaLocation", imp.SchemaLocation)
	e.leaf("import", imp.Annotated)
}

func (e *Encoder) redefine(r *schema.Redefine) {
	e.start("redefine")
	e.attr("id", r.ID)
	e.attr("schemaLocation", r.SchemaLocation)
	for _, c := range r.Components {
		switch c := c.(type) {
		case *schema.Annotation:
			e.annotation(c)
		case *schema.SimpleType:
			e.simpleType(c)
		case *schema.ComplexType:
			e.complexType(c)
		case *schema.Group:
			e.group(c)
		case *schema.AttributeGroup:
			e.attributeGroup(c)
		}
	}
	e.end("redefine")
}

func (e *Encoder) notation(n *schema.Notation) {
	e.start("notation")
	e.attr("id", n.ID)
	e.attr("name", n.Name)
	e.attr("public", n.Public)
	e.attr("system", n.System)
	e.leaf("notation", n.Annotated)
}

func (e *Encoder) element(el *schema.Element) {
	e.start("element")
	e.attr("id", el.ID)
	e.attr("name", el.Name)
	e.qname("ref", el.Ref)
	e.qname("type", el.TypeName())
	e.qname("substitutionGroup", el.SubstitutionGroup)
	e.attr("default", el.Default)
	e.attr("fixed", el.Fixed)
	e.attr("form", el.Form.String())
	e.attr("block", el.Block.String())
	e.attr("final", el.Final.String())
	e.flag("nillable", el.Nillable)
	e.flag("abstract", el.Abstract)
	e.occurs(el.Occurs)
	e.annotation(el.Annotation)
	if st := el.SimpleType(); st != nil {
		e.simpleType(st)
	}
	if ct := el.ComplexType(); ct != nil {
		e.complexType(ct)
	}
	for _, ic := range el.IdentityConstraints {
		e.identityConstraint(ic)
	}
	e.end("element")
}

func (e *Encoder) attribute(a *schema.Attribute) {
	e.start("attribute")
	e.attr("id", a.ID)
	e.attr("name", a.Name)
	e.qname("ref", a.Ref)
	e.qname("type", a.Type)
	if a.Use != schema.UseOptional {
		e.attr("use", a.Use.String())
	}
	e.attr("default", a.Default)
	e.attr("fixed", a.Fixed)
	e.attr("form", a.Form.String())
	e.annotation(a.Annotation)
	if a.SimpleType != nil {
		e.simpleType(a.SimpleType)
	}
	e.end("attribute")
}

func (e *Encoder) attributeGroup(g *schema.AttributeGroup) {
	e.start("attributeGroup")
	e.attr("id", g.ID)
	e.attr("name", g.Name)
	e.qname("ref", g.Ref)
	e.annotation(g.Annotation)
	e.attributeUses(g.Attributes, g.AnyAttribute)
	e.end("attributeGroup")
}

func (e *Encoder) attributeUses(attrs []schema.AbstractAttribute, anyAttr *schema.AnyAttribute) {
	for _, a := range attrs {
		switch a := a.(type) {
		case *schema.Attribute:
			e.attribute(a)
		case *schema.AttributeGroup:
			e.attributeGroup(a)
		}
	}
	if anyAttr != nil {
		e.anyAttribute(anyAttr)
	}
}

func (e *Encoder) anyAttribute(a *schema.AnyAttribute) {
	e.start("anyAttribute")
	e.attr("id", a.ID)
	e.attr("namespace", a.Namespace)
	e.processContents(a.ProcessContents)
	e.leaf("anyAttribute", a.Annotated)
}

func (e *Encoder) particle(p schema.Particle) {
	switch p := p.(type) {
	case *schema.Element:
		e.element(p)
	case *schema.Any:
		e.anyElement(p)
	case schema.Content:
		e.content(p)
	}
}

func (e *Encoder) content(c schema.Content) {
	switch c := c.(type) {
	case *schema.Group:
		e.group(c)
	case *schema.All:
		e.all(c)
	case *schema.Choice:
		e.modelGroup("choice", c.Identifiable, c.Annotated, c.Occurs, c.Particles)
	case *schema.Sequence:
		e.modelGroup("sequence", c.Identifiable, c.Annotated, c.Occurs, c.Particles)
	}
}

func (e *Encoder) group(g *schema.Group) {
	e.start("group")
	e.attr("id", g.ID)
	e.attr("name", g.Name)
	e.qname("ref", g.Ref)
	e.occurs(g.Occurs)
	e.annotation(g.Annotation)
	if g.Content != nil {
		e.content(g.Content)
	}
	e.end("group")
}

func (e *Encoder) modelGroup(local string, id schema.Identifiable, annotated schema.Annotated, occ schema.Occurs, particles []schema.Particle) {
	e.start(local)
	e.attr("id", id.ID)
	e.occurs(occ)
	e.annotation(annotated.Annotation)
	for _, p := range particles {
		e.particle(p)
	}
	e.end(local)
}

func (e *Encoder) all(a *schema.All) {
	e.start("all")
	e.attr("id", a.ID)
	e.occurs(a.Occurs)
	e.annotation(a.Annotation)
	for _, el := range a.Elements {
		e.element(el)
	}
	e.end("all")
}

func (e *Encoder) anyElement(a *schema.Any) {
	e.start("any")
	e.attr("id", a.ID)
	e.occurs(a.Occurs)
	e.attr("namespace", a.Namespace)
	e.processContents(a.ProcessContents)
	e.leaf("any", a.Annotated)
}

func (e *Encoder) complexType(ct *schema.ComplexType) {
	e.start("complexType")
	e.attr("id", ct.ID)
	e.attr("name", ct.Name)
	e.flag("abstract", ct.Abstract)
	e.flag("mixed", ct.Mixed)
	e.attr("block", ct.Block.String())
	e.attr("final", ct.Final.String())
	e.annotation(ct.Annotation)
	switch {
	case ct.SimpleContent() != nil:
		e.simpleContent(ct.SimpleContent())
	case ct.ComplexContent() != nil:
		e.complexContent(ct.ComplexContent())
	default:
		if ct.Content() != nil {
			e.content(ct.Content())
		}
		e.attributeUses(ct.Attributes(), ct.AnyAttribute())
	}
	e.end("complexType")
}

func (e *Encoder) simpleContent(sc *schema.SimpleContent) {
	e.start("simpleContent")
	e.attr("id", sc.ID)
	e.annotation(sc.Annotation)
	switch d := sc.Derivation().(type) {
	case *schema.Extension:
		e.extension(d)
	case *schema.RestrictionSimpleContent:
		e.restrictionSimpleContent(d)
	}
	e.end("simpleContent")
}

func (e *Encoder) complexContent(cc *schema.ComplexContent) {
	e.start("complexContent")
	e.attr("id", cc.ID)
	e.flag("mixed", cc.Mixed)
	e.annotation(cc.Annotation)
	switch d := cc.Derivation().(type) {
	case *schema.Extension:
		e.extension(d)
	case *schema.RestrictionComplexContent:
		e.restrictionComplexContent(d)
	}
	e.end("complexContent")
}

func (e *Encoder) extension(ext *schema.Extension) {
	e.start("extension")
	e.attr("id", ext.ID)
	e.qname("base", ext.Base)
	e.annotation(ext.Annotation)
	if ext.Content != nil {
		e.content(ext.Content)
	}
	e.attributeUses(ext.Attributes, ext.AnyAttribute)
	e.end("extension")
}

func (e *Encoder) restrictionSimpleContent(r *schema.RestrictionSimpleContent) {
	e.start("restriction")
	e.attr("id", r.ID)
	e.qname("base", r.Base)
	e.annotation(r.Annotation)
	if r.SimpleType != nil {
		e.simpleType(r.SimpleType)
	}
	for _, f := range r.Facets {
		e.facet(f)
	}
	e.attributeUses(r.Attributes, r.AnyAttribute)
	e.end("restriction")
}

func (e *Encoder) restrictionComplexContent(r *schema.RestrictionComplexContent) {
	e.start("restriction")
	e.attr("id", r.ID)
	e.qname("base", r.Base)
	e.annotation(r.Annotation)
	if r.Content != nil {
		e.content(r.Content)
	}
	e.attributeUses(r.Attributes, r.AnyAttribute)
	e.end("restriction")
}

func (e *Encoder) simpleType(st *schema.SimpleType) {
	e.start("simpleType")
	e.attr("id", st.ID)
	e.attr("name", st.Name)
	e.attr("final", st.Final.String())
	e.annotation(st.Annotation)
	switch c := st.Constructor().(type) {
	case *schema.RestrictionSimpleType:
		e.restrictionSimpleType(c)
	case *schema.List:
		e.list(c)
	case *schema.Union:
		e.union(c)
	}
	e.end("simpleType")
}

func (e *Encoder) restrictionSimpleType(r *schema.RestrictionSimpleType) {
	e.start("restriction")
	e.attr("id", r.ID)
	e.qname("base", r.Base)
	e.annotation(r.Annotation)
	if r.SimpleType != nil {
		e.simpleType(r.SimpleType)
	}
	for _, f := range r.Facets {
		e.facet(f)
	}
	e.end("restriction")
}

func (e *Encoder) facet(f schema.Facet) {
	tag := f.Name()
	e.start(tag)
	e.attr("id", f.ID)
	if e.err == nil {
		// value is mandatory even when empty, e.g. <enumeration value=""/>
		e.err = e.w.WriteAttribute("value", f.Value)
	}
	e.flag("fixed", f.Fixed)
	e.leaf(tag, f.Annotated)
}

func (e *Encoder) list(l *schema.List) {
	e.start("list")
	e.attr("id", l.ID)
	e.qname("itemType", l.ItemType)
	e.annotation(l.Annotation)
	if l.SimpleType != nil {
		e.simpleType(l.SimpleType)
	}
	e.end("list")
}

func (e *Encoder) union(u *schema.Union) {
	e.start("union")
	e.attr("id", u.ID)
	if len(u.MemberTypes) > 0 {
		members := make([]string, len(u.MemberTypes))
		for i, m := range u.MemberTypes {
			members[i] = m.String()
		}
		e.attr("memberTypes", strings.Join(members, " "))
	}
	e.annotation(u.Annotation)
	for _, st := range u.SimpleTypes {
		e.simpleType(st)
	}
	e.end("union")
}

func (e *Encoder) identityConstraint(ic *schema.IdentityConstraint) {
	tag := ic.Kind.String()
	e.start(tag)
	e.attr("id", ic.ID)
	e.attr("name", ic.Name)
	e.qname("refer", ic.Refer)
	e.annotation(ic.Annotation)
	if ic.Selector != nil {
		e.xpathLeaf("selector", ic.Selector.Identifiable, ic.Selector.Annotated, ic.Selector.XPath)
	}
	for _, f := range ic.Fields {
		e.xpathLeaf("field", f.Identifiable, f.Annotated, f.XPath)
	}
	e.end(tag)
}

func (e *Encoder) xpathLeaf(local string, id schema.Identifiable, annotated schema.Annotated, xpath string) {
	e.start(local)
	e.attr("id", id.ID)
	e.attr("xpath", xpath)
	e.leaf(local, annotated)
}
