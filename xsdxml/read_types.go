package xsdxml

import (
	xsderrors "github.com/claudiobogossian/terralib5-sub033/errors"
	"github.com/claudiobogossian/terralib5-sub033/pkg/xmlcursor"
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

func (d *Decoder) requiredQName(name string) (schema.QualifiedName, error) {
	q, ok, err := d.qnameAttr(name)
	if err != nil {
		return q, err
	}
	if !ok {
		pe := d.violation("missing required attribute")
		pe.Attribute = name
		return q, pe
	}
	return q, nil
}

// ReadSimpleType reads a named or anonymous <simpleType> and its single
// restriction, list or union.
func (d *Decoder) ReadSimpleType() (*schema.SimpleType, error) {
	if err := d.enter("simpleType"); err != nil {
		return nil, err
	}
	st := &schema.SimpleType{}
	d.readIdentifiable(&st.Identifiable)
	st.Name, _ = d.attr("name")
	final, err := d.derivationAttr("final", schema.SimpleTypeDerivations)
	if err != nil {
		return nil, err
	}
	st.Final = final
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&st.Annotated); err != nil {
		return nil, err
	}
	if err := requireChild(d, st, simpleTypeChildren); err != nil {
		return nil, err
	}
	if err := d.leave("simpleType"); err != nil {
		return nil, err
	}
	return st, nil
}

// ReadRestrictionSimpleType reads the <restriction> of a simple type. The
// base attribute is mandatory unless WithAnonymousRestrictionBase is set,
// in which case an anonymous simpleType may stand in for it.
func (d *Decoder) ReadRestrictionSimpleType() (*schema.RestrictionSimpleType, error) {
	if err := d.enter("restriction"); err != nil {
		return nil, err
	}
	r := &schema.RestrictionSimpleType{}
	d.readIdentifiable(&r.Identifiable)
	var err error
	if d.anonymousBase {
		r.Base, _, err = d.qnameAttr("base")
	} else {
		r.Base, err = d.requiredQName("base")
	}
	if err != nil {
		return nil, err
	}
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&r.Annotated); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, simpleTypeSlot(func(st *schema.SimpleType) { r.SimpleType = st }), inlineSimpleTypeChildren, 1); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, &r.Facets, facetChildren, 0); err != nil {
		return nil, err
	}
	if err := d.rejectUnknownFacet(); err != nil {
		return nil, err
	}
	if r.Base.IsZero() && r.SimpleType == nil {
		pe := d.violation("restriction requires a base attribute or an anonymous simpleType")
		pe.Attribute = "base"
		return nil, pe
	}
	if err := d.leave("restriction"); err != nil {
		return nil, err
	}
	return r, nil
}

// rejectUnknownFacet reports a start tag left after a facet run as an
// unknown facet unless next admits it. Other XML Schema element names are
// left for leave to report as unrecognized children.
func (d *Decoder) rejectUnknownFacet(next ...childTable[attributeSink]) error {
	if d.cur.NodeKind() != xmlcursor.StartElement {
		return nil
	}
	tag := d.cur.LocalName()
	for _, tbl := range next {
		if tbl.admits(tag) {
			return nil
		}
	}
	if structuralTags[tag] {
		return nil
	}
	if _, err := GetFacetType(tag); err != nil {
		pe, _ := xsderrors.AsParseError(err)
		pe.Tag = tag
		return d.locate(pe)
	}
	return nil
}

// ReadFacet reads a constraining facet such as <maxLength>; the tag names
// the facet type.
func (d *Decoder) ReadFacet() (schema.Facet, error) {
	var f schema.Facet
	if d.cur == nil {
		return f, xsderrors.NewParseError(xsderrors.ErrStructuralViolation, "nil cursor")
	}
	if d.cur.NodeKind() != xmlcursor.StartElement {
		pe := d.violation("expected start of facet element")
		pe.Actual = d.describeNode()
		return f, pe
	}
	tag := d.cur.LocalName()
	ft, err := GetFacetType(tag)
	if err != nil {
		pe, _ := xsderrors.AsParseError(err)
		pe.Tag = tag
		return f, d.locate(pe)
	}
	if err := d.enter(tag); err != nil {
		return f, err
	}
	f.Type = ft
	d.readIdentifiable(&f.Identifiable)
	if f.Value, err = d.requiredAttr("value"); err != nil {
		return f, err
	}
	if f.Fixed, err = d.boolAttr("fixed"); err != nil {
		return f, err
	}
	if err := d.readLeaf(tag, &f.Annotated); err != nil {
		return f, err
	}
	return f, nil
}

// ReadList reads a <list> with an itemType reference or an anonymous item
// type, never both.
func (d *Decoder) ReadList() (*schema.List, error) {
	if err := d.enter("list"); err != nil {
		return nil, err
	}
	l := &schema.List{}
	d.readIdentifiable(&l.Identifiable)
	itemType, _, err := d.qnameAttr("itemType")
	if err != nil {
		return nil, err
	}
	l.ItemType = itemType
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&l.Annotated); err != nil {
		return nil, err
	}
	if d.atStart("simpleType") && !l.ItemType.IsZero() {
		pe := d.violation("itemType attribute and anonymous simpleType are mutually exclusive")
		pe.Attribute = "itemType"
		return nil, pe
	}
	if _, err := readChildren(d, simpleTypeSlot(func(st *schema.SimpleType) { l.SimpleType = st }), inlineSimpleTypeChildren, 1); err != nil {
		return nil, err
	}
	if l.ItemType.IsZero() && l.SimpleType == nil {
		pe := d.violation("list requires an itemType attribute or an anonymous simpleType")
		pe.Attribute = "itemType"
		return nil, pe
	}
	if err := d.leave("list"); err != nil {
		return nil, err
	}
	return l, nil
}

// ReadUnion reads a <union> of member type references and anonymous
// member types.
func (d *Decoder) ReadUnion() (*schema.Union, error) {
	if err := d.enter("union"); err != nil {
		return nil, err
	}
	u := &schema.Union{}
	d.readIdentifiable(&u.Identifiable)
	members, err := d.qnameListAttr("memberTypes")
	if err != nil {
		return nil, err
	}
	u.MemberTypes = members
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&u.Annotated); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, u, unionChildren, 0); err != nil {
		return nil, err
	}
	if err := d.leave("union"); err != nil {
		return nil, err
	}
	return u, nil
}

// ReadComplexType reads a <complexType>: either a simpleContent or
// complexContent derivation, or an optional particle followed by attribute
// uses and an optional attribute wildcard.
func (d *Decoder) ReadComplexType() (*schema.ComplexType, error) {
	if err := d.enter("complexType"); err != nil {
		return nil, err
	}
	ct := &schema.ComplexType{}
	d.readIdentifiable(&ct.Identifiable)
	ct.Name, _ = d.attr("name")
	var err error
	if ct.Abstract, err = d.boolAttr("abstract"); err != nil {
		return nil, err
	}
	if ct.Mixed, err = d.boolAttr("mixed"); err != nil {
		return nil, err
	}
	if ct.Block, err = d.derivationAttr("block", schema.ComplexTypeDerivations); err != nil {
		return nil, err
	}
	if ct.Final, err = d.derivationAttr("final", schema.ComplexTypeDerivations); err != nil {
		return nil, err
	}
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&ct.Annotated); err != nil {
		return nil, err
	}
	n, err := readChildren(d, ct, complexTypeBranchChildren, 1)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if _, err := readChildren(d, contentSlot(ct.SetContent), contentChildren, 1); err != nil {
			return nil, err
		}
		var sink attributeSink = complexTypeAttributes{ct}
		if err := d.readAttributeUses(sink, nil); err != nil {
			return nil, err
		}
	}
	if err := d.leave("complexType"); err != nil {
		return nil, err
	}
	return ct, nil
}

// readAttributeUses reads (attribute|attributeGroup)* anyAttribute?. When
// facets is non-nil a facet run comes first.
func (d *Decoder) readAttributeUses(sink attributeSink, facets *[]schema.Facet) error {
	if facets != nil {
		if _, err := readChildren(d, facets, facetChildren, 0); err != nil {
			return err
		}
		if err := d.rejectUnknownFacet(attributeChildren, anyAttributeChildren); err != nil {
			return err
		}
	}
	if _, err := readChildren(d, sink, attributeChildren, 0); err != nil {
		return err
	}
	_, err := readChildren(d, sink, anyAttributeChildren, 1)
	return err
}

// ReadSimpleContent reads a <simpleContent> holding one extension or
// restriction.
func (d *Decoder) ReadSimpleContent() (*schema.SimpleContent, error) {
	if err := d.enter("simpleContent"); err != nil {
		return nil, err
	}
	sc := &schema.SimpleContent{}
	d.readIdentifiable(&sc.Identifiable)
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&sc.Annotated); err != nil {
		return nil, err
	}
	if err := requireChild(d, sc, simpleContentChildren); err != nil {
		return nil, err
	}
	if err := d.leave("simpleContent"); err != nil {
		return nil, err
	}
	return sc, nil
}

// ReadComplexContent reads a <complexContent> holding one extension or
// restriction.
func (d *Decoder) ReadComplexContent() (*schema.ComplexContent, error) {
	if err := d.enter("complexContent"); err != nil {
		return nil, err
	}
	cc := &schema.ComplexContent{}
	d.readIdentifiable(&cc.Identifiable)
	mixed, err := d.boolAttr("mixed")
	if err != nil {
		return nil, err
	}
	cc.Mixed = mixed
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&cc.Annotated); err != nil {
		return nil, err
	}
	if err := requireChild(d, cc, complexContentChildren); err != nil {
		return nil, err
	}
	if err := d.leave("complexContent"); err != nil {
		return nil, err
	}
	return cc, nil
}

// ReadExtension reads an <extension> of simple or complex content.
func (d *Decoder) ReadExtension() (*schema.Extension, error) {
	if err := d.enter("extension"); err != nil {
		return nil, err
	}
	ext := &schema.Extension{}
	d.readIdentifiable(&ext.Identifiable)
	base, err := d.requiredQName("base")
	if err != nil {
		return nil, err
	}
	ext.Base = base
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&ext.Annotated); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, contentSlot(func(c schema.Content) { ext.Content = c }), contentChildren, 1); err != nil {
		return nil, err
	}
	if err := d.readAttributeUses(attributeList{&ext.Attributes, &ext.AnyAttribute}, nil); err != nil {
		return nil, err
	}
	if err := d.leave("extension"); err != nil {
		return nil, err
	}
	return ext, nil
}

// ReadRestrictionSimpleContent reads the <restriction> of a simpleContent.
func (d *Decoder) ReadRestrictionSimpleContent() (*schema.RestrictionSimpleContent, error) {
	if err := d.enter("restriction"); err != nil {
		return nil, err
	}
	r := &schema.RestrictionSimpleContent{}
	d.readIdentifiable(&r.Identifiable)
	base, err := d.requiredQName("base")
	if err != nil {
		return nil, err
	}
	r.Base = base
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&r.Annotated); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, simpleTypeSlot(func(st *schema.SimpleType) { r.SimpleType = st }), inlineSimpleTypeChildren, 1); err != nil {
		return nil, err
	}
	if err := d.readAttributeUses(attributeList{&r.Attributes, &r.AnyAttribute}, &r.Facets); err != nil {
		return nil, err
	}
	if err := d.leave("restriction"); err != nil {
		return nil, err
	}
	return r, nil
}

// ReadRestrictionComplexContent reads the <restriction> of a
// complexContent.
func (d *Decoder) ReadRestrictionComplexContent() (*schema.RestrictionComplexContent, error) {
	if err := d.enter("restriction"); err != nil {
		return nil, err
	}
	r := &schema.RestrictionComplexContent{}
	d.readIdentifiable(&r.Identifiable)
	base, err := d.requiredQName("base")
	if err != nil {
		return nil, err
	}
	r.Base = base
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&r.Annotated); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, contentSlot(func(c schema.Content) { r.Content = c }), contentChildren, 1); err != nil {
		return nil, err
	}
	if err := d.readAttributeUses(attributeList{&r.Attributes, &r.AnyAttribute}, nil); err != nil {
		return nil, err
	}
	if err := d.leave("restriction"); err != nil {
		return nil, err
	}
	return r, nil
}
