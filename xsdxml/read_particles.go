package xsdxml

import (
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

// nameOrRef reads the name and ref attributes, exactly one of which must
// be present.
func (d *Decoder) nameOrRef(tag string) (string, schema.QualifiedName, error) {
	name, hasName := d.attr("name")
	ref, hasRef, err := d.qnameAttr("ref")
	if err != nil {
		return "", ref, err
	}
	switch {
	case hasName && hasRef:
		pe := d.violation("%s name and ref are mutually exclusive", tag)
		pe.Attribute = "ref"
		return "", ref, pe
	case !hasName && !hasRef:
		pe := d.violation("%s requires a name or a ref", tag)
		pe.Attribute = "name"
		return "", ref, pe
	}
	return name, ref, nil
}

// ReadElement reads an element declaration or reference with its optional
// anonymous type and identity constraints.
func (d *Decoder) ReadElement() (*schema.Element, error) {
	if err := d.enter("element"); err != nil {
		return nil, err
	}
	e := &schema.Element{}
	d.readIdentifiable(&e.Identifiable)
	var err error
	if e.Name, e.Ref, err = d.nameOrRef("element"); err != nil {
		return nil, err
	}
	typeName, hasType, err := d.qnameAttr("type")
	if err != nil {
		return nil, err
	}
	if hasType {
		e.SetType(typeName)
	}
	if e.SubstitutionGroup, _, err = d.qnameAttr("substitutionGroup"); err != nil {
		return nil, err
	}
	e.Default, _ = d.attr("default")
	e.Fixed, _ = d.attr("fixed")
	if e.Form, err = d.formAttr("form"); err != nil {
		return nil, err
	}
	if e.Block, err = d.derivationAttr("block", schema.ElementBlockDerivations); err != nil {
		return nil, err
	}
	if e.Final, err = d.derivationAttr("final", schema.ComplexTypeDerivations); err != nil {
		return nil, err
	}
	if e.Nillable, err = d.boolAttr("nillable"); err != nil {
		return nil, err
	}
	if e.Abstract, err = d.boolAttr("abstract"); err != nil {
		return nil, err
	}
	if e.Occurs, err = d.readOccurs(); err != nil {
		return nil, err
	}
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&e.Annotated); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, e, elementTypeChildren, 1); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, e, identityChildren, 0); err != nil {
		return nil, err
	}
	if err := d.leave("element"); err != nil {
		return nil, err
	}
	return e, nil
}

// ReadAttribute reads an attribute declaration or reference.
func (d *Decoder) ReadAttribute() (*schema.Attribute, error) {
	if err := d.enter("attribute"); err != nil {
		return nil, err
	}
	a := &schema.Attribute{}
	d.readIdentifiable(&a.Identifiable)
	var err error
	if a.Name, a.Ref, err = d.nameOrRef("attribute"); err != nil {
		return nil, err
	}
	if a.Type, _, err = d.qnameAttr("type"); err != nil {
		return nil, err
	}
	if a.Use, err = d.useAttr(); err != nil {
		return nil, err
	}
	a.Default, _ = d.attr("default")
	a.Fixed, _ = d.attr("fixed")
	if a.Form, err = d.formAttr("form"); err != nil {
		return nil, err
	}
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&a.Annotated); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, a, attributeTypeChildren, 1); err != nil {
		return nil, err
	}
	if err := d.leave("attribute"); err != nil {
		return nil, err
	}
	return a, nil
}

// ReadAttributeGroup reads an attribute group definition or reference.
func (d *Decoder) ReadAttributeGroup() (*schema.AttributeGroup, error) {
	if err := d.enter("attributeGroup"); err != nil {
		return nil, err
	}
	g := &schema.AttributeGroup{}
	d.readIdentifiable(&g.Identifiable)
	var err error
	if g.Name, g.Ref, err = d.nameOrRef("attributeGroup"); err != nil {
		return nil, err
	}
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&g.Annotated); err != nil {
		return nil, err
	}
	if err := d.readAttributeUses(attributeList{&g.Attributes, &g.AnyAttribute}, nil); err != nil {
		return nil, err
	}
	if err := d.leave("attributeGroup"); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadGroup reads a model group definition, which holds exactly one of
// all, choice or sequence, or a group reference, which holds none.
func (d *Decoder) ReadGroup() (*schema.Group, error) {
	if err := d.enter("group"); err != nil {
		return nil, err
	}
	g := &schema.Group{}
	d.readIdentifiable(&g.Identifiable)
	var err error
	if g.Name, g.Ref, err = d.nameOrRef("group"); err != nil {
		return nil, err
	}
	if g.Occurs, err = d.readOccurs(); err != nil {
		return nil, err
	}
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&g.Annotated); err != nil {
		return nil, err
	}
	if g.IsReference() {
		if err := d.leave("group"); err != nil {
			return nil, err
		}
		return g, nil
	}
	if err := requireChild(d, contentSlot(func(c schema.Content) { g.Content = c }), modelGroupChildren); err != nil {
		return nil, err
	}
	if err := d.leave("group"); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadSequence reads a <sequence> of particles.
func (d *Decoder) ReadSequence() (*schema.Sequence, error) {
	if err := d.enter("sequence"); err != nil {
		return nil, err
	}
	s := schema.NewSequence()
	if err := d.readModelGroup("sequence", &s.Identifiable, &s.Annotated, &s.Occurs, &s.Particles); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadChoice reads a <choice> of particles.
func (d *Decoder) ReadChoice() (*schema.Choice, error) {
	if err := d.enter("choice"); err != nil {
		return nil, err
	}
	c := schema.NewChoice()
	if err := d.readModelGroup("choice", &c.Identifiable, &c.Annotated, &c.Occurs, &c.Particles); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *Decoder) readModelGroup(tag string, id *schema.Identifiable, annotated *schema.Annotated, occurs *schema.Occurs, particles *[]schema.Particle) error {
	d.readIdentifiable(id)
	occ, err := d.readOccurs()
	if err != nil {
		return err
	}
	*occurs = occ
	if err := d.startContent(); err != nil {
		return err
	}
	if err := d.readAnnotated(annotated); err != nil {
		return err
	}
	if _, err := readChildren(d, particles, particleChildren, 0); err != nil {
		return err
	}
	return d.leave(tag)
}

// ReadAll reads an <all> group of element particles.
func (d *Decoder) ReadAll() (*schema.All, error) {
	if err := d.enter("all"); err != nil {
		return nil, err
	}
	a := schema.NewAll()
	d.readIdentifiable(&a.Identifiable)
	var err error
	if a.Occurs, err = d.readOccurs(); err != nil {
		return nil, err
	}
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&a.Annotated); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, a, allChildren, 0); err != nil {
		return nil, err
	}
	if err := d.leave("all"); err != nil {
		return nil, err
	}
	return a, nil
}

// ReadAny reads an <any> element wildcard.
func (d *Decoder) ReadAny() (*schema.Any, error) {
	if err := d.enter("any"); err != nil {
		return nil, err
	}
	a := schema.NewAny()
	d.readIdentifiable(&a.Identifiable)
	var err error
	if a.Occurs, err = d.readOccurs(); err != nil {
		return nil, err
	}
	a.Namespace, _ = d.attr("namespace")
	if a.ProcessContents, err = d.processContentsAttr(); err != nil {
		return nil, err
	}
	if err := d.readLeaf("any", &a.Annotated); err != nil {
		return nil, err
	}
	return a, nil
}

// ReadAnyAttribute reads an <anyAttribute> wildcard.
func (d *Decoder) ReadAnyAttribute() (*schema.AnyAttribute, error) {
	if err := d.enter("anyAttribute"); err != nil {
		return nil, err
	}
	a := &schema.AnyAttribute{}
	d.readIdentifiable(&a.Identifiable)
	a.Namespace, _ = d.attr("namespace")
	var err error
	if a.ProcessContents, err = d.processContentsAttr(); err != nil {
		return nil, err
	}
	if err := d.readLeaf("anyAttribute", &a.Annotated); err != nil {
		return nil, err
	}
	return a, nil
}

// ReadUnique reads a <unique> identity constraint.
func (d *Decoder) ReadUnique() (*schema.IdentityConstraint, error) {
	return d.readIdentityConstraint(schema.UniqueConstraint)
}

// ReadKey reads a <key> identity constraint.
func (d *Decoder) ReadKey() (*schema.IdentityConstraint, error) {
	return d.readIdentityConstraint(schema.KeyConstraint)
}

// ReadKeyRef reads a <keyref> identity constraint.
func (d *Decoder) ReadKeyRef() (*schema.IdentityConstraint, error) {
	return d.readIdentityConstraint(schema.KeyRefConstraint)
}

func (d *Decoder) readIdentityConstraint(kind schema.IdentityConstraintKind) (*schema.IdentityConstraint, error) {
	tag := kind.String()
	if err := d.enter(tag); err != nil {
		return nil, err
	}
	ic := &schema.IdentityConstraint{Kind: kind}
	d.readIdentifiable(&ic.Identifiable)
	var err error
	if ic.Name, err = d.requiredAttr("name"); err != nil {
		return nil, err
	}
	if kind == schema.KeyRefConstraint {
		if ic.Refer, err = d.requiredQName("refer"); err != nil {
			return nil, err
		}
	}
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if err := d.readAnnotated(&ic.Annotated); err != nil {
		return nil, err
	}
	if err := requireChild(d, ic, selectorChildren); err != nil {
		return nil, err
	}
	n, err := readChildren(d, ic, fieldChildren, 0)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, d.missingChild(fieldChildren.tags())
	}
	if err := d.leave(tag); err != nil {
		return nil, err
	}
	return ic, nil
}

// ReadSelector reads the <selector> of an identity constraint.
func (d *Decoder) ReadSelector() (*schema.Selector, error) {
	if err := d.enter("selector"); err != nil {
		return nil, err
	}
	s := &schema.Selector{}
	d.readIdentifiable(&s.Identifiable)
	var err error
	if s.XPath, err = d.requiredAttr("xpath"); err != nil {
		return nil, err
	}
	if err := d.readLeaf("selector", &s.Annotated); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadField reads a <field> of an identity constraint.
func (d *Decoder) ReadField() (*schema.Field, error) {
	if err := d.enter("field"); err != nil {
		return nil, err
	}
	f := &schema.Field{}
	d.readIdentifiable(&f.Identifiable)
	var err error
	if f.XPath, err = d.requiredAttr("xpath"); err != nil {
		return nil, err
	}
	if err := d.readLeaf("field", &f.Annotated); err != nil {
		return nil, err
	}
	return f, nil
}
