package xsdxml

import (
	"slices"

	xsderrors "github.com/claudiobogossian/terralib5-sub033/errors"
	"github.com/claudiobogossian/terralib5-sub033/pkg/xmlcursor"
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

// childTable maps the admissible child tags of one grammar position to the
// handler that reads the child and installs it into parent.
type childTable[P any] map[string]func(d *Decoder, parent P) error

func (t childTable[P]) tags() []string {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

func (t childTable[P]) admits(tag string) bool {
	_, ok := t[tag]
	return ok
}

// readChildren dispatches the children of the current element through tbl
// until the next node is not a start tag admitted by tbl. limit caps the
// number of children read; zero means unbounded.
func readChildren[P any](d *Decoder, parent P, tbl childTable[P], limit int) (int, error) {
	n := 0
	for d.cur.NodeKind() == xmlcursor.StartElement && (limit == 0 || n < limit) {
		handler, ok := tbl[d.cur.LocalName()]
		if !ok {
			break
		}
		if err := handler(d, parent); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// requireChild reads exactly one child admitted by tbl.
func requireChild[P any](d *Decoder, parent P, tbl childTable[P]) error {
	n, err := readChildren(d, parent, tbl, 1)
	if err != nil {
		return err
	}
	if n == 0 {
		return d.missingChild(tbl.tags())
	}
	return nil
}

func (d *Decoder) missingChild(expected []string) error {
	pe := d.errorf(xsderrors.ErrUnrecognizedChild, "missing mandatory child")
	pe.Expected = expected
	pe.Actual = d.describeNode()
	return pe
}

func (d *Decoder) violation(format string, args ...any) *xsderrors.ParseError {
	return d.errorf(xsderrors.ErrStructuralViolation, format, args...)
}

func (d *Decoder) atStart(tag string) bool {
	return d.cur.NodeKind() == xmlcursor.StartElement && d.cur.LocalName() == tag
}

// requireGlobalName rejects a top-level or redefined component without a
// name. The cursor is on the component's start tag.
func (d *Decoder) requireGlobalName() error {
	if d.hasAttr("name") {
		return nil
	}
	pe := d.violation("top-level %s requires a name", d.cur.LocalName())
	pe.Tag = d.cur.LocalName()
	pe.Attribute = "name"
	return pe
}

// contentSlot receives the particle content of a complex type, derivation
// or model group.
type contentSlot func(schema.Content)

// simpleTypeSlot receives an anonymous simple type.
type simpleTypeSlot func(*schema.SimpleType)

// attributeSink receives attribute uses and the attribute wildcard.
type attributeSink interface {
	addAttribute(schema.AbstractAttribute)
	setAnyAttribute(*schema.AnyAttribute)
}

type complexTypeAttributes struct{ ct *schema.ComplexType }

func (c complexTypeAttributes) addAttribute(a schema.AbstractAttribute) { c.ct.AddAttribute(a) }

func (c complexTypeAttributes) setAnyAttribute(a *schema.AnyAttribute) { c.ct.SetAnyAttribute(a) }

type attributeList struct {
	attributes   *[]schema.AbstractAttribute
	anyAttribute **schema.AnyAttribute
}

func (l attributeList) addAttribute(a schema.AbstractAttribute) {
	*l.attributes = append(*l.attributes, a)
}

func (l attributeList) setAnyAttribute(a *schema.AnyAttribute) { *l.anyAttribute = a }

func particle[C schema.Particle](read func(*Decoder) (C, error)) func(*Decoder, *[]schema.Particle) error {
	return func(d *Decoder, list *[]schema.Particle) error {
		p, err := read(d)
		if err != nil {
			return err
		}
		*list = append(*list, p)
		return nil
	}
}

func content[C schema.Content](read func(*Decoder) (C, error)) func(*Decoder, contentSlot) error {
	return func(d *Decoder, slot contentSlot) error {
		c, err := read(d)
		if err != nil {
			return err
		}
		slot(c)
		return nil
	}
}

func attribute[C schema.AbstractAttribute](read func(*Decoder) (C, error)) func(*Decoder, attributeSink) error {
	return func(d *Decoder, sink attributeSink) error {
		a, err := read(d)
		if err != nil {
			return err
		}
		sink.addAttribute(a)
		return nil
	}
}

func redefined[C schema.Redefinable](read func(*Decoder) (C, error), named bool) func(*Decoder, *schema.Redefine) error {
	return func(d *Decoder, r *schema.Redefine) error {
		if named {
			if err := d.requireGlobalName(); err != nil {
				return err
			}
		}
		c, err := read(d)
		if err != nil {
			return err
		}
		r.Add(c)
		return nil
	}
}

func global[C any](read func(*Decoder) (C, error), put func(*schema.Schema, C)) func(*Decoder, *schema.Schema) error {
	return func(d *Decoder, s *schema.Schema) error {
		if err := d.requireGlobalName(); err != nil {
			return err
		}
		c, err := read(d)
		if err != nil {
			return err
		}
		put(s, c)
		return nil
	}
}

func readInlineSimpleType(d *Decoder, slot simpleTypeSlot) error {
	st, err := d.ReadSimpleType()
	if err != nil {
		return err
	}
	slot(st)
	return nil
}

func readAnyAttributeInto(d *Decoder, sink attributeSink) error {
	a, err := d.ReadAnyAttribute()
	if err != nil {
		return err
	}
	sink.setAnyAttribute(a)
	return nil
}

func readFacetInto(d *Decoder, facets *[]schema.Facet) error {
	f, err := d.ReadFacet()
	if err != nil {
		return err
	}
	*facets = append(*facets, f)
	return nil
}

func readIdentityConstraintInto(read func(*Decoder) (*schema.IdentityConstraint, error)) func(*Decoder, *schema.Element) error {
	return func(d *Decoder, e *schema.Element) error {
		ic, err := read(d)
		if err != nil {
			return err
		}
		e.AddIdentityConstraint(ic)
		return nil
	}
}

// structuralTags holds the XML Schema element names that are not facets.
var structuralTags = map[string]bool{
	"all": true, "annotation": true, "any": true, "anyAttribute": true,
	"appinfo": true, "attribute": true, "attributeGroup": true,
	"choice": true, "complexContent": true, "complexType": true,
	"documentation": true, "element": true, "extension": true,
	"field": true, "group": true, "import": true, "include": true,
	"key": true, "keyref": true, "list": true, "notation": true,
	"redefine": true, "restriction": true, "schema": true,
	"selector": true, "sequence": true, "simpleContent": true,
	"simpleType": true, "union": true, "unique": true,
}

// Grammar tables. They refer to the readers, which refer back to the
// tables, so they are populated in init.
var (
	particleChildren          childTable[*[]schema.Particle]
	modelGroupChildren        childTable[contentSlot]
	contentChildren           childTable[contentSlot]
	attributeChildren         childTable[attributeSink]
	anyAttributeChildren      childTable[attributeSink]
	facetChildren             childTable[*[]schema.Facet]
	inlineSimpleTypeChildren  childTable[simpleTypeSlot]
	simpleTypeChildren        childTable[*schema.SimpleType]
	unionChildren             childTable[*schema.Union]
	elementTypeChildren       childTable[*schema.Element]
	identityChildren          childTable[*schema.Element]
	attributeTypeChildren     childTable[*schema.Attribute]
	allChildren               childTable[*schema.All]
	complexTypeBranchChildren childTable[*schema.ComplexType]
	simpleContentChildren     childTable[*schema.SimpleContent]
	complexContentChildren    childTable[*schema.ComplexContent]
	selectorChildren          childTable[*schema.IdentityConstraint]
	fieldChildren             childTable[*schema.IdentityConstraint]
	annotationChildren        childTable[*schema.Annotation]
	redefineChildren          childTable[*schema.Redefine]
	schemaDirectiveChildren   childTable[*schema.Schema]
	schemaComponentChildren   childTable[*schema.Schema]
)

func init() {
	particleChildren = childTable[*[]schema.Particle]{
		"element":  particle((*Decoder).ReadElement),
		"group":    particle((*Decoder).ReadGroup),
		"choice":   particle((*Decoder).ReadChoice),
		"sequence": particle((*Decoder).ReadSequence),
		"any":      particle((*Decoder).ReadAny),
	}

	modelGroupChildren = childTable[contentSlot]{
		"all":      content((*Decoder).ReadAll),
		"choice":   content((*Decoder).ReadChoice),
		"sequence": content((*Decoder).ReadSequence),
	}
	contentChildren = childTable[contentSlot]{
		"group": content((*Decoder).ReadGroup),
	}
	for tag, handler := range modelGroupChildren {
		contentChildren[tag] = handler
	}

	attributeChildren = childTable[attributeSink]{
		"attribute":      attribute((*Decoder).ReadAttribute),
		"attributeGroup": attribute((*Decoder).ReadAttributeGroup),
	}
	anyAttributeChildren = childTable[attributeSink]{
		"anyAttribute": readAnyAttributeInto,
	}

	facetChildren = childTable[*[]schema.Facet]{}
	for _, ft := range schema.FacetTypes() {
		facetChildren[ft.String()] = readFacetInto
	}

	inlineSimpleTypeChildren = childTable[simpleTypeSlot]{
		"simpleType": readInlineSimpleType,
	}

	simpleTypeChildren = childTable[*schema.SimpleType]{
		"restriction": func(d *Decoder, st *schema.SimpleType) error {
			r, err := d.ReadRestrictionSimpleType()
			if err != nil {
				return err
			}
			st.SetRestriction(r)
			return nil
		},
		"list": func(d *Decoder, st *schema.SimpleType) error {
			l, err := d.ReadList()
			if err != nil {
				return err
			}
			st.SetList(l)
			return nil
		},
		"union": func(d *Decoder, st *schema.SimpleType) error {
			u, err := d.ReadUnion()
			if err != nil {
				return err
			}
			st.SetUnion(u)
			return nil
		},
	}

	unionChildren = childTable[*schema.Union]{
		"simpleType": func(d *Decoder, u *schema.Union) error {
			st, err := d.ReadSimpleType()
			if err != nil {
				return err
			}
			u.SimpleTypes = append(u.SimpleTypes, st)
			return nil
		},
	}

	elementTypeChildren = childTable[*schema.Element]{
		"simpleType": func(d *Decoder, e *schema.Element) error {
			if err := d.rejectTypeAttribute(e.TypeName()); err != nil {
				return err
			}
			st, err := d.ReadSimpleType()
			if err != nil {
				return err
			}
			e.SetSimpleType(st)
			return nil
		},
		"complexType": func(d *Decoder, e *schema.Element) error {
			if err := d.rejectTypeAttribute(e.TypeName()); err != nil {
				return err
			}
			ct, err := d.ReadComplexType()
			if err != nil {
				return err
			}
			e.SetComplexType(ct)
			return nil
		},
	}
	identityChildren = childTable[*schema.Element]{
		"unique": readIdentityConstraintInto((*Decoder).ReadUnique),
		"key":    readIdentityConstraintInto((*Decoder).ReadKey),
		"keyref": readIdentityConstraintInto((*Decoder).ReadKeyRef),
	}

	attributeTypeChildren = childTable[*schema.Attribute]{
		"simpleType": func(d *Decoder, a *schema.Attribute) error {
			if err := d.rejectTypeAttribute(a.Type); err != nil {
				return err
			}
			st, err := d.ReadSimpleType()
			if err != nil {
				return err
			}
			a.SimpleType = st
			return nil
		},
	}

	allChildren = childTable[*schema.All]{
		"element": func(d *Decoder, a *schema.All) error {
			e, err := d.ReadElement()
			if err != nil {
				return err
			}
			a.Elements = append(a.Elements, e)
			return nil
		},
	}

	complexTypeBranchChildren = childTable[*schema.ComplexType]{
		"simpleContent": func(d *Decoder, ct *schema.ComplexType) error {
			sc, err := d.ReadSimpleContent()
			if err != nil {
				return err
			}
			ct.SetSimpleContent(sc)
			return nil
		},
		"complexContent": func(d *Decoder, ct *schema.ComplexType) error {
			cc, err := d.ReadComplexContent()
			if err != nil {
				return err
			}
			ct.SetComplexContent(cc)
			return nil
		},
	}

	simpleContentChildren = childTable[*schema.SimpleContent]{
		"restriction": func(d *Decoder, sc *schema.SimpleContent) error {
			r, err := d.ReadRestrictionSimpleContent()
			if err != nil {
				return err
			}
			sc.SetRestriction(r)
			return nil
		},
		"extension": func(d *Decoder, sc *schema.SimpleContent) error {
			ext, err := d.ReadExtension()
			if err != nil {
				return err
			}
			sc.SetExtension(ext)
			return nil
		},
	}
	complexContentChildren = childTable[*schema.ComplexContent]{
		"restriction": func(d *Decoder, cc *schema.ComplexContent) error {
			r, err := d.ReadRestrictionComplexContent()
			if err != nil {
				return err
			}
			cc.SetRestriction(r)
			return nil
		},
		"extension": func(d *Decoder, cc *schema.ComplexContent) error {
			ext, err := d.ReadExtension()
			if err != nil {
				return err
			}
			cc.SetExtension(ext)
			return nil
		},
	}

	selectorChildren = childTable[*schema.IdentityConstraint]{
		"selector": func(d *Decoder, ic *schema.IdentityConstraint) error {
			s, err := d.ReadSelector()
			if err != nil {
				return err
			}
			ic.Selector = s
			return nil
		},
	}
	fieldChildren = childTable[*schema.IdentityConstraint]{
		"field": func(d *Decoder, ic *schema.IdentityConstraint) error {
			f, err := d.ReadField()
			if err != nil {
				return err
			}
			ic.AddField(f)
			return nil
		},
	}

	annotationChildren = childTable[*schema.Annotation]{
		"appinfo":       (*Decoder).readAppInfo,
		"documentation": (*Decoder).readDocumentation,
	}

	redefineChildren = childTable[*schema.Redefine]{
		"annotation":     redefined((*Decoder).ReadAnnotation, false),
		"simpleType":     redefined((*Decoder).ReadSimpleType, true),
		"complexType":    redefined((*Decoder).ReadComplexType, true),
		"group":          redefined((*Decoder).ReadGroup, true),
		"attributeGroup": redefined((*Decoder).ReadAttributeGroup, true),
	}

	schemaDirectiveChildren = childTable[*schema.Schema]{
		"include": func(d *Decoder, s *schema.Schema) error {
			inc, err := d.ReadInclude()
			if err != nil {
				return err
			}
			s.Includes = append(s.Includes, inc)
			return nil
		},
		"import": func(d *Decoder, s *schema.Schema) error {
			imp, err := d.ReadImport()
			if err != nil {
				return err
			}
			s.Imports = append(s.Imports, imp)
			return nil
		},
		"redefine": func(d *Decoder, s *schema.Schema) error {
			r, err := d.ReadRedefine()
			if err != nil {
				return err
			}
			s.Redefines = append(s.Redefines, r)
			return nil
		},
		"annotation": readSchemaAnnotation,
	}
	schemaComponentChildren = childTable[*schema.Schema]{
		"simpleType": global((*Decoder).ReadSimpleType, func(s *schema.Schema, st *schema.SimpleType) {
			s.SimpleTypes = append(s.SimpleTypes, st)
		}),
		"complexType": global((*Decoder).ReadComplexType, func(s *schema.Schema, ct *schema.ComplexType) {
			s.ComplexTypes = append(s.ComplexTypes, ct)
		}),
		"group": global((*Decoder).ReadGroup, func(s *schema.Schema, g *schema.Group) {
			s.Groups = append(s.Groups, g)
		}),
		"attributeGroup": global((*Decoder).ReadAttributeGroup, func(s *schema.Schema, g *schema.AttributeGroup) {
			s.AttributeGroups = append(s.AttributeGroups, g)
		}),
		"element": global((*Decoder).ReadElement, func(s *schema.Schema, e *schema.Element) {
			s.Elements = append(s.Elements, e)
		}),
		"attribute": global((*Decoder).ReadAttribute, func(s *schema.Schema, a *schema.Attribute) {
			s.Attributes = append(s.Attributes, a)
		}),
		"notation": global((*Decoder).ReadNotation, func(s *schema.Schema, n *schema.Notation) {
			s.Notations = append(s.Notations, n)
		}),
		"annotation": readSchemaAnnotation,
	}
}

func readSchemaAnnotation(d *Decoder, s *schema.Schema) error {
	a, err := d.ReadAnnotation()
	if err != nil {
		return err
	}
	s.Annotations = append(s.Annotations, a)
	return nil
}

// rejectTypeAttribute fails when an inline type follows a type= reference.
func (d *Decoder) rejectTypeAttribute(typeName schema.QualifiedName) error {
	if typeName.IsZero() {
		return nil
	}
	pe := d.violation("type attribute and anonymous %s are mutually exclusive", d.cur.LocalName())
	pe.Attribute = "type"
	pe.Actual = typeName.String()
	return pe
}
