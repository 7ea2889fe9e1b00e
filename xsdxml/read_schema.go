package xsdxml

import (
	"strings"

	xsderrors "github.com/claudiobogossian/terralib5-sub033/errors"
	"github.com/claudiobogossian/terralib5-sub033/pkg/xmlcursor"
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

const finalDefaultDerivations = schema.ComplexTypeDerivations | schema.SimpleTypeDerivations

// ReadSchema reads a <schema> document element: its attributes and
// namespace declarations, the leading directives, then the top-level
// components in document order.
func (d *Decoder) ReadSchema() (*schema.Schema, error) {
	if err := d.enter("schema"); err != nil {
		return nil, err
	}
	s := schema.NewSchema()
	d.readIdentifiable(&s.Identifiable)
	s.TargetNamespace, _ = d.attr("targetNamespace")
	s.Version, _ = d.attr("version")
	s.Lang, _ = d.attr("lang")

	var err error
	if s.AttributeFormDefault, err = d.formAttr("attributeFormDefault"); err != nil {
		return nil, err
	}
	if s.ElementFormDefault, err = d.formAttr("elementFormDefault"); err != nil {
		return nil, err
	}
	if s.BlockDefault, err = d.derivationAttr("blockDefault", schema.ElementBlockDerivations); err != nil {
		return nil, err
	}
	if s.FinalDefault, err = d.derivationAttr("finalDefault", finalDefaultDerivations); err != nil {
		return nil, err
	}
	for i := 0; i < d.cur.NamespaceCount(); i++ {
		s.Namespaces.Bind(d.cur.NamespaceAt(i))
	}

	if err := d.startContent(); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, s, schemaDirectiveChildren, 0); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, s, schemaComponentChildren, 0); err != nil {
		return nil, err
	}
	if err := d.leave("schema"); err != nil {
		return nil, err
	}
	d.log.Debug().
		Str("targetNamespace", s.TargetNamespace).
		Int("elements", len(s.Elements)).
		Int("complexTypes", len(s.ComplexTypes)).
		Int("simpleTypes", len(s.SimpleTypes)).
		Msg("schema read")
	return s, nil
}

// ReadInclude reads an <include> directive.
func (d *Decoder) ReadInclude() (*schema.Include, error) {
	if err := d.enter("include"); err != nil {
		return nil, err
	}
	inc := &schema.Include{}
	d.readIdentifiable(&inc.Identifiable)
	loc, err := d.requiredAttr("schemaLocation")
	if err != nil {
		return nil, err
	}
	inc.SchemaLocation = loc
	if err := d.readLeaf("include", &inc.Annotated); err != nil {
		return nil, err
	}
	return inc, nil
}

// ReadImport reads an <import> directive.
func (d *Decoder) ReadImport() (*schema.Import, error) {
	if err := d.enter("import"); err != nil {
		return nil, err
	}
	imp := &schema.Import{}
	d.readIdentifiable(&imp.Identifiable)
	imp.Namespace, _ = d.attr("namespace")
	imp.SchemaLocation, _ = d.attr("schemaLocation")
	if err := d.readLeaf("import", &imp.Annotated); err != nil {
		return nil, err
	}
	return imp, nil
}

// ReadRedefine reads a <redefine> directive with its annotations and
// redefined components.
func (d *Decoder) ReadRedefine() (*schema.Redefine, error) {
	if err := d.enter("redefine"); err != nil {
		return nil, err
	}
	r := &schema.Redefine{}
	d.readIdentifiable(&r.Identifiable)
	loc, err := d.requiredAttr("schemaLocation")
	if err != nil {
		return nil, err
	}
	r.SchemaLocation = loc
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, r, redefineChildren, 0); err != nil {
		return nil, err
	}
	if err := d.leave("redefine"); err != nil {
		return nil, err
	}
	return r, nil
}

// ReadNotation reads a <notation> declaration.
func (d *Decoder) ReadNotation() (*schema.Notation, error) {
	if err := d.enter("notation"); err != nil {
		return nil, err
	}
	n := &schema.Notation{}
	d.readIdentifiable(&n.Identifiable)
	name, err := d.requiredAttr("name")
	if err != nil {
		return nil, err
	}
	n.Name = name
	n.Public, _ = d.attr("public")
	n.System, _ = d.attr("system")
	if err := d.readLeaf("notation", &n.Annotated); err != nil {
		return nil, err
	}
	return n, nil
}

// ReadAnnotation reads an <annotation> and its appinfo and documentation
// records. Markup nested inside a record contributes only its text.
func (d *Decoder) ReadAnnotation() (*schema.Annotation, error) {
	if err := d.enter("annotation"); err != nil {
		return nil, err
	}
	a := schema.NewAnnotation()
	d.readIdentifiable(&a.Identifiable)
	if err := d.startContent(); err != nil {
		return nil, err
	}
	if _, err := readChildren(d, a, annotationChildren, 0); err != nil {
		return nil, err
	}
	if err := d.leave("annotation"); err != nil {
		return nil, err
	}
	return a, nil
}

func (d *Decoder) readAppInfo(a *schema.Annotation) error {
	if err := d.enter("appinfo"); err != nil {
		return err
	}
	source, _ := d.attr("source")
	text, err := d.readMixedText("appinfo")
	if err != nil {
		return err
	}
	a.AddAppInfo(source, text)
	return nil
}

func (d *Decoder) readDocumentation(a *schema.Annotation) error {
	if err := d.enter("documentation"); err != nil {
		return err
	}
	source, _ := d.attr("source")
	lang, _ := d.attr("lang")
	text, err := d.readMixedText("documentation")
	if err != nil {
		return err
	}
	a.AddDocumentation(source, lang, text)
	return nil
}

// readMixedText collects the text of the current element, skipping any
// nested markup, and moves past its end tag.
func (d *Decoder) readMixedText(tag string) (string, error) {
	if err := d.startContent(); err != nil {
		return "", err
	}
	var b strings.Builder
	nested := 0
	for {
		switch d.cur.NodeKind() {
		case xmlcursor.Value:
			b.WriteString(d.cur.ElementValue())
		case xmlcursor.StartElement:
			nested++
			if len(d.path)+nested > d.maxDepth {
				return "", d.errorf(xsderrors.ErrDepthExceeded, "nesting exceeds %d levels", d.maxDepth)
			}
		case xmlcursor.EndElement:
			if nested == 0 {
				if err := d.leave(tag); err != nil {
					return "", err
				}
				return b.String(), nil
			}
			nested--
		default:
			pe := d.violation("unexpected end of document")
			pe.Expected = []string{"</" + tag + ">"}
			return "", pe
		}
		if err := d.advance(); err != nil {
			return "", err
		}
	}
}

// readLeaf finishes a component whose only admissible child is a leading
// annotation. The cursor is still on the start tag.
func (d *Decoder) readLeaf(tag string, annotated *schema.Annotated) error {
	if err := d.startContent(); err != nil {
		return err
	}
	if err := d.readAnnotated(annotated); err != nil {
		return err
	}
	return d.leave(tag)
}
