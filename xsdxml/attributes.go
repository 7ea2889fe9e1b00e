package xsdxml

import (
	"strings"

	xsderrors "github.com/claudiobogossian/terralib5-sub033/errors"
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

// CreateQName splits a "prefix:local" reference. A reference without a
// colon has an empty prefix.
func CreateQName(s string) (schema.QualifiedName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return schema.QualifiedName{}, malformedQName(s)
	}
	prefix, local, found := strings.Cut(s, ":")
	if !found {
		return schema.QualifiedName{LocalPart: s}, nil
	}
	if prefix == "" || local == "" || strings.Contains(local, ":") {
		return schema.QualifiedName{}, malformedQName(s)
	}
	return schema.QualifiedName{Prefix: prefix, LocalPart: local}, nil
}

func malformedQName(s string) *xsderrors.ParseError {
	pe := xsderrors.NewParseError(xsderrors.ErrMalformedQName, "malformed qualified name")
	pe.Actual = s
	pe.Expected = []string{"prefix:local", "local"}
	return pe
}

// GetFacetType maps a facet tag such as "maxLength" to its FacetType.
func GetFacetType(name string) (schema.FacetType, error) {
	if ft, ok := schema.LookupFacetType(name); ok {
		return ft, nil
	}
	pe := xsderrors.NewParseError(xsderrors.ErrUnknownFacet, "unknown facet")
	pe.Actual = name
	return 0, pe
}

// attr returns the value of the named attribute of the current start tag.
func (d *Decoder) attr(name string) (string, bool) {
	i, ok := d.cur.AttributePosition(name)
	if !ok {
		return "", false
	}
	return d.cur.AttributeValue(i), true
}

func (d *Decoder) requiredAttr(name string) (string, error) {
	v, ok := d.attr(name)
	if !ok {
		pe := d.errorf(xsderrors.ErrStructuralViolation, "missing required attribute")
		pe.Attribute = name
		return "", pe
	}
	return v, nil
}

// hasAttr reports whether the current start tag carries name. It is used
// for checks made before a child is read.
func (d *Decoder) hasAttr(name string) bool {
	_, ok := d.cur.AttributePosition(name)
	return ok
}

func (d *Decoder) invalidAttr(name, value string, expected ...string) *xsderrors.ParseError {
	pe := d.errorf(xsderrors.ErrInvalidAttribute, "invalid attribute value")
	pe.Attribute = name
	pe.Actual = value
	pe.Expected = expected
	return pe
}

func (d *Decoder) qnameAttr(name string) (schema.QualifiedName, bool, error) {
	v, ok := d.attr(name)
	if !ok {
		return schema.QualifiedName{}, false, nil
	}
	q, err := CreateQName(v)
	if err != nil {
		pe, _ := xsderrors.AsParseError(err)
		pe.Attribute = name
		return schema.QualifiedName{}, false, d.locate(pe)
	}
	return q, true, nil
}

func (d *Decoder) qnameListAttr(name string) ([]schema.QualifiedName, error) {
	v, ok := d.attr(name)
	if !ok {
		return nil, nil
	}
	var out []schema.QualifiedName
	for _, field := range strings.Fields(v) {
		q, err := CreateQName(field)
		if err != nil {
			pe, _ := xsderrors.AsParseError(err)
			pe.Attribute = name
			return nil, d.locate(pe)
		}
		out = append(out, q)
	}
	return out, nil
}

func (d *Decoder) boolAttr(name string) (bool, error) {
	v, ok := d.attr(name)
	if !ok {
		return false, nil
	}
	switch strings.TrimSpace(v) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, d.invalidAttr(name, v, "true", "false", "1", "0")
}

// derivationAttr parses a blockDefault/finalDefault style token list. The
// token #all expands to allowed.
func (d *Decoder) derivationAttr(name string, allowed schema.DerivationSet) (schema.DerivationSet, error) {
	v, ok := d.attr(name)
	if !ok {
		return 0, nil
	}
	fields := strings.Fields(v)
	if len(fields) == 1 && fields[0] == "#all" {
		return allowed, nil
	}
	var set schema.DerivationSet
	for _, field := range fields {
		m, ok := schema.LookupDerivationMethod(field)
		if !ok || !allowed.Has(m) {
			return 0, d.invalidAttr(name, v, append(allowed.Tokens(), "#all")...)
		}
		set = set.Add(m)
	}
	return set, nil
}

func (d *Decoder) formAttr(name string) (schema.Form, error) {
	v, ok := d.attr(name)
	if !ok {
		return schema.FormUnset, nil
	}
	switch strings.TrimSpace(v) {
	case "qualified":
		return schema.FormQualified, nil
	case "unqualified":
		return schema.FormUnqualified, nil
	}
	return schema.FormUnset, d.invalidAttr(name, v, "qualified", "unqualified")
}

func (d *Decoder) useAttr() (schema.AttributeUse, error) {
	v, ok := d.attr("use")
	if !ok {
		return schema.UseOptional, nil
	}
	switch strings.TrimSpace(v) {
	case "optional":
		return schema.UseOptional, nil
	case "prohibited":
		return schema.UseProhibited, nil
	case "required":
		return schema.UseRequired, nil
	}
	return schema.UseOptional, d.invalidAttr("use", v, "optional", "prohibited", "required")
}

func (d *Decoder) processContentsAttr() (schema.ProcessContents, error) {
	v, ok := d.attr("processContents")
	if !ok {
		return schema.Strict, nil
	}
	switch strings.TrimSpace(v) {
	case "strict":
		return schema.Strict, nil
	case "lax":
		return schema.Lax, nil
	case "skip":
		return schema.Skip, nil
	}
	return schema.Strict, d.invalidAttr("processContents", v, "strict", "lax", "skip")
}

// readOccurs reads minOccurs and maxOccurs; absent attributes keep their
// default of 1.
func (d *Decoder) readOccurs() (schema.Occurs, error) {
	occ := schema.DefaultOccurs()
	if i, ok := d.cur.AttributePosition("minOccurs"); ok {
		n, err := d.cur.AttributeValueAsInt32(i)
		if err != nil || n < 0 {
			return occ, d.invalidAttr("minOccurs", d.cur.AttributeValue(i), "non-negative integer")
		}
		occ.Min = uint32(n)
	}
	if i, ok := d.cur.AttributePosition("maxOccurs"); ok {
		if strings.TrimSpace(d.cur.AttributeValue(i)) == "unbounded" {
			occ.Max = schema.Unbounded
		} else {
			n, err := d.cur.AttributeValueAsInt32(i)
			if err != nil || n < 0 {
				return occ, d.invalidAttr("maxOccurs", d.cur.AttributeValue(i), "non-negative integer", "unbounded")
			}
			occ.Max = uint32(n)
		}
	}
	if !d.permissiveOccurs && !occ.Valid() {
		pe := d.errorf(xsderrors.ErrOccursRange, "minOccurs exceeds maxOccurs")
		pe.Actual = occ.String()
		return occ, pe
	}
	return occ, nil
}

// readIdentifiable copies the optional id attribute.
func (d *Decoder) readIdentifiable(target *schema.Identifiable) {
	if v, ok := d.attr("id"); ok {
		target.ID = v
	}
}

// readAnnotated reads an optional leading annotation child. The cursor must
// already be past the start tag of the owning element.
func (d *Decoder) readAnnotated(target *schema.Annotated) error {
	if !d.atStart("annotation") {
		return nil
	}
	a, err := d.ReadAnnotation()
	if err != nil {
		return err
	}
	target.Annotation = a
	return nil
}
