package schema

import "fmt"

// FacetType enumerates the constraining facets of XML Schema 1.0.
type FacetType uint8

const (
	FacetEnumeration FacetType = iota
	FacetFractionDigits
	FacetLength
	FacetMaxExclusive
	FacetMaxInclusive
	FacetMaxLength
	FacetMinExclusive
	FacetMinInclusive
	FacetMinLength
	FacetPattern
	FacetTotalDigits
	FacetWhiteSpace

	facetTypeCount
)

var facetNames = [facetTypeCount]string{
	FacetEnumeration:    "enumeration",
	FacetFractionDigits: "fractionDigits",
	FacetLength:         "length",
	FacetMaxExclusive:   "maxExclusive",
	FacetMaxInclusive:   "maxInclusive",
	FacetMaxLength:      "maxLength",
	FacetMinExclusive:   "minExclusive",
	FacetMinInclusive:   "minInclusive",
	FacetMinLength:      "minLength",
	FacetPattern:        "pattern",
	FacetTotalDigits:    "totalDigits",
	FacetWhiteSpace:     "whiteSpace",
}

// FacetTypes returns every facet type in enumeration order.
func FacetTypes() []FacetType {
	out := make([]FacetType, facetTypeCount)
	for i := range out {
		out[i] = FacetType(i)
	}
	return out
}

// LookupFacetType maps a facet element name to its type.
func LookupFacetType(name string) (FacetType, bool) {
	for i, n := range facetNames {
		if n == name {
			return FacetType(i), true
		}
	}
	return 0, false
}

// String returns the facet element name.
func (t FacetType) String() string {
	if t < facetTypeCount {
		return facetNames[t]
	}
	return fmt.Sprintf("FacetType(%d)", uint8(t))
}

// MarshalYAML renders the facet type as its element name.
func (t FacetType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Facet is a single constraining facet. It is a plain value: copies are
// independent except for the shared annotation pointer, which Clone detaches.
type Facet struct {
	Identifiable `yaml:",inline"`
	Annotated    `yaml:",inline"`
	Type         FacetType `yaml:"type"`
	Value        string    `yaml:"value"`
	Fixed        bool      `yaml:"fixed,omitempty"`
}

// NewFacet builds a facet of the given type and value.
func NewFacet(t FacetType, value string) Facet {
	return Facet{Type: t, Value: value}
}

// Name returns the facet element name.
func (f Facet) Name() string {
	return f.Type.String()
}

func cloneFacets(in []Facet) []Facet {
	if in == nil {
		return nil
	}
	out := make([]Facet, len(in))
	for i, f := range in {
		f.Annotated = f.Annotated.clone()
		out[i] = f
	}
	return out
}
