package schema

import "strings"

// DerivationMethod is a single derivation method token.
type DerivationMethod uint8

const (
	DerivationExtension DerivationMethod = 1 << iota
	DerivationRestriction
	DerivationSubstitution
	DerivationList
	DerivationUnion
)

var derivationMethodNames = []struct {
	method DerivationMethod
	name   string
}{
	{DerivationExtension, "extension"},
	{DerivationRestriction, "restriction"},
	{DerivationSubstitution, "substitution"},
	{DerivationList, "list"},
	{DerivationUnion, "union"},
}

// String returns the lexical token of the method.
func (m DerivationMethod) String() string {
	for _, entry := range derivationMethodNames {
		if entry.method == m {
			return entry.name
		}
	}
	return ""
}

// LookupDerivationMethod maps a lexical token to its method.
func LookupDerivationMethod(token string) (DerivationMethod, bool) {
	for _, entry := range derivationMethodNames {
		if entry.name == token {
			return entry.method, true
		}
	}
	return 0, false
}

// DerivationSet is a set of derivation methods, as used by block, final,
// blockDefault and finalDefault.
type DerivationSet uint8

// Derivation sets allowed per attribute; #all expands to one of these.
const (
	ComplexTypeDerivations  = DerivationSet(DerivationExtension | DerivationRestriction)
	ElementBlockDerivations = DerivationSet(DerivationExtension | DerivationRestriction | DerivationSubstitution)
	SimpleTypeDerivations   = DerivationSet(DerivationList | DerivationUnion | DerivationRestriction)
	AllDerivations          = DerivationSet(DerivationExtension | DerivationRestriction | DerivationSubstitution | DerivationList | DerivationUnion)
)

// Has reports whether the set contains m.
func (s DerivationSet) Has(m DerivationMethod) bool {
	return s&DerivationSet(m) != 0
}

// Add returns the set with m added.
func (s DerivationSet) Add(m DerivationMethod) DerivationSet {
	return s | DerivationSet(m)
}

// Tokens returns the lexical tokens of the set in a fixed order.
func (s DerivationSet) Tokens() []string {
	var out []string
	for _, entry := range derivationMethodNames {
		if s.Has(entry.method) {
			out = append(out, entry.name)
		}
	}
	return out
}

// String returns the space separated lexical form.
func (s DerivationSet) String() string {
	return strings.Join(s.Tokens(), " ")
}

// MarshalYAML renders the set as its token list.
func (s DerivationSet) MarshalYAML() (any, error) {
	return s.Tokens(), nil
}

// Form is the value of form, elementFormDefault and attributeFormDefault.
type Form uint8

const (
	FormUnset Form = iota
	FormQualified
	FormUnqualified
)

// String returns the lexical form, empty when unset.
func (f Form) String() string {
	switch f {
	case FormQualified:
		return "qualified"
	case FormUnqualified:
		return "unqualified"
	default:
		return ""
	}
}

// MarshalYAML renders the form lexically.
func (f Form) MarshalYAML() (any, error) {
	return f.String(), nil
}

// AttributeUse is the use attribute of an attribute declaration.
type AttributeUse uint8

const (
	UseOptional AttributeUse = iota
	UseProhibited
	UseRequired
)

// String returns the lexical form.
func (u AttributeUse) String() string {
	switch u {
	case UseProhibited:
		return "prohibited"
	case UseRequired:
		return "required"
	default:
		return "optional"
	}
}

// MarshalYAML renders the use lexically.
func (u AttributeUse) MarshalYAML() (any, error) {
	return u.String(), nil
}

// ProcessContents is the wildcard processing mode.
type ProcessContents uint8

const (
	Strict ProcessContents = iota
	Lax
	Skip
)

// String returns the lexical form.
func (p ProcessContents) String() string {
	switch p {
	case Lax:
		return "lax"
	case Skip:
		return "skip"
	default:
		return "strict"
	}
}

// MarshalYAML renders the mode lexically.
func (p ProcessContents) MarshalYAML() (any, error) {
	return p.String(), nil
}
