package schema

// QualifiedName is a namespace prefix and local part pair as written in a
// schema document, e.g. xs:string.
type QualifiedName struct {
	Prefix    string `yaml:"prefix,omitempty"`
	LocalPart string `yaml:"local"`
}

// NewQualifiedName builds a QualifiedName.
func NewQualifiedName(prefix, localPart string) QualifiedName {
	return QualifiedName{Prefix: prefix, LocalPart: localPart}
}

// String returns prefix:local, or local when the prefix is empty.
func (q QualifiedName) String() string {
	if q.Prefix == "" {
		return q.LocalPart
	}
	return q.Prefix + ":" + q.LocalPart
}

// IsZero reports whether the name is unset.
func (q QualifiedName) IsZero() bool {
	return q.Prefix == "" && q.LocalPart == ""
}

func cloneQNames(in []QualifiedName) []QualifiedName {
	if in == nil {
		return nil
	}
	out := make([]QualifiedName, len(in))
	copy(out, in)
	return out
}
