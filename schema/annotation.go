package schema

// Identifiable carries the optional id attribute shared by schema components.
// Uniqueness of ids within a document is not checked here.
type Identifiable struct {
	ID string `yaml:"id,omitempty"`
}

// Annotated carries the optional leading annotation of a component.
type Annotated struct {
	Annotation *Annotation `yaml:"annotation,omitempty"`
}

// AnnotationItemKind distinguishes appinfo from documentation records.
type AnnotationItemKind uint8

const (
	// AppInfo is an <appinfo> record.
	AppInfo AnnotationItemKind = iota
	// Documentation is a <documentation> record.
	Documentation
)

// String returns the element name of the record kind.
func (k AnnotationItemKind) String() string {
	if k == Documentation {
		return "documentation"
	}
	return "appinfo"
}

// MarshalYAML renders the kind as its element name.
func (k AnnotationItemKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// AnnotationItem is one appinfo or documentation leaf.
// Lang is only meaningful for documentation (xml:lang).
type AnnotationItem struct {
	Kind   AnnotationItemKind `yaml:"kind"`
	Source string             `yaml:"source,omitempty"`
	Lang   string             `yaml:"lang,omitempty"`
	Value  string             `yaml:"value,omitempty"`
}

// Annotation owns appinfo and documentation records in document order.
type Annotation struct {
	Identifiable `yaml:",inline"`
	Items        []AnnotationItem `yaml:"items,omitempty"`
}

// NewAnnotation returns an empty annotation.
func NewAnnotation() *Annotation {
	return &Annotation{}
}

// AddAppInfo appends an appinfo record.
func (a *Annotation) AddAppInfo(source, value string) {
	a.Items = append(a.Items, AnnotationItem{Kind: AppInfo, Source: source, Value: value})
}

// AddDocumentation appends a documentation record.
func (a *Annotation) AddDocumentation(source, lang, value string) {
	a.Items = append(a.Items, AnnotationItem{Kind: Documentation, Source: source, Lang: lang, Value: value})
}

// Documentation returns the documentation records in document order.
func (a *Annotation) Documentation() []AnnotationItem {
	return a.itemsOf(Documentation)
}

// AppInfos returns the appinfo records in document order.
func (a *Annotation) AppInfos() []AnnotationItem {
	return a.itemsOf(AppInfo)
}

func (a *Annotation) itemsOf(kind AnnotationItemKind) []AnnotationItem {
	if a == nil {
		return nil
	}
	var out []AnnotationItem
	for _, item := range a.Items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

// Clone returns a deep copy.
func (a *Annotation) Clone() *Annotation {
	if a == nil {
		return nil
	}
	clone := *a
	if a.Items != nil {
		clone.Items = make([]AnnotationItem, len(a.Items))
		copy(clone.Items, a.Items)
	}
	return &clone
}

func (a *Annotation) isRedefinable() {}

func (a Annotated) clone() Annotated {
	return Annotated{Annotation: a.Annotation.Clone()}
}
