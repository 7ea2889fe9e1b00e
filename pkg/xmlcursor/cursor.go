package xmlcursor

import "fmt"

// NodeKind is the kind of node a Cursor is positioned on.
type NodeKind uint8

const (
	StartElement NodeKind = iota
	EndElement
	Value
	EndDocument
)

// String returns a readable name for the kind.
func (k NodeKind) String() string {
	switch k {
	case StartElement:
		return "START_ELEMENT"
	case EndElement:
		return "END_ELEMENT"
	case Value:
		return "VALUE"
	case EndDocument:
		return "END_DOCUMENT"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// Cursor is a forward-only pull interface over an XML document.
//
// LocalName is valid on StartElement and EndElement. Attribute and
// namespace accessors are valid on StartElement. ElementValue is valid on
// Value. Advance returns false once the cursor reaches EndDocument.
type Cursor interface {
	NodeKind() NodeKind
	LocalName() string
	AttributeCount() int
	AttributeName(i int) string
	AttributePosition(name string) (int, bool)
	AttributeValue(i int) string
	AttributeValueAsInt32(i int) (int32, error)
	ElementValue() string
	NamespaceCount() int
	NamespaceAt(i int) (prefix, uri string)
	Advance() (bool, error)
	Position() (line, column int)
}
