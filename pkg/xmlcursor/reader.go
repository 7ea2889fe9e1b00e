package xmlcursor

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNilReader = errors.New("nil XML reader")

const xmlnsPrefix = "xmlns"

// Attr is an attribute of the current start element. Space is the
// resolved namespace URI, empty for unqualified attributes.
type Attr struct {
	Space string
	Local string
	Value string
}

// NamespaceDecl is a namespace binding declared on the current start
// element. The default namespace has an empty Prefix.
type NamespaceDecl struct {
	Prefix string
	URI    string
}

type node struct {
	attrs  []Attr
	ns     []NamespaceDecl
	local  string
	space  string
	value  string
	line   int
	column int
	kind   NodeKind
}

// Reader is a Cursor over an encoding/xml token stream.
type Reader struct {
	dec       *xml.Decoder
	lookahead xml.Token
	aheadLine int
	aheadCol  int
	cur       node
	opts      options
	depth     int
}

// NewReader creates a Reader positioned on the first node of r.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	if r == nil {
		return nil, errNilReader
	}
	o := buildOptions(opts...)
	dec := xml.NewDecoder(r)
	dec.CharsetReader = o.charsetReader
	if o.lenient {
		dec.Strict = false
		dec.AutoClose = xml.HTMLAutoClose
	}
	reader := &Reader{dec: dec, opts: o}
	if _, err := reader.Advance(); err != nil {
		return nil, err
	}
	return reader, nil
}

// NodeKind implements Cursor.
func (r *Reader) NodeKind() NodeKind { return r.cur.kind }

// LocalName implements Cursor.
func (r *Reader) LocalName() string { return r.cur.local }

// NamespaceURI returns the resolved namespace of the current element.
func (r *Reader) NamespaceURI() string { return r.cur.space }

// Depth returns the element nesting depth of the current node.
func (r *Reader) Depth() int { return r.depth }

// AttributeCount implements Cursor.
func (r *Reader) AttributeCount() int { return len(r.cur.attrs) }

// Attributes returns the attributes of the current start element.
func (r *Reader) Attributes() []Attr { return r.cur.attrs }

// AttributeName implements Cursor.
func (r *Reader) AttributeName(i int) string {
	if i < 0 || i >= len(r.cur.attrs) {
		return ""
	}
	return r.cur.attrs[i].Local
}

// AttributePosition implements Cursor. Unqualified attributes win over
// qualified ones with the same local name, so "lang" finds xml:lang only
// when no plain lang attribute exists.
func (r *Reader) AttributePosition(name string) (int, bool) {
	fallback := -1
	for i, attr := range r.cur.attrs {
		if attr.Local != name {
			continue
		}
		if attr.Space == "" {
			return i, true
		}
		if fallback < 0 {
			fallback = i
		}
	}
	if fallback >= 0 {
		return fallback, true
	}
	return 0, false
}

// AttributeValue implements Cursor.
func (r *Reader) AttributeValue(i int) string {
	if i < 0 || i >= len(r.cur.attrs) {
		return ""
	}
	return r.cur.attrs[i].Value
}

// AttributeValueAsInt32 implements Cursor.
func (r *Reader) AttributeValueAsInt32(i int) (int32, error) {
	if i < 0 || i >= len(r.cur.attrs) {
		return 0, fmt.Errorf("attribute index %d out of range", i)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(r.cur.attrs[i].Value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", r.cur.attrs[i].Local, err)
	}
	return int32(v), nil
}

// ElementValue implements Cursor.
func (r *Reader) ElementValue() string { return r.cur.value }

// NamespaceCount implements Cursor.
func (r *Reader) NamespaceCount() int { return len(r.cur.ns) }

// NamespaceAt implements Cursor.
func (r *Reader) NamespaceAt(i int) (prefix, uri string) {
	if i < 0 || i >= len(r.cur.ns) {
		return "", ""
	}
	return r.cur.ns[i].Prefix, r.cur.ns[i].URI
}

// Position implements Cursor.
func (r *Reader) Position() (line, column int) { return r.cur.line, r.cur.column }

// Advance implements Cursor.
func (r *Reader) Advance() (bool, error) {
	if r == nil || r.dec == nil {
		return false, errNilReader
	}
	if r.cur.kind == EndElement {
		r.depth--
	}
	for {
		line, column := r.dec.InputPos()
		if r.lookahead != nil {
			line, column = r.aheadLine, r.aheadCol
		}
		tok, err := r.nextToken()
		if errors.Is(err, io.EOF) {
			r.cur = node{kind: EndDocument, line: line, column: column}
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("xml read at line %d, column %d: %w", line, column, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			r.cur = startNode(t, line, column)
			r.depth++
			return true, nil
		case xml.EndElement:
			r.cur = node{kind: EndElement, local: t.Name.Local, space: t.Name.Space, line: line, column: column}
			return true, nil
		case xml.CharData:
			text, err := r.collectText(string(t))
			if err != nil {
				return false, fmt.Errorf("xml read at line %d, column %d: %w", line, column, err)
			}
			if !r.opts.keepWhitespace && strings.TrimSpace(text) == "" {
				continue
			}
			r.cur = node{kind: Value, value: text, line: line, column: column}
			return true, nil
		default:
			// comments, processing instructions and directives
		}
	}
}

func (r *Reader) nextToken() (xml.Token, error) {
	if r.lookahead != nil {
		tok := r.lookahead
		r.lookahead = nil
		return tok, nil
	}
	return r.dec.Token()
}

// collectText coalesces text split by comments or processing instructions.
func (r *Reader) collectText(first string) (string, error) {
	var b strings.Builder
	b.WriteString(first)
	for {
		line, column := r.dec.InputPos()
		tok, err := r.dec.Token()
		if errors.Is(err, io.EOF) {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.Comment, xml.ProcInst:
		default:
			r.lookahead = xml.CopyToken(t)
			r.aheadLine, r.aheadCol = line, column
			return b.String(), nil
		}
	}
}

func startNode(t xml.StartElement, line, column int) node {
	n := node{kind: StartElement, local: t.Name.Local, space: t.Name.Space, line: line, column: column}
	for _, attr := range t.Attr {
		switch {
		case attr.Name.Space == xmlnsPrefix:
			n.ns = append(n.ns, NamespaceDecl{Prefix: attr.Name.Local, URI: attr.Value})
		case attr.Name.Space == "" && attr.Name.Local == xmlnsPrefix:
			n.ns = append(n.ns, NamespaceDecl{URI: attr.Value})
		default:
			n.attrs = append(n.attrs, Attr{Space: attr.Name.Space, Local: attr.Name.Local, Value: attr.Value})
		}
	}
	return n
}
