package xsdxml

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	xsderrors "github.com/claudiobogossian/terralib5-sub033/errors"
	"github.com/claudiobogossian/terralib5-sub033/pkg/xmlcursor"
)

// DefaultMaxDepth bounds element nesting while reading a document.
const DefaultMaxDepth = 256

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger traces productions at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Decoder) { d.log = logger }
}

// WithMaxDepth sets the nesting limit; n <= 0 keeps the default.
func WithMaxDepth(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.maxDepth = n
		}
	}
}

// WithPermissiveOccurs accepts minOccurs greater than a finite maxOccurs.
func WithPermissiveOccurs() Option {
	return func(d *Decoder) { d.permissiveOccurs = true }
}

// WithAnonymousRestrictionBase lets a simpleType <restriction> omit its
// base attribute when an anonymous simpleType follows.
func WithAnonymousRestrictionBase() Option {
	return func(d *Decoder) { d.anonymousBase = true }
}

// Decoder reads schema components from a cursor. It is not safe for
// concurrent use.
type Decoder struct {
	cur              xmlcursor.Cursor
	log              zerolog.Logger
	path             []string
	maxDepth         int
	permissiveOccurs bool
	anonymousBase    bool
}

// NewDecoder returns a Decoder reading from cur.
func NewDecoder(cur xmlcursor.Cursor, opts ...Option) *Decoder {
	d := &Decoder{
		cur:      cur,
		log:      zerolog.Nop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// enter checks that the cursor is on the start tag of tag and records the
// element on the path. Attributes are still readable after enter.
func (d *Decoder) enter(tag string) error {
	if d.cur == nil {
		return xsderrors.NewParseError(xsderrors.ErrStructuralViolation, "nil cursor")
	}
	if d.cur.NodeKind() != xmlcursor.StartElement || d.cur.LocalName() != tag {
		pe := d.errorf(xsderrors.ErrStructuralViolation, "expected start of element")
		pe.Expected = []string{"<" + tag + ">"}
		pe.Actual = d.describeNode()
		return pe
	}
	d.path = append(d.path, tag)
	if len(d.path) > d.maxDepth {
		pe := d.errorf(xsderrors.ErrDepthExceeded, "nesting exceeds %d levels", d.maxDepth)
		pe.Tag = tag
		return pe
	}
	if e := d.log.Debug(); e.Enabled() {
		line, column := d.cur.Position()
		e.Str("tag", tag).Int("line", line).Int("column", column).Int("depth", len(d.path)).Msg("read")
	}
	return nil
}

// leave checks that the cursor is on the end tag of the current element
// and moves past it.
func (d *Decoder) leave(tag string) error {
	if d.cur.NodeKind() == xmlcursor.StartElement {
		pe := d.errorf(xsderrors.ErrUnrecognizedChild, "element not allowed here")
		pe.Tag = tag
		pe.Actual = "<" + d.cur.LocalName() + ">"
		return pe
	}
	if d.cur.NodeKind() != xmlcursor.EndElement || d.cur.LocalName() != tag {
		pe := d.errorf(xsderrors.ErrStructuralViolation, "expected end of element")
		pe.Tag = tag
		pe.Expected = []string{"</" + tag + ">"}
		pe.Actual = d.describeNode()
		return pe
	}
	if err := d.advance(); err != nil {
		return err
	}
	d.path = d.path[:len(d.path)-1]
	return nil
}

// advance moves the cursor to the next node.
func (d *Decoder) advance() error {
	if _, err := d.cur.Advance(); err != nil {
		pe := d.errorf(xsderrors.ErrXMLParse, "read next node")
		pe.Err = err
		return pe
	}
	return nil
}

// startContent moves past the start tag once its attributes are read.
func (d *Decoder) startContent() error {
	return d.advance()
}

func (d *Decoder) current() string {
	if len(d.path) == 0 {
		return ""
	}
	return d.path[len(d.path)-1]
}

func (d *Decoder) errorf(code xsderrors.ErrorCode, format string, args ...any) *xsderrors.ParseError {
	pe := xsderrors.NewParseErrorf(code, format, args...)
	d.locate(pe)
	return pe
}

// locate fills in the position fields that are still empty.
func (d *Decoder) locate(pe *xsderrors.ParseError) *xsderrors.ParseError {
	if pe.Tag == "" {
		pe.Tag = d.current()
	}
	if pe.Path == "" && len(d.path) > 0 {
		pe.Path = "/" + strings.Join(d.path, "/")
	}
	if pe.Line == 0 && d.cur != nil {
		pe.Line, pe.Column = d.cur.Position()
	}
	return pe
}

func (d *Decoder) describeNode() string {
	switch d.cur.NodeKind() {
	case xmlcursor.StartElement:
		return "<" + d.cur.LocalName() + ">"
	case xmlcursor.EndElement:
		return "</" + d.cur.LocalName() + ">"
	case xmlcursor.Value:
		return fmt.Sprintf("text %q", truncate(d.cur.ElementValue(), 32))
	default:
		return d.cur.NodeKind().String()
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
