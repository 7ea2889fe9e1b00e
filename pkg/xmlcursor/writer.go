package xmlcursor

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var errNilWriter = errors.New("nil XML writer")

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// Indent indents nested elements with the given string.
func Indent(indent string) WriterOption {
	return func(w *Writer) { w.enc.Indent("", indent) }
}

// WithDeclaration emits an XML declaration before the first element.
func WithDeclaration() WriterOption {
	return func(w *Writer) { w.declaration = true }
}

// Writer emits XML through start/attribute/value/end calls. Attributes
// belong to the most recent start element and must precede its content.
type Writer struct {
	enc         *xml.Encoder
	pending     *xml.StartElement
	stack       []string
	declaration bool
	started     bool
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	if w == nil {
		return nil, errNilWriter
	}
	writer := &Writer{enc: xml.NewEncoder(w)}
	for _, opt := range opts {
		if opt != nil {
			opt(writer)
		}
	}
	return writer, nil
}

// WriteStartElement opens an element named tag.
func (w *Writer) WriteStartElement(tag string) error {
	if tag == "" {
		return fmt.Errorf("start element with empty name")
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	if !w.started && w.declaration {
		if err := w.enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)}); err != nil {
			return fmt.Errorf("write declaration: %w", err)
		}
	}
	w.started = true
	w.pending = &xml.StartElement{Name: xml.Name{Local: tag}}
	w.stack = append(w.stack, tag)
	return nil
}

// WriteAttribute adds an attribute to the element opened last.
func (w *Writer) WriteAttribute(name, value string) error {
	if w.pending == nil {
		return fmt.Errorf("attribute %s written outside a start element", name)
	}
	w.pending.Attr = append(w.pending.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return nil
}

// WriteValue writes escaped text content.
func (w *Writer) WriteValue(text string) error {
	if err := w.flushPending(); err != nil {
		return err
	}
	if err := w.enc.EncodeToken(xml.CharData(text)); err != nil {
		return fmt.Errorf("write value: %w", err)
	}
	return nil
}

// WriteEndElement closes the element named tag, which must be the
// innermost open element.
func (w *Writer) WriteEndElement(tag string) error {
	if len(w.stack) == 0 || w.stack[len(w.stack)-1] != tag {
		return fmt.Errorf("end element %s does not match open element", tag)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	w.stack = w.stack[:len(w.stack)-1]
	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: tag}}); err != nil {
		return fmt.Errorf("write end element %s: %w", tag, err)
	}
	return nil
}

// Flush writes buffered output. All elements must be closed.
func (w *Writer) Flush() error {
	if len(w.stack) > 0 {
		return fmt.Errorf("flush with %d unclosed elements", len(w.stack))
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	return w.enc.Flush()
}

func (w *Writer) flushPending() error {
	if w.pending == nil {
		return nil
	}
	start := *w.pending
	w.pending = nil
	if err := w.enc.EncodeToken(start); err != nil {
		return fmt.Errorf("write start element %s: %w", start.Name.Local, err)
	}
	return nil
}
