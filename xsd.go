// Package xsd reads XML Schema documents into the schema object model and
// writes the model back as XML Schema markup.
package xsd

import (
	"fmt"
	"io"
	"os"

	xsderrors "github.com/claudiobogossian/terralib5-sub033/errors"
	"github.com/claudiobogossian/terralib5-sub033/pkg/xmlcursor"
	"github.com/claudiobogossian/terralib5-sub033/schema"
	"github.com/claudiobogossian/terralib5-sub033/xsdxml"
)

// ReadSchemaFile reads the schema document at path. Failures to open or
// close the file carry the xsd-io code; parse failures keep their own
// code and are wrapped with the path.
func ReadSchemaFile(path string, opts ReadOptions) (*schema.Schema, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(path, err)
	}

	s, err := ReadSchema(f, opts)
	closeErr := f.Close()
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	if closeErr != nil {
		return nil, ioError(path, closeErr)
	}
	return s, nil
}

// ReadSchema reads a schema document from r. Insignificant whitespace is
// skipped and no validation against a DTD or schema takes place.
func ReadSchema(r io.Reader, opts ReadOptions) (*schema.Schema, error) {
	if r == nil {
		return nil, xsderrors.NewParseError(xsderrors.ErrIO, "nil reader")
	}
	cur, err := xmlcursor.NewReader(r, opts.cursorOptions()...)
	if err != nil {
		pe := xsderrors.NewParseError(xsderrors.ErrXMLParse, "cannot start reading document")
		pe.Err = err
		return nil, pe
	}
	return ReadSchemaCursor(cur, opts)
}

// ReadSchemaCursor reads a schema from a cursor positioned on <schema>.
func ReadSchemaCursor(cur xmlcursor.Cursor, opts ReadOptions) (*schema.Schema, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return xsdxml.ReadSchema(cur, opts.decoderOptions()...)
}

// WriteSchema writes s as an XML Schema document with an XML declaration,
// indenting nested elements by two spaces when indent is set.
func WriteSchema(w io.Writer, s *schema.Schema, indent bool) error {
	opts := []xmlcursor.WriterOption{xmlcursor.WithDeclaration()}
	if indent {
		opts = append(opts, xmlcursor.Indent("  "))
	}
	xw, err := xmlcursor.NewWriter(w, opts...)
	if err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	if err := xsdxml.SaveSchema(xw, s); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	if err := xw.Flush(); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}

func ioError(path string, err error) error {
	pe := xsderrors.NewParseErrorf(xsderrors.ErrIO, "cannot read %s", path)
	pe.Err = err
	return pe
}
