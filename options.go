package xsd

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/claudiobogossian/terralib5-sub033/pkg/xmlcursor"
	"github.com/claudiobogossian/terralib5-sub033/xsdxml"
)

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

// ReadOptions configures schema document reading.
type ReadOptions struct {
	logger           *zerolog.Logger
	charsetReader    xmlcursor.CharsetReaderFunc
	maxDepth         intOption
	permissiveOccurs bool
	anonymousBase    bool
}

// NewReadOptions returns a default, valid read options value.
func NewReadOptions() ReadOptions {
	return ReadOptions{}
}

// WithLogger traces the productions read at debug level.
func (o ReadOptions) WithLogger(logger zerolog.Logger) ReadOptions {
	o.logger = &logger
	return o
}

// WithMaxDepth sets the element nesting limit (0 uses default).
func (o ReadOptions) WithMaxDepth(value int) ReadOptions {
	o.maxDepth = intOption{value: value, set: true}
	return o
}

// WithPermissiveOccurs controls whether minOccurs may exceed a finite maxOccurs.
func (o ReadOptions) WithPermissiveOccurs(value bool) ReadOptions {
	o.permissiveOccurs = value
	return o
}

// WithAnonymousRestrictionBase controls whether a simpleType restriction
// may omit base when it holds an anonymous simpleType.
func (o ReadOptions) WithAnonymousRestrictionBase(value bool) ReadOptions {
	o.anonymousBase = value
	return o
}

// WithCharsetReader replaces the conversion used for documents not encoded in UTF-8.
func (o ReadOptions) WithCharsetReader(fn xmlcursor.CharsetReaderFunc) ReadOptions {
	o.charsetReader = fn
	return o
}

// Validate validates read options values.
func (o ReadOptions) Validate() error {
	if o.maxDepth.set && o.maxDepth.value < 0 {
		return fmt.Errorf("max depth must be >= 0, got %d", o.maxDepth.value)
	}
	return nil
}

func (o ReadOptions) decoderOptions() []xsdxml.Option {
	opts := []xsdxml.Option{xsdxml.WithMaxDepth(o.maxDepth.resolved())}
	if o.logger != nil {
		opts = append(opts, xsdxml.WithLogger(*o.logger))
	}
	if o.permissiveOccurs {
		opts = append(opts, xsdxml.WithPermissiveOccurs())
	}
	if o.anonymousBase {
		opts = append(opts, xsdxml.WithAnonymousRestrictionBase())
	}
	return opts
}

func (o ReadOptions) cursorOptions() []xmlcursor.Option {
	if o.charsetReader == nil {
		return nil
	}
	return []xmlcursor.Option{xmlcursor.WithCharsetReader(o.charsetReader)}
}
