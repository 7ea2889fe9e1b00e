package xmlcursor

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// CharsetReaderFunc converts input declared with a non UTF-8 encoding into
// UTF-8.
type CharsetReaderFunc func(label string, input io.Reader) (io.Reader, error)

// Option configures a Reader.
type Option func(*options)

type options struct {
	charsetReader  CharsetReaderFunc
	keepWhitespace bool
	lenient        bool
}

func buildOptions(opts ...Option) options {
	o := options{charsetReader: DefaultCharsetReader}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// KeepWhitespace reports whitespace-only text as Value nodes.
func KeepWhitespace() Option {
	return func(o *options) { o.keepWhitespace = true }
}

// WithCharsetReader replaces the charset conversion used for documents
// whose declaration names an encoding other than UTF-8.
func WithCharsetReader(fn CharsetReaderFunc) Option {
	return func(o *options) { o.charsetReader = fn }
}

// Lenient disables strict well-formedness checks of the tokenizer.
func Lenient() Option {
	return func(o *options) { o.lenient = true }
}

// DefaultCharsetReader resolves encoding labels through the WHATWG
// encoding index (ISO-8859-1, windows-1252, Shift_JIS, UTF-16, ...).
func DefaultCharsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
