package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the class of a schema document parse failure.
type ErrorCode string

const (
	// ErrStructuralViolation indicates the reader was not on the node the
	// grammar mandates, or a mandatory attribute is missing.
	ErrStructuralViolation ErrorCode = "xsd-structural-violation"
	// ErrUnrecognizedChild indicates a child element that the enclosing
	// production does not admit at that position.
	ErrUnrecognizedChild ErrorCode = "xsd-unrecognized-child"
	// ErrMalformedQName indicates a QName that is not local or prefix:local.
	ErrMalformedQName ErrorCode = "xsd-malformed-qname"
	// ErrUnknownFacet indicates a facet element name outside the facet table.
	ErrUnknownFacet ErrorCode = "xsd-unknown-facet"
	// ErrInvalidAttribute indicates an attribute value outside its lexical space.
	ErrInvalidAttribute ErrorCode = "xsd-invalid-attribute"
	// ErrOccursRange indicates minOccurs greater than a finite maxOccurs.
	ErrOccursRange ErrorCode = "xsd-occurs-range"
	// ErrDepthExceeded indicates nesting deeper than the configured limit.
	ErrDepthExceeded ErrorCode = "xsd-depth-exceeded"
	// ErrIO indicates the document could not be opened or read.
	ErrIO ErrorCode = "xsd-io"
	// ErrXMLParse indicates the document is not well-formed XML.
	ErrXMLParse ErrorCode = "xml-parse-error"
)

// ParseError describes the first problem found while reading a schema
// document, with the offending tag, attribute and document position.
type ParseError struct {
	Err       error
	Code      ErrorCode
	Message   string
	Tag       string
	Attribute string
	Path      string
	Actual    string
	Expected  []string
	Line      int
	Column    int
}

// Error formats the failure with its code, context and position.
func (e *ParseError) Error() string {
	if e == nil {
		return "parse error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Tag != "" {
		b.WriteString(fmt.Sprintf(" in <%s>", e.Tag))
	}
	if e.Attribute != "" {
		b.WriteString(fmt.Sprintf(" attribute %q", e.Attribute))
	}
	if e.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", e.Path))
	}
	if e.Line > 0 && e.Column > 0 {
		b.WriteString(fmt.Sprintf(" (line %d, column %d)", e.Line, e.Column))
	}
	if len(e.Expected) > 0 {
		b.WriteString(fmt.Sprintf(" (expected: %s)", strings.Join(e.Expected, ", ")))
	}
	if e.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", e.Actual))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError with a code and message.
func NewParseError(code ErrorCode, msg string) *ParseError {
	return &ParseError{Code: code, Message: msg}
}

// NewParseErrorf formats a message and builds a ParseError.
func NewParseErrorf(code ErrorCode, format string, args ...any) *ParseError {
	return NewParseError(code, fmt.Sprintf(format, args...))
}

// AsParseError extracts a ParseError from an error chain.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) && pe != nil {
		return pe, true
	}
	return nil, false
}

// HasCode reports whether err carries a ParseError with the given code.
func HasCode(err error, code ErrorCode) bool {
	pe, ok := AsParseError(err)
	return ok && pe.Code == code
}
