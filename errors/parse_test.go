package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		e    ParseError
	}{
		{
			name: "message only",
			e:    ParseError{Code: ErrStructuralViolation, Message: "missing element"},
			want: "[xsd-structural-violation] missing element",
		},
		{
			name: "with tag and attribute",
			e:    ParseError{Code: ErrStructuralViolation, Message: "missing attribute", Tag: "key", Attribute: "name"},
			want: `[xsd-structural-violation] missing attribute in <key> attribute "name"`,
		},
		{
			name: "with path and position",
			e: ParseError{
				Code:    ErrUnrecognizedChild,
				Message: "unexpected child",
				Path:    "/schema/complexType",
				Line:    3,
				Column:  5,
			},
			want: "[xsd-unrecognized-child] unexpected child at /schema/complexType (line 3, column 5)",
		},
		{
			name: "with expected and actual",
			e: ParseError{
				Code:     ErrUnrecognizedChild,
				Message:  "unexpected child",
				Expected: []string{"selector", "field"},
				Actual:   "element",
			},
			want: "[xsd-unrecognized-child] unexpected child (expected: selector, field) (actual: element)",
		},
		{
			name: "with wrapped",
			e:    ParseError{Code: ErrIO, Message: "open schema", Err: io.ErrUnexpectedEOF},
			want: "[xsd-io] open schema: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.Error())
		})
	}
}

func TestNilParseError(t *testing.T) {
	var e *ParseError
	assert.Equal(t, "parse error <nil>", e.Error())
}

func TestNewParseErrorf(t *testing.T) {
	e := NewParseErrorf(ErrUnknownFacet, "unknown facet %q", "maxSize")
	assert.Equal(t, ErrUnknownFacet, e.Code)
	assert.Equal(t, `unknown facet "maxSize"`, e.Message)
}

func TestAsParseError(t *testing.T) {
	wrapped := fmt.Errorf("read schema: %w", NewParseError(ErrOccursRange, "minOccurs exceeds maxOccurs"))

	pe, ok := AsParseError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrOccursRange, pe.Code)
	assert.True(t, HasCode(wrapped, ErrOccursRange))
	assert.False(t, HasCode(wrapped, ErrIO))

	_, ok = AsParseError(nil)
	assert.False(t, ok)
	_, ok = AsParseError(io.EOF)
	assert.False(t, ok)
}

func TestParseErrorUnwrap(t *testing.T) {
	e := &ParseError{Code: ErrXMLParse, Message: "read", Err: io.ErrUnexpectedEOF}
	assert.ErrorIs(t, e, io.ErrUnexpectedEOF)
}
