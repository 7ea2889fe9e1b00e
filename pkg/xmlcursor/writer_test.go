package xmlcursor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteStartElement("xs:a"))
	require.NoError(t, w.WriteAttribute("xmlns:xs", "urn:x"))
	require.NoError(t, w.WriteAttribute("k", "a&b"))
	require.NoError(t, w.WriteStartElement("b"))
	require.NoError(t, w.WriteValue("x<y"))
	require.NoError(t, w.WriteEndElement("b"))
	require.NoError(t, w.WriteStartElement("c"))
	require.NoError(t, w.WriteEndElement("c"))
	require.NoError(t, w.WriteEndElement("xs:a"))
	require.NoError(t, w.Flush())

	assert.Equal(t, `<xs:a xmlns:xs="urn:x" k="a&amp;b"><b>x&lt;y</b><c></c></xs:a>`, buf.String())
}

func TestWriterIndent(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Indent("  "), WithDeclaration())
	require.NoError(t, err)

	require.NoError(t, w.WriteStartElement("a"))
	require.NoError(t, w.WriteStartElement("b"))
	require.NoError(t, w.WriteEndElement("b"))
	require.NoError(t, w.WriteEndElement("a"))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`), out)
	assert.True(t, strings.HasSuffix(out, "<a>\n  <b></b>\n</a>"), out)
}

func TestWriterRoundTripsThroughReader(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteStartElement("a"))
	require.NoError(t, w.WriteAttribute("q", `"quoted" & <tagged>`))
	require.NoError(t, w.WriteValue("line1\nline2 & more"))
	require.NoError(t, w.WriteEndElement("a"))
	require.NoError(t, w.Flush())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, `"quoted" & <tagged>`, r.AttributeValue(0))
	_, err = r.Advance()
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2 & more", r.ElementValue())
}

func TestWriterErrors(t *testing.T) {
	newWriter := func(t *testing.T) *Writer {
		t.Helper()
		w, err := NewWriter(&bytes.Buffer{})
		require.NoError(t, err)
		return w
	}

	t.Run("nil output", func(t *testing.T) {
		_, err := NewWriter(nil)
		assert.Error(t, err)
	})
	t.Run("empty tag", func(t *testing.T) {
		assert.Error(t, newWriter(t).WriteStartElement(""))
	})
	t.Run("attribute before any element", func(t *testing.T) {
		assert.Error(t, newWriter(t).WriteAttribute("a", "1"))
	})
	t.Run("attribute after content", func(t *testing.T) {
		w := newWriter(t)
		require.NoError(t, w.WriteStartElement("a"))
		require.NoError(t, w.WriteValue("text"))
		assert.Error(t, w.WriteAttribute("b", "1"))
	})
	t.Run("mismatched end", func(t *testing.T) {
		w := newWriter(t)
		require.NoError(t, w.WriteStartElement("a"))
		assert.Error(t, w.WriteEndElement("b"))
	})
	t.Run("end without start", func(t *testing.T) {
		assert.Error(t, newWriter(t).WriteEndElement("a"))
	})
	t.Run("flush with open element", func(t *testing.T) {
		w := newWriter(t)
		require.NoError(t, w.WriteStartElement("a"))
		assert.Error(t, w.Flush())
	})
}
