package xsd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xsd "github.com/claudiobogossian/terralib5-sub033"
	xsderrors "github.com/claudiobogossian/terralib5-sub033/errors"
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

const ordersXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:tns="urn:orders"
           targetNamespace="urn:orders"
           elementFormDefault="qualified">
  <xs:annotation><xs:documentation>Orders</xs:documentation></xs:annotation>
  <xs:simpleType name="Sku">
    <xs:restriction base="xs:string"><xs:pattern value="[A-Z]+"/></xs:restriction>
  </xs:simpleType>
  <xs:complexType name="Line">
    <xs:sequence>
      <xs:element name="sku" type="tns:Sku"/>
      <xs:element name="qty" type="xs:int" minOccurs="0" maxOccurs="unbounded"/>
    </xs:sequence>
    <xs:attribute name="id" type="xs:ID" use="required"/>
  </xs:complexType>
  <xs:element name="order">
    <xs:complexType>
      <xs:sequence><xs:element name="line" type="tns:Line" maxOccurs="unbounded"/></xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestReadSchemaFile(t *testing.T) {
	path := writeFile(t, "orders.xsd", []byte(ordersXSD))

	s, err := xsd.ReadSchemaFile(path, xsd.NewReadOptions())
	require.NoError(t, err)

	assert.Equal(t, "urn:orders", s.TargetNamespace)
	assert.Len(t, s.Annotations, 1)
	require.NotNil(t, s.FindSimpleType("Sku"))
	line := s.FindComplexType("Line")
	require.NotNil(t, line)
	assert.Len(t, line.Attributes(), 1)
	order := s.FindElement("order")
	require.NotNil(t, order)
	require.NotNil(t, order.ComplexType())
}

func TestReadSchemaFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xsd")

	_, err := xsd.ReadSchemaFile(path, xsd.NewReadOptions())
	require.Error(t, err)
	assert.True(t, xsderrors.HasCode(err, xsderrors.ErrIO), "%v", err)
	assert.Contains(t, err.Error(), path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSchemaFileKeepsParseCode(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:simpleType name="S"><xs:restriction base="xs:string"><xs:assertion value="x"/></xs:restriction></xs:simpleType>
</xs:schema>`
	path := writeFile(t, "bad.xsd", []byte(doc))

	_, err := xsd.ReadSchemaFile(path, xsd.NewReadOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	pe, ok := xsderrors.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, xsderrors.ErrUnknownFacet, pe.Code)
	assert.Equal(t, 2, pe.Line)
}

func TestReadSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		opts xsd.ReadOptions
		code xsderrors.ErrorCode
	}{
		{
			name: "not xml",
			doc:  `<<`,
			code: xsderrors.ErrXMLParse,
		},
		{
			name: "unbalanced",
			doc:  `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element name="a"></xs:schema>`,
			code: xsderrors.ErrXMLParse,
		},
		{
			name: "not a schema",
			doc:  `<root/>`,
			code: xsderrors.ErrStructuralViolation,
		},
		{
			name: "depth",
			doc:  ordersXSD,
			opts: xsd.NewReadOptions().WithMaxDepth(3),
			code: xsderrors.ErrDepthExceeded,
		},
		{
			name: "occurs range",
			doc:  `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:group name="g"><xs:sequence><xs:element name="a" minOccurs="3" maxOccurs="2"/></xs:sequence></xs:group></xs:schema>`,
			code: xsderrors.ErrOccursRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := xsd.ReadSchema(strings.NewReader(tt.doc), tt.opts)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, xsderrors.HasCode(err, tt.code), "%v", err)
		})
	}
}

func TestReadSchemaNilReader(t *testing.T) {
	_, err := xsd.ReadSchema(nil, xsd.NewReadOptions())
	assert.True(t, xsderrors.HasCode(err, xsderrors.ErrIO))
}

func TestReadOptions(t *testing.T) {
	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:group name="g"><xs:sequence><xs:element name="a" minOccurs="3" maxOccurs="2"/></xs:sequence></xs:group></xs:schema>`

	s, err := xsd.ReadSchema(strings.NewReader(doc), xsd.NewReadOptions().WithPermissiveOccurs(true))
	require.NoError(t, err)
	el := s.FindGroup("g").Content.(*schema.Sequence).Particles[0].(*schema.Element)
	assert.Equal(t, schema.Occurs{Min: 3, Max: 2}, el.Occurs)

	err = xsd.NewReadOptions().WithMaxDepth(-1).Validate()
	assert.Error(t, err)
	_, err = xsd.ReadSchema(strings.NewReader(doc), xsd.NewReadOptions().WithMaxDepth(-1))
	assert.Error(t, err)
	assert.NoError(t, xsd.NewReadOptions().WithMaxDepth(0).Validate())

	anonymous := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:simpleType name="S"><xs:restriction><xs:simpleType><xs:restriction base="xs:string"/></xs:simpleType><xs:maxLength value="3"/></xs:restriction></xs:simpleType></xs:schema>`
	_, err = xsd.ReadSchema(strings.NewReader(anonymous), xsd.NewReadOptions())
	assert.True(t, xsderrors.HasCode(err, xsderrors.ErrStructuralViolation), "%v", err)
	s, err = xsd.ReadSchema(strings.NewReader(anonymous), xsd.NewReadOptions().WithAnonymousRestrictionBase(true))
	require.NoError(t, err)
	r := s.FindSimpleType("S").Restriction()
	assert.True(t, r.Base.IsZero())
	require.NotNil(t, r.SimpleType)

	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	_, err = xsd.ReadSchema(strings.NewReader(ordersXSD), xsd.NewReadOptions().WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"tag":"complexType"`)
}

func TestReadSchemaCharset(t *testing.T) {
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="ISO-8859-1"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:annotation><xs:documentation>Gr`)
	doc.WriteByte(0xFC)
	doc.WriteString(`n</xs:documentation></xs:annotation></xs:schema>`)
	path := writeFile(t, "latin1.xsd", doc.Bytes())

	s, err := xsd.ReadSchemaFile(path, xsd.NewReadOptions())
	require.NoError(t, err)
	require.Len(t, s.Annotations, 1)
	assert.Equal(t, "Grün", s.Annotations[0].Items[0].Value)
}

func TestWriteSchemaRoundTrip(t *testing.T) {
	for _, indent := range []bool{false, true} {
		s, err := xsd.ReadSchema(strings.NewReader(ordersXSD), xsd.NewReadOptions())
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, xsd.WriteSchema(&buf, s, indent))
		assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Equal(t, indent, strings.Contains(buf.String(), "\n  <xs:"))

		again, err := xsd.ReadSchema(&buf, xsd.NewReadOptions())
		require.NoError(t, err)
		assert.Equal(t, s, again)
	}
}

func TestWriteSchemaErrors(t *testing.T) {
	assert.Error(t, xsd.WriteSchema(nil, schema.NewSchema(), false))
	assert.Error(t, xsd.WriteSchema(&bytes.Buffer{}, nil, false))
}
