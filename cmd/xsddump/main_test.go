package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	xsd "github.com/claudiobogossian/terralib5-sub033"
)

const fixture = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:tns="urn:orders" targetNamespace="urn:orders">
  <xs:complexType name="Line">
    <xs:sequence><xs:element name="sku" type="xs:string"/></xs:sequence>
  </xs:complexType>
  <xs:element name="order" type="tns:Line"/>
  <xs:element name="note" type="xs:string"/>
</xs:schema>`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSummary(t *testing.T) {
	path := writeTemp(t, "orders.xsd", fixture)

	code, out, errOut := runCmd(t, "summary", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "targetNamespace  urn:orders\n")
	assert.Contains(t, out, "namespace        xs=http://www.w3.org/2001/XMLSchema\n")
	assert.Contains(t, out, "namespace        tns=urn:orders\n")
	assert.Contains(t, out, "complexTypes     1\n")
	assert.Contains(t, out, "elements         2\n")
	assert.Contains(t, out, "notations        0\n")
	assert.Empty(t, errOut)
}

func TestDump(t *testing.T) {
	path := writeTemp(t, "orders.xsd", fixture)

	code, out, errOut := runCmd(t, "dump", "--format", "yaml", path)
	require.Equal(t, 0, code, errOut)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "urn:orders", doc["targetNamespace"])
	elements := doc["elements"].([]any)
	require.Len(t, elements, 2)
	assert.Equal(t, "order", elements[0].(map[string]any)["name"])

	code, _, errOut = runCmd(t, "dump", "--format", "json", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unsupported format")
}

func TestFormat(t *testing.T) {
	path := writeTemp(t, "orders.xsd", fixture)

	code, out, errOut := runCmd(t, "format", path)
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, "\n  <xs:complexType name=\"Line\">")

	want, err := xsd.ReadSchemaFile(path, xsd.NewReadOptions())
	require.NoError(t, err)
	got, err := xsd.ReadSchema(strings.NewReader(out), xsd.NewReadOptions())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseFailure(t *testing.T) {
	path := writeTemp(t, "bad.xsd", `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element/></xs:schema>`)

	code, out, errOut := runCmd(t, "summary", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "error: ")
	assert.Contains(t, errOut, "xsd-structural-violation")
	assert.Contains(t, errOut, path)

	code, _, errOut = runCmd(t, "format", filepath.Join(t.TempDir(), "missing.xsd"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "xsd-io")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no file", args: []string{"summary"}},
		{name: "two files", args: []string{"dump", "a.xsd", "b.xsd"}},
		{name: "unknown flag", args: []string{"format", "--bogus", "a.xsd"}},
		{name: "bad log level", args: []string{"--log-level", "loud", "summary", "a.xsd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCmd(t, tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, errOut, "error: ")
		})
	}
}

func TestConfigAndLogFlags(t *testing.T) {
	path := writeTemp(t, "orders.xsd", fixture)
	cfgPath := writeTemp(t, "xsddump.yaml", "log_level: debug\nmax_depth: 2\n")

	code, _, errOut := runCmd(t, "--config", cfgPath, "summary", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "xsd-depth-exceeded")
	assert.Contains(t, errOut, `"level":"debug"`)

	cfgPath = writeTemp(t, "xsddump.yaml", "log_level: error\n")
	code, _, errOut = runCmd(t, "--config", cfgPath, "--log-level", "debug", "--pretty-log", "summary", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "DBG")
	assert.Contains(t, errOut, "reading schema")

	code, _, errOut = runCmd(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "summary", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "open config")
}
