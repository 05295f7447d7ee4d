package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Mal-Suen/galois/pkg/config"
	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTextTables(t *testing.T) {
	field, err := gf.Lookup("aztec-param")
	require.NoError(t, err)

	out := renderTextTables(field, "aztec-param", config.BaseDec)

	assert.Contains(t, out, "Field:       aztec-param")
	assert.Contains(t, out, "Size:        16 (m=4)")
	assert.Contains(t, out, "Polynomial:  0x13 (x^4 + x + 1)")
	assert.Contains(t, out, field.Fingerprint())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Four parameter lines, a blank, the column header, then one row per
	// table slot.
	require.Len(t, lines, 6+field.Size())

	// The log of zero is undefined and rendered as a dash.
	assert.True(t, strings.HasSuffix(lines[6], "-"), "row for index 0: %q", lines[6])
	assert.Contains(t, lines[6], "1")
}

func TestRenderTextTablesHexBase(t *testing.T) {
	field, err := gf.Lookup("aztec-param")
	require.NoError(t, err)

	out := renderTextTables(field, "aztec-param", config.BaseHex)
	assert.Contains(t, out, "0xf")
}

func TestRenderJSONTables(t *testing.T) {
	field, err := gf.Lookup("qr-code-256")
	require.NoError(t, err)

	data, err := renderJSONTables(field, "qr-code-256")
	require.NoError(t, err)

	var dump TableDump
	require.NoError(t, json.Unmarshal(data, &dump))

	assert.Equal(t, "qr-code-256", dump.Field)
	assert.Equal(t, 256, dump.Size)
	assert.Equal(t, 8, dump.Degree)
	assert.Equal(t, "0x11d", dump.Primitive)
	assert.Equal(t, "x^8 + x^4 + x^3 + x^2 + 1", dump.Polynomial)
	assert.Equal(t, field.Fingerprint(), dump.Fingerprint)
	assert.Equal(t, field.ExpTable(), dump.ExpTable)
	assert.Equal(t, field.LogTable(), dump.LogTable)
}

func TestRenderGoTables(t *testing.T) {
	field, err := gf.Lookup("aztec-param")
	require.NoError(t, err)

	src := renderGoTables(field, "qrtables")

	assert.True(t, strings.HasPrefix(src, "// Code generated by \"galois tables\"; DO NOT EDIT.\n"))
	assert.Contains(t, src, "package qrtables")
	assert.Contains(t, src, "// Fingerprint: "+field.Fingerprint())
	assert.Contains(t, src, "var expTable = [16]int{")
	assert.Contains(t, src, "var logTable = [16]int{")

	// The GF(16) exponent table fits one row, wrap entry included.
	assert.Contains(t, src, "\t1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9, 1,\n")
}

func TestWriteGoTableChunksRows(t *testing.T) {
	var b strings.Builder
	writeGoTable(&b, "t", make([]int, 20))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	// Declaration, a full 16-value row, the 4-value remainder, and the
	// closing brace.
	require.Len(t, lines, 4)
	assert.Equal(t, "var t = [20]int{", lines[0])
	assert.Equal(t, 16, strings.Count(lines[1], ","))
	assert.Equal(t, 4, strings.Count(lines[2], ","))
	assert.Equal(t, "}", lines[3])
}
