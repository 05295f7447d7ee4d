package cli

import (
	"path/filepath"
	"testing"

	"github.com/Mal-Suen/galois/pkg/config"
	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFieldInfos(t *testing.T) {
	infos := builtinFieldInfos()
	require.Len(t, infos, len(gf.Names()))

	byName := make(map[string]FieldInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	qr := byName["qr-code-256"]
	assert.Equal(t, 256, qr.Size)
	assert.Equal(t, 8, qr.Degree)
	assert.Equal(t, "0x11d", qr.Primitive)
	assert.Equal(t, "x^8 + x^4 + x^3 + x^2 + 1", qr.Polynomial)
	assert.NotEmpty(t, qr.Fingerprint)
	assert.False(t, qr.Custom)

	// Aliased fields share a configuration, visible as equal fingerprints.
	assert.Equal(t, byName["data-matrix-256"].Fingerprint, byName["aztec-data-8"].Fingerprint)
	assert.Equal(t, byName["aztec-data-6"].Fingerprint, byName["maxicode-64"].Fingerprint)
	assert.NotEqual(t, byName["qr-code-256"].Fingerprint, byName["data-matrix-256"].Fingerprint)
}

func TestProfileFieldInfos(t *testing.T) {
	t.Setenv("GALOIS_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	cm, err := config.NewConfigManager()
	require.NoError(t, err)
	require.NoError(t, cm.AddProfile(&config.FieldProfile{Name: "ecc-32", Primitive: 0x25, Size: 32}))

	// Profiles that no longer construct are skipped, not fatal.
	require.NoError(t, cm.AddProfile(&config.FieldProfile{Name: "broken", Primitive: 0x11b, Size: 256}))

	infos := profileFieldInfos(cm)
	require.Len(t, infos, 1)
	assert.Equal(t, "ecc-32", infos[0].Name)
	assert.Equal(t, 32, infos[0].Size)
	assert.True(t, infos[0].Custom)
}
