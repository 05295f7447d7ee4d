package test

import (
	"path/filepath"
	"testing"

	"github.com/Mal-Suen/galois/pkg/config"
	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullWorkflow(t *testing.T) {
	// Reed-Solomon style usage: pick the QR code field, run element
	// arithmetic, and confirm the algebra holds end to end.
	field, err := gf.Lookup("qr-code-256")
	require.NoError(t, err)
	t.Logf("Using %s with fingerprint %s", field, field.Fingerprint())

	// Generator walk and discrete logs agree everywhere.
	for i := 0; i < field.Size()-1; i++ {
		power, err := field.Exp(i)
		require.NoError(t, err)

		back, err := field.Log(power)
		require.NoError(t, err)
		assert.Equal(t, i, back)
	}

	// A product, undone by the inverse of one factor.
	product, err := field.Multiply(0x53, 0xca)
	require.NoError(t, err)

	inverse, err := field.Inverse(0xca)
	require.NoError(t, err)

	recovered, err := field.Multiply(product, inverse)
	require.NoError(t, err)
	assert.Equal(t, 0x53, recovered)

	// Addition doubles as subtraction.
	sum := gf.AddOrSubtract(0x53, 0xca)
	assert.Equal(t, 0x53, gf.AddOrSubtract(sum, 0xca))

	// Generator polynomials for an RS code start from monomials.
	monomial, err := field.BuildMonomial(2, product)
	require.NoError(t, err)
	assert.Equal(t, 2, monomial.Degree())
	assert.Equal(t, product, monomial.Coefficient(2))
}

func TestCustomFieldMatchesBuiltin(t *testing.T) {
	custom, err := gf.New(0x11d, 256)
	require.NoError(t, err)

	builtin, err := gf.Lookup("qr-code-256")
	require.NoError(t, err)

	assert.Equal(t, builtin.Fingerprint(), custom.Fingerprint())
	assert.Equal(t, builtin.ExpTable(), custom.ExpTable())
	assert.Equal(t, builtin.LogTable(), custom.LogTable())
}

func TestAliasesAreInterchangeable(t *testing.T) {
	dataMatrix, err := gf.Lookup("data-matrix-256")
	require.NoError(t, err)
	aztecData8, err := gf.Lookup("aztec-data-8")
	require.NoError(t, err)

	assert.Same(t, dataMatrix, aztecData8)

	maxiCode, err := gf.Lookup("maxicode-64")
	require.NoError(t, err)
	aztecData6, err := gf.Lookup("aztec-data-6")
	require.NoError(t, err)

	assert.Same(t, maxiCode, aztecData6)
}

func TestErrorTaxonomyAcrossFields(t *testing.T) {
	for _, name := range gf.Names() {
		field, err := gf.Lookup(name)
		require.NoError(t, err)

		_, err = field.Log(0)
		assert.ErrorIs(t, err, gf.ErrInvalidArgument, name)

		_, err = field.Inverse(0)
		assert.ErrorIs(t, err, gf.ErrDivideByZero, name)

		_, err = field.Multiply(field.Size(), 1)
		assert.ErrorIs(t, err, gf.ErrOutOfRange, name)

		_, err = field.Exp(field.Size())
		assert.ErrorIs(t, err, gf.ErrOutOfRange, name)

		_, err = field.BuildMonomial(-1, 1)
		assert.ErrorIs(t, err, gf.ErrInvalidArgument, name)
	}
}

func TestFieldProfileRoundTrip(t *testing.T) {
	t.Setenv("GALOIS_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	// Prove the polynomial constructs before saving, as the CLI does.
	field, err := gf.New(0x25, 32)
	require.NoError(t, err)

	cm, err := config.NewConfigManager()
	require.NoError(t, err)
	require.NoError(t, cm.AddProfile(&config.FieldProfile{
		Name:        "ecc-32",
		Description: "5-bit symbols",
		Primitive:   0x25,
		Size:        32,
	}))

	// A fresh manager reloads the profile from fields.json and rebuilds an
	// identical field.
	cm2, err := config.NewConfigManager()
	require.NoError(t, err)

	profile, err := cm2.GetProfile("ecc-32")
	require.NoError(t, err)

	rebuilt, err := gf.New(profile.Primitive, profile.Size)
	require.NoError(t, err)
	assert.Equal(t, field.Fingerprint(), rebuilt.Fingerprint())
}

func TestConfigDrivenDefaults(t *testing.T) {
	t.Setenv("GALOIS_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	cm, err := config.NewConfigManager()
	require.NoError(t, err)

	cfg := cm.GetConfig()
	cfg.Defaults.Field = "aztec-data-10"
	cfg.Defaults.Base = config.BaseHex
	cm.SetConfig(cfg)
	require.NoError(t, cm.SaveConfig())

	cm2, err := config.NewConfigManager()
	require.NoError(t, err)

	loaded := cm2.GetConfig()
	require.NoError(t, loaded.Validate())

	field, err := gf.Lookup(loaded.Defaults.Field)
	require.NoError(t, err)
	assert.Equal(t, 1024, field.Size())
	assert.Equal(t, 0x409, field.Primitive())
}

func BenchmarkWorkflow(b *testing.B) {
	field, err := gf.Lookup("qr-code-256")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		product, _ := field.Multiply(0x53, 0xca)
		inverse, _ := field.Inverse(product)
		_, _ = field.Multiply(product, inverse)
	}
}
