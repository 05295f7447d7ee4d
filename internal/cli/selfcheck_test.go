package cli

import (
	"testing"

	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFieldChecksOnBuiltins(t *testing.T) {
	for _, name := range gf.Names() {
		t.Run(name, func(t *testing.T) {
			field, err := gf.Lookup(name)
			require.NoError(t, err)

			report := runFieldChecks(name, field)

			assert.Equal(t, len(fieldChecks), report.Passed)
			assert.Zero(t, report.Failed)
			for _, result := range report.Checks {
				assert.True(t, result.OK, "%s failed: %s", result.Name, result.Error)
				assert.Empty(t, result.Error)
			}
		})
	}
}

func TestRunFieldChecksReportShape(t *testing.T) {
	field, err := gf.New(0x13, 16)
	require.NoError(t, err)

	report := runFieldChecks("test-16", field)

	assert.Equal(t, "test-16", report.Field)
	assert.Equal(t, 16, report.Size)
	assert.Equal(t, "0x13", report.Primitive)
	assert.Equal(t, field.Fingerprint(), report.Fingerprint)
	require.Len(t, report.Checks, len(fieldChecks))

	names := make(map[string]bool, len(report.Checks))
	for _, result := range report.Checks {
		names[result.Name] = true
	}
	assert.True(t, names["exp/log round trip"])
	assert.True(t, names["domain error taxonomy"])
}

func TestCheckStride(t *testing.T) {
	assert.Equal(t, 1, checkStride(16))
	assert.Equal(t, 1, checkStride(256))
	assert.Equal(t, 4, checkStride(1024))
	assert.Equal(t, 16, checkStride(4096))
}

func TestChecksPassOnCustomField(t *testing.T) {
	field, err := gf.New(0x25, 32)
	require.NoError(t, err)

	report := runFieldChecks("ecc-32", field)
	assert.Zero(t, report.Failed, "failures: %+v", report.Checks)
}
