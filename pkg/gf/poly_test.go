package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonomial(t *testing.T) {
	f, err := New(0x13, 16)
	require.NoError(t, err)

	tests := []struct {
		name        string
		degree      int
		coefficient int
		wantError   error
	}{
		{
			name:        "Constant",
			degree:      0,
			coefficient: 7,
		},
		{
			name:        "Cubic term",
			degree:      3,
			coefficient: 5,
		},
		{
			name:        "High degree",
			degree:      20,
			coefficient: 15,
		},
		{
			name:        "Zero coefficient collapses to zero",
			degree:      9,
			coefficient: 0,
		},
		{
			name:        "Negative degree",
			degree:      -1,
			coefficient: 1,
			wantError:   ErrInvalidArgument,
		},
		{
			name:        "Coefficient outside field",
			degree:      2,
			coefficient: 16,
			wantError:   ErrOutOfRange,
		},
		{
			name:        "Negative coefficient",
			degree:      2,
			coefficient: -3,
			wantError:   ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := f.BuildMonomial(tt.degree, tt.coefficient)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			if tt.coefficient == 0 {
				assert.Same(t, f.Zero(), p)
				assert.True(t, p.IsZero())
				return
			}
			assert.Equal(t, tt.degree, p.Degree())
			assert.Equal(t, tt.coefficient, p.Coefficient(tt.degree))
			for d := 0; d < tt.degree; d++ {
				assert.Equal(t, 0, p.Coefficient(d), "lower-degree coefficient %d", d)
			}
		})
	}
}

func TestZeroAndOne(t *testing.T) {
	f, err := New(0x13, 16)
	require.NoError(t, err)

	zero := f.Zero()
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Degree())
	assert.Equal(t, 0, zero.Coefficient(0))

	one := f.One()
	assert.False(t, one.IsZero())
	assert.Equal(t, 0, one.Degree())
	assert.Equal(t, 1, one.Coefficient(0))

	// Shared singletons per field.
	assert.Same(t, zero, f.Zero())
	assert.Same(t, one, f.One())
}

func TestPolyCoefficientAccess(t *testing.T) {
	f, err := New(0x13, 16)
	require.NoError(t, err)

	p, err := f.BuildMonomial(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, 5, p.Coefficient(2))
	assert.Equal(t, 0, p.Coefficient(1))
	assert.Equal(t, 0, p.Coefficient(0))
	assert.Equal(t, 0, p.Coefficient(3))
	assert.Equal(t, 0, p.Coefficient(-1))

	coefficients := p.Coefficients()
	assert.Equal(t, []int{5, 0, 0}, coefficients)

	// Mutating the copy must not reach the polynomial.
	coefficients[0] = 9
	assert.Equal(t, []int{5, 0, 0}, p.Coefficients())
}

func TestPolyString(t *testing.T) {
	f, err := New(0x13, 16)
	require.NoError(t, err)

	tests := []struct {
		name        string
		degree      int
		coefficient int
		want        string
	}{
		{"Zero", 4, 0, "0"},
		{"Constant", 0, 5, "5"},
		{"One", 0, 1, "1"},
		{"Unit linear", 1, 1, "x"},
		{"Linear", 1, 3, "3x"},
		{"Unit cubic", 3, 1, "x^3"},
		{"Cubic", 3, 5, "5x^3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := f.BuildMonomial(tt.degree, tt.coefficient)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPolyField(t *testing.T) {
	p, err := AztecParam.BuildMonomial(1, 2)
	require.NoError(t, err)
	assert.Same(t, AztecParam, p.Field())

	assert.Same(t, QRCodeField256, QRCodeField256.Zero().Field())
}
