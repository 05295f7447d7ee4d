package gf

import (
	"fmt"
	"sort"
)

// Well-known fields used by the 2D barcode formats. Each is built once at
// package initialization and shared; all are safe for concurrent use.
var (
	// AztecData12 is GF(4096) with primitive x^12 + x^6 + x^5 + x^3 + 1,
	// used for Aztec data words in the largest symbols.
	AztecData12 = mustNew(0x1069, 4096)

	// AztecData10 is GF(1024) with primitive x^10 + x^3 + 1.
	AztecData10 = mustNew(0x409, 1024)

	// AztecData6 is GF(64) with primitive x^6 + x + 1.
	AztecData6 = mustNew(0x43, 64)

	// AztecParam is GF(16) with primitive x^4 + x + 1, used for the Aztec
	// mode message.
	AztecParam = mustNew(0x13, 16)

	// QRCodeField256 is GF(256) with primitive x^8 + x^4 + x^3 + x^2 + 1,
	// the field QR codes compute error correction over.
	QRCodeField256 = mustNew(0x11d, 256)

	// DataMatrixField256 is GF(256) with primitive x^8 + x^5 + x^3 + x^2 + 1.
	DataMatrixField256 = mustNew(0x12d, 256)

	// AztecData8 is the field for Aztec 8-bit data words, identical to the
	// Data Matrix field.
	AztecData8 = DataMatrixField256

	// MaxiCodeField64 is the MaxiCode field, identical to AztecData6.
	MaxiCodeField64 = AztecData6
)

// mustNew backs the package-level fields above, whose parameters are fixed
// by the barcode specifications and cannot fail validation.
func mustNew(primitive, size int) *Field {
	f, err := New(primitive, size)
	if err != nil {
		panic(err)
	}
	return f
}

// wellKnown maps registry names to their fields. Aliases share the
// underlying *Field with the format they duplicate.
var wellKnown = map[string]*Field{
	"aztec-data-12":   AztecData12,
	"aztec-data-10":   AztecData10,
	"aztec-data-8":    AztecData8,
	"aztec-data-6":    AztecData6,
	"aztec-param":     AztecParam,
	"qr-code-256":     QRCodeField256,
	"data-matrix-256": DataMatrixField256,
	"maxicode-64":     MaxiCodeField64,
}

// Lookup returns the well-known field registered under name.
func Lookup(name string) (*Field, error) {
	f, ok := wellKnown[name]
	if !ok {
		return nil, fmt.Errorf("unknown field %q: %w", name, ErrInvalidArgument)
	}
	return f, nil
}

// Names returns the registry names in sorted order.
func Names() []string {
	names := make([]string, 0, len(wellKnown))
	for name := range wellKnown {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
