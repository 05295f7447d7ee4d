// Package gf implements arithmetic over binary Galois fields GF(2^m), the
// algebraic layer underneath Reed-Solomon error correction in 2D barcode
// formats such as QR, Data Matrix, and Aztec.
//
// A Field is defined by its size (a power of two) and a primitive polynomial
// whose coefficients are encoded as the bits of an int, least-significant bit
// holding the constant term. Field elements are represented as ints in
// [0, Size()) for convenience and speed. Addition is XOR; multiplication,
// inversion, and discrete logarithms run in O(1) off exponent/logarithm
// tables built once at construction time.
package gf

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"

	"golang.org/x/crypto/blake2b"
)

// Field is an immutable representation of GF(2^m). The exponent and
// logarithm tables are fully built by New, so a *Field is safe for
// unsynchronized concurrent use.
type Field struct {
	size      int
	primitive int
	expTable  []int
	logTable  []int
	zero      *Poly
	one       *Poly
}

// New creates a representation of GF(size) using the given primitive
// polynomial. It fails if size is not a power of two of at least 2, if the
// degree of primitive does not match log2(size), or if the polynomial does
// not generate the full multiplicative group (i.e. it is not primitive over
// the field), since any of these would silently corrupt every table lookup.
func New(primitive, size int) (*Field, error) {
	if size < 2 || bits.OnesCount(uint(size)) != 1 {
		return nil, fmt.Errorf("field size must be a power of two, got %d", size)
	}
	degree := bits.TrailingZeros(uint(size))
	if bits.Len(uint(primitive)) != degree+1 {
		return nil, fmt.Errorf("primitive polynomial 0x%x must have degree %d for field size %d", primitive, degree, size)
	}

	f := &Field{
		size:      size,
		primitive: primitive,
		expTable:  make([]int, size),
		logTable:  make([]int, size),
	}

	// expTable[i] = 2^i in the field; the generator alpha is fixed as the
	// element 2. Doubling walks one step up the powers, and XOR with the
	// primitive polynomial reduces back into degree < log2(size).
	x := 1
	for i := 0; i < size; i++ {
		if x == 1 && i != 0 && i != size-1 {
			return nil, fmt.Errorf("polynomial 0x%x is not primitive over GF(%d): generator cycles after %d steps", primitive, size, i)
		}
		f.expTable[i] = x
		x <<= 1
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	if f.expTable[size-1] != 1 {
		return nil, fmt.Errorf("polynomial 0x%x is not primitive over GF(%d): generator does not span the multiplicative group", primitive, size)
	}
	for i := 0; i < size-1; i++ {
		f.logTable[f.expTable[i]] = i
	}
	// logTable[0] stays 0; log of zero is undefined and every read is
	// guarded by the zero checks below.

	f.zero = newPoly(f, []int{0})
	f.one = newPoly(f, []int{1})

	return f, nil
}

// AddOrSubtract returns a+b. In characteristic 2 addition and subtraction
// coincide, and both are XOR; any int operands are accepted.
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Size returns the number of elements in the field.
func (f *Field) Size() int {
	return f.size
}

// Primitive returns the primitive polynomial as a coefficient bit mask.
func (f *Field) Primitive() int {
	return f.primitive
}

// Zero returns the monomial representing the field's additive identity.
// The returned value is shared and must not be modified.
func (f *Field) Zero() *Poly {
	return f.zero
}

// One returns the monomial representing the field's multiplicative identity.
// The returned value is shared and must not be modified.
func (f *Field) One() *Poly {
	return f.one
}

// Exp returns 2 to the power of a in the field.
func (f *Field) Exp(a int) (int, error) {
	if a < 0 || a >= f.size {
		return 0, fmt.Errorf("exponent %d outside [0, %d): %w", a, f.size, ErrOutOfRange)
	}
	return f.expTable[a], nil
}

// Log returns the base-2 discrete logarithm of a in the field.
func (f *Field) Log(a int) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("log(0) is undefined: %w", ErrInvalidArgument)
	}
	if a < 0 || a >= f.size {
		return 0, fmt.Errorf("element %d outside [0, %d): %w", a, f.size, ErrOutOfRange)
	}
	return f.logTable[a], nil
}

// Inverse returns the multiplicative inverse of a.
func (f *Field) Inverse(a int) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("zero has no multiplicative inverse: %w", ErrDivideByZero)
	}
	if a < 0 || a >= f.size {
		return 0, fmt.Errorf("element %d outside [0, %d): %w", a, f.size, ErrOutOfRange)
	}
	return f.expTable[f.size-f.logTable[a]-1], nil
}

// Multiply returns the product of a and b in the field. Both operands must
// be field elements; values outside [0, Size()) are rejected rather than
// read out of the tables.
func (f *Field) Multiply(a, b int) (int, error) {
	if a < 0 || a >= f.size {
		return 0, fmt.Errorf("element %d outside [0, %d): %w", a, f.size, ErrOutOfRange)
	}
	if b < 0 || b >= f.size {
		return 0, fmt.Errorf("element %d outside [0, %d): %w", b, f.size, ErrOutOfRange)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	// The summed logs are reduced modulo size-1, the order of the
	// multiplicative group. logSum never exceeds 2*size-4, so the quotient
	// term folds the single possible wrap back in; expTable[size-1] holds
	// the wrap entry (equal to expTable[0]), keeping every index in range.
	logSum := f.logTable[a] + f.logTable[b]
	return f.expTable[logSum%f.size+logSum/f.size], nil
}

// BuildMonomial returns the monomial coefficient*x^degree over the field.
// A zero coefficient yields the field's shared zero polynomial regardless
// of degree.
func (f *Field) BuildMonomial(degree, coefficient int) (*Poly, error) {
	if degree < 0 {
		return nil, fmt.Errorf("monomial degree %d is negative: %w", degree, ErrInvalidArgument)
	}
	if coefficient < 0 || coefficient >= f.size {
		return nil, fmt.Errorf("coefficient %d outside [0, %d): %w", coefficient, f.size, ErrOutOfRange)
	}
	if coefficient == 0 {
		return f.zero, nil
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newPoly(f, coefficients), nil
}

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the field's
// parameters and generated tables. Two fields built from the same
// (primitive, size) pair always produce the same fingerprint.
func (f *Field) Fingerprint() string {
	buf := make([]byte, 0, (2+len(f.expTable)+len(f.logTable))*8)
	buf = binary.BigEndian.AppendUint64(buf, uint64(f.size))
	buf = binary.BigEndian.AppendUint64(buf, uint64(f.primitive))
	for _, v := range f.expTable {
		buf = binary.BigEndian.AppendUint64(buf, uint64(v))
	}
	for _, v := range f.logTable {
		buf = binary.BigEndian.AppendUint64(buf, uint64(v))
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// ExpTable returns a copy of the exponent table, expTable[i] = 2^i.
func (f *Field) ExpTable() []int {
	table := make([]int, len(f.expTable))
	copy(table, f.expTable)
	return table
}

// LogTable returns a copy of the logarithm table. Index 0 is unused and
// holds 0; Log(0) is undefined.
func (f *Field) LogTable() []int {
	table := make([]int, len(f.logTable))
	copy(table, f.logTable)
	return table
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", f.primitive, f.size)
}
