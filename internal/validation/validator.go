package validation

import (
	"fmt"
	"math/bits"
	"regexp"
	"strings"
)

// MaxFieldSize caps field sizes accepted from the command line. Table
// construction is linear in the size, so anything past 2^20 is a typo.
const MaxFieldSize = 1 << 20

var fieldNamePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func ValidateFieldName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("field name cannot be empty")
	}

	if len(name) > 64 {
		return fmt.Errorf("field name too long (max 64 characters)")
	}

	if !fieldNamePattern.MatchString(name) {
		return fmt.Errorf("field name must be lowercase letters, digits, and hyphens (got %q)", name)
	}

	return nil
}

func ValidateElement(value, size int) error {
	if value < 0 || value >= size {
		return fmt.Errorf("value %d is not an element of GF(%d): must be in [0, %d)", value, size, size)
	}

	return nil
}

func ValidateDegree(degree int) error {
	if degree < 0 {
		return fmt.Errorf("degree must be non-negative (got %d)", degree)
	}

	return nil
}

// ValidatePolynomial checks that size and primitive are shaped like a field
// definition: the size a power of two, the mask a degree-m polynomial for
// size 2^m. Irreducibility is checked during field construction.
func ValidatePolynomial(primitive, size int) error {
	if size < 2 || bits.OnesCount(uint(size)) != 1 {
		return fmt.Errorf("field size must be a power of two of at least 2 (got %d)", size)
	}

	if size > MaxFieldSize {
		return fmt.Errorf("field size %d too large (max %d)", size, MaxFieldSize)
	}

	if primitive <= 0 {
		return fmt.Errorf("primitive polynomial mask must be positive (got %#x)", primitive)
	}

	degree := bits.TrailingZeros(uint(size))
	if bits.Len(uint(primitive)) != degree+1 {
		return fmt.Errorf("primitive polynomial %#x must have degree %d for field size %d", primitive, degree, size)
	}

	return nil
}

func ValidateBase(base string) error {
	switch base {
	case "dec", "hex":
		return nil
	default:
		return fmt.Errorf("base must be dec or hex (got %q)", base)
	}
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}
