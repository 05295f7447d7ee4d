package cli

import (
	"errors"
	"fmt"

	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// fieldCheck is one invariant verified by the selfcheck command.
type fieldCheck struct {
	name string
	run  func(*gf.Field) error
}

var fieldChecks = []fieldCheck{
	{"exp/log round trip", checkExpLogRoundTrip},
	{"generator order", checkGeneratorOrder},
	{"multiplicative inverses", checkInverses},
	{"multiplication commutes", checkCommutativity},
	{"zero absorbs products", checkZeroProducts},
	{"addition self-cancels", checkAddition},
	{"monomial construction", checkMonomials},
	{"domain error taxonomy", checkErrorTaxonomy},
	{"deterministic rebuild", checkDeterministicRebuild},
}

// CheckResult is the outcome of a single invariant check.
type CheckResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// CheckReport collects the check results for one field.
type CheckReport struct {
	Field       string        `json:"field"`
	Size        int           `json:"size"`
	Primitive   string        `json:"primitive"`
	Fingerprint string        `json:"fingerprint"`
	Passed      int           `json:"passed"`
	Failed      int           `json:"failed"`
	Checks      []CheckResult `json:"checks"`
}

func NewSelfcheckCommand() *cobra.Command {
	var (
		fieldName string
		primitive int
		size      int
	)

	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify field invariants against the generated tables",
		Long: `Run the arithmetic invariant suite against a field's generated tables.

The checks confirm that exp and log invert each other, that 2 generates the
whole multiplicative group, that every nonzero element has a working inverse,
and that the documented error taxonomy holds. A failure indicates a broken
build or a non-primitive polynomial slipping through construction.

Without flags, every built-in field is checked.`,
		Example: `  # Check every built-in field
  galois selfcheck

  # Check one field
  galois selfcheck --field aztec-data-12

  # Check a custom field
  galois selfcheck --primitive 0x25 --size 32`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			cfg, cm := loadConfig()

			var reports []CheckReport
			if fieldName == "" && primitive == 0 && size == 0 {
				for _, name := range gf.Names() {
					field, err := gf.Lookup(name)
					if err != nil {
						return err
					}
					reports = append(reports, runFieldChecks(name, field))
				}
			} else {
				field, name, err := resolveField(cfg, cm, fieldName, primitive, size)
				if err != nil {
					return err
				}
				reports = append(reports, runFieldChecks(name, field))
			}

			failed := 0
			for _, report := range reports {
				failed += report.Failed
			}

			if outputJSON {
				if err := printJSON(reports); err != nil {
					return err
				}
			} else {
				outputCheckReports(reports)
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldName, "field", "f", "", "Check a single field by name")
	cmd.Flags().IntVar(&primitive, "primitive", 0, "Primitive polynomial mask for a custom field")
	cmd.Flags().IntVar(&size, "size", 0, "Size of a custom field (power of two)")

	return cmd
}

func runFieldChecks(name string, field *gf.Field) CheckReport {
	report := CheckReport{
		Field:       name,
		Size:        field.Size(),
		Primitive:   fmt.Sprintf("%#x", field.Primitive()),
		Fingerprint: field.Fingerprint(),
	}

	for _, check := range fieldChecks {
		result := CheckResult{Name: check.name, OK: true}
		if err := check.run(field); err != nil {
			result.OK = false
			result.Error = err.Error()
			report.Failed++
		} else {
			report.Passed++
		}
		report.Checks = append(report.Checks, result)
	}

	return report
}

func outputCheckReports(reports []CheckReport) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	failed := 0
	for _, report := range reports {
		fmt.Println()
		cyan.Printf("Checking %s (GF(%d), polynomial %s)\n", report.Field, report.Size, report.Primitive)

		for _, result := range report.Checks {
			if result.OK {
				green.Printf("  ✓ %s\n", result.Name)
			} else {
				red.Printf("  ✗ %s: %s\n", result.Name, result.Error)
				failed++
			}
		}
	}

	fmt.Println()
	if failed == 0 {
		color.Green("✅ All checks passed")
	} else {
		color.Red("❌ %d check(s) failed", failed)
	}
}

// checkStride spaces out the quadratic checks on large fields.
func checkStride(size int) int {
	if size <= 256 {
		return 1
	}
	return size / 256
}

func checkExpLogRoundTrip(field *gf.Field) error {
	for x := 1; x < field.Size(); x++ {
		logarithm, err := field.Log(x)
		if err != nil {
			return fmt.Errorf("log(%d): %w", x, err)
		}

		back, err := field.Exp(logarithm)
		if err != nil {
			return fmt.Errorf("exp(%d): %w", logarithm, err)
		}

		if back != x {
			return fmt.Errorf("exp(log(%d)) = %d", x, back)
		}
	}
	return nil
}

func checkGeneratorOrder(field *gf.Field) error {
	one, err := field.Exp(0)
	if err != nil {
		return err
	}
	if one != 1 {
		return fmt.Errorf("2^0 = %d, want 1", one)
	}

	// Successive powers of 2 must visit every nonzero element once before
	// the cycle closes.
	seen := make([]bool, field.Size())
	for i := 0; i < field.Size()-1; i++ {
		power, err := field.Exp(i)
		if err != nil {
			return fmt.Errorf("exp(%d): %w", i, err)
		}
		if power == 0 {
			return fmt.Errorf("2^%d = 0", i)
		}
		if seen[power] {
			return fmt.Errorf("2^%d = %d repeats before the cycle closes", i, power)
		}
		seen[power] = true
	}

	wrapped, err := field.Exp(field.Size() - 1)
	if err != nil {
		return err
	}
	if wrapped != 1 {
		return fmt.Errorf("2^%d = %d, want 1", field.Size()-1, wrapped)
	}

	return nil
}

func checkInverses(field *gf.Field) error {
	for x := 1; x < field.Size(); x++ {
		inverse, err := field.Inverse(x)
		if err != nil {
			return fmt.Errorf("inverse(%d): %w", x, err)
		}

		product, err := field.Multiply(x, inverse)
		if err != nil {
			return fmt.Errorf("multiply(%d, %d): %w", x, inverse, err)
		}

		if product != 1 {
			return fmt.Errorf("%d * %d = %d, want 1", x, inverse, product)
		}
	}
	return nil
}

func checkCommutativity(field *gf.Field) error {
	stride := checkStride(field.Size())

	for a := 0; a < field.Size(); a += stride {
		for b := a; b < field.Size(); b += stride {
			ab, err := field.Multiply(a, b)
			if err != nil {
				return err
			}
			ba, err := field.Multiply(b, a)
			if err != nil {
				return err
			}
			if ab != ba {
				return fmt.Errorf("%d*%d = %d but %d*%d = %d", a, b, ab, b, a, ba)
			}
		}
	}
	return nil
}

func checkZeroProducts(field *gf.Field) error {
	for x := 0; x < field.Size(); x++ {
		left, err := field.Multiply(0, x)
		if err != nil {
			return err
		}
		right, err := field.Multiply(x, 0)
		if err != nil {
			return err
		}
		if left != 0 || right != 0 {
			return fmt.Errorf("product with zero gave %d and %d for x=%d", left, right, x)
		}
	}
	return nil
}

func checkAddition(field *gf.Field) error {
	stride := checkStride(field.Size())

	for a := 0; a < field.Size(); a += stride {
		if gf.AddOrSubtract(a, a) != 0 {
			return fmt.Errorf("%d + %d != 0", a, a)
		}
		if gf.AddOrSubtract(a, 0) != a {
			return fmt.Errorf("%d + 0 != %d", a, a)
		}

		for b := 0; b < field.Size(); b += stride {
			if gf.AddOrSubtract(gf.AddOrSubtract(a, b), b) != a {
				return fmt.Errorf("(%d + %d) + %d != %d", a, b, b, a)
			}
		}
	}
	return nil
}

func checkMonomials(field *gf.Field) error {
	cubic, err := field.BuildMonomial(3, 1)
	if err != nil {
		return fmt.Errorf("monomial x^3: %w", err)
	}
	if cubic.Degree() != 3 || cubic.Coefficient(3) != 1 || cubic.Coefficient(0) != 0 {
		return fmt.Errorf("monomial x^3 came out as %s", cubic)
	}

	zero, err := field.BuildMonomial(5, 0)
	if err != nil {
		return fmt.Errorf("zero monomial: %w", err)
	}
	if !zero.IsZero() {
		return fmt.Errorf("zero-coefficient monomial is %s, want 0", zero)
	}

	if !field.Zero().IsZero() {
		return fmt.Errorf("field zero polynomial is %s", field.Zero())
	}
	if field.One().Degree() != 0 || field.One().Coefficient(0) != 1 {
		return fmt.Errorf("field one polynomial is %s", field.One())
	}

	return nil
}

func checkErrorTaxonomy(field *gf.Field) error {
	if _, err := field.Log(0); !errors.Is(err, gf.ErrInvalidArgument) {
		return fmt.Errorf("log(0) returned %v, want invalid-argument", err)
	}
	if _, err := field.Inverse(0); !errors.Is(err, gf.ErrDivideByZero) {
		return fmt.Errorf("inverse(0) returned %v, want divide-by-zero", err)
	}
	if _, err := field.Multiply(field.Size(), 1); !errors.Is(err, gf.ErrOutOfRange) {
		return fmt.Errorf("multiply(%d, 1) returned %v, want out-of-range", field.Size(), err)
	}
	if _, err := field.Exp(-1); !errors.Is(err, gf.ErrOutOfRange) {
		return fmt.Errorf("exp(-1) returned %v, want out-of-range", err)
	}
	if _, err := field.BuildMonomial(-1, 1); !errors.Is(err, gf.ErrInvalidArgument) {
		return fmt.Errorf("monomial with negative degree returned %v, want invalid-argument", err)
	}
	return nil
}

func checkDeterministicRebuild(field *gf.Field) error {
	rebuilt, err := gf.New(field.Primitive(), field.Size())
	if err != nil {
		return fmt.Errorf("rebuild: %w", err)
	}

	if rebuilt.Fingerprint() != field.Fingerprint() {
		return fmt.Errorf("rebuilt tables fingerprint %s, want %s", rebuilt.Fingerprint(), field.Fingerprint())
	}
	return nil
}
