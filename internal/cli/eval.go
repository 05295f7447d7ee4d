package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mal-Suen/galois/internal/validation"
	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// evalResult carries the outcome of a single field operation.
type evalResult struct {
	op       string
	operands []int
	value    int
	poly     *gf.Poly // set for monomial
}

func NewEvalCommand() *cobra.Command {
	var (
		fieldName string
		primitive int
		size      int
	)

	cmd := &cobra.Command{
		Use:   "eval OPERATION [OPERANDS...]",
		Short: "Evaluate a field operation",
		Long: `Evaluate a single arithmetic operation over a Galois field.

Operations:
  add a b       XOR addition (identical to subtraction)
  mul a b       product via the log/exp tables
  inv a         multiplicative inverse of a nonzero element
  log a         discrete logarithm base 2 of a nonzero element
  exp i         2 raised to the power i
  monomial d c  the single-term polynomial c*x^d

Operands are decimal or 0x-prefixed hex. When none are given on the command
line they are read from stdin, with a prompt when attached to a terminal.`,
		Example: `  # Multiply in the QR code field
  galois eval mul 0x53 0xca

  # Inverse in GF(16)
  galois eval inv 7 --field aztec-param

  # Build the monomial 5x^3
  galois eval monomial 3 5

  # Pipe operands in
  echo "12 33" | galois eval add`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			cfg, cm := loadConfig()
			field, name, err := resolveField(cfg, cm, fieldName, primitive, size)
			if err != nil {
				return err
			}

			op, arity, err := normalizeOperation(args[0])
			if err != nil {
				return err
			}

			raw := args[1:]
			if len(raw) == 0 {
				raw, err = readOperands(fmt.Sprintf("Enter %d operand(s) for %s: ", arity, op))
				if err != nil {
					return err
				}
			}

			if len(raw) != arity {
				return fmt.Errorf("%s takes %d operand(s), got %d", op, arity, len(raw))
			}

			operands := make([]int, len(raw))
			for i, r := range raw {
				value, err := parseElement(r)
				if err != nil {
					return err
				}
				operands[i] = value
			}

			result, err := evalOperation(field, op, operands)
			if err != nil {
				return err
			}

			if outputJSON {
				return printJSON(evalResultJSON(name, result))
			}

			return outputEvalText(name, result, cfg.Defaults.Base)
		},
	}

	cmd.Flags().StringVarP(&fieldName, "field", "f", "", "Field name (default from config)")
	cmd.Flags().IntVar(&primitive, "primitive", 0, "Primitive polynomial mask for a custom field")
	cmd.Flags().IntVar(&size, "size", 0, "Size of a custom field (power of two)")

	return cmd
}

// normalizeOperation maps an operation name or alias to its canonical name
// and operand count.
func normalizeOperation(op string) (string, int, error) {
	switch strings.ToLower(op) {
	case "add", "sub", "xor":
		return "add", 2, nil
	case "mul", "multiply":
		return "mul", 2, nil
	case "inv", "inverse":
		return "inv", 1, nil
	case "log":
		return "log", 1, nil
	case "exp":
		return "exp", 1, nil
	case "monomial":
		return "monomial", 2, nil
	default:
		return "", 0, fmt.Errorf("unknown operation '%s' (expected add, mul, inv, log, exp, or monomial)", op)
	}
}

func evalOperation(field *gf.Field, op string, operands []int) (*evalResult, error) {
	result := &evalResult{op: op, operands: operands}

	switch op {
	case "add":
		if err := validateElements(field, operands); err != nil {
			return nil, err
		}
		result.value = gf.AddOrSubtract(operands[0], operands[1])

	case "mul":
		if err := validateElements(field, operands); err != nil {
			return nil, err
		}
		product, err := field.Multiply(operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		result.value = product

	case "inv":
		if err := validateElements(field, operands); err != nil {
			return nil, err
		}
		inverse, err := field.Inverse(operands[0])
		if err != nil {
			return nil, err
		}
		result.value = inverse

	case "log":
		if err := validateElements(field, operands); err != nil {
			return nil, err
		}
		logarithm, err := field.Log(operands[0])
		if err != nil {
			return nil, err
		}
		result.value = logarithm

	case "exp":
		power, err := field.Exp(operands[0])
		if err != nil {
			return nil, err
		}
		result.value = power

	case "monomial":
		if err := validation.ValidateDegree(operands[0]); err != nil {
			return nil, err
		}
		if err := validation.ValidateElement(operands[1], field.Size()); err != nil {
			return nil, err
		}
		poly, err := field.BuildMonomial(operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		result.poly = poly

	default:
		return nil, fmt.Errorf("unknown operation '%s'", op)
	}

	return result, nil
}

func validateElements(field *gf.Field, operands []int) error {
	for _, value := range operands {
		if err := validation.ValidateElement(value, field.Size()); err != nil {
			return err
		}
	}
	return nil
}

func evalResultJSON(name string, result *evalResult) map[string]interface{} {
	data := map[string]interface{}{
		"field":     name,
		"operation": result.op,
		"operands":  result.operands,
	}

	if result.poly != nil {
		data["polynomial"] = result.poly.String()
		data["coefficients"] = result.poly.Coefficients()
		data["degree"] = result.poly.Degree()
	} else {
		data["result"] = result.value
	}

	return data
}

func outputEvalText(name string, result *evalResult, base string) error {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("%s: ", name)
	fmt.Println(formatEvalExpression(result, base))
	return nil
}

func formatEvalExpression(result *evalResult, base string) string {
	ops := make([]string, len(result.operands))
	for i, value := range result.operands {
		ops[i] = formatElement(value, base)
	}

	switch result.op {
	case "add":
		return fmt.Sprintf("%s + %s = %s", ops[0], ops[1], formatElement(result.value, base))
	case "mul":
		return fmt.Sprintf("%s * %s = %s", ops[0], ops[1], formatElement(result.value, base))
	case "monomial":
		// The degree is an index, not an element, so it stays decimal.
		return fmt.Sprintf("monomial(degree=%s, coefficient=%s) = %s",
			strconv.Itoa(result.operands[0]), ops[1], result.poly.String())
	default:
		return fmt.Sprintf("%s(%s) = %s", result.op, strings.Join(ops, ", "), formatElement(result.value, base))
	}
}
