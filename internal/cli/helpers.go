package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/bits"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/Mal-Suen/galois/internal/validation"
	"github.com/Mal-Suen/galois/pkg/config"
	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// loadConfig loads the user configuration and applies its UI preferences.
// When the config file cannot be read or created, the built-in defaults are
// used and the manager is nil, which disables field profile lookups.
func loadConfig() (*config.Config, *config.ConfigManager) {
	cm, err := config.NewConfigManager()
	if err != nil {
		slog.Debug("Using default configuration", "error", err)
		cfg := config.DefaultConfig()
		applyUIConfig(cfg)
		return cfg, nil
	}

	cfg := cm.GetConfig()
	applyUIConfig(cfg)
	return cfg, cm
}

func applyUIConfig(cfg *config.Config) {
	if !cfg.UI.UseColor {
		color.NoColor = true
	}

	if cfg.UI.Verbosity == config.VerbosityVerbose {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

// resolveField picks the field to operate on. An explicit --primitive/--size
// pair defines a custom field; otherwise the name is looked up among the
// built-in fields and then among the user's field profiles, falling back to
// the configured default name when empty.
func resolveField(cfg *config.Config, cm *config.ConfigManager, name string, primitive, size int) (*gf.Field, string, error) {
	if primitive != 0 || size != 0 {
		if primitive == 0 || size == 0 {
			return nil, "", fmt.Errorf("custom fields need both --primitive and --size")
		}

		if err := validation.ValidatePolynomial(primitive, size); err != nil {
			return nil, "", err
		}

		field, err := gf.New(primitive, size)
		if err != nil {
			return nil, "", err
		}
		return field, field.String(), nil
	}

	if name == "" {
		name = cfg.Defaults.Field
	}

	if err := validation.ValidateFieldName(name); err != nil {
		return nil, "", err
	}

	if field, err := gf.Lookup(name); err == nil {
		return field, name, nil
	}

	// Not built in; try the user's field profiles.
	if cm != nil {
		if profile, err := cm.GetProfile(name); err == nil {
			field, err := gf.New(profile.Primitive, profile.Size)
			if err != nil {
				return nil, "", fmt.Errorf("field profile '%s' is invalid: %w", name, err)
			}
			return field, name, nil
		}
	}

	return nil, "", fmt.Errorf("unknown field '%s' (run 'galois fields' to list available fields)", name)
}

// parseElement parses a decimal or 0x-prefixed hex value.
func parseElement(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("value cannot be empty")
	}

	digits := s
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	base := 10
	if strings.HasPrefix(digits, "0x") {
		base = 16
		digits = digits[2:]
	}

	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value '%s': expected a decimal or 0x-prefixed hex number", s)
	}

	if negative {
		value = -value
	}
	return int(value), nil
}

// formatElement renders a value in the configured output base.
func formatElement(value int, base string) string {
	if base == config.BaseHex {
		return fmt.Sprintf("%#x", value)
	}
	return strconv.Itoa(value)
}

// polynomialString expands a coefficient bit mask into conventional
// polynomial notation, e.g. 0x13 becomes "x^4 + x + 1".
func polynomialString(mask int) string {
	if mask == 0 {
		return "0"
	}

	var terms []string
	for degree := bits.Len(uint(mask)) - 1; degree >= 0; degree-- {
		if mask&(1<<degree) == 0 {
			continue
		}

		switch degree {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", degree))
		}
	}

	return strings.Join(terms, " + ")
}

// fieldDegree returns m for a field of size 2^m.
func fieldDegree(size int) int {
	return bits.TrailingZeros(uint(size))
}

// readOperands reads whitespace-separated operands from stdin, prompting
// first when attached to a terminal.
func readOperands(prompt string) ([]string, error) {
	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Print(prompt)
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("failed to read operands: %w", err)
	}

	operands := strings.Fields(validation.SanitizeInput(line))
	if len(operands) == 0 {
		return nil, fmt.Errorf("no operands given")
	}

	return operands, nil
}

func printJSON(data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(jsonData))
	return nil
}
