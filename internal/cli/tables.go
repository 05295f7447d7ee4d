package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// TableDump is the JSON shape of a full table export.
type TableDump struct {
	Field       string `json:"field"`
	Size        int    `json:"size"`
	Degree      int    `json:"degree"`
	Primitive   string `json:"primitive"`
	Polynomial  string `json:"polynomial"`
	Fingerprint string `json:"fingerprint"`
	ExpTable    []int  `json:"exp_table"`
	LogTable    []int  `json:"log_table"`
}

func NewTablesCommand() *cobra.Command {
	var (
		fieldName string
		primitive int
		size      int
		format    string
		output    string
		pkgName   string
	)

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Dump the exponent and logarithm tables of a field",
		Long: `Dump the log/exp tables that drive a field's multiplication.

The text format prints an indexed listing next to the field parameters. The
json format exports both tables for consumption by other tools, and the go
format emits a Go source file with the tables as array literals, for embedding
in code that cannot afford table construction at startup.`,
		Example: `  # Print the GF(16) tables
  galois tables --field aztec-param

  # Tables for a custom field
  galois tables --primitive 0x25 --size 32

  # Generate Go source with the QR code tables
  galois tables --field qr-code-256 --format go --output tables.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")
			if outputJSON && format == "text" {
				format = "json"
			}

			cfg, cm := loadConfig()
			field, name, err := resolveField(cfg, cm, fieldName, primitive, size)
			if err != nil {
				return err
			}

			var rendered []byte
			switch format {
			case "text":
				rendered = []byte(renderTextTables(field, name, cfg.Defaults.Base))
			case "json":
				rendered, err = renderJSONTables(field, name)
			case "go":
				rendered = []byte(renderGoTables(field, pkgName))
			default:
				return fmt.Errorf("unsupported format '%s' (expected text, json, or go)", format)
			}
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, rendered, 0644); err != nil {
					return fmt.Errorf("failed to write tables: %w", err)
				}
				color.Green("✅ Tables written to %s", output)
				return nil
			}

			fmt.Print(string(rendered))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldName, "field", "f", "", "Field name (default from config)")
	cmd.Flags().IntVar(&primitive, "primitive", 0, "Primitive polynomial mask for a custom field")
	cmd.Flags().IntVar(&size, "size", 0, "Size of a custom field (power of two)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, go)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&pkgName, "package", "tables", "Package name for generated Go source")

	return cmd
}

func renderTextTables(field *gf.Field, name, base string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Field:       %s\n", name)
	fmt.Fprintf(&b, "Size:        %d (m=%d)\n", field.Size(), fieldDegree(field.Size()))
	fmt.Fprintf(&b, "Polynomial:  %#x (%s)\n", field.Primitive(), polynomialString(field.Primitive()))
	fmt.Fprintf(&b, "Fingerprint: %s\n", field.Fingerprint())
	fmt.Fprintln(&b)

	exp := field.ExpTable()
	log := field.LogTable()

	width := len(formatElement(field.Size()-1, base))
	if width < 3 {
		width = 3
	}

	fmt.Fprintf(&b, "%6s  %*s  %*s\n", "i", width, "exp", width, "log")
	for i := 0; i < field.Size(); i++ {
		// log(0) is undefined, the slot is never read.
		logStr := "-"
		if i > 0 {
			logStr = formatElement(log[i], base)
		}
		fmt.Fprintf(&b, "%6d  %*s  %*s\n", i, width, formatElement(exp[i], base), width, logStr)
	}

	return b.String()
}

func renderJSONTables(field *gf.Field, name string) ([]byte, error) {
	dump := TableDump{
		Field:       name,
		Size:        field.Size(),
		Degree:      fieldDegree(field.Size()),
		Primitive:   fmt.Sprintf("%#x", field.Primitive()),
		Polynomial:  polynomialString(field.Primitive()),
		Fingerprint: field.Fingerprint(),
		ExpTable:    field.ExpTable(),
		LogTable:    field.LogTable(),
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tables: %w", err)
	}

	return append(data, '\n'), nil
}

// renderGoTables emits the tables as a compilable Go source file.
func renderGoTables(field *gf.Field, pkgName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by \"galois tables\"; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "// GF(%d) tables for primitive polynomial %#x (%s).\n",
		field.Size(), field.Primitive(), polynomialString(field.Primitive()))
	fmt.Fprintf(&b, "// Fingerprint: %s\n", field.Fingerprint())
	fmt.Fprintf(&b, "package %s\n\n", pkgName)

	writeGoTable(&b, "expTable", field.ExpTable())
	fmt.Fprintln(&b)
	writeGoTable(&b, "logTable", field.LogTable())

	return b.String()
}

func writeGoTable(b *strings.Builder, name string, table []int) {
	fmt.Fprintf(b, "var %s = [%d]int{\n", name, len(table))

	for i := 0; i < len(table); i += 16 {
		end := i + 16
		if end > len(table) {
			end = len(table)
		}

		row := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			row = append(row, strconv.Itoa(table[j]))
		}
		fmt.Fprintf(b, "\t%s,\n", strings.Join(row, ", "))
	}

	fmt.Fprintf(b, "}\n")
}
