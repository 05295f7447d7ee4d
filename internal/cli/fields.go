package cli

import (
	"fmt"

	"github.com/Mal-Suen/galois/pkg/config"
	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// FieldInfo describes one field for listings and JSON output.
type FieldInfo struct {
	Name        string `json:"name"`
	Size        int    `json:"size"`
	Degree      int    `json:"degree"`
	Primitive   string `json:"primitive"`
	Polynomial  string `json:"polynomial"`
	Fingerprint string `json:"fingerprint"`
	Custom      bool   `json:"custom,omitempty"`
}

func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the available Galois fields",
		Long: `List the built-in GF(2^m) fields used by the 2D barcode formats, along
with any user-defined field profiles.

Each built-in field is named after the symbology it serves. Two entries can
share a configuration: Aztec 8-bit data words use the Data Matrix field, and
MaxiCode uses the Aztec 6-bit field. The fingerprint identifies the generated
log/exp tables, so equal fingerprints mean interchangeable arithmetic.`,
		Example: `  # List all fields
  galois fields

  # Machine-readable listing
  galois fields --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			cfg, cm := loadConfig()

			infos := builtinFieldInfos()
			var custom []FieldInfo
			if cm != nil {
				custom = profileFieldInfos(cm)
			}

			if outputJSON {
				return printJSON(append(infos, custom...))
			}

			return outputFieldsText(infos, custom, cfg.Defaults.Field)
		},
	}

	return cmd
}

func builtinFieldInfos() []FieldInfo {
	names := gf.Names()
	infos := make([]FieldInfo, 0, len(names))

	for _, name := range names {
		field, err := gf.Lookup(name)
		if err != nil {
			continue
		}
		infos = append(infos, fieldInfo(name, field, false))
	}

	return infos
}

func profileFieldInfos(cm *config.ConfigManager) []FieldInfo {
	var infos []FieldInfo

	for _, profile := range cm.ListProfiles() {
		field, err := gf.New(profile.Primitive, profile.Size)
		if err != nil {
			// Skip profiles that no longer construct, e.g. hand-edited
			// fields.json with a reducible polynomial.
			continue
		}
		infos = append(infos, fieldInfo(profile.Name, field, true))
	}

	return infos
}

func fieldInfo(name string, field *gf.Field, custom bool) FieldInfo {
	return FieldInfo{
		Name:        name,
		Size:        field.Size(),
		Degree:      fieldDegree(field.Size()),
		Primitive:   fmt.Sprintf("%#x", field.Primitive()),
		Polynomial:  polynomialString(field.Primitive()),
		Fingerprint: field.Fingerprint(),
		Custom:      custom,
	}
}

func outputFieldsText(builtin, custom []FieldInfo, defaultField string) error {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	yellow.Println("=== GALOIS FIELDS ===")
	fmt.Println()

	cyan.Printf("  %-16s %5s %3s  %-8s %-12s %s\n", "NAME", "SIZE", "M", "POLY", "FINGERPRINT", "POLYNOMIAL")
	for _, info := range builtin {
		printFieldLine(info, defaultField)
	}

	if len(custom) > 0 {
		fmt.Println()
		cyan.Println("  Custom field profiles:")
		for _, info := range custom {
			printFieldLine(info, defaultField)
		}
	}

	fmt.Println()
	fmt.Println("* marks the configured default field.")
	fmt.Println("Use 'galois tables --field NAME' to inspect a field's tables.")

	return nil
}

func printFieldLine(info FieldInfo, defaultField string) {
	marker := " "
	if info.Name == defaultField {
		marker = "*"
	}

	fmt.Printf("%s %-16s %5d %3d  %-8s %-12s %s\n",
		marker, info.Name, info.Size, info.Degree, info.Primitive,
		info.Fingerprint[:12], info.Polynomial)
}
