package cli

import (
	"fmt"
	"strconv"

	"github.com/Mal-Suen/galois/internal/validation"
	"github.com/Mal-Suen/galois/pkg/config"
	"github.com/Mal-Suen/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the tool configuration",
		Long: `Manage persistent settings and user-defined field profiles.

The configuration lives in $GALOIS_CONFIG if set, otherwise under
$XDG_CONFIG_HOME/galois/ or ~/.config/galois/. Field profiles are stored next
to it in fields.json and become addressable by name wherever --field is
accepted.

Settings:
  defaults.field  field used when --field is omitted
  defaults.base   numeric output base (dec, hex)
  ui.color        colored output (true, false)
  ui.verbosity    quiet, normal, verbose`,
		Example: `  # Show the current configuration
  galois config show

  # Output hex by default
  galois config set defaults.base hex

  # Register a custom field and make it the default
  galois config add-field ecc-32 --primitive 0x25 --size 32
  galois config set defaults.field ecc-32`,
	}

	cmd.AddCommand(
		newConfigShowCommand(),
		newConfigSetCommand(),
		newConfigAddFieldCommand(),
		newConfigRemoveFieldCommand(),
	)

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			cm, err := config.NewConfigManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cfg := cm.GetConfig()
			profiles := cm.ListProfiles()

			if outputJSON {
				return printJSON(map[string]interface{}{
					"path":     cm.ConfigPath(),
					"config":   cfg,
					"profiles": profiles,
				})
			}

			return outputConfigText(cm.ConfigPath(), cfg, profiles)
		},
	}

	return cmd
}

func outputConfigText(path string, cfg *config.Config, profiles []*config.FieldProfile) error {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	yellow.Println("=== CONFIGURATION ===")
	fmt.Println()
	fmt.Printf("File: %s\n\n", path)

	fmt.Printf("defaults.field  = %s\n", cfg.Defaults.Field)
	fmt.Printf("defaults.base   = %s\n", cfg.Defaults.Base)
	fmt.Printf("ui.color        = %t\n", cfg.UI.UseColor)
	fmt.Printf("ui.verbosity    = %s\n", cfg.UI.Verbosity)

	if len(profiles) > 0 {
		fmt.Println()
		cyan.Println("Field profiles:")
		for _, profile := range profiles {
			fmt.Printf("  %-16s GF(%d), polynomial %#x", profile.Name, profile.Size, profile.Primitive)
			if profile.Description != "" {
				fmt.Printf("  (%s)", profile.Description)
			}
			fmt.Println()
		}
	}

	return nil
}

func newConfigSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cfg := cm.GetConfig()
			if err := applyConfigValue(cm, cfg, args[0], args[1]); err != nil {
				return err
			}

			cm.SetConfig(cfg)
			if err := cm.SaveConfig(); err != nil {
				return err
			}

			color.Green("✅ %s = %s", args[0], args[1])
			return nil
		},
	}

	return cmd
}

// applyConfigValue sets one key on cfg, validating the new value. The
// manager is consulted for defaults.field so that only resolvable names are
// accepted.
func applyConfigValue(cm *config.ConfigManager, cfg *config.Config, key, value string) error {
	switch key {
	case "defaults.field":
		if err := validation.ValidateFieldName(value); err != nil {
			return err
		}
		if _, err := gf.Lookup(value); err != nil {
			if _, perr := cm.GetProfile(value); perr != nil {
				return fmt.Errorf("unknown field '%s' (run 'galois fields' to list available fields)", value)
			}
		}
		cfg.Defaults.Field = value

	case "defaults.base":
		if err := validation.ValidateBase(value); err != nil {
			return err
		}
		cfg.Defaults.Base = value

	case "ui.color":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ui.color must be true or false (got %q)", value)
		}
		cfg.UI.UseColor = enabled

	case "ui.verbosity":
		cfg.UI.Verbosity = value

	default:
		return fmt.Errorf("unknown config key '%s' (valid: defaults.field, defaults.base, ui.color, ui.verbosity)", key)
	}

	return cfg.Validate()
}

func newConfigAddFieldCommand() *cobra.Command {
	var (
		primitive   int
		size        int
		description string
	)

	cmd := &cobra.Command{
		Use:   "add-field NAME",
		Short: "Register a custom field profile",
		Long: `Register a named field profile backed by a custom primitive polynomial.

The polynomial is checked for primitivity by building the field once, so a
registered profile is guaranteed to construct.`,
		Example: `  # GF(32) with x^5 + x^2 + 1
  galois config add-field ecc-32 --primitive 0x25 --size 32 --description "5-bit codes"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := validation.ValidateFieldName(name); err != nil {
				return err
			}

			if _, err := gf.Lookup(name); err == nil {
				return fmt.Errorf("'%s' is a built-in field name", name)
			}

			if err := validation.ValidatePolynomial(primitive, size); err != nil {
				return err
			}

			// Proves the polynomial is primitive before anything is saved.
			field, err := gf.New(primitive, size)
			if err != nil {
				return err
			}

			cm, err := config.NewConfigManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			profile := &config.FieldProfile{
				Name:        name,
				Description: description,
				Primitive:   primitive,
				Size:        size,
			}
			if err := cm.AddProfile(profile); err != nil {
				return fmt.Errorf("failed to save field profile: %w", err)
			}

			color.Green("✅ Field profile '%s' registered", name)
			fmt.Printf("Field:       GF(%d), polynomial %#x (%s)\n", size, primitive, polynomialString(primitive))
			fmt.Printf("Fingerprint: %s\n", field.Fingerprint())

			return nil
		},
	}

	cmd.Flags().IntVar(&primitive, "primitive", 0, "Primitive polynomial mask")
	cmd.Flags().IntVar(&size, "size", 0, "Field size (power of two)")
	cmd.Flags().StringVar(&description, "description", "", "Description")

	cmd.MarkFlagRequired("primitive")
	cmd.MarkFlagRequired("size")

	return cmd
}

func newConfigRemoveFieldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-field NAME",
		Short: "Remove a custom field profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			cm, err := config.NewConfigManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := cm.DeleteProfile(name); err != nil {
				return err
			}

			if cm.GetConfig().Defaults.Field == name {
				color.Yellow("⚠️  '%s' was the default field; resetting to %s", name, config.DefaultConfig().Defaults.Field)
				cfg := cm.GetConfig()
				cfg.Defaults.Field = config.DefaultConfig().Defaults.Field
				cm.SetConfig(cfg)
				if err := cm.SaveConfig(); err != nil {
					return err
				}
			}

			color.Green("✅ Field profile '%s' removed", name)
			return nil
		},
	}

	return cmd
}
