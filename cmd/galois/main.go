package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Mal-Suen/galois/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "galois",
		Short: "GF(2^m) arithmetic for Reed-Solomon error correction",
		Long: `Galois works with the binary extension fields GF(2^m) that underpin
Reed-Solomon error correction in 2D barcode formats.

The built-in fields cover QR codes, Data Matrix, Aztec, and MaxiCode, and
custom fields can be defined by primitive polynomial and size.

Features:
- Exponent/logarithm tables built once per field and fingerprinted
- Element arithmetic: add, multiply, invert, log, exp, monomials
- Table export as text, JSON, or generated Go source
- Invariant self-checks for every field
- Named custom field profiles stored in the user config`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	rootCmd.AddCommand(
		cli.NewFieldsCommand(),
		cli.NewTablesCommand(),
		cli.NewEvalCommand(),
		cli.NewSelfcheckCommand(),
		cli.NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
