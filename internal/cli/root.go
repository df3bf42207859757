package cli

import (
	"log/slog"
	"strings"

	"github.com/Davincible/seedxor/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the seedxor command tree. level is the log level of
// the process logger; --verbose lowers it to debug.
func NewRootCommand(cfg *config.Config, level *slog.LevelVar, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seedxor",
		Short: "Split and combine BIP39 seed phrases with XOR",
		Long: `Seedxor splits a BIP39 mnemonic into several mnemonics that XOR back to
the original, and combines such shares again.

Every share is itself a valid BIP39 mnemonic, and all of them are needed
for recovery. Shares of equal length are compatible with Coldcard's Seed XOR.

Features:
- Split into any number of shares, combine shares of any supported length
- Abbreviated input: the first four letters of every word are enough
- Unscramble words whose order was lost, using the BIP39 checksum
- All BIP39 wordlists, detected automatically`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			if noColor || !cfg.UI.UseColor {
				color.NoColor = true
			}

			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level.Set(slog.LevelDebug)
			}
			slog.Debug("configuration loaded", "path", cfg.Path, "language", cfg.Defaults.Language)
			return nil
		},
	}

	rootCmd.AddCommand(
		NewSplitCommand(cfg),
		NewCombineCommand(cfg),
		NewGenerateCommand(cfg),
		NewExpandCommand(cfg),
		NewUnscrambleCommand(cfg),
		NewVerifyCommand(cfg),
		NewConfigCommand(cfg),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	return rootCmd
}

// ParseLogLevel maps a configured level name to a slog level.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
