package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/seedxor/internal/validation"
	"github.com/Davincible/seedxor/pkg/config"
	"github.com/Davincible/seedxor/pkg/crypto/seedxor"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type SplitResult struct {
	Shares    []MnemonicOutput `json:"shares"`
	Total     int              `json:"total"`
	Validated bool             `json:"validated"`
}

func NewSplitCommand(cfg *config.Config) *cobra.Command {
	var (
		shares     int
		noValidate bool
		short      bool
		language   string
	)

	cmd := &cobra.Command{
		Use:   "split [mnemonic words...]",
		Short: "Split a mnemonic into XOR shares",
		Long: `Split a BIP39 mnemonic into shares that XOR back to it.

Each share is a random, valid mnemonic of the same length and language as
the input. All shares are required to recover the original. Unless
--no-validate is given, the shares are recombined and compared with the
input before they are shown.

Words may be abbreviated to their first four letters. Without arguments
the mnemonic is read from the terminal without echo.`,
		Example: `  # Split into 2 shares, reading the mnemonic interactively
  seedxor split

  # Split into 3 shares
  seedxor split -n 3 "romance wink lottery ... dragon room"

  # Split a seed that has no BIP39 checksum
  seedxor split --no-validate "..."

  # Show only the first 4 letters of every word
  seedxor split --short`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("shares") {
				shares = cfg.Defaults.Shares
			}
			if !cmd.Flags().Changed("no-validate") {
				noValidate = !cfg.Defaults.Validate
			}
			if !cmd.Flags().Changed("short") {
				short = cfg.Defaults.Short
			}

			if err := validation.ValidateShareCount(shares); err != nil {
				return err
			}

			lang, err := languageFlag(cmd, language, cfg.Defaults.Language)
			if err != nil {
				return err
			}

			text, err := mnemonicFromArgs(cmd, args, "Enter the mnemonic to split: ")
			if err != nil {
				return err
			}

			var m *seedxor.Mnemonic
			if noValidate {
				m, err = seedxor.ParseWithoutChecksum(text, lang)
			} else {
				m, err = seedxor.Parse(text, lang)
			}
			if err != nil {
				return fmt.Errorf("invalid mnemonic: %w", err)
			}

			slog.Debug("splitting mnemonic", "words", m.WordCount(), "language", m.Language().String(), "shares", shares)

			parts, err := seedxor.SplitN(m, shares, !noValidate)
			if err != nil {
				return fmt.Errorf("failed to split mnemonic: %w", err)
			}

			result := SplitResult{
				Shares:    make([]MnemonicOutput, len(parts)),
				Total:     len(parts),
				Validated: !noValidate,
			}
			for i, part := range parts {
				result.Shares[i] = newMnemonicOutput(part, short)
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return outputSplitText(cmd, parts, result, short)
		},
	}

	cmd.Flags().IntVarP(&shares, "shares", "n", 2, "Number of shares to create")
	cmd.Flags().BoolVarP(&noValidate, "no-validate", "y", false, "Skip checksum and recombination checks, for non-BIP39 seeds")
	cmd.Flags().BoolVarP(&short, "short", "r", false, "Display only the first 4 letters of every word")
	cmd.Flags().StringVarP(&language, "language", "l", "auto", "Wordlist language")

	return cmd
}

func outputSplitText(cmd *cobra.Command, parts []*seedxor.Mnemonic, result SplitResult, short bool) error {
	w := cmd.OutOrStdout()
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	yellow.Fprintln(w, "=== SEED XOR SHARES ===")
	fmt.Fprintln(w)

	green.Fprintf(w, "Created %d shares; all %d are needed to recover the seed\n", result.Total, result.Total)
	if result.Validated {
		green.Fprintln(w, "✓ Shares recombine to the original mnemonic")
	}

	for i, part := range parts {
		fmt.Fprintln(w)
		cyan.Fprintf(w, "Share %d of %d (%s):\n", i+1, result.Total, part.Fingerprint())
		printMnemonic(w, part, short)
	}

	printSecurityWarning(w)
	return nil
}
