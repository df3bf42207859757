package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/seedxor/pkg/config"
	"github.com/Davincible/seedxor/pkg/crypto/seedxor"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type CombineResult struct {
	MnemonicOutput
	Shares int `json:"shares"`
}

// NewCombineCommand creates the combine command
func NewCombineCommand(cfg *config.Config) *cobra.Command {
	var (
		short    bool
		language string
	)

	cmd := &cobra.Command{
		Use:   "combine [share...]",
		Short: "Combine XOR shares into the original mnemonic",
		Long: `Combine mnemonic shares by XORing their entropy.

Pass every share as one quoted argument, or run without arguments to enter
them one per line. Shares of different lengths may be mixed: the result has
the length of the longest share. The result uses the language of the first
share.`,
		Example: `  # Combine shares interactively
  seedxor combine

  # Combine the Coldcard example shares
  seedxor combine "romance wink ..." "lion misery ..." "vault nominee ..."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("short") {
				short = cfg.Defaults.Short
			}

			lang, err := languageFlag(cmd, language, cfg.Defaults.Language)
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				inputs, err = newInputReader(cmd).readLines("share")
				if err != nil {
					return err
				}
			}

			shares := make([]*seedxor.Mnemonic, len(inputs))
			for i, input := range inputs {
				share, err := seedxor.Parse(input, lang)
				if err != nil {
					return fmt.Errorf("invalid share %d: %w", i+1, err)
				}
				shares[i] = share
			}

			slog.Debug("combining shares", "count", len(shares))

			m := seedxor.Combine(shares)
			if m == nil {
				return fmt.Errorf("no shares provided")
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), CombineResult{
					MnemonicOutput: newMnemonicOutput(m, short),
					Shares:         len(shares),
				})
			}

			w := cmd.OutOrStdout()
			green := color.New(color.FgGreen, color.Bold)
			cyan := color.New(color.FgCyan, color.Bold)

			fmt.Fprintln(w)
			green.Fprintf(w, "✓ Combined %d shares\n", len(shares))
			fmt.Fprintln(w)
			cyan.Fprintf(w, "Mnemonic (%d words, %s):\n", m.WordCount(), m.Fingerprint())
			printMnemonic(w, m, short)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "r", false, "Display only the first 4 letters of every word")
	cmd.Flags().StringVarP(&language, "language", "l", "auto", "Wordlist language of the shares")

	return cmd
}
