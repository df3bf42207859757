package cli

import (
	"fmt"

	"github.com/Davincible/seedxor/internal/validation"
	"github.com/Davincible/seedxor/pkg/config"
	"github.com/Davincible/seedxor/pkg/crypto/seedxor"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewGenerateCommand(cfg *config.Config) *cobra.Command {
	var (
		wordCount int
		count     int
		short     bool
		language  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate new BIP39 mnemonic phrases",
		Long: `Generate cryptographically secure BIP39 mnemonic phrases.

Generated phrases can serve as wallet seeds or as hand-picked shares: XOR
any number of them with 'seedxor combine' to derive the seed they protect.`,
		Example: `  # Generate a 24-word mnemonic
  seedxor generate

  # Generate three 12-word mnemonics
  seedxor generate --words 12 --count 3

  # Generate a Japanese mnemonic
  seedxor generate --language japanese`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("words") {
				wordCount = cfg.Defaults.Words
			}
			if !cmd.Flags().Changed("short") {
				short = cfg.Defaults.Short
			}

			if err := validation.ValidateWordCount(wordCount); err != nil {
				return err
			}
			if err := validation.ValidateShareCount(count); err != nil {
				return fmt.Errorf("invalid count: %w", err)
			}

			lang, err := languageFlag(cmd, language, cfg.Defaults.Language)
			if err != nil {
				return err
			}
			if lang == wordlist.Auto {
				lang = wordlist.English
			}

			generated := make([]*seedxor.Mnemonic, count)
			for i := range generated {
				m, err := seedxor.Generate(lang, wordCount)
				if err != nil {
					return fmt.Errorf("failed to generate mnemonic: %w", err)
				}
				generated[i] = m
			}

			if jsonOutput(cmd) {
				result := make([]MnemonicOutput, len(generated))
				for i, m := range generated {
					result[i] = newMnemonicOutput(m, short)
				}
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"mnemonics": result,
				})
			}

			w := cmd.OutOrStdout()
			green := color.New(color.FgGreen, color.Bold)
			yellow := color.New(color.FgYellow)

			fmt.Fprintln(w)
			green.Fprintln(w, "=== NEW MNEMONIC PHRASES ===")
			for i, m := range generated {
				fmt.Fprintln(w)
				yellow.Fprintf(w, "Mnemonic %d of %d (%d words, %s):\n", i+1, count, m.WordCount(), m.Language())
				printMnemonic(w, m, short)
			}
			fmt.Fprintln(w)

			return nil
		},
	}

	cmd.Flags().IntVarP(&wordCount, "words", "w", 24, "Number of words (12, 15, 18, 21, or 24)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of mnemonics to generate")
	cmd.Flags().BoolVarP(&short, "short", "r", false, "Display only the first 4 letters of every word")
	cmd.Flags().StringVarP(&language, "language", "l", "english", "Wordlist language")

	return cmd
}
