package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Davincible/seedxor/pkg/config"
	"github.com/Davincible/seedxor/pkg/crypto/seedxor"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type UnscrambleResult struct {
	Mnemonics []string `json:"mnemonics"`
	Good      uint64   `json:"good"`
	Bad       uint64   `json:"bad"`
	Total     string   `json:"total"`
	Complete  bool     `json:"complete"`
}

func NewUnscrambleCommand(cfg *config.Config) *cobra.Command {
	var (
		splitPhrases bool
		short        bool
		language     string
	)

	cmd := &cobra.Command{
		Use:   "unscramble <words or phrases...>",
		Short: "Find valid mnemonics among all orderings of the given words",
		Long: `Try every ordering of the given words and print those that form a
mnemonic with a valid BIP39 checksum.

Every argument is one unit: a quoted phrase keeps its internal word order
and is moved as a whole. Use --split-phrases to permute every word on its
own. The search tries n! orderings for n units and refuses to start when
that exceeds 2^64. Press Ctrl-C to stop early.`,
		Example: `  # Four phrases in unknown order (24 orderings)
  seedxor unscramble "romance wink lottery autumn shop bring" "dawn tongue range crater truth ability" ...

  # Twelve abbreviated words in unknown order
  seedxor unscramble lega winn than year wave saus wort usef lega winn than yell`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("short") {
				short = cfg.Defaults.Short
			}

			lang, err := languageFlag(cmd, language, cfg.Defaults.Language)
			if err != nil {
				return err
			}

			r, err := seedxor.NewRecoverer(args, seedxor.RecoverOptions{
				Language:    lang,
				KeepPhrases: !splitPhrases,
				Logger:      slog.Default(),
			})
			if err != nil {
				return fmt.Errorf("cannot unscramble: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			errOut := cmd.ErrOrStderr()
			outputJSON := jsonOutput(cmd)
			if !outputJSON {
				fmt.Fprintf(errOut, "# total permutations: %s\n", r.Total())
			}

			result := UnscrambleResult{Mnemonics: []string{}}
			for r.Next(ctx) {
				m := r.Mnemonic()
				if outputJSON {
					result.Mnemonics = append(result.Mnemonics, m.DisplayString(short))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), m.DisplayString(short))
			}

			result.Good = r.Good()
			result.Bad = r.Bad()
			result.Total = r.Total().String()
			result.Complete = r.Err() == nil

			if outputJSON {
				if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(errOut, "# good: %d bad: %d total: %s\n", result.Good, result.Bad, result.Total)
			}

			if err := r.Err(); err != nil {
				yellow := color.New(color.FgYellow)
				yellow.Fprintln(errOut, "Search stopped before all orderings were tried")
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&splitPhrases, "split-phrases", false, "Permute every word on its own instead of every argument")
	cmd.Flags().BoolVarP(&short, "short", "r", false, "Display only the first 4 letters of every word")
	cmd.Flags().StringVarP(&language, "language", "l", "auto", "Wordlist language")

	return cmd
}
