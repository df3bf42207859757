package cli

import (
	"fmt"
	"strings"

	"github.com/Davincible/seedxor/pkg/config"
	"github.com/Davincible/seedxor/pkg/crypto/seedxor"
	"github.com/spf13/cobra"
)

func NewExpandCommand(cfg *config.Config) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "expand <words...>",
		Short: "Expand abbreviated words to full wordlist words",
		Long: `Expand every abbreviated word to the wordlist word it is the unique
prefix of. A prefix shared by several words is rejected unless it is a
complete word itself. The checksum is not verified.`,
		Example: `  seedxor expand "lega winn than year wave saus wort usef lega winn than yell"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := languageFlag(cmd, language, cfg.Defaults.Language)
			if err != nil {
				return err
			}

			expanded, err := seedxor.Expand(strings.Join(args, " "), lang)
			if err != nil {
				return fmt.Errorf("failed to expand words: %w", err)
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"words": expanded})
			}
			fmt.Fprintln(cmd.OutOrStdout(), expanded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "auto", "Wordlist language")

	return cmd
}
