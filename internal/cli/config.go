package cli

import (
	"fmt"

	"github.com/Davincible/seedxor/pkg/config"
	"github.com/spf13/cobra"
)

func NewConfigCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: fmt.Sprintf(`Print the configuration after applying the config file and environment
variables to the defaults.

The file is read from $SEEDXOR_CONFIG, $XDG_CONFIG_HOME/seedxor/config.json
or ~/.config/seedxor/config.json. Every setting can be overridden with an
environment variable, e.g. %s_DEFAULTS_SHARES=3.`, config.EnvPrefix),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cfg.JSON()
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			if cfg.Path != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "# loaded from %s\n", cfg.Path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
