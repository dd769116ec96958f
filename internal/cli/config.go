package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetower/pkg/config"
)

// configCommand creates the config command that shows effective settings.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		Long: `Show the effective settings as TOML.

Values come from the settings file when one exists and from built-in
defaults otherwise. Redirect the output to create a starting config:

  mazetower config > ~/.config/mazetower/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.Path != "" {
				c.Logger.Info("using settings file", "path", c.Config.Path)
			} else if path, err := config.DefaultPath(); err == nil {
				c.Logger.Info("no settings file, showing defaults", "path", path)
			}
			return c.Config.Encode(cmd.OutOrStdout())
		},
	}
	return cmd
}
