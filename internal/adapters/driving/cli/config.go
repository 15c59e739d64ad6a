package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notedex/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `View and change notedex settings.

Settings resolve from flags, then NOTEDEX_* environment variables (a .env
file in the working directory is loaded), then the config file, then
built-in defaults.

Keys:
  site.location         base URL or directory holding index.json
  ui.debounce_ms        pause after typing before filtering
  http.timeout_seconds  index fetch timeout`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings and where they come from",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting in the config file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Path())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	for _, key := range services.SettingKeys {
		value, err := cfg.Value(key)
		if err != nil {
			return err
		}
		cmd.Printf("  %-22s %s (%s)\n", key, value, cfg.Source(key))
	}

	cmd.Println()
	cmd.Printf("Config file: %s\n", cfg.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
