// internal/commands/show_config.go
package medcheck

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/medcheck/internal/appconfig"
	"github.com/spf13/cobra"
)

// configCmd prints the effective configuration after file and flag layering.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		file := ""
		if cfg != nil {
			file = cfg.ConfigPath
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), file, cfg)
		if cfg != nil && cfg.Debug {
			pp.Println(cfg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
