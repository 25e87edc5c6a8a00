// internal/commands/analyze.go
package medcheck

import (
	"time"

	"github.com/k0kubun/pp"
	"github.com/mwiater/medcheck/internal/appconfig"
	"github.com/mwiater/medcheck/internal/knowledge"
	"github.com/spf13/cobra"
)

var analyzeInput string

// analyzeCmd prints aggregate statistics over the discovery knowledge base.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Generate a knowledge base analysis report",
	Long: `Read the discovery knowledge base JSON, compute aggregate statistics
(total count, average confidence, status breakdown, latest entries), and
print a formatted report to standard output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			def := appconfig.Default()
			cfg = &def
		}

		path := analyzeInput
		if path == "" {
			path = cfg.KnowledgeBase()
		}

		base, err := knowledge.Load(path)
		if err != nil {
			return err
		}

		summary := knowledge.Summarize(base.Discoveries)
		if cfg.Debug {
			pp.Println(summary)
		}

		knowledge.WriteReport(cmd.OutOrStdout(), summary, time.Now())
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "path to the knowledge base JSON (defaults to the configured path)")

	rootCmd.AddCommand(analyzeCmd)
}
