// internal/commands/smoke.go
package medcheck

import (
	"github.com/mwiater/medcheck/internal/appconfig"
	"github.com/mwiater/medcheck/internal/smoketest"
	"github.com/spf13/cobra"
)

// smokeCmd exercises the prediction endpoint with the case suite and prints
// per-case and aggregate verdicts. A failing or erroring case is a normal
// outcome, not a command error, so the exit code stays zero.
var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run the endpoint smoke-test suite",
	Long: `Send each smoke-test case to the prediction endpoint, classify the
outcome as PASS, FAIL, or ERROR, and print a summary. Cases run
sequentially; one case's failure never stops the rest of the batch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			def := appconfig.Default()
			cfg = &def
		}

		cases := smoketest.DefaultSuite()
		if cfg.CasesPath != "" {
			loaded, err := smoketest.LoadSuite(cfg.CasesPath)
			if err != nil {
				return err
			}
			cases = loaded
		}

		runner := smoketest.NewRunner(cfg)
		results := runner.Run(cmd.Context(), cmd.OutOrStdout(), cases)
		smoketest.WriteSummary(cmd.OutOrStdout(), results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(smokeCmd)
}
