package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	effective := Default()
	if cfg != nil {
		effective = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Knowledge Base:  %s\n", effective.KnowledgeBase())
	fmt.Fprintf(out, "  Predict URL:     %s\n", effective.Endpoint())
	fmt.Fprintf(out, "  Request Timeout: %s\n", effective.RequestTimeout())
	fmt.Fprintf(out, "  Cases File:      %s\n", orDefault(effective.CasesPath, "(built-in suite)"))
	fmt.Fprintf(out, "  Strict Mode:     %v\n", effective.Strict)
	fmt.Fprintf(out, "  Debug:           %v\n", effective.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", orDefault(effective.LogFilePath(), "(stdout only)"))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
