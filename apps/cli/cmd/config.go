package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restspec/rest/packages/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved output configuration",
	Long: `Print the effective output configuration after applying config file
and environment variable overrides, and which config file (if any) it
was loaded from.`,
	RunE: configCommand,
}

func configCommand(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.Discover(".", config.Default())
	if err != nil {
		return err
	}
	cfg = config.FromEnv(cfg)

	out := cmd.OutOrStdout()
	if path != "" {
		fmt.Fprintf(out, "Config file: %s\n", path)
	} else {
		fmt.Fprintln(out, "Config file: (none)")
	}
	fmt.Fprintf(out, "  enhancedOutput:     %v\n", cfg.EnhancedOutput)
	fmt.Fprintf(out, "  useColors:          %v\n", cfg.UseColors)
	fmt.Fprintf(out, "  unicodeSymbols:     %v\n", cfg.UnicodeSymbols)
	fmt.Fprintf(out, "  showSuccessDetails: %v\n", cfg.ShowSuccessDetails)
	return nil
}
