package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/restspec/rest/packages/core/config"
	"github.com/restspec/rest/packages/expect"
	"github.com/restspec/rest/packages/output"
	"github.com/restspec/rest/packages/reporter"
)

var (
	demoAscii bool
	demoJSON  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a showcase of expectation chains",
	Long: `Run a set of sample expectations and print every result with
detailed output enabled, including the deliberate failures, then a
session summary.

Examples:
  rest demo
  rest demo --ascii
  rest demo --json`,
	RunE: demoCommand,
}

func init() {
	demoCmd.Flags().BoolVar(&demoAscii, "ascii", false, "Use ASCII result markers instead of unicode")
	demoCmd.Flags().BoolVar(&demoJSON, "json", false, "Print the session summary as JSON")
}

func demoCommand(cmd *cobra.Command, args []string) error {
	config.Update(func(c *config.Config) {
		c.EnhancedOutput = true
		c.ShowSuccessDetails = true
		if demoAscii {
			c.UnicodeSymbols = false
		}
	})
	reporter.Ensure()
	reporter.DisableDeduplication()
	if demoJSON {
		reporter.EnableSilentMode()
	}

	answer := 42
	expect.Value(answer).ToBePositive().And().ToBeEven().Result()
	expect.Value("hello world").ToStartWith("hello").And().ToContain("wor").Result()
	expect.Value([]int{1, 2, 3}).ToHaveLength(3).And().Not().ToBeEmpty().Result()

	// Deliberate failures so the summary has something to show.
	expect.Value(answer).ToBeNegative().Or().ToBeGreaterThan(100).Result()
	expect.Value(errors.New("connection refused")).ToBeOK().Result()

	doc := `{"user": {"name": "ada", "roles": ["admin"]}}`
	expect.Value(doc).ToHaveJSONPath("user.name").And().ToMatchJSONPath("user.roles.0", "admin").Result()

	if demoJSON {
		return output.WriteJSONSummary(cmd.OutOrStdout(), reporter.Summary())
	}
	reporter.Summarize()
	return nil
}
