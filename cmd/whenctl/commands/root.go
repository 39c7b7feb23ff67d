package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	baseURL string
	apiKey  string
	env     string
	format  string
	quiet   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "whenctl",
	Short: "CLI tool for building campaign-targeting when rules",
	Long: `Whenctl builds campaign-targeting when rules against the one-click-campaign service.

It converts condition specifications into rule-engine expressions, validates
expression syntax, and browses the campaign data catalog.

Examples:
  whenctl build rule.yaml
  whenctl validate '@greaterThan(AGE_NUM, 18)'
  whenctl comparators
  whenctl tables
  whenctl properties ELIGIBILITY
  whenctl suggest "bond maturity"
  whenctl template bond_maturity --campaign-id 47817`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Base URL of the rule-builder API")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key for authentication")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "Named environment from ~/.whenctl/config.yaml")
	rootCmd.PersistentFlags().StringVar(&format, "format", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress output")
}
