package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eruixma/one-click-campaign/internal/cli"
)

var comparatorsCmd = &cobra.Command{
	Use:   "comparators",
	Short: "List supported comparators",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient()
		if err != nil {
			return err
		}
		comparators, err := c.Comparators(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list comparators: %w", err)
		}
		if quiet {
			return nil
		}
		return cli.PrintComparators(comparators, cli.OutputFormat(format))
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List analytical record tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient()
		if err != nil {
			return err
		}
		tables, err := c.Tables(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list tables: %w", err)
		}
		if quiet {
			return nil
		}
		return cli.PrintTables(tables, cli.OutputFormat(format))
	},
}

var propertiesCmd = &cobra.Command{
	Use:   "properties <table>",
	Short: "List properties of a table catalog",
	Long: `List the property catalog of a data source.

Valid catalogs: CAR, AAR, MAR, ELIGIBILITY, INVESTMENT.

Examples:
  whenctl properties ELIGIBILITY
  whenctl properties CAR --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient()
		if err != nil {
			return err
		}
		props, err := c.TableProperties(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list properties: %w", err)
		}
		if quiet {
			return nil
		}
		return cli.PrintProperties(props, cli.OutputFormat(format))
	},
}

var exclusionsCmd = &cobra.Command{
	Use:   "exclusions",
	Short: "List standard exclusion rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient()
		if err != nil {
			return err
		}
		exclusions, err := c.Exclusions(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list exclusions: %w", err)
		}
		if quiet {
			return nil
		}
		return cli.PrintExclusions(exclusions, cli.OutputFormat(format))
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <hint>",
	Short: "Recommend a data source for a property hint",
	Long: `Recommend which data source to use based on a natural-language hint.

Examples:
  whenctl suggest "bond maturity"
  whenctl suggest "account balance"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient()
		if err != nil {
			return err
		}
		result, err := c.Suggest(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get suggestion: %w", err)
		}
		if quiet {
			return nil
		}
		if rec := result.Recommendation; rec != nil {
			fmt.Printf("Recommended: %s (%s)\n  %s\n", rec.Table, rec.RuleClass, rec.Reason)
		}
		for _, s := range result.Suggestions {
			fmt.Printf("- %s: %s\n", s.Table, s.Reason)
		}
		return nil
	},
}

var templateCampaignID string

var templateCmd = &cobra.Command{
	Use:   "template <campaign-type>",
	Short: "Show the rule template for a campaign type",
	Long: `Show the suggested rules and targeting groups for a campaign type.

Examples:
  whenctl template bond_maturity --campaign-id 47817`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := apiClient()
		if err != nil {
			return err
		}
		tmpl, err := c.Template(context.Background(), args[0], templateCampaignID)
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}
		if quiet {
			return nil
		}

		fmt.Printf("%s (%s)\n", tmpl.Description, tmpl.CampaignType)
		fmt.Println("\nUniversal criteria:")
		for _, crit := range tmpl.UniversalCriteria {
			fmt.Printf("  - %s\n", crit)
		}
		fmt.Println("\nSuggested rules:")
		for _, r := range tmpl.SuggestedRules {
			fmt.Printf("  - %-40s [%s] %s\n", r.Name, r.Type, r.Description)
		}
		fmt.Println("\nTargeting groups:")
		for _, g := range tmpl.Groups {
			fmt.Printf("  - %s: %s\n", g.Name, g.Criteria)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(comparatorsCmd, tablesCmd, propertiesCmd, exclusionsCmd, suggestCmd, templateCmd)

	templateCmd.Flags().StringVar(&templateCampaignID, "campaign-id", "", "Campaign ID suffix for generated rule names")
}
