package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eruixma/one-click-campaign/internal/builder"
	"github.com/eruixma/one-click-campaign/internal/expr"
)

var validateLocal bool

var validateCmd = &cobra.Command{
	Use:   "validate <expression>",
	Short: "Lint a when-rule expression",
	Long: `Validate an expression for balanced parentheses and braces, dangling
logical operators, and function-call syntax. This is advisory linting,
not a full parse.

Examples:
  whenctl validate '@greaterThan(AGE_NUM, 18)'
  whenctl validate '(.Age is greater than 18' `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expression := args[0]

		var result *expr.ValidationResult
		if validateLocal {
			r := builder.ValidateExpression(expression)
			result = &r
		} else {
			c, err := apiClient()
			if err != nil {
				return err
			}
			result, err = c.ValidateExpression(context.Background(), expression)
			if err != nil {
				return fmt.Errorf("failed to validate expression: %w", err)
			}
		}

		if quiet {
			if !result.Valid {
				return fmt.Errorf("expression is invalid")
			}
			return nil
		}

		if result.Valid {
			fmt.Println("valid")
			return nil
		}
		fmt.Println("invalid:")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("expression is invalid")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateLocal, "local", false, "Validate locally without contacting the API")
}
