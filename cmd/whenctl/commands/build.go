package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eruixma/one-click-campaign/internal/builder"
	"github.com/eruixma/one-click-campaign/internal/cli"
)

var buildLocal bool

var buildCmd = &cobra.Command{
	Use:   "build <spec-file>",
	Short: "Build a when rule from a spec file",
	Long: `Build a when rule from a YAML or JSON spec file and print every rendering.

The spec file shape:

  name: IsReadyToReinvest_47817
  applies_to: Bond Products
  description: Valid RPQ with multiple bonds maturing
  campaign_id: "47817"
  conditions:
    group_operator: AND
    groups:
      - operator: AND
        conditions:
          - rule: IsCustRiskValueIn1to5
          - property: BOND_CERT_DEP_MAT_NXT_2_DY_CNT
            comparator: is greater than
            value: "1"

Examples:
  whenctl build rule.yaml
  whenctl build rule.json --format json
  whenctl build rule.yaml --local`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := readSpecFile(args[0])
		if err != nil {
			return err
		}

		var rendered *builder.RenderedRule
		if buildLocal {
			rendered = builder.Build(*params)
		} else {
			c, err := apiClient()
			if err != nil {
				return err
			}
			rendered, err = c.BuildRule(context.Background(), *params)
			if err != nil {
				return fmt.Errorf("failed to build rule: %w", err)
			}
		}

		if quiet {
			return nil
		}
		return cli.PrintRenderedRule(rendered, cli.OutputFormat(format))
	},
}

// readSpecFile decodes a build spec from YAML or JSON based on extension.
func readSpecFile(path string) (*builder.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var params builder.Params
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("failed to parse spec file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("failed to parse spec file: %w", err)
		}
	}

	if params.Name == "" {
		return nil, fmt.Errorf("spec file missing required field: name")
	}
	if params.AppliesTo == "" {
		return nil, fmt.Errorf("spec file missing required field: applies_to")
	}
	return &params, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&buildLocal, "local", false, "Build locally without contacting the API")
}
