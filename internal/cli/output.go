// Package cli holds output formatting and configuration for the whenctl
// command-line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/eruixma/one-click-campaign/internal/builder"
	"github.com/eruixma/one-click-campaign/internal/registry"
	"github.com/eruixma/one-click-campaign/internal/rules"
)

// OutputFormat specifies the output format for CLI commands.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// PrintRenderedRule outputs a built rule. The table format shows the two
// expression dialects; json/yaml dump the full result including the XML
// document and API payload.
func PrintRenderedRule(rr *builder.RenderedRule, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(rr)
	case FormatYAML:
		return printYAML(rr)
	case FormatTable:
		fmt.Printf("Rule:        %s\n", rr.RuleName)
		fmt.Printf("Applies to:  %s\n", rr.AppliesTo)
		if rr.CampaignID != "" {
			fmt.Printf("Campaign:    %s\n", rr.CampaignID)
		}
		fmt.Printf("Fingerprint: %s\n", rr.Fingerprint)
		fmt.Printf("\nExpression:\n  %s\n", rr.Expression)
		fmt.Printf("\nSimple form:\n  %s\n", rr.ExpressionSimple)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintComparators outputs the comparator list.
func PrintComparators(comparators []rules.ComparatorInfo, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(comparators)
	case FormatYAML:
		return printYAML(comparators)
	case FormatTable:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Text")
		for _, c := range comparators {
			table.Append(c.Name, c.Value)
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintTables outputs analytical record table metadata.
func PrintTables(tables []registry.Table, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(tables)
	case FormatYAML:
		return printYAML(tables)
	case FormatTable:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Full Name", "Granularity", "Rule Class")
		for _, t := range tables {
			table.Append(t.Name, t.FullName, string(t.Granularity), t.RuleClass)
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintProperties outputs a property catalog.
func PrintProperties(props []registry.Property, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(props)
	case FormatYAML:
		return printYAML(props)
	case FormatTable:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Description")
		for _, p := range props {
			table.Append(p.Name, p.Description)
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintExclusions outputs the standard exclusion rules.
func PrintExclusions(exclusions []registry.ExclusionRule, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(exclusions)
	case FormatYAML:
		return printYAML(exclusions)
	case FormatTable:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Rule", "Description")
		for _, e := range exclusions {
			table.Append(e.RuleName, e.Description)
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(data)
}
