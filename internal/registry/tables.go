// Package registry holds the static domain catalog used when authoring
// campaign-targeting rules: analytical record tables, property catalogs,
// standard exclusion rules, and campaign rule templates. Everything here is
// immutable process-wide data initialized at startup; accessors return
// copies and there is no reload path.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTable is returned by lookups with an unrecognized table name.
var ErrUnknownTable = errors.New("unknown table")

// Granularity is the data granularity level of an analytical record table.
type Granularity string

const (
	GranularityCustomer        Granularity = "Customer Level"
	GranularityCustomerAccount Granularity = "Customer + Account Level"
	GranularityProduct         Granularity = "Product Level"
)

// Table describes one analytical record table.
type Table struct {
	Name              string      `json:"name"`
	FullName          string      `json:"full_name"`
	Scope             string      `json:"scope"`
	Granularity       Granularity `json:"granularity"`
	Keys              []string    `json:"keys"`
	VariableSummary   string      `json:"variable_summary"`
	TechnicalCriteria string      `json:"technical_criteria,omitempty"`
	RuleClass         string      `json:"rule_class,omitempty"`
}

var carTable = Table{
	Name:              "CAR",
	FullName:          "Customer Analytical Record",
	Scope:             "RBWM Customer",
	Granularity:       GranularityCustomer,
	Keys:              []string{"PseudoCustomerID"},
	VariableSummary:   "CAR_Summary",
	TechnicalCriteria: "BK_SECTR = 'P' AND BK_ID = 4 AND CUST_IDC = 'Y'",
	RuleClass:         "HSBC-Data-CAR",
}

var aarTable = Table{
	Name:            "AAR",
	FullName:        "Account Analytical Record",
	Scope:           "RBWM Customer Related Primary & Secondary Account Records",
	Granularity:     GranularityCustomerAccount,
	Keys:            []string{"PseudoCustomerID", "PseudoAccountID", "RoleType"},
	VariableSummary: "AAR_Summary",
	RuleClass:       "HSBC-Data-AAR",
}

var marTable = Table{
	Name:            "MAR",
	FullName:        "Modeling Analytical Record",
	Scope:           "RBWM Customer Related Modeling Records",
	Granularity:     GranularityCustomer,
	Keys:            []string{"PseudoCustomerID"},
	VariableSummary: "MAR_Summary",
	RuleClass:       "HSBC-Data-MAR",
}

var allTables = []Table{carTable, aarTable, marTable}

// Tables returns metadata for every analytical record table.
func Tables() []Table {
	out := make([]Table, len(allTables))
	copy(out, allTables)
	return out
}

// TableByName looks up one table by its short name (case-insensitive).
func TableByName(name string) (Table, error) {
	upper := strings.ToUpper(name)
	for _, t := range allTables {
		if t.Name == upper {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%w: %s (valid: CAR, AAR, MAR)", ErrUnknownTable, name)
}
