package registry

import "strings"

// Suggestion recommends a data source for a property described in prose.
type Suggestion struct {
	Table     string `json:"table"`
	Reason    string `json:"reason"`
	RuleClass string `json:"rule_class"`
}

// SuggestionResult is the full answer to one suggestion query.
type SuggestionResult struct {
	Query          string       `json:"query"`
	Suggestions    []Suggestion `json:"suggestions"`
	Recommendation *Suggestion  `json:"recommendation,omitempty"`
}

var suggestionKeywords = []struct {
	keywords   []string
	suggestion Suggestion
}{
	{
		keywords: []string{"bond", "rpq", "maturity", "investment account", "risk profile", "certificate"},
		suggestion: Suggestion{
			Table:     "INVESTMENT",
			Reason:    "Property relates to investment/bond products",
			RuleClass: "Bond Products",
		},
	},
	{
		keywords: []string{"exclusion", "eligibility", "suppression", "country code", "kyc", "compliance"},
		suggestion: Suggestion{
			Table:     "ELIGIBILITY",
			Reason:    "Property relates to customer eligibility/exclusions",
			RuleClass: "Customer Eligibility",
		},
	},
	{
		keywords: []string{"account", "balance", "transaction", "credit limit", "utilization", "payment"},
		suggestion: Suggestion{
			Table:     "AAR",
			Reason:    "Property relates to account-level data",
			RuleClass: "HSBC-Data-AAR",
		},
	},
	{
		keywords: []string{"propensity", "score", "probability", "likelihood", "segment", "cluster", "nba", "churn", "risk"},
		suggestion: Suggestion{
			Table:     "MAR",
			Reason:    "Property relates to model outputs or propensity scores",
			RuleClass: "HSBC-Data-MAR",
		},
	},
}

var customerKeywords = []string{"customer", "age", "tenure", "product", "relationship", "tier", "segment", "digital", "channel"}

var carSuggestion = Suggestion{
	Table:     "CAR",
	Reason:    "Property relates to customer-level attributes",
	RuleClass: "HSBC-Data-CAR",
}

// SuggestSource recommends which data source to use based on a free-text
// hint. Keyword matching is deliberately simple; the customer-level CAR
// table is the fallback when nothing else matches.
func SuggestSource(hint string) SuggestionResult {
	lower := strings.ToLower(hint)

	var suggestions []Suggestion
	for _, entry := range suggestionKeywords {
		if containsAny(lower, entry.keywords) {
			suggestions = append(suggestions, entry.suggestion)
		}
	}
	if containsAny(lower, customerKeywords) || len(suggestions) == 0 {
		suggestions = append(suggestions, carSuggestion)
	}

	result := SuggestionResult{Query: hint, Suggestions: suggestions}
	if len(suggestions) > 0 {
		first := suggestions[0]
		result.Recommendation = &first
	}
	return result
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
