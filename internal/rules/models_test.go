package rules

import (
	"encoding/json"
	"testing"
)

func TestParseLogicalOperator(t *testing.T) {
	tests := []struct {
		input string
		want  LogicalOperator
	}{
		{"AND", OpAnd},
		{"OR", OpOr},
		{"", OpAnd},
		{"or", OpAnd},
		{"XOR", OpAnd},
	}

	for _, tt := range tests {
		if got := ParseLogicalOperator(tt.input); got != tt.want {
			t.Errorf("ParseLogicalOperator(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLogicalOperatorSymbol(t *testing.T) {
	if got := OpAnd.Symbol(); got != "&&" {
		t.Errorf("OpAnd.Symbol() = %q, want &&", got)
	}
	if got := OpOr.Symbol(); got != "||" {
		t.Errorf("OpOr.Symbol() = %q, want ||", got)
	}
}

func TestPropertyConditionTrimDefault(t *testing.T) {
	tests := []struct {
		name     string
		cmp      Comparator
		wantTrim bool
	}{
		{"equals keeps trim", CmpEquals, true},
		{"contains keeps trim", CmpContains, true},
		{"greater than skips trim", CmpGreaterThan, false},
		{"less or equal skips trim", CmpLessThanOrEqual, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := PropertyCondition(".Age", tt.cmp, "18")
			if cond.ApplyTrim != tt.wantTrim {
				t.Errorf("ApplyTrim = %v, want %v", cond.ApplyTrim, tt.wantTrim)
			}
			if cond.Kind != KindPropertyComparison {
				t.Errorf("Kind = %q, want %q", cond.Kind, KindPropertyComparison)
			}
		})
	}
}

func TestRuleReference(t *testing.T) {
	cond := RuleReference("StandardExcl_Eligibility", false)
	if cond.Kind != KindRuleReference {
		t.Errorf("Kind = %q, want %q", cond.Kind, KindRuleReference)
	}
	if cond.ReferencedRule != "StandardExcl_Eligibility" || cond.EvaluatesTo {
		t.Errorf("unexpected condition: %+v", cond)
	}
}

func TestWhenRuleJSONRoundTrip(t *testing.T) {
	rule := WhenRule{
		Name:        "IsPremierCustomer",
		AppliesTo:   "HSBC-Data-CAR",
		Description: "Premier segment check",
		CampaignID:  "CMP-42",
		Groups: []ConditionGroup{
			{
				Conditions: []Condition{
					PropertyCondition("CUST_SEGMENT", CmpEquals, "Premier"),
					RuleReference("OtherStandardExclusion", true),
				},
				Operator: OpAnd,
			},
		},
		GroupOperator: OpOr,
	}

	blob, err := json.Marshal(rule)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got WhenRule
	if err := json.Unmarshal(blob, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != rule.Name || got.GroupOperator != OpOr {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Groups) != 1 || len(got.Groups[0].Conditions) != 2 {
		t.Fatalf("round trip lost conditions: %+v", got.Groups)
	}
	if got.Groups[0].Conditions[1].Kind != KindRuleReference {
		t.Errorf("condition kind lost: %+v", got.Groups[0].Conditions[1])
	}
}
