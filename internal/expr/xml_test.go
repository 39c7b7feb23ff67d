package expr

import (
	"strings"
	"testing"

	"github.com/eruixma/one-click-campaign/internal/rules"
)

func TestRenderXMLDocument(t *testing.T) {
	rule := rules.WhenRule{
		Name:        "IsPremierCustomer",
		AppliesTo:   "HSBC-Data-CAR",
		Description: "Premier segment check",
		CampaignID:  "CMP-42",
		Groups: []rules.ConditionGroup{
			{
				Conditions: []rules.Condition{
					rules.PropertyCondition("CUST_SEGMENT", rules.CmpEquals, "Premier"),
					rules.PropertyCondition(".Age", rules.CmpGreaterThan, "18"),
				},
				Operator: rules.OpAnd,
			},
			{
				Conditions: []rules.Condition{
					rules.RuleReference("OtherStandardExclusion", true),
				},
				Operator: rules.OpAnd,
			},
		},
		GroupOperator: rules.OpOr,
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<pega:WhenRule xmlns:pega="http://www.pega.com/rules">
  <ruleName>IsPremierCustomer</ruleName>
  <appliesTo>HSBC-Data-CAR</appliesTo>
  <description>Premier segment check</description>
  <campaignId>CMP-42</campaignId>
  <conditions>
    <condition>
      <propertyRef>CUST_SEGMENT</propertyRef>
      <comparator>is equal to</comparator>
      <compareValue>Premier</compareValue>
      <compareValueIsProperty>false</compareValueIsProperty>
    </condition>
    <operator>&&</operator>
    <condition>
      <propertyRef>.Age</propertyRef>
      <comparator>is greater than</comparator>
      <compareValue>18</compareValue>
      <compareValueIsProperty>false</compareValueIsProperty>
    </condition>
    <groupOperator>||</groupOperator>
    <ruleReference>
      <ruleName>OtherStandardExclusion</ruleName>
      <evaluatesTo>true</evaluatesTo>
    </ruleReference>
  </conditions>
</pega:WhenRule>`

	if got := RenderXML(rule); got != want {
		t.Errorf("document mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderXMLEmptyRule(t *testing.T) {
	got := RenderXML(rules.WhenRule{Name: "Empty"})
	if !strings.Contains(got, "  <conditions>\n  </conditions>") {
		t.Errorf("empty rule should produce an empty conditions block:\n%s", got)
	}
}

func TestRenderXMLOperatorMarkers(t *testing.T) {
	rule := rules.WhenRule{
		Name: "Joined",
		Groups: []rules.ConditionGroup{
			{
				Conditions: []rules.Condition{
					rules.PropertyCondition("A", rules.CmpEquals, "1"),
					rules.PropertyCondition("B", rules.CmpEquals, "2"),
					rules.PropertyCondition("C", rules.CmpEquals, "3"),
				},
				Operator: rules.OpOr,
			},
		},
		GroupOperator: rules.OpAnd,
	}

	got := RenderXML(rule)
	if n := strings.Count(got, "<operator>||</operator>"); n != 2 {
		t.Errorf("expected 2 operator markers, got %d\n%s", n, got)
	}
	if strings.Contains(got, "<groupOperator>") {
		t.Error("single-group document must not carry a groupOperator marker")
	}
}
