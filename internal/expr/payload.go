package expr

import (
	"github.com/eruixma/one-click-campaign/internal/rules"
)

// Payload flattens the rule into the record shape expected by the
// rules-engine REST API: one entry per condition, not per group. Each
// condition record carries the operator of its own enclosing group; the
// rule-level group operator is absent from the payload, matching the
// engine's import contract.
func Payload(rule rules.WhenRule) map[string]any {
	conditions := make([]map[string]any, 0)

	for _, group := range rule.Groups {
		groupOp := group.Operator.Symbol()
		for _, cond := range group.Conditions {
			if cond.Kind == rules.KindRuleReference {
				conditions = append(conditions, map[string]any{
					"pyConditionType":   "rule",
					"pyRuleName":        cond.ReferencedRule,
					"pyEvaluatesTo":     cond.EvaluatesTo,
					"pyLogicalOperator": groupOp,
				})
				continue
			}
			conditions = append(conditions, map[string]any{
				"pyConditionType":          "property",
				"pyPropertyRef":            cond.Property,
				"pyComparator":             string(cond.Comparator),
				"pyCompareValue":           cond.CompareValue,
				"pyCompareValueIsProperty": cond.ValueIsProperty,
				"pyLogicalOperator":        groupOp,
			})
		}
	}

	var campaignID any
	if rule.CampaignID != "" {
		campaignID = rule.CampaignID
	}

	return map[string]any{
		"pxObjClass":    "Rule-Obj-When",
		"pyClassName":   rule.AppliesTo,
		"pyRuleName":    rule.Name,
		"pyDescription": rule.Description,
		"pyCampaignId":  campaignID,
		"pyConditions":  conditions,
	}
}
