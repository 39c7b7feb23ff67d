package expr

import (
	"strings"

	"github.com/eruixma/one-click-campaign/internal/rules"
)

// RenderXML generates the rules-engine XML representation of the rule.
//
// The document is a fixed-structure token stream, not a nested tree:
// an <operator> marker is emitted between consecutive conditions inside a
// group and a <groupOperator> marker between consecutive groups. The engine
// importer expects this exact layout, including the unescaped operator
// symbols, so the document is assembled textually rather than via
// encoding/xml.
func RenderXML(rule rules.WhenRule) string {
	var blocks []string

	for groupIdx, group := range rule.Groups {
		for condIdx, cond := range group.Conditions {
			blocks = append(blocks, conditionXML(cond))
			if condIdx < len(group.Conditions)-1 {
				blocks = append(blocks, "    <operator>"+group.Operator.Symbol()+"</operator>")
			}
		}
		if groupIdx < len(rule.Groups)-1 {
			blocks = append(blocks, "    <groupOperator>"+rule.GroupOperator.Symbol()+"</groupOperator>")
		}
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<pega:WhenRule xmlns:pega="http://www.pega.com/rules">` + "\n")
	b.WriteString("  <ruleName>" + rule.Name + "</ruleName>\n")
	b.WriteString("  <appliesTo>" + rule.AppliesTo + "</appliesTo>\n")
	b.WriteString("  <description>" + rule.Description + "</description>\n")
	b.WriteString("  <campaignId>" + rule.CampaignID + "</campaignId>\n")
	b.WriteString("  <conditions>\n")
	if len(blocks) > 0 {
		b.WriteString(strings.Join(blocks, "\n"))
		b.WriteString("\n")
	}
	b.WriteString("  </conditions>\n")
	b.WriteString("</pega:WhenRule>")
	return b.String()
}

func conditionXML(cond rules.Condition) string {
	if cond.Kind == rules.KindRuleReference {
		return "    <ruleReference>\n" +
			"      <ruleName>" + cond.ReferencedRule + "</ruleName>\n" +
			"      <evaluatesTo>" + boolText(cond.EvaluatesTo) + "</evaluatesTo>\n" +
			"    </ruleReference>"
	}
	return "    <condition>\n" +
		"      <propertyRef>" + cond.Property + "</propertyRef>\n" +
		"      <comparator>" + string(cond.Comparator) + "</comparator>\n" +
		"      <compareValue>" + cond.CompareValue + "</compareValue>\n" +
		"      <compareValueIsProperty>" + boolText(cond.ValueIsProperty) + "</compareValueIsProperty>\n" +
		"    </condition>"
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
