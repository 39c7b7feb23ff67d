// Package expr renders a rules.WhenRule into its textual representations:
// a boolean expression string (two dialects), an XML document, and a flat
// payload for the rules-engine REST API. All renderings are pure and
// deterministic.
package expr

import (
	"strings"

	"github.com/eruixma/one-click-campaign/internal/rules"
)

// Dialect selects the atomic-condition syntax of a rendered expression.
type Dialect int

const (
	// DialectFunction renders property comparisons as engine function
	// calls, e.g. @equalsIgnoreCase(@trim(CUST_SEGMENT), "Premier").
	DialectFunction Dialect = iota
	// DialectSimple renders property comparisons with operator phrases,
	// e.g. CUST_SEGMENT is equal to "Premier".
	DialectSimple
)

// Render compiles the rule into a boolean expression string. Condition
// tokens are joined with the group's operator symbol, wrapped in one
// parenthesis pair only when the group holds more than one condition;
// group tokens are joined with the rule's group operator. A rule with no
// groups renders to the empty string.
func Render(rule rules.WhenRule, dialect Dialect) string {
	groupExprs := make([]string, 0, len(rule.Groups))

	for _, group := range rule.Groups {
		tokens := make([]string, 0, len(group.Conditions))
		for _, cond := range group.Conditions {
			tokens = append(tokens, renderCondition(cond, dialect))
		}

		switch len(tokens) {
		case 0:
			continue
		case 1:
			groupExprs = append(groupExprs, tokens[0])
		default:
			joined := strings.Join(tokens, " "+group.Operator.Symbol()+" ")
			groupExprs = append(groupExprs, "("+joined+")")
		}
	}

	if len(groupExprs) == 1 {
		return groupExprs[0]
	}
	return strings.Join(groupExprs, " "+rule.GroupOperator.Symbol()+" ")
}

func renderCondition(cond rules.Condition, dialect Dialect) string {
	if cond.Kind == rules.KindRuleReference && cond.ReferencedRule != "" {
		result := "false"
		if cond.EvaluatesTo {
			result = "true"
		}
		return "{Rule " + cond.ReferencedRule + " evaluates to " + result + "}"
	}

	if dialect == DialectSimple {
		return renderSimple(cond)
	}
	return renderFunction(cond)
}

// renderSimple emits "PROP <phrase> value"; unary comparators omit the value.
func renderSimple(cond rules.Condition) string {
	if cond.Comparator == "" {
		return cond.Property
	}
	if cond.Comparator.IsUnary() {
		return cond.Property + " " + string(cond.Comparator)
	}
	val := cond.CompareValue
	if !cond.ValueIsProperty {
		val = quoteValue(val)
	}
	return cond.Property + " " + string(cond.Comparator) + " " + val
}

// renderFunction emits an engine function call for the comparator. The
// property argument is wrapped in @trim() unless trimming is disabled or the
// comparator is numeric. IS_IN and IS_NOT_IN have no function mapping and
// fall back to a raw equality placeholder.
func renderFunction(cond rules.Condition) string {
	fn := cond.Comparator.Function()
	if fn == "" {
		return "(" + cond.Property + " == " + cond.CompareValue + ")"
	}

	prop := cond.Property
	numeric := cond.Comparator.IsNumeric()
	if cond.ApplyTrim && !numeric {
		prop = "@trim(" + prop + ")"
	}

	if cond.Comparator.IsUnary() {
		return "@" + fn + "(" + prop + ")"
	}

	val := cond.CompareValue
	if !numeric && !cond.ValueIsProperty {
		val = quoteValue(val)
	}
	return "@" + fn + "(" + prop + ", " + val + ")"
}

// quoteValue wraps v in double quotes unless it is already quoted or looks
// numeric per isNumericLiteral.
func quoteValue(v string) string {
	if strings.HasPrefix(v, `"`) || isNumericLiteral(v) {
		return v
	}
	return `"` + v + `"`
}

// isNumericLiteral reports whether v is treated as a numeric literal: after
// removing every '.' and '-', the remainder must be non-empty and consist
// solely of decimal digits. This deliberately misclassifies strings like
// "1-2" as numeric; downstream rules depend on the historical behavior, so
// it must not be tightened.
func isNumericLiteral(v string) bool {
	stripped := strings.ReplaceAll(strings.ReplaceAll(v, ".", ""), "-", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
