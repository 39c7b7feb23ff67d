// Package rules defines the in-memory model of a when rule: ordered groups
// of conditions combined by logical operators at two nesting levels.
package rules

// LogicalOperator combines conditions within a group, or groups within a rule.
type LogicalOperator string

const (
	OpAnd LogicalOperator = "AND"
	OpOr  LogicalOperator = "OR"
)

// ParseLogicalOperator maps operator text to a LogicalOperator.
// Anything other than "OR" is treated as AND.
func ParseLogicalOperator(s string) LogicalOperator {
	if s == string(OpOr) {
		return OpOr
	}
	return OpAnd
}

// Symbol returns the expression-syntax join token for the operator.
func (op LogicalOperator) Symbol() string {
	if op == OpOr {
		return "||"
	}
	return "&&"
}

// ConditionKind distinguishes the two condition shapes.
type ConditionKind string

const (
	KindPropertyComparison ConditionKind = "property"
	KindRuleReference      ConditionKind = "rule"
)

// Condition is one atomic test: either a property comparison or a reference
// to another named rule's result. Exactly one of the two field sets is
// meaningful; Kind selects which.
type Condition struct {
	Kind ConditionKind `json:"kind"`

	// Property comparison fields.
	Property        string     `json:"property,omitempty"`
	Comparator      Comparator `json:"comparator,omitempty"`
	CompareValue    string     `json:"compareValue,omitempty"`
	ApplyTrim       bool       `json:"applyTrim,omitempty"`
	ValueIsProperty bool       `json:"valueIsProperty,omitempty"`

	// Rule reference fields.
	ReferencedRule string `json:"referencedRule,omitempty"`
	EvaluatesTo    bool   `json:"evaluatesTo,omitempty"`
}

// PropertyCondition builds a property-comparison condition. Trim is applied
// by default except for the numeric magnitude comparators.
func PropertyCondition(property string, cmp Comparator, value string) Condition {
	return Condition{
		Kind:         KindPropertyComparison,
		Property:     property,
		Comparator:   cmp,
		CompareValue: value,
		ApplyTrim:    !cmp.IsNumeric(),
	}
}

// RuleReference builds a condition referencing another rule's result.
func RuleReference(name string, evaluatesTo bool) Condition {
	return Condition{
		Kind:           KindRuleReference,
		ReferencedRule: name,
		EvaluatesTo:    evaluatesTo,
	}
}

// ConditionGroup is an ordered set of conditions joined pairwise by a single
// operator. The grammar does not support per-pair operator choice inside one
// group.
type ConditionGroup struct {
	Conditions []Condition     `json:"conditions"`
	Operator   LogicalOperator `json:"operator"`
}

// WhenRule is a named boolean expression evaluated by the rules engine to
// gate targeting decisions. It is constructed once and never mutated;
// all renderings are pure functions of the value.
type WhenRule struct {
	Name          string           `json:"name"`
	AppliesTo     string           `json:"appliesTo"`
	Description   string           `json:"description"`
	CampaignID    string           `json:"campaignId,omitempty"`
	Groups        []ConditionGroup `json:"groups"`
	GroupOperator LogicalOperator  `json:"groupOperator"`
}
