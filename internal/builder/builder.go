// Package builder is the request-facing layer over the rule model and the
// expression compiler. It decodes a condition specification, constructs a
// rules.WhenRule, and returns every rendering in one result. Each call is
// independent and side-effect free; malformed input is reported as an error
// value, never a panic.
package builder

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eruixma/one-click-campaign/internal/expr"
	"github.com/eruixma/one-click-campaign/internal/rules"
)

// ErrInvalidSpec tags structural errors in a condition specification.
var ErrInvalidSpec = errors.New("invalid condition spec")

// ConditionEntry describes one condition in a specification. An entry with
// a non-empty Rule field is a rule reference; everything else is a property
// comparison. Comparator text is parsed leniently (unknown text means
// "is equal to").
type ConditionEntry struct {
	Property   string `json:"property,omitempty" yaml:"property,omitempty"`
	Comparator string `json:"comparator,omitempty" yaml:"comparator,omitempty"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	ApplyTrim  *bool  `json:"apply_trim,omitempty" yaml:"apply_trim,omitempty"`
	IsProperty bool   `json:"is_property,omitempty" yaml:"is_property,omitempty"`

	Rule        string `json:"rule,omitempty" yaml:"rule,omitempty"`
	EvaluatesTo *bool  `json:"evaluates_to,omitempty" yaml:"evaluates_to,omitempty"`
}

// GroupSpec describes one condition group.
type GroupSpec struct {
	Conditions []ConditionEntry `json:"conditions" yaml:"conditions"`
	Operator   string           `json:"operator,omitempty" yaml:"operator,omitempty"`
}

// ConditionSpec is the nested description of a rule's condition structure.
type ConditionSpec struct {
	Groups        []GroupSpec `json:"groups" yaml:"groups"`
	GroupOperator string      `json:"group_operator,omitempty" yaml:"group_operator,omitempty"`
}

// Params carries everything needed to build one rule.
type Params struct {
	Name        string        `json:"name" yaml:"name"`
	AppliesTo   string        `json:"applies_to" yaml:"applies_to"`
	Description string        `json:"description" yaml:"description"`
	CampaignID  string        `json:"campaign_id,omitempty" yaml:"campaign_id,omitempty"`
	Conditions  ConditionSpec `json:"conditions" yaml:"conditions"`
}

// RenderedRule is the successful result of a build: the canonical rule
// identity plus every output format.
type RenderedRule struct {
	RuleName         string         `json:"rule_name"`
	AppliesTo        string         `json:"applies_to"`
	CampaignID       string         `json:"campaign_id,omitempty"`
	Expression       string         `json:"expression"`
	ExpressionSimple string         `json:"expression_simple"`
	XML              string         `json:"xml"`
	APIPayload       map[string]any `json:"api_payload"`
	Fingerprint      string         `json:"fingerprint"`
}

// Build assembles a WhenRule from the spec and renders it in all formats.
// Building is total: lenient comparator and operator parsing means any
// decodable spec produces a rule.
func Build(p Params) *RenderedRule {
	return render(assemble(p))
}

// BuildFromJSON is Build with the condition spec supplied as a raw JSON
// document, the shape produced by upstream natural-language tooling.
// Undecodable JSON yields an ErrInvalidSpec-tagged error.
func BuildFromJSON(name, appliesTo, description, conditionsJSON, campaignID string) (*RenderedRule, error) {
	var spec ConditionSpec
	if err := json.Unmarshal([]byte(conditionsJSON), &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return Build(Params{
		Name:        name,
		AppliesTo:   appliesTo,
		Description: description,
		CampaignID:  campaignID,
		Conditions:  spec,
	}), nil
}

// ValidateExpression lints an expression string for balance and syntax
// problems. It sits beside Build because the two operations form the tool
// surface exposed to callers.
func ValidateExpression(expression string) expr.ValidationResult {
	return expr.Validate(expression)
}

func assemble(p Params) rules.WhenRule {
	groups := make([]rules.ConditionGroup, 0, len(p.Conditions.Groups))

	for _, g := range p.Conditions.Groups {
		conditions := make([]rules.Condition, 0, len(g.Conditions))
		for _, entry := range g.Conditions {
			conditions = append(conditions, buildCondition(entry))
		}
		groups = append(groups, rules.ConditionGroup{
			Conditions: conditions,
			Operator:   rules.ParseLogicalOperator(g.Operator),
		})
	}

	return rules.WhenRule{
		Name:          p.Name,
		AppliesTo:     p.AppliesTo,
		Description:   p.Description,
		CampaignID:    p.CampaignID,
		Groups:        groups,
		GroupOperator: rules.ParseLogicalOperator(p.Conditions.GroupOperator),
	}
}

func buildCondition(entry ConditionEntry) rules.Condition {
	if entry.Rule != "" {
		evaluatesTo := true
		if entry.EvaluatesTo != nil {
			evaluatesTo = *entry.EvaluatesTo
		}
		return rules.RuleReference(entry.Rule, evaluatesTo)
	}

	cmp := rules.ParseComparator(entry.Comparator)
	cond := rules.PropertyCondition(entry.Property, cmp, entry.Value)
	if entry.ApplyTrim != nil {
		cond.ApplyTrim = *entry.ApplyTrim
	}
	cond.ValueIsProperty = entry.IsProperty
	return cond
}

func render(rule rules.WhenRule) *RenderedRule {
	return &RenderedRule{
		RuleName:         rule.Name,
		AppliesTo:        rule.AppliesTo,
		CampaignID:       rule.CampaignID,
		Expression:       expr.Render(rule, expr.DialectFunction),
		ExpressionSimple: expr.Render(rule, expr.DialectSimple),
		XML:              expr.RenderXML(rule),
		APIPayload:       expr.Payload(rule),
		Fingerprint:      expr.Fingerprint(rule),
	}
}
