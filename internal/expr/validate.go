package expr

import (
	"regexp"
	"strings"
)

// funcCallPattern matches one syntactically plausible engine function call,
// e.g. @equalsIgnoreCase(...). It is a smoke test, not a grammar.
var funcCallPattern = regexp.MustCompile(`@\w+\([^)]*\)`)

// ValidationResult holds the findings of a static expression lint.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Expression string   `json:"expression"`
	Errors     []string `json:"errors,omitempty"`
}

// Validate performs an advisory syntax lint of an expression string. It
// checks parenthesis and brace balance, a dangling trailing logical
// operator, and, when function-call syntax is present, that at least one
// well-formed @name(...) call exists. It never claims full grammatical
// correctness.
func Validate(expression string) ValidationResult {
	var errs []string

	if strings.Count(expression, "(") != strings.Count(expression, ")") {
		errs = append(errs, "Unbalanced parentheses in expression")
	}

	if strings.Count(expression, "{") != strings.Count(expression, "}") {
		errs = append(errs, "Unbalanced braces in rule references")
	}

	trimmed := strings.TrimSpace(expression)
	for _, op := range []string{"&&", "||", "AND", "OR"} {
		if strings.HasSuffix(trimmed, op) {
			errs = append(errs, "Expression ends with a dangling logical operator")
			break
		}
	}

	if strings.Contains(expression, "@") && !funcCallPattern.MatchString(expression) {
		errs = append(errs, "Invalid function syntax detected")
	}

	return ValidationResult{
		Valid:      len(errs) == 0,
		Expression: expression,
		Errors:     errs,
	}
}
