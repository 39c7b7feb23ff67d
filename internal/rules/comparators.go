package rules

// Comparator is a comparison operator used in property conditions. The
// string value is the human-readable phrase used by the rule-builder UI
// ("simple" expression dialect).
type Comparator string

const (
	CmpEquals             Comparator = "is equal to"
	CmpNotEquals          Comparator = "is not equal to"
	CmpGreaterThan        Comparator = "is greater than"
	CmpGreaterThanOrEqual Comparator = "is greater than or equal to"
	CmpLessThan           Comparator = "is less than"
	CmpLessThanOrEqual    Comparator = "is less than or equal to"
	CmpIsTrue             Comparator = "is true"
	CmpIsFalse            Comparator = "is false"
	CmpIsBlank            Comparator = "is blank"
	CmpIsNotBlank         Comparator = "is not blank"
	CmpContains           Comparator = "contains"
	CmpStartsWith         Comparator = "starts with"
	CmpEndsWith           Comparator = "ends with"
	CmpIsIn               Comparator = "is in"
	CmpIsNotIn            Comparator = "is not in"
)

// allComparators fixes the enumeration order for ListComparators.
var allComparators = []struct {
	cmp  Comparator
	name string
}{
	{CmpEquals, "EQUALS"},
	{CmpNotEquals, "NOT_EQUALS"},
	{CmpGreaterThan, "GREATER_THAN"},
	{CmpGreaterThanOrEqual, "GREATER_THAN_OR_EQUAL"},
	{CmpLessThan, "LESS_THAN"},
	{CmpLessThanOrEqual, "LESS_THAN_OR_EQUAL"},
	{CmpIsTrue, "IS_TRUE"},
	{CmpIsFalse, "IS_FALSE"},
	{CmpIsBlank, "IS_BLANK"},
	{CmpIsNotBlank, "IS_NOT_BLANK"},
	{CmpContains, "CONTAINS"},
	{CmpStartsWith, "STARTS_WITH"},
	{CmpEndsWith, "ENDS_WITH"},
	{CmpIsIn, "IS_IN"},
	{CmpIsNotIn, "IS_NOT_IN"},
}

// ParseComparator maps comparator text to a Comparator. Unrecognized text
// falls back to CmpEquals: callers are natural-language-driven and may
// supply loosely-specified operator names, so a miss is not an error.
func ParseComparator(s string) Comparator {
	for _, c := range allComparators {
		if string(c.cmp) == s {
			return c.cmp
		}
	}
	return CmpEquals
}

// CanonicalName returns the enumeration name (e.g. "GREATER_THAN").
func (c Comparator) CanonicalName() string {
	for _, e := range allComparators {
		if e.cmp == c {
			return e.name
		}
	}
	return "EQUALS"
}

// IsUnary reports whether the comparator takes no compare value.
func (c Comparator) IsUnary() bool {
	switch c {
	case CmpIsTrue, CmpIsFalse, CmpIsBlank, CmpIsNotBlank:
		return true
	}
	return false
}

// IsNumeric reports whether the comparator is one of the four numeric
// magnitude comparators. These skip trim normalization and value quoting.
func (c Comparator) IsNumeric() bool {
	switch c {
	case CmpGreaterThan, CmpGreaterThanOrEqual, CmpLessThan, CmpLessThanOrEqual:
		return true
	}
	return false
}

// Function returns the engine built-in function name (without the leading
// "@") used by the function expression dialect. IS_IN and IS_NOT_IN have no
// function mapping and return ""; the compiler falls back to a raw equality
// placeholder for them.
func (c Comparator) Function() string {
	switch c {
	case CmpEquals:
		return "equalsIgnoreCase"
	case CmpNotEquals:
		return "notEqualsIgnoreCase"
	case CmpGreaterThan:
		return "greaterThan"
	case CmpGreaterThanOrEqual:
		return "greaterThanOrEqual"
	case CmpLessThan:
		return "lessThan"
	case CmpLessThanOrEqual:
		return "lessThanOrEqual"
	case CmpIsTrue:
		return "isTrue"
	case CmpIsFalse:
		return "isFalse"
	case CmpIsBlank:
		return "isBlank"
	case CmpIsNotBlank:
		return "isNotBlank"
	case CmpContains:
		return "contains"
	case CmpStartsWith:
		return "startsWith"
	case CmpEndsWith:
		return "endsWith"
	}
	return ""
}

// ComparatorInfo describes one comparator for listing APIs.
type ComparatorInfo struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// ListComparators enumerates all supported comparators in a fixed order.
func ListComparators() []ComparatorInfo {
	out := make([]ComparatorInfo, 0, len(allComparators))
	for _, c := range allComparators {
		out = append(out, ComparatorInfo{Value: string(c.cmp), Name: c.name})
	}
	return out
}
