package expr

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/eruixma/one-click-campaign/internal/rules"
)

// Fingerprint returns a deterministic identity for the rule, derived from
// its function-dialect expression. Two rules with byte-identical renderings
// share a fingerprint, which makes build requests idempotent from the
// caller's point of view.
func Fingerprint(rule rules.WhenRule) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(Render(rule, DialectFunction)))
}
