// Package geo holds the pure pieces of location handling:
// address cache keys and great-circle math.
package geo

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeAddress turns a free-text address into the key used by the
// resolution cache. It folds case and collapses every whitespace run into a
// single space, trimming both ends. Nothing else is touched: "St" and
// "Street" stay different keys.
func NormalizeAddress(raw string) string {
	return strings.Join(strings.Fields(cases.Fold().String(raw)), " ")
}
