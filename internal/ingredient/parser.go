// ABOUTME: Heuristic parser for free-text ingredient lines.
// ABOUTME: Matches "<number> <unit> <name>" or falls back to a unit item.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"
)

// linePattern matches "<decimal number> <single-word unit> <rest>".
var linePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(\S+)\s+(.+)$`)

// Fallback defaults applied when a line does not match the pattern.
const (
	FallbackQuantity = 1
	FallbackUnit     = "item"
)

// Parsed is the structured form of one ingredient line. Matched is
// false when the fallback defaults were used; the result is always
// usable either way.
type Parsed struct {
	Quantity float64
	Unit     string
	Name     string
	Matched  bool
}

// Parse converts one ingredient line into a quantity/unit/name triple.
// Unparseable lines become a single "item" carrying the full text, so
// every input yields a result. Callers should drop blank lines before
// calling; a whitespace-only line falls back like any other non-match.
func Parse(line string) Parsed {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return fallback(line)
	}

	quantity, err := strconv.ParseFloat(m[1], 64)
	if err != nil || quantity <= 0 {
		return fallback(line)
	}

	return Parsed{
		Quantity: quantity,
		Unit:     m[2],
		Name:     strings.TrimSpace(m[3]),
		Matched:  true,
	}
}

func fallback(line string) Parsed {
	return Parsed{
		Quantity: FallbackQuantity,
		Unit:     FallbackUnit,
		Name:     line,
	}
}
