package catalog

import (
	"regexp"
	"sort"
	"strings"
)

// Inference tuning. Kept as named package variables rather than inlined
// numbers: the stoplist and bounds are tuned against observed catalogs and
// get adjusted when a new supplier's naming defeats them. The heuristic is
// best-effort: missed codes and false picks are both accepted outcomes.
var (
	// Bare unit tokens that are never codes, and suffixes that disqualify a
	// token ("250ml" is a capacity, not a code).
	inferUnitSuffixes = []string{"mm", "cm", "ml", "l", "ltr", "g", "gm", "kg", "mg", "mcg", "pcs", "pc", "nos", "pk", "sheets"}

	inferMinTokenLen   = 3
	inferMaxTokenLen   = 12
	inferNumericMinLen = 3
	inferNumericMaxLen = 8
)

var (
	reInferSplit = regexp.MustCompile(`[\s,/()_\-]+`)
	reTokenShape = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	reHasDigit   = regexp.MustCompile(`[0-9]`)
	reHasLetter  = regexp.MustCompile(`[A-Za-z]`)
	reAllDigits  = regexp.MustCompile(`^[0-9]+$`)
)

// InferCode guesses the most code-like token of a display name. Used only
// when no explicit code field exists on the record. Deterministic: the same
// name always yields the same token (or empty string).
func InferCode(name string) string {
	tokens := reInferSplit.Split(name, -1)

	candidates := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || isUnitToken(tok) {
			continue
		}
		if !reTokenShape.MatchString(tok) || !reHasDigit.MatchString(tok) {
			continue
		}
		if endsInUnitSuffix(tok) {
			continue
		}
		if len(tok) < inferMinTokenLen || len(tok) > inferMaxTokenLen {
			continue
		}
		candidates = append(candidates, tok)
	}

	// Mixed letter+digit tokens look like catalog codes ("BG250"); shorter
	// ones look more code-like than longer ones.
	mixed := make([]string, 0, len(candidates))
	for _, tok := range candidates {
		if reHasLetter.MatchString(tok) {
			mixed = append(mixed, tok)
		}
	}
	if len(mixed) > 0 {
		sort.SliceStable(mixed, func(i, j int) bool { return len(mixed[i]) < len(mixed[j]) })
		return mixed[0]
	}

	for _, tok := range candidates {
		if reAllDigits.MatchString(tok) && len(tok) >= inferNumericMinLen && len(tok) <= inferNumericMaxLen {
			return tok
		}
	}
	return ""
}

func isUnitToken(tok string) bool {
	lower := strings.ToLower(tok)
	for _, unit := range inferUnitSuffixes {
		if lower == unit {
			return true
		}
	}
	return false
}

func endsInUnitSuffix(tok string) bool {
	lower := strings.ToLower(tok)
	for _, unit := range inferUnitSuffixes {
		if strings.HasSuffix(lower, unit) && lower != unit {
			return true
		}
	}
	return false
}
