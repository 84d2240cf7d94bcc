// Package match implements the filename relationship predicates that decide
// whether one name is an evolution of another.
//
// Two relationships are recognized: expansion (characters inserted into the
// old name anywhere except the very start) and extension change (identical
// base, different trailing extension). The resolver combines them through
// the Predicate combinators in predicate.go.
package match

// IsExpansion reports whether new was produced by inserting characters into
// old without touching its leading character(s).
//
// The check is a two-pointer squeeze over the rune sequences of both names:
// a forward cursor pair consumes the common prefix, a backward cursor pair
// consumes the common suffix without crossing the forward cursors, and the
// pair matches when the two scans meet at the same offset in old. Requiring
// at least one matched leading rune rejects pure prefix insertion
// ("metadata.json" from "data.json"), which changes a file's identity
// rather than extending it.
//
// Examples:
//
//	IsExpansion("route_report.csv", "route_report_before.csv") == true
//	IsExpansion("README", "README.md") == true
//	IsExpansion("data.json", "metadata.json") == false
//
// The scan is character-level, not dot-aware: separator dots play no
// special role here.
func IsExpansion(old, new string) bool {
	oldRunes := []rune(old)
	newRunes := []rune(new)

	// Expansion strictly adds length.
	if len(newRunes) <= len(oldRunes) {
		return false
	}

	// Forward scan: consume the common prefix.
	i := 0
	for i < len(oldRunes) && oldRunes[i] == newRunes[i] {
		i++
	}

	// Backward scan: consume the common suffix, never crossing the
	// forward cursors.
	jOld, jNew := len(oldRunes), len(newRunes)
	for jOld > i && jNew > i && oldRunes[jOld-1] == newRunes[jNew-1] {
		jOld--
		jNew--
	}

	// Every rune of old must be consumed as prefix or suffix, and at
	// least one must have matched as prefix.
	return jOld == i && i > 0
}
