package match

// Predicate decides whether new relates to old in one particular way.
type Predicate func(old, new string) bool

// Bidirectional lifts a predicate so it holds when either argument order
// matches, letting a caller express intent as either the old or the new
// name.
func Bidirectional(p Predicate) Predicate {
	return func(old, new string) bool {
		return p(old, new) || p(new, old)
	}
}

// AnyOf combines predicates with logical OR, short-circuiting on the first
// match.
func AnyOf(predicates ...Predicate) Predicate {
	return func(old, new string) bool {
		for _, p := range predicates {
			if p(old, new) {
				return true
			}
		}
		return false
	}
}

// Evolved is the composite relationship the resolver filters candidates
// with: expansion or extension change, probed in both directions. The two
// predicates may overlap for the same pair ("config.yml" vs "config.yaml");
// the OR-combination makes that harmless.
var Evolved = AnyOf(Bidirectional(IsExpansion), Bidirectional(IsExtensionChange))
