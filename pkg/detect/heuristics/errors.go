package heuristics

import "errors"

// ErrInvalidRuleset indicates a rule definition that cannot be used: an empty
// language list, an unknown language name, an empty extension or a positive
// expression that does not compile.
var ErrInvalidRuleset = errors.New("invalid ruleset")
