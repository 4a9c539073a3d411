// Package search implements subterm search by structural equality:
// SubobjectFind (first match) and SubobjectFindAll (every match), both in
// pre-order: self first, then each child left to right, fully descending
// each child before moving to the next.
package search

import "github.com/L-iet/pylogic-core/pkg/term"

// SubobjectFind returns the first Path, in pre-order (self first, then
// children left to right, fully descending each child before moving to the
// next), at which a subterm of t is structurally equal to target. found is
// false if no such subterm exists; the root matches with the empty Path.
func SubobjectFind(t, target term.Term) (path term.Path, found bool) {
	if term.Equal(t, target) {
		return term.Path{}, true
	}
	for i, c := range t.Children() {
		if p, ok := SubobjectFind(c, target); ok {
			return append(term.Path{i}, p...), true
		}
	}
	return nil, false
}

// SubobjectFindAll returns every Path, in pre-order, at which a subterm of
// t is structurally equal to target. It never prunes a matched node's
// subtree from the search: in practice this never produces a matched path
// that is a prefix of another, since a node can't structurally contain a
// descendant equal to itself in a finite term (any strict descendant has
// strictly smaller depth than its ancestor, so it can't reproduce the
// ancestor's full shape).
func SubobjectFindAll(t, target term.Term) []term.Path {
	var out []term.Path
	if term.Equal(t, target) {
		out = append(out, term.Path{})
	}
	for i, c := range t.Children() {
		for _, p := range SubobjectFindAll(c, target) {
			out = append(out, append(term.Path{i}, p...))
		}
	}
	return out
}
