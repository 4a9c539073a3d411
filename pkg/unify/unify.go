package unify

import "github.com/L-iet/pylogic-core/pkg/term"

// Unify computes the first-order, leaf-as-variable unifier of self and
// other: the substitution that, applied to self via rewrite.Replace, yields
// a term equal to other, if one exists.
//
// keyCheck classifies a term as eligible to serve as a substitution key
// (the "basic"/variable case); it defaults to term.IsLeaf when nil.
// equalCheck defaults to term.Equal when nil.
//
// ok is false when no such substitution exists (the UnificationFailure
// outcome); this is an expected, non-exceptional result, not an error.
func Unify(self, other term.Term, keyCheck term.KeyCheckFunc, equalCheck term.EqualFunc) (*term.Substitution, bool) {
	if keyCheck == nil {
		keyCheck = term.IsLeaf
	}
	if equalCheck == nil {
		equalCheck = term.Equal
	}
	return unifyRec(self, other, keyCheck, equalCheck)
}

func unifyRec(self, other term.Term, keyCheck term.KeyCheckFunc, equalCheck term.EqualFunc) (*term.Substitution, bool) {
	if equalCheck(self, other) {
		return term.NewSubstitution(), true
	}
	if keyCheck(self) {
		sub := term.NewSubstitution()
		sub.Set(self, other)
		return sub, true
	}
	if keyCheck(other) {
		// self is complex, other is basic: no basic term on the left to
		// serve as a key.
		return nil, false
	}

	if !term.EqChildIndependentAttrs(self, other) {
		return nil, false
	}
	selfChildren := self.Children()
	otherChildren := other.Children()
	if len(selfChildren) != len(otherChildren) {
		return nil, false
	}

	subs := make([]*term.Substitution, len(selfChildren))
	for i := range selfChildren {
		s, ok := unifyRec(selfChildren[i], otherChildren[i], keyCheck, equalCheck)
		if !ok {
			return nil, false
		}
		subs[i] = s
	}
	return term.MergeAll(subs...)
}
