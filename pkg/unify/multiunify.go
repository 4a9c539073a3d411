package unify

import "github.com/L-iet/pylogic-core/pkg/term"

// MultiUnify is list-variable-aware unification: a pattern child for which
// keyForListCheck holds consumes a contiguous, possibly-empty run of the
// counterpart's children rather than a single element.
//
// keyForListCheck defaults to "never" when nil: a pattern with no
// multi-variable anywhere degenerates to ordinary Unify using keyCheck
// (which itself defaults to term.IsLeaf when nil).
func MultiUnify(self, other term.Term, keyCheck, keyForListCheck term.KeyCheckFunc) (*term.Substitution, bool) {
	if keyCheck == nil {
		keyCheck = term.IsLeaf
	}
	if keyForListCheck == nil {
		keyForListCheck = func(term.Term) bool { return false }
	}
	return multiUnifyRec(self, other, keyCheck, keyForListCheck)
}

func multiUnifyRec(self, other term.Term, keyCheck, keyForListCheck term.KeyCheckFunc) (*term.Substitution, bool) {
	if keyForListCheck(self) {
		sub := term.NewSubstitution()
		sub.Set(self, []term.Term{other})
		return sub, true
	}

	selfChildren := self.Children()
	hasMultiVar := false
	for _, c := range selfChildren {
		if keyForListCheck(c) {
			hasMultiVar = true
			break
		}
	}
	if !hasMultiVar {
		return Unify(self, other, keyCheck, nil)
	}

	if keyCheck(self) || keyCheck(other) {
		return nil, false
	}
	if !term.EqChildIndependentAttrs(self, other) {
		return nil, false
	}

	otherChildren := other.Children()
	assignments := StringMatch(selfChildren, otherChildren, keyForListCheck)
	actuals := MatchesToActual(assignments, otherChildren)

	for _, actual := range actuals {
		if sub, ok := tryAssignment(selfChildren, actual, keyCheck, keyForListCheck); ok {
			return sub, true
		}
	}
	return nil, false
}

// tryAssignment attempts to build a consistent substitution out of one
// candidate sequence assignment: multi-variable pattern children bind
// directly to their matched sub-sequence, and every other pattern child
// recursively multi-unifies against its matched counterpart.
func tryAssignment(patternChildren []term.Term, actual ActualAssignment, keyCheck, keyForListCheck term.KeyCheckFunc) (*term.Substitution, bool) {
	subs := make([]*term.Substitution, 0, len(actual))
	for _, e := range actual {
		patChild := patternChildren[e.PatternIndex]
		if e.IsMulti {
			sub := term.NewSubstitution()
			sub.Set(patChild, e.Seq)
			subs = append(subs, sub)
			continue
		}
		sub, ok := multiUnifyRec(patChild, e.Value, keyCheck, keyForListCheck)
		if !ok {
			return nil, false
		}
		subs = append(subs, sub)
	}
	return term.MergeAll(subs...)
}
