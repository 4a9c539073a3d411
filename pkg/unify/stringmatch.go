// Package unify implements first-order and list-aware unification, plus the
// sequence-pattern matcher multi_unify delegates to for splitting a pattern
// children sequence against a target children sequence.
package unify

import "github.com/L-iet/pylogic-core/pkg/term"

// MatchEntry is one element of an Assignment: either a literal pinned to a
// single target index, or a multi-variable pinned to a half-open target
// range [Start, End).
type MatchEntry struct {
	PatternIndex int
	IsMulti      bool
	Index        int // literal: the target index consumed
	Start, End   int // multi-var: the target range consumed
}

// Assignment is a complete mapping from every pattern position to the
// target slice it consumes.
type Assignment []MatchEntry

// StringMatch enumerates every way pattern can consume target exactly,
// where isMultiVar identifies pattern elements that may consume a
// contiguous (possibly empty) target run instead of exactly one element.
// Non-multi-var ("literal") elements must structurally equal the single
// target element they consume.
//
// Enumeration order is canonical: left to right over the pattern, each
// multi-variable tries consuming a contiguous target run of length 0
// upward before the recursion moves on to the next pattern element, so
// assignments come out ascending by the leftmost multi-variable's run
// length first.
func StringMatch(pattern, target []term.Term, isMultiVar func(term.Term) bool) []Assignment {
	return matchFrom(pattern, target, isMultiVar, 0, 0)
}

func matchFrom(pattern, target []term.Term, isMultiVar func(term.Term) bool, patIdx, targetPos int) []Assignment {
	if patIdx == len(pattern) {
		if targetPos == len(target) {
			return []Assignment{{}}
		}
		return nil
	}

	elem := pattern[patIdx]
	var results []Assignment

	if isMultiVar(elem) {
		for end := targetPos; end <= len(target); end++ {
			rest := matchFrom(pattern, target, isMultiVar, patIdx+1, end)
			for _, r := range rest {
				entry := MatchEntry{PatternIndex: patIdx, IsMulti: true, Start: targetPos, End: end}
				results = append(results, prepend(entry, r))
			}
		}
		return results
	}

	if targetPos >= len(target) || !term.Equal(elem, target[targetPos]) {
		return nil
	}
	rest := matchFrom(pattern, target, isMultiVar, patIdx+1, targetPos+1)
	for _, r := range rest {
		entry := MatchEntry{PatternIndex: patIdx, IsMulti: false, Index: targetPos}
		results = append(results, prepend(entry, r))
	}
	return results
}

func prepend(e MatchEntry, rest Assignment) Assignment {
	out := make(Assignment, 0, len(rest)+1)
	out = append(out, e)
	out = append(out, rest...)
	return out
}

// ActualEntry is a MatchEntry with its index/range resolved against the
// target slice into the actual term or term sequence it denotes.
type ActualEntry struct {
	PatternIndex int
	IsMulti      bool
	Value        term.Term   // literal
	Seq          []term.Term // multi-var
}

// ActualAssignment is the resolved form of an Assignment.
type ActualAssignment []ActualEntry

// MatchesToActual resolves each Assignment's indices/ranges against target
// into concrete terms and term sequences. Applied to an empty matches
// slice, it yields an empty slice.
func MatchesToActual(matches []Assignment, target []term.Term) []ActualAssignment {
	out := make([]ActualAssignment, len(matches))
	for i, m := range matches {
		actual := make(ActualAssignment, len(m))
		for j, e := range m {
			if e.IsMulti {
				seq := make([]term.Term, e.End-e.Start)
				copy(seq, target[e.Start:e.End])
				actual[j] = ActualEntry{PatternIndex: e.PatternIndex, IsMulti: true, Seq: seq}
			} else {
				actual[j] = ActualEntry{PatternIndex: e.PatternIndex, IsMulti: false, Value: target[e.Index]}
			}
		}
		out[i] = actual
	}
	return out
}
