// Package rewrite implements the rewriter: Replace, simultaneous
// non-interfering substitution over a term tree, with optional
// position-restricted application and a custom equality predicate.
//
// Replace walks the term in pre-order, recursing into children before
// rebuilding the parent from whatever came back, and rebuilds a node only
// when something beneath it actually changed.
package rewrite

import (
	"github.com/L-iet/pylogic-core/pkg/term"
	"github.com/L-iet/pylogic-core/pkg/termerr"
)

// Replace performs simultaneous, non-interfering substitution over t.
//
// When positions is nil, every subterm anywhere in the tree that matches a
// key of replaceMap is substituted; a candidate subterm is looked up once,
// and the rewriter does not recurse into the substituted value (so cyclic
// maps such as {A: B, B: A} produce a pairwise swap of pre-existing
// occurrences, not an infinite or cascading rewrite).
//
// When positions is a (possibly empty) slice of Paths, substitution is
// restricted to those locations. The empty Path as the sole listed position
// means "check the root only" (win or lose, recursion stops there); any
// other listed, non-root position that fails to match its key instead
// falls back to unrestricted replacement through that subtree: the
// position is still honored, just not by a literal key match at that exact
// node. Positions that are out of bounds for t are silently ignored, since the
// recursion only ever visits indices t's children sequences actually have.
//
// equalCheck defaults to term.Equal when nil.
//
// Replace never mutates t or its children; it returns a freshly constructed
// term, sharing the replaceMap value by reference when the root itself is
// replaced, and returning t itself (by reference) when nothing changed
// anywhere.
func Replace(t term.Term, replaceMap *term.Substitution, positions []term.Path, equalCheck term.EqualFunc) term.Term {
	result, err := replaceRec(t, replaceMap, positions, equalCheck, positions == nil, term.Path{}, 0)
	if err != nil {
		// Unreachable from this entry point: depth is always constructed
		// equal to len(path) below.
		panic(err)
	}
	return result
}

// ReplaceAtDepth exposes the rewriter's internal path/depth parameters
// directly, for callers that need to drive the recursion at an explicit
// starting depth: depth must never exceed len(path).
func ReplaceAtDepth(t term.Term, replaceMap *term.Substitution, positions []term.Path, equalCheck term.EqualFunc, path term.Path, depth int) (term.Term, error) {
	return replaceRec(t, replaceMap, positions, equalCheck, positions == nil, path, depth)
}

func lookup(replaceMap *term.Substitution, node term.Term, equalCheck term.EqualFunc) (term.Term, bool) {
	var v any
	var ok bool
	if equalCheck == nil {
		v, ok = replaceMap.Get(node)
	} else {
		v, ok = replaceMap.GetWith(node, equalCheck)
	}
	if !ok {
		return nil, false
	}
	tv, isTerm := term.TermValue(v)
	return tv, isTerm
}

func childPath(p term.Path, idx int) term.Path {
	np := make(term.Path, len(p)+1)
	copy(np, p)
	np[len(p)] = idx
	return np
}

// sameTerm reports whether a and b are the identical term reference.
func sameTerm(a, b term.Term) bool {
	return a == b
}

func replaceRec(node term.Term, replaceMap *term.Substitution, positions []term.Path, equalCheck term.EqualFunc, everywhere bool, path term.Path, depth int) (term.Term, error) {
	if depth > len(path) {
		return nil, termerr.NewInvalidArgument("Depth must be at most the length of the path if path is provided.")
	}

	if everywhere {
		return replaceEverywhere(node, replaceMap, positions, equalCheck, path, depth)
	}

	if term.ContainsPath(positions, path) {
		if v, ok := lookup(replaceMap, node, equalCheck); ok {
			return v, nil
		}
		if len(path) != 0 {
			// A listed, non-root position whose node doesn't match: the
			// rest of the algorithm behaves as if this subtree's root had
			// been reached via positions=None.
			return replaceEverywhere(node, replaceMap, positions, equalCheck, path, depth)
		}
		// The root is listed and didn't match: fall through to ordinary
		// prefix navigation below, so any *other* listed positions
		// elsewhere in the tree still get a chance to apply.
	}

	children := node.Children()
	if len(children) == 0 {
		return node, nil
	}
	newChildren := make([]term.Term, len(children))
	changed := false
	for i, c := range children {
		cp := childPath(path, i)
		if !term.HasPrefixIn(positions, cp) {
			newChildren[i] = c
			continue
		}
		nc, err := replaceRec(c, replaceMap, positions, equalCheck, false, cp, depth+1)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
		if !sameTerm(nc, c) {
			changed = true
		}
	}
	if !changed {
		return node, nil
	}
	return term.Rebuild(node, newChildren), nil
}

func replaceEverywhere(node term.Term, replaceMap *term.Substitution, positions []term.Path, equalCheck term.EqualFunc, path term.Path, depth int) (term.Term, error) {
	if v, ok := lookup(replaceMap, node, equalCheck); ok {
		return v, nil
	}
	children := node.Children()
	if len(children) == 0 {
		return node, nil
	}
	newChildren := make([]term.Term, len(children))
	changed := false
	for i, c := range children {
		cp := childPath(path, i)
		nc, err := replaceRec(c, replaceMap, positions, equalCheck, true, cp, depth+1)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
		if !sameTerm(nc, c) {
			changed = true
		}
	}
	if !changed {
		return node, nil
	}
	return term.Rebuild(node, newChildren), nil
}
