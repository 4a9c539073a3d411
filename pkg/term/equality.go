package term

import "github.com/google/go-cmp/cmp"

// termComparer lets go-cmp recurse through attribute values that happen to
// be Terms themselves (or slices of Terms), delegating to Equal instead of
// comparing unexported struct fields.
var termComparer = cmp.Comparer(func(a, b Term) bool {
	return Equal(a, b)
})

// attrEqual compares two attribute values for equality. Most attribute
// values are plain scalars (a name string, say); a variant is free to
// declare an attribute whose value is itself a Term or a slice of Terms,
// which is why this delegates to go-cmp with a Term-aware comparer rather
// than a bare reflect.DeepEqual.
func attrEqual(a, b any) bool {
	return cmp.Equal(a, b, termComparer)
}

// EqChildIndependentAttrs returns true iff both terms declare exactly the
// same set of child-independent attributes (by name) and each declared
// attribute compares equal across the two terms. Differing attribute-name
// sets are unequal.
func EqChildIndependentAttrs(a, b Term) bool {
	namesA := a.ChildIndependentAttrNames()
	namesB := b.ChildIndependentAttrNames()
	if !sameNameSet(namesA, namesB) {
		return false
	}
	for _, name := range namesA {
		va, okA := a.Attr(name)
		vb, okB := b.Attr(name)
		if okA != okB {
			return false
		}
		if okA && !attrEqual(va, vb) {
			return false
		}
	}
	return true
}

// hashAttrsEqual compares only the subset of child-independent attributes
// each term declares as hash-participating.
func hashAttrsEqual(a, b Term) bool {
	namesA := a.HashAttrNames()
	namesB := b.HashAttrNames()
	if !sameNameSet(namesA, namesB) {
		return false
	}
	for _, name := range namesA {
		va, okA := a.Attr(name)
		vb, okB := b.Attr(name)
		if okA != okB {
			return false
		}
		if okA && !attrEqual(va, vb) {
			return false
		}
	}
	return true
}

func childrenEqual(a, b []Term, cmpFn func(x, y Term) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !cmpFn(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Equal is structural equality: kind tags equal, declared hash-participating
// child-independent attributes pairwise equal, and children sequences equal
// elementwise (recursively, kind-tag-sensitive). Subclass distinction is
// strict: different kind tags are unequal even when attributes match.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if Kind(a) != Kind(b) {
		return false
	}
	if !hashAttrsEqual(a, b) {
		return false
	}
	return childrenEqual(a.Children(), b.Children(), Equal)
}

// EqualUpToSubclass is EqChildIndependentAttrs conjoined with elementwise
// children equality, ignoring kind tag entirely (including in descendants).
func EqualUpToSubclass(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !EqChildIndependentAttrs(a, b) {
		return false
	}
	return childrenEqual(a.Children(), b.Children(), EqualUpToSubclass)
}
