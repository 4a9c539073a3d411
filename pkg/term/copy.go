package term

// ShallowCopy produces a new term whose children attribute is the same
// reference as t's children sequence (not a new slice), and whose
// child-independent attributes are refreshed from t via the
// UpdateChildIndependentAttrs hook. The update hook is invoked exactly
// once.
func ShallowCopy(t Term) Term {
	return Rebuild(t, t.Children())
}

// DeepCopy produces a new term whose children sequence is a new slice
// containing deep copies of each child, and whose child-independent
// attributes are refreshed from t. The update hook is invoked exactly once
// per copied node (once here, plus once per descendant via the recursive
// calls below).
func DeepCopy(t Term) Term {
	src := t.Children()
	copied := make([]Term, len(src))
	for i, c := range src {
		copied[i] = DeepCopy(c)
	}
	return Rebuild(t, copied)
}
