package term

// Term is a node in a finite, ordered, possibly-DAG-shaped tree. Children
// are shared by reference: the same Term value may appear as a child of
// many parents, and may appear multiple times within one parent.
//
// Terms are conceptually immutable after construction: every public
// operation that "changes" a term returns a freshly built one. The
// Variant interface below is the construction/copy plumbing used
// internally (and by variant authors) to build those fresh terms.
type Term interface {
	// ClassModule and ClassName together form the serialized kind tag
	// (spec's "class_module"/"class_name" pair).
	ClassModule() string
	ClassName() string

	// Children returns the ordered child sequence, possibly empty. The
	// returned slice is shared, never copied, by Term implementations.
	Children() []Term

	// Leaves returns the in-order concatenation of leaf terms reachable
	// through Children. It is the default child-dependent attribute every
	// variant carries.
	Leaves() []Term

	// ChildIndependentAttrNames lists the variant's declared
	// child-independent attributes.
	ChildIndependentAttrNames() []string
	// ChildDependentAttrNames lists the variant's declared child-dependent
	// attributes (always includes "leaves").
	ChildDependentAttrNames() []string
	// HashAttrNames lists the subset of ChildIndependentAttrNames that
	// participate in equality and hashing.
	HashAttrNames() []string

	// Attr returns the value of a declared attribute (child-independent or
	// child-dependent) by name, for serialization and attribute equality.
	Attr(name string) (any, bool)
}

// Kind returns the full discriminator used by structural equality: the
// class_module/class_name pair joined into one comparable string.
func Kind(t Term) string {
	return t.ClassModule() + "#" + t.ClassName()
}

// IsLeaf is the default unification key_check: a term is basic iff it has
// no children.
func IsLeaf(t Term) bool {
	return len(t.Children()) == 0
}

// EqualFunc is a binary predicate over terms, used by Replace and Unify to
// decide whether a candidate subterm matches a substitution key.
type EqualFunc func(a, b Term) bool

// KeyCheckFunc classifies a term as eligible to serve as a unification key
// (is_leaf by default) or as a multi-variable (never, by default).
type KeyCheckFunc func(t Term) bool

// Variant is implemented by concrete term kinds. It exposes the three
// collaborator hooks the core calls during construction and copying:
// SetChildren installs the children slice as-is (shared reference);
// UpdateChildIndependentAttrs refreshes this variant's own
// child-independent attributes by copying them from a reference term;
// UpdateChildDependentAttrs recomputes this variant's child-dependent
// attributes (leaves, and any variant-specific extensions) from the
// current Children(). Clone returns a detached instance carrying this
// variant's current child-independent attributes but no children yet,
// ready to have the three hooks above applied to it.
type Variant interface {
	Term
	SetChildren(children []Term)
	UpdateChildIndependentAttrs(ref Term)
	UpdateChildDependentAttrs()
	Clone() Variant
}

// Rebuild constructs a new term of the same variant as t, carrying t's own
// child-independent attributes, over a new children sequence. It is the
// shared plumbing behind ShallowCopy, DeepCopy, and the rewriter's
// non-root reconstruction step: each calls Rebuild with a different
// children slice (t.Children() itself, deep copies of it, or a mix of
// rewritten and untouched children).
//
// UpdateChildIndependentAttrs and UpdateChildDependentAttrs are each
// invoked exactly once.
func Rebuild(t Term, children []Term) Term {
	v, ok := t.(Variant)
	if !ok {
		panic("term: Rebuild requires a Variant-implementing Term")
	}
	clone := v.Clone()
	clone.UpdateChildIndependentAttrs(t)
	if children == nil {
		children = []Term{}
	}
	clone.SetChildren(children)
	clone.UpdateChildDependentAttrs()
	return clone
}

// computeLeaves implements the default "leaves" child-dependent attribute:
// the in-order concatenation of leaf terms reachable through children. A
// leaf is a term whose children sequence is empty.
func computeLeaves(children []Term) []Term {
	if len(children) == 0 {
		return nil
	}
	var leaves []Term
	for _, c := range children {
		if IsLeaf(c) {
			leaves = append(leaves, c)
		} else {
			leaves = append(leaves, c.Leaves()...)
		}
	}
	return leaves
}

func sameNameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, n := range a {
		seen[n]++
	}
	for _, n := range b {
		seen[n]--
	}
	for _, count := range seen {
		if count != 0 {
			return false
		}
	}
	return true
}
