package term

// Symbol is the reference Term variant: a node tagged with a name. It
// declares one child-independent attribute, "name", which also
// participates in hashing and equality.
//
// Symbol doubles as the pattern-element variant for list-aware
// unification: nothing about the type marks it as a multi-variable: that
// classification is supplied by the caller's key_for_list_check predicate
// (see pkg/unify), conventionally recognizing a leading "*" in Name.
type Symbol struct {
	name     string
	children []Term
	leaves   []Term
}

const symbolClassModule = "pylogic-core/term"
const symbolClassName = "Symbol"

// NewSymbol constructs a Symbol with the given name over the given
// children (nil children defaults to empty, and is never mutated).
func NewSymbol(name string, children []Term) *Symbol {
	s := &Symbol{name: name}
	if children == nil {
		children = []Term{}
	}
	s.SetChildren(children)
	s.UpdateChildDependentAttrs()
	return s
}

func (s *Symbol) ClassModule() string { return symbolClassModule }
func (s *Symbol) ClassName() string   { return symbolClassName }
func (s *Symbol) Children() []Term    { return s.children }
func (s *Symbol) Leaves() []Term      { return s.leaves }
func (s *Symbol) Name() string        { return s.name }

func (s *Symbol) ChildIndependentAttrNames() []string { return []string{"name"} }
func (s *Symbol) ChildDependentAttrNames() []string   { return []string{"leaves"} }
func (s *Symbol) HashAttrNames() []string             { return []string{"name"} }

func (s *Symbol) Attr(name string) (any, bool) {
	switch name {
	case "name":
		return s.name, true
	case "leaves":
		return s.leaves, true
	default:
		return nil, false
	}
}

func (s *Symbol) SetChildren(children []Term) { s.children = children }

func (s *Symbol) UpdateChildIndependentAttrs(ref Term) {
	if other, ok := ref.(*Symbol); ok {
		s.name = other.name
		return
	}
	if v, ok := ref.Attr("name"); ok {
		if name, ok := v.(string); ok {
			s.name = name
		}
	}
}

func (s *Symbol) UpdateChildDependentAttrs() {
	s.leaves = computeLeaves(s.children)
}

func (s *Symbol) Clone() Variant {
	return &Symbol{name: s.name}
}
