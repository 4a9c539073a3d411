package rewrite

import (
	"errors"
	"testing"

	"github.com/L-iet/pylogic-core/pkg/term"
	"github.com/L-iet/pylogic-core/pkg/termerr"
)

// setup builds a small five-term fixture shared by the scenarios below:
//
//	o1=T("1",[])  o2=T("2",[])  o3=T("3",[o1,o2])
//	o4=T("4",[o3,o2])  o5=T("5",[o4,o1,o3])
func setup() (o1, o2, o3, o4, o5 *term.Symbol) {
	o1 = term.NewSymbol("1", nil)
	o2 = term.NewSymbol("2", nil)
	o3 = term.NewSymbol("3", []term.Term{o1, o2})
	o4 = term.NewSymbol("4", []term.Term{o3, o2})
	o5 = term.NewSymbol("5", []term.Term{o4, o1, o3})
	return
}

func name(t term.Term) string {
	v, _ := t.Attr("name")
	s, _ := v.(string)
	return s
}

func names(ts []term.Term) []string {
	out := make([]string, len(ts))
	for i, c := range ts {
		out[i] = name(c)
	}
	return out
}

func TestReplaceAllSwap(t *testing.T) {
	o1, o2, _, _, o5 := setup()

	m := term.NewSubstitution()
	m.Set(o1, o2)
	m.Set(o2, o1)

	result := Replace(o5, m, nil, nil)
	if name(result) != "5" {
		t.Fatalf("root name changed: got %q", name(result))
	}
	got := names(result.Leaves())
	want := []string{"2", "1", "1", "2", "2", "1"}
	if len(got) != len(want) {
		t.Fatalf("leaves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("leaves = %v, want %v", got, want)
		}
	}
}

func TestReplacePositionalRootMatch(t *testing.T) {
	_, o2, _, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o5, o2)

	result := Replace(o5, m, []term.Path{{}}, nil)
	if !term.Equal(result, term.NewSymbol("2", nil)) {
		t.Fatalf("root-position replace = %v, want T(2,[])", result)
	}
}

func TestReplacePositionalOutOfBoundsIsNoOp(t *testing.T) {
	o1, o2, _, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o1, o2)

	result := Replace(o5, m, []term.Path{{0, 4}}, nil)
	if !term.Equal(result, o5) {
		t.Fatal("out-of-bounds position must be a no-op")
	}
}

func TestReplaceIdentityEqualCheck(t *testing.T) {
	o1, o2, _, _, _ := setup()
	o1b := term.NewSymbol("1", nil) // structurally equal to o1, distinct reference

	root := term.NewSymbol("r", []term.Term{o1, o1b})
	m := term.NewSubstitution()
	m.Set(o1, o2)

	identity := func(a, b term.Term) bool { return a == b }
	result := Replace(root, m, nil, identity)
	rc := result.Children()

	if rc[0] != term.Term(o2) {
		t.Fatalf("the actual o1 occurrence must be replaced, got %v", rc[0])
	}
	if rc[1] != term.Term(o1b) {
		t.Fatal("a distinct-but-equal o1b must be left unchanged under identity equal_check")
	}
}

func TestReplaceSpecificPosition(t *testing.T) {
	o1, _, o3, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o1, term.NewSymbol("2", nil))

	result := Replace(o5, m, []term.Path{{0}}, nil)
	rc := result.Children()

	// child 0 (o4) is rewritten throughout its subtree.
	if name(rc[0]) != "4" {
		t.Fatalf("child 0 name changed unexpectedly: %q", name(rc[0]))
	}
	if !term.Equal(rc[0].Children()[0], term.NewSymbol("3", []term.Term{
		term.NewSymbol("2", nil), term.NewSymbol("2", nil),
	})) {
		t.Fatalf("child 0's nested o3 should be fully rewritten, got %v", rc[0].Children()[0])
	}

	// child 1 (o1, not under the listed position) is untouched.
	if name(rc[1]) != "1" {
		t.Fatalf("child 1 must be untouched, got %q", name(rc[1]))
	}

	// child 2 (o3, not under the listed position) is untouched.
	if !term.Equal(rc[2], o3) {
		t.Fatalf("child 2 must be untouched, got %v", rc[2])
	}
}

func TestReplaceSpecificMultiplePositions(t *testing.T) {
	o1, _, _, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o1, term.NewSymbol("2", nil))

	result := Replace(o5, m, []term.Path{{0, 0}, {2}}, nil)
	rc := result.Children()

	want3 := term.NewSymbol("3", []term.Term{term.NewSymbol("2", nil), term.NewSymbol("2", nil)})
	if !term.Equal(rc[0].Children()[0], want3) {
		t.Fatalf("position [0,0] should rewrite nested o3, got %v", rc[0].Children()[0])
	}
	if name(rc[1]) != "1" {
		t.Fatalf("child 1 must be untouched (no listed position), got %q", name(rc[1]))
	}
	if !term.Equal(rc[2], want3) {
		t.Fatalf("position [2] should rewrite o3 directly, got %v", rc[2])
	}
}

func TestReplaceAllPositionsSingleEmptyNoMatchIsNoOp(t *testing.T) {
	_, o2, _, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o2, term.NewSymbol("9", nil)) // key that isn't the root: root never matches

	result := Replace(o5, m, []term.Path{{}}, nil)
	if !term.Equal(result, o5) {
		t.Fatal("positions=[[]] with a non-matching root must change nothing")
	}
}

func TestReplaceEmptyPositionsIsNoOp(t *testing.T) {
	o1, o2, _, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o1, o2)

	result := Replace(o5, m, []term.Path{}, nil)
	if result != term.Term(o5) {
		t.Fatal("positions=[] must return the input unchanged (by reference)")
	}
}

func TestReplaceNoOpLaws(t *testing.T) {
	_, _, _, _, o5 := setup()

	if Replace(o5, term.NewSubstitution(), nil, nil) != term.Term(o5) {
		t.Fatal("t.replace({}) must be t")
	}

	selfMap := term.NewSubstitution()
	selfMap.Set(o5, o5)
	if Replace(o5, selfMap, nil, nil) != term.Term(o5) {
		t.Fatal("t.replace({t: t}) must be t (identity)")
	}
}

func TestReplaceIdempotence(t *testing.T) {
	o1, o2, _, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o1, o2)

	once := Replace(o5, m, nil, nil)
	twice := Replace(once, m, nil, nil)
	if !term.Equal(once, twice) {
		t.Fatal("replace(m) applied twice must equal replace(m) applied once when no key appears in any value")
	}
}

func TestReplaceNonIdempotenceWitness(t *testing.T) {
	o1, _, _, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o1, o5) // o1 is a descendant of o5, the value: violates the idempotence precondition.

	once := Replace(o5, m, nil, nil)
	twice := Replace(once, m, nil, nil)
	if term.Equal(once, twice) {
		t.Fatal("expected a concrete non-idempotence witness when a key appears inside its own value")
	}
}

func TestReplaceSelfReferenceAtSpecificPosition(t *testing.T) {
	o1, _, _, _, o5 := setup()
	m := term.NewSubstitution()
	m.Set(o1, o5) // replace the leaf o1 with an ancestor of itself, at a non-root position.

	result := Replace(o5, m, []term.Path{{2, 0}}, nil)
	rc := result.Children()[2].Children()
	if rc[0] != term.Term(o5) {
		t.Fatal("replacing at a specific position must share the replacement value by reference")
	}
}

func TestReplaceAtDepthValidatesDepthAgainstPath(t *testing.T) {
	_, _, _, _, o5 := setup()
	_, err := ReplaceAtDepth(o5, term.NewSubstitution(), nil, nil, term.Path{}, 1)
	if err == nil {
		t.Fatal("expected an InvalidArgument error when depth exceeds len(path)")
	}
	if !errors.Is(err, termerr.ErrInvalidArgument) {
		t.Fatalf("expected an InvalidArgumentError, got %v", err)
	}
	const want = "Depth must be at most the length of the path if path is provided."
	if err.Error() != want {
		t.Fatalf("error message = %q, want %q", err.Error(), want)
	}
}
