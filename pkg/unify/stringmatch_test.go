package unify

import (
	"reflect"
	"testing"

	"github.com/L-iet/pylogic-core/pkg/term"
)

func isStar(t term.Term) bool {
	v, _ := t.Attr("name")
	s, _ := v.(string)
	return len(s) > 0 && s[0] == '*'
}

func TestStringMatchAllMultiScenario(t *testing.T) {
	pattern := []term.Term{sym("*a"), sym("*b")}
	target := []term.Term{sym("1"), sym("2"), sym("3")}

	matches := StringMatch(pattern, target, isStar)
	wantRanges := [][2][2]int{
		{{0, 0}, {0, 3}},
		{{0, 1}, {1, 3}},
		{{0, 2}, {2, 3}},
		{{0, 3}, {3, 3}},
	}
	if len(matches) != len(wantRanges) {
		t.Fatalf("got %d assignments, want %d", len(matches), len(wantRanges))
	}
	for i, m := range matches {
		if len(m) != 2 {
			t.Fatalf("assignment %d has %d entries, want 2", i, len(m))
		}
		got := [2][2]int{{m[0].Start, m[0].End}, {m[1].Start, m[1].End}}
		if got != wantRanges[i] {
			t.Fatalf("assignment %d = %v, want %v", i, got, wantRanges[i])
		}
	}

	actual := MatchesToActual(matches, target)
	wantSeqs := [][2][]string{
		{{}, {"1", "2", "3"}},
		{{"1"}, {"2", "3"}},
		{{"1", "2"}, {"3"}},
		{{"1", "2", "3"}, {}},
	}
	for i, a := range actual {
		got := [2][]string{names(a[0].Seq), names(a[1].Seq)}
		if !reflect.DeepEqual(got, wantSeqs[i]) {
			t.Fatalf("actual assignment %d = %v, want %v", i, got, wantSeqs[i])
		}
	}
}

func names(ts []term.Term) []string {
	if ts == nil {
		return []string{}
	}
	out := make([]string, len(ts))
	for i, t := range ts {
		v, _ := t.Attr("name")
		out[i], _ = v.(string)
	}
	return out
}

func TestStringMatchLiteralMustEqualTarget(t *testing.T) {
	pattern := []term.Term{sym("a"), sym("b")}
	target := []term.Term{sym("a"), sym("x")}
	matches := StringMatch(pattern, target, isStar)
	if len(matches) != 0 {
		t.Fatalf("expected no assignment when a literal mismatches, got %v", matches)
	}
}

func TestStringMatchNoAssignmentIsEmpty(t *testing.T) {
	pattern := []term.Term{sym("a")}
	target := []term.Term{sym("a"), sym("b")}
	matches := StringMatch(pattern, target, isStar)
	if len(matches) != 0 {
		t.Fatal("a literal-only pattern shorter than target must yield no assignment")
	}
	if got := MatchesToActual(matches, target); len(got) != 0 {
		t.Fatal("matches_to_actual of an empty list must be empty")
	}
}
