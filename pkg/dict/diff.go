package dict

import (
	"github.com/google/go-cmp/cmp"

	"github.com/L-iet/pylogic-core/pkg/term"
)

// DiffReport compares the dict form of two terms and returns a human
// readable structural diff, the way a failed serialization round trip is
// debugged: dict-ify both sides and diff the resulting maps rather than the
// live Term values, so the report speaks the same vocabulary (class_module,
// class_name, children, attrs) the dict form itself does.
//
// An empty string means the two terms produced identical dict forms.
func DiffReport(want, got term.Term) string {
	return cmp.Diff(ToDict(want), ToDict(got))
}

// bindingEntry is one dict-ified key/value pair of a Substitution, in the
// substitution's own insertion order.
type bindingEntry struct {
	Key   map[string]any
	Value any
}

func bindingEntries(sub *term.Substitution) []bindingEntry {
	if sub == nil {
		return nil
	}
	keys := sub.Keys()
	out := make([]bindingEntry, 0, len(keys))
	for _, k := range keys {
		v, _ := sub.Get(k)
		out = append(out, bindingEntry{Key: ToDict(k), Value: dictifyAttr(v)})
	}
	return out
}

// SubstitutionDiffReport compares two substitutions' bindings and returns a
// human readable structural diff. Substitution has no inherent map order
// (its keys are Terms, not directly comparable), so both sides are first
// flattened to a slice in insertion order via Keys() before diffing. The
// comparison is therefore order-sensitive: two substitutions with identical
// bindings inserted in a different sequence are reported as different.
//
// An empty string means the two substitutions carry identical bindings in
// the same insertion order.
func SubstitutionDiffReport(want, got *term.Substitution) string {
	return cmp.Diff(bindingEntries(want), bindingEntries(got))
}
