package term

// Substitution is a finite mapping from Term (key) to either a Term or, for
// list-variable keys produced by list-aware unification, an ordered
// sequence of Terms ([]Term).
//
// Lookups under the default equality (Equal) are served by a hash-bucketed
// index keyed on Hash(key) -- the two-tier structure the algebra's design
// notes call for: "a hash bucket for default equality, linear probe for
// custom" -- since a caller-supplied equal_check need not agree with Hash,
// and is served by GetWith via a full linear scan instead.
type Substitution struct {
	buckets map[uint64][]subEntry
	order   []Term // preserves insertion order for deterministic Range
	size    int
}

type subEntry struct {
	key   Term
	value any
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{buckets: make(map[uint64][]subEntry)}
}

// Len returns the number of entries.
func (s *Substitution) Len() int { return s.size }

// Set installs (or overwrites) the mapping for key.
func (s *Substitution) Set(key Term, value any) {
	h := Hash(key)
	bucket := s.buckets[h]
	for i, e := range bucket {
		if Equal(e.key, key) {
			bucket[i].value = value
			return
		}
	}
	s.buckets[h] = append(bucket, subEntry{key: key, value: value})
	s.order = append(s.order, key)
	s.size++
}

// Get looks up key using the default structural equality via the hash
// bucket fast path.
func (s *Substitution) Get(key Term) (any, bool) {
	for _, e := range s.buckets[Hash(key)] {
		if Equal(e.key, key) {
			return e.value, true
		}
	}
	return nil, false
}

// GetWith looks up key using a caller-supplied equality predicate. Since an
// arbitrary equal_check need not agree with Hash, this performs a full
// linear scan across every bucket rather than trusting the hash partition.
func (s *Substitution) GetWith(key Term, equalCheck EqualFunc) (any, bool) {
	if equalCheck == nil {
		return s.Get(key)
	}
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			if equalCheck(e.key, key) {
				return e.value, true
			}
		}
	}
	return nil, false
}

// Range iterates entries in insertion order.
func (s *Substitution) Range(fn func(key Term, value any) bool) {
	for _, k := range s.order {
		v, ok := s.Get(k)
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}

// Keys returns all keys in insertion order.
func (s *Substitution) Keys() []Term {
	out := make([]Term, len(s.order))
	copy(out, s.order)
	return out
}

// TermValue returns value as a single Term, for ordinary-variable entries.
func TermValue(value any) (Term, bool) {
	t, ok := value.(Term)
	return t, ok
}

// SeqValue returns value as a Term sequence, for multi-variable entries.
func SeqValue(value any) ([]Term, bool) {
	seq, ok := value.([]Term)
	return seq, ok
}

// valueEqual compares two substitution values, which may each be a single
// Term (ordinary-variable image) or a []Term (multi-variable image).
func valueEqual(a, b any) bool {
	if ta, ok := TermValue(a); ok {
		tb, ok := TermValue(b)
		return ok && Equal(ta, tb)
	}
	if sa, ok := SeqValue(a); ok {
		sb, ok := SeqValue(b)
		if !ok || len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !Equal(sa[i], sb[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Merge combines s and other into a new substitution, requiring consistency
// on shared keys: when the same key appears in both, the two images must
// compare equal (as sequences for multi-variable keys, as single terms
// otherwise). Merge fails (returns ok=false) on any inconsistency.
func Merge(s, other *Substitution) (*Substitution, bool) {
	result := NewSubstitution()
	if s != nil {
		s.Range(func(k Term, v any) bool {
			result.Set(k, v)
			return true
		})
	}
	ok := true
	if other != nil {
		other.Range(func(k Term, v any) bool {
			if existing, present := result.Get(k); present {
				if !valueEqual(existing, v) {
					ok = false
					return false
				}
				return true
			}
			result.Set(k, v)
			return true
		})
	}
	if !ok {
		return nil, false
	}
	return result, true
}

// MergeAll merges a sequence of substitutions left to right, short-circuiting
// on the first inconsistency.
func MergeAll(subs ...*Substitution) (*Substitution, bool) {
	result := NewSubstitution()
	for _, s := range subs {
		merged, ok := Merge(result, s)
		if !ok {
			return nil, false
		}
		result = merged
	}
	return result, true
}
