package term

// SharingStats reports on structural sharing between two term graphs: how
// many distinct node contents (by digest) of "after" are also present in
// "before".
type SharingStats struct {
	// BeforeNodeCount is the number of nodes (root plus every descendant)
	// reachable from the "before" term.
	BeforeNodeCount int
	// AfterNodeCount is the number of nodes reachable from the "after" term.
	AfterNodeCount int
	// SharedDigests is the number of distinct content digests present in
	// both graphs.
	SharedDigests int
}

// SharingReport walks before and after by content digest and reports how
// much structure they have in common. The copy tests in sharing_test.go use
// it to assert structural sharing quantitatively: a shallow copy or a no-op
// replace should report every node shared; a deep copy should report the
// same digests but via entirely distinct node instances (digests, unlike Go
// pointer identity, can't tell the two cases apart -- pair SharingReport
// with a pointer-identity check, as the deep-copy test does, when the
// distinction matters).
func SharingReport(before, after Term) SharingStats {
	beforeDigests := collectDigests(before, nil)
	afterDigests := collectDigests(after, nil)
	return SharingStats{
		BeforeNodeCount: len(beforeDigests),
		AfterNodeCount:  len(afterDigests),
		SharedDigests:   CountIntersection(digestSet(beforeDigests), digestSet(afterDigests)),
	}
}

func collectDigests(t Term, acc []Digest) []Digest {
	acc = append(acc, ComputeDigest(t))
	for _, c := range t.Children() {
		acc = collectDigests(c, acc)
	}
	return acc
}

func digestSet(ds []Digest) map[Digest]bool {
	set := make(map[Digest]bool, len(ds))
	for _, d := range ds {
		set[d] = true
	}
	return set
}

// CountUniqueDigests returns the number of distinct digests among ds.
func CountUniqueDigests(ds []Digest) int {
	return len(digestSet(ds))
}

// CountIntersection returns the number of digests present in both sets.
func CountIntersection(a, b map[Digest]bool) int {
	count := 0
	for d := range a {
		if b[d] {
			count++
		}
	}
	return count
}
