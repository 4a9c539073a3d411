package term

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest is a SHA-256 content digest: an optional content-address for a
// Term, recomputed by ComputeDigest on every call (it is not cached). It is
// not on the critical path of any core operation; Hash (below) is what the
// Substitution's hash buckets use, and Equal compares terms structurally
// without hashing.
type Digest [32]byte

// String returns the hex-encoded digest.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// ComputeDigest computes t's content digest: a canonical encoding of its
// kind tag, hash-participating attribute values, and each child's own
// digest, fed through SHA-256. Equal terms have equal digests.
func ComputeDigest(t Term) Digest {
	return sha256.Sum256(canonicalBytes(t))
}

// Hash is a pure function of kind tag, hash-participating child-independent
// attributes, and children: equal terms hash equal. It is a lightweight
// 64-bit value (backed by xxhash, not a cryptographic digest) suited to the
// Substitution's hash-bucketed lookup and to using terms as map keys in
// tests and diagnostics.
func Hash(t Term) uint64 {
	return xxhash.Sum64(canonicalBytes(t))
}

// canonicalBytes produces a deterministic byte encoding of t suitable for
// feeding either hash function: a length-prefixed concatenation of the kind
// tag, each hash-participating attribute's textual form, and each child's
// own canonical bytes. Length-prefixing every field keeps a field boundary
// from ever being ambiguous with embedded data.
func canonicalBytes(t Term) []byte {
	var buf []byte
	buf = appendLP(buf, []byte(Kind(t)))

	names := t.HashAttrNames()
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(names)))
	buf = append(buf, lenBuf[:]...)
	for _, name := range names {
		buf = appendLP(buf, []byte(name))
		v, _ := t.Attr(name)
		buf = appendLP(buf, []byte(attrString(v)))
	}

	children := t.Children()
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(children)))
	buf = append(buf, lenBuf[:]...)
	for _, c := range children {
		buf = appendLP(buf, canonicalBytes(c))
	}
	return buf
}

func appendLP(buf, data []byte) []byte {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	buf = append(buf, lenBuf[:]...)
	return append(buf, data...)
}

// attrString renders an attribute value for canonical encoding. Term-typed
// attribute values contribute their own canonical bytes (so two equal
// sub-terms used as attribute values hash identically); everything else
// falls back to a best-effort textual form, which is sufficient for the
// scalar attributes (strings, numbers) every variant in this module
// declares.
func attrString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Term:
		return string(canonicalBytes(x))
	case []Term:
		var parts []byte
		for _, e := range x {
			parts = appendLP(parts, canonicalBytes(e))
		}
		return string(parts)
	default:
		return fmt.Sprintf("%v", x)
	}
}
