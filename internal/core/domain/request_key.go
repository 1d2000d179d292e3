package domain

import (
	"strconv"
	"strings"
	"unique"
)

// RequestKey identifies a logical query, e.g. {"info"} or {"history", from, to}.
// Two keys are equal when their elements are equal in order.
type RequestKey []string

// NewRequestKey builds a RequestKey from its parts.
func NewRequestKey(parts ...string) RequestKey {
	return RequestKey(parts)
}

// Equal reports whether k and other have the same elements in the same order.
func (k RequestKey) Equal(other RequestKey) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix matches the leading elements of k.
// A key is a prefix of itself.
func (k RequestKey) HasPrefix(prefix RequestKey) bool {
	if len(prefix) > len(k) {
		return false
	}
	return k[:len(prefix)].Equal(prefix)
}

// Clone returns a copy that does not share the backing array.
func (k RequestKey) Clone() RequestKey {
	if k == nil {
		return nil
	}
	out := make(RequestKey, len(k))
	copy(out, k)
	return out
}

// String encodes the key unambiguously: every element is quoted, so
// {"a,b"} and {"a", "b"} never collide.
func (k RequestKey) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, part := range k {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(part))
	}
	b.WriteByte(']')
	return b.String()
}

// Handle returns the interned form of the key, used as a map key.
func (k RequestKey) Handle() unique.Handle[string] {
	return unique.Make(k.String())
}
