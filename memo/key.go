package memo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ComparableOrStringer is the constraint on memoized arguments: either a
// comparable value or a fmt.Stringer whose String output identifies it.
type ComparableOrStringer any

// ComparableOrString is a canonicalized cache key component.
type ComparableOrString any

// canonicalKey maps an argument to its cache key component. Stringer
// arguments canonicalize through String(), so two structurally equal values
// with distinct identities share a key. Everything else is keyed by its
// comparable value directly.
func canonicalKey(arg ComparableOrStringer) ComparableOrString {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	return arg
}

func canonicalKeys(args ...ComparableOrStringer) []ComparableOrString {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = canonicalKey(arg)
	}
	return keys
}

// KeyDigest renders a canonicalized key list into a stable string digest.
// Equal key lists always digest identically; the digest doubles as the
// single-flight key and as a flat key for external stores.
func KeyDigest(keys []ComparableOrString) string {
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%T=%#v;", k, k)
	}
	return strconv.FormatUint(xxhash.Sum64String(sb.String()), 16)
}
