// Package memo memoizes pure functions by their input values.
//
// Memoization is not just a performance trick. Wrapping a function here
// forces the question:
//
//	→ "Is this function really pure?"
//	→ "Do equal inputs always mean an equal output?"
//
// The Memoize family answers yes on the caller's behalf: the wrapped
// function is invoked at most once per distinct canonicalized argument
// list, for the lifetime of the wrapped instance. Arguments canonicalize
// by comparable value, or through String() for fmt.Stringer arguments, so
// structural equality decides cache identity regardless of object identity.
//
// Features:
//   - MemoizeI1O1 to MemoizeI4O1: typed, generic memoizers for common
//     arities, plus Err variants whose failures propagate uncached.
//   - Single-flight deduplication: concurrent callers with an identical
//     in-flight key await one computation instead of racing.
//   - Trie-based store over sync.Map levels; cached reads take no
//     exclusive lock.
//   - Explicit extensions for the unbounded-growth caveat: WithMaxSize
//     (generation rotation), WithTTL (entry validity spans), WithStore
//     (external eviction-capable caches).
//
// The default cache never evicts. Long-lived use with unbounded distinct
// keys grows memory without bound; production users should reach for one
// of the explicit extensions above.
//
// WARNING: Do not memoize impure functions (those depending on time, I/O,
// or ambient mutable state). The at-most-once guarantee makes their
// staleness permanent.
package memo
