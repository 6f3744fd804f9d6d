// Package dedup resolves the duplicate-identity defects the upstream
// extraction is known to produce: the same work identifier rooted under
// several composers, duplicate work entries, and track identifiers claimed
// by more than one surviving work or part.
//
// Every resolution is deterministic and order-dependent: first occurrence
// wins, in grouping order. That order is an artifact of upstream grouping,
// not a quality judgement, and is preserved exactly for reproducible
// output.
package dedup
