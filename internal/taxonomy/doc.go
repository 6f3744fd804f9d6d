// Package taxonomy maps raw genre-types and work names onto the small fixed
// category set the curated catalog is partitioned into.
//
// Resolution is layered: per-composer overrides for untyped works, a
// name+type special case for piano sonatas, a direct type lookup table, and
// finally an ordered list of case-insensitive name rules. The rule order is
// load-bearing: specific stage and vocal patterns must win before the broad
// orchestral and chamber catch-alls ("for X and Y") get a chance to
// over-match.
package taxonomy
