// Package tracks selects the representative audio-track identifiers a part
// carries into the curated catalog, preferring well-known labels and
// honoring the exclusion set supplied by the availability checker.
package tracks
