// Package config loads, normalizes, and validates LisztNUp configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every policy
// knob the curation pipeline needs: filter thresholds, scoring parameters,
// dynamic part-filter anchors, label preferences, exclusion lists, and
// curator overrides.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors. Inconsistent policy values
// (for example non-monotonic interpolation anchors) are rejected here, at
// startup, rather than surfacing as silently wrong thresholds mid-run.
package config
