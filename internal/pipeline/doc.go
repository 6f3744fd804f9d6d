// Package pipeline orchestrates the curation stages: composer gating,
// candidate generation, significance filtering, deduplication, and final
// assembly of the flat catalog.
package pipeline
