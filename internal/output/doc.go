// Package output persists curation artifacts: the catalog JSON and the
// unresolved-types log.
package output
