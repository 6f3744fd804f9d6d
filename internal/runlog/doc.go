// Package runlog keeps a SQLite-backed history of curation runs so drop
// counts can be compared across input snapshots.
package runlog
