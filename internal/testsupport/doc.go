// Package testsupport provides helpers for tests: per-test configurations
// and raw forest fixtures in the extraction wire format.
package testsupport
