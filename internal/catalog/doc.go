// Package catalog models the raw composer/work/recording forest produced by
// the upstream extraction and implements the first two pipeline stages over
// it: loading with genre-type inheritance, and the recursive tree reduction
// that annotates subtree counts and flattens each work into its playable
// leaf parts.
//
// Entities here are read-only once loaded; the only mutation is the count
// annotation pass, which runs exactly once per root work.
package catalog
