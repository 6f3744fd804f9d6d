// Package curate defines the flat, curated entities the pipeline produces
// (parts, works, composers, and the catalog container) together with the
// grouped intermediate form the later stages operate on and the statistics
// record every stage reports its drops into.
package curate
