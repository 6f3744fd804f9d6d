// Package score implements the significance arithmetic of the curation
// pipeline: per-part popularity, the Work Significance Score (WSS), relative
// part scores, and the dynamic part-score threshold interpolated from a
// work's WSS.
package score
