package score

import "errors"

// Interpolator derives the minimum relative part score a work must hold its
// parts to, given the work's WSS. At or below the lower WSS anchor the
// requirement is highest (parts must be near-unanimous hits); at or above
// the upper anchor it is lowest (a highly significant work may carry
// lower-scoring supporting parts). Between the anchors the requirement
// interpolates linearly on WSS.
type Interpolator struct {
	lowerWSS   float64
	upperWSS   float64
	lowerScore float64
	upperScore float64
}

// NewInterpolator validates the anchor points and returns an Interpolator.
// Non-monotonic anchors are a configuration contract violation: they would
// produce silently wrong thresholds, so they are rejected here instead.
func NewInterpolator(lowerWSS, upperWSS, scoreAtLower, scoreAtUpper float64) (Interpolator, error) {
	if upperWSS <= lowerWSS {
		return Interpolator{}, errors.New("interpolator: upper WSS anchor must exceed lower anchor")
	}
	if scoreAtLower < scoreAtUpper {
		return Interpolator{}, errors.New("interpolator: score requirement must not increase with WSS")
	}
	if scoreAtLower < 0 || scoreAtLower > 100 || scoreAtUpper < 0 || scoreAtUpper > 100 {
		return Interpolator{}, errors.New("interpolator: score anchors must lie within [0, 100]")
	}
	return Interpolator{
		lowerWSS:   lowerWSS,
		upperWSS:   upperWSS,
		lowerScore: scoreAtLower,
		upperScore: scoreAtUpper,
	}, nil
}

// Threshold returns the required minimum part score for a work with the
// given WSS, clamped to the nearer anchor outside the configured range.
func (i Interpolator) Threshold(wss float64) float64 {
	if wss <= i.lowerWSS {
		return i.lowerScore
	}
	if wss >= i.upperWSS {
		return i.upperScore
	}
	progress := (wss - i.lowerWSS) / (i.upperWSS - i.lowerWSS)
	return i.lowerScore + progress*(i.upperScore-i.lowerScore)
}
