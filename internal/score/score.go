package score

import "math"

// Popularity converts a recording count into a part popularity value using
// log(1 + n); natural log keeps diminishing returns on heavily recorded
// parts.
func Popularity(recordingCount int) float64 {
	if recordingCount < 0 {
		recordingCount = 0
	}
	return math.Log(1 + float64(recordingCount))
}

// Significance computes the WSS of a work from its parts' popularities:
// (1-alpha)*avg + alpha*max. Alpha 0 scores by the average part, alpha 1 by
// the single most popular part. An empty slice yields 0; callers drop such
// works before scoring.
func Significance(popularities []float64, alpha float64) float64 {
	if len(popularities) == 0 {
		return 0
	}
	sum, max := 0.0, popularities[0]
	for _, p := range popularities {
		sum += p
		if p > max {
			max = p
		}
	}
	avg := sum / float64(len(popularities))
	return (1-alpha)*avg + alpha*max
}

// Relative maps a part popularity onto the 0-100 scale where 100 is the
// work's most popular part, rounded to two decimals. Zero max popularity
// defines the score as 0.
func Relative(popularity, maxPopularity float64) float64 {
	if maxPopularity <= 0 {
		return 0
	}
	return Round2(popularity / maxPopularity * 100)
}

// Round2 rounds to two decimal places, the precision carried into the
// output artifact.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
