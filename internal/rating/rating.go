// Package rating computes an attraction's rating from its review scores.
//
// Ratings are never stored: callers pass the live set of scores on every read.
package rating

// Aggregate returns the mean of the present scores rounded half-up to one
// decimal place. Nil scores are ignored; with no present score the result is 0.
func Aggregate(scores []*int) float64 {
	sum, n := 0, 0
	for _, s := range scores {
		if s == nil {
			continue
		}
		sum += *s
		n++
	}
	if n == 0 {
		return 0
	}
	// round(10*sum/n) half-up, kept in integers so x.x5 never lands below the midpoint
	scaled := (20*sum + n) / (2 * n)
	return float64(scaled) / 10
}

// Rated reports whether at least one score is present.
func Rated(scores []*int) bool {
	for _, s := range scores {
		if s != nil {
			return true
		}
	}
	return false
}
