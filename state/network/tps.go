package network

import "math"

// Tps converts a window's totals into transactions per second. The
// elapsed time saturates at zero on the lower bound and a NaN or Inf
// quotient comes back as 0; callers always see a finite rate.
func Tps(oldest int64, newest int64, count uint64) float64 {
	elapsed := newest - oldest
	if elapsed < 0 {
		elapsed = 0
	}
	tps := float64(count) / float64(elapsed)
	if math.IsNaN(tps) || math.IsInf(tps, 0) {
		tps = 0
	}
	return tps
}
