//go:build !fastmath

package response

import "math"

// magnitudeToDB converts a linear magnitude to dB using standard library math.
func magnitudeToDB(x float64) float64 {
	return 20 * math.Log10(x)
}
