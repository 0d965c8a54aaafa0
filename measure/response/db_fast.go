//go:build fastmath

package response

import "github.com/meko-christian/algo-approx"

// ln10 is the natural logarithm of 10, used for the log base conversion.
const ln10 = 2.302585092994045684017991454684

// magnitudeToDB converts a linear magnitude to dB using fast approximation.
// Uses the identity: log10(x) = ln(x) / ln(10).
func magnitudeToDB(x float64) float64 {
	return 20 * approx.FastLog(x) / ln10
}
