// Package response measures the frequency response of fixed-point block
// filters. It drives a filter with a unit impulse, collects the response,
// and turns it into a magnitude spectrum via FFT, so tests and tools can
// verify corner placement, peak location, and band gains numerically
// instead of eyeballing time-domain output.
//
// This is analysis tooling: unlike the filter kernels it allocates freely
// and works in float64.
package response
