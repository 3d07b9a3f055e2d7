// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Lerp performs standard linear interpolation.
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}
