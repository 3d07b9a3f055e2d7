// pkg/hexmap/utils.go
package hexmap

import "math"

// Sqrt3 is √3
const Sqrt3 = 1.7320508075688772935274463415059

// axialRound snaps a fractional axial coordinate to the nearest hex. All three cube components
// are rounded, then the one that moved the most is rebuilt from the other two so q+r+s stays zero.
func axialRound(q, r float64) Hex {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}
