// pkg/hexmap/hex.go
package hexmap

import "hex-tactics/pkg/utils"

// Hex is a tile address in axial coordinates (Q, R).
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Point is a screen-space position.
type Point struct {
	X, Y float64
}

// NeighborDirections defines the 6 axial offsets starting from East and going counter-clockwise:
// E, NE, NW, W, SW, SE. Neighbors relies on this order.
var NeighborDirections = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Cube returns the cube coordinates (x, y, z) of the hex.
func (h Hex) Cube() (x, y, z int) {
	return h.Q, h.R, h.S()
}

// Neighbors returns the six adjacent coordinates in NeighborDirections order.
// Whether they exist on a map is up to the caller.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range NeighborDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// Add returns the sum of two hexes.
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract returns the difference of two hexes.
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Distance computes the cube distance between two hexes.
func (h Hex) Distance(to Hex) int {
	x, y, z := h.Subtract(to).Cube()
	return (utils.Abs(x) + utils.Abs(y) + utils.Abs(z)) / 2
}

// Within returns every coordinate whose distance from center is at most radius, center included.
func Within(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	results := make([]Hex, 0, 3*radius*(radius+1)+1)
	for dq := -radius; dq <= radius; dq++ {
		r1 := max(-radius, -dq-radius)
		r2 := min(radius, -dq+radius)
		for dr := r1; dr <= r2; dr++ {
			results = append(results, center.Add(Hex{dq, dr}))
		}
	}
	return results
}

// ToPixel converts the hex center to screen coordinates (flat top orientation).
func (h Hex) ToPixel(hexSize float64, origin Point) Point {
	x := hexSize * (3.0 / 2.0) * float64(h.Q)
	y := hexSize * Sqrt3 * (float64(h.R) + float64(h.Q)/2)
	return Point{X: origin.X + x, Y: origin.Y + y}
}

// PixelToHex converts screen coordinates to the hex containing them (flat top orientation).
func PixelToHex(p Point, hexSize float64, origin Point) Hex {
	x := p.X - origin.X
	y := p.Y - origin.Y
	q := (2.0 / 3 * x) / hexSize
	r := (-x/3 + Sqrt3/3*y) / hexSize
	return axialRound(q, r)
}
