package weierstrass

import (
	"fmt"
	"math/big"
)

// Point is a point on a short Weierstrass curve: either the point at
// infinity (the additive identity of the group) or a finite affine pair
// (x, y) with both coordinates in [0, P). The zero value is the point at
// infinity.
//
// Points are immutable; accessors return copies of the coordinates.
type Point struct {
	x, y   *big.Int
	finite bool
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the finite point (x, y). The coordinates are copied, so
// the caller may reuse the arguments. Coordinates must already be reduced
// into [0, P) for the curve the point will be used with; Curve operations
// only produce reduced coordinates.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		finite: true,
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if !p.finite || !q.finite {
		return p.finite == q.finite
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if !p.finite {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.x.Text(16), p.y.Text(16))
}
