package weierstrass

import (
	"fmt"
	"math/big"
)

var three = big.NewInt(3)

// ModInverse returns a⁻¹ mod m such that a·a⁻¹ ≡ 1 (mod m). It returns
// ErrNotInvertible when gcd(a, m) ≠ 1, which for a prime modulus means
// a ≡ 0 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil || m.Sign() <= 0 {
		return nil, ErrNotInvertible
	}
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrNotInvertible
	}
	return inv, nil
}

// Add returns p1 + p2 on the curve.
//
// The identity and inverse cases are resolved before the chord formula:
// adding the point at infinity returns the other operand, adding a point to
// its own inverse (same x, opposite y) returns infinity, and adding a point
// to itself delegates to Double, since the chord slope divides by zero when
// the operands coincide.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if p1.IsInfinity() {
		return p2, nil
	}
	if p2.IsInfinity() {
		return p1, nil
	}
	if p1.x.Cmp(p2.x) == 0 {
		if p1.y.Cmp(p2.y) == 0 {
			return c.Double(p1)
		}
		// Same x, distinct y: the points are inverses and the chord is
		// vertical.
		return Infinity(), nil
	}

	// λ = (y2 − y1) / (x2 − x1) mod P
	dx := new(big.Int).Sub(p2.x, p1.x)
	dx.Mod(dx, c.p)
	inv, err := ModInverse(dx, c.p)
	if err != nil {
		return Point{}, fmt.Errorf("point addition: %w", err)
	}
	lambda := new(big.Int).Sub(p2.y, p1.y)
	lambda.Mul(lambda, inv)
	lambda.Mod(lambda, c.p)

	// x3 = λ² − x1 − x2,  y3 = λ(x1 − x3) − y1
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3, finite: true}, nil
}

// Double returns 2·p on the curve. Doubling the point at infinity or a
// point with y = 0 (vertical tangent) returns the point at infinity.
func (c *Curve) Double(p Point) (Point, error) {
	if p.IsInfinity() {
		return p, nil
	}
	if p.y.Sign() == 0 {
		return Infinity(), nil
	}

	// λ = (3x² + A) / 2y mod P
	den := new(big.Int).Lsh(p.y, 1)
	den.Mod(den, c.p)
	inv, err := ModInverse(den, c.p)
	if err != nil {
		return Point{}, fmt.Errorf("point doubling: %w", err)
	}
	lambda := new(big.Int).Mul(p.x, p.x)
	lambda.Mul(lambda, three)
	lambda.Add(lambda, c.a)
	lambda.Mul(lambda, inv)
	lambda.Mod(lambda, c.p)

	// x' = λ² − 2x,  y' = λ(x − x') − y
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, p.x)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3, finite: true}, nil
}

// ScalarMult returns k·p computed by left-to-right double-and-add over the
// binary representation of k. A zero scalar yields the point at infinity;
// negative scalars are rejected with ErrInvalidScalar, callers must reduce
// mod N first where that is the intended semantics.
//
// The loop branches on the bits of k and is therefore not constant time.
func (c *Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, ErrInvalidScalar
	}
	acc := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error
		acc, err = c.Double(acc)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			acc, err = c.Add(acc, p)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return acc, nil
}

// ScalarBaseMult returns k·G for the curve's base point.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMult(c.g, k)
}

// Negate returns −p, the reflection of p across the x axis.
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	y := new(big.Int).Neg(p.y)
	y.Mod(y, c.p)
	return Point{x: new(big.Int).Set(p.x), y: y, finite: true}
}
