package weierstrass

import (
	"fmt"
	"math/big"
	"sync"
)

// primalityRounds is the number of Miller-Rabin rounds used to validate P
// and N at construction time.
const primalityRounds = 64

// Curve holds the parameters of a short Weierstrass curve
// y² = x³ + Ax + B over the prime field F_P, together with the order N of
// the subgroup generated by the base point G. A Curve is immutable once
// constructed and safe for concurrent use without synchronization.
type Curve struct {
	a, b *big.Int
	p    *big.Int
	n    *big.Int
	g    Point
}

// NewCurve builds a curve from its raw parameters and validates them:
// P and N must be prime, the generator (gx, gy) must satisfy the curve
// equation, and the generator must have order N. A configuration error here
// is a caller bug, so NewCurve fails instead of letting bad parameters
// surface deep inside the arithmetic.
func NewCurve(a, b, p, n, gx, gy *big.Int) (*Curve, error) {
	if a == nil || b == nil || p == nil || n == nil || gx == nil || gy == nil {
		return nil, fmt.Errorf("%w: nil parameter", ErrInvalidCurve)
	}
	if p.Sign() <= 0 || !p.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: field prime P is not prime", ErrInvalidCurve)
	}
	if n.Sign() <= 0 || !n.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: group order N is not prime", ErrInvalidCurve)
	}

	c := &Curve{
		a: new(big.Int).Mod(a, p),
		b: new(big.Int).Mod(b, p),
		p: new(big.Int).Set(p),
		n: new(big.Int).Set(n),
	}
	g := NewPoint(new(big.Int).Mod(gx, p), new(big.Int).Mod(gy, p))
	if !c.IsOnCurve(g) {
		return nil, fmt.Errorf("%w: generator is not on the curve", ErrInvalidCurve)
	}
	c.g = g

	// G must generate a subgroup of order exactly N, i.e. N·G = infinity.
	ng, err := c.ScalarMult(g, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
	}
	if !ng.IsInfinity() {
		return nil, fmt.Errorf("%w: generator does not have order N", ErrInvalidCurve)
	}
	return c, nil
}

// A returns a copy of the curve coefficient A.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the curve coefficient B.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// P returns a copy of the field prime.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// N returns a copy of the group order.
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }

// G returns the base point.
func (c *Curve) G() Point { return c.g }

// IsOnCurve reports whether p satisfies y² = x³ + Ax + B (mod P) with both
// coordinates in [0, P). The point at infinity is a group element and
// reports true.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}
	if pt.x.Sign() < 0 || pt.x.Cmp(c.p) >= 0 || pt.y.Sign() < 0 || pt.y.Cmp(c.p) >= 0 {
		return false
	}
	lhs := new(big.Int).Mul(pt.y, pt.y)
	lhs.Mod(lhs, c.p)

	rhs := new(big.Int).Mul(pt.x, pt.x)
	rhs.Mul(rhs, pt.x)
	rhs.Add(rhs, new(big.Int).Mul(c.a, pt.x))
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)

	return lhs.Cmp(rhs) == 0
}

var (
	secp256k1Once  sync.Once
	secp256k1Curve *Curve
)

// Secp256k1 returns the secp256k1 curve (y² = x³ + 7). The returned value
// is shared and immutable.
//
// Parameters per SEC 2 v2, section 2.4.1.
func Secp256k1() *Curve {
	secp256k1Once.Do(func() {
		p, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
		n, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
		gx, _ := new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
		gy, _ := new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)

		c, err := NewCurve(big.NewInt(0), big.NewInt(7), p, n, gx, gy)
		if err != nil {
			panic("weierstrass: secp256k1 parameters failed validation: " + err.Error())
		}
		secp256k1Curve = c
	})
	return secp256k1Curve
}
