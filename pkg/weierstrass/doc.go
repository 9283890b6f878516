// Package weierstrass implements affine point arithmetic over short
// Weierstrass curves y² = x³ + Ax + B defined over a prime field.
//
// A curve is described by an immutable Curve value holding the coefficients
// A and B, the field prime P, the order N of the subgroup generated by the
// base point G, and G itself. Every operation takes the curve explicitly;
// there is no package-level mutable state, so a single Curve can be shared
// freely across goroutines.
//
// # Quick Start
//
//	import "github.com/curvekit/ecdsa-weierstrass/pkg/weierstrass"
//
//	curve := weierstrass.Secp256k1()
//
//	// Q = k·G
//	q, err := curve.ScalarBaseMult(k)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(q.X().Text(16), q.Y().Text(16))
//
// Points are a tagged variant: either the point at infinity (the additive
// identity of the group) or a finite affine pair (x, y). The identity is
// handled explicitly by Add, Double and ScalarMult rather than being encoded
// as a (0, 0) coordinate pair.
//
// Custom curves are built with NewCurve, which validates the parameters up
// front: P and N must be prime, G must satisfy the curve equation, and G
// must have order N.
//
// The scalar multiplication loop is a plain left-to-right double-and-add and
// is not constant time. Do not use this package to handle secrets on hosts
// where an attacker can measure timing; it is written for clarity and for
// protocol work where the scalars are public or the environment is trusted.
package weierstrass
