package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/curvekit/ecdsa-weierstrass/pkg/weierstrass"
)

// Signature is an ECDSA signature. Both components lie in [1, N).
type Signature struct {
	R *big.Int
	S *big.Int
}

// Sign produces a signature over the digest h with the private scalar d and
// the caller-supplied nonce k:
//
//	r = (k·G).x mod N
//	s = k⁻¹ · (h + r·d) mod N
//
// Sign is deterministic in its inputs. k must be unique and unpredictable
// per signature; if k·G is the point at infinity or either component comes
// out zero, ErrInvalidNonce is returned and the caller must retry with a
// fresh nonce.
func Sign(h, d, k *big.Int, c *weierstrass.Curve) (*Signature, error) {
	if h == nil {
		return nil, errors.New("ecdsa: nil digest")
	}
	if err := checkPrivateScalar(d, c); err != nil {
		return nil, err
	}
	n := c.N()
	if k == nil || k.Sign() <= 0 || k.Cmp(n) >= 0 {
		return nil, ErrInvalidNonce
	}

	rp, err := c.ScalarBaseMult(k)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	if rp.IsInfinity() {
		return nil, ErrInvalidNonce
	}
	r := new(big.Int).Mod(rp.X(), n)
	if r.Sign() == 0 {
		return nil, ErrInvalidNonce
	}

	kInv, err := weierstrass.ModInverse(k, n)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	s := new(big.Int).Mul(r, d)
	s.Add(s, new(big.Int).Mod(h, n))
	s.Mul(s, kInv)
	s.Mod(s, n)
	if s.Sign() == 0 {
		return nil, ErrInvalidNonce
	}

	return &Signature{R: r, S: s}, nil
}

// Verify reports whether sig is a valid signature over the digest h for the
// public point pub. A signature that is well formed but does not match
// yields (false, nil); components outside [1, N) yield
// ErrInvalidSignatureEncoding.
func Verify(h *big.Int, pub weierstrass.Point, sig *Signature, c *weierstrass.Curve) (bool, error) {
	if h == nil {
		return false, errors.New("ecdsa: nil digest")
	}
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, ErrInvalidSignatureEncoding
	}
	n := c.N()
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return false, ErrInvalidSignatureEncoding
	}
	if pub.IsInfinity() || !c.IsOnCurve(pub) {
		return false, nil
	}

	w, err := weierstrass.ModInverse(sig.S, n)
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	u1 := new(big.Int).Mod(h, n)
	u1.Mul(u1, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	p1, err := c.ScalarBaseMult(u1)
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	p2, err := c.ScalarMult(pub, u2)
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	sum, err := c.Add(p1, p2)
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	if sum.IsInfinity() {
		return false, nil
	}
	x := new(big.Int).Mod(sum.X(), n)
	return x.Cmp(sig.R) == 0, nil
}
