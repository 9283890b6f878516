package ecdsa

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/curvekit/ecdsa-weierstrass/pkg/weierstrass"
)

// KeyPair couples a private scalar d with its public point Q = d·G.
type KeyPair struct {
	D      *big.Int          // Private scalar in [1, N)
	Public weierstrass.Point // Q = d·G
}

// DeriveKeyPair computes the public point for the private scalar d on the
// given curve. d must lie in [1, N); anything else is rejected with
// weierstrass.ErrInvalidScalar.
func DeriveKeyPair(d *big.Int, c *weierstrass.Curve) (*KeyPair, error) {
	if err := checkPrivateScalar(d, c); err != nil {
		return nil, err
	}
	pub, err := c.ScalarBaseMult(d)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	return &KeyPair{D: new(big.Int).Set(d), Public: pub}, nil
}

// HashMessage hashes a message with SHA-256 and returns the digest as an
// integer reduced mod the curve order, ready to be passed to Sign or
// Verify.
func HashMessage(message []byte, c *weierstrass.Curve) *big.Int {
	h := sha256.Sum256(message)
	z := new(big.Int).SetBytes(h[:])
	return z.Mod(z, c.N())
}

func checkPrivateScalar(d *big.Int, c *weierstrass.Curve) error {
	if d == nil || d.Sign() <= 0 || d.Cmp(c.N()) >= 0 {
		return weierstrass.ErrInvalidScalar
	}
	return nil
}
