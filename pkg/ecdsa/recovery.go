package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/curvekit/ecdsa-weierstrass/pkg/weierstrass"
)

// SignatureRecord pairs a signature with the digest it was produced over,
// the unit a nonce-reuse scan works on.
type SignatureRecord struct {
	Z   *big.Int // Digest mod N
	Sig *Signature
}

// RecoveryResult describes a private key recovered from a nonce-reuse scan.
type RecoveryResult struct {
	PrivateKey *big.Int
	Pair       [2]int // Indices of the signature pair used
	Verified   bool   // Whether the key was checked against a public point
}

// RecoverFromNonceReuse recovers the private key from two signatures that
// were produced with the same nonce over different digests:
//
//	d = (s2·z1 − s1·z2) / (r·(s1 − s2)) mod N
//
// Both signatures must share the same r (same nonce k); the digests must
// differ, otherwise the denominator vanishes.
func RecoverFromNonceReuse(z1, z2 *big.Int, sig1, sig2 *Signature, c *weierstrass.Curve) (*big.Int, error) {
	if sig1 == nil || sig2 == nil || z1 == nil || z2 == nil {
		return nil, errors.New("ecdsa: nil recovery input")
	}
	if sig1.R.Cmp(sig2.R) != 0 {
		return nil, errors.New("ecdsa: signatures do not share an r component")
	}
	n := c.N()

	num := new(big.Int).Mul(sig2.S, z1)
	num.Sub(num, new(big.Int).Mul(sig1.S, z2))
	num.Mod(num, n)

	den := new(big.Int).Sub(sig1.S, sig2.S)
	den.Mul(den, sig1.R)
	den.Mod(den, n)

	denInv, err := weierstrass.ModInverse(den, n)
	if err != nil {
		return nil, fmt.Errorf("recover private key: %w", err)
	}

	d := num.Mul(num, denInv)
	d.Mod(d, n)
	if d.Sign() == 0 {
		return nil, errors.New("ecdsa: recovered key is zero")
	}
	return d, nil
}

// FindNonceReuse scans a batch of signature records for pairs that share an
// r component and tries to recover the private key from each such pair.
// When pub is a finite point the candidate key is only accepted if it
// derives to pub; when pub is the point at infinity no key is available to
// check against and the first candidate is returned unverified.
//
// It returns nil when no reused nonce yields a key.
func FindNonceReuse(records []*SignatureRecord, pub weierstrass.Point, c *weierstrass.Curve) *RecoveryResult {
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			if records[i].Sig.R.Cmp(records[j].Sig.R) != 0 {
				continue
			}
			d, err := RecoverFromNonceReuse(records[i].Z, records[j].Z, records[i].Sig, records[j].Sig, c)
			if err != nil {
				continue
			}
			if pub.IsInfinity() {
				return &RecoveryResult{PrivateKey: d, Pair: [2]int{i, j}}
			}
			key, err := DeriveKeyPair(d, c)
			if err != nil || !key.Public.Equal(pub) {
				continue
			}
			return &RecoveryResult{PrivateKey: d, Pair: [2]int{i, j}, Verified: true}
		}
	}
	return nil
}
