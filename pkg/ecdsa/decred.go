package ecdsa

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/curvekit/ecdsa-weierstrass/pkg/weierstrass"
)

// DecredPublicKey converts a public point on the secp256k1 curve into the
// decred secp256k1 representation, which is handy as an independent check
// of keys produced here. The conversion round-trips through the compressed
// encoding, so it only succeeds for points on secp256k1.
func DecredPublicKey(pub weierstrass.Point, c *weierstrass.Curve) (*secp256k1.PublicKey, error) {
	buf, err := SerializeCompressed(pub, c)
	if err != nil {
		return nil, err
	}
	key, err := secp256k1.ParsePubKey(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return key, nil
}

// DecredSignature converts a signature into the decred secp256k1
// representation so it can be verified against a decred public key.
func DecredSignature(sig *Signature, c *weierstrass.Curve) (*dcrecdsa.Signature, error) {
	if sig == nil || sig.R == nil || sig.S == nil {
		return nil, ErrInvalidSignatureEncoding
	}
	n := c.N()
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return nil, ErrInvalidSignatureEncoding
	}
	var r, s secp256k1.ModNScalar
	r.SetByteSlice(sig.R.Bytes())
	s.SetByteSlice(sig.S.Bytes())
	return dcrecdsa.NewSignature(&r, &s), nil
}
