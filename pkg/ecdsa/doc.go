// Package ecdsa implements ECDSA key derivation, signing and verification
// on top of the affine curve arithmetic in pkg/weierstrass.
//
// The protocol layer is purely functional: every call takes the curve, the
// scalars and the digest explicitly and returns new values. Nonce generation
// is deliberately out of scope; Sign takes the nonce k as an argument and
// the caller is responsible for making it unique and unpredictable per
// signature. Reusing a nonce across two digests leaks the private key, see
// RecoverFromNonceReuse.
//
//	curve := weierstrass.Secp256k1()
//	key, err := ecdsa.DeriveKeyPair(d, curve)
//	sig, err := ecdsa.Sign(h, key.D, k, curve)
//	ok, err := ecdsa.Verify(h, key.Public, sig, curve)
package ecdsa
