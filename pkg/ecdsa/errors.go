package ecdsa

import "errors"

// Common errors returned by the protocol layer. Range errors on private
// scalars reuse weierstrass.ErrInvalidScalar.
var (
	// ErrInvalidNonce is returned by Sign when the nonce is outside [1, N)
	// or produces a zero r or s component. The caller must retry with a
	// fresh nonce.
	ErrInvalidNonce = errors.New("ecdsa: nonce is unusable for signing")

	// ErrInvalidSignatureEncoding is returned when a signature component
	// lies outside [1, N) or a serialized signature has the wrong length.
	ErrInvalidSignatureEncoding = errors.New("ecdsa: signature component outside [1, N)")

	// ErrInvalidPublicKey is returned when a serialized public key cannot
	// be decoded to a point on the curve.
	ErrInvalidPublicKey = errors.New("ecdsa: malformed public key encoding")
)
