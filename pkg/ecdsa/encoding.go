package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/curvekit/ecdsa-weierstrass/pkg/weierstrass"
)

// Serialization prefixes per SEC 1, section 2.3.3.
const (
	prefixEven         = 0x02
	prefixOdd          = 0x03
	prefixUncompressed = 0x04
)

// coordinateLen returns the fixed byte width of a field element for the
// curve.
func coordinateLen(c *weierstrass.Curve) int {
	return (c.P().BitLen() + 7) / 8
}

// scalarLen returns the fixed byte width of a scalar mod N for the curve.
func scalarLen(c *weierstrass.Curve) int {
	return (c.N().BitLen() + 7) / 8
}

// SerializeCompressed returns the compressed encoding of a public point:
// one parity prefix byte (0x02 for even y, 0x03 for odd y) followed by the
// big-endian x coordinate. The point at infinity has no encoding.
func SerializeCompressed(pub weierstrass.Point, c *weierstrass.Curve) ([]byte, error) {
	if pub.IsInfinity() {
		return nil, fmt.Errorf("%w: point at infinity", ErrInvalidPublicKey)
	}
	size := coordinateLen(c)
	out := make([]byte, 1+size)
	out[0] = prefixEven
	if pub.Y().Bit(0) == 1 {
		out[0] = prefixOdd
	}
	pub.X().FillBytes(out[1:])
	return out, nil
}

// SerializeUncompressed returns the uncompressed encoding of a public
// point: the 0x04 prefix followed by the big-endian x and y coordinates.
func SerializeUncompressed(pub weierstrass.Point, c *weierstrass.Curve) ([]byte, error) {
	if pub.IsInfinity() {
		return nil, fmt.Errorf("%w: point at infinity", ErrInvalidPublicKey)
	}
	size := coordinateLen(c)
	out := make([]byte, 1+2*size)
	out[0] = prefixUncompressed
	pub.X().FillBytes(out[1 : 1+size])
	pub.Y().FillBytes(out[1+size:])
	return out, nil
}

// ParsePublicKey decodes a compressed or uncompressed public key and checks
// that the result lies on the curve. Decompression solves the curve
// equation for y with a modular square root and picks the root matching the
// parity prefix.
func ParsePublicKey(data []byte, c *weierstrass.Curve) (weierstrass.Point, error) {
	size := coordinateLen(c)
	if len(data) == 0 {
		return weierstrass.Point{}, fmt.Errorf("%w: empty input", ErrInvalidPublicKey)
	}

	switch data[0] {
	case prefixEven, prefixOdd:
		if len(data) != 1+size {
			return weierstrass.Point{}, fmt.Errorf("%w: compressed key must be %d bytes", ErrInvalidPublicKey, 1+size)
		}
		p := c.P()
		x := new(big.Int).SetBytes(data[1:])
		if x.Cmp(p) >= 0 {
			return weierstrass.Point{}, fmt.Errorf("%w: x coordinate not reduced mod P", ErrInvalidPublicKey)
		}

		// y² = x³ + Ax + B mod P
		y2 := new(big.Int).Mul(x, x)
		y2.Mul(y2, x)
		y2.Add(y2, new(big.Int).Mul(c.A(), x))
		y2.Add(y2, c.B())
		y2.Mod(y2, p)

		y := new(big.Int).ModSqrt(y2, p)
		if y == nil {
			return weierstrass.Point{}, fmt.Errorf("%w: x is not on the curve", ErrInvalidPublicKey)
		}
		wantOdd := data[0] == prefixOdd
		if (y.Bit(0) == 1) != wantOdd {
			y.Sub(p, y)
		}
		pt := weierstrass.NewPoint(x, y)
		if !c.IsOnCurve(pt) {
			return weierstrass.Point{}, fmt.Errorf("%w: decoded point fails the curve equation", ErrInvalidPublicKey)
		}
		return pt, nil

	case prefixUncompressed:
		if len(data) != 1+2*size {
			return weierstrass.Point{}, fmt.Errorf("%w: uncompressed key must be %d bytes", ErrInvalidPublicKey, 1+2*size)
		}
		x := new(big.Int).SetBytes(data[1 : 1+size])
		y := new(big.Int).SetBytes(data[1+size:])
		pt := weierstrass.NewPoint(x, y)
		if !c.IsOnCurve(pt) {
			return weierstrass.Point{}, fmt.Errorf("%w: point is not on the curve", ErrInvalidPublicKey)
		}
		return pt, nil

	default:
		return weierstrass.Point{}, fmt.Errorf("%w: unknown prefix 0x%02x", ErrInvalidPublicKey, data[0])
	}
}

// Serialize returns the fixed-width big-endian r‖s encoding of the
// signature, 2·⌈log₂(N)/8⌉ bytes for the curve.
func (sig *Signature) Serialize(c *weierstrass.Curve) []byte {
	size := scalarLen(c)
	out := make([]byte, 2*size)
	sig.R.FillBytes(out[:size])
	sig.S.FillBytes(out[size:])
	return out
}

// ParseSignature decodes a fixed-width r‖s signature and validates that
// both components lie in [1, N).
func ParseSignature(data []byte, c *weierstrass.Curve) (*Signature, error) {
	size := scalarLen(c)
	if len(data) != 2*size {
		return nil, fmt.Errorf("%w: signature must be %d bytes", ErrInvalidSignatureEncoding, 2*size)
	}
	n := c.N()
	r := new(big.Int).SetBytes(data[:size])
	s := new(big.Int).SetBytes(data[size:])
	if r.Sign() == 0 || r.Cmp(n) >= 0 || s.Sign() == 0 || s.Cmp(n) >= 0 {
		return nil, ErrInvalidSignatureEncoding
	}
	return &Signature{R: r, S: s}, nil
}
