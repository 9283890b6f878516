package weierstrass

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestGroupLawProperties(t *testing.T) {
	c := toyCurve(t)
	mustMult := func(k uint64) Point {
		p, err := c.ScalarBaseMult(new(big.Int).SetUint64(k))
		if err != nil {
			t.Fatalf("ScalarBaseMult(%d): %v", k, err)
		}
		return p
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("a·G + b·G == b·G + a·G", prop.ForAll(
		func(a, b uint64) bool {
			ab, err := c.Add(mustMult(a), mustMult(b))
			if err != nil {
				return false
			}
			ba, err := c.Add(mustMult(b), mustMult(a))
			if err != nil {
				return false
			}
			return ab.Equal(ba)
		},
		gen.UInt64Range(0, 1000),
		gen.UInt64Range(0, 1000),
	))

	properties.Property("(a+b)·G == a·G + b·G", prop.ForAll(
		func(a, b uint64) bool {
			sum, err := c.Add(mustMult(a), mustMult(b))
			if err != nil {
				return false
			}
			return sum.Equal(mustMult(a + b))
		},
		gen.UInt64Range(0, 1000),
		gen.UInt64Range(0, 1000),
	))

	properties.Property("(a·G + b·G) + c·G == a·G + (b·G + c·G)", prop.ForAll(
		func(a, b, d uint64) bool {
			left, err := c.Add(mustMult(a), mustMult(b))
			if err != nil {
				return false
			}
			left, err = c.Add(left, mustMult(d))
			if err != nil {
				return false
			}
			right, err := c.Add(mustMult(b), mustMult(d))
			if err != nil {
				return false
			}
			right, err = c.Add(mustMult(a), right)
			if err != nil {
				return false
			}
			return left.Equal(right)
		},
		gen.UInt64Range(0, 1000),
		gen.UInt64Range(0, 1000),
		gen.UInt64Range(0, 1000),
	))

	properties.Property("results stay on the curve", prop.ForAll(
		func(a uint64) bool {
			return c.IsOnCurve(mustMult(a))
		},
		gen.UInt64Range(0, 10000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestScalarBaseMultMatchesDecred checks the double-and-add loop against the
// production secp256k1 implementation for random 256-bit scalars.
func TestScalarBaseMultMatchesDecred(t *testing.T) {
	c := Secp256k1()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)
	properties.Property("k·G matches decred secp256k1", prop.ForAll(
		func(w0, w1, w2, w3 uint64) bool {
			k := scalarFromWords(w0, w1, w2, w3)
			ours, err := c.ScalarBaseMult(k)
			if err != nil {
				return false
			}

			var ks secp256k1.ModNScalar
			ks.SetByteSlice(k.Bytes())
			var jp secp256k1.JacobianPoint
			secp256k1.ScalarBaseMultNonConst(&ks, &jp)

			if ours.IsInfinity() {
				return jp.Z.IsZero()
			}
			jp.ToAffine()
			jp.X.Normalize()
			jp.Y.Normalize()

			var xb, yb [32]byte
			ours.X().FillBytes(xb[:])
			ours.Y().FillBytes(yb[:])
			return xb == *jp.X.Bytes() && yb == *jp.Y.Bytes()
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestLinearityLargeScalars(t *testing.T) {
	c := Secp256k1()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)
	properties.Property("(a+b)·G == a·G + b·G mod N", prop.ForAll(
		func(a0, a1, b0, b1 uint64) bool {
			a := scalarFromWords(0, 0, a0, a1)
			b := scalarFromWords(0, 0, b0, b1)

			pa, err := c.ScalarBaseMult(a)
			if err != nil {
				return false
			}
			pb, err := c.ScalarBaseMult(b)
			if err != nil {
				return false
			}
			sum, err := c.Add(pa, pb)
			if err != nil {
				return false
			}
			want, err := c.ScalarBaseMult(new(big.Int).Add(a, b))
			if err != nil {
				return false
			}
			return sum.Equal(want)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// scalarFromWords assembles a big-endian scalar from four 64-bit words.
func scalarFromWords(w0, w1, w2, w3 uint64) *big.Int {
	k := new(big.Int).SetUint64(w0)
	for _, w := range []uint64{w1, w2, w3} {
		k.Lsh(k, 64)
		k.Or(k, new(big.Int).SetUint64(w))
	}
	return k
}
