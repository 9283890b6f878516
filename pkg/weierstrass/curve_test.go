package weierstrass

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyCurve returns y² = x³ + 2x + 2 over F_17 with generator (5, 1) of
// order 19. Small enough that every group element can be checked by hand.
func toyCurve(t *testing.T) *Curve {
	t.Helper()
	c, err := NewCurve(
		big.NewInt(2), big.NewInt(2),
		big.NewInt(17), big.NewInt(19),
		big.NewInt(5), big.NewInt(1),
	)
	require.NoError(t, err)
	return c
}

func TestSecp256k1Parameters(t *testing.T) {
	c := Secp256k1()

	assert.Zero(t, c.A().Sign())
	assert.Equal(t, int64(7), c.B().Int64())
	assert.Equal(t, 256, c.P().BitLen())
	assert.Equal(t, 256, c.N().BitLen())
	assert.True(t, c.IsOnCurve(c.G()))

	// Same shared instance on repeated calls.
	assert.Same(t, c, Secp256k1())
}

func TestNewCurveValidCustom(t *testing.T) {
	c := toyCurve(t)

	assert.Equal(t, int64(2), c.A().Int64())
	assert.Equal(t, int64(17), c.P().Int64())
	assert.True(t, c.IsOnCurve(c.G()))
}

func TestNewCurveRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name       string
		a, b, p, n int64
		gx, gy     int64
	}{
		{"composite field prime", 2, 2, 15, 19, 5, 1},
		{"composite group order", 2, 2, 17, 18, 5, 1},
		{"generator off curve", 2, 2, 17, 19, 5, 2},
		{"wrong group order", 2, 2, 17, 23, 5, 1},
		{"zero field prime", 2, 2, 0, 19, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCurve(
				big.NewInt(tt.a), big.NewInt(tt.b),
				big.NewInt(tt.p), big.NewInt(tt.n),
				big.NewInt(tt.gx), big.NewInt(tt.gy),
			)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCurve)
		})
	}
}

func TestNewCurveRejectsNilParameter(t *testing.T) {
	_, err := NewCurve(nil, big.NewInt(2), big.NewInt(17), big.NewInt(19), big.NewInt(5), big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidCurve)
}

func TestIsOnCurve(t *testing.T) {
	c := toyCurve(t)

	assert.True(t, c.IsOnCurve(Infinity()))
	assert.True(t, c.IsOnCurve(NewPoint(big.NewInt(6), big.NewInt(3))))
	assert.False(t, c.IsOnCurve(NewPoint(big.NewInt(6), big.NewInt(4))))

	// Coordinates outside [0, P) are rejected even when they satisfy the
	// equation mod P.
	assert.False(t, c.IsOnCurve(NewPoint(big.NewInt(6+17), big.NewInt(3))))
	assert.False(t, c.IsOnCurve(NewPoint(big.NewInt(6), big.NewInt(3-17))))
}

func TestPointAccessors(t *testing.T) {
	inf := Infinity()
	assert.True(t, inf.IsInfinity())
	assert.Nil(t, inf.X())
	assert.Nil(t, inf.Y())
	assert.Equal(t, "(infinity)", inf.String())

	p := NewPoint(big.NewInt(5), big.NewInt(1))
	assert.False(t, p.IsInfinity())
	assert.Equal(t, "(5, 1)", p.String())

	// Accessors hand out copies; mutating them must not touch the point.
	x := p.X()
	x.SetInt64(99)
	assert.Equal(t, int64(5), p.X().Int64())
}

func TestPointEqual(t *testing.T) {
	p := NewPoint(big.NewInt(5), big.NewInt(1))
	q := NewPoint(big.NewInt(5), big.NewInt(1))
	r := NewPoint(big.NewInt(5), big.NewInt(16))

	assert.True(t, p.Equal(q))
	assert.False(t, p.Equal(r))
	assert.False(t, p.Equal(Infinity()))
	assert.True(t, Infinity().Equal(Infinity()))
}
