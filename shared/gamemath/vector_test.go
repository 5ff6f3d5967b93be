package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Normalized(t *testing.T) {
	n := Vec(3, 4).Normalized()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)

	assert.Equal(t, Vec(1, 0), Vector{}.Normalized(), "zero vector falls back to +X")
}

func TestVector_Rotate(t *testing.T) {
	r := Vec(10, 0).Rotate(90)
	assert.InDelta(t, 0.0, r.X, 1e-9)
	assert.InDelta(t, 10.0, r.Y, 1e-9)

	assert.Equal(t, Vec(-2, 1), Vec(1, 2).Perp())
}

func TestForward(t *testing.T) {
	tests := []struct {
		deg  float64
		want Vector
	}{
		{0, Vec(1, 0)},
		{90, Vec(0, 1)},
		{180, Vec(-1, 0)},
		{270, Vec(0, -1)},
	}
	for _, tt := range tests {
		got := Forward(tt.deg)
		assert.InDelta(t, tt.want.X, got.X, 1e-9)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
	}
}

func TestVector_DistanceAndLerp(t *testing.T) {
	a, b := Vec(1, 1), Vec(4, 5)
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 5.0, b.Sub(a).Len())
	assert.Equal(t, Vec(2.5, 3), a.Lerp(b, 0.5))
	assert.Equal(t, 7.0, Vec(1, 2).Dot(Vec(3, 2)))
}
