package rgsw

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergirovira/mfhe-brk/ring"
)

func TestDigitsOfZeroAreAllZero(t *testing.T) {
	d := NewDecomposer(4, 3)
	digits := d.Digits(0)
	for _, dg := range digits {
		assert.Equal(t, int64(0), dg)
	}
}

func TestDigitsExactReconstruction(t *testing.T) {
	d := NewDecomposer(4, 3)
	want := []int64{1, -2, 3}

	var x ring.Scalar
	for level, dg := range want {
		x += ring.Scalar(dg) * d.Delta(level)
	}

	got := d.Digits(x)
	assert.Equal(t, want, got)
}

func TestDigitsWithinRange(t *testing.T) {
	d := NewDecomposer(4, 3)
	half := int64(1) << (4 - 1)

	for _, x := range []ring.Scalar{0, 1 << 60, ^ring.Scalar(0), 1 << 62} {
		digits := d.Digits(x)
		for _, dg := range digits {
			assert.Greater(t, dg, -half-1)
			assert.LessOrEqual(t, dg, half)
		}
	}
}

func TestDeltaDecreasesPerLevel(t *testing.T) {
	d := NewDecomposer(4, 3)
	assert.Greater(t, d.Delta(0), d.Delta(1))
	assert.Greater(t, d.Delta(1), d.Delta(2))
}
