package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFourierForwardInverseRoundTrip(t *testing.T) {
	r := testRing(t, 16)
	f := NewFourier(r.N)

	p := r.NewPoly()
	for i := range p {
		p[i] = Scalar(i - r.N/2)
	}

	fp := f.NewFourierPoly()
	f.Forward(p, fp)

	out := r.NewPoly()
	f.Inverse(fp, out)

	assert.Equal(t, p, out)
}

func TestFourierMulAddToMatchesNegacyclicProduct(t *testing.T) {
	r := testRing(t, 8)
	f := NewFourier(r.N)

	a := r.NewPoly()
	a[1] = 1 // a = X
	b := r.NewPoly()
	b[0] = 3
	b[1] = 5 // b = 3 + 5X

	fa, fb := f.NewFourierPoly(), f.NewFourierPoly()
	f.Forward(a, fa)
	f.Forward(b, fb)

	acc := make(FourierPoly, len(fa))
	f.MulAddTo(fa, fb, acc)

	got := r.NewPoly()
	f.Inverse(acc, got)

	// X * (3 + 5X) = 3X + 5X^2
	want := r.NewPoly()
	want[1] = 3
	want[2] = 5

	assert.Equal(t, want, got)
}
