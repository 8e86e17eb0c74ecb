package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRing(t *testing.T, N int) *Ring {
	r, err := NewRing(N)
	require.NoError(t, err)
	return r
}

func samplePoly(N int) Poly {
	p := make(Poly, N)
	for i := range p {
		p[i] = Scalar(i*7 + 3)
	}
	return p
}

func TestUpdateWithProductMonomialComposition(t *testing.T) {
	r := testRing(t, 16)

	d1, d2 := 5, 9
	combined := samplePoly(r.N)
	r.UpdateWithProductMonomial(combined, d1+d2)

	sequential := samplePoly(r.N)
	r.UpdateWithProductMonomial(sequential, d1)
	r.UpdateWithProductMonomial(sequential, d2)

	assert.Equal(t, combined, sequential)
}

func TestUpdateWithProductMonomialIdentityAt2N(t *testing.T) {
	r := testRing(t, 32)
	p := samplePoly(r.N)
	original := p.CopyNew()

	r.UpdateWithProductMonomial(p, 2*r.N)

	assert.Equal(t, original, p)
}

func TestUpdateWithProductMonomialNegatesAtN(t *testing.T) {
	r := testRing(t, 32)
	p := samplePoly(r.N)
	original := p.CopyNew()

	r.UpdateWithProductMonomial(p, r.N)

	for i := range p {
		assert.Equal(t, -original[i], p[i])
	}
}

func TestUpdateWithProductMonomialInverseRoundTrip(t *testing.T) {
	r := testRing(t, 64)
	p := samplePoly(r.N)
	original := p.CopyNew()

	r.UpdateWithProductMonomial(p, 37)
	r.UpdateWithProductMonomialInverse(p, 37)

	assert.Equal(t, original, p)
}
