package rgsw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

func TestExternalProductFourierMatchesExternalProduct(t *testing.T) {
	r, err := ring.NewRing(16)
	require.NoError(t, err)
	d := NewDecomposer(4, 10)
	ev := NewEvaluator(r)

	prng, err := ring.NewKeyedPRNG([]byte("rgsw-fourier-test-seed"))
	require.NoError(t, err)
	gen := ring.NewGenerators(r, prng, prng, prng, 3.2, ring.Scalar(1<<10))
	secret := ring.NewBinarySampler(r, prng)
	sk := rlwe.NewSecretKey(r, secret)

	gsw := EncryptConstant(r, sk, 5, d, gen)
	fourierGSW := ev.ToFourier(gsw)

	ct := rlwe.EncryptSK(r, sk, r.NewPoly(), gen)

	want := rlwe.NewCiphertext(r)
	ev.ExternalProduct(gsw, ct, want)

	got := rlwe.NewCiphertext(r)
	ev.ExternalProductFourier(fourierGSW, ct, got)

	for i := range want.Value[0] {
		diffMask := ring.SignedScalar(want.Value[0][i] - got.Value[0][i])
		diffBody := ring.SignedScalar(want.Value[1][i] - got.Value[1][i])
		if diffMask < 0 {
			diffMask = -diffMask
		}
		if diffBody < 0 {
			diffBody = -diffBody
		}
		assert.Less(t, diffMask, int64(1<<10))
		assert.Less(t, diffBody, int64(1<<10))
	}
}
