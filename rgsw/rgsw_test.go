package rgsw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// exactDecomposer has shift=0 (baseLog*levels=64), so gadget decomposition
// is an exact, lossless base-256 digit expansion with no rounding error.
func exactDecomposer() Decomposer {
	return NewDecomposer(8, 8)
}

func TestExternalProductScalesPlainCiphertextExactly(t *testing.T) {
	r, err := ring.NewRing(8)
	require.NoError(t, err)
	d := exactDecomposer()
	ev := NewEvaluator(r)

	const x = ring.Scalar(5)
	gsw := TrivialConstant(r, x, d)

	ct := rlwe.NewCiphertext(r)
	for i := range ct.Value[0] {
		ct.Value[0][i] = ring.Scalar(i*3 + 1)
		ct.Value[1][i] = ring.Scalar(i*2 + 7)
	}

	out := rlwe.NewCiphertext(r)
	ev.ExternalProduct(gsw, ct, out)

	wantMask := r.NewPoly()
	wantBody := r.NewPoly()
	r.MulScalar(ct.Value[0], x, wantMask)
	r.MulScalar(ct.Value[1], x, wantBody)

	assert.Equal(t, wantMask, out.Value[0])
	assert.Equal(t, wantBody, out.Value[1])
}

func TestExternalProductByZeroIsZero(t *testing.T) {
	r, err := ring.NewRing(8)
	require.NoError(t, err)
	d := exactDecomposer()
	ev := NewEvaluator(r)

	gsw := TrivialConstant(r, 0, d)

	ct := rlwe.NewCiphertext(r)
	for i := range ct.Value[0] {
		ct.Value[0][i] = ring.Scalar(i + 1)
		ct.Value[1][i] = ring.Scalar(i + 9)
	}

	out := rlwe.NewCiphertext(r)
	ev.ExternalProduct(gsw, ct, out)

	assert.True(t, out.Value[0].Equals(r.NewPoly()))
	assert.True(t, out.Value[1].Equals(r.NewPoly()))
}

func TestInternalProductMatchesExternalProductRowwise(t *testing.T) {
	r, err := ring.NewRing(8)
	require.NoError(t, err)
	d := exactDecomposer()
	ev := NewEvaluator(r)

	const x = ring.Scalar(3)
	a := TrivialConstant(r, x, d)
	b := TrivialConstant(r, 7, d)

	out := ev.InternalProductNew(a, b)

	for i := range out.Rows {
		want := rlwe.NewCiphertext(r)
		ev.ExternalProduct(a, b.Rows[i], want)
		assert.Equal(t, want.Value[0], out.Rows[i].Value[0])
		assert.Equal(t, want.Value[1], out.Rows[i].Value[1])
	}
}

func TestEncryptDecryptRoundTripViaRow(t *testing.T) {
	r, err := ring.NewRing(16)
	require.NoError(t, err)
	prng, err := ring.NewKeyedPRNG([]byte("rgsw-test-fixed-seed"))
	require.NoError(t, err)
	gen := ring.NewGenerators(r, prng, prng, prng, 3.2, ring.Scalar(1<<10))
	secret := ring.NewBinarySampler(r, prng)
	sk := rlwe.NewSecretKey(r, secret)

	d := NewDecomposer(4, 10)
	const x = ring.Scalar(1) << 60
	ct := EncryptConstant(r, sk, x, d, gen)

	ptxt := r.NewPoly()
	ptxt[0] = x * d.Delta(0)

	est := Noise(r, sk, ct, ptxt)
	assert.Less(t, est.Log2Max, 40.0)
}
