package rlwe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergirovira/mfhe-brk/encoding"
	"github.com/sergirovira/mfhe-brk/ring"
)

func testFixture(t *testing.T) (*ring.Ring, *ring.Generators, *ring.BinarySampler) {
	r, err := ring.NewRing(64)
	require.NoError(t, err)
	prng, err := ring.NewKeyedPRNG([]byte("rlwe-test-fixed-seed"))
	require.NoError(t, err)
	gen := ring.NewGenerators(r, prng, prng, prng, 3.2, ring.Scalar(1<<10))
	secret := ring.NewBinarySampler(r, prng)
	return r, gen, secret
}

func TestEncryptDecryptSecretKeyRoundTrip(t *testing.T) {
	r, gen, secret := testFixture(t)
	sk := NewSecretKey(r, secret)

	pt := r.NewPoly()
	pt[0] = encoding.EncodeBinary(1)

	ct := EncryptSK(r, sk, pt, gen)
	got := DecryptNew(r, sk, ct)

	assert.Equal(t, uint64(1), encoding.DecodeBinary(got[0]))
}

func TestEncryptDecryptSecretKeyZero(t *testing.T) {
	r, gen, secret := testFixture(t)
	sk := NewSecretKey(r, secret)

	pt := r.NewPoly()
	pt[0] = encoding.EncodeBinary(0)

	ct := EncryptSK(r, sk, pt, gen)
	got := DecryptNew(r, sk, ct)

	assert.Equal(t, uint64(0), encoding.DecodeBinary(got[0]))
}

func TestAdditiveHomomorphism(t *testing.T) {
	r, gen, secret := testFixture(t)
	sk := NewSecretKey(r, secret)

	pt1 := r.NewPoly()
	pt1[0] = encoding.EncodeBinary(1)
	pt2 := r.NewPoly()
	pt2[0] = encoding.EncodeBinary(0)

	ct1 := EncryptSK(r, sk, pt1, gen)
	ct2 := EncryptSK(r, sk, pt2, gen)

	ct1.Add(r, ct2)
	got := DecryptNew(r, sk, ct1)

	// 1 XOR-like addition in the encoded domain: q/2 + 0 = q/2, still decodes to 1.
	assert.Equal(t, uint64(1), encoding.DecodeBinary(got[0]))
}

func TestSharedMaskPublicKeyRoundTrip(t *testing.T) {
	r, gen, secret := testFixture(t)

	const parties = 3
	const width = 8

	keys := make([]*SecretKey, parties)
	joint := ZeroSecretKey(r)
	for i := range keys {
		keys[i] = NewSecretKey(r, secret)
		joint.Add(r, keys[i])
	}

	pk := NewPublicKeyMask(r, gen.Uniform, width)
	for i := range keys {
		pk.AddShare(r, keys[i], gen.Noise)
	}

	pt := r.NewPoly()
	pt[0] = encoding.EncodeBinary(1)

	ct := EncryptPK(r, pk, pt, gen)
	got := DecryptNew(r, joint, ct)

	assert.Equal(t, uint64(1), encoding.DecodeBinary(got[0]))
}

func TestNoiseBinaryReportsFiniteEstimate(t *testing.T) {
	r, gen, secret := testFixture(t)
	sk := NewSecretKey(r, secret)

	ptxt := make([]uint64, r.N)
	ptxt[0] = 1

	pt := r.NewPoly()
	for i, x := range ptxt {
		pt[i] = encoding.EncodeBinary(x)
	}

	ct := EncryptSK(r, sk, pt, gen)
	est := NoiseBinary(r, sk, ct, ptxt)

	assert.GreaterOrEqual(t, est.Log2Max, 0.0)
}
