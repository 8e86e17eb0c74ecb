package lwe

import "github.com/sergirovira/mfhe-brk/ring"

// PublicKey is the shared-mask multiparty LWE public key of spec
// section 3: a length-m list of LWE ciphertexts where every party
// shares an identical random mask vector, and each body is the sum of
// per-party encryptions of zero under that shared mask.
type PublicKey struct {
	Mask [][]ring.Scalar // shared across all parties, length m, each of dimension n
	Body []ring.Scalar   // aggregated sum of per-party zero-encryptions, length m
}

// NewPublicKeyMask samples the shared random mask component from the
// uniform generator; every party calls this with the same CRS-derived
// uniform sampler to agree on Mask.
func NewPublicKeyMask(uniform *ring.UniformSampler, n, m int) *PublicKey {
	pk := &PublicKey{
		Mask: make([][]ring.Scalar, m),
		Body: make([]ring.Scalar, m),
	}
	for i := 0; i < m; i++ {
		pk.Mask[i] = make([]ring.Scalar, n)
		uniform.ReadScalars(pk.Mask[i])
	}
	return pk
}

// AddShare accumulates one party's encryption-of-zero share onto the
// aggregate body, under the shared mask already present in pk.Mask
// (mirrors rlwe.PublicKey.AddShare, generalized to the LWE case).
func (pk *PublicKey) AddShare(sk *SecretKey, noise *ring.GaussianSampler) {
	for i := range pk.Mask {
		var as ring.Scalar
		for j, a := range pk.Mask[i] {
			as += a * sk.Value[j]
		}
		pk.Body[i] += as + noise.ReadOne()
	}
}

// EncryptPK encrypts plaintext scalar p under the shared-mask public
// key pk: samples a fresh random binary selector, sums the selected
// masks and bodies, and adds p to the body.
func EncryptPK(pk *PublicKey, p ring.Scalar, uniform *ring.UniformSampler) *Ciphertext {
	n := len(pk.Mask[0])
	m := len(pk.Mask)
	selectorBuf := make([]ring.Scalar, 1)
	ct := NewCiphertext(n)
	for i := 0; i < m; i++ {
		uniform.ReadScalars(selectorBuf)
		if selectorBuf[0]&1 == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			ct.Mask[j] += pk.Mask[i][j]
		}
		ct.Body += pk.Body[i]
	}
	ct.Body += p
	return ct
}
