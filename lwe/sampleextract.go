package lwe

import (
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// SampleExtract produces the LWE ciphertext over ℤ_q^N implied by the
// constant coefficient of RLWE ciphertext ct = (a(X), b(X)): body b_0,
// mask (a_0, −a_{N−1}, −a_{N−2}, …, −a_1) (spec section 4.2).
func SampleExtract(r *ring.Ring, ct *rlwe.Ciphertext) *Ciphertext {
	N := r.N
	out := NewCiphertext(N)
	out.Mask[0] = ct.Value[0][0]
	for i := 1; i < N; i++ {
		out.Mask[i] = -ct.Value[0][N-i]
	}
	out.Body = ct.Value[1][0]
	return out
}
