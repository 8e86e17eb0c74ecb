package mpc

import (
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rgsw"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// BootstrappingKey is the distributed bootstrapping key of spec section
// 3: for each of the n LWE-secret bits, a length-(k+1) vector of RGSW
// ciphertexts produced by the homomorphic indicator on the k per-party
// bit-encryptions. Row[i][j] encrypts 1 iff exactly j of the k parties
// hold a 1 in position i of their LWE-key share.
type BootstrappingKey struct {
	Row [][]*rgsw.Ciphertext // [n][k+1]
}

// GenBootstrappingKey builds the BSK from the parties' LWE secret
// shares under the joint RLWE secret jointSecret (grounded on
// original_source/src/main.rs's bootstrapping-key setup loop, which
// RGSW-encrypts each party's bit at each position under the joint
// secret before feeding the k ciphertexts through HomomorphicIndicator).
func GenBootstrappingKey(ev *rgsw.Evaluator, jointSecret *rlwe.SecretKey, d rgsw.Decomposer, parties []*PartyKeys, n int, gen *ring.Generators, trivial bool) *BootstrappingKey {
	r := ev.Ring
	rows := make([][]*rgsw.Ciphertext, n)

	for pos := 0; pos < n; pos++ {
		c := make([]*rgsw.Ciphertext, len(parties))
		for user, party := range parties {
			bit := party.LWE.Value[pos]
			c[user] = rgsw.EncryptConstant(r, jointSecret, bit, d, gen)
		}
		rows[pos] = HomomorphicIndicator(ev, jointSecret, d, c, gen, trivial)
	}

	return &BootstrappingKey{Row: rows}
}
