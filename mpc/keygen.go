// Package mpc implements the multiparty protocol layer on top of the
// ciphertext algebra: shared-mask public-key aggregation, the
// homomorphic indicator, and bootstrapping-key assembly (spec sections
// 3, 4.5, 4.6). Per spec section 1's non-goals ("no network transport
// for share exchange"), party secret shares are held in the same
// process and combined directly, mirroring
// original_source/src/main.rs's single-process simulation of the
// protocol rather than implementing a networked share-exchange layer.
package mpc

import (
	"github.com/sergirovira/mfhe-brk/lwe"
	"github.com/sergirovira/mfhe-brk/params"
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// PartyKeys holds one party's secret-key shares.
type PartyKeys struct {
	RLWE *rlwe.SecretKey
	LWE  *lwe.SecretKey
}

// GeneratePartyKeys samples a fresh (RLWE, LWE) secret-key pair for one
// party.
func GeneratePartyKeys(r *ring.Ring, p params.Parameters, secret *ring.BinarySampler) *PartyKeys {
	return &PartyKeys{
		RLWE: rlwe.NewSecretKey(r, secret),
		LWE:  lwe.NewSecretKey(p.LWEDimension(), secret),
	}
}

// JointKeys holds the aggregated public keys (shared-mask form) and the
// joint secret (the sum of all per-party shares), assembled locally per
// the non-networked simulation model above.
type JointKeys struct {
	RLWEPublic *rlwe.PublicKey
	LWEPublic  *lwe.PublicKey
	RLWESecret *rlwe.SecretKey
	LWESecret  *lwe.SecretKey
}

// AggregateKeys runs the three-phase shared-mask public-key protocol of
// spec section 3 over the given parties: sample the common mask,
// collect every party's zero-encryption share into the body, and sum
// the secret shares into the joint secret (grounded on
// original_source/src/main.rs's setup loop).
func AggregateKeys(r *ring.Ring, p params.Parameters, parties []*PartyKeys, gen *ring.Generators) *JointKeys {
	rlwePK := rlwe.NewPublicKeyMask(r, gen.Uniform, p.PublicKeyWidth())
	lwePK := lwe.NewPublicKeyMask(gen.Uniform, p.LWEDimension(), p.PublicKeyWidth())

	jointRLWE := rlwe.ZeroSecretKey(r)
	jointLWE := &lwe.SecretKey{Value: make([]ring.Scalar, p.LWEDimension())}

	for _, party := range parties {
		rlwePK.AddShare(r, party.RLWE, gen.Noise)
		lwePK.AddShare(party.LWE, gen.Noise)
		jointRLWE.Add(r, party.RLWE)
		for i, v := range party.LWE.Value {
			jointLWE.Value[i] += v
		}
	}

	return &JointKeys{
		RLWEPublic: rlwePK,
		LWEPublic:  lwePK,
		RLWESecret: jointRLWE,
		LWESecret:  jointLWE,
	}
}
