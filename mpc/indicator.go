package mpc

import (
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rgsw"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// HomomorphicIndicator converts k RGSW encryptions c_0, …, c_{k−1} of
// bits b_0, …, b_{k−1} into a length-(k+1) vector L where L_j =
// RGSW(1) if ∑b_i = j and RGSW(0) otherwise (spec section 4.5; grounded
// on original_source/src/lwe.rs::homomorphic_indicator).
//
// trivial selects the debug encryption path for the RGSW(0)/RGSW(1)
// constants used internally: when false (the production path), each
// constant is a fresh secret-key encryption under sk; when true, each
// is a noiseless trivial encryption, for reproducible test fixtures.
func HomomorphicIndicator(ev *rgsw.Evaluator, sk *rlwe.SecretKey, d rgsw.Decomposer, c []*rgsw.Ciphertext, gen *ring.Generators, trivial bool) []*rgsw.Ciphertext {
	k := len(c)
	r := ev.Ring

	encryptConstant := func(x ring.Scalar) *rgsw.Ciphertext {
		if trivial {
			return rgsw.TrivialConstant(r, x, d)
		}
		return rgsw.EncryptConstant(r, sk, x, d, gen)
	}

	l := make([]*rgsw.Ciphertext, k+1)
	l[0] = encryptConstant(1)
	for i := 1; i <= k; i++ {
		l[i] = encryptConstant(0)
	}

	for j := 0; j < k; j++ {
		lPrime := make([]*rgsw.Ciphertext, k+1)

		one := encryptConstant(1)
		one.Sub(r, c[j])
		lPrime[0] = ev.InternalProductNew(one, l[0])

		for i := 1; i <= k; i++ {
			aux := l[i-1].CopyNew()
			aux.Sub(r, l[i])
			ct := ev.InternalProductNew(c[j], aux)
			ct.Add(r, l[i])
			lPrime[i] = ct
		}

		l = lPrime
	}

	return l
}
