// Package params defines the sole configuration surface the core
// consumes (spec section 6): a fixed tuple of ring degree, LWE dimension,
// party count, public-key width, and the three gadget-decomposition pairs
// plus noise standard deviations.
package params

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidParameters is returned by New when the tuple fails a
// construction-time validity check (spec section 7, "Parameter
// mis-sizing: fatal at construction time").
var ErrInvalidParameters = errors.New("params: invalid parameter set")

// GadgetParameters is a (base, level) pair for a gadget decomposition:
// base B = 2^BaseLog, Levels decomposition levels.
type GadgetParameters struct {
	BaseLog int
	Levels  int
}

// Base returns B = 2^BaseLog.
func (g GadgetParameters) Base() uint64 {
	return uint64(1) << uint(g.BaseLog)
}

// Parameters is the fixed tuple consumed by the core (spec section 6).
type Parameters struct {
	N int // polynomial degree, power of two
	n int // LWE dimension
	k int // party count
	m int // public-key ciphertext count (binary-selector width)

	Data   GadgetParameters // (B, ell) for RGSW encryption of data
	KS     GadgetParameters // (B_ks, ell_ks) for LWE->LWE key switching
	RGSW   GadgetParameters // (B_rgsw, ell_rgsw) for the BSK
	NegS   GadgetParameters // (B_negs, ell_negs) for encrypting -s

	SigmaRLWE float64
	SigmaLWE  float64
	Sigma     float64
}

// New validates and returns a Parameters value. w = 64 is fixed (spec
// section 3); the 32-bit modulus-switched path reuses N, n and k but
// operates in a parallel narrower ring (lwe package).
func New(N, n, k, m int, data, ks, rgsw, negS GadgetParameters, sigmaRLWE, sigmaLWE, sigma float64) (Parameters, error) {
	p := Parameters{
		N: N, n: n, k: k, m: m,
		Data: data, KS: ks, RGSW: rgsw, NegS: negS,
		SigmaRLWE: sigmaRLWE, SigmaLWE: sigmaLWE, Sigma: sigma,
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Validate checks the fatal preconditions of spec section 7: m=0, N not a
// power of two, or ell*base_log > w (=64) for any gadget pair.
func (p Parameters) Validate() error {
	if p.N <= 0 || p.N&(p.N-1) != 0 {
		return fmt.Errorf("%w: N=%d must be a power of two", ErrInvalidParameters, p.N)
	}
	if p.n <= 0 {
		return fmt.Errorf("%w: n=%d must be positive", ErrInvalidParameters, p.n)
	}
	if p.k <= 0 {
		return fmt.Errorf("%w: k=%d must be positive", ErrInvalidParameters, p.k)
	}
	if p.m <= 0 {
		return fmt.Errorf("%w: m=%d must be positive", ErrInvalidParameters, p.m)
	}
	for name, g := range map[string]GadgetParameters{
		"data": p.Data, "ks": p.KS, "rgsw": p.RGSW, "negs": p.NegS,
	} {
		if g.Levels <= 0 || g.BaseLog <= 0 {
			return fmt.Errorf("%w: %s gadget params must be positive", ErrInvalidParameters, name)
		}
		if g.Levels*g.BaseLog > 64 {
			return fmt.Errorf("%w: %s ell*base_log=%d exceeds w=64", ErrInvalidParameters, name, g.Levels*g.BaseLog)
		}
	}
	return nil
}

// PolyDegree returns N, the polynomial degree.
func (p Parameters) PolyDegree() int { return p.N }

// LWEDimension returns n, the LWE dimension.
func (p Parameters) LWEDimension() int { return p.n }

// PartyCount returns k, the number of parties.
func (p Parameters) PartyCount() int { return p.k }

// PublicKeyWidth returns m, the binary-selector width of the shared-mask
// public key.
func (p Parameters) PublicKeyWidth() int { return p.m }

// LogN returns log2(N).
func (p Parameters) LogN() int {
	return bits.Len(uint(p.N)) - 1
}

// Default returns the reference parameter set used in spec section 8's
// scenarios: N=2048, n=494, k=4.
func Default() Parameters {
	p, err := New(
		2048, 494, 4, 3*64,
		GadgetParameters{BaseLog: 4, Levels: 15},
		GadgetParameters{BaseLog: 13, Levels: 3},
		GadgetParameters{BaseLog: 10, Levels: 5},
		GadgetParameters{BaseLog: 30, Levels: 2},
		9.76908e-16*(1<<63), // std_rlwe scaled to absolute units, see original_source
		1<<17,               // std_lwe ~ 2^17 / 2^64 in relative terms, kept absolute here
		1<<17,
	)
	if err != nil {
		panic(err)
	}
	return p
}
