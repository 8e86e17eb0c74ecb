// Package bootstrap implements the programmable blind-rotation
// procedure that refreshes an LWE ciphertext's noise while evaluating a
// look-up table, and the gate-bootstrap orchestration built on top of
// it (spec section 4.6; grounded on
// original_source/src/lwe.rs::bootstrap/bootstrap_fourier).
package bootstrap

import (
	"github.com/sergirovira/mfhe-brk/lwe"
	"github.com/sergirovira/mfhe-brk/mpc"
	"github.com/sergirovira/mfhe-brk/rgsw"
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// BlindRotate drives accumulator through the BSK following the LWE
// ciphertext ct's mask/body, in place (spec section 4.6). logN is the
// ring's log2(N), used by pbs_modulus_switch to compute monomial
// degrees.
func BlindRotate(ev *rgsw.Evaluator, ct *lwe.Ciphertext, accumulator *rlwe.Ciphertext, bsk *mpc.BootstrappingKey, logN, k int) {
	r := ev.Ring

	rb := lwe.ModulusSwitch(ct.Body, logN)
	accumulator.DivMonomial(r, rb)

	for i, ai := range ct.Mask {
		ri := lwe.ModulusSwitch(ai, logN)
		combination := rgsw.NewCiphertext(r, bsk.Row[i][0].Decomposer)

		for j := 1; j <= k; j++ {
			row := bsk.Row[i][j]
			rotated := row.CopyNew()
			rotated.MulMonomial(r, ri*j)
			rotated.Sub(r, row)
			combination.Add(r, rotated)
		}

		temp := rlwe.NewCiphertext(r)
		ev.ExternalProduct(combination, accumulator, temp)
		accumulator.Add(r, temp)
	}
}

// BlindRotateFourier is the Fourier-domain variant of BlindRotate: the
// BSK is pre-transformed once by the caller, and a bank of
// pre-transformed monomials up to degree 2N accelerates step 2.b,
// performing the accumulate entirely in Fourier form and
// inverse-transforming only when adding into the accumulator (spec
// section 4.6).
func BlindRotateFourier(ev *rgsw.Evaluator, ct *lwe.Ciphertext, accumulator *rlwe.Ciphertext, bsk []FourierRow, monomials *MonomialBank, logN, k int) {
	r := ev.Ring
	f := ev.Fourier

	rb := lwe.ModulusSwitch(ct.Body, logN)
	accumulator.DivMonomial(r, rb)

	for i, ai := range ct.Mask {
		ri := lwe.ModulusSwitch(ai, logN)
		fourierRows := bsk[i].Rows
		combination := rgsw.NewFourierCiphertext(f, fourierRows[0].Decomposer)

		for j := 1; j <= k; j++ {
			row := fourierRows[j]
			monomial := monomials.Get(ri * j)
			rotated := rgsw.NewFourierCiphertext(f, row.Decomposer)
			row.ProductMonomial(f, monomial, rotated)
			rotated.SubCiphertext(f, row)
			combination.AddCiphertext(f, rotated)
		}

		temp := rlwe.NewCiphertext(r)
		ev.ExternalProductFourier(combination, accumulator, temp)
		accumulator.Add(r, temp)
	}
}

// FourierRow bundles the pre-transformed indicator vector for one LWE
// position: a length-(k+1) slice of Fourier RGSW ciphertexts.
type FourierRow struct {
	Rows []*rgsw.FourierCiphertext
}

// ToFourierBSK pre-transforms every row of a BootstrappingKey.
func ToFourierBSK(ev *rgsw.Evaluator, bsk *mpc.BootstrappingKey) []FourierRow {
	out := make([]FourierRow, len(bsk.Row))
	for i, row := range bsk.Row {
		fr := make([]*rgsw.FourierCiphertext, len(row))
		for j, ct := range row {
			fr[j] = ev.ToFourier(ct)
		}
		out[i] = FourierRow{Rows: fr}
	}
	return out
}

// MonomialBank pre-transforms X^d for every degree d in [0, 2N), the
// "bank of monomials up to degree 2N" of spec section 4.6.
type MonomialBank struct {
	n    int
	bank []ring.FourierPoly
}

// NewMonomialBank builds the bank for ring degree N using Fourier
// engine f.
func NewMonomialBank(r *ring.Ring, f *ring.Fourier) *MonomialBank {
	N := r.N
	bank := make([]ring.FourierPoly, 2*N)
	p := r.NewPoly()
	for d := 0; d < 2*N; d++ {
		p.Zero()
		p[0] = 1
		r.UpdateWithProductMonomial(p, d)
		fp := f.NewFourierPoly()
		f.Forward(p, fp)
		bank[d] = fp
	}
	return &MonomialBank{n: N, bank: bank}
}

// Get returns the pre-transformed monomial X^d, reducing d modulo 2N
// (the degree mod (2N) fix: a degree computed as ri*j can exceed 2N-1,
// and the bank is only populated for [0, 2N)).
func (b *MonomialBank) Get(d int) ring.FourierPoly {
	twoN := 2 * b.n
	d %= twoN
	if d < 0 {
		d += twoN
	}
	return b.bank[d]
}
