package rgsw

import (
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// Evaluator performs RGSW operations against a fixed ring and Fourier
// engine, scoped per call site the way FourierBuffers are in spec
// section 5: acquired before use, discarded after.
type Evaluator struct {
	Ring    *ring.Ring
	Fourier *ring.Fourier
}

// NewEvaluator builds an Evaluator over ring r with a fresh Fourier
// engine sized for r.N.
func NewEvaluator(r *ring.Ring) *Evaluator {
	return &Evaluator{Ring: r, Fourier: ring.NewFourier(r.N)}
}

// ExternalProduct computes out = gsw ⊗ ct (spec section 4.4): decompose
// both halves of ct into ℓ signed-balanced digit polynomials, multiply
// each by the corresponding gadget row in the Fourier domain, accumulate,
// and inverse-transform. Output noise grows linearly in ℓ·N·B².
func (e *Evaluator) ExternalProduct(gsw *Ciphertext, ct *rlwe.Ciphertext, out *rlwe.Ciphertext) {
	r := e.Ring
	f := e.Fourier
	d := gsw.Decomposer

	maskDigits := d.DecomposePoly(r, ct.Value[0])
	bodyDigits := d.DecomposePoly(r, ct.Value[1])

	accMask := f.NewFourierPoly()
	accBody := f.NewFourierPoly()
	digitFourier := f.NewFourierPoly()
	rowFourier := f.NewFourierPoly()

	for level := 0; level < d.Levels; level++ {
		f.Forward(maskDigits[level], digitFourier)
		row := gsw.Rows[2*level]
		f.Forward(row.Value[0], rowFourier)
		f.MulAddTo(digitFourier, rowFourier, accMask)
		f.Forward(row.Value[1], rowFourier)
		f.MulAddTo(digitFourier, rowFourier, accBody)

		f.Forward(bodyDigits[level], digitFourier)
		row = gsw.Rows[2*level+1]
		f.Forward(row.Value[0], rowFourier)
		f.MulAddTo(digitFourier, rowFourier, accMask)
		f.Forward(row.Value[1], rowFourier)
		f.MulAddTo(digitFourier, rowFourier, accBody)
	}

	f.Inverse(accMask, out.Value[0])
	f.Inverse(accBody, out.Value[1])
}

// ExternalProductNew is ExternalProduct allocating a fresh output.
func (e *Evaluator) ExternalProductNew(gsw *Ciphertext, ct *rlwe.Ciphertext) *rlwe.Ciphertext {
	out := rlwe.NewCiphertext(e.Ring)
	e.ExternalProduct(gsw, ct, out)
	return out
}

// InternalProduct computes out = a ⊗ b, row-wise (spec section 4.4): the
// i-th row of out is the external product of the i-th row of b (viewed
// as an RLWE ciphertext) with a. This preserves RGSW structure.
func (e *Evaluator) InternalProduct(a, b *Ciphertext, out *Ciphertext) {
	for i := range out.Rows {
		e.ExternalProduct(a, b.Rows[i], out.Rows[i])
	}
}

// InternalProductNew is InternalProduct allocating a fresh output with
// b's decomposition parameters.
func (e *Evaluator) InternalProductNew(a, b *Ciphertext) *Ciphertext {
	out := NewCiphertext(e.Ring, b.Decomposer)
	e.InternalProduct(a, b, out)
	return out
}
