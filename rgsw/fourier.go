package rgsw

import (
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// FourierRow holds the pre-transformed mask and body halves of one row
// of a Fourier RGSW ciphertext.
type FourierRow struct {
	Mask ring.FourierPoly
	Body ring.FourierPoly
}

// FourierCiphertext is the Fourier-domain image of an RGSW ciphertext:
// same shape, but every row's two polynomials have been replaced by
// their complex negacyclic-transform image (spec section 3, "Fourier
// RGSW" and section 4.4).
type FourierCiphertext struct {
	Rows       []FourierRow
	Decomposer Decomposer
}

// ToFourier eagerly transforms every row of ct into a fresh
// FourierCiphertext.
func (e *Evaluator) ToFourier(ct *Ciphertext) *FourierCiphertext {
	rows := make([]FourierRow, len(ct.Rows))
	for i, row := range ct.Rows {
		mask := e.Fourier.NewFourierPoly()
		body := e.Fourier.NewFourierPoly()
		e.Fourier.Forward(row.Value[0], mask)
		e.Fourier.Forward(row.Value[1], body)
		rows[i] = FourierRow{Mask: mask, Body: body}
	}
	return &FourierCiphertext{Rows: rows, Decomposer: ct.Decomposer}
}

// AddCiphertext accumulates other into fc row-wise, in the Fourier
// domain.
func (fc *FourierCiphertext) AddCiphertext(f *ring.Fourier, other *FourierCiphertext) {
	for i := range fc.Rows {
		f.AddTo(fc.Rows[i].Mask, other.Rows[i].Mask, fc.Rows[i].Mask)
		f.AddTo(fc.Rows[i].Body, other.Rows[i].Body, fc.Rows[i].Body)
	}
}

// SubCiphertext subtracts other from fc row-wise, in the Fourier
// domain.
func (fc *FourierCiphertext) SubCiphertext(f *ring.Fourier, other *FourierCiphertext) {
	for i := range fc.Rows {
		f.SubTo(fc.Rows[i].Mask, other.Rows[i].Mask, fc.Rows[i].Mask)
		f.SubTo(fc.Rows[i].Body, other.Rows[i].Body, fc.Rows[i].Body)
	}
}

// ProductMonomial multiplies fc by a pre-transformed monomial, placing
// the result in out: pointwise multiply into every row's two
// polynomials (spec section 4.4, product_monomial). out is overwritten,
// not accumulated into.
func (fc *FourierCiphertext) ProductMonomial(f *ring.Fourier, monomial ring.FourierPoly, out *FourierCiphertext) {
	for i := range fc.Rows {
		f.MulTo(fc.Rows[i].Mask, monomial, out.Rows[i].Mask)
		f.MulTo(fc.Rows[i].Body, monomial, out.Rows[i].Body)
	}
}

// NewFourierCiphertext allocates a zero Fourier RGSW ciphertext with
// ciphertext_count = 2*d.Levels rows.
func NewFourierCiphertext(f *ring.Fourier, d Decomposer) *FourierCiphertext {
	rows := make([]FourierRow, 2*d.Levels)
	for i := range rows {
		rows[i] = FourierRow{Mask: f.NewFourierPoly(), Body: f.NewFourierPoly()}
	}
	return &FourierCiphertext{Rows: rows, Decomposer: d}
}

// ExternalProductFourier computes out = fc ⊗ ct entirely in the Fourier
// domain: ct is transformed inside, the gadget digits are transformed
// and accumulated against fc's pre-transformed rows, and only the
// final result is inverse-transformed (spec section 4.4, "External
// product against an RLWE input transforms the RLWE inside and
// accumulates directly").
func (e *Evaluator) ExternalProductFourier(fc *FourierCiphertext, ct *rlwe.Ciphertext, out *rlwe.Ciphertext) {
	r := e.Ring
	f := e.Fourier
	d := fc.Decomposer

	maskDigits := d.DecomposePoly(r, ct.Value[0])
	bodyDigits := d.DecomposePoly(r, ct.Value[1])

	accMask := f.NewFourierPoly()
	accBody := f.NewFourierPoly()
	digitFourier := f.NewFourierPoly()

	for level := 0; level < d.Levels; level++ {
		f.Forward(maskDigits[level], digitFourier)
		row := fc.Rows[2*level]
		f.MulAddTo(digitFourier, row.Mask, accMask)
		f.MulAddTo(digitFourier, row.Body, accBody)

		f.Forward(bodyDigits[level], digitFourier)
		row = fc.Rows[2*level+1]
		f.MulAddTo(digitFourier, row.Mask, accMask)
		f.MulAddTo(digitFourier, row.Body, accBody)
	}

	f.Inverse(accMask, out.Value[0])
	f.Inverse(accBody, out.Value[1])
}
