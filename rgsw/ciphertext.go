// Package rgsw implements gadget-decomposed RGSW ciphertexts over R_q:
// encryption, external/internal product, monomial multiplication, and
// their Fourier-domain counterparts (spec sections 3, 4.4).
package rgsw

import (
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// Ciphertext is a (ℓ × 2) matrix of RLWE ciphertexts, flattened
// row-major into a length-2ℓ slice: Rows[2i] is the mask-half row and
// Rows[2i+1] the body-half row of decomposition level i (spec section
// 3, "RGSW ciphertext").
type Ciphertext struct {
	Rows       []*rlwe.Ciphertext
	Decomposer Decomposer
}

// NewCiphertext allocates a zero RGSW ciphertext with ciphertext_count
// = 2*d.Levels rows over ring r.
func NewCiphertext(r *ring.Ring, d Decomposer) *Ciphertext {
	rows := make([]*rlwe.Ciphertext, 2*d.Levels)
	for i := range rows {
		rows[i] = rlwe.NewCiphertext(r)
	}
	return &Ciphertext{Rows: rows, Decomposer: d}
}

// CiphertextCount returns 2ℓ, the row count.
func (ct *Ciphertext) CiphertextCount() int {
	return len(ct.Rows)
}

// NthRow returns the n-th row as an RLWE ciphertext (spec invariant:
// "the nth row is a valid RLWE ciphertext").
func (ct *Ciphertext) NthRow(n int) *rlwe.Ciphertext {
	return ct.Rows[n]
}

// LastRow returns row 2ℓ-1.
func (ct *Ciphertext) LastRow() *rlwe.Ciphertext {
	return ct.Rows[len(ct.Rows)-1]
}

// CopyNew returns a deep copy of ct.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	rows := make([]*rlwe.Ciphertext, len(ct.Rows))
	for i, row := range ct.Rows {
		rows[i] = row.CopyNew()
	}
	return &Ciphertext{Rows: rows, Decomposer: ct.Decomposer}
}

// Add sets ct = ct + other row-wise on both halves.
func (ct *Ciphertext) Add(r *ring.Ring, other *Ciphertext) {
	for i := range ct.Rows {
		ct.Rows[i].Add(r, other.Rows[i])
	}
}

// Sub sets ct = ct - other row-wise on both halves.
func (ct *Ciphertext) Sub(r *ring.Ring, other *Ciphertext) {
	for i := range ct.Rows {
		ct.Rows[i].Sub(r, other.Rows[i])
	}
}

// MulMonomial multiplies every row by X^d (spec section 4.4, "monomial
// multiplication multiplies every row by the same monomial").
func (ct *Ciphertext) MulMonomial(r *ring.Ring, d int) {
	for _, row := range ct.Rows {
		row.MulMonomial(r, d)
	}
}
