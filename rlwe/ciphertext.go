package rlwe

import "github.com/sergirovira/mfhe-brk/ring"

// Ciphertext is an RLWE ciphertext at degree N: the ordered pair
// (A, B) ∈ R_q × R_q such that B - A·s = Δ·m(X) + e(X) (spec section 3).
//
// Per Design Notes ("Deep polymorphism in the source"), the mask and body
// halves are structurally identical polynomials; operations treat them
// uniformly via the embedded [2]ring.Poly rather than duplicating
// add/sub/monomial code per half.
type Ciphertext struct {
	Value [2]ring.Poly // Value[0] = A (mask), Value[1] = B (body)
}

// NewCiphertext allocates a zero RLWE ciphertext over ring r.
func NewCiphertext(r *ring.Ring) *Ciphertext {
	return &Ciphertext{Value: [2]ring.Poly{r.NewPoly(), r.NewPoly()}}
}

// CopyNew returns a deep copy of ct.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: [2]ring.Poly{ct.Value[0].CopyNew(), ct.Value[1].CopyNew()}}
}

// Copy overwrites the receiver with other's coefficients.
func (ct *Ciphertext) Copy(other *Ciphertext) {
	ct.Value[0].Copy(other.Value[0])
	ct.Value[1].Copy(other.Value[1])
}

// Zero clears both halves of ct.
func (ct *Ciphertext) Zero() {
	ct.Value[0].Zero()
	ct.Value[1].Zero()
}

// Add sets ct = ct + other, componentwise on both halves.
func (ct *Ciphertext) Add(r *ring.Ring, other *Ciphertext) {
	r.Add(ct.Value[0], other.Value[0], ct.Value[0])
	r.Add(ct.Value[1], other.Value[1], ct.Value[1])
}

// Sub sets ct = ct - other, componentwise on both halves.
func (ct *Ciphertext) Sub(r *ring.Ring, other *Ciphertext) {
	r.Sub(ct.Value[0], other.Value[0], ct.Value[0])
	r.Sub(ct.Value[1], other.Value[1], ct.Value[1])
}

// AddConstant adds c to the constant coefficient of the body half, in
// place.
func (ct *Ciphertext) AddConstant(r *ring.Ring, c ring.Scalar) {
	r.AddScalarToConstant(ct.Value[1], c)
}

// MulMonomial multiplies both halves of ct by X^d modulo X^N+1 (spec
// section 4.3).
func (ct *Ciphertext) MulMonomial(r *ring.Ring, d int) {
	r.UpdateWithProductMonomial(ct.Value[0], d)
	r.UpdateWithProductMonomial(ct.Value[1], d)
}

// DivMonomial divides both halves of ct by X^d modulo X^N+1 (multiplies
// by X^{-d}).
func (ct *Ciphertext) DivMonomial(r *ring.Ring, d int) {
	r.UpdateWithProductMonomialInverse(ct.Value[0], d)
	r.UpdateWithProductMonomialInverse(ct.Value[1], d)
}
