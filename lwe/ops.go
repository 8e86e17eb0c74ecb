package lwe

import "github.com/sergirovira/mfhe-brk/ring"

// Add sets ct = ct + other, componentwise wrapping (spec section 4.2).
func (ct *Ciphertext) Add(other *Ciphertext) {
	for i := range ct.Mask {
		ct.Mask[i] += other.Mask[i]
	}
	ct.Body += other.Body
}

// Sub sets ct = ct - other, componentwise wrapping.
func (ct *Ciphertext) Sub(other *Ciphertext) {
	for i := range ct.Mask {
		ct.Mask[i] -= other.Mask[i]
	}
	ct.Body -= other.Body
}

// Neg negates ct in place, componentwise wrapping.
func (ct *Ciphertext) Neg() {
	for i := range ct.Mask {
		ct.Mask[i] = -ct.Mask[i]
	}
	ct.Body = -ct.Body
}

// ScalarMul scales ct by c, componentwise wrapping.
func (ct *Ciphertext) ScalarMul(c ring.Scalar) {
	for i := range ct.Mask {
		ct.Mask[i] *= c
	}
	ct.Body *= c
}

// SubScaled subtracts c*other from ct in place: ct -= c*other. Used by
// the key-switch gadget-decomposition loop, which must not mutate the
// key-switching key's stored rows.
func (ct *Ciphertext) SubScaled(c ring.Scalar, other *Ciphertext) {
	for i := range ct.Mask {
		ct.Mask[i] -= c * other.Mask[i]
	}
	ct.Body -= c * other.Body
}
