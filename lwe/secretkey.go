package lwe

import "github.com/sergirovira/mfhe-brk/ring"

// SecretKey is a binary-coefficient vector of dimension n (spec section
// 3, "LWE secret key is a binary vector of dimension n").
type SecretKey struct {
	Value []ring.Scalar
}

// NewSecretKey samples a fresh binary LWE secret key of dimension n
// using the secret-material generator.
func NewSecretKey(n int, secret *ring.BinarySampler) *SecretKey {
	bits := make([]ring.Scalar, n)
	secret.ReadBits(bits)
	return &SecretKey{Value: bits}
}

// FromPoly builds an LWE secret key from the coefficients of an RLWE
// secret-key polynomial, used when the extracted-sample key (dimension
// N) is needed directly from the RLWE secret (spec section 4.7).
func FromPoly(p ring.Poly) *SecretKey {
	value := make([]ring.Scalar, len(p))
	copy(value, p)
	return &SecretKey{Value: value}
}

// Dimension returns n, the key length.
func (sk *SecretKey) Dimension() int {
	return len(sk.Value)
}
