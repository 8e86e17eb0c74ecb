package ring

// Poly is an ordered sequence of N scalars, the coefficients of an element
// of R_q = Z_q[X]/(X^N+1), lowest degree first. Its length is always
// exactly the degree of the ring that produced it (spec section 3).
type Poly []Scalar

// CopyNew returns a fresh copy of p.
func (p Poly) CopyNew() Poly {
	out := make(Poly, len(p))
	copy(out, p)
	return out
}

// Copy overwrites the receiver with the coefficients of other.
func (p Poly) Copy(other Poly) {
	copy(p, other)
}

// Zero sets every coefficient of p to zero.
func (p Poly) Zero() {
	for i := range p {
		p[i] = 0
	}
}

// Equals reports whether p and other hold identical coefficients.
func (p Poly) Equals(other Poly) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
