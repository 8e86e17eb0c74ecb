package ring

// UpdateWithProductMonomial multiplies p in place by X^d modulo X^N+1.
//
// Algorithm (spec section 4.1, grounded on
// original_source/src/lib.rs::update_with_product_monomial): compute
// f = floor(d/N) and r = d mod N; if f is odd, negate every coefficient
// (X^N = -1); rotate the coefficient array right by r; negate the first r
// coefficients (the sign flip introduced by wrapping around X^N+1).
//
// Composing two calls with degrees d1, d2 is equivalent to one call with
// d1+d2 (the ring-arithmetic invariant of spec section 8), and d = 2N is
// the identity, d = N negates p.
func (r *Ring) UpdateWithProductMonomial(p Poly, d int) {
	r.CheckDegree(p)
	N := r.N

	d = d % (2 * N)
	if d < 0 {
		d += 2 * N
	}

	f := d / N
	rem := d % N

	if f%2 != 0 {
		for i := range p {
			p[i] = -p[i]
		}
	}

	rotateRight(p, rem)

	for i := 0; i < rem; i++ {
		p[i] = -p[i]
	}
}

// UpdateWithProductMonomialInverse multiplies p in place by X^{-d} modulo
// X^N+1 (the monic-monomial divide operation used by blind rotation to
// rotate the accumulator by X^{-r_b}).
func (r *Ring) UpdateWithProductMonomialInverse(p Poly, d int) {
	r.UpdateWithProductMonomial(p, -d)
}

// rotateRight rotates the slice right by n positions, in place.
func rotateRight(p Poly, n int) {
	N := len(p)
	if n == 0 || N == 0 {
		return
	}
	n %= N
	if n == 0 {
		return
	}
	reverse(p)
	reverse(p[:n])
	reverse(p[n:])
}

func reverse(p Poly) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
