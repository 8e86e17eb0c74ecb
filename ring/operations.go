package ring

// Add sets out = a + b (componentwise, wrapping modulo 2^64).
func (r *Ring) Add(a, b, out Poly) {
	r.CheckDegree(a)
	r.CheckDegree(b)
	r.CheckDegree(out)
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

// Sub sets out = a - b (componentwise, wrapping modulo 2^64).
func (r *Ring) Sub(a, b, out Poly) {
	r.CheckDegree(a)
	r.CheckDegree(b)
	r.CheckDegree(out)
	for i := range out {
		out[i] = a[i] - b[i]
	}
}

// Neg sets out = -a (componentwise, wrapping modulo 2^64).
func (r *Ring) Neg(a, out Poly) {
	r.CheckDegree(a)
	r.CheckDegree(out)
	for i := range out {
		out[i] = -a[i]
	}
}

// MulScalar sets out = a * c, c a scalar constant, wrapping modulo 2^64.
func (r *Ring) MulScalar(a Poly, c Scalar, out Poly) {
	r.CheckDegree(a)
	r.CheckDegree(out)
	for i := range out {
		out[i] = a[i] * c
	}
}

// AddScalarToConstant adds c to the constant (degree-0) coefficient of a,
// in place.
func (r *Ring) AddScalarToConstant(a Poly, c Scalar) {
	r.CheckDegree(a)
	a[0] += c
}
