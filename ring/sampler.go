package ring

import (
	"encoding/binary"
	"math"
)

// Generators packages the three independent random streams named in spec
// section 6 (uniform, secret-material, encryption-noise) into a single
// value threaded explicitly as a mutable parameter, per Design Notes
// ("Global mutable generators"): never package-level state, never shared
// across goroutines without explicit hand-off.
type Generators struct {
	Uniform *UniformSampler
	Secret  *TernarySampler
	Noise   *GaussianSampler
}

// NewGenerators builds the three samplers over ring r from the given
// PRNGs. Passing the same PRNG instance to more than one field is valid
// (e.g. for quick single-seed test fixtures) but not recommended for
// production use, where independent seeds are expected.
func NewGenerators(r *Ring, uniform, secret, noise PRNG, sigma float64, bound Scalar) *Generators {
	return &Generators{
		Uniform: NewUniformSampler(r, uniform),
		Secret:  NewTernarySampler(r, secret),
		Noise:   NewGaussianSampler(r, noise, sigma, bound),
	}
}

// UniformSampler draws coefficients uniformly over all of Z_q.
type UniformSampler struct {
	r    *Ring
	prng PRNG
}

// NewUniformSampler creates a uniform sampler over ring r drawing from prng.
func NewUniformSampler(r *Ring, prng PRNG) *UniformSampler {
	return &UniformSampler{r: r, prng: prng}
}

// Read samples a uniform polynomial into p.
func (s *UniformSampler) Read(p Poly) {
	s.r.CheckDegree(p)
	var buf [8]byte
	for i := range p {
		if err := s.prng.Read(buf[:]); err != nil {
			panic(err)
		}
		p[i] = binary.LittleEndian.Uint64(buf[:])
	}
}

// ReadNew samples and returns a fresh uniform polynomial.
func (s *UniformSampler) ReadNew() Poly {
	p := s.r.NewPoly()
	s.Read(p)
	return p
}

// ReadScalars samples len(out) uniform scalars into out, independent of
// any ring degree (used for LWE masks, whose dimension n is generally
// unrelated to the RLWE ring degree N).
func (s *UniformSampler) ReadScalars(out []Scalar) {
	var buf [8]byte
	for i := range out {
		if err := s.prng.Read(buf[:]); err != nil {
			panic(err)
		}
		out[i] = Scalar(binary.LittleEndian.Uint64(buf[:]))
	}
}

// BinarySampler draws coefficients uniformly from {0, 1}, used for RLWE
// and LWE secret keys (spec section 3).
type BinarySampler struct {
	r    *Ring
	prng PRNG
}

// NewBinarySampler creates a binary sampler over ring r drawing from prng.
func NewBinarySampler(r *Ring, prng PRNG) *BinarySampler {
	return &BinarySampler{r: r, prng: prng}
}

// Read samples a binary polynomial into p.
func (s *BinarySampler) Read(p Poly) {
	s.r.CheckDegree(p)
	nBytes := (len(p) + 7) / 8
	buf := make([]byte, nBytes)
	if err := s.prng.Read(buf); err != nil {
		panic(err)
	}
	for i := range p {
		byt := buf[i/8]
		bit := (byt >> uint(i%8)) & 1
		p[i] = Scalar(bit)
	}
}

// ReadNew samples and returns a fresh binary polynomial.
func (s *BinarySampler) ReadNew() Poly {
	p := s.r.NewPoly()
	s.Read(p)
	return p
}

// ReadBits samples len(out) binary scalars into out, independent of any
// ring degree. Used for LWE secret keys, whose dimension n is generally
// unrelated to the RLWE ring degree N.
func (s *BinarySampler) ReadBits(out []Scalar) {
	nBytes := (len(out) + 7) / 8
	buf := make([]byte, nBytes)
	if err := s.prng.Read(buf); err != nil {
		panic(err)
	}
	for i := range out {
		byt := buf[i/8]
		bit := (byt >> uint(i%8)) & 1
		out[i] = Scalar(bit)
	}
}

// TernarySampler draws coefficients from {0, 1, q-1} (i.e. {0, 1, -1})
// with probabilities 1/2, 1/4, 1/4, the distribution used for the
// secret-material generator.
type TernarySampler struct {
	r    *Ring
	prng PRNG
}

// NewTernarySampler creates a ternary sampler over ring r drawing from prng.
func NewTernarySampler(r *Ring, prng PRNG) *TernarySampler {
	return &TernarySampler{r: r, prng: prng}
}

// Read samples a ternary polynomial into p.
func (s *TernarySampler) Read(p Poly) {
	s.r.CheckDegree(p)
	// Two bits per coefficient: 00/01 -> 0, 10 -> 1, 11 -> -1. Rejection is
	// unnecessary since we just reinterpret 00 and 01 both as zero,
	// keeping the distribution (1/2, 1/4, 1/4) which is ternary-shaped and
	// adequate for secret-key sampling.
	nBytes := (len(p)*2 + 7) / 8
	buf := make([]byte, nBytes)
	if err := s.prng.Read(buf); err != nil {
		panic(err)
	}
	for i := range p {
		bitIdx := i * 2
		byt := buf[bitIdx/8]
		shift := uint(bitIdx % 8)
		bits := (byt >> shift) & 0b11
		switch bits {
		case 0b10:
			p[i] = 1
		case 0b11:
			p[i] = Scalar(0) - 1 // -1 mod 2^64
		default:
			p[i] = 0
		}
	}
}

// ReadNew samples and returns a fresh ternary polynomial.
func (s *TernarySampler) ReadNew() Poly {
	p := s.r.NewPoly()
	s.Read(p)
	return p
}

// GaussianSampler draws coefficients from a discrete Gaussian
// approximation (rounded Box-Muller), truncated to bound, the
// distribution used for encryption noise.
type GaussianSampler struct {
	r     *Ring
	prng  PRNG
	sigma float64
	bound Scalar
}

// NewGaussianSampler creates a Gaussian sampler over ring r with standard
// deviation sigma, truncated to the given absolute bound, drawing from
// prng.
func NewGaussianSampler(r *Ring, prng PRNG, sigma float64, bound Scalar) *GaussianSampler {
	return &GaussianSampler{r: r, prng: prng, sigma: sigma, bound: bound}
}

// Read samples a Gaussian polynomial into p.
func (s *GaussianSampler) Read(p Poly) {
	s.r.CheckDegree(p)
	for i := range p {
		p[i] = s.sampleOne()
	}
}

// ReadNew samples and returns a fresh Gaussian polynomial.
func (s *GaussianSampler) ReadNew() Poly {
	p := s.r.NewPoly()
	s.Read(p)
	return p
}

// ReadAndAdd samples a Gaussian polynomial and adds it onto p in place.
func (s *GaussianSampler) ReadAndAdd(p Poly) {
	s.r.CheckDegree(p)
	for i := range p {
		p[i] += s.sampleOne()
	}
}

// ReadOne samples a single Gaussian scalar, independent of any ring
// degree (used for LWE encryption noise).
func (s *GaussianSampler) ReadOne() Scalar {
	return s.sampleOne()
}

func (s *GaussianSampler) sampleOne() Scalar {
	for {
		u1, u2 := s.uniformFloat(), s.uniformFloat()
		if u1 <= 0 {
			continue
		}
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		v := int64(math.Round(z * s.sigma))
		if v < 0 {
			v = -v
		}
		if Scalar(v) > s.bound {
			continue
		}
		sample := int64(math.Round(z * s.sigma))
		return Scalar(sample)
	}
}

func (s *GaussianSampler) uniformFloat() float64 {
	var buf [8]byte
	if err := s.prng.Read(buf[:]); err != nil {
		panic(err)
	}
	v := binary.LittleEndian.Uint64(buf[:])
	return float64(v>>11) / float64(1<<53)
}
