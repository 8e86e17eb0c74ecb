package rlwe

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/encoding"
)

// Estimate summarizes the noise present in a decrypted ciphertext: the
// base-2 logarithm of the largest absolute signed error coefficient
// (grounded on original_source/src/rlwe.rs::compute_noise, which reports
// max_e.log2()), plus a mean/stddev summary across all N error
// coefficients for a fuller picture than the single worst-case sample.
type Estimate struct {
	Log2Max float64
	Mean    float64
	StdDev  float64
}

// Noise decrypts ct under sk, subtracts the known encoded plaintext
// encoded (i.e. Δ·m), and summarizes the residual error e (spec section
// 4.3's "Δ·m + e" decomposition; grounded on compute_noise/
// compute_wrapping_noise in original_source/src/rlwe.rs).
func Noise(r *ring.Ring, sk *SecretKey, ct *Ciphertext, encoded ring.Poly) Estimate {
	pt := DecryptNew(r, sk, ct)
	errPoly := r.NewPoly()
	r.Sub(pt, encoded, errPoly)
	return summarizeError(errPoly)
}

// NoiseBinary decrypts ct and measures noise relative to the binary
// encoding of ptxt (grounded on compute_noise_binary).
func NoiseBinary(r *ring.Ring, sk *SecretKey, ct *Ciphertext, ptxt []uint64) Estimate {
	encoded := r.NewPoly()
	for i, x := range ptxt {
		encoded[i] = encoding.EncodeBinary(x)
	}
	return Noise(r, sk, ct, encoded)
}

// NoiseTernary decrypts ct and measures noise relative to the ternary
// encoding of ptxt (grounded on compute_noise_ternary).
func NoiseTernary(r *ring.Ring, sk *SecretKey, ct *Ciphertext, ptxt []int64) Estimate {
	encoded := r.NewPoly()
	for i, x := range ptxt {
		encoded[i] = encoding.EncodeTernary(x)
	}
	return Noise(r, sk, ct, encoded)
}

// summarizeError converts a raw error polynomial into the signed-abs-max
// and statistical summary of Estimate.
func summarizeError(errPoly ring.Poly) Estimate {
	samples := make([]float64, len(errPoly))
	maxE := 0.0
	for i, x := range errPoly {
		z := math.Abs(float64(ring.SignedScalar(x)))
		samples[i] = z
		if z > maxE {
			maxE = z
		}
	}
	mean, _ := stats.Mean(samples)
	stddev, _ := stats.StandardDeviation(samples)
	log2Max := math.Inf(-1)
	if maxE > 0 {
		log2Max = math.Log2(maxE)
	}
	return Estimate{Log2Max: log2Max, Mean: mean, StdDev: stddev}
}
