package rgsw

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// Estimate mirrors rlwe.Estimate: the base-2 log of the worst-case
// absolute signed error, plus a mean/stddev summary.
type Estimate struct {
	Log2Max float64
	Mean    float64
	StdDev  float64
}

// Noise measures the noise of an RGSW encryption of the constant
// polynomial whose expected value is encoded in ptxt, by decrypting row
// 1 (the body-half row of decomposition level 0) as an ordinary RLWE
// ciphertext (grounded on original_source/src/rgsw.rs::compute_noise_rgsw).
func Noise(r *ring.Ring, sk *rlwe.SecretKey, ct *Ciphertext, ptxt ring.Poly) Estimate {
	pt := rlwe.DecryptNew(r, sk, ct.NthRow(1))
	errPoly := r.NewPoly()
	r.Sub(pt, ptxt, errPoly)

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
