package lwe

import (
	"math"

	"github.com/sergirovira/mfhe-brk/ring"
)

// Ciphertext32 is a narrowed view of an LWE ciphertext over ℤ_{2^32},
// produced only as an output-narrowing projection after a full 64-bit
// key switch (SPEC_FULL.md section D.2): it is not a symmetric
// ciphertext type with its own encryption path, matching the original
// Rust reference's unfinished contract for this path.
type Ciphertext32 struct {
	Mask []uint32
	Body uint32
}

// ModulusSwitchToNarrowRing projects a 64-bit LWE ciphertext down to
// ℤ_{2^32} by rounding each coordinate to the nearest multiple of
// 2^32 and keeping the high word (grounded on
// original_source/src/main.rs's closing `modulus_switch` closure:
// `(input as f64 / 2^32).round()`).
func ModulusSwitchToNarrowRing(ct *Ciphertext) *Ciphertext32 {
	out := &Ciphertext32{Mask: make([]uint32, len(ct.Mask))}
	for i, a := range ct.Mask {
		out.Mask[i] = narrow(a)
	}
	out.Body = narrow(ct.Body)
	return out
}

func narrow(x ring.Scalar) uint32 {
	const divisor = 4294967296.0 // 2^32
	v := math.Round(float64(x) / divisor)
	return uint32(int64(v))
}
