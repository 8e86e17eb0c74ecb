package lwe

import "github.com/sergirovira/mfhe-brk/ring"

// ModulusSwitch implements pbs_modulus_switch for a 64-bit scalar
// (spec section 4.2): maps x ∈ ℤ_{2^64} to y = round(x · 2N / 2^64) mod
// 2N by shifting right by 64 − log₂(2N) − 1, rounding half-up by adding
// the low bit, and shifting right once more.
func ModulusSwitch(x ring.Scalar, logN int) int {
	twoN := 1 << uint(logN+1)
	shift := uint(64 - logN - 2)
	out := uint64(x) >> shift
	out += out & 1
	out >>= 1
	return int(out) % twoN
}

// ModulusSwitch32 is the 32-bit twin of ModulusSwitch, used by the
// narrowed modulus-switched chaining path (SPEC_FULL.md section D.2).
func ModulusSwitch32(x uint32, logN int) int {
	twoN := 1 << uint(logN+1)
	shift := uint(32 - logN - 2)
	out := x >> shift
	out += out & 1
	out >>= 1
	return int(out) % twoN
}
