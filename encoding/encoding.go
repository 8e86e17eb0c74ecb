// Package encoding implements the plaintext <-> torus encoders of spec
// section 6: binary, ternary, gate and gadget encodings over the 64-bit
// modulus, plus the parallel 32-bit set used by the narrowed
// modulus-switched path (SPEC_FULL.md section D.2).
package encoding

import "github.com/sergirovira/mfhe-brk/ring"

// gateConstant64 is q/8 for q = 2^64, i.e. 1 << 61.
const gateConstant64 ring.Scalar = 1 << 61

// negGateConstant64 is the hardcoded encoding of a zero gate bit:
// -q/8 mod 2^64, i.e. q - q/8 (spec section 6).
const negGateConstant64 ring.Scalar = 16140901064495857664

// EncodeBinary maps 0 -> 0, 1 -> q/2.
func EncodeBinary(x uint64) ring.Scalar {
	if x != 0 {
		x = 1
	}
	return ring.Scalar(x) << 63
}

// DecodeBinary maps the half of Z_q centred on q/2 (roughly [q/4, 3q/4))
// to 1, otherwise 0.
func DecodeBinary(x ring.Scalar) uint64 {
	const lower = ^ring.Scalar(0) >> 2
	const upper = lower + (^ring.Scalar(0) >> 1)
	if x >= lower && x < upper {
		return 1
	}
	return 0
}

// EncodeTernary maps 0 -> 0, 1 -> q/3, -1 -> 2q/3, the
// three equidistant representatives of spec section 6.
func EncodeTernary(x int64) ring.Scalar {
	const third = ring.Scalar(6148914691236517205) // floor(2^64 / 3)
	switch x {
	case 0:
		return 0
	case 1:
		return third
	case -1:
		return 2 * third
	default:
		panic("encoding: not a ternary scalar")
	}
}

// DecodeTernary rounds x to the nearest of the three canonical ternary
// representatives (0, 1, -1). Per spec section 7 this is a silent
// decoding-ambiguity policy: out-of-bucket values round to the nearest
// bucket rather than erroring.
func DecodeTernary(x ring.Scalar) int64 {
	const sixth = ring.Scalar(3074457345618258602) // floor(2^64/6)
	const third = sixth + sixth
	const half = ^ring.Scalar(0) / 2
	switch {
	case x > sixth && x <= half:
		return 1
	case x > half && x <= half+third:
		return -1
	default:
		return 0
	}
}

// EncodeGate maps nonzero -> q/8, zero -> -q/8 (the hardcoded constant
// 16140901064495857664 for w=64), the canonical gate-encoding delta
// Δ_gate of spec section 3.
func EncodeGate(x uint64) ring.Scalar {
	if x != 0 {
		return gateConstant64
	}
	return negGateConstant64
}

// DecodeGate inverts EncodeGate by rounding to the nearer of the two
// representatives: [0, q/2) (around q/8) decodes to 1, [q/2, q) (around
// -q/8) decodes to 0.
func DecodeGate(x ring.Scalar) uint64 {
	if x < ring.Scalar(1)<<63 {
		return 1
	}
	return 0
}

// EncodeGadget encodes x for the RGSW gadget base B_rgsw: x -> x * q/B_rgsw.
func EncodeGadget(x ring.Scalar, baseLog int) ring.Scalar {
	shift := uint(64 - baseLog)
	return x << shift
}

// DecodeGadget inverts EncodeGadget, rounding to the nearest multiple of
// q/B_rgsw and reducing modulo B_rgsw.
func DecodeGadget(x ring.Scalar, baseLog int) ring.Scalar {
	shift := uint(64 - baseLog)
	rounded := (x + (ring.Scalar(1) << (shift - 1))) >> shift
	return rounded % (ring.Scalar(1) << uint(baseLog))
}

// --- 32-bit parallel set (SPEC_FULL.md section D.2) ---

const gateConstant32 uint32 = 1 << 29
const negGateConstant32 uint32 = 3758096384

// EncodeGate32 is the 32-bit twin of EncodeGate, used by the narrowed
// modulus-switched chaining path.
func EncodeGate32(x uint32) uint32 {
	if x != 0 {
		return gateConstant32
	}
	return negGateConstant32
}

// DecodeGate32 is the 32-bit twin of DecodeGate.
func DecodeGate32(x uint32) uint32 {
	if x < uint32(1)<<31 {
		return 1
	}
	return 0
}

// EncodeBinary32 is the 32-bit twin of EncodeBinary.
func EncodeBinary32(x uint32) uint32 {
	if x != 0 {
		x = 1
	}
	return x << 31
}

// DecodeBinary32 is the 32-bit twin of DecodeBinary.
func DecodeBinary32(x uint32) uint32 {
	const lower = ^uint32(0) >> 2
	const upper = lower + (^uint32(0) >> 1)
	if x >= lower && x < upper {
		return 1
	}
	return 0
}
