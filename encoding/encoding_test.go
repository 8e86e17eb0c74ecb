package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryRoundTrip(t *testing.T) {
	assert.Equal(t, uint64(0), DecodeBinary(EncodeBinary(0)))
	assert.Equal(t, uint64(1), DecodeBinary(EncodeBinary(1)))
}

func TestTernaryRoundTrip(t *testing.T) {
	for _, x := range []int64{0, 1, -1} {
		assert.Equal(t, x, DecodeTernary(EncodeTernary(x)))
	}
}

func TestGateRoundTrip(t *testing.T) {
	assert.Equal(t, uint64(1), DecodeGate(EncodeGate(1)))
	assert.Equal(t, uint64(0), DecodeGate(EncodeGate(0)))
}

func TestGateEncodingConstants(t *testing.T) {
	assert.Equal(t, gateConstant64, EncodeGate(1))
	assert.EqualValues(t, 16140901064495857664, EncodeGate(0))
}

func TestGadgetRoundTrip(t *testing.T) {
	const baseLog = 10
	for x := uint64(0); x < (1 << baseLog); x++ {
		got := DecodeGadget(EncodeGadget(x, baseLog), baseLog)
		assert.Equal(t, x, got)
	}
}

func TestGate32RoundTrip(t *testing.T) {
	assert.Equal(t, uint32(1), DecodeGate32(EncodeGate32(1)))
	assert.Equal(t, uint32(0), DecodeGate32(EncodeGate32(0)))
}

func TestBinary32RoundTrip(t *testing.T) {
	assert.Equal(t, uint32(0), DecodeBinary32(EncodeBinary32(0)))
	assert.Equal(t, uint32(1), DecodeBinary32(EncodeBinary32(1)))
}
