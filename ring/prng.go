package ring

import (
	"crypto/rand"
	"io"

	"github.com/zeebo/blake3"
)

// PRNG is the entropy source threaded through every sampler. Three logical
// instances (uniform, secret/ternary, Gaussian/noise) are kept as
// independent streams per spec section 6, never shared mutable global
// state (Design Notes, "Global mutable generators").
type PRNG interface {
	Read(p []byte) error
}

// SystemPRNG draws from the OS entropy source. Used in production; not
// seedable.
type SystemPRNG struct{}

// NewPRNG returns a SystemPRNG.
func NewPRNG() *SystemPRNG { return &SystemPRNG{} }

// Read fills p with cryptographically secure random bytes.
func (SystemPRNG) Read(p []byte) error {
	_, err := io.ReadFull(rand.Reader, p)
	return err
}

// KeyedPRNG is a seedable, reproducible entropy stream backed by the
// blake3 extendable-output function. Grounded on ring/prng.go's
// CRPGenerator (a blake2b-keyed clocked PRNG in the teacher's history);
// re-grounded onto blake3 since that is the keyed-hash primitive already
// committed to the teacher's dependency set. Required for reproducible
// tests (spec section 5, "Seedability is required for reproducible
// tests").
type KeyedPRNG struct {
	xof io.Reader
}

// NewKeyedPRNG derives a deterministic byte stream from seed. The same
// seed always yields the same stream, making key generation, encryption
// noise, and bootstrap tests reproducible.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	h := blake3.New()
	if _, err := h.Write(seed); err != nil {
		return nil, err
	}
	return &KeyedPRNG{xof: h.Digest()}, nil
}

// Read fills p by consuming the next len(p) bytes of the derived stream.
func (k *KeyedPRNG) Read(p []byte) error {
	_, err := io.ReadFull(k.xof, p)
	return err
}
