package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSet() (int, int, int, int, GadgetParameters, GadgetParameters, GadgetParameters, GadgetParameters, float64, float64, float64) {
	return 2048, 494, 4, 3 * 64,
		GadgetParameters{BaseLog: 4, Levels: 15},
		GadgetParameters{BaseLog: 13, Levels: 3},
		GadgetParameters{BaseLog: 10, Levels: 5},
		GadgetParameters{BaseLog: 30, Levels: 2},
		1 << 40, 1 << 17, 1 << 17
}

func TestNewAcceptsValidParameters(t *testing.T) {
	N, n, k, m, data, ks, rgsw, negs, sr, sl, s := validSet()
	_, err := New(N, n, k, m, data, ks, rgsw, negs, sr, sl, s)
	require.NoError(t, err)
}

func TestValidateRejectsNonPowerOfTwoDegree(t *testing.T) {
	N, n, k, m, data, ks, rgsw, negs, sr, sl, s := validSet()
	_, err := New(N+1, n, k, m, data, ks, rgsw, negs, sr, sl, s)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestValidateRejectsZeroPublicKeyWidth(t *testing.T) {
	N, n, k, _, data, ks, rgsw, negs, sr, sl, s := validSet()
	_, err := New(N, n, k, 0, data, ks, rgsw, negs, sr, sl, s)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestValidateRejectsOversizedGadgetDecomposition(t *testing.T) {
	N, n, k, m, _, ks, rgsw, negs, sr, sl, s := validSet()
	oversized := GadgetParameters{BaseLog: 33, Levels: 2} // 66 > 64
	_, err := New(N, n, k, m, oversized, ks, rgsw, negs, sr, sl, s)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestDefaultParametersAreValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, 2048, p.PolyDegree())
	assert.Equal(t, 494, p.LWEDimension())
	assert.Equal(t, 4, p.PartyCount())
	assert.Equal(t, 11, p.LogN())
}
