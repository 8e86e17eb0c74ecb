package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergirovira/mfhe-brk/ring"
)

func TestMonomialBankWrapsDegreesModuloTwoN(t *testing.T) {
	r, err := ring.NewRing(16)
	require.NoError(t, err)
	f := ring.NewFourier(r.N)
	bank := NewMonomialBank(r, f)

	assert.Equal(t, bank.Get(0), bank.Get(2*r.N))
	assert.Equal(t, bank.Get(5), bank.Get(5+2*r.N))
	assert.Equal(t, bank.Get(5), bank.Get(5-2*r.N))
}
