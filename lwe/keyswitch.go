package lwe

import (
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rgsw"
)

// KeyswitchKey is the standard gadget-decomposed LWE→LWE key-switching
// table of spec section 3: for each input-key bit i, ℓ_ks encryptions
// of s_in,i · B_ks^{−(j+1)}·q under the output key.
type KeyswitchKey struct {
	Rows       [][]*Ciphertext // [inputDim][levels]
	Decomposer rgsw.Decomposer
}

// GenKeyswitchKey builds the key-switching key from inputKey to
// outputKey using the given gadget parameters.
func GenKeyswitchKey(inputKey, outputKey *SecretKey, d rgsw.Decomposer, gen *ring.Generators) *KeyswitchKey {
	rows := make([][]*Ciphertext, inputKey.Dimension())
	for i, bit := range inputKey.Value {
		row := make([]*Ciphertext, d.Levels)
		for level := 0; level < d.Levels; level++ {
			delta := d.Delta(level)
			row[level] = EncryptSK(outputKey, bit*delta, gen)
		}
		rows[i] = row
	}
	return &KeyswitchKey{Rows: rows, Decomposer: d}
}

// Switch rewrites ciphertext before (under inputKey) into a ciphertext
// under outputKey (spec section 4.7): decompose each mask coefficient
// into ℓ_ks signed-balanced digits, and subtract digit·row for every
// (input index, level) pair from a ciphertext initialised to (0, b).
func (ksk *KeyswitchKey) Switch(before *Ciphertext) *Ciphertext {
	outDim := len(ksk.Rows[0][0].Mask)
	after := NewCiphertext(outDim)
	after.Body = before.Body

	for i, a := range before.Mask {
		if a == 0 {
			continue
		}
		digits := ksk.Decomposer.Digits(a)
		row := ksk.Rows[i]
		for level, dg := range digits {
			if dg == 0 {
				continue
			}
			after.SubScaled(ring.Scalar(dg), row[level])
		}
	}
	return after
}
