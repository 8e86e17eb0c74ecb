package bootstrap

import (
	"github.com/sergirovira/mfhe-brk/encoding"
	"github.com/sergirovira/mfhe-brk/lwe"
	"github.com/sergirovira/mfhe-brk/mpc"
	"github.com/sergirovira/mfhe-brk/params"
	"github.com/sergirovira/mfhe-brk/rgsw"
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// NandCombine homomorphically combines two gate-encoded LWE ciphertexts
// into the NAND-gate input ciphertext: result = Δ_gate − ct1 − ct2,
// using the linearity of LWE ciphertexts under the fixed encoding
// constant (grounded on original_source/src/main.rs's NAND-gate setup:
// "lwe_ct.update_with_sub(lwe_ct1); lwe_ct.update_with_sub(lwe_ct2);
// body += Δ_gate").
func NandCombine(ct1, ct2 *lwe.Ciphertext) *lwe.Ciphertext {
	n := ct1.Dimension()
	out := lwe.NewCiphertext(n)
	out.Sub(ct1)
	out.Sub(ct2)
	out.Body += gateConstant()
	return out
}

func gateConstant() ring.Scalar {
	return encoding.EncodeGate(1)
}

// NewConstantAccumulator builds the RLWE accumulator whose body
// polynomial is the constant Δ_gate at every coefficient — the
// look-up table for a single-output gate such as NAND, which does not
// depend on the rotation index (spec section 4.6).
func NewConstantAccumulator(r *ring.Ring) *rlwe.Ciphertext {
	ct := rlwe.NewCiphertext(r)
	delta := gateConstant()
	for i := range ct.Value[1] {
		ct.Value[1][i] = delta
	}
	return ct
}

// GateBootstrap runs the full refresh cycle of spec sections 4.6-4.7 on
// a combined gate-input ciphertext: blind rotation against the BSK,
// sample extraction of the constant coefficient, and key switching back
// to the joint LWE secret's dimension. The returned ciphertext encrypts
// the gate's output under the joint LWE secret, Δ_gate-encoded.
func GateBootstrap(ev *rgsw.Evaluator, ct *lwe.Ciphertext, bsk *mpc.BootstrappingKey, ksk *lwe.KeyswitchKey, p params.Parameters) *lwe.Ciphertext {
	accumulator := NewConstantAccumulator(ev.Ring)
	BlindRotate(ev, ct, accumulator, bsk, p.LogN(), p.PartyCount())

	extracted := lwe.SampleExtract(ev.Ring, accumulator)
	return ksk.Switch(extracted)
}

// GateBootstrapFourier is the Fourier-accelerated twin of GateBootstrap,
// taking a pre-transformed BSK and monomial bank.
func GateBootstrapFourier(ev *rgsw.Evaluator, ct *lwe.Ciphertext, bsk []FourierRow, monomials *MonomialBank, ksk *lwe.KeyswitchKey, p params.Parameters) *lwe.Ciphertext {
	accumulator := NewConstantAccumulator(ev.Ring)
	BlindRotateFourier(ev, ct, accumulator, bsk, monomials, p.LogN(), p.PartyCount())

	extracted := lwe.SampleExtract(ev.Ring, accumulator)
	return ksk.Switch(extracted)
}
