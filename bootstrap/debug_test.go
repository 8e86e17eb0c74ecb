package bootstrap

import (
	"github.com/sergirovira/mfhe-brk/lwe"
	"github.com/sergirovira/mfhe-brk/mpc"
	"github.com/sergirovira/mfhe-brk/rgsw"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// DebugObserver bundles callback hooks invoked at each blind-rotation
// step, mirroring the original's bootstrap_debug/bootstrap_fourier_debug
// entry points that printed intermediate decryptions (SPEC_FULL.md
// section D.1). Test-only: never referenced from non-test code.
type DebugObserver struct {
	AfterInitialRotation func(acc *rlwe.Ciphertext)
	AfterStep            func(index int, acc *rlwe.Ciphertext)
}

// blindRotateObserved re-implements BlindRotate with DebugObserver
// hooks fired after the initial rotation and after each of the n
// accumulator updates, for use by noise/correctness tests that need to
// inspect intermediate state.
func blindRotateObserved(ev *rgsw.Evaluator, ct *lwe.Ciphertext, accumulator *rlwe.Ciphertext, bsk *mpc.BootstrappingKey, logN, k int, obs DebugObserver) {
	r := ev.Ring

	rb := lwe.ModulusSwitch(ct.Body, logN)
	accumulator.DivMonomial(r, rb)
	if obs.AfterInitialRotation != nil {
		obs.AfterInitialRotation(accumulator)
	}

	for i, ai := range ct.Mask {
		ri := lwe.ModulusSwitch(ai, logN)
		combination := rgsw.NewCiphertext(r, bsk.Row[i][0].Decomposer)

		for j := 1; j <= k; j++ {
			row := bsk.Row[i][j]
			rotated := row.CopyNew()
			rotated.MulMonomial(r, ri*j)
			rotated.Sub(r, row)
			combination.Add(r, rotated)
		}

		temp := rlwe.NewCiphertext(r)
		ev.ExternalProduct(combination, accumulator, temp)
		accumulator.Add(r, temp)

		if obs.AfterStep != nil {
			obs.AfterStep(i, accumulator)
		}
	}
}
