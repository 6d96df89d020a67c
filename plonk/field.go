package plonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// F is the scalar field the evaluator computes over: the bls12-381 scalar
// field, as used throughout the teacher's PLONK backend.
type F = fr.Element

var (
	fZero F
	fOne  F
	fTwo  F

	// Zeta is a primitive cube root of unity in F: Zeta^3 == 1, Zeta != 1.
	// gnark-crypto's fr.Element does not carry a catalog ZETA constant the
	// way the original's Pasta curves do, so it is derived once below.
	Zeta F

	// Delta generates a large-order subgroup of F's multiplicative group,
	// used to advance the permutation argument's delta ladder one column at
	// a time. It only needs to be a fixed nonzero value distinct from 1 and
	// from Zeta; it is not required to be a full-group generator.
	Delta F
)

func init() {
	fZero.SetZero()
	fOne.SetOne()
	fTwo.SetUint64(2)

	Zeta = findCubeRootOfUnity()
	Delta = findDeltaGenerator()
}

// findCubeRootOfUnity returns a primitive cube root of unity of F by trial
// exponentiation: if the multiplicative group order p-1 is divisible by 3,
// x^((p-1)/3) is a cube root of unity for any x, and is nontrivial for all
// but a 1/3 fraction of choices of x. This mirrors the trial-exponentiation
// style gnark-crypto itself uses to locate primitive roots of a given order
// when building FFT domains.
func findCubeRootOfUnity() F {
	groupOrder := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	three := big.NewInt(3)
	quotient, remainder := new(big.Int).QuoRem(groupOrder, three, new(big.Int))
	if remainder.Sign() != 0 {
		// p-1 is not divisible by 3: 1 is the only cube root of unity.
		var one F
		one.SetOne()
		return one
	}

	var candidate, root F
	for seed := uint64(2); ; seed++ {
		candidate.SetUint64(seed)
		root.Exp(candidate, quotient)
		if !root.IsOne() {
			return root
		}
	}
}

// findDeltaGenerator returns an element distinct from 1 and from Zeta by
// trial exponentiation against a short list of small primes: a candidate
// is accepted when, for every prime l in the list, candidate^((p-1)/l)
// (integer division) is not 1, i.e. it is not an l-th power for any listed
// prime l dividing p-1. Full factorization of p-1 is not attempted, so the
// result is not verified to be a full-order generator; correctness of the
// delta ladder only requires a fixed value disjoint from the small-order
// elements the permutation argument's own roots of unity occupy.
func findDeltaGenerator() F {
	smallPrimes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}
	groupOrder := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))

	var candidate, probe F
	for seed := uint64(2); ; seed++ {
		candidate.SetUint64(seed)
		if candidate.Equal(&Zeta) {
			continue
		}
		ok := true
		for _, p := range smallPrimes {
			exp := new(big.Int).Div(groupOrder, big.NewInt(0).SetUint64(p))
			probe.Exp(candidate, exp)
			if probe.IsOne() {
				ok = false
				break
			}
		}
		if ok {
			return candidate
		}
	}
}
