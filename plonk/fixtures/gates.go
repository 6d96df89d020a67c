/*
Copyright © 2021 ConsenSys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fixtures holds small, hand-built example ConstraintSystem gates
// and lookups, adapted from the identities
// the sparse-R1CS assertion builder once compiled directly into PLONK
// selector constraints (AssertIsEqual, AssertIsBoolean).
package fixtures

import "github.com/cipherem/plonk-quotient/plonk"

// StandardGate returns a trivial equality gate over two advice columns:
// Advice(0, 0) - Advice(1, 0), the PLONK-native equivalent of the
// sparse-R1CS builder's AssertIsEqual between two wires.
func StandardGate() plonk.Gate {
	a := plonk.AdviceExpr(0, 0)
	b := plonk.AdviceExpr(1, 0)
	return plonk.Gate{
		Name:        "equal",
		Polynomials: []*plonk.Expression{plonk.Sub(a, b)},
	}
}

// BooleanGate returns the boolean-constraint identity v*(1-v) = 0 over
// advice column 0, the PLONK-native equivalent of AssertIsBoolean.
func BooleanGate() plonk.Gate {
	var oneVal plonk.F
	oneVal.SetOne()

	v := plonk.AdviceExpr(0, 0)
	one := plonk.ConstantExpr(oneVal)
	oneMinusV := plonk.Sub(one, v)
	return plonk.Gate{
		Name:        "boolean",
		Polynomials: []*plonk.Expression{plonk.Mul(v, oneMinusV)},
	}
}

// ExampleLookup returns a lookup proving that advice column 0 is contained
// in fixed column 0, uncompressed (a single input/table expression each).
func ExampleLookup() plonk.LookupArgument {
	return plonk.LookupArgument{
		Name:             "membership",
		InputExpressions: []*plonk.Expression{plonk.AdviceExpr(0, 0)},
		TableExpressions: []*plonk.Expression{plonk.FixedExpr(0, 0)},
	}
}
