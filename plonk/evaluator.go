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

package plonk

// Evaluator holds the compiled graphs used by EvaluateH: one graph for all
// custom gates combined via Horner over y, and one graph per lookup
// argument's full compressed identity. See spec.md §4.5/§4.6.
type Evaluator struct {
	CustomGates GraphEvaluator
	Lookups     []GraphEvaluator
}

// NewEvaluator compiles cs's gates and lookups into an Evaluator, ready for
// EvaluateH to drive.
//
// Custom gates: every polynomial identity any gate contributes is folded
// into a single Horner ladder keyed by PreviousValue/Y, i.e.
// ((prev*y + c0)*y + c1)*y + ... + c_{n-1}, matching the teacher's gate-combination
// convention of accumulating all constraints under one random linear
// combination rather than committing one polynomial per gate.
//
// Lookups: each LookupArgument compiles to one graph computing
// (inp_compressed + β)·(tab_compressed + γ), per spec.md §4.6 steps 1–5,
// so EvaluateH's Pass 3 can read the whole "table value" with a single
// evaluate() call.
func NewEvaluator(cs *ConstraintSystem) *Evaluator {
	ev := &Evaluator{}

	gates := NewGraphEvaluator()
	var allParts []*Expression
	for _, gate := range cs.Gates {
		allParts = append(allParts, gate.Polynomials...)
	}
	if len(allParts) > 0 {
		gates.addHorner(PreviousValueSource(), allParts, YSource())
	}
	ev.CustomGates = *gates

	ev.Lookups = make([]GraphEvaluator, 0, len(cs.Lookups))
	for _, lookup := range cs.Lookups {
		g := NewGraphEvaluator()
		inpCompressed := g.addHorner(ConstantSource(0), lookup.InputExpressions, ThetaSource())
		tabCompressed := g.addHorner(ConstantSource(0), lookup.TableExpressions, ThetaSource())

		right := g.addCalculation(addCalc(tabCompressed, GammaSource()))
		left := g.addCalculation(addCalc(inpCompressed, BetaSource()))
		g.addCalculation(mulCalc(left, right))

		ev.Lookups = append(ev.Lookups, *g)
	}
	return ev
}
