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

// GraphEvaluator compiles Expression trees into a flat, common-subexpression
// -eliminated straight-line program: a pool of constants, a pool of distinct
// rotations, and an ordered list of CalculationInfo opcodes whose results
// land in successive intermediate slots. See spec.md §2–§4.3.
type GraphEvaluator struct {
	constants        []F
	rotations        []Rotation
	calculations     []CalculationInfo
	numIntermediates int
}

// NewGraphEvaluator returns a graph with the constant pool pre-seeded with
// {0, 1, 2} at indices 0, 1, 2 (ValueSource.IsConstantZero/One/Two and the
// Product/Sum peephole rewrites below depend on this exact seeding).
func NewGraphEvaluator() *GraphEvaluator {
	g := &GraphEvaluator{}
	g.addConstant(fZero)
	g.addConstant(fOne)
	g.addConstant(fTwo)
	return g
}

// addConstant interns c into the constant pool, returning its ValueSource.
func (g *GraphEvaluator) addConstant(c F) ValueSource {
	for i, existing := range g.constants {
		if existing.Equal(&c) {
			return ConstantSource(i)
		}
	}
	g.constants = append(g.constants, c)
	return ConstantSource(len(g.constants) - 1)
}

// addRotation interns r into the rotation pool, returning its slot index
// (not the raw Rotation amount — FixedSource/AdviceSource/InstanceSource
// index by slot, per valuesource.go).
func (g *GraphEvaluator) addRotation(r Rotation) int {
	for i, existing := range g.rotations {
		if existing == r {
			return i
		}
	}
	g.rotations = append(g.rotations, r)
	return len(g.rotations) - 1
}

// addCalculation interns calc, deduplicating against any structurally equal
// calculation already in the program, and returns an Intermediate
// ValueSource naming its result slot.
func (g *GraphEvaluator) addCalculation(calc Calculation) ValueSource {
	for _, existing := range g.calculations {
		if existing.Calculation.equal(calc) {
			return IntermediateSource(existing.Target)
		}
	}
	target := g.numIntermediates
	g.calculations = append(g.calculations, CalculationInfo{Calculation: calc, Target: target})
	g.numIntermediates++
	return IntermediateSource(target)
}

// orderedPair returns (a, b) reordered so the lower ValueSource (by Less)
// comes first, canonicalizing commutative Add/Mul operand order so that
// e.g. a+b and b+a compile to the same calculation and dedup under CSE.
func orderedPair(a, b ValueSource) (ValueSource, ValueSource) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// addExpression compiles expr into the graph, applying the algebraic
// rewrites of spec.md §4.3 (identity/absorbing-element elimination,
// Double/Square recognition, operand canonicalization) as it goes, and
// returns the ValueSource naming the compiled result.
//
// Selector panics: virtual selectors must be eliminated (folded into the
// gates that reference them) before an Expression reaches the compiler.
func (g *GraphEvaluator) addExpression(expr *Expression) ValueSource {
	switch expr.kind {
	case exprConstant:
		return g.addConstant(expr.constant)

	case exprSelector:
		panic("plonk: virtual selectors must be eliminated before compilation")

	case exprFixed:
		rotSlot := g.addRotation(expr.query.Rotation)
		return g.addCalculation(storeCalc(FixedSource(expr.query.ColumnIndex, rotSlot)))

	case exprAdvice:
		rotSlot := g.addRotation(expr.query.Rotation)
		return g.addCalculation(storeCalc(AdviceSource(expr.query.ColumnIndex, rotSlot)))

	case exprInstance:
		rotSlot := g.addRotation(expr.query.Rotation)
		return g.addCalculation(storeCalc(InstanceSource(expr.query.ColumnIndex, rotSlot)))

	case exprChallenge:
		return g.addCalculation(storeCalc(ChallengeSource(expr.index)))

	case exprNegated:
		a := g.addExpression(expr.a)
		if a.IsConstantZero() {
			return a
		}
		return g.addCalculation(negateCalc(a))

	case exprSum:
		// Sub is represented as Add(a, Negated(b)); recognize that shape
		// here and emit a Sub calculation directly rather than compiling
		// the Negated wrapper into its own Negate calculation first, per
		// spec.md §4.3 ("a + (-b) is recognized and emitted as Sub").
		if expr.b.kind == exprNegated {
			a := g.addExpression(expr.a)
			b := g.addExpression(expr.b.a)
			switch {
			case a.IsConstantZero():
				return g.addCalculation(negateCalc(b))
			case b.IsConstantZero():
				return a
			default:
				return g.addCalculation(subCalc(a, b))
			}
		}

		a := g.addExpression(expr.a)
		b := g.addExpression(expr.b)
		switch {
		case a.IsConstantZero():
			return b
		case b.IsConstantZero():
			return a
		default:
			lo, hi := orderedPair(a, b)
			return g.addCalculation(addCalc(lo, hi))
		}

	case exprProduct:
		a := g.addExpression(expr.a)
		b := g.addExpression(expr.b)
		switch {
		case a.IsConstantZero() || b.IsConstantZero():
			return ConstantSource(0)
		case a.IsConstantOne():
			return b
		case b.IsConstantOne():
			return a
		case a.IsConstantTwo():
			return g.addCalculation(doubleCalc(b))
		case b.IsConstantTwo():
			return g.addCalculation(doubleCalc(a))
		case a.Equal(b):
			return g.addCalculation(squareCalc(a))
		default:
			lo, hi := orderedPair(a, b)
			return g.addCalculation(mulCalc(lo, hi))
		}

	case exprScaled:
		if expr.scale.IsZero() {
			return ConstantSource(0)
		}
		if expr.scale.IsOne() {
			return g.addExpression(expr.a)
		}
		a := g.addExpression(expr.a)
		cst := g.addConstant(expr.scale)
		return g.addCalculation(mulCalc(a, cst))

	default:
		panic("plonk: unreachable Expression kind")
	}
}

// addHorner compiles a Horner ladder
// (...((startSrc*factorSrc + parts[0])*factorSrc + parts[1])...)*factorSrc + parts[n-1]
// (the representation used by custom-gate combination over y and lookup
// compression over theta, spec.md §4.5/§4.6) and returns its ValueSource.
// startSrc and factorSrc are raw ValueSources (PreviousValueSource()/YSource()
// for gates, ConstantSource(0)/ThetaSource() for lookups)
// rather than Expressions, since y/theta are distinguished scalars with no
// Expression leaf of their own.
func (g *GraphEvaluator) addHorner(startSrc ValueSource, parts []*Expression, factorSrc ValueSource) ValueSource {
	partSrcs := make([]ValueSource, len(parts))
	for i, p := range parts {
		partSrcs[i] = g.addExpression(p)
	}
	return g.addCalculation(hornerCalc(startSrc, partSrcs, factorSrc))
}

// NumCalculations returns the number of opcodes compiled into the graph so
// far, the black-box signal tests use to check that CSE collapsed
// equivalent sub-expressions (spec.md §8 scenario 4).
func (g *GraphEvaluator) NumCalculations() int { return len(g.calculations) }

// AddExpression compiles expr into the graph and returns the
// ValueSource naming its result, exported so tests and callers outside
// this package can drive the compiler directly (e.g. to build a custom
// Evaluator without going through NewEvaluator's gate/lookup conventions).
func (g *GraphEvaluator) AddExpression(expr *Expression) ValueSource {
	return g.addExpression(expr)
}

// EvaluationData is the per-row scratch a GraphEvaluator's compiled program
// executes into: one slot per intermediate, and the resolved rotated index
// for each entry in the graph's rotation pool.
type EvaluationData struct {
	intermediates []F
	rotations     []int
}

// newEvaluationData allocates zeroed scratch sized to g. A worker allocates
// one EvaluationData per chunk, not per row, and calls resolveRotations
// before each row to avoid per-row allocation (spec.md §9 "per-thread
// scratch").
func (g *GraphEvaluator) newEvaluationData() *EvaluationData {
	return &EvaluationData{
		intermediates: make([]F, g.numIntermediates),
		rotations:     make([]int, len(g.rotations)),
	}
}

// resolveRotations refreshes data.rotations in place against row idx using
// the given domain geometry.
func (g *GraphEvaluator) resolveRotations(data *EvaluationData, idx int, rotScale, isize int32) {
	for i, r := range g.rotations {
		data.rotations[i] = RotIdx(idx, r, rotScale, isize)
	}
}

// evaluate runs the graph's compiled program for one row and returns the
// final calculation's result (or Constant(0) if the graph is empty),
// writing every intermediate in order into data as it goes. Callers must
// call resolveRotations(data, idx, ...) first so data.rotations reflects
// the current row.
func (g *GraphEvaluator) evaluate(
	data *EvaluationData,
	fixed, advice, instance []Polynomial,
	challenges []F,
	beta, gamma, theta, y, previousValue F,
) F {
	ctx := &evalContext{
		rotations:     data.rotations,
		constants:     g.constants,
		intermediates: data.intermediates,
		fixed:         fixed,
		advice:        advice,
		instance:      instance,
		challenges:    challenges,
		beta:          beta,
		gamma:         gamma,
		theta:         theta,
		y:             y,
		previousValue: previousValue,
	}

	var last F
	for _, info := range g.calculations {
		v := info.Calculation.Evaluate(ctx)
		data.intermediates[info.Target] = v
		last = v
	}
	return last
}
