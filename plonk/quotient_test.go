package plonk_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherem/plonk-quotient/planktest"
	"github.com/cipherem/plonk-quotient/plonk"
)

func zeroField() plonk.F { return elem(0) }

func constPoly(v plonk.F, basis plonk.Basis, n int) plonk.Polynomial {
	vals := make([]plonk.F, n)
	for i := range vals {
		vals[i] = v
	}
	return plonk.NewPolynomial(vals, basis)
}

// minimalPK builds a ProvingKey/domain pair with no fixed
// columns and no permutation, small domain N=4 extended to N'=8, suitable
// for the empty-system and single-gate scenarios of spec.md §8.
func minimalPK(t *testing.T) *plonk.ProvingKey {
	t.Helper()
	domain := plonk.NewDomain(4, 8)
	cs := &plonk.ConstraintSystem{Degree: 3, BlindingFactors: 0}
	return &plonk.ProvingKey{
		Domain:            domain,
		CS:                cs,
		FixedCosets:       nil,
		PermutationCosets: nil,
		L0:                constPoly(zeroField(), plonk.LagrangeOnCoset, 8),
		LLast:             constPoly(zeroField(), plonk.LagrangeOnCoset, 8),
		LActiveRow:        constPoly(zeroField(), plonk.LagrangeOnCoset, 8),
	}
}

func TestEvaluateHEmptySystemIsZero(t *testing.T) {
	a := planktest.NewAssert(t)
	pk := minimalPK(t)
	ev := plonk.NewEvaluator(pk.CS)

	beta, gamma, theta, y := elem(3), elem(5), elem(7), elem(11)
	proof := plonk.ProofInput{}

	out, err := plonk.EvaluateH(pk, ev, []plonk.ProofInput{proof}, beta, gamma, theta, y)
	require.NoError(t, err)
	require.Equal(t, 8, out.Len())
	require.Equal(t, plonk.LagrangeOnCoset, out.Basis)

	a.PolynomialEqual(constPoly(zeroField(), plonk.LagrangeOnCoset, 8), out)
}

func TestEvaluateHSingleTrivialGateStaysZero(t *testing.T) {
	a := planktest.NewAssert(t)
	pk := minimalPK(t)
	adv := plonk.AdviceExpr(0, 0)
	pk.CS.Gates = []plonk.Gate{{
		Name:        "trivial",
		Polynomials: []*plonk.Expression{plonk.Sub(adv, adv)},
	}}
	ev := plonk.NewEvaluator(pk.CS)

	advice := []plonk.Polynomial{constPoly(elem(9), plonk.Coefficient, 4)}
	beta, gamma, theta, y := elem(3), elem(5), elem(7), elem(11)
	proof := plonk.ProofInput{AdvicePolys: advice}

	out, err := plonk.EvaluateH(pk, ev, []plonk.ProofInput{proof}, beta, gamma, theta, y)
	require.NoError(t, err)

	a.PolynomialEqual(constPoly(zeroField(), plonk.LagrangeOnCoset, 8), out)
}

// TestEvaluateHSingleRotatedGateMatchesDirectEval exercises a non-constant
// advice column read at a non-zero rotation, per spec.md §8's rotation
// handling: none of the constant-column fixtures above can distinguish a
// correctly rotated read from a misaligned one, since every row holds the
// same value regardless of which physical row RotIdx lands on.
func TestEvaluateHSingleRotatedGateMatchesDirectEval(t *testing.T) {
	a := planktest.NewAssert(t)

	const smallN, extendedN = 4, 16
	domain := plonk.NewDomain(smallN, extendedN)
	cs := &plonk.ConstraintSystem{Degree: 3, BlindingFactors: 0}
	cs.Gates = []plonk.Gate{{
		Name:        "next-minus-current",
		Polynomials: []*plonk.Expression{plonk.Sub(plonk.AdviceExpr(0, 1), plonk.AdviceExpr(0, 0))},
	}}
	pk := &plonk.ProvingKey{
		Domain:     domain,
		CS:         cs,
		L0:         constPoly(zeroField(), plonk.LagrangeOnCoset, extendedN),
		LLast:      constPoly(zeroField(), plonk.LagrangeOnCoset, extendedN),
		LActiveRow: constPoly(zeroField(), plonk.LagrangeOnCoset, extendedN),
	}
	ev := plonk.NewEvaluator(pk.CS)

	// advice(X) = X: a non-constant column, coefficient basis.
	adviceCoeffs := []plonk.F{zeroField(), elem(1), zeroField(), zeroField()}
	advice := []plonk.Polynomial{plonk.NewPolynomial(append([]plonk.F{}, adviceCoeffs...), plonk.Coefficient)}

	beta, gamma, theta, y := elem(3), elem(5), elem(7), elem(11)
	proof := plonk.ProofInput{AdvicePolys: advice}

	out, err := plonk.EvaluateH(pk, ev, []plonk.ProofInput{proof}, beta, gamma, theta, y)
	require.NoError(t, err)

	shift := domain.CosetShift()
	omega := domain.GetExtendedOmega()
	rotScale := domain.RotationScale()

	for idx := 0; idx < extendedN; idx++ {
		var point plonk.F
		point.Exp(omega, big.NewInt(int64(idx)))
		point.Mul(&point, &shift)

		next := plonk.RotIdx(idx, 1, rotScale, int32(extendedN))
		var nextPoint plonk.F
		nextPoint.Exp(omega, big.NewInt(int64(next)))
		nextPoint.Mul(&nextPoint, &shift)

		var want plonk.F
		want.Sub(&nextPoint, &point)

		a.FieldEqual(want, out.Values[idx], "row %d", idx)
	}
}

// TestEvaluateHLookupBoundaryRowVanishes exercises spec.md §8 scenario 6:
// with the lookup product identically 1, both permuted columns identically
// 0, and Constant(0) input/table expressions (so the compressed input/table
// values are also 0), every
// Pass 3 identity term is zero and the accumulator is left untouched.
func TestEvaluateHLookupBoundaryRowVanishes(t *testing.T) {
	a := planktest.NewAssert(t)
	pk := minimalPK(t)
	pk.CS.Lookups = []plonk.LookupArgument{{
		Name:             "zeroed",
		InputExpressions: []*plonk.Expression{plonk.ConstantExpr(zeroField())},
		TableExpressions: []*plonk.Expression{plonk.ConstantExpr(zeroField())},
	}}
	ev := plonk.NewEvaluator(pk.CS)

	lookup := plonk.LookupCommitted{
		ProductPoly:       constPoly(elem(1), plonk.Coefficient, 1),
		PermutedInputPoly: constPoly(zeroField(), plonk.Coefficient, 1),
		PermutedTablePoly: constPoly(zeroField(), plonk.Coefficient, 1),
	}
	beta, gamma, theta, y := elem(3), elem(5), elem(7), elem(11)
	proof := plonk.ProofInput{Lookups: []plonk.LookupCommitted{lookup}}

	out, err := plonk.EvaluateH(pk, ev, []plonk.ProofInput{proof}, beta, gamma, theta, y)
	require.NoError(t, err)

	a.PolynomialEqual(constPoly(zeroField(), plonk.LagrangeOnCoset, 8), out)
}

func TestEvaluateHRejectsLookupCountMismatch(t *testing.T) {
	pk := minimalPK(t)
	pk.CS.Lookups = []plonk.LookupArgument{{
		InputExpressions: []*plonk.Expression{plonk.ConstantExpr(zeroField())},
		TableExpressions: []*plonk.Expression{plonk.ConstantExpr(zeroField())},
	}}
	ev := plonk.NewEvaluator(pk.CS)

	_, err := plonk.EvaluateH(pk, ev, []plonk.ProofInput{{}}, elem(1), elem(1), elem(1), elem(1))
	require.ErrorIs(t, err, plonk.ErrNoLookupGraphs)
}

func TestEvaluateHRejectsUnextendedDomain(t *testing.T) {
	pk := minimalPK(t)
	pk.Domain = plonk.NewDomain(8, 8)
	ev := plonk.NewEvaluator(pk.CS)

	_, err := plonk.EvaluateH(pk, ev, []plonk.ProofInput{{}}, elem(1), elem(1), elem(1), elem(1))
	require.ErrorIs(t, err, plonk.ErrDomainNotExtended)
}
