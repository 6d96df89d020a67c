package plonk_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherem/plonk-quotient/planktest"
	"github.com/cipherem/plonk-quotient/plonk"
)

// evalAt folds coeffs (lowest degree first) via Horner at point x, the same
// convention CoeffToExtended's underlying polynomial uses.
func evalAt(coeffs []plonk.F, x plonk.F) plonk.F {
	var acc plonk.F
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &coeffs[i])
	}
	return acc
}

// TestCoeffToExtendedIsNaturalOrder exercises the bug a maintainer flagged:
// CoeffToExtended must return its values already bit-reversed back into
// natural order, so that plain RotIdx arithmetic (no bit-reversal awareness)
// lands on the physically correct row. Row j of the lifted polynomial must
// equal p(CosetShift * omega^j) for every j, including rows reached only by
// rotating away from idx via RotIdx — if CoeffToExtended left its output
// bit-reversed this would fail for every non-constant polynomial at every
// rotation other than 0.
func TestCoeffToExtendedIsNaturalOrder(t *testing.T) {
	assert := planktest.NewAssert(t)
	const rotScale, isize = 4, 16

	coeffs := []plonk.F{elem(3), elem(5), elem(2), elem(11)}
	poly := plonk.NewPolynomial(append([]plonk.F{}, coeffs...), plonk.Coefficient)

	domain := plonk.NewDomain(4, isize)
	lifted, err := domain.CoeffToExtended(poly)
	require.NoError(t, err)
	require.Equal(t, isize, lifted.Len())

	shift := domain.CosetShift()
	omega := domain.GetExtendedOmega()

	pointAt := func(j int) plonk.F {
		var p plonk.F
		p.Exp(omega, big.NewInt(int64(j)))
		p.Mul(&p, &shift)
		return p
	}

	for j := 0; j < isize; j++ {
		want := evalAt(coeffs, pointAt(j))
		assert.FieldEqual(want, lifted.Values[j], "row %d: natural-order value mismatch", j)
	}

	for idx := 0; idx < isize; idx++ {
		for r := plonk.Rotation(-2); r <= 2; r++ {
			j := plonk.RotIdx(idx, r, rotScale, isize)
			want := evalAt(coeffs, pointAt(j))
			assert.FieldEqual(want, lifted.Values[j], "idx=%d r=%d -> row %d mismatch", idx, r, j)
		}
	}
}
