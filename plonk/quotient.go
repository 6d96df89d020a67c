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

import (
	"math/big"

	"github.com/cipherem/plonk-quotient/internal/parallel"
)

// EvaluateH assembles the quotient polynomial for one or more parallel
// proofs against pk and ev, per spec.md §4.8. The returned Polynomial has
// length pk.Domain.ExtendedLen() and carries the LagrangeOnCoset tag.
//
// Proofs are processed one after another, each continuing the running
// Horner accumulator left by the previous proof — this is not proof
// isolation, it is the batching behavior spec.md §4.8 describes ("zip
// over advice, instance, lookup-committed, permutation-committed").
func EvaluateH(pk *ProvingKey, ev *Evaluator, proofs []ProofInput, beta, gamma, theta, y F) (Polynomial, error) {
	if pk.Domain.ExtendedK() <= pk.Domain.K() {
		return Polynomial{}, ErrDomainNotExtended
	}
	if pk.CS.BlindingFactors+1 > pk.Domain.ExtendedLen() {
		return Polynomial{}, ErrBlindingFactorsExceedDomain
	}
	for _, p := range pk.FixedCosets {
		if p.Len() != pk.Domain.ExtendedLen() {
			return Polynomial{}, ErrColumnLengthMismatch
		}
	}

	values := pk.Domain.EmptyExtended()
	rotScale := pk.Domain.RotationScale()
	isize := int32(pk.Domain.ExtendedLen())

	for _, proof := range proofs {
		if len(proof.Lookups) != len(pk.CS.Lookups) {
			return Polynomial{}, ErrNoLookupGraphs
		}

		adviceCosets, err := liftAll(pk.Domain, proof.AdvicePolys)
		if err != nil {
			return Polynomial{}, err
		}
		instanceCosets, err := liftAll(pk.Domain, proof.InstancePolys)
		if err != nil {
			return Polynomial{}, err
		}

		evaluateGatesPass(ev, values, pk.FixedCosets, adviceCosets, instanceCosets, proof.Challenges, beta, gamma, theta, y, rotScale, isize)

		if err := evaluatePermutationPass(pk, values, pk.FixedCosets, adviceCosets, instanceCosets, proof.Permutations, beta, gamma, y, rotScale, isize); err != nil {
			return Polynomial{}, err
		}

		if err := evaluateLookupsPass(pk, ev, values, pk.FixedCosets, adviceCosets, instanceCosets, proof.Challenges, proof.Lookups, beta, gamma, theta, y, rotScale, isize); err != nil {
			return Polynomial{}, err
		}
	}

	return values, nil
}

func liftAll(d *Domain, polys []Polynomial) ([]Polynomial, error) {
	out := make([]Polynomial, len(polys))
	for i, p := range polys {
		lifted, err := d.CoeffToExtended(p)
		if err != nil {
			return nil, err
		}
		out[i] = lifted
	}
	return out, nil
}

// evaluateGatesPass is Pass 1 of spec.md §4.8: fold every custom-gate
// identity into values[idx] in place via the fused custom-gate graph's
// PreviousValue/Y Horner ladder.
func evaluateGatesPass(
	ev *Evaluator,
	values Polynomial,
	fixed, advice, instance []Polynomial,
	challenges []F,
	beta, gamma, theta, y F,
	rotScale, isize int32,
) {
	// With no gate identities the graph is empty; values is left as it is
	// rather than overwritten with the empty graph's zero result.
	if ev.CustomGates.NumCalculations() == 0 {
		return
	}
	parallel.Chunks(values.Len(), func(start, end, _ int) {
		data := ev.CustomGates.newEvaluationData()
		for idx := start; idx < end; idx++ {
			ev.CustomGates.resolveRotations(data, idx, rotScale, isize)
			values.Values[idx] = ev.CustomGates.evaluate(data, fixed, advice, instance, challenges, beta, gamma, theta, y, values.Values[idx])
		}
	})
}

// colValue reads the value a permutation column contributes at row idx,
// selecting the advice/fixed/instance coset table named by col.Type.
func colValue(col Column, fixed, advice, instance []Polynomial, idx int) F {
	switch col.Type {
	case AnyFixed:
		return fixed[col.Index].at(idx)
	case AnyAdvice:
		return advice[col.Index].at(idx)
	case AnyInstance:
		return instance[col.Index].at(idx)
	default:
		panic("plonk: unreachable column type")
	}
}

// evaluatePermutationPass is Pass 2 of spec.md §4.8.
func evaluatePermutationPass(
	pk *ProvingKey,
	values Polynomial,
	fixed, advice, instance []Polynomial,
	committed PermutationCommitted,
	beta, gamma, y F,
	rotScale, isize int32,
) error {
	sets := committed.Sets
	if len(sets) == 0 {
		return nil
	}

	chunkLen := pk.CS.ChunkLen()
	columnChunks := chunkColumns(pk.CS.Permutation.Columns, chunkLen)
	cosetChunks := chunkPolynomials(pk.PermutationCosets, chunkLen)
	if len(columnChunks) != len(sets) || len(cosetChunks) != len(sets) {
		return ErrPermutationSetSizeMismatch
	}

	zCosets := make([]Polynomial, len(sets))
	for i, set := range sets {
		if set.Z.Basis != LagrangeOnCoset {
			return ErrWrongBasis
		}
		zCosets[i] = set.Z
	}

	lastRotation := Rotation(-(pk.CS.BlindingFactors + 1))
	var deltaStart F
	deltaStart.Mul(&beta, &Zeta)

	extendedOmega := pk.Domain.GetExtendedOmega()

	parallel.Chunks(values.Len(), func(start, end, _ int) {
		var betaTerm F
		betaTerm.Exp(extendedOmega, big.NewInt(int64(start)))

		for idx := start; idx < end; idx++ {
			rNext := RotIdx(idx, 1, rotScale, isize)
			rLast := RotIdx(idx, lastRotation, rotScale, isize)

			v := values.Values[idx]
			l0 := pk.L0.at(idx)
			lLast := pk.LLast.at(idx)
			lActiveRow := pk.LActiveRow.at(idx)

			var term F

			// 1. first-set boundary: (1 - z_0[idx]) * l_0[idx]
			z0 := zCosets[0].at(idx)
			term.Sub(&fOne, &z0)
			term.Mul(&term, &l0)
			v.Mul(&v, &y)
			v.Add(&v, &term)

			// 2. last-set boolean boundary: (z_L[idx]^2 - z_L[idx]) * l_last[idx]
			zLast := zCosets[len(zCosets)-1].at(idx)
			var zLastSq F
			zLastSq.Square(&zLast)
			term.Sub(&zLastSq, &zLast)
			term.Mul(&term, &lLast)
			v.Mul(&v, &y)
			v.Add(&v, &term)

			// 3. stitching between consecutive sets
			for i := 1; i < len(zCosets); i++ {
				zi := zCosets[i].at(idx)
				ziPrevAtLast := zCosets[i-1].at(rLast)
				term.Sub(&zi, &ziPrevAtLast)
				term.Mul(&term, &l0)
				v.Mul(&v, &y)
				v.Add(&v, &term)
			}

			// 4. per-chunk permutation identity; the delta ladder persists
			// across column chunks within this row, reseeded each row.
			currentDelta := deltaStart
			currentDelta.Mul(&currentDelta, &betaTerm)

			for i := range sets {
				cols := columnChunks[i]
				cosets := cosetChunks[i]

				left := zCosets[i].at(rNext)
				right := zCosets[i].at(idx)

				for j, col := range cols {
					colVal := colValue(col, fixed, advice, instance, idx)
					sVal := cosets[j].at(idx)

					var lt F
					lt.Mul(&beta, &sVal)
					lt.Add(&lt, &colVal)
					lt.Add(&lt, &gamma)
					left.Mul(&left, &lt)

					var rt F
					rt.Add(&colVal, &currentDelta)
					rt.Add(&rt, &gamma)
					right.Mul(&right, &rt)

					currentDelta.Mul(&currentDelta, &Delta)
				}

				term.Sub(&left, &right)
				term.Mul(&term, &lActiveRow)
				v.Mul(&v, &y)
				v.Add(&v, &term)
			}

			values.Values[idx] = v
			betaTerm.Mul(&betaTerm, &extendedOmega)
		}
	})

	return nil
}

// evaluateLookupsPass is Pass 3 of spec.md §4.8. Each lookup's coset
// polynomials are lifted and discarded one lookup at a time to bound peak
// memory, per spec.md §5.
func evaluateLookupsPass(
	pk *ProvingKey,
	ev *Evaluator,
	values Polynomial,
	fixed, advice, instance []Polynomial,
	challenges []F,
	committed []LookupCommitted,
	beta, gamma, theta, y F,
	rotScale, isize int32,
) error {
	for n, lc := range committed {
		productCoset, err := pk.Domain.CoeffToExtended(lc.ProductPoly)
		if err != nil {
			return err
		}
		permInputCoset, err := pk.Domain.CoeffToExtended(lc.PermutedInputPoly)
		if err != nil {
			return err
		}
		permTableCoset, err := pk.Domain.CoeffToExtended(lc.PermutedTablePoly)
		if err != nil {
			return err
		}

		graph := ev.Lookups[n]

		parallel.Chunks(values.Len(), func(start, end, _ int) {
			data := graph.newEvaluationData()
			for idx := start; idx < end; idx++ {
				rNext := RotIdx(idx, 1, rotScale, isize)
				rPrev := RotIdx(idx, -1, rotScale, isize)

				graph.resolveRotations(data, idx, rotScale, isize)
				tableValue := graph.evaluate(data, fixed, advice, instance, challenges, beta, gamma, theta, y, fZero)

				permInput := permInputCoset.at(idx)
				permTable := permTableCoset.at(idx)
				var aMinusS F
				aMinusS.Sub(&permInput, &permTable)

				product := productCoset.at(idx)
				l0 := pk.L0.at(idx)
				lLast := pk.LLast.at(idx)
				lActiveRow := pk.LActiveRow.at(idx)

				v := values.Values[idx]
				var term F

				// 3. (1 - product[idx]) * l_0[idx]
				term.Sub(&fOne, &product)
				term.Mul(&term, &l0)
				v.Mul(&v, &y)
				v.Add(&v, &term)

				// 4. (product[idx]^2 - product[idx]) * l_last[idx]
				var productSq F
				productSq.Square(&product)
				term.Sub(&productSq, &product)
				term.Mul(&term, &lLast)
				v.Mul(&v, &y)
				v.Add(&v, &term)

				// 5. (product[r_next]*(permInput+beta)*(permTable+gamma) - product[idx]*table_value) * l_active_row[idx]
				productNext := productCoset.at(rNext)
				var a, b F
				a.Add(&permInput, &beta)
				b.Add(&permTable, &gamma)
				var lhs F
				lhs.Mul(&productNext, &a)
				lhs.Mul(&lhs, &b)
				var rhs F
				rhs.Mul(&product, &tableValue)
				term.Sub(&lhs, &rhs)
				term.Mul(&term, &lActiveRow)
				v.Mul(&v, &y)
				v.Add(&v, &term)

				// 6. a_minus_s * l_0[idx]
				term.Mul(&aMinusS, &l0)
				v.Mul(&v, &y)
				v.Add(&v, &term)

				// 7. a_minus_s * (permInput[idx] - permInput[r_prev]) * l_active_row[idx]
				permInputPrev := permInputCoset.at(rPrev)
				var diff F
				diff.Sub(&permInput, &permInputPrev)
				term.Mul(&aMinusS, &diff)
				term.Mul(&term, &lActiveRow)
				v.Mul(&v, &y)
				v.Add(&v, &term)

				values.Values[idx] = v
			}
		})
	}

	return nil
}

func chunkColumns(cols []Column, chunkLen int) [][]Column {
	var out [][]Column
	for start := 0; start < len(cols); start += chunkLen {
		end := start + chunkLen
		if end > len(cols) {
			end = len(cols)
		}
		out = append(out, cols[start:end])
	}
	return out
}

func chunkPolynomials(polys []Polynomial, chunkLen int) [][]Polynomial {
	var out [][]Polynomial
	for start := 0; start < len(polys); start += chunkLen {
		end := start + chunkLen
		if end > len(polys) {
			end = len(polys)
		}
		out = append(out, polys[start:end])
	}
	return out
}
