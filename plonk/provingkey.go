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

// Column names one cell source: which of the fixed/advice/instance column
// groups, and which column within that group.
type Column struct {
	Type  Any
	Index int
}

// Gate is one custom gate: a set of polynomial identities, each of which
// must vanish on every row of the original subgroup. Selectors are assumed
// already eliminated — every Polynomials entry is Selector-free, per
// spec.md §4.1.
type Gate struct {
	Name        string
	Polynomials []*Expression
}

// LookupArgument is one declared lookup: a compressed-input column must
// appear in a compressed-table column.
type LookupArgument struct {
	Name             string
	InputExpressions []*Expression
	TableExpressions []*Expression
}

// PermutationArgument lists the columns participating in the copy-
// constraint permutation, in the fixed order cs.permutation.columns[] is
// chunked by (the teacher's equivalent grouping of wires that must be
// checked equal up to a permutation).
type PermutationArgument struct {
	Columns []Column
}

// ConstraintSystem is the compiled shape of a circuit: its gates, lookups,
// and permutation description, plus the two scalars EvaluateH's chunking
// and rotation arithmetic depend on.
type ConstraintSystem struct {
	Gates       []Gate
	Lookups     []LookupArgument
	Permutation PermutationArgument

	// Degree is the maximum degree any single gate/lookup/permutation
	// identity can reach; ChunkLen (columns per permutation set) is
	// Degree-2, matching the chunking used when the permutation argument
	// was committed.
	Degree int
	// BlindingFactors is the number of trailing rows reserved for
	// zero-knowledge randomization.
	BlindingFactors int
}

// ChunkLen returns the number of permutation columns grouped into each
// committed set, cs.degree()-2 per spec.md §4.8.
func (cs *ConstraintSystem) ChunkLen() int { return cs.Degree - 2 }

// ProvingKey bundles everything EvaluateH needs that does not vary per
// proof: the compiled constraint system, the domain, the fixed-column and
// permutation cosets, and the precomputed Lagrange boundary polynomials —
// all already lifted to the extended coset by external collaborators,
// per spec.md §3/§6.
type ProvingKey struct {
	Domain *Domain
	CS     *ConstraintSystem

	// FixedCosets holds one LagrangeOnCoset Polynomial per fixed column.
	FixedCosets []Polynomial

	// PermutationCosets holds one LagrangeOnCoset Polynomial per column
	// named in CS.Permutation.Columns, in the same order, chunked by
	// CS.ChunkLen() when EvaluateH walks (set, column-chunk, coset-chunk)
	// triples.
	PermutationCosets []Polynomial

	// L0, LLast and LActiveRow are precomputed Lagrange boundary
	// polynomials on the extended coset; LActiveRow = 1 - (LLast + l_blind)
	// is provided ready-made, never reconstructed by the evaluator.
	L0, LLast, LActiveRow Polynomial
}
