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

// Package planktest is a small testify-backed helper for asserting field
// element and polynomial equality, adapted from the circuit-level Assert
// helper in the teacher's test package down to this evaluator's scope:
// there is no constraint system to compile, only field arithmetic and
// Polynomial vectors to compare.
package planktest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherem/plonk-quotient/plonk"
)

// Assert embeds a testify/require object for convenience, the same
// embedding style the teacher's Assert type uses.
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper for t.
func NewAssert(t *testing.T) *Assert {
	return &Assert{t, require.New(t)}
}

// FieldEqual fails unless a and b name the same field element.
func (a *Assert) FieldEqual(expected, actual plonk.F, msgAndArgs ...interface{}) {
	a.t.Helper()
	a.True(expected.Equal(&actual), msgAndArgs...)
}

// PolynomialEqual fails unless expected and actual carry the same basis
// tag and the same sequence of field elements.
func (a *Assert) PolynomialEqual(expected, actual plonk.Polynomial, msgAndArgs ...interface{}) {
	a.t.Helper()
	a.Equal(expected.Basis, actual.Basis, msgAndArgs...)
	a.Equal(expected.Len(), actual.Len(), msgAndArgs...)
	for i := range expected.Values {
		a.True(expected.Values[i].Equal(&actual.Values[i]), msgAndArgs...)
	}
}

// PanicsWithMessage fails unless fn panics; adapted from the teacher's use
// of require.Panics around selector-elimination and malformed-graph
// construction checks.
func (a *Assert) PanicsWithMessage(fn func(), msgAndArgs ...interface{}) {
	a.t.Helper()
	a.Panics(fn, msgAndArgs...)
}
