package plonk

// Basis tags which representation a Polynomial's coefficients are in. It is
// a phantom tag only: Polynomial never converts itself between bases — that
// is Domain's job (CoeffToExtended), per spec.md §3.
type Basis int

const (
	// Coefficient holds coefficients of the polynomial in the monomial
	// basis.
	Coefficient Basis = iota
	// LagrangeOnSubgroup holds values of the polynomial at each point of
	// the original subgroup of size N.
	LagrangeOnSubgroup
	// LagrangeOnCoset holds values of the polynomial at each point of the
	// extended coset of size N'.
	LagrangeOnCoset
)

// Polynomial is an ordered sequence of field elements carrying a basis tag.
// The evaluator only ever reads per-row from LagrangeOnCoset polynomials;
// Coefficient polynomials arrive from external collaborators (the prover
// driver) and are lifted via Domain.CoeffToExtended before Pass 1–3 read
// them.
type Polynomial struct {
	Basis  Basis
	Values []F
}

// NewPolynomial wraps values with the given basis tag, taking ownership of
// the backing slice (it is not copied).
func NewPolynomial(values []F, basis Basis) Polynomial {
	return Polynomial{Basis: basis, Values: values}
}

// Len returns the number of elements.
func (p Polynomial) Len() int { return len(p.Values) }

// at returns the i'th value. It is unexported: callers outside this package
// read a Polynomial's Values directly; at exists only so evalContext (which
// is indexed by ValueSource.Get) has a uniform accessor.
func (p Polynomial) at(i int) F { return p.Values[i] }
