package plonk

import "errors"

// Sentinel errors returned by shape/domain-precondition checks (spec.md
// §7). Programmer errors — malformed graphs, empty Horner ladders, unknown
// tags — panic instead, since they indicate a bug in this package or its
// caller's construction code rather than a recoverable runtime condition.
var (
	// ErrWrongBasis is returned when a Polynomial is passed to an operation
	// that requires a different Basis tag than the one it carries.
	ErrWrongBasis = errors.New("plonk: polynomial has the wrong basis")

	// ErrPolynomialTooLarge is returned when a Coefficient polynomial's
	// length exceeds the domain it is being lifted onto.
	ErrPolynomialTooLarge = errors.New("plonk: polynomial degree exceeds domain size")

	// ErrColumnLengthMismatch is returned when a fixed column's length does
	// not match the extended domain EvaluateH was built with (advice and
	// instance columns are lifted to that length by EvaluateH itself).
	ErrColumnLengthMismatch = errors.New("plonk: column length does not match domain size")

	// ErrNoLookupGraphs is returned when a proof's committed lookups do not
	// pair one-for-one with the constraint system's LookupArguments (their
	// counts differ).
	ErrNoLookupGraphs = errors.New("plonk: lookup argument has no compiled graphs")

	// ErrDomainNotExtended is returned when the extended domain is not
	// strictly larger than the base domain.
	ErrDomainNotExtended = errors.New("plonk: extended domain must be strictly larger than the base domain")

	// ErrBlindingFactorsExceedDomain is returned when blinding_factors+1
	// exceeds the extended domain size.
	ErrBlindingFactorsExceedDomain = errors.New("plonk: blinding_factors+1 exceeds extended domain size")

	// ErrPermutationSetSizeMismatch is returned when the number of committed
	// PermutationSets differs from the number of ChunkLen-sized chunks of
	// the permutation columns or of the permutation cosets, which EvaluateH
	// zips together set by set.
	ErrPermutationSetSizeMismatch = errors.New("plonk: permutation sets have mismatched column-chunk counts")
)
