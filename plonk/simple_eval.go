package plonk

// SimpleEvalTables bundles the column data a raw Expression is evaluated
// against: one slice per column kind, each indexed by (column, rotated
// index). Unlike GraphEvaluator, which only ever reads LagrangeOnCoset
// polynomials, Evaluate accepts polynomials in whatever basis the caller
// is working in — it is a one-off tool for external collaborators, not
// part of the optimized row-evaluation path.
type SimpleEvalTables struct {
	Fixed    []Polynomial
	Advice   []Polynomial
	Instance []Polynomial

	Challenges []F

	Beta, Gamma, Theta, Y F
}

// Evaluate folds expr recursively against tables at row idx, taken over a
// domain of size isize with rotation stride rotScale. It shares only
// RotIdx with GraphEvaluator/Calculation: there is no compilation, no CSE,
// and no per-thread scratch — every Sum/Product/Negated node re-walks its
// subtree, matching the "secondary recursive expression evaluator" of
// spec.md §4.9.
func Evaluate(expr *Expression, tables *SimpleEvalTables, idx int, rotScale, isize int32) F {
	switch expr.kind {
	case exprConstant:
		return expr.constant

	case exprSelector:
		panic("plonk: virtual selectors must be eliminated before evaluation")

	case exprFixed:
		r := RotIdx(idx, expr.query.Rotation, rotScale, isize)
		return tables.Fixed[expr.query.ColumnIndex].at(r)

	case exprAdvice:
		r := RotIdx(idx, expr.query.Rotation, rotScale, isize)
		return tables.Advice[expr.query.ColumnIndex].at(r)

	case exprInstance:
		r := RotIdx(idx, expr.query.Rotation, rotScale, isize)
		return tables.Instance[expr.query.ColumnIndex].at(r)

	case exprChallenge:
		return tables.Challenges[expr.index]

	case exprNegated:
		v := Evaluate(expr.a, tables, idx, rotScale, isize)
		var r F
		r.Neg(&v)
		return r

	case exprSum:
		a := Evaluate(expr.a, tables, idx, rotScale, isize)
		b := Evaluate(expr.b, tables, idx, rotScale, isize)
		var r F
		r.Add(&a, &b)
		return r

	case exprProduct:
		a := Evaluate(expr.a, tables, idx, rotScale, isize)
		b := Evaluate(expr.b, tables, idx, rotScale, isize)
		var r F
		r.Mul(&a, &b)
		return r

	case exprScaled:
		a := Evaluate(expr.a, tables, idx, rotScale, isize)
		var r F
		r.Mul(&a, &expr.scale)
		return r

	default:
		panic("plonk: unreachable Expression kind")
	}
}
