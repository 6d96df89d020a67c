package plonk

// calcKind tags which opcode a Calculation holds.
type calcKind uint8

const (
	calcAdd calcKind = iota
	calcSub
	calcMul
	calcSquare
	calcDouble
	calcNegate
	calcHorner
	calcStore
)

// Calculation is one opcode in the flat straight-line program a
// GraphEvaluator compiles to, per spec.md §2/§4.4.
type Calculation struct {
	kind calcKind

	a, b  ValueSource // Add/Sub/Mul operands, or Horner's (start, factor)
	v     ValueSource // Square/Double/Negate/Store operand
	parts []ValueSource
}

func addCalc(a, b ValueSource) Calculation    { return Calculation{kind: calcAdd, a: a, b: b} }
func subCalc(a, b ValueSource) Calculation    { return Calculation{kind: calcSub, a: a, b: b} }
func mulCalc(a, b ValueSource) Calculation    { return Calculation{kind: calcMul, a: a, b: b} }
func squareCalc(v ValueSource) Calculation    { return Calculation{kind: calcSquare, v: v} }
func doubleCalc(v ValueSource) Calculation    { return Calculation{kind: calcDouble, v: v} }
func negateCalc(v ValueSource) Calculation    { return Calculation{kind: calcNegate, v: v} }
func storeCalc(v ValueSource) Calculation     { return Calculation{kind: calcStore, v: v} }

// hornerCalc builds `acc = start; for p in parts { acc = acc*factor + p }`.
// parts must be non-empty: a Horner ladder with nothing to fold is a
// construction-time programmer error (it would mean a gate/lookup with no
// terms at all), guarded here rather than at evaluation time per spec.md §7.
func hornerCalc(start ValueSource, parts []ValueSource, factor ValueSource) Calculation {
	if len(parts) == 0 {
		panic("plonk: Horner calculation built with an empty parts list")
	}
	return Calculation{kind: calcHorner, a: start, b: factor, parts: parts}
}

// equal reports structural equality including operand order, the exact
// equivalence CalculationInfo's CSE scan in GraphEvaluator.addCalculation
// relies on.
func (c Calculation) equal(other Calculation) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case calcAdd, calcSub, calcMul:
		return c.a.Equal(other.a) && c.b.Equal(other.b)
	case calcSquare, calcDouble, calcNegate, calcStore:
		return c.v.Equal(other.v)
	case calcHorner:
		if !c.a.Equal(other.a) || !c.b.Equal(other.b) || len(c.parts) != len(other.parts) {
			return false
		}
		for i := range c.parts {
			if !c.parts[i].Equal(other.parts[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Evaluate computes the result of this opcode against ctx, per the
// semantics table in spec.md §4.4.
func (c Calculation) Evaluate(ctx *evalContext) F {
	switch c.kind {
	case calcAdd:
		var r F
		a, b := c.a.Get(ctx), c.b.Get(ctx)
		r.Add(&a, &b)
		return r
	case calcSub:
		var r F
		a, b := c.a.Get(ctx), c.b.Get(ctx)
		r.Sub(&a, &b)
		return r
	case calcMul:
		var r F
		a, b := c.a.Get(ctx), c.b.Get(ctx)
		r.Mul(&a, &b)
		return r
	case calcSquare:
		var r F
		v := c.v.Get(ctx)
		r.Square(&v)
		return r
	case calcDouble:
		var r F
		v := c.v.Get(ctx)
		r.Double(&v)
		return r
	case calcNegate:
		var r F
		v := c.v.Get(ctx)
		r.Neg(&v)
		return r
	case calcStore:
		return c.v.Get(ctx)
	case calcHorner:
		factor := c.b.Get(ctx)
		acc := c.a.Get(ctx)
		for _, p := range c.parts {
			pv := p.Get(ctx)
			acc.Mul(&acc, &factor)
			acc.Add(&acc, &pv)
		}
		return acc
	default:
		panic("plonk: unreachable Calculation kind")
	}
}

// CalculationInfo pairs a Calculation with the intermediate slot it writes
// to; target always equals the calculation's position in the graph's
// execution order (spec.md §3 invariant table).
type CalculationInfo struct {
	Calculation Calculation
	Target      int
}
