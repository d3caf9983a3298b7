// Package expr: domains. The domain of an expression is the set of side
// constraints under which its value is finite, accumulated over the graph.
// Among the built-in compositions only the power rule restricts its operand:
// fractional and negative exponents require a nonnegative base.

package expr

// Domain returns the constraints describing the closure of the region where
// the expression is finite. Constraints are ordered node-first, then by
// operand; an unconstrained expression returns an empty slice.
func (e *Expr) Domain() []*Constraint {
	var out []*Constraint
	if e.kind == KindPow && (e.exponent < 0 || !isIntExponent(e.exponent)) {
		// The base must be nonnegative for the power to stay real and
		// finite; strict positivity for negative exponents is expressed by
		// the same closure.
		c, err := Leq(Scalar(0), e.args[0])
		if err == nil {
			out = append(out, c)
		}
	}
	for _, a := range e.args {
		out = append(out, a.Domain()...)
	}

	return out
}
