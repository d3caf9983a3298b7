// Package expr builds and classifies expression graphs for Disciplined
// Convex Programming (DCP).
//
// User code combines nodes and raw numeric literals with the named
// composition functions (Add, Mul, Pow, …); the casting layer promotes
// literals to constant nodes, each composition rule validates shapes and
// discipline preconditions, and the new node's curvature and sign are
// defined as pure functions of its operands' classifications — evaluated
// lazily on demand, never cached. Comparison builders (Eq, Leq, SuccEq, …)
// terminate composition by producing Constraint objects instead of nodes.
//
// Nodes are immutable once constructed; composition always produces new
// nodes, never mutates operands, so sub-expressions may be shared freely and
// a finished graph is safe for concurrent read-only traversal. Construction
// is strictly bottom-up — a node can only reference already-constructed
// operands — so the graph is an acyclic DAG by construction.
//
// Per-node queries:
//
//	Dims()      – (rows, cols) shape; (1,1) is scalar
//	Curvature() – CONSTANT > AFFINE > CONVEX > CONCAVE > UNKNOWN
//	Sign()      – ZERO, POSITIVE, NEGATIVE or UNKNOWN
//	IsDCP()     – convex or concave; UNKNOWN curvature fails
//	Value()     – numeric value, nil while any variable is unset
//	Gradient()  – per-variable Jacobian blocks, nil on missing values
//	Domain()    – side constraints under which the value is finite
//
// Errors (sentinel, matched via errors.Is):
//
//	ErrDisciplineViolation – a curvature/constancy precondition failed
//	                         (product of two non-constants, non-scalar
//	                         divisor, unsupported power combination, …)
//	ErrDimensionMismatch   – incompatible operand shapes or an index key
//	                         outside the operand's shape
//
// Both are returned synchronously by the operator that was invoked, never
// deferred; a failed composition produces no partial node.
package expr
