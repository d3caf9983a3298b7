// Package dcp_test provides examples demonstrating the classification
// lattices. Each example is runnable via "go test -run Example".
package dcp_test

import (
	"fmt"

	"github.com/katalvlaran/cvxgraph/dcp"
)

// ExampleCurvatureFrom demonstrates the derivation priority: a node that is
// both convex and concave is affine, and constancy wins over everything.
func ExampleCurvatureFrom() {
	fmt.Println(dcp.CurvatureFrom(false, true, false))
	fmt.Println(dcp.CurvatureFrom(false, true, true))
	fmt.Println(dcp.CurvatureFrom(true, true, true))
	// Output:
	// CONVEX
	// AFFINE
	// CONSTANT
}

// ExampleSign_Mul demonstrates the rule of signs used by the product
// composition: a negative constant flips a definite operand sign.
func ExampleSign_Mul() {
	fmt.Println(dcp.Negative.Mul(dcp.Positive))
	fmt.Println(dcp.Negative.Mul(dcp.Negative))
	fmt.Println(dcp.Zero.Mul(dcp.UnknownSign))
	// Output:
	// NEGATIVE
	// POSITIVE
	// ZERO
}
