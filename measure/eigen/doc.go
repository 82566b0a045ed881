// Package eigen estimates the dominant eigenpair of a linear operator by
// power iteration.
//
// The operator is any function mapping a complex vector to a vector of the
// same length. Starting from a seeded random real vector, [Estimate]
// repeatedly applies the operator and renormalises for a fixed number of
// iterations. There is no convergence test; callers choose the iteration
// count.
//
// When a Rayleigh operator R is supplied, the eigenvalue estimate is the
// Rayleigh quotient xᴴ R(x) / xᴴ x of the final vector. Typical use is
// verifying that the normal operator A*A of a sensing operator has spectral
// norm 1:
//
//	normal := eigen.FromPair(op)
//	res, err := eigen.Estimate(normal, op.Mask().Len(),
//		eigen.WithIterations(50), eigen.WithRayleigh(normal))
package eigen
