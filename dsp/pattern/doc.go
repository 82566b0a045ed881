// Package pattern generates k-space sampling patterns for compressive
// sensing experiments.
//
// Every generator returns a [Grid] whose zero frequency sits at the grid
// centre (row lenY/2, column lenX/2), the natural orientation for display.
// [Grid.Mask] reorders the pattern into the unshifted DFT order expected by
// the sensing operators.
//
// Generators:
//
//   - [Uniform]: independent Bernoulli samples at a fixed rate
//   - [Gaussian]: a fixed number of distinct samples drawn from a truncated
//     bivariate normal centred on zero frequency
//   - [Level]: nested centred rectangles, each with its own row sampling rate
//   - [Line]: radial lines from the centre, optionally closed and dilated
//     with a cross structuring element
package pattern
