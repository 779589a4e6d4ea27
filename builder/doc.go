// Package builder generates deterministic weighted graph fixtures over
// integer node IDs for tests, examples and benchmarks.
//
// The package offers:
//
//   - BuildGraph[C] / Apply[C]: create or extend a core.Graph[int, C] by
//     running Constructors in order.
//   - Topology constructors:
//     – Path(n), Cycle(n), Star(n), Complete(n), Grid(rows, cols),
//     – RandomSparse(n, p) (needs WithSeed or WithRand when 0 < p < 1).
//   - Options (BuilderOption):
//     – WithSeed / WithRand:      PCG random source (golang.org/x/exp/rand).
//     – WithIDScheme / WithIDOffset: map generation index → node ID.
//     – WithWeightFn and shorthands WithConstantWeight, WithUniformWeight,
//       WithUniformIntWeight.
//   - Weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, UniformIntWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs,
//     including edge insertion order.
//   - Option constructors panic on meaningless values; Constructors never
//     panic and return sentinel errors wrapped with the method tag.
package builder
