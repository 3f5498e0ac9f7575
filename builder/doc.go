// Package builder provides deterministic constructors for the canonical
// topologies the adaptix test suites, examples, and benchmarks share.
//
// What
//
//   - Path(n)      — 0─1─…─(n−1)
//   - Cycle(n)     — Path(n) plus the closing edge (n−1)─0
//   - Star(n)      — hub 0 with spokes to 1..n−1
//   - Complete(n)  — every unordered pair connected
//   - RandomSparse(n, degree) — ≈ n·degree/2 uniformly random edges
//
// Why
//
//	Centrality scenarios are reasoned about on tiny named graphs (P₄,
//	S₄, K₃, …). Building them in one place keeps every test talking
//	about the same vertices.
//
// Determinism
//
//	The deterministic constructors emit edges in ascending vertex order.
//	RandomSparse draws from an injected *rand.Rand: use WithSeed (or
//	WithRand) to lock outcomes; without either, draws are seeded from
//	process entropy.
//
// Contract
//
//   - Constructors validate n and return ErrTooFewVertices otherwise.
//   - Option constructors panic on nil/invalid arguments; constructors
//     themselves never panic.
package builder
