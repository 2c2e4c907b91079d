// Package eikonal computes distance fields on a 2D grid by solving the
// eikonal equation |∇u| = 1 from an implicit boundary curve.
//
// 🚀 What is eikonal?
//
//	A small, pure-Go toolkit that turns "a function whose zero set is a
//	curve" into "the distance to that curve at every pixel":
//		• Coordinate mapping: index ↔ cell ↔ domain point (grid/)
//		• Seeding: zeros on the zero-level-set, +Inf elsewhere (field/)
//		• Fast Marching: generalized Dijkstra with an upwind update (fmm/)
//		• Rendering: palettes, resampling and PNG output (render/)
//
// ✨ Why choose eikonal?
//
//   - Pluggable boundary – any func(x, y float32) float32 works.
//   - Exact contract – monotone settlement, one pop per cell,
//     hand-checked small grids in the tests.
//   - Parallel seeding – rows are evaluated on an errgroup; propagation
//     stays single-threaded because it must.
//   - Quiet by default – plug a *slog.Logger in with SetLogger.
//
// Pipeline:
//
//	grid.New ──► field.Seed ──► fmm.Propagate ──► render.Image
//
// Solve runs the first three stages from a Config; DefaultConfig is the
// five-petal flower on a 1024×1024 grid over [-3,3]².
//
// Quick ASCII example (3×3, seed in the centre):
//
//	1.707 1.000 1.707
//	1.000 0.000 1.000
//	1.707 1.000 1.707
//
// The diagonal is ½·(2 + √2), the discrete eikonal value, not √2.
//
//	go run ./cmd/eikonal -out flower.png
package eikonal
