// Package hongroise assigns N commerces (entities) to N emplacements
// (locations) from a flow matrix F and a distance matrix D, using the
// reduction method on the cost matrix C = F ⊙ D.
//
// What is in the module?
//
//	matrix/         dense row-major float64 storage, validators, kernels
//	assignment/     build, reduce, cover, adjust, extract, total cost, Solve
//	instance/       named built-in problems (reference, single, zero-flow)
//	report/         text, yaml, json and table renderings of a Result
//	internal/       config (viper), logging (slog), cli (cobra)
//	cmd/hongroise/  command-line entry point
//
// Two extraction modes:
//
//   - greedy: the classic procedure: greedy row cover, cover/adjust loop,
//     row-major zero scan. Reproducible, may be partial or non-optimal.
//   - optimal: Kuhn–Munkres with potentials on the same cost matrix.
//     Always complete and minimal in Σ C[i][π(i)].
//
// Quick example:
//
//	res, err := assignment.SolveRows(flow, dist)
//	if err != nil { ... }
//	for _, p := range res.Pairs {
//		fmt.Printf("Commerce c%d -> Emplacement e%d\n", p.Entity, p.Location)
//	}
//
// From the shell:
//
//	go run ./cmd/hongroise solve --instance reference --format table
package hongroise
