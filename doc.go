// Package synthnet is an in-memory toolkit for generating synthetic
// networks and scoring how well they reproduce the structure of an
// observed network — from canonical random-graph models to a two-term
// spatial/topological generative model for brain connectomes.
//
// 🚀 What is synthnet?
//
//	A small, deterministic library that brings together:
//		• Dense matrix core: binary adjacency & distance matrices with strict
//		  structural validation (symmetry, zero diagonal, finite entries)
//		• Canonical models: Erdős–Rényi, Watts–Strogatz, Barabási–Albert,
//		  stochastic block, random geometric
//		• Generative growth: quasi-dynamic edge-by-edge sampling driven by
//		  a spatial term D^eta and an optional shared-neighbor term K^gamma
//		• Energy evaluation: four two-sample Kolmogorov–Smirnov statistics
//		  (degree, clustering, betweenness, edge length) reduced to a single
//		  worst-case energy score
//		• Dataset loading: delimited edge lists and coordinate tables
//
// ✨ Why choose synthnet?
//
//   - Reproducible by construction – every stochastic routine takes an
//     explicit random source; fixed seed ⇒ identical output
//   - Rock-solid guarantees – sentinel errors, fail-fast validation,
//     no panics on user input
//   - Pure Go core – gonum supplies betweenness and the KS test;
//     everything else is dependency-free
//
// Everything is organized under six subpackages:
//
//	matrix/  — dense storage, structural validators, adjacency kernels
//	models/  — canonical random-graph constructors
//	gen/     — the spatial/topological generative model
//	measure/ — per-node and per-edge structural measures
//	eval/    — KS statistics and the energy score
//	dataset/ — edge-list and coordinate loading
//
// Typical pipeline:
//
//	A, _  := dataset.LoadEdgeList("net.txt", n)   // observed network
//	D, _  := dataset.Distances(coords)            // pairwise distances
//	m, _  := gen.TargetEdges(A)                   // match the edge count
//	A2, _ := gen.Generate(D, m, gen.WithEta(-2), gen.WithSeed(42))
//	r, _  := eval.Evaluate(A, A2, D)              // r.Energy ∈ [0,1]
package synthnet
