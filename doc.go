// Package isoweave reconstructs transcript isoforms from overlapping
// RNA-seq fragments that have already been pre-assembled into
// strand-specific transcript graphs.
//
// 🧬 What is isoweave?
//
//	A small, focused assembly engine that turns one locus's transcript
//	graph plus its partial-path read evidence into a ranked list of
//	full-length isoform paths:
//
//	  • Graph primitives  — exon vertices, dummy anchoring (core)
//	  • k-mer lift        — de Bruijn-style overlap graph (kmer)
//	  • Evidence          — partial-path density attribution (attribute)
//	  • Smoothing         — bidirectional flow-preserving propagation (smooth)
//	  • Path finder       — ranked suboptimal-path enumeration (pathfinder)
//	  • Reconstruction    — k-mer path → exon-interval path (reconstruct)
//
// The six stages are pipelined by a single driver:
//
//	assemble.Assemble(g, strand, partialPaths, kmax, fractionMajorPath, maxPaths, maxKmerVertices, counter)
//
// isoweave does not read annotation or alignment files, does not build
// the input transcript graph from raw reads, does not split strands or
// trim/chain-collapse upstream graphs, and has no CLI or output
// formatter of its own — those remain the caller's responsibility.
//
// Package layout:
//
//	core/        — Exon, Vertex, Graph (the transcript DAG) + dummy anchoring
//	kmer/        — the k-mer overlap graph K, built by lifting G
//	attribute/   — projecting partial-path density onto K
//	smooth/      — bidirectional density smoothing over K
//	pathfinder/  — ranked source-to-sink path enumeration over K
//	reconstruct/ — collapsing a k-mer path back into an exon path
//	assemble/    — the pipeline driver and the process-wide tx_id counter
//
// See SPEC_FULL.md in the module root for the full design.
package isoweave
