package graphs

// Package graphs implements the directed-graph model underlying the
// interactive GI/GNI proofs: immutable graphs on vertices 0..n-1,
// vertex relabelings (permutations), and the brute-force isomorphism
// search whose correctness the protocol guarantees rest on.
//
// The search is intentionally exponential. Graphs never mutate after
// construction, so values can be shared freely across proof runs.
