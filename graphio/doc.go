// Package graphio reads and writes weighted graphs as YAML documents.
//
// Document layout:
//
//	directed: true
//	nodes: [A, B, C, D]
//	edges:
//	  - {from: A, to: B, cost: 1}
//	  - {from: B, to: C, cost: 1.5}
//	heuristic:          # optional: node → destination → estimate
//	  A: {D: 2}
//
// Decode validates the document structurally (go-playground/validator tags)
// and semantically (edge endpoints and heuristic keys must be declared
// nodes). Every failure wraps ErrInvalidDocument.
package graphio
