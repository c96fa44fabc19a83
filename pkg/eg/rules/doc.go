// Package rules implements three of Peirce's structural inference rules
// for existential graphs: double-cut removal, erasure, and deiteration.
//
// Each rule is expressed as a pair of operations: a site finder that
// enumerates every legal application point as a path into the graph, and
// an apply function that performs the transformation at one such path.
// Apply functions are value-producing: the input graph is never mutated,
// and on failure no output is produced.
package rules
