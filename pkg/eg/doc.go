// Package eg implements Peirce's Existential Graphs as an owned value tree.
//
// A Graph is one enclosure: either the outermost sheet of assertion
// (serialized with parentheses) or a cut (serialized with square brackets,
// denoting negation of its contents). An enclosure directly holds atom
// symbols and nested cuts; juxtaposition inside an enclosure is conjunction.
//
// The package provides:
//
//   - Parse / String: the bracket notation codec
//   - Canonicalize: a deterministic ordering that makes structural
//     equality decidable by string comparison
//   - ContainsAtom, ContainsGraph, PathsToAtom, PathsToGraph: queries
//     that locate every occurrence of an atom or sub-graph
//   - Path: combined-index addressing of elements inside a graph
//
// Inference rules built on these primitives live in the rules subpackage.
//
// All operations are value-in/value-out: transformations never mutate a
// caller's tree, so independently obtained copies are safe to use from
// concurrent goroutines without coordination.
package eg
