// Package ir provides the value model for parsed Hexon documents.
//
// A document is a tree of [Node] values over the closed set of types
// Number, String, Bool, Array, and Object. Nodes are never mutated after
// construction.
//
// Objects keep their fields in ascending lexicographic key order; this is
// an invariant of the model, not an accident of construction, and the
// JSON rendering of a document depends on it. [FromMap] establishes the
// order, and duplicate source keys collapse silently in the map that
// feeds it, later value winning.
//
// Numbers are signed 64-bit integers. Hexon sources write them as hex
// literals, but the literal's origin does not survive into the tree: a
// node parsed from 0x1A is identical to one built with FromInt(26).
package ir
