// Package node defines the tree snapshot shared by every stage of a run.
//
// A tree is built from three node kinds:
//
//	Leaf   a plain file-like entry
//	Link   a symbolic link together with its canonical, absolute referent
//	Branch a directory and its ordered children
//
// The set of kinds is closed: Node is sealed and every consumer switches over
// the three concrete types. Trees are immutable snapshots; transformations
// always build new slices and never modify their input.
//
// Sequences of nodes are ordered by kind first (Leaf < Link < Branch) and by
// the kind's own fields second. Sort and Compare implement that ordering.
package node
