// Package linetree converts between flat sets of lines and hierarchical
// trees whose nodes hold key fragments.
//
// Trees are the exchange shape of file adapters: a decoder produces nested
// maps, FromMap turns them into a tree, and Lines flattens the tree into
// lines ready for an asset. Concatenating the fragments from the root to a
// node always reconstructs a key equal, by the tree's comparer, to the key
// the node was built from:
//
//	tree, err := linetree.FromLines(lines, nil)
//	flat, err := tree.Lines() // equal to lines, by key identity and value
//
// Walks are iterative, so deep trees do not grow the stack.
package linetree
