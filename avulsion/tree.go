// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avulsion

import "github.com/google/uuid"

// Node is a tagged-variant binary tree node: either a leaf (Leaf != nil)
// or a branch (Left and Right both non-nil). Kept as an explicit struct
// rather than parent-pointer inheritance so splitting never mutates a
// node other than the one being split.
type Node struct {
	Leaf        *LeafState
	Left, Right *Node
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool { return n.Leaf != nil }

// Tree is the river-mouth tree: a single root Node whose leaves are the
// currently active river mouths.
type Tree struct {
	Root *Node
}

// NewTree builds a single-leaf tree rooted at root.
func NewTree(root *LeafState) *Tree {
	return &Tree{Root: &Node{Leaf: root}}
}

// Leaves returns the borrowed slice of every active leaf's state, in
// left-to-right tree order.
func (t *Tree) Leaves() []*LeafState {
	var out []*LeafState
	collectLeaves(t.Root, &out)
	return out
}

func collectLeaves(n *Node, out *[]*LeafState) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		*out = append(*out, n.Leaf)
		return
	}
	collectLeaves(n.Left, out)
	collectLeaves(n.Right, out)
}

// weakestLeafNode returns the leaf node with the lowest water discharge Q.
func weakestLeafNode(n *Node) *Node {
	if n.IsLeaf() {
		return n
	}
	l := weakestLeafNode(n.Left)
	r := weakestLeafNode(n.Right)
	if l.Leaf.Q <= r.Leaf.Q {
		return l
	}
	return r
}

// Split forks the weakest leaf (lowest Q) into two children, each
// inheriting half the parent's width and half its bed-load flux and the
// parent's angle (to be independently avulsed at the next step).
func (t *Tree) Split() {
	target := weakestLeafNode(t.Root)
	parent := target.Leaf

	left := *parent
	right := *parent
	left.ID, right.ID = uuid.New(), uuid.New()
	left.Width, right.Width = parent.Width/2, parent.Width/2
	left.Qb, right.Qb = parent.Qb/2, parent.Qb/2
	left.Q, right.Q = parent.Q/2, parent.Q/2
	left.Path, right.Path = nil, nil

	target.Leaf = nil
	target.Left = &Node{Leaf: &left}
	target.Right = &Node{Leaf: &right}
}
