// Package deptree builds dependency trees from head arrays and checks that
// they are single-rooted projective trees.
package deptree

import (
	"errors"
	"fmt"
)

// NoParent is the parent of the root (id 0).
const NoParent = -1

var (
	// ErrEmptyHeads is returned for a head array with no entries.
	ErrEmptyHeads = errors.New("deptree: empty head array")

	// ErrHeadOutOfRange indicates heads[i] (i ≥ 1) is not an index into heads.
	ErrHeadOutOfRange = errors.New("deptree: head index out of range")
)

// node is one token of the arena. lefts and rights hold dependent ids in
// ascending order: lefts precede the node, rights follow it.
type node struct {
	parent int
	lefts  []int
	rights []int
}

// Tree is a dependency tree stored as an arena indexed by token id.
// Id 0 is the root. Nodes refer to each other only by id.
type Tree struct {
	nodes []node
}

// New builds a Tree from a head array. heads[0] is ignored (the root's parent
// is always NoParent); for i ≥ 1, heads[i] is the parent of token i and must
// lie in [0, len(heads)). The caller's slice is not modified.
//
// Self-loops and cycles are accepted here; IsProjective rejects them.
//
// Errors:
//   - ErrEmptyHeads: len(heads) == 0.
//   - ErrHeadOutOfRange: wrapped with the offending position.
//
// Complexity: O(n) time and memory.
func New(heads []int) (*Tree, error) {
	if len(heads) == 0 {
		return nil, ErrEmptyHeads
	}
	n := len(heads)
	t := &Tree{nodes: make([]node, n)}
	t.nodes[0].parent = NoParent

	// Ids are visited in ascending order, so appending keeps every
	// dependent list sorted.
	var id, p int
	for id = 1; id < n; id++ {
		p = heads[id]
		if p < 0 || p >= n {
			return nil, fmt.Errorf("deptree: heads[%d] = %d with %d nodes: %w", id, p, n, ErrHeadOutOfRange)
		}
		t.nodes[id].parent = p
		if p < id {
			t.nodes[p].rights = append(t.nodes[p].rights, id)
		} else {
			t.nodes[p].lefts = append(t.nodes[p].lefts, id)
		}
	}

	return t, nil
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Parent returns the parent of id, NoParent for the root, or ok=false when
// id is out of range.
func (t *Tree) Parent(id int) (parent int, ok bool) {
	if id < 0 || id >= len(t.nodes) {
		return 0, false
	}

	return t.nodes[id].parent, true
}

// Lefts returns a copy of id's left dependents in ascending order.
func (t *Tree) Lefts(id int) []int {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}

	return append([]int(nil), t.nodes[id].lefts...)
}

// Rights returns a copy of id's right dependents in ascending order.
func (t *Tree) Rights(id int) []int {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}

	return append([]int(nil), t.nodes[id].rights...)
}
