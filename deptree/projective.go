package deptree

// inorderWalker holds traversal state for one InOrder call.
type inorderWalker struct {
	tree    *Tree
	visited []bool
	order   []int
}

// InOrder lists the ids reachable from the root as: left dependents' subtrees
// (ascending), the node, right dependents' subtrees (ascending). A node met a
// second time (a cycle, or a node shared by two parents) contributes nothing.
//
// Complexity: O(n).
func (t *Tree) InOrder() []int {
	w := &inorderWalker{
		tree:    t,
		visited: make([]bool, len(t.nodes)),
		order:   make([]int, 0, len(t.nodes)),
	}
	w.traverse(0)

	return w.order
}

func (w *inorderWalker) traverse(id int) {
	if w.visited[id] {
		return
	}
	w.visited[id] = true
	nd := &w.tree.nodes[id]
	for _, l := range nd.lefts {
		w.traverse(l)
	}
	w.order = append(w.order, id)
	for _, r := range nd.rights {
		w.traverse(r)
	}
}

// IsProjective reports whether the tree has exactly one root dependent and
// its in-order traversal is exactly 0, 1, ..., n-1. Unreachable tokens,
// cycles and crossing arcs all break that sequence.
func (t *Tree) IsProjective() bool {
	root := &t.nodes[0]
	if len(root.lefts)+len(root.rights) != 1 {
		return false
	}
	order := t.InOrder()
	if len(order) != len(t.nodes) {
		return false
	}
	for i, id := range order {
		if id != i {
			return false
		}
	}

	return true
}

// IsProjectiveTree reports whether heads describes a single-rooted projective
// tree. heads[0] is the root slot and its value is ignored.
//
// Malformed but in-range input (cycles, self-loops, several root dependents)
// yields false, not an error.
//
// Errors:
//   - ErrEmptyHeads, ErrHeadOutOfRange (see New).
func IsProjectiveTree(heads []int) (bool, error) {
	t, err := New(heads)
	if err != nil {
		return false, err
	}

	return t.IsProjective(), nil
}
