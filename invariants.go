package llrb

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - keys are in strict search tree order,
//   - no node has a red right child,
//   - no red node has a red left child,
//   - every path from the root to a nil link has the same number of black nodes,
//   - the root is black,
//   - the size counter equals the number of nodes.
//
// Check returns an error wrapping ErrInvariant for the first violation found.
// It is intended for tests and debugging; it visits every node.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrIllegalArguments)
	}
	if m.cmp == nil {
		return fmt.Errorf("%w: map has no comparison function", ErrIllegalArguments)
	}
	if m.root == nil {
		if m.size != 0 {
			return fmt.Errorf("%w: empty tree must have size=0, has %d", ErrInvariant, m.size)
		}
		return nil
	}
	if m.root.red {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	count, _, err := m.checkNode(m.root, nil, nil)
	if err != nil {
		return err
	}
	if count != m.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, size=%d)", ErrInvariant, count, m.size)
	}
	return nil
}

// checkNode checks subtree n, whose keys have to lie strictly between lo and
// hi (nil meaning unbounded). It returns the node count and the black height.
func (m *Map[K, V]) checkNode(n *node[K, V], lo, hi *K) (count int, black int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && m.cmp(*lo, n.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && m.cmp(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrInvariant, n.key, *hi)
	}
	if isRed(n.right) {
		return 0, 0, fmt.Errorf("%w: right-leaning red link at %v", ErrInvariant, n.key)
	}
	if n.red && isRed(n.left) {
		return 0, 0, fmt.Errorf("%w: two red links in a row at %v", ErrInvariant, n.key)
	}
	lcount, lblack, err := m.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rcount, rblack, err := m.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lblack != rblack {
		return 0, 0, fmt.Errorf("%w: black height mismatch at %v (%d != %d)",
			ErrInvariant, n.key, lblack, rblack)
	}
	if !n.red {
		lblack++
	}
	return lcount + rcount + 1, lblack, nil
}
