package llrb

import "iter"

// All returns an iterator over all entries of m in ascending key order.
// The iterator may be used multiple times. Modifying m during an iteration
// is not supported.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		m.root.walk(yield)
	}
}

// Keys returns an iterator over the keys of m in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of m, in ascending order of
// their keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Each visits all entries in ascending key order.
//
// Iteration stops at the first callback error and returns that error to the
// caller.
func (m *Map[K, V]) Each(f func(K, V) error) error {
	if f == nil {
		return ErrIllegalArguments
	}
	var err error
	for k, v := range m.All() {
		if err = f(k, v); err != nil {
			break
		}
	}
	return err
}

// Range returns an iterator over the entries with lo ≤ key ≤ hi, in ascending
// key order. Subtrees outside of [lo, hi] are not visited.
func (m *Map[K, V]) Range(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil || m.cmp(lo, hi) > 0 {
			return
		}
		m.scan(m.root, lo, hi, yield)
	}
}

func (n *node[K, V]) walk(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.key, n.val) && n.right.walk(yield)
}

func (m *Map[K, V]) scan(n *node[K, V], lo, hi K, yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	clo, chi := m.cmp(lo, n.key), m.cmp(n.key, hi)
	if clo < 0 && !m.scan(n.left, lo, hi, yield) {
		return false
	}
	if clo <= 0 && chi <= 0 && !yield(n.key, n.val) {
		return false
	}
	if chi < 0 {
		return m.scan(n.right, lo, hi, yield)
	}
	return true
}

// --- Breadth-first view ----------------------------------------------------

// NodeInfo describes a tree node for presentation purposes.
type NodeInfo[K, V any] struct {
	Key    K
	Value  V
	Red    bool // color of the link from the parent
	Depth  int  // root has depth 0
	Parent int  // index of the parent within the previous level, -1 for the root
}

// Levels returns an iterator over the levels of the tree, top to bottom. Each
// level lists its nodes from left to right. An empty map yields no levels.
//
// Levels exposes the tree shape and is intended for visualization and
// debugging; use All for access in key order.
func (m *Map[K, V]) Levels() iter.Seq[[]NodeInfo[K, V]] {
	return func(yield func([]NodeInfo[K, V]) bool) {
		if m == nil || m.root == nil {
			return
		}
		type item struct {
			n      *node[K, V]
			parent int
		}
		queue := []item{{m.root, -1}}
		for depth := 0; len(queue) > 0; depth++ {
			level := make([]NodeInfo[K, V], len(queue))
			var next []item
			for i, it := range queue {
				level[i] = NodeInfo[K, V]{
					Key:    it.n.key,
					Value:  it.n.val,
					Red:    it.n.red,
					Depth:  depth,
					Parent: it.parent,
				}
				if it.n.left != nil {
					next = append(next, item{it.n.left, i})
				}
				if it.n.right != nil {
					next = append(next, item{it.n.right, i})
				}
			}
			if !yield(level) {
				return
			}
			queue = next
		}
	}
}
