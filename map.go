package llrb

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Map is an ordered map from keys K to values V. Keys are kept in a
// left-leaning red-black tree ordered by a three-way comparison.
//
// Re-inserting an existing key overwrites its value; a map never holds two
// entries for keys comparing equal.
//
//	Operation     |   Map
//	--------------+-----------
//	Lookup        |   O(log n)
//	Insert        |   O(log n)
//	Update        |   O(log n)
//	Remove        |   O(log n)
//	Len           |   O(1)
//	Iterate       |   O(n)
//
// A Map must be created with New or NewFunc.
type Map[K, V any] struct {
	root *node[K, V]
	size int // number of live nodes
	cmp  func(K, K) int
}

// New creates an empty map for keys with a natural Go ordering.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{cmp: cmp.Compare[K]}
}

// NewFunc creates an empty map ordering keys by compare. compare must
// implement a total order and return a negative number if a < b, 0 if a == b
// and a positive number if a > b. Results for inconsistent comparisons are
// undefined.
func NewFunc[K, V any](compare func(K, K) int) (*Map[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparison function is required", ErrIllegalArguments)
	}
	return &Map[K, V]{cmp: compare}, nil
}

// Len returns the number of distinct keys in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, where 0 means empty.
func (m *Map[K, V]) Height() int {
	if m == nil {
		return 0
	}
	return m.root.height()
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.size = 0
	checkAfterMutation(m, "clear")
}

// --- Lookup ----------------------------------------------------------------

// Lookup returns the value stored for key. If key is not present, Lookup
// returns the zero value and false.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	if n := m.find(key); n != nil {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key) != nil
}

func (m *Map[K, V]) find(key K) *node[K, V] {
	if m == nil {
		return nil
	}
	n := m.root
	for n != nil {
		c := m.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Min returns the entry with the smallest key. ok is false for an empty map.
func (m *Map[K, V]) Min() (key K, val V, ok bool) {
	if m.IsEmpty() {
		return
	}
	n := minNode(m.root)
	return n.key, n.val, true
}

// Max returns the entry with the largest key. ok is false for an empty map.
func (m *Map[K, V]) Max() (key K, val V, ok bool) {
	if m.IsEmpty() {
		return
	}
	n := maxNode(m.root)
	return n.key, n.val, true
}

// --- Insert and update -----------------------------------------------------

// Insert stores value for key. If key is already present, its value is
// overwritten and the map does not change its shape.
func (m *Map[K, V]) Insert(key K, value V) {
	m.root = m.insert(m.root, key, func(V, bool) V { return value })
	m.root.red = false
	checkAfterMutation(m, "insert")
}

// Upsert stores f(old, found) for key, where old is the value currently
// stored for key and found tells if key has been present. This allows
// read-modify-write cycles like counting with a single descent:
//
//	m.Upsert(word, func(n int, _ bool) int { return n + 1 })
func (m *Map[K, V]) Upsert(key K, f func(old V, found bool) V) {
	assert(f != nil, "llrb: Upsert called with nil function")
	m.root = m.insert(m.root, key, f)
	m.root.red = false
	checkAfterMutation(m, "upsert")
}

// insert descends to key and returns the new root of subtree h.
func (m *Map[K, V]) insert(h *node[K, V], key K, f func(V, bool) V) *node[K, V] {
	if h == nil {
		var zero V
		n := newNode(key, f(zero, false))
		m.size++
		return n
	}
	c := m.cmp(key, h.key)
	switch {
	case c < 0:
		h.left = m.insert(h.left, key, f)
	case c > 0:
		h.right = m.insert(h.right, key, f)
	default:
		h.val = f(h.val, true)
		return h // no structural change
	}
	return fixUp(h)
}

// Update overwrites the value for key. key must already be present in the map,
// otherwise Update returns an error wrapping ErrKeyNotFound and leaves the map
// untouched.
func (m *Map[K, V]) Update(key K, value V) error {
	n := m.find(key)
	if n == nil {
		return fmt.Errorf("%w: cannot update %v", ErrKeyNotFound, key)
	}
	n.val = value
	return nil
}

// --- Deletion --------------------------------------------------------------

// Remove deletes key from the map and returns the value it was mapped to.
// If key is not present, Remove returns the zero value and false and the map
// is left as it is.
//
// Remove restores all red-black invariants, i.e., the height bound holds
// after any mix of insertions and deletions.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	n := m.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	val := n.val // n may be overwritten by its successor during deletion
	m.prepareRoot()
	m.root = m.delete(m.root, key)
	m.finishRemoval("remove")
	return val, true
}

// DeleteMin removes the entry with the smallest key and returns it.
// ok is false for an empty map.
func (m *Map[K, V]) DeleteMin() (key K, val V, ok bool) {
	if m.IsEmpty() {
		return
	}
	n := minNode(m.root)
	key, val = n.key, n.val
	m.prepareRoot()
	m.root = m.deleteMin(m.root)
	m.finishRemoval("delete-min")
	return key, val, true
}

// DeleteMax removes the entry with the largest key and returns it.
// ok is false for an empty map.
func (m *Map[K, V]) DeleteMax() (key K, val V, ok bool) {
	if m.IsEmpty() {
		return
	}
	n := maxNode(m.root)
	key, val = n.key, n.val
	m.prepareRoot()
	m.root = m.deleteMax(m.root)
	m.finishRemoval("delete-max")
	return key, val, true
}

// prepareRoot paints a root with two black children red, so that the
// downward pass always has a red link to push.
func (m *Map[K, V]) prepareRoot() {
	if !isRed(m.root.left) && !isRed(m.root.right) {
		m.root.red = true
	}
}

func (m *Map[K, V]) finishRemoval(op string) {
	m.size--
	if m.root != nil {
		m.root.red = false
	} else {
		T().Debugf("llrb %s: map is now empty", op)
	}
	checkAfterMutation(m, op)
}

// delete removes key from subtree h. key must be present in h.
func (m *Map[K, V]) delete(h *node[K, V], key K) *node[K, V] {
	if m.cmp(key, h.key) < 0 {
		if !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left = m.delete(h.left, key)
		return fixUp(h)
	}
	if isRed(h.left) {
		h = rotateRight(h)
	}
	if m.cmp(key, h.key) == 0 && h.right == nil {
		return nil // h is a leaf, red or part of a 3-node
	}
	if !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}
	if m.cmp(key, h.key) == 0 {
		// replace h by its in-order successor, which is spliced out of the
		// right subtree
		succ := minNode(h.right)
		h.key, h.val = succ.key, succ.val
		h.right = m.deleteMin(h.right)
	} else {
		h.right = m.delete(h.right, key)
	}
	return fixUp(h)
}

func (m *Map[K, V]) deleteMin(h *node[K, V]) *node[K, V] {
	if h.left == nil {
		assert(h.right == nil, "llrb: minimum node has a right child")
		return nil
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	h.left = m.deleteMin(h.left)
	return fixUp(h)
}

func (m *Map[K, V]) deleteMax(h *node[K, V]) *node[K, V] {
	if isRed(h.left) {
		h = rotateRight(h)
	}
	if h.right == nil {
		return nil
	}
	if !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}
	h.right = m.deleteMax(h.right)
	return fixUp(h)
}
