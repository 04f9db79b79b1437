package llrb

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// node is a node of the tree. A node owns its two subtrees, there are no
// parent links. Every structural operation on a subtree returns the new root
// of that subtree and the caller re-links it.
type node[K, V any] struct {
	key         K
	val         V
	red         bool
	left, right *node[K, V]
}

func newNode[K, V any](key K, val V) *node[K, V] {
	return &node[K, V]{key: key, val: val, red: true} // new leafs are always red
}

func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && n.red
}

// rotateLeft turns (h a (x b c)) into (x (h a b) c).
//
//	  h                x
//	 / \              / \
//	a   x     ⇒      h   c
//	   / \          / \
//	  b   c        a   b
func rotateLeft[K, V any](h *node[K, V]) *node[K, V] {
	assert(h.right != nil, "llrb: rotateLeft without right child")
	x := h.right
	h.right = x.left
	x.left = h
	x.red = h.red
	h.red = true
	return x
}

// rotateRight turns (h (x a b) c) into (x a (h b c)).
func rotateRight[K, V any](h *node[K, V]) *node[K, V] {
	assert(h.left != nil, "llrb: rotateRight without left child")
	x := h.left
	h.left = x.right
	x.right = h
	x.red = h.red
	h.red = true
	return x
}

// flipColors inverts the colors of h and both of its children. During
// insertion this splits a temporary 4-node (black h, two red children), during
// deletion it merges h and its children into a 4-node.
func flipColors[K, V any](h *node[K, V]) {
	assert(h.left != nil && h.right != nil, "llrb: color flip needs two children")
	h.red = !h.red
	h.left.red = !h.left.red
	h.right.red = !h.right.red
}

// fixUp restores the left-leaning shape at h on the way back up.
// The order of the three steps matters.
func fixUp[K, V any](h *node[K, V]) *node[K, V] {
	if !isRed(h.left) && isRed(h.right) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	return h
}

// moveRedLeft assumes h is red and both h.left and h.left.left are black.
// It makes h.left or one of its children red.
func moveRedLeft[K, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

// moveRedRight assumes h is red and both h.right and h.right.left are black.
// It makes h.right or one of its children red.
func moveRedRight[K, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

func minNode[K, V any](h *node[K, V]) *node[K, V] {
	for h.left != nil {
		h = h.left
	}
	return h
}

func maxNode[K, V any](h *node[K, V]) *node[K, V] {
	for h.right != nil {
		h = h.right
	}
	return h
}

func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
