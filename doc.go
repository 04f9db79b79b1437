/*
Package llrb offers an ordered map, organized as a left-leaning red-black tree.

# Left-leaning Red-Black Trees

A left-leaning red-black tree (LLRB) is a binary search tree that represents a
2-3 tree: a black node together with an optional red left child forms a 3-node.
Red links only ever lean left. This keeps the rebalancing rules local and
small: after inserting a new (red) leaf, every node on the way back to the
root is subjected to three checks, applied in this order:

 1. left child black, right child red: rotate left
 2. left child red, its left child red: rotate right
 3. both children red: flip colors

The root is painted black when the top-level call returns. Deletion pushes a red
link down the search path (moveRedLeft / moveRedRight), so that the node being
removed is never a lonely 2-node, and repairs the tree on the way up with the
same local fix-ups.

From Robert Sedgewick, Left-leaning Red-Black Trees, 2008:

	The basic idea is to maintain a 1-1 correspondence between 2-3-4 trees and
	red-black trees … We require that red links lean left. With this
	restriction, the correspondence is 1-1, and the code to maintain it is
	remarkably compact.

The tree height is bounded by 2·log₂(n+1). Lookup, insertion, update and
deletion are O(log n).

	m := llrb.New[string, int]()
	m.Insert("a", 1)
	m.Upsert("a", func(n int, _ bool) int { return n + 1 })
	for k, v := range m.All() {
		fmt.Println(k, v) // a 2
	}

Maps are not safe for concurrent use. Clients must serialize mutations and must
not read while another goroutine mutates the map.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package llrb

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'llrb'.
func T() tracing.Trace {
	return tracing.Select("llrb")
}

// MapError is an error type for the llrb module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged whenever an operation requires a key to be present
// in the map, but it is not.
const ErrKeyNotFound = MapError("key not found")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")

// ErrInvariant is flagged by Check whenever the tree structure violates one of
// the red-black or search tree invariants.
const ErrInvariant = MapError("llrb invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
