package llrb

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Map2Dot outputs the internal structure of a map in Graphviz DOT format
// (for debugging purposes). Red nodes are filled red, nil links end in small
// black points.
func Map2Dot[K, V any](m *Map[K, V], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	nilcnt := 0
	nilNode := func(parent int) {
		nilcnt++
		nilid := fmt.Sprintf("nil%d", nilcnt)
		fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", parent, nilid)
	}
	var walk func(*node[K, V]) int
	walk = func(n *node[K, V]) int {
		ID := ids.alloc(n)
		label := strings.ReplaceAll(fmt.Sprintf("%v", n.key), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n.red))
		for _, child := range [2]*node[K, V]{n.left, n.right} {
			if child == nil {
				nilNode(ID)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, walk(child))
		}
		return ID
	}
	if m != nil && m.root != nil {
		walk(m.root)
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		T().Errorf("llrb DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point,width=.08]"
}

func nodeDotStyles(red bool) string {
	s := ",style=filled,shape=circle"
	if red {
		s += ",color=red,fillcolor=\"#ff4444\",fontcolor=white"
	} else {
		s += ",color=black,fillcolor=black,fontcolor=white"
	}
	return s
}
