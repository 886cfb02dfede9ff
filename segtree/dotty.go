package segtree

import (
	"fmt"
	"io"
	"math/bits"
	"strings"
)

// Dot outputs the nodes of t in Graphviz DOT format (for debugging purposes).
// Leaves are labeled with their index.
func (t *Tree[S]) Dot(w io.Writer) {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for i, x := range t.tree {
		depth := bits.Len(uint(i+1)) - 1
		if i >= t.n-1 {
			label := fmt.Sprintf("[%d]\\n%s", i-t.n+1, dotValue(x))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(true, false, depth))
			continue
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", i, dotValue(x), nodeDotStyles(false, false, depth))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", i, 2*i+1)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", i, 2*i+2)
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("segtree DOT: %s", err.Error())
	}
}

// Dot outputs the nodes of t in Graphviz DOT format (for debugging purposes).
// Nodes with a pending action are highlighted and show the action below their
// aggregate. Padding leaves are drawn as empty circles.
func (t *Lazy[S, A]) Dot(w io.Writer) {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for k := 1; k < 2*t.size; k++ {
		depth := bits.Len(uint(k)) - 1
		if k >= t.size+t.n {
			nodelist += fmt.Sprintf("\"%d\" %s;\n", k, emptyNode())
			continue
		}
		label := dotValue(t.tree[k-1])
		dirty := !t.cfg.Action.IsIdentityAct(t.lazy[k-1])
		if dirty {
			label += "\\n(" + dotValue(t.lazy[k-1]) + ")"
		}
		isleaf := k >= t.size
		if isleaf {
			label = fmt.Sprintf("[%d]\\n", k-t.size) + label
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", k, label, nodeDotStyles(isleaf, dirty, depth))
		if !isleaf {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", k, 2*k)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", k, 2*k+1)
		}
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("segtree DOT: %s", err.Error())
	}
}

// dotValue formats x for use inside a quoted DOT label.
func dotValue(x any) string {
	return strings.ReplaceAll(fmt.Sprint(x), "\"", "\\\"")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool, highlight bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[depth%len(hexhlcolors)])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth%len(hexcolors)])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
