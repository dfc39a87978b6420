package huffman

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DOT renders the tree as Graphviz DOT source. Leaf labels show the quoted
// symbol and its frequency, internal nodes show "*" and the summed
// frequency, and edges carry the branch bit.
func (t *Tree) DOT() string {
	var b strings.Builder
	b.WriteString("digraph huffman {\n")
	b.WriteString("\tnode [shape=circle fontname=monospace];\n")
	for i, n := range t.Nodes {
		label := fmt.Sprintf("* (%d)", n.Freq)
		if n.Leaf {
			label = fmt.Sprintf("%q (%d)", n.Symbol, n.Freq)
		}
		fmt.Fprintf(&b, "\tn%d [label=%q];\n", i, label)
	}
	for i, n := range t.Nodes {
		if n.Leaf {
			continue
		}
		fmt.Fprintf(&b, "\tn%d -> n%d [label=\"0\"];\n", i, n.Left)
		fmt.Fprintf(&b, "\tn%d -> n%d [label=\"1\"];\n", i, n.Right)
	}
	b.WriteString("}\n")
	return b.String()
}

// TreeDOTBase64 returns the DOT source base64-encoded for embedding in a
// JSON record.
func TreeDOTBase64(t *Tree) string {
	return base64.StdEncoding.EncodeToString([]byte(t.DOT()))
}
