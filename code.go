package huffman

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// A CodeTable maps each symbol to its bit-string code. Tables produced by
// Codes are prefix-free by construction, since every code is a distinct
// root-to-leaf path.
type CodeTable map[rune]string

// Codes generates the code table by walking the tree from the root,
// appending "0" on the left branch and "1" on the right and recording the
// accumulated bits at each leaf. A root that is itself a leaf gets the
// one-bit code "0": the empty path would otherwise leave the sole symbol of
// a single-symbol alphabet without a usable code.
func (t *Tree) Codes() CodeTable {
	codes := make(CodeTable)
	root := t.Nodes[t.Root]
	if root.Leaf {
		codes[root.Symbol] = "0"
		return codes
	}

	type frame struct {
		node int
		code string
	}
	stack := []frame{{t.Root, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.Nodes[f.node]
		if n.Leaf {
			codes[n.Symbol] = f.code
			continue
		}
		stack = append(stack, frame{n.Right, f.code + "1"})
		stack = append(stack, frame{n.Left, f.code + "0"})
	}
	return codes
}

// Strings returns the table keyed by the symbol's string form, for JSON
// transport.
func (c CodeTable) Strings() map[string]string {
	m := make(map[string]string, len(c))
	for r, code := range c {
		m[string(r)] = code
	}
	return m
}

// ParseCodeTable converts a transport code table back to a CodeTable.
// Every key must be exactly one code point.
func ParseCodeTable(m map[string]string) (CodeTable, error) {
	codes := make(CodeTable, len(m))
	for s, code := range m {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 || size != len(s) {
			return nil, errors.Errorf("code table key %q is not a single symbol", s)
		}
		codes[r] = code
	}
	return codes, nil
}
