package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/llaenowyd/splayset/splay"
)

// render prints t sideways: the root in the first column, right subtrees
// above their parent and left subtrees below, one level of indent per depth.
func render(w io.Writer, t *splay.Tree[int]) {
	if t == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	renderAt(w, t, 0)
}

func renderAt(w io.Writer, t *splay.Tree[int], depth int) {
	if t == nil {
		return
	}
	renderAt(w, t.Right(), depth+1)
	fmt.Fprintf(w, "%s%d\n", strings.Repeat("    ", depth), t.Item())
	renderAt(w, t.Left(), depth+1)
}
