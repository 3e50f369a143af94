package digraph

import (
	"fmt"
	"io"
)

// WriteDOT prints g in a minimal Graphviz dot format with quoted vertex
// labels, using label to render each vertex. Output order is unspecified.
func WriteDOT[V comparable](w io.Writer, g *Digraph[V], label func(V) string) error {
	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "\t%q -> %q;\n", label(e.From), label(e.To)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")

	return err
}
