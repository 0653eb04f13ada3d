package model

import (
	"fmt"
	"io"
	"slices"
)

// Dump writes a diagnostic description of the model. It is not a stable
// format.
func (m *Model) Dump(w io.Writer, detail bool) {
	names := make([]string, 0, len(m.attributes))
	for name := range m.attributes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "\t%s: %g\n", name, m.attributes[name])
	}
	fmt.Fprintf(w, "\t\tSize: %d,\tRelCount: %d,\tMaxRel: %d", m.Size(), len(m.relations), cap(m.relations))
	if detail {
		if m.fitTable != nil {
			fmt.Fprintf(w, ",\tFitTable: %d", m.fitTable.Size())
		}
		fmt.Fprintln(w)
		for _, r := range m.relations {
			fmt.Fprintf(w, "\t\t%s\n", r.PrintName(false))
		}
	}
	fmt.Fprintln(w)
}
