// Package diagnostics holds optional, out-of-band tooling for inspecting a
// running core: dumping the bus binding graph, capturing PSG audio to a
// WAV file, and an optional live stats dashboard. None of it sits on the
// hot per-cycle path.
package diagnostics

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/vectrexcore/vectrexcore/memory"
)

// DumpBusGraph writes a Graphviz DOT rendering of bus's device bindings to
// w, for visualizing which device owns which address range.
//
// Grounded on github.com/bradleyjkemp/memviz (present in the teacher's
// go.mod as a debugging dependency, unused by any teacher package at
// runtime): its Map function walks an arbitrary Go value's in-memory
// pointer graph and emits a DOT file. Here it's pointed at a small,
// purpose-built snapshot (memory.Bus.Bindings()) rather than the live bus,
// so the graph stays readable instead of reflecting the whole device tree.
func DumpBusGraph(w io.Writer, bus *memory.Bus) {
	memviz.Map(w, bus.Bindings())
}
