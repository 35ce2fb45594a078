package ahc

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"
)

// tracer emits the engine's diagnostic output at the configured verbosity.
type tracer struct {
	logger    *log.Logger
	verbosity int
}

// merge logs one merge step at verbosity >= 1.
func (t tracer) merge(step int, merged *Node) {
	if t.verbosity < VerbosityMerges {
		return
	}
	t.logger.Info("merge",
		"step", step,
		"id", merged.ID(),
		"left", merged.Left().Name(),
		"right", merged.Right().Name(),
		"distance", merged.Distance(),
	)
}

// distances dumps the live distance matrix at verbosity 2.
func (t tracer) distances(step int, d *TriangularMatrix, nodes []*Node) {
	if t.verbosity < VerbosityDump {
		return
	}
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name()
	}
	t.logger.Info("distances",
		"step", step,
		"clusters", names,
		"matrix", fmt.Sprintf("\n%v", mat.Formatted(d.Matrix(), mat.Squeeze())),
	)
}

func (t tracer) warn(msg string, keyvals ...any) {
	t.logger.Warn(msg, keyvals...)
}
