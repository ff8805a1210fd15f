package section

import (
	"fmt"

	"github.com/copperline/meshroute/pkg/viz"
)

// Visualize delegates rendering to the shared section helper; the
// extractor only supplies the derived data.
func (x *Extractor) Visualize() *viz.Graphics {
	marks := make([]viz.TerminalMark, 0, len(x.terminals))
	for _, t := range x.terminals {
		marks = append(marks, viz.TerminalMark{
			Connection:  t.Connection,
			StartNodeID: t.StartNodeID,
			EndNodeID:   t.EndNodeID,
		})
	}
	title := fmt.Sprintf("section around %s (radius %d)", x.focus, x.hyper.HopRadius)
	return viz.RenderSection(x.nodes, x.edges, marks, x.lookup, x.colors, x.focus, title)
}
