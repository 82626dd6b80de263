// Package viz renders trajectories in the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dynsys/internal/trajectory"
)

// Plot renders one state component of a trajectory as an ASCII line
// graph.
func Plot(tr *trajectory.Trajectory, component, width, height int) (string, error) {
	if tr.Len() == 0 {
		return "", fmt.Errorf("viz: empty trajectory")
	}
	if component < 0 || component >= tr.Dim() {
		return "", fmt.Errorf("viz: component %d out of range [0,%d)", component, tr.Dim())
	}

	series := tr.Component(component)
	graph := asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("x%d over t=[%g, %g]", component, tr.Times[0], tr.Times[tr.Len()-1])),
	)
	return graph, nil
}

// PlotAll stacks a plot per state component.
func PlotAll(tr *trajectory.Trajectory, width, height int) (string, error) {
	var b strings.Builder
	for j := 0; j < tr.Dim(); j++ {
		graph, err := Plot(tr, j, width, height)
		if err != nil {
			return "", err
		}
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}
