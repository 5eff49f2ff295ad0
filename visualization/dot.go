// Package visualization renders traffic light cycles as Graphviz DOT
// digraphs.
package visualization

import (
	"fmt"
	"os"
	"strings"

	"github.com/anggasct/ampel"
)

// DOTGenerator generates Graphviz DOT format representations of cycles
type DOTGenerator struct {
	cycle   *ampel.Cycle
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowWaits     bool
	RankDirection string // "TB", "LR", "BT", "RL"
	NodeShape     string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowWaits:     true,
		RankDirection: "LR",
		NodeShape:     "circle",
	}
}

// NewDOTGenerator creates a new DOT generator for the given cycle
func NewDOTGenerator(cycle *ampel.Cycle, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		cycle:   cycle,
		options: opts,
	}
}

// Generate creates a DOT representation of the cycle
func (g *DOTGenerator) Generate() (string, error) {
	var dot strings.Builder

	dot.WriteString("digraph TrafficLight {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	if err := g.generateStates(&dot); err != nil {
		return "", fmt.Errorf("failed to generate states: %w", err)
	}

	g.generateTransitions(&dot)

	dot.WriteString("}\n")

	return dot.String(), nil
}

// generateStates generates DOT nodes for all phases of the cycle
func (g *DOTGenerator) generateStates(dot *strings.Builder) error {
	phases := g.cycle.Phases()
	initial := g.cycle.Initial()

	dot.WriteString("  // States\n")

	for _, phase := range phases {
		label := phase.Color.String()
		if g.options.ShowWaits {
			label = fmt.Sprintf("%s\\n%s", phase.Color, phase.Wait)
		}

		fillColor, err := nodeFillColor(phase.Color)
		if err != nil {
			return err
		}
		if phase == initial {
			label += "\\n(initial)"
		}

		dot.WriteString(fmt.Sprintf("  \"%s\" [style=\"filled\" fillcolor=%s label=\"%s\"];\n",
			phase.Color, fillColor, label))
	}

	return nil
}

// generateTransitions generates one DOT edge per ring transition
func (g *DOTGenerator) generateTransitions(dot *strings.Builder) {
	phases := g.cycle.Phases()

	dot.WriteString("  // Transitions\n")

	for _, phase := range phases {
		next := g.cycle.Next(phase)
		dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", phase.Color, next.Color))
	}
}

// nodeFillColor picks a Graphviz fill color matching the signal
func nodeFillColor(color ampel.Color) (string, error) {
	switch color {
	case ampel.Green:
		return "palegreen", nil
	case ampel.Yellow:
		return "lightyellow", nil
	case ampel.Red:
		return "lightcoral", nil
	default:
		return "", ampel.NewColorError(fmt.Sprintf("unknown color %d", int(color)))
	}
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}
