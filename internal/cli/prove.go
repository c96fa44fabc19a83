package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/eg/rules"
	"github.com/spf13/cobra"
)

// newProveCmd creates the prove command: an interactive stepper that lists
// every applicable inference site for the current graph and applies the
// selected one. It is a manual derivation tool, not a proof search.
func newProveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prove <notation>",
		Short: "Step through inference rule applications interactively",
		Long: `Open an interactive session on a graph. Every legal application site of
the three rules is listed; selecting one applies it and recomputes the
sites for the resulting graph.

Keys: ↑/↓ or j/k to move, ⏎ to apply, u to undo, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			text, err := readNotation(args[0])
			if err != nil {
				return err
			}
			g, err := eg.Parse(text)
			if err != nil {
				return err
			}

			m, err := tea.NewProgram(newProveModel(g)).Run()
			if err != nil {
				return err
			}
			final := m.(proveModel)
			fmt.Println(final.current)
			return nil
		},
	}
}

// proofStep is one applicable site together with its precomputed result.
type proofStep struct {
	rule   rules.Rule
	path   eg.Path
	result *eg.Graph
}

// proveModel is the bubbletea model for the interactive stepper.
type proveModel struct {
	current *eg.Graph
	history []*eg.Graph
	steps   []proofStep
	cursor  int
	offset  int
	height  int
}

func newProveModel(g *eg.Graph) proveModel {
	return proveModel{
		current: g,
		steps:   collectSteps(g),
		height:  15,
	}
}

// collectSteps enumerates every applicable site of every rule, applying
// each one ahead of time so the list can show the outcome.
func collectSteps(g *eg.Graph) []proofStep {
	var steps []proofStep
	for _, rule := range rules.All() {
		for _, p := range rule.Sites(g) {
			result, err := rule.Apply(g, p)
			if err != nil {
				continue // site list and graph are in sync, should not happen
			}
			steps = append(steps, proofStep{rule: rule, path: p, result: result.Canonicalize()})
		}
	}
	return steps
}

func (m proveModel) Init() tea.Cmd {
	return nil
}

func (m proveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.steps)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if m.cursor < len(m.steps) {
				m.history = append(m.history, m.current)
				m.current = m.steps[m.cursor].result
				m.steps = collectSteps(m.current)
				m.cursor, m.offset = 0, 0
			}
		case "u":
			if n := len(m.history); n > 0 {
				m.current = m.history[n-1]
				m.history = m.history[:n-1]
				m.steps = collectSteps(m.current)
				m.cursor, m.offset = 0, 0
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m proveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("egraph prove"))
	b.WriteString("  ")
	b.WriteString(StyleNotation.Render(m.current.String()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("↑/↓ navigate  ⏎ apply  u undo (%d)  q quit", len(m.history))))
	b.WriteString("\n\n")

	if len(m.steps) == 0 {
		b.WriteString(StyleDim.Render("no applicable sites"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.steps) {
		end = len(m.steps)
	}

	for i := m.offset; i < end; i++ {
		step := m.steps[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s %s %s %s",
			cursor,
			StyleRule.Render(fmt.Sprintf("%-12s", step.rule)),
			StylePath.Render(fmt.Sprintf("%-8s", step.path)),
			StyleDim.Render(iconArrow),
			StyleNotation.Render(step.result.String()),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
