package review

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ariel-frischer/chlog/internal/errors"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// pickItem is one selectable row in the commit picker.
type pickItem struct {
	label    string
	selected bool
}

type pickModel struct {
	items   []pickItem
	cursor  int
	aborted bool
	done    bool
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		m.items[m.cursor].selected = !m.items[m.cursor].selected
	case "a":
		all := true
		for _, it := range m.items {
			if !it.selected {
				all = false
				break
			}
		}
		for i := range m.items {
			m.items[i].selected = !all
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Select commits to include") + "\n\n")
	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		label := it.label
		if it.selected {
			box = selectedStyle.Render("[x]")
			label = selectedStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, label)
	}
	b.WriteString(dimStyle.Render("\nspace toggle / a all / enter confirm / q abort\n"))
	return b.String()
}

// selectCommits runs the interactive picker and returns the indices of the
// chosen rows, in order. Aborting the picker is an error.
func selectCommits(labels []string, preselected []bool) ([]int, error) {
	items := make([]pickItem, len(labels))
	for i, l := range labels {
		items[i] = pickItem{label: l, selected: preselected[i]}
	}

	final, err := tea.NewProgram(pickModel{items: items}).Run()
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "running commit picker")
	}

	m := final.(pickModel)
	if m.aborted {
		return nil, errors.NewRuntimeError("review aborted")
	}

	var chosen []int
	for i, it := range m.items {
		if it.selected {
			chosen = append(chosen, i)
		}
	}
	return chosen, nil
}
