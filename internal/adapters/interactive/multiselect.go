package interactive

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// multiSelectModel is the bubbletea model for picking several chains
type multiSelectModel struct {
	options   []string
	cursor    int
	selected  map[int]bool
	title     string
	done      bool
	cancelled bool
}

func initialMultiSelectModel(options []string, title string) multiSelectModel {
	return multiSelectModel{
		options:  options,
		selected: make(map[int]bool, len(options)),
		title:    title,
	}
}

// Init is the initial command for bubbletea
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		all := len(m.indices()) < len(m.options)
		for i := range m.options {
			m.selected[i] = all
		}
	case "enter":
		if len(m.indices()) > 0 {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the list
func (m multiSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s\n\n", m.title))

	for i, option := range m.options {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}
		checkbox := color.New(color.FgWhite).Sprint("○")
		if m.selected[i] {
			checkbox = color.New(color.FgGreen).Sprint("✓")
		}
		fmt.Fprintf(&b, "%s %s %s\n", cursor, checkbox, option)
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Space: toggle  a: all  Enter: confirm  q: quit\n"))
	return b.String()
}

// indices returns the selected positions in list order
func (m multiSelectModel) indices() []int {
	var out []int
	for i := range m.options {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

// SelectChains shows a multi-select list and returns the chosen chains
func (s *SelectorAdapter) SelectChains(ctx context.Context, chains []*models.ChainEntry, book *domain.AddressBook, prompt string) ([]*models.ChainEntry, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("no chains provided for selection")
	}
	if len(chains) == 1 {
		return chains, nil
	}

	program := tea.NewProgram(initialMultiSelectModel(formatChainOptions(chains, book), prompt), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("multi-select failed: %w", err)
	}

	m := final.(multiSelectModel)
	if m.cancelled || !m.done {
		return nil, fmt.Errorf("selection cancelled")
	}

	picked := make([]*models.ChainEntry, 0, len(m.selected))
	for _, i := range m.indices() {
		picked = append(picked, chains[i])
	}
	return picked, nil
}
