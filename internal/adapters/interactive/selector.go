package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectChain selects a chain from a list
func (s *SelectorAdapter) SelectChain(ctx context.Context, chains []*models.ChainEntry, book *domain.AddressBook, prompt string) (*models.ChainEntry, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(chains) == 0 {
		return nil, fmt.Errorf("no chains provided for selection")
	}

	if len(chains) == 1 {
		return chains[0], nil
	}

	options := formatChainOptions(chains, book)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return chains[index], nil
}

// formatChainOptions creates display strings for chain selection
func formatChainOptions(chains []*models.ChainEntry, book *domain.AddressBook) []string {
	options := make([]string, len(chains))
	for i, chain := range chains {
		id := color.New(color.FgWhite, color.Bold).Sprintf("Chain %d", chain.ChainID)
		st := color.New(color.FgBlue).Sprint(book.Human(chain.StateTransition))

		if name, ok := book.Name(chain.BaseToken); ok {
			token := color.New(color.FgYellow).Sprintf("[%s]", name)
			options[i] = fmt.Sprintf("%s %s (%s)", id, token, st)
		} else {
			options[i] = fmt.Sprintf("%s (%s)", id, st)
		}
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ChainSelector = (*SelectorAdapter)(nil)
