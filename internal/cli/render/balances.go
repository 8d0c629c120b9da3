package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// BalancesRenderer renders native token vault balances
type BalancesRenderer struct {
	out io.Writer
}

// NewBalancesRenderer creates a new balances renderer
func NewBalancesRenderer(out io.Writer) *BalancesRenderer {
	return &BalancesRenderer{out: out}
}

// RenderBalances renders one table per chain
func (r *BalancesRenderer) RenderBalances(chains []*models.ChainBalances) error {
	for _, chain := range chains {
		section(r.out, fmt.Sprintf("💰 Balances of chain %d", chain.ChainID))
		if len(chain.Balances) == 0 {
			fmt.Fprintln(r.out, labelStyle.Sprint("  no vault-backed assets"))
			continue
		}

		names := lo.Keys(chain.Balances)
		sort.Strings(names)

		t := newTable(r.out)
		t.AppendHeader(table.Row{"Token", "Balance", "Address"})
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
		for _, name := range names {
			b := chain.Balances[name]
			t.AppendRow(table.Row{name, b.Formatted, labelStyle.Sprint(b.Token.Hex())})
		}
		t.Render()
	}
	return nil
}
