package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// PriorityRenderer renders priority tree verdicts
type PriorityRenderer struct {
	out     io.Writer
	verbose bool
}

// NewPriorityRenderer creates a new priority renderer. Verbose lists every
// decoded transaction.
func NewPriorityRenderer(out io.Writer, verbose bool) *PriorityRenderer {
	return &PriorityRenderer{out: out, verbose: verbose}
}

// RenderVerdict renders the comparison for one chain
func (r *PriorityRenderer) RenderVerdict(verdict *models.PriorityVerdict) error {
	section(r.out, fmt.Sprintf("🌳 Priority tree of chain %d", verdict.ChainID))
	field(r.out, "State transition", addressStyle.Sprint(verdict.StateTransition.Hex()))
	field(r.out, "On-chain root", verdict.OnChainRoot.Hex())
	field(r.out, "Computed root", verdict.ComputedRoot.Hex())
	field(r.out, "Leaves", verdict.LeafCount)

	counts := fmt.Sprintf("%d decoded, %s total, %s unprocessed", verdict.Decoded, verdict.Total, verdict.Unprocessed)
	if !verdict.CountMatches() {
		counts = warnStyle.Sprint(counts)
	}
	field(r.out, "Transactions", counts)

	for _, c := range verdict.Conflicts {
		fmt.Fprintf(r.out, "  %s\n", FormatWarning(fmt.Sprintf("index %d claimed by %s and %s", c.Index, c.Replaced.Hex(), c.Kept.Hex())))
	}

	if r.verbose && len(verdict.Transactions) > 0 {
		t := newTable(r.out)
		t.AppendHeader(table.Row{"Index", "Tx id", "Block", "Expires"})
		for _, tx := range verdict.Transactions {
			t.AppendRow(table.Row{tx.Index, tx.TxID.Hex(), tx.BlockNumber, tx.ExpirationTimestamp})
		}
		t.Render()
	}

	if verdict.Matches() {
		fmt.Fprintln(r.out, "  "+FormatSuccess("Priority tree matches"))
	} else {
		fmt.Fprintln(r.out, "  "+badStyle.Sprint("❌ Priority tree mismatch"))
	}
	return nil
}
