package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// ReportRenderer renders a full inspection
type ReportRenderer struct {
	out          io.Writer
	showTopology bool
	topology     *TopologyRenderer
	balances     *BalancesRenderer
	priority     *PriorityRenderer
}

// NewReportRenderer creates a new report renderer. Without showTopology each
// layer is summarized in a single line.
func NewReportRenderer(out io.Writer, verbose, showTopology bool) *ReportRenderer {
	return &ReportRenderer{
		out:          out,
		showTopology: showTopology,
		topology:     NewTopologyRenderer(out),
		balances:     NewBalancesRenderer(out),
		priority:     NewPriorityRenderer(out, verbose),
	}
}

// Render renders each layer followed by the failures
func (r *ReportRenderer) Render(result *usecase.InspectNetworkResult) error {
	for i, layer := range result.Layers {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		if layer.Snapshot == nil {
			fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("🔗 %s", layer.Endpoint))
		} else if r.showTopology {
			if err := r.topology.RenderSnapshot(layer.Snapshot); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("🔗 %s (chain %d, %s) at block %d",
				layer.Snapshot.Endpoint, layer.Snapshot.ChainID, layer.Snapshot.Layer, layer.Snapshot.Block))
		}

		if err := r.balances.RenderBalances(layer.Balances); err != nil {
			return err
		}
		for _, verdict := range layer.Verdicts {
			if err := r.priority.RenderVerdict(verdict); err != nil {
				return err
			}
		}
	}

	if len(result.Failures) > 0 {
		section(r.out, "Failures")
		for _, f := range result.Failures {
			subject := f.Endpoint
			if f.ChainID != 0 {
				subject = fmt.Sprintf("%s chain %d", f.Endpoint, f.ChainID)
			}
			fmt.Fprintf(r.out, "  %s %s\n", badStyle.Sprintf("❌ [%s] %s:", f.Check, subject), f.Error)
		}
	}
	return nil
}

var _ Renderer[*usecase.InspectNetworkResult] = (*ReportRenderer)(nil)
