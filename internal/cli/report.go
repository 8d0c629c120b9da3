package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ecdbg/internal/cli/render"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// NewReportCmd creates the report command
func NewReportCmd() *cobra.Command {
	var (
		snapshotPath string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run every check on every endpoint",
		Long: `Resolve the topology of every endpoint, read vault balances and verify the
priority tree of every chain. Exits non-zero when any check failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InspectNetwork.Run(cmd.Context(), usecase.InspectNetworkParams{
				Balances:     true,
				Priority:     true,
				SnapshotPath: snapshotPath,
			})
			if err != nil {
				return err
			}

			if err := reportRenderer(cmd, app.Config.JSON, verbose, true).Render(result); err != nil {
				return err
			}
			return unhealthy(result)
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Write the report to this file (.json, .yaml or .yml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every decoded priority transaction")

	return cmd
}

// reportRenderer picks the output format of an inspection result
func reportRenderer(cmd *cobra.Command, json, verbose, showTopology bool) render.Renderer[*usecase.InspectNetworkResult] {
	if json {
		return render.NewJSONRenderer[*usecase.InspectNetworkResult](cmd.OutOrStdout())
	}
	return render.NewReportRenderer(cmd.OutOrStdout(), verbose, showTopology)
}

// unhealthy turns failed checks into a non-zero exit
func unhealthy(result *usecase.InspectNetworkResult) error {
	if result.Healthy() {
		return nil
	}
	failed := len(result.Failures)
	for _, layer := range result.Layers {
		for _, verdict := range layer.Verdicts {
			// a mismatching verdict is already recorded as a failure
			if !verdict.Matches() && !recorded(result, layer, verdict.ChainID) {
				failed++
			}
		}
	}
	return fmt.Errorf("%d check(s) failed", failed)
}

func recorded(result *usecase.InspectNetworkResult, layer *usecase.LayerReport, chainID uint64) bool {
	if layer.Endpoint == nil {
		return false
	}
	for _, f := range result.Failures {
		if f.Endpoint == layer.Endpoint.Name && f.Check == usecase.CheckPriority && f.ChainID == chainID {
			return true
		}
	}
	return false
}
