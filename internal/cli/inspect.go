package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ecdbg/internal/cli/render"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Resolve the registry graph of every endpoint",
		Long: `Resolve the bridgehub, chain type managers, chains and asset router of every
configured endpoint at its latest block.

The result can be written to a JSON or YAML snapshot file with --snapshot.`,
		Example: `  ecdbg inspect
  ecdbg inspect --network l1 --snapshot topology.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InspectNetwork.Run(cmd.Context(), usecase.InspectNetworkParams{
				SnapshotPath: snapshotPath,
			})
			if err != nil {
				return err
			}

			if err := reportRenderer(cmd, app.Config.JSON, false, true).Render(result); err != nil {
				return err
			}
			if snapshotPath != "" && !app.Config.JSON {
				cmd.Println(render.FormatSuccess("Snapshot written to " + snapshotPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Write the resolved topology to this file (.json, .yaml or .yml)")

	return cmd
}
