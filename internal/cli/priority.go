package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// NewPriorityCmd creates the priority command
func NewPriorityCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "priority [chain-id]",
		Short: "Recompute a chain's priority tree root",
		Long: `Decode every NewPriorityRequest event of a chain, rebuild the priority
Merkle tree and compare its root with the one the chain reports.

Without a chain id a chain is picked interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.InspectNetworkParams{
				Priority:    true,
				SelectChain: true,
			}
			if len(args) == 1 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid chain id %q: %w", args[0], err)
				}
				params.ChainIDs = []uint64{id}
			}

			result, err := app.InspectNetwork.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := reportRenderer(cmd, app.Config.JSON, verbose, false).Render(result); err != nil {
				return err
			}
			return unhealthy(result)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every decoded priority transaction")

	return cmd
}
