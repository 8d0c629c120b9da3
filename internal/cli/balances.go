package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// NewBalancesCmd creates the balances command
func NewBalancesCmd() *cobra.Command {
	var chainIDs []uint

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show native token vault balances per chain",
		Long: `Read the native token vault balance of every vault-backed asset for each
chain registered on the settlement layer. Without --chain an interactive
session lets you pick the chains to read.`,
		Example: `  ecdbg balances
  ecdbg balances --chain 270 --chain 271`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InspectNetwork.Run(cmd.Context(), usecase.InspectNetworkParams{
				Balances:     true,
				SelectChains: true,
				ChainIDs:     lo.Map(chainIDs, func(id uint, _ int) uint64 { return uint64(id) }),
			})
			if err != nil {
				return err
			}

			return reportRenderer(cmd, app.Config.JSON, false, false).Render(result)
		},
	}

	cmd.Flags().UintSliceVar(&chainIDs, "chain", nil, "Only read these chains (repeatable)")

	return cmd
}
