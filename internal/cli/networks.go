package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ecdbg/internal/cli/render"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "Detect the configured endpoints",
		Long: `Probe every configured endpoint and report its chain id, latest block and
whether it is a settlement layer or a rollup settling on one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.RenderJSON(cmd.OutOrStdout(), networksJSON(result))
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
		},
	}

	return cmd
}

type networkJSON struct {
	Name     string `json:"name"`
	RPCURL   string `json:"rpcUrl"`
	Endpoint any    `json:"endpoint,omitempty"`
	Error    string `json:"error,omitempty"`
}

func networksJSON(result *usecase.ListNetworksResult) []networkJSON {
	out := make([]networkJSON, 0, len(result.Networks))
	for _, n := range result.Networks {
		entry := networkJSON{Name: n.Name, RPCURL: n.RPCURL}
		if n.Error != nil {
			entry.Error = n.Error.Error()
		} else {
			entry.Endpoint = n.Endpoint
		}
		out = append(out, entry)
	}
	return out
}
