package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders one line per configured endpoint
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Endpoints:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		if network.Error != nil {
			fmt.Fprintf(r.out, "  ❌ %s - %s unreachable: %v\n", network.Name, network.RPCURL, network.Error)
			continue
		}
		fmt.Fprintf(r.out, "  ✅ %s - %s\n", network.Name, network.Endpoint)
		if network.Endpoint.RegistryRoot != (common.Address{}) {
			fmt.Fprintf(r.out, "     %s %s\n", labelStyle.Sprint("bridgehub:"), addressStyle.Sprint(network.Endpoint.RegistryRoot.Hex()))
		}
	}

	return nil
}
