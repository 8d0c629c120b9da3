package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
)

// TopologyRenderer renders a resolved registry graph
type TopologyRenderer struct {
	out io.Writer
}

// NewTopologyRenderer creates a new topology renderer
func NewTopologyRenderer(out io.Writer) *TopologyRenderer {
	return &TopologyRenderer{out: out}
}

// RenderSnapshot renders every entity of snapshot
func (r *TopologyRenderer) RenderSnapshot(snapshot *models.Snapshot) error {
	book := SnapshotBook(snapshot)

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("🔗 %s (chain %d, %s) at block %d",
		snapshot.Endpoint, snapshot.ChainID, snapshot.Layer, snapshot.Block))

	if registry, err := snapshot.Registry(); err == nil {
		r.renderRegistry(registry, book)
	}
	r.renderManagers(snapshot.Managers(), book)
	r.renderChains(snapshot, book)
	if router, err := snapshot.AssetRouter(); err == nil {
		r.renderAssetRouter(router, book)
	}

	if len(snapshot.Warnings) > 0 {
		section(r.out, "Warnings")
		for _, w := range snapshot.Warnings {
			fmt.Fprintf(r.out, "  %s\n", FormatWarning(fmt.Sprintf("%s %s: %s", book.Human(w.Subject), w.Field, w.Message)))
		}
	}
	return nil
}

func (r *TopologyRenderer) renderRegistry(registry *models.ChainRegistry, book *domain.AddressBook) {
	section(r.out, "Bridgehub")
	field(r.out, "Address", addressStyle.Sprint(registry.Address.Hex()))
	field(r.out, "Shared bridge", book.Human(registry.SharedBridge))
	field(r.out, "CTM deployer", book.Human(registry.Deployer))
	field(r.out, "Chains", fmt.Sprintf("%v (%s)", registry.ChainIDs, Title(string(registry.Discovery))))
}

func (r *TopologyRenderer) renderManagers(managers []*models.ChainManager, book *domain.AddressBook) {
	if len(managers) == 0 {
		return
	}
	section(r.out, "Chain Type Managers")
	for _, m := range managers {
		field(r.out, "Address", addressStyle.Sprint(m.Address.Hex()))
		field(r.out, "Bridgehub", book.Human(m.RegistryRoot))
		field(r.out, "Admin", book.Human(m.Admin))
		field(r.out, "Owner", book.Human(m.Owner))
		field(r.out, "Validator timelock", book.Human(m.ValidatorTimelock))
		if m.AssetID != (common.Hash{}) {
			field(r.out, "Asset id", m.AssetID.Hex())
		}
		if m.ProtocolVersion != nil {
			field(r.out, "Protocol version", m.ProtocolVersion)
		}
	}
}

func (r *TopologyRenderer) renderChains(snapshot *models.Snapshot, book *domain.AddressBook) {
	ids := snapshot.ChainIDs()
	if len(ids) == 0 {
		return
	}
	section(r.out, "Chains")

	t := newTable(r.out)
	t.AppendHeader(table.Row{"Chain", "State transition", "Base token", "Protocol", "Batches C/V/E", "Priority queue", "Settlement"})
	for _, id := range ids {
		entry := snapshot.Chains[id]
		row := table.Row{id, book.Human(entry.StateTransition), book.Human(entry.BaseToken), "-", "-", "-", "-"}
		if st, err := snapshot.StateTransition(entry.StateTransition); err == nil {
			v := st.ProtocolVersion
			row[3] = fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
			row[4] = fmt.Sprintf("%s/%s/%s", st.TotalBatchesCommitted, st.TotalBatchesVerified, st.TotalBatchesExecuted)
			row[5] = fmt.Sprintf("%s of %s", st.PriorityQueue.Unprocessed, st.PriorityQueue.Total)
			if st.FromStorage {
				row[5] = labelStyle.Sprint("from storage")
			}
			if st.Passive() {
				row[6] = book.Human(st.SettlementLayer)
			} else {
				row[6] = "self"
			}
		}
		t.AppendRow(row)
	}
	t.Render()

	for _, st := range snapshot.StateTransitions() {
		section(r.out, fmt.Sprintf("State transition %s", book.Human(st.Address)))
		field(r.out, "Chain id", st.ChainID)
		field(r.out, "Verifier", book.Human(st.Verifier))
		field(r.out, "Admin", book.Human(st.Admin))
		field(r.out, "Bootloader hash", st.BootloaderHash.Hex())
		field(r.out, "Default account hash", st.DefaultAccountHash.Hex())
		field(r.out, "System upgrade tx", st.SystemUpgradeTxHash.Hex())
		if st.PriorityQueue.RootKnown {
			field(r.out, "Priority tree root", st.PriorityQueue.Root.Hex())
		} else {
			field(r.out, "Priority tree root", labelStyle.Sprint("unavailable"))
		}
	}
}

func (r *TopologyRenderer) renderAssetRouter(router *models.AssetRouter, book *domain.AddressBook) {
	section(r.out, "Shared Bridge")
	field(r.out, "Address", addressStyle.Sprint(router.Address.Hex()))
	if router.Stub {
		field(r.out, "Assets", labelStyle.Sprint("not tracked on this layer"))
		return
	}
	field(r.out, "Native token vault", book.Human(router.NativeTokenVault))
	field(r.out, "Bridgehub", book.Human(router.RegistryRoot))

	if len(router.Assets) == 0 {
		return
	}
	assets := lo.Values(router.Assets)
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].AssetID.Cmp(assets[j].AssetID) < 0
	})

	t := newTable(r.out)
	t.AppendHeader(table.Row{"Asset id", "Handler", "Token", "Decimals"})
	for _, asset := range assets {
		row := table.Row{asset.AssetID.TerminalString(), Title(string(asset.Handler.Kind)), book.Human(asset.Handler.Tracker), ""}
		if asset.Handler.Kind == models.VaultBackedHandler {
			row[2] = fmt.Sprintf("%s %s", asset.Handler.TokenName, labelStyle.Sprint(asset.Handler.TokenAddress.Hex()))
			row[3] = asset.Handler.TokenDecimals
		}
		t.AppendRow(row)
	}
	t.Render()
}
