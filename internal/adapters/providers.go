package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/ecdbg/internal/adapters/blockchain"
	"github.com/trebuchet-org/ecdbg/internal/adapters/fs"
	"github.com/trebuchet-org/ecdbg/internal/adapters/interactive"
	"github.com/trebuchet-org/ecdbg/internal/adapters/progress"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
	"github.com/trebuchet-org/ecdbg/internal/usecase"
)

// ProvideProgressSink shows a spinner unless output must stay machine readable
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.JSON {
		return usecase.NopProgress{}
	}
	return progress.NewSpinnerProgressReporter()
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewSnapshotWriterAdapter,
	wire.Bind(new(usecase.SnapshotWriter), new(*fs.SnapshotWriterAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ChainSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClientFactoryAdapter,
	wire.Bind(new(usecase.ChainClientFactory), new(*blockchain.ClientFactoryAdapter)),

	blockchain.NewDetectorAdapter,
	wire.Bind(new(usecase.EndpointDetector), new(*blockchain.DetectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideProgressSink,

	FSSet,
	InteractiveSet,
	BlockchainSet,
)
