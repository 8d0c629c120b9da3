package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/ecdbg/internal/domain"
	"github.com/trebuchet-org/ecdbg/internal/domain/bindings"
	"github.com/trebuchet-org/ecdbg/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// AggregateBalancesParams contains parameters for reading vault balances
type AggregateBalancesParams struct {
	Snapshot *models.Snapshot
	Client   ChainClient
	ChainIDs []uint64 // all known chains when empty
}

// AggregateBalancesResult contains one balance table per chain. A chain that
// failed for any reason has an entry in Failures instead.
type AggregateBalancesResult struct {
	Chains   []*models.ChainBalances
	Failures map[uint64]error
}

// AggregateBalances reads the native token vault balance of every
// vault-backed asset for each chain
type AggregateBalances struct {
	progress ProgressSink
	log      *slog.Logger
	vault    *bindings.NativeTokenVault
}

// NewAggregateBalances creates a new AggregateBalances use case
func NewAggregateBalances(progress ProgressSink, log *slog.Logger) *AggregateBalances {
	return &AggregateBalances{
		progress: progress,
		log:      log.With("component", "AggregateBalances"),
		vault:    bindings.NewNativeTokenVault(),
	}
}

// Run executes the use case
func (uc *AggregateBalances) Run(ctx context.Context, params AggregateBalancesParams) (*AggregateBalancesResult, error) {
	snapshot := params.Snapshot
	router, err := snapshot.AssetRouter()
	if err != nil {
		return nil, err
	}
	if router.Stub {
		return nil, fmt.Errorf("balances on %s: %w", snapshot.Endpoint, domain.ErrBaseLayerRequired)
	}

	assets := lo.Filter(lo.Values(router.Assets), func(a *models.RegisteredAsset, _ int) bool {
		return a.Handler.Kind == models.VaultBackedHandler
	})
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].AssetID.Cmp(assets[j].AssetID) < 0
	})

	chainIDs := params.ChainIDs
	if len(chainIDs) == 0 {
		chainIDs = snapshot.ChainIDs()
	}

	result := &AggregateBalancesResult{Failures: make(map[uint64]error)}
	r := newReader(params.Client, snapshot.Block)
	for _, id := range chainIDs {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "balances", Message: fmt.Sprintf("Reading balances of chain %d", id), Spinner: true})
		balances, err := uc.chainBalances(ctx, r, router.NativeTokenVault, id, assets)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			uc.log.Warn("balances unavailable", "chain", id, "error", err)
			result.Failures[id] = err
			continue
		}
		result.Chains = append(result.Chains, balances)
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})
	return result, nil
}

func (uc *AggregateBalances) chainBalances(ctx context.Context, r reader, vault common.Address, chainID uint64, assets []*models.RegisteredAsset) (*models.ChainBalances, error) {
	amounts := make([]*big.Int, len(assets))
	g, gctx := errgroup.WithContext(ctx)
	for i, asset := range assets {
		g.Go(func() error {
			amount, err := call(gctx, r, vault, uc.vault.PackChainBalance(new(big.Int).SetUint64(chainID), asset.AssetID), uc.vault.UnpackChainBalance)
			if err != nil {
				return fmt.Errorf("failed to read balance of %s on chain %d: %w", asset.AssetID.Hex(), chainID, err)
			}
			amounts[i] = amount
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := &models.ChainBalances{ChainID: chainID, Balances: make(map[string]*models.Balance, len(assets))}
	for i, asset := range assets {
		name := asset.Handler.TokenName
		if _, taken := table.Balances[name]; taken {
			name = fmt.Sprintf("%s (%s)", name, asset.Handler.TokenAddress.Hex())
		}
		table.Balances[name] = &models.Balance{
			AssetID:   asset.AssetID,
			Token:     asset.Handler.TokenAddress,
			Name:      asset.Handler.TokenName,
			Amount:    amounts[i],
			Formatted: FormatUnits(amounts[i], asset.Handler.TokenDecimals),
		}
	}
	return table, nil
}

// FormatUnits renders amount as a decimal string with the given number of
// fractional digits, trimming trailing zeros
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	sign := ""
	abs := new(big.Int).Set(amount)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}
	if decimals == 0 {
		return sign + abs.String()
	}

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(abs, unit, new(big.Int))
	digits := frac.String()
	if pad := int(decimals) - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	fraction := strings.TrimRight(digits, "0")
	if fraction == "" {
		return sign + whole.String()
	}
	return sign + whole.String() + "." + fraction
}
