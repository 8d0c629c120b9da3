package bindings

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// GetEventID returns the event signature hash for a given event name
// This is a helper method that works alongside the generated ABI bindings
func (bridgehub *Bridgehub) GetEventID(eventName string) (common.Hash, error) {
	event, exists := bridgehub.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// GetEventID returns the event signature hash for a given event name
func (chainTypeManager *ChainTypeManager) GetEventID(eventName string) (common.Hash, error) {
	event, exists := chainTypeManager.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// GetEventID returns the event signature hash for a given event name
func (zKChain *ZKChain) GetEventID(eventName string) (common.Hash, error) {
	event, exists := zKChain.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// GetEventID returns the event signature hash for a given event name
func (l1AssetRouter *L1AssetRouter) GetEventID(eventName string) (common.Hash, error) {
	event, exists := l1AssetRouter.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// MustEventID is GetEventID for names known at compile time
func MustEventID(id common.Hash, err error) common.Hash {
	if err != nil {
		panic(err)
	}
	return id
}

func (e *BridgehubNewChain) String() string {
	return fmt.Sprintf(
		"%s: chainId=%s ctm=%s governance=%s",
		e.ContractEventName(),
		e.ChainId.String(),
		e.ChainTypeManager.String(),
		e.ChainGovernance.String(),
	)
}

func (e *ChainTypeManagerNewZKChain) String() string {
	return fmt.Sprintf(
		"%s: chainId=%s zkChain=%s",
		e.ContractEventName(),
		e.ChainId.String(),
		e.ZkChainContract.String(),
	)
}

func (e *ZKChainNewPriorityRequest) String() string {
	return fmt.Sprintf(
		"%s: txId=%s txHash=%x expiration=%d",
		e.ContractEventName(),
		e.TxId.String(),
		e.TxHash,
		e.ExpirationTimestamp,
	)
}

func (e *L1AssetRouterAssetHandlerRegisteredInitial) String() string {
	return fmt.Sprintf(
		"%s: assetId=%x handler=%s sender=%s",
		e.ContractEventName(),
		e.AssetId,
		e.AssetHandlerAddress.String(),
		e.Sender.String(),
	)
}
