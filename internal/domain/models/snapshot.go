package models

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Snapshot is the registry graph of one layer, read at a single block.
// Entities holds every contract exactly once; everything else refers to
// entities by address.
type Snapshot struct {
	Endpoint     string                    `json:"endpoint"`
	ChainID      uint64                    `json:"chainId"`
	Layer        Layer                     `json:"layer"`
	Block        uint64                    `json:"block"`
	RegistryRoot common.Address            `json:"registryRoot"`
	Router       common.Address            `json:"router"`
	Entities     map[common.Address]Entity `json:"entities"`
	Chains       map[uint64]*ChainEntry    `json:"chains"`
	Warnings     []Warning                 `json:"warnings,omitempty"`
}

// Registry returns the registry root entity
func (s *Snapshot) Registry() (*ChainRegistry, error) {
	return lookup[*ChainRegistry](s, s.RegistryRoot)
}

// AssetRouter returns the asset router entity
func (s *Snapshot) AssetRouter() (*AssetRouter, error) {
	return lookup[*AssetRouter](s, s.Router)
}

// Manager returns the chain manager at address
func (s *Snapshot) Manager(address common.Address) (*ChainManager, error) {
	return lookup[*ChainManager](s, address)
}

// StateTransition returns the state transition contract at address
func (s *Snapshot) StateTransition(address common.Address) (*StateTransition, error) {
	return lookup[*StateTransition](s, address)
}

// Managers returns all chain managers ordered by address
func (s *Snapshot) Managers() []*ChainManager {
	return entitiesOf[*ChainManager](s)
}

// StateTransitions returns all state transition contracts ordered by address
func (s *Snapshot) StateTransitions() []*StateTransition {
	return entitiesOf[*StateTransition](s)
}

// ChainIDs returns the known chain ids in ascending order
func (s *Snapshot) ChainIDs() []uint64 {
	ids := make([]uint64, 0, len(s.Chains))
	for id := range s.Chains {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Chain returns the registry entry for chainID
func (s *Snapshot) Chain(chainID uint64) (*ChainEntry, error) {
	entry, ok := s.Chains[chainID]
	if !ok {
		return nil, fmt.Errorf("chain %d is not registered on %s", chainID, s.Endpoint)
	}
	return entry, nil
}

func lookup[T Entity](s *Snapshot, address common.Address) (T, error) {
	var zero T
	entity, ok := s.Entities[address]
	if !ok {
		return zero, fmt.Errorf("no entity at %s", address.Hex())
	}
	typed, ok := entity.(T)
	if !ok {
		return zero, fmt.Errorf("entity at %s is a %s", address.Hex(), entity.EntityKind())
	}
	return typed, nil
}

func entitiesOf[T Entity](s *Snapshot) []T {
	var out []T
	for _, entity := range s.Entities {
		if typed, ok := entity.(T); ok {
			out = append(out, typed)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].EntityAddress(), out[j].EntityAddress()
		return a.Cmp(b) < 0
	})
	return out
}
