package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Well-known system contract addresses on rollup chains
var (
	L2DeployerAddress    = common.HexToAddress("0x0000000000000000000000000000000000008006")
	L2BridgehubAddress   = common.HexToAddress("0x0000000000000000000000000000000000010002")
	L2AssetRouterAddress = common.HexToAddress("0x0000000000000000000000000000000000010003")
	L2NativeTokenVault   = common.HexToAddress("0x0000000000000000000000000000000000010004")
	ETHTokenAddress      = common.HexToAddress("0x0000000000000000000000000000000000000001")
)

// AddressBook maps addresses to display names. It is a value passed to
// renderers; lookups never affect what is read from chain.
type AddressBook struct {
	names map[common.Address]string
}

// NewAddressBook creates a book seeded with the well-known system addresses
func NewAddressBook() *AddressBook {
	return &AddressBook{
		names: map[common.Address]string{
			L2DeployerAddress:    "Deployer",
			L2BridgehubAddress:   "Bridgehub",
			L2AssetRouterAddress: "Shared Bridge",
			L2NativeTokenVault:   "Native Token Vault",
			ETHTokenAddress:      "ETH",
		},
	}
}

// With returns a copy of the book with an additional name
func (b *AddressBook) With(address common.Address, name string) *AddressBook {
	names := make(map[common.Address]string, len(b.names)+1)
	for k, v := range b.names {
		names[k] = v
	}
	names[address] = name
	return &AddressBook{names: names}
}

// Name returns the display name for address, if any
func (b *AddressBook) Name(address common.Address) (string, bool) {
	if b == nil {
		return "", false
	}
	name, ok := b.names[address]
	return name, ok
}

// Human formats an address for display, shortening it when a name is known
func (b *AddressBook) Human(address common.Address) string {
	name, ok := b.Name(address)
	if !ok {
		return address.Hex()
	}
	hex := address.Hex()
	return fmt.Sprintf("%s...%s (%-26s)", hex[0:5], hex[len(hex)-5:], name)
}
