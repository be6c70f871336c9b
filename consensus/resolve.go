// Package consensus reconciles divergent copies of the ledger across peers
// using the longest-valid-chain rule.
package consensus

import (
	"context"
	"log"

	"aurum/blockchain"
	"aurum/peers"
)

// Fetcher retrieves a peer's chain. Production code uses HTTPFetcher; tests
// inject fakes.
type Fetcher interface {
	FetchChain(ctx context.Context, address string) (*blockchain.ChainPayload, error)
}

// Result reports the outcome of a resolution sweep. Chain is whichever
// chain is canonical afterwards.
type Result struct {
	Replaced bool
	Chain    []blockchain.Block
}

// Resolver applies the longest-valid-chain rule against all registered
// peers.
type Resolver struct {
	ledger   *blockchain.Ledger
	registry *peers.Registry
	fetcher  Fetcher
}

func NewResolver(ledger *blockchain.Ledger, registry *peers.Registry, fetcher Fetcher) *Resolver {
	return &Resolver{
		ledger:   ledger,
		registry: registry,
		fetcher:  fetcher,
	}
}

// Resolve fetches every registered peer's chain and replaces the local one
// with the longest valid candidate found, if any.
//
// Only strictly longer chains qualify: an equal-length peer chain never
// replaces the local one, so peer iteration order is irrelevant. Peers that
// are unreachable or serve an invalid chain are skipped, never surfaced as
// errors.
func (r *Resolver) Resolve(ctx context.Context) Result {
	bestLength := r.ledger.Length()
	var newChain []blockchain.Block

	for _, address := range r.registry.Addresses() {
		payload, err := r.fetcher.FetchChain(ctx, address)
		if err != nil {
			log.Printf("CONSENSUS\tSkipping peer %s: %v", address, err)
			continue
		}

		if payload.Length <= bestLength {
			continue
		}
		if !blockchain.ValidChain(payload.Chain) {
			log.Printf("CONSENSUS\tSkipping peer %s: chain of length %d is invalid", address, payload.Length)
			continue
		}

		bestLength = payload.Length
		newChain = payload.Chain
	}

	if newChain == nil {
		return Result{Replaced: false, Chain: r.ledger.Chain()}
	}

	if err := r.ledger.ReplaceChain(newChain); err != nil {
		log.Printf("CONSENSUS\tFailed to adopt chain of length %d: %v", bestLength, err)
		return Result{Replaced: false, Chain: r.ledger.Chain()}
	}

	log.Printf("CONSENSUS\tReplaced local chain with peer chain of length %d", bestLength)
	return Result{Replaced: true, Chain: r.ledger.Chain()}
}
