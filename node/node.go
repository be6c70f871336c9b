// Package node composes a full ledger node: ledger, peer registry,
// conflict resolution and the HTTP API, all explicitly constructed so
// several nodes can coexist in one process.
package node

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"aurum/api"
	"aurum/blockchain"
	"aurum/blockchain/store"
	"aurum/consensus"
	"aurum/peers"
)

// Config holds all configuration for a full node.
type Config struct {
	HTTPPort string
	// NodeID is the identity credited with mining rewards. Generated when
	// empty.
	NodeID string
	// SeedPeers are registered at startup.
	SeedPeers []string
	// PeerTimeout bounds each peer request during resolution.
	PeerTimeout time.Duration
	// DBPath enables BoltDB chain persistence when non-empty; otherwise
	// the chain lives in memory only, like the reference node.
	DBPath string
}

// FullNode owns one ledger and everything serving it.
type FullNode struct {
	config   Config
	ledger   *blockchain.Ledger
	registry *peers.Registry
	resolver *consensus.Resolver
	server   *api.Server
	store    blockchain.ChainStore
}

// NewFullNode builds a node from config. The ledger starts at genesis, or
// at the persisted chain when DBPath points at an existing snapshot.
func NewFullNode(config Config) (*FullNode, error) {
	if config.NodeID == "" {
		config.NodeID = strings.ReplaceAll(uuid.New().String(), "-", "")
	}

	var chainStore blockchain.ChainStore
	if config.DBPath != "" {
		boltStore, err := store.NewBoltChainStore(config.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open chain store: %w", err)
		}
		chainStore = boltStore
	} else {
		chainStore = store.NewMemoryChainStore()
	}

	ledger, err := blockchain.NewLedger(blockchain.WithStore(chainStore))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ledger: %w", err)
	}

	registry := peers.NewRegistry()
	for _, peer := range config.SeedPeers {
		if err := registry.Register(peer); err != nil {
			return nil, fmt.Errorf("failed to register seed peer %q: %w", peer, err)
		}
	}

	resolver := consensus.NewResolver(ledger, registry, consensus.NewHTTPFetcher(config.PeerTimeout))
	server := api.NewServer(ledger, registry, resolver, config.NodeID, config.HTTPPort)

	return &FullNode{
		config:   config,
		ledger:   ledger,
		registry: registry,
		resolver: resolver,
		server:   server,
		store:    chainStore,
	}, nil
}

// Start serves the HTTP API (blocks until Stop).
func (n *FullNode) Start() error {
	log.Printf("%s\tLedger initialized at height %d", n.config.NodeID, n.ledger.Length())
	if n.registry.Len() > 0 {
		log.Printf("%s\tSeed peers: %v", n.config.NodeID, n.registry.Addresses())
	}
	return n.server.Start()
}

// Stop shuts the node down gracefully and closes the chain store.
func (n *FullNode) Stop(ctx context.Context) error {
	if err := n.server.Shutdown(ctx); err != nil {
		return err
	}
	return n.store.Close()
}

// NodeID returns the node's reward identity.
func (n *FullNode) NodeID() string {
	return n.config.NodeID
}

// Ledger returns the node's ledger, mainly for tests.
func (n *FullNode) Ledger() *blockchain.Ledger {
	return n.ledger
}

// Registry returns the node's peer registry, mainly for tests.
func (n *FullNode) Registry() *peers.Registry {
	return n.registry
}

// Resolver returns the node's conflict resolver, mainly for tests.
func (n *FullNode) Resolver() *consensus.Resolver {
	return n.resolver
}

// API returns the node's HTTP server so tests can mount its routes on an
// httptest listener.
func (n *FullNode) API() *api.Server {
	return n.server
}
