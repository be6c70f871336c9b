package node

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aurum/blockchain"
)

// startTestNode builds a full node and serves its API on an httptest
// listener, returning the node and its host:port authority.
func startTestNode(t *testing.T, config Config) (*FullNode, string) {
	t.Helper()

	fullNode, err := NewFullNode(config)
	if err != nil {
		t.Fatalf("NewFullNode() failed: %v", err)
	}

	server := httptest.NewServer(fullNode.API().Handler())
	t.Cleanup(server.Close)

	return fullNode, strings.TrimPrefix(server.URL, "http://")
}

func TestNewFullNodeDefaults(t *testing.T) {
	fullNode, err := NewFullNode(Config{HTTPPort: "0"})
	if err != nil {
		t.Fatalf("NewFullNode() failed: %v", err)
	}

	if fullNode.NodeID() == "" {
		t.Error("NodeID() is empty, want generated identity")
	}
	if strings.Contains(fullNode.NodeID(), "-") {
		t.Errorf("NodeID() = %q, want dash-stripped identity", fullNode.NodeID())
	}
	if got := fullNode.Ledger().Length(); got != 1 {
		t.Errorf("fresh node chain length = %d, want 1", got)
	}
}

func TestNewFullNodeRejectsBadSeedPeer(t *testing.T) {
	if _, err := NewFullNode(Config{HTTPPort: "0", SeedPeers: []string{"   "}}); err == nil {
		t.Error("NewFullNode() with invalid seed peer returned nil error")
	}
}

func TestTwoNodeConsensus(t *testing.T) {
	nodeA, _ := startTestNode(t, Config{HTTPPort: "0", NodeID: "node-a", PeerTimeout: time.Second})
	nodeB, addrB := startTestNode(t, Config{HTTPPort: "0", NodeID: "node-b", PeerTimeout: time.Second})

	// Node B mines ahead of node A.
	for i := 0; i < 2; i++ {
		if _, err := nodeB.Ledger().Mine(context.Background(), nodeB.NodeID()); err != nil {
			t.Fatalf("node B mining failed: %v", err)
		}
	}

	if err := nodeA.Registry().Register(addrB); err != nil {
		t.Fatalf("failed to register node B on node A: %v", err)
	}

	result := nodeA.Resolver().Resolve(context.Background())

	if !result.Replaced {
		t.Error("Resolve() Replaced = false, want true: node B's chain is longer and valid")
	}
	if got, want := nodeA.Ledger().Length(), nodeB.Ledger().Length(); got != want {
		t.Errorf("node A chain length = %d after resolution, want %d", got, want)
	}

	// The adopted chain is node B's, byte for byte.
	chainA, chainB := nodeA.Ledger().Chain(), nodeB.Ledger().Chain()
	for i := range chainB {
		if blockchain.HashBlock(chainA[i]) != blockchain.HashBlock(chainB[i]) {
			t.Errorf("block %d differs between nodes after resolution", i)
		}
	}
}

func TestTwoNodeConsensusEqualLength(t *testing.T) {
	nodeA, _ := startTestNode(t, Config{HTTPPort: "0", NodeID: "node-a", PeerTimeout: time.Second})
	nodeB, addrB := startTestNode(t, Config{HTTPPort: "0", NodeID: "node-b", PeerTimeout: time.Second})

	// Both nodes mine once: equal lengths, divergent chains.
	if _, err := nodeA.Ledger().Mine(context.Background(), nodeA.NodeID()); err != nil {
		t.Fatalf("node A mining failed: %v", err)
	}
	if _, err := nodeB.Ledger().Mine(context.Background(), nodeB.NodeID()); err != nil {
		t.Fatalf("node B mining failed: %v", err)
	}

	if err := nodeA.Registry().Register(addrB); err != nil {
		t.Fatalf("failed to register node B on node A: %v", err)
	}

	tipBefore := nodeA.Ledger().Tip()
	result := nodeA.Resolver().Resolve(context.Background())

	if result.Replaced {
		t.Error("Resolve() Replaced = true for equal-length peer chain, want false")
	}
	if tip := nodeA.Ledger().Tip(); blockchain.HashBlock(tip) != blockchain.HashBlock(tipBefore) {
		t.Error("node A's tip changed despite no replacement")
	}
}

func TestFullNodePersistenceAcrossRestart(t *testing.T) {
	dbPath := t.TempDir() + "/chain.db"

	first, err := NewFullNode(Config{HTTPPort: "0", NodeID: "persisted", DBPath: dbPath})
	if err != nil {
		t.Fatalf("NewFullNode() failed: %v", err)
	}
	if _, err := first.Ledger().Mine(context.Background(), first.NodeID()); err != nil {
		t.Fatalf("mining failed: %v", err)
	}
	wantTip := first.Ledger().Tip()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := first.Stop(ctx); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}

	second, err := NewFullNode(Config{HTTPPort: "0", NodeID: "persisted", DBPath: dbPath})
	if err != nil {
		t.Fatalf("NewFullNode() reopen failed: %v", err)
	}
	defer second.Stop(context.Background())

	if got := second.Ledger().Length(); got != 2 {
		t.Errorf("restarted node chain length = %d, want 2", got)
	}
	if tip := second.Ledger().Tip(); blockchain.HashBlock(tip) != blockchain.HashBlock(wantTip) {
		t.Error("restarted node tip differs from persisted tip")
	}
}
