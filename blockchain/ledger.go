package blockchain

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ChainStore persists chain snapshots. Implementations live in
// blockchain/store; the interface is declared on the consumer side to keep
// the core free of storage imports.
type ChainStore interface {
	SaveChain(chain []Block) error
	LoadChain() ([]Block, error)
	Close() error
}

// Ledger owns a single canonical chain and the pool of transactions waiting
// to be mined. It is an explicitly constructed instance so several nodes can
// coexist in one process.
//
// All mutation of chain and pending happens under one mutex: concurrent
// NewBlock calls must not both snapshot-and-clear the same pending pool. A
// separate mutex serializes miners and wholesale replacements so that the
// proof search, which runs outside the state lock, cannot have the tip
// moved underneath it by another miner or by a consensus replacement.
type Ledger struct {
	mu      sync.Mutex
	chain   []Block
	pending []Transaction

	// mineMu is held for the whole mining flow and by ReplaceChain.
	// Lock order: mineMu before mu.
	mineMu sync.Mutex

	store ChainStore
}

// LedgerOption configures a Ledger at construction time.
type LedgerOption func(*Ledger)

// WithStore makes the ledger persist its chain to s on every append and
// replacement, and reload an existing snapshot at construction.
func WithStore(s ChainStore) LedgerOption {
	return func(l *Ledger) { l.store = s }
}

// NewLedger constructs a ledger holding exactly the genesis block, or the
// persisted chain when a store with an existing snapshot is configured.
func NewLedger(opts ...LedgerOption) (*Ledger, error) {
	l := &Ledger{pending: []Transaction{}}
	for _, opt := range opts {
		opt(l)
	}

	if l.store != nil {
		chain, err := l.store.LoadChain()
		if err != nil {
			return nil, fmt.Errorf("failed to load persisted chain: %w", err)
		}
		if len(chain) > 0 {
			l.chain = chain
			return l, nil
		}
	}

	chain := []Block{NewGenesisBlock()}
	if err := l.persistChain(chain); err != nil {
		return nil, err
	}
	l.chain = chain
	return l, nil
}

// NewBlock forges a block from the pending transactions and appends it to
// the chain. When previousHash is empty it is computed from the current tip.
// The pending pool is snapshotted into the block and reset atomically.
//
// The proof is not checked here; validity is the caller's responsibility
// (Mine always supplies one produced by FindProof).
func (l *Ledger) NewBlock(proof uint64, previousHash string) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if previousHash == "" {
		previousHash = HashBlock(l.chain[len(l.chain)-1])
	}

	block := Block{
		Index:        int64(len(l.chain)) + 1,
		PreviousHash: previousHash,
		Proof:        proof,
		Timestamp:    time.Now().Unix(),
		Transactions: l.pending,
	}

	// Persist before committing: a failed store write must leave chain
	// and pending exactly as they were.
	next := append(append([]Block(nil), l.chain...), block)
	if err := l.persistChain(next); err != nil {
		return Block{}, err
	}

	l.chain = next
	l.pending = []Transaction{}
	return block, nil
}

// NewTransaction queues a transaction for the next mined block and returns
// the index of the block expected to hold it. The index is informational
// only: nothing reserves the slot if other callers interleave.
func (l *Ledger) NewTransaction(sender, recipient string, amount int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, Transaction{
		Amount:    amount,
		Recipient: recipient,
		Sender:    sender,
	})

	return l.chain[len(l.chain)-1].Index + 1
}

// Tip returns the most recently appended block. The chain is never empty:
// genesis is created at construction.
func (l *Ledger) Tip() Block {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.chain[len(l.chain)-1]
}

// Chain returns a copy of the current chain.
func (l *Ledger) Chain() []Block {
	l.mu.Lock()
	defer l.mu.Unlock()
	chain := make([]Block, len(l.chain))
	copy(chain, l.chain)
	return chain
}

// Length returns the number of blocks in the chain.
func (l *Ledger) Length() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.chain)
}

// PendingTransactions returns a copy of the transactions waiting to be
// mined.
func (l *Ledger) PendingTransactions() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	pending := make([]Transaction, len(l.pending))
	copy(pending, l.pending)
	return pending
}

// ReplaceChain swaps the chain wholesale, as decided by conflict
// resolution. The pending pool is untouched. The caller must have validated
// the replacement.
//
// It takes the miner lock: a replacement landing in the middle of a proof
// search would otherwise produce a block whose previous_hash points at the
// new tip while its proof was found against the old one.
func (l *Ledger) ReplaceChain(chain []Block) error {
	l.mineMu.Lock()
	defer l.mineMu.Unlock()
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]Block, len(chain))
	copy(next, chain)

	if err := l.persistChain(next); err != nil {
		return err
	}

	l.chain = next
	return nil
}

// Mine runs the full mining flow: find a proof for the current tip, credit
// the fixed reward to recipient, and forge the block. The proof search runs
// outside the state lock and is capped only through ctx; miners and chain
// replacements are serialized against each other so the tip cannot move
// under the search.
func (l *Ledger) Mine(ctx context.Context, recipient string) (Block, error) {
	l.mineMu.Lock()
	defer l.mineMu.Unlock()

	proof, err := FindProof(ctx, l.Tip().Proof)
	if err != nil {
		return Block{}, fmt.Errorf("proof search aborted: %w", err)
	}

	// Sender "0" signifies a newly minted coin.
	l.NewTransaction(RewardSender, recipient, RewardAmount)

	return l.NewBlock(proof, "")
}

// persistChain writes a candidate chain to the store before it is
// committed to memory. Must be called with mu held (or before the ledger is
// shared).
func (l *Ledger) persistChain(chain []Block) error {
	if l.store == nil {
		return nil
	}
	if err := l.store.SaveChain(chain); err != nil {
		return fmt.Errorf("failed to persist chain: %w", err)
	}
	return nil
}
