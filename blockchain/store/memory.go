package store

import (
	"sync"

	"aurum/blockchain"
)

// MemoryChainStore keeps the chain snapshot in process memory. It is the
// default store: the reference design has no persistence, so losing the
// chain on restart is acceptable.
type MemoryChainStore struct {
	mu    sync.RWMutex
	chain []blockchain.Block
}

func NewMemoryChainStore() *MemoryChainStore {
	return &MemoryChainStore{}
}

func (m *MemoryChainStore) SaveChain(chain []blockchain.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chain = make([]blockchain.Block, len(chain))
	copy(m.chain, chain)
	return nil
}

func (m *MemoryChainStore) LoadChain() ([]blockchain.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.chain == nil {
		return nil, nil
	}
	chain := make([]blockchain.Block, len(m.chain))
	copy(chain, m.chain)
	return chain, nil
}

func (m *MemoryChainStore) Close() error {
	return nil
}
