package blockchain

import "time"

// NewGenesisBlock creates the first block of a fresh chain. Its previous
// hash and proof are fixed sentinels; it is forged once at ledger
// construction and never re-validated against a predecessor.
func NewGenesisBlock() Block {
	return Block{
		Index:        1,
		PreviousHash: GenesisPreviousHash,
		Proof:        GenesisProof,
		Timestamp:    time.Now().Unix(),
		Transactions: []Transaction{},
	}
}
