// Package chaintest builds valid prebuilt chains for tests and developer
// tooling.
package chaintest

import (
	"context"
	"fmt"
	"time"

	"aurum/blockchain"
)

// BuildChain returns a valid chain of the given length, starting from a
// fresh genesis block and forging txPerBlock sample transactions into every
// subsequent block. Each block carries a real proof found against its
// predecessor, so the result passes ValidChain.
func BuildChain(length, txPerBlock int) []blockchain.Block {
	if length < 1 {
		return nil
	}

	chain := make([]blockchain.Block, 0, length)
	chain = append(chain, blockchain.NewGenesisBlock())

	for i := 1; i < length; i++ {
		prev := chain[i-1]

		proof, err := blockchain.FindProof(context.Background(), prev.Proof)
		if err != nil {
			// Background context never expires.
			panic(err)
		}

		chain = append(chain, blockchain.Block{
			Index:        prev.Index + 1,
			PreviousHash: blockchain.HashBlock(prev),
			Proof:        proof,
			Timestamp:    time.Now().Unix(),
			Transactions: SampleTransactions(i, txPerBlock),
		})
	}

	return chain
}

// SampleTransactions generates deterministic filler transactions for block
// number blockNum.
func SampleTransactions(blockNum, count int) []blockchain.Transaction {
	txs := make([]blockchain.Transaction, 0, count)
	for t := 0; t < count; t++ {
		txs = append(txs, blockchain.Transaction{
			Amount:    int64(blockNum*10 + t),
			Recipient: fmt.Sprintf("recipient-%d", t),
			Sender:    fmt.Sprintf("sender-%d", blockNum),
		})
	}
	return txs
}
