package blockchain

const (
	// GenesisPreviousHash is the sentinel previous_hash of the first block.
	GenesisPreviousHash = "1"

	// GenesisProof is the sentinel proof of the first block. It is never
	// checked against a predecessor.
	GenesisProof uint64 = 100

	// RewardSender marks a mining-reward transaction.
	RewardSender = "0"

	// RewardAmount is credited to the miner for every forged block.
	RewardAmount int64 = 1
)

// Transaction is a transfer between two string identities. There is no
// ownership validation: any sender string is accepted.
//
// Field order matches lexicographic JSON key order so that json.Marshal
// produces the canonical serialization used for hashing.
type Transaction struct {
	Amount    int64  `json:"amount"`
	Recipient string `json:"recipient"`
	Sender    string `json:"sender"`
}

// Block is one unit of the ledger. Index is 1-based and equals the block's
// position in the chain that contains it. PreviousHash of block n (n > 1) is
// HashBlock of block n-1.
//
// Field order matches lexicographic JSON key order; see Transaction.
type Block struct {
	Index        int64         `json:"index"`
	PreviousHash string        `json:"previous_hash"`
	Proof        uint64        `json:"proof"`
	Timestamp    int64         `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
}

// ChainPayload is the wire shape served by GET /chain and consumed during
// conflict resolution. Every node must serve it for consensus to work
// network-wide.
type ChainPayload struct {
	Chain  []Block `json:"chain"`
	Length int     `json:"length"`
}
