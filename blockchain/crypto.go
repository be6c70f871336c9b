package blockchain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashBlock returns the SHA-256 digest of the block's canonical
// serialization as lowercase hex.
//
// Canonical means JSON with keys in lexicographic order (guaranteed by the
// field declaration order of Block and Transaction), so two structurally
// identical blocks always hash identically regardless of how they were
// constructed, and chains produced by other nodes validate the same way.
func HashBlock(block Block) string {
	encoded, err := json.Marshal(block)
	if err != nil {
		// Block contains only marshalable field types.
		panic("blockchain: block serialization failed: " + err.Error())
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])
}
