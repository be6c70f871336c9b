package blockchain

// ValidChain reports whether every adjacent pair of blocks is correctly
// linked: the successor's previous_hash must equal the hash of its
// predecessor, and the successor's proof must solve the puzzle relative to
// the predecessor's proof.
//
// Chains of zero or one blocks are valid. The walk short-circuits on the
// first violation. The function is pure and accepts any candidate chain,
// including ones produced by other nodes, so consensus can use it on fetched
// chains.
func ValidChain(chain []Block) bool {
	for i := 1; i < len(chain); i++ {
		prev, cur := chain[i-1], chain[i]

		if cur.PreviousHash != HashBlock(prev) {
			return false
		}
		if !ValidProof(prev.Proof, cur.Proof) {
			return false
		}
	}
	return true
}
