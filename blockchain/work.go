package blockchain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// difficultyPrefix is the fixed proof-of-work target: the digest of
// lastProof||proof must start with this many hex zeros. There is no
// retargeting.
const difficultyPrefix = "0000"

// ctxCheckInterval controls how often FindProof polls for cancellation.
const ctxCheckInterval = 1024

// ValidProof reports whether proof solves the puzzle relative to lastProof:
// the SHA-256 hex digest of the concatenated decimal strings must start with
// four zeros.
func ValidProof(lastProof, proof uint64) bool {
	guess := strconv.FormatUint(lastProof, 10) + strconv.FormatUint(proof, 10)
	sum := sha256.Sum256([]byte(guess))
	return strings.HasPrefix(hex.EncodeToString(sum[:]), difficultyPrefix)
}

// FindProof brute-forces the smallest proof valid against lastProof,
// starting at 0 and incrementing by 1. The search is deterministic: the same
// lastProof always yields the same proof, so any node reproduces the result.
//
// The search itself is unbounded (expected ~16^4 attempts); the caller caps
// it through ctx. Cancellation is checked periodically and surfaces as
// ctx.Err().
func FindProof(ctx context.Context, lastProof uint64) (uint64, error) {
	for proof := uint64(0); ; proof++ {
		if proof%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if ValidProof(lastProof, proof) {
			return proof, nil
		}
	}
}
