package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"aurum/blockchain"
)

// HandleMine forges a new block: it runs the proof search against the
// current tip, credits the mining reward to this node's identity, and
// appends the block.
func HandleMine(w http.ResponseWriter, r *http.Request, ledger *blockchain.Ledger, nodeID string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	block, err := ledger.Mine(r.Context(), nodeID)
	if err != nil {
		log.Printf("Mining failed: %v", err)
		http.Error(w, fmt.Sprintf("Mining failed: %v", err), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"message":       "New Block Forged",
		"index":         block.Index,
		"transactions":  block.Transactions,
		"proof":         block.Proof,
		"previous_hash": block.PreviousHash,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
