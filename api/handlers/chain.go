package handlers

import (
	"encoding/json"
	"net/http"

	"aurum/blockchain"
)

// HandleChain serves the full chain in exactly the shape a peer's resolve
// sweep consumes.
func HandleChain(w http.ResponseWriter, r *http.Request, ledger *blockchain.Ledger) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	chain := ledger.Chain()
	payload := blockchain.ChainPayload{
		Chain:  chain,
		Length: len(chain),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
