package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"aurum/consensus"
	"aurum/peers"
)

type registerNodesRequest struct {
	Nodes []string `json:"nodes"`
}

// HandleRegisterNodes adds a list of peer addresses to the registry. The
// whole call fails when the list is absent or any address is unparsable.
func HandleRegisterNodes(w http.ResponseWriter, r *http.Request, registry *peers.Registry) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerNodesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Nodes == nil {
		http.Error(w, "Error: Please supply a valid list of nodes", http.StatusBadRequest)
		return
	}

	for _, address := range req.Nodes {
		if err := registry.Register(address); err != nil {
			http.Error(w, fmt.Sprintf("Error: %v", err), http.StatusBadRequest)
			return
		}
	}

	response := map[string]interface{}{
		"message":     "New nodes have been added",
		"total_nodes": registry.Addresses(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// HandleResolve runs the longest-valid-chain sweep against all registered
// peers and reports whichever chain is canonical afterwards.
func HandleResolve(w http.ResponseWriter, r *http.Request, resolver *consensus.Resolver) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := resolver.Resolve(r.Context())

	var response map[string]interface{}
	if result.Replaced {
		response = map[string]interface{}{
			"message":   "Our chain was replaced",
			"new_chain": result.Chain,
		}
	} else {
		response = map[string]interface{}{
			"message": "Our chain is authoritative",
			"chain":   result.Chain,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
