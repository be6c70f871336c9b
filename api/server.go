package api

import (
	"context"
	"log"
	"net/http"

	"aurum/api/handlers"
	"aurum/blockchain"
	"aurum/consensus"
	"aurum/peers"
)

// Server exposes one node's ledger over HTTP.
type Server struct {
	ledger     *blockchain.Ledger
	registry   *peers.Registry
	resolver   *consensus.Resolver
	nodeID     string
	httpServer *http.Server
	mux        *http.ServeMux
}

// NewServer wires all endpoints for the given node dependencies.
func NewServer(ledger *blockchain.Ledger, registry *peers.Registry, resolver *consensus.Resolver, nodeID, port string) *Server {
	server := &Server{
		ledger:   ledger,
		registry: registry,
		resolver: resolver,
		nodeID:   nodeID,
		mux:      http.NewServeMux(),
	}
	server.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: server.mux,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP endpoints.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/mine", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleMine(w, r, s.ledger, s.nodeID)
	})
	s.mux.HandleFunc("/transactions/new", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleNewTransaction(w, r, s.ledger)
	})
	s.mux.HandleFunc("/nodes/register", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleRegisterNodes(w, r, s.registry)
	})
	s.mux.HandleFunc("/nodes/resolve", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleResolve(w, r, s.resolver)
	})
	s.mux.HandleFunc("/chain", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleChain(w, r, s.ledger)
	})
}

// Handler returns the route table, mainly so tests can mount it on an
// httptest server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start begins serving HTTP requests (blocks until shutdown).
func (s *Server) Start() error {
	log.Printf("Starting HTTP API server on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
