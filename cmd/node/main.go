package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"aurum/node"
)

func main() {
	// Command line flags
	port := flag.String("port", "5000", "HTTP API port")
	nodeID := flag.String("id", "", "Node identity (auto-generated if not provided)")
	seeds := flag.String("peers", "", "Comma-separated peer addresses to register at startup")
	dbPath := flag.String("db", "", "Path to a BoltDB file for chain persistence (in-memory if empty)")
	peerTimeout := flag.Duration("peer-timeout", 5*time.Second, "Timeout per peer request during conflict resolution")
	flag.Parse()

	var seedPeers []string
	if *seeds != "" {
		seedPeers = strings.Split(*seeds, ",")
	}

	config := node.Config{
		HTTPPort:    *port,
		NodeID:      *nodeID,
		SeedPeers:   seedPeers,
		PeerTimeout: *peerTimeout,
		DBPath:      *dbPath,
	}

	fullNode, err := node.NewFullNode(config)
	if err != nil {
		log.Fatal("Failed to create node: ", err)
	}

	pterm.DefaultHeader.Println("aurum ledger node")
	pterm.Info.Printfln("Node ID: %s", fullNode.NodeID())
	pterm.Info.Printfln("Listening on :%s", *port)
	if len(seedPeers) > 0 {
		pterm.Info.Printfln("Seed peers: %s", strings.Join(seedPeers, ", "))
	}
	if *dbPath != "" {
		pterm.Info.Printfln("Persisting chain to %s", *dbPath)
	}

	// This blocks forever
	if err := fullNode.Start(); err != nil {
		log.Fatal("Node stopped: ", err)
	}
}
