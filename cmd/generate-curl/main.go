package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"aurum/chaintest"
)

func main() {
	fmt.Println("Generating curl test scripts against a local node...")

	if err := os.MkdirAll("curl", 0755); err != nil {
		log.Fatal("Failed to create curl directory:", err)
	}

	// A few sample transactions to submit before mining
	for i, tx := range chaintest.SampleTransactions(1, 3) {
		jsonData, err := json.MarshalIndent(tx, "", "  ")
		if err != nil {
			log.Printf("Failed to marshal transaction %d: %v", i, err)
			continue
		}

		scriptContent := fmt.Sprintf(`#!/bin/bash
echo "=== Testing POST /transactions/new - Transaction %d ==="
echo ""

curl -X POST http://localhost:5000/transactions/new \
  -H "Content-Type: application/json" \
  -d '%s' \
  --max-time 2 \
  --connect-timeout 2 \
  --fail-with-body \
  | jq '.' 2>/dev/null || cat
echo -e "\n"
`, i, jsonData)

		filename := fmt.Sprintf("curl/post_transaction_%d.sh", i)
		if err := writeScript(filename, scriptContent); err != nil {
			log.Printf("Failed to write script %s: %v", filename, err)
			continue
		}
		fmt.Printf("Generated: %s\n", filename)
	}

	getScripts := map[string]string{
		"curl/get_mine.sh":    "/mine",
		"curl/get_chain.sh":   "/chain",
		"curl/get_resolve.sh": "/nodes/resolve",
	}
	for filename, route := range getScripts {
		scriptContent := fmt.Sprintf(`#!/bin/bash
echo "=== Testing GET %s ==="
echo ""

curl http://localhost:5000%s \
  --max-time 30 \
  --connect-timeout 2 \
  --fail-with-body \
  | jq '.' 2>/dev/null || cat
echo -e "\n"
`, route, route)

		if err := writeScript(filename, scriptContent); err != nil {
			log.Printf("Failed to write script %s: %v", filename, err)
			continue
		}
		fmt.Printf("Generated: %s\n", filename)
	}

	registerPayload, _ := json.MarshalIndent(map[string][]string{
		"nodes": {"http://localhost:5001", "localhost:5002"},
	}, "", "  ")
	registerScript := fmt.Sprintf(`#!/bin/bash
echo "=== Testing POST /nodes/register ==="
echo ""

curl -X POST http://localhost:5000/nodes/register \
  -H "Content-Type: application/json" \
  -d '%s' \
  --max-time 2 \
  --connect-timeout 2 \
  --fail-with-body \
  | jq '.' 2>/dev/null || cat
echo -e "\n"
`, registerPayload)
	if err := writeScript("curl/post_register_nodes.sh", registerScript); err != nil {
		log.Fatal("Failed to write register script:", err)
	}
	fmt.Println("Generated: curl/post_register_nodes.sh")
}

func writeScript(filename, content string) error {
	if err := os.WriteFile(filename, []byte(content), 0755); err != nil {
		return err
	}
	abs, err := filepath.Abs(filename)
	if err == nil {
		fmt.Printf("  -> %s\n", abs)
	}
	return nil
}
