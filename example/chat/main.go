package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/wrenfield/kbresolve"
	"github.com/wrenfield/kbresolve/agent"
	"github.com/wrenfield/kbresolve/helper"
	"github.com/wrenfield/kbresolve/search"
)

func main() {
	// Start a test PostgreSQL container
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	// Create database configuration using the container port
	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	dataDir := "./data"
	resolver, err := kbresolve.New(dbConfig, search.EmbeddingDim, dataDir)
	if err != nil {
		log.Fatalf("Failed to create resolver: %v", err)
	}
	defer resolver.Close()

	// Embed and store the knowledge base line by line
	ctx := context.Background()
	kbPath := filepath.Join(dataDir, "pokemon_kb.txt")
	fmt.Println("Uploading knowledge base...")
	doc, err := resolver.UploadKB(ctx, kbPath, "")
	if err != nil {
		log.Fatalf("Failed to upload knowledge base: %v", err)
	}
	fmt.Printf("Uploaded %s (%d lines)\n", doc.Name, doc.LineCount)

	// Wire the resolver to a local Ollama server
	chatAgent, err := agent.NewAgent(resolver, agent.NewOllamaClient("", "", nil), "", nil)
	if err != nil {
		log.Fatalf("Failed to create agent: %v", err)
	}

	fmt.Println("\nChat started. Ask about items, pokemon or moves; type 'quit' to exit.")

	var history []agent.Message
	stdin := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !stdin.Scan() {
			break
		}
		query := strings.TrimSpace(stdin.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}

		fmt.Print("Assistant: ")
		history, _, err = chatAgent.ChatStream(ctx, history, query, nil, func(content string) {
			fmt.Print(content)
		})
		if err != nil {
			log.Printf("\nChat turn failed: %v", err)
			continue
		}
		fmt.Println()
	}
}
