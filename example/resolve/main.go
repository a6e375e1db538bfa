package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/wrenfield/kbresolve"
	"github.com/wrenfield/kbresolve/model"
)

// fileSearcher is a minimal search collaborator for running the
// resolution pipeline without a database: it returns every line of the
// knowledge-base file as a candidate and lets the rescoring stage pick.
type fileSearcher struct {
	lines []string
}

func newFileSearcher(path string) (*fileSearcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	searcher := &fileSearcher{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			searcher.lines = append(searcher.lines, line)
		}
	}
	return searcher, scanner.Err()
}

func (s *fileSearcher) Query(ctx context.Context, text string, topK int, where *model.SearchFilter) ([]model.Candidate, error) {
	candidates := make([]model.Candidate, 0, len(s.lines))
	for _, line := range s.lines {
		candidates = append(candidates, model.Candidate{Text: line})
	}
	return candidates, nil
}

func main() {
	dataDir := "./data"
	kbPath := filepath.Join(dataDir, "pokemon_kb.txt")

	searcher, err := newFileSearcher(kbPath)
	if err != nil {
		log.Fatalf("Failed to read knowledge base: %v", err)
	}

	resolver := kbresolve.NewWithSearcher(searcher, dataDir, nil)

	queries := []string{
		"Information about the Item Pep-Up Plant",
		"pokemon: Piplup",
		"what does the move ice beam do",
		"tell me a story",
	}

	ctx := context.Background()
	for _, query := range queries {
		resolution, err := resolver.Resolve(ctx, query, nil)
		if err != nil {
			log.Fatalf("Failed to resolve %q: %v", query, err)
		}

		fmt.Printf("\nQuery: %s\n", query)
		if resolution.Resolved() {
			fmt.Printf("  Context: %s\n", resolution.Text)
			fmt.Printf("  Score:   %.2f (%s)\n", resolution.Score, resolution.Method)
		} else {
			fmt.Println("  No context resolved")
		}
	}

	// Debug mode surfaces the scored candidate pool
	config := &model.QueryConfig{TopK: 10, ScoreThreshold: 0.98, Debug: true}
	resolution, err := resolver.Resolve(ctx, "move ice beam", config)
	if err != nil {
		log.Fatalf("Failed to resolve: %v", err)
	}

	fmt.Println("\nScored candidates for \"move ice beam\":")
	for _, scored := range resolution.Candidates {
		fmt.Printf("  %.2f  %s\n", scored.Score, scored.Label)
	}
}
