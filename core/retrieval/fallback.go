package retrieval

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultKBName is the knowledge-base file scanned when no document
// name was given.
const DefaultKBName = "pokemon_kb.txt"

// ResolveKBPath computes the knowledge-base file path for a fallback
// scan. Pure; performs no I/O.
func ResolveKBPath(dataDir string, docName string) string {
	if docName == "" {
		docName = DefaultKBName
	}
	return filepath.Join(dataDir, docName)
}

// FindExactLine scans the knowledge-base file for the first line whose
// trimmed, lowercased form starts with "<category> — <probableID> —"
// and returns it with original casing. Returns "" when probableID is
// empty, the file cannot be read, or no line matches; none of those
// are errors.
func FindExactLine(kbPath string, category string, probableID string) string {
	probableID = strings.ToLower(strings.TrimSpace(probableID))
	if probableID == "" {
		return ""
	}

	targetPrefix := fmt.Sprintf("%s — %s —", category, probableID)

	f, err := os.Open(kbPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// KB records hold full entity dossiers on one line
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), targetPrefix) {
			return line
		}
	}

	return ""
}
