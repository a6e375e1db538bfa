package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultOllamaHost  = "http://localhost:11434"
	DefaultOllamaModel = "llama3.2"
)

// OllamaClient talks to a local Ollama server over its /api/chat
// endpoint. It implements ChatClient.
type OllamaClient struct {
	host   string
	model  string
	client *http.Client
	log    *slog.Logger
}

// NewOllamaClient creates a client for the given host and model, with
// defaults for empty values
func NewOllamaClient(host string, model string, logger *slog.Logger) *OllamaClient {
	if host == "" {
		host = DefaultOllamaHost
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &OllamaClient{
		host:   strings.TrimRight(host, "/"),
		model:  model,
		client: &http.Client{Timeout: 5 * time.Minute},
		log:    logger,
	}
}

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ollamaChatResponse struct {
	Message Message `json:"message"`
	Done    bool    `json:"done"`
	Error   string  `json:"error,omitempty"`
}

// Chat sends the history and returns the complete assistant reply
func (c *OllamaClient) Chat(ctx context.Context, messages []Message) (Message, error) {
	return c.do(ctx, messages, nil)
}

// ChatStream sends the history and forwards each generated chunk to
// onChunk as it arrives. The accumulated reply is returned in full.
func (c *OllamaClient) ChatStream(ctx context.Context, messages []Message, onChunk func(content string)) (Message, error) {
	if onChunk == nil {
		return c.Chat(ctx, messages)
	}
	return c.do(ctx, messages, onChunk)
}

func (c *OllamaClient) do(ctx context.Context, messages []Message, onChunk func(content string)) (Message, error) {
	payload := ollamaChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   onChunk != nil,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("error marshalling chat request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return Message{}, fmt.Errorf("error creating chat request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Message{}, fmt.Errorf("error sending chat request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Message{}, fmt.Errorf("chat request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	// Ollama emits newline-delimited JSON objects while streaming and a
	// single object otherwise; decoding in a loop covers both.
	decoder := json.NewDecoder(resp.Body)
	var content strings.Builder
	role := RoleAssistant
	for {
		var chunk ollamaChatResponse
		if err := decoder.Decode(&chunk); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return Message{}, fmt.Errorf("error decoding chat response: %v", err)
		}

		if chunk.Error != "" {
			return Message{}, fmt.Errorf("chat engine error: %s", chunk.Error)
		}
		if chunk.Message.Role != "" {
			role = chunk.Message.Role
		}
		if chunk.Message.Content != "" {
			content.WriteString(chunk.Message.Content)
			if onChunk != nil {
				onChunk(chunk.Message.Content)
			}
		}
		if chunk.Done {
			break
		}
	}

	return Message{Role: role, Content: content.String()}, nil
}
