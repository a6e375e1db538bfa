package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wrenfield/kbresolve/helper"
	"github.com/wrenfield/kbresolve/model"
)

// Roles of conversation messages, matching the chat engine's wire values.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultFraming prefixes injected knowledge-base context so the chat
// engine treats it as background rather than an instruction.
const DefaultFraming = "This information may be relevant to the conversation"

// Message is one turn of the conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Resolver supplies knowledge-base context for a raw utterance.
type Resolver interface {
	Resolve(ctx context.Context, raw string, config *model.QueryConfig) (*model.Resolution, error)
}

// ChatClient is the chat/completion engine consuming the history.
type ChatClient interface {
	Chat(ctx context.Context, messages []Message) (Message, error)
	ChatStream(ctx context.Context, messages []Message, onChunk func(content string)) (Message, error)
}

// Agent injects resolved knowledge-base context into a conversation and
// forwards it to a chat engine. The history is owned by the caller and
// passed in and returned on every call; the agent keeps no state
// between turns.
type Agent struct {
	resolver Resolver
	chat     ChatClient
	framing  string
	log      *slog.Logger
}

// NewAgent creates a new agent. An empty framing falls back to
// DefaultFraming; the chat client may be nil if only Contextualize is used.
func NewAgent(resolver Resolver, chat ChatClient, framing string, logger *slog.Logger) (*Agent, error) {
	if resolver == nil {
		return nil, helper.NewError("agent validation", fmt.Errorf("resolver must not be nil"))
	}
	if framing == "" {
		framing = DefaultFraming
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Agent{
		resolver: resolver,
		chat:     chat,
		framing:  framing,
		log:      logger,
	}, nil
}

// Contextualize resolves the query against the knowledge base and,
// when a line was chosen, appends it to the history as a framed system
// message. An unresolved query is a normal outcome: the history is
// returned unchanged alongside the resolution.
func (a *Agent) Contextualize(ctx context.Context, history []Message, query string, config *model.QueryConfig) ([]Message, *model.Resolution, error) {
	resolution, err := a.resolver.Resolve(ctx, query, config)
	if err != nil {
		return history, nil, helper.NewError("resolve context", err)
	}

	if resolution.Resolved() {
		history = append(history, Message{
			Role:    RoleSystem,
			Content: fmt.Sprintf("%s ... %s", a.framing, resolution.Text),
		})
		a.log.Debug("Injected context",
			slog.String("method", string(resolution.Method)),
			slog.Float64("score", resolution.Score))
	}

	return history, resolution, nil
}

// Chat runs one full turn: inject context, append the user message and
// produce the assistant reply. The returned history includes the reply.
func (a *Agent) Chat(ctx context.Context, history []Message, query string, config *model.QueryConfig) ([]Message, Message, error) {
	return a.turn(ctx, history, query, config, nil)
}

// ChatStream is Chat with the reply streamed through onChunk as it is
// generated. The accumulated reply is still returned in full.
func (a *Agent) ChatStream(ctx context.Context, history []Message, query string, config *model.QueryConfig, onChunk func(content string)) ([]Message, Message, error) {
	return a.turn(ctx, history, query, config, onChunk)
}

func (a *Agent) turn(ctx context.Context, history []Message, query string, config *model.QueryConfig, onChunk func(content string)) ([]Message, Message, error) {
	if a.chat == nil {
		return history, Message{}, helper.NewError("chat turn", fmt.Errorf("no chat client configured"))
	}

	history, _, err := a.Contextualize(ctx, history, query, config)
	if err != nil {
		return history, Message{}, err
	}

	history = append(history, Message{Role: RoleUser, Content: query})

	var reply Message
	if onChunk != nil {
		reply, err = a.chat.ChatStream(ctx, history, onChunk)
	} else {
		reply, err = a.chat.Chat(ctx, history)
	}
	if err != nil {
		return history, Message{}, helper.NewError("chat completion", err)
	}

	history = append(history, reply)
	return history, reply, nil
}
