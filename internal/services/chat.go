package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

// ErrSessionNotFound is returned for unknown or expired chat session ids.
var ErrSessionNotFound = errors.New("chat session not found")

// Greeting opens every chat session.
const Greeting = "Hey there! I'm here to help you find the right practice for today. Tell me - what's the vibe in your classroom right now? Are students restless, anxious, unfocused, or something else?"

// ChatService keeps per-session transcripts in memory. Transcripts are never
// persisted and vanish with the process.
type ChatService interface {
	NewSession() (string, []types.ChatMessage)
	Transcript(sessionID string) ([]types.ChatMessage, error)
	// SendMessage appends the user turn, performs one recommendation round
	// trip, appends the assistant reply, and returns both new messages.
	// Overlapping sends on one session race at the network layer; replies
	// append in arrival order.
	SendMessage(ctx context.Context, sessionID string, text string) ([]types.ChatMessage, error)
}

type chatSession struct {
	mu       sync.Mutex
	messages []types.ChatMessage
}

func (s *chatSession) append(msgs ...types.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msgs...)
}

func (s *chatSession) snapshot() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

type chatService struct {
	log         *logger.Logger
	recommender RecommendationService

	mu       sync.RWMutex
	sessions map[string]*chatSession
}

func NewChatService(log *logger.Logger, recommender RecommendationService) ChatService {
	return &chatService{
		log:         log.With("service", "ChatService"),
		recommender: recommender,
		sessions:    map[string]*chatSession{},
	}
}

func (cs *chatService) NewSession() (string, []types.ChatMessage) {
	id := uuid.NewString()
	session := &chatSession{
		messages: []types.ChatMessage{{Role: types.ChatRoleAssistant, Text: Greeting}},
	}
	cs.mu.Lock()
	cs.sessions[id] = session
	cs.mu.Unlock()
	return id, session.snapshot()
}

func (cs *chatService) get(sessionID string) (*chatSession, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	session, ok := cs.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}
	return session, nil
}

func (cs *chatService) Transcript(sessionID string) ([]types.ChatMessage, error) {
	session, err := cs.get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.snapshot(), nil
}

func (cs *chatService) SendMessage(ctx context.Context, sessionID string, text string) ([]types.ChatMessage, error) {
	if text == "" {
		return nil, &ValidationError{Msg: "Message is required"}
	}
	session, err := cs.get(sessionID)
	if err != nil {
		return nil, err
	}

	userMsg := types.ChatMessage{Role: types.ChatRoleUser, Text: text}
	session.append(userMsg)

	// The round trip happens outside the session lock so a second message
	// sent before the first reply arrives races independently.
	assistantMsg := cs.recommender.Recommend(ctx, text)
	session.append(assistantMsg)

	return []types.ChatMessage{userMsg, assistantMsg}, nil
}
