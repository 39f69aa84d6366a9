package services

import (
	"context"
	"errors"
	"testing"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

type cannedRecommender struct {
	reply types.ChatMessage
}

func (r *cannedRecommender) Recommend(ctx context.Context, utterance string) types.ChatMessage {
	return r.reply
}

func TestNewSessionOpensWithGreeting(t *testing.T) {
	svc := NewChatService(logger.Nop(), &cannedRecommender{})

	id, transcript := svc.NewSession()
	if id == "" {
		t.Fatal("empty session id")
	}
	if len(transcript) != 1 {
		t.Fatalf("transcript len = %d, want 1", len(transcript))
	}
	if transcript[0].Role != types.ChatRoleAssistant || transcript[0].Text != Greeting {
		t.Fatalf("opening message = %+v", transcript[0])
	}

	other, _ := svc.NewSession()
	if other == id {
		t.Fatal("session ids collide")
	}
}

func TestSendMessageAppendsBothTurns(t *testing.T) {
	reply := types.ChatMessage{Role: types.ChatRoleAssistant, Text: "Try Box Breathing.", Modules: []types.Module{{ID: "m1", Title: "Box Breathing"}}}
	svc := NewChatService(logger.Nop(), &cannedRecommender{reply: reply})

	id, _ := svc.NewSession()
	msgs, err := svc.SendMessage(context.Background(), id, "students are anxious")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("returned %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != types.ChatRoleUser || msgs[0].Text != "students are anxious" {
		t.Fatalf("user turn = %+v", msgs[0])
	}
	if msgs[1].Text != "Try Box Breathing." || len(msgs[1].Modules) != 1 {
		t.Fatalf("assistant turn = %+v", msgs[1])
	}

	transcript, err := svc.Transcript(id)
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if len(transcript) != 3 {
		t.Fatalf("transcript len = %d, want 3 (greeting + turns)", len(transcript))
	}
}

func TestSendMessageValidation(t *testing.T) {
	svc := NewChatService(logger.Nop(), &cannedRecommender{})
	id, _ := svc.NewSession()

	_, err := svc.SendMessage(context.Background(), id, "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("empty text error = %v, want ValidationError", err)
	}
}

func TestUnknownSession(t *testing.T) {
	svc := NewChatService(logger.Nop(), &cannedRecommender{})

	if _, err := svc.Transcript("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Transcript error = %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), "nope", "hello"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("SendMessage error = %v", err)
	}
}
