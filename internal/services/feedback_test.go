package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

func TestFeedbackSubmitValidation(t *testing.T) {
	svc := NewFeedbackService(logger.Nop(), nil)

	_, err := svc.Submit(context.Background(), "", nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("empty message error = %v, want ValidationError", err)
	}
	if verr.Msg != "Message is required" {
		t.Fatalf("msg = %q", verr.Msg)
	}
}

func TestFeedbackSubmitWithoutStore(t *testing.T) {
	svc := NewFeedbackService(logger.Nop(), nil)

	if _, err := svc.Submit(context.Background(), "loved it", nil); err == nil {
		t.Fatal("expected error with nil repo")
	}
	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected List error with nil repo")
	}
}

func TestFeedbackSubmitLocal(t *testing.T) {
	svc := NewFeedbackService(logger.Nop(), nil)

	state := "calm"
	record, err := svc.SubmitLocal("the class loved it", &state)
	if err != nil {
		t.Fatalf("SubmitLocal: %v", err)
	}
	if record.LocalID == "" || record.Status != types.SubmissionPending {
		t.Fatalf("record = %+v", record)
	}
	if record.EmotionalState == nil || *record.EmotionalState != "calm" {
		t.Fatalf("emotionalState = %v", record.EmotionalState)
	}

	// With no gateway the background forward settles the record as failed.
	waitForStatus(t, func() types.SubmissionStatus {
		for _, r := range svc.LocalRecords() {
			if r.LocalID == record.LocalID {
				return r.Status
			}
		}
		return ""
	}, types.SubmissionFailed)
}

func TestFeedbackSubmitLocalValidation(t *testing.T) {
	svc := NewFeedbackService(logger.Nop(), nil)

	_, err := svc.SubmitLocal("", nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if got := len(svc.LocalRecords()); got != 0 {
		t.Fatalf("rejected submission was recorded: %d records", got)
	}
}

func waitForStatus(t *testing.T, current func() types.SubmissionStatus, want types.SubmissionStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if current() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("status never reached %q (last %q)", want, current())
}
