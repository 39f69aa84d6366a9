package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/repos"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

const recommendationSystemPrompt = `You are a warm, experienced SEL educator embedded in a school wellness platform called Salad Bowl. You speak conversationally like a supportive colleague. Based on what the teacher describes, recommend 1-3 modules. Return ONLY valid JSON: {"message":"your conversational response explaining why these fit","recommendations":[{"id":"moduleId","reason":"one-line reason"}]}. Keep your message warm, brief (2-3 sentences), and actionable. No markdown.`

// FallbackMessage is the single fixed reply used for every recommendation
// failure, network or parse alike. Failures are never distinguished to the
// user.
const FallbackMessage = "I'm having trouble connecting right now. In the meantime, try browsing the library - you might find something that fits! You can filter by energy level or duration."

type RecommendationService interface {
	// Recommend turns a teacher's free-text classroom description into an
	// assistant reply carrying 0-3 resolved modules. It never returns an
	// error: failures collapse into the fallback reply.
	Recommend(ctx context.Context, utterance string) types.ChatMessage
}

type recommendationReply struct {
	Message         string `json:"message"`
	Recommendations []struct {
		ID     string `json:"id"`
		Reason string `json:"reason"`
	} `json:"recommendations"`
}

type recommendationService struct {
	log     *logger.Logger
	store   catalog.Store
	client  AnthropicClient
	callLog repos.AICallLogRepo
}

// NewRecommendationService wires the protocol client. callLog may be nil when
// the database is unavailable; call logging is best effort either way.
func NewRecommendationService(log *logger.Logger, store catalog.Store, client AnthropicClient, callLog repos.AICallLogRepo) RecommendationService {
	return &recommendationService{
		log:     log.With("service", "RecommendationService"),
		store:   store,
		client:  client,
		callLog: callLog,
	}
}

func (rs *recommendationService) Recommend(ctx context.Context, utterance string) types.ChatMessage {
	projection := publishedProjection(rs.store)
	userTurn, err := buildUserTurn(utterance, projection)
	if err != nil {
		rs.log.Warn("could not build prompt", "error", err)
		return fallbackReply()
	}

	started := time.Now()
	raw, callErr := rs.client.Complete(ctx, recommendationSystemPrompt, userTurn)
	latency := time.Since(started)

	reply, parseErr := parseReply(raw)
	status := "ok"
	if callErr != nil {
		status = "request_failed"
	} else if parseErr != nil {
		status = "parse_failed"
	}
	rs.recordCall(ctx, userTurn, raw, status, latency)

	if callErr != nil || parseErr != nil {
		rs.log.Warn("recommendation round trip failed", "status", status, "error", firstErr(callErr, parseErr))
		return fallbackReply()
	}

	return types.ChatMessage{
		Role:    types.ChatRoleAssistant,
		Text:    reply.Message,
		Modules: rs.resolve(reply),
	}
}

func publishedProjection(store catalog.Store) []types.ModuleProjection {
	published := catalog.Select(store.Modules(), catalog.Filter{})
	out := make([]types.ModuleProjection, 0, len(published))
	for i := range published {
		out = append(out, published[i].Projection())
	}
	return out
}

func buildUserTurn(utterance string, projection []types.ModuleProjection) (string, error) {
	encoded, err := json.Marshal(projection)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Teacher says: %q\n\nAvailable modules:\n%s", utterance, encoded), nil
}

// parseReply strips code-fence markers and parses the constrained JSON shape.
func parseReply(raw string) (recommendationReply, error) {
	var reply recommendationReply
	cleaned := strings.TrimSpace(stripCodeFences(raw))
	if cleaned == "" {
		return reply, fmt.Errorf("empty reply")
	}
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return reply, fmt.Errorf("parse reply: %w", err)
	}
	return reply, nil
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	return strings.ReplaceAll(s, "```", "")
}

// resolve maps recommendation ids onto catalog modules, silently dropping ids
// that no longer exist or belong to unpublished modules.
func (rs *recommendationService) resolve(reply recommendationReply) []types.Module {
	mods := []types.Module{}
	for _, rec := range reply.Recommendations {
		m, ok := rs.store.Get(rec.ID)
		if !ok || !m.IsPublished {
			continue
		}
		mods = append(mods, m)
	}
	return mods
}

func (rs *recommendationService) recordCall(ctx context.Context, request, response, status string, latency time.Duration) {
	if rs.callLog == nil {
		return
	}
	reqJSON, _ := json.Marshal(map[string]string{"user": request})
	resJSON, _ := json.Marshal(map[string]string{"text": response})
	row := &types.AICallLog{
		ID:        uuid.New(),
		Model:     rs.client.Model(),
		Request:   datatypes.JSON(reqJSON),
		Response:  datatypes.JSON(resJSON),
		Status:    status,
		LatencyMS: latency.Milliseconds(),
	}
	if _, err := rs.callLog.Create(ctx, nil, []*types.AICallLog{row}); err != nil {
		rs.log.Debug("call log insert failed", "error", err)
	}
}

func fallbackReply() types.ChatMessage {
	return types.ChatMessage{Role: types.ChatRoleAssistant, Text: FallbackMessage}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
