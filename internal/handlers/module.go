package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/services"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

type ModuleHandler struct {
	store           catalog.Store
	progressService services.ProgressService
	feedbackService services.FeedbackService
}

func NewModuleHandler(store catalog.Store, progressService services.ProgressService, feedbackService services.FeedbackService) *ModuleHandler {
	return &ModuleHandler{store: store, progressService: progressService, feedbackService: feedbackService}
}

type moduleGroup struct {
	Type    types.ContentType `json:"type"`
	Modules []types.Module    `json:"modules"`
}

// List returns the published catalog narrowed by the query filters, both flat
// and grouped by content type in display order.
func (mh *ModuleHandler) List(c *gin.Context) {
	filter := catalog.Filter{
		AgeLevel:    types.AgeLevel(c.Query("ageLevel")),
		ContentType: types.ContentType(c.Query("contentType")),
		Duration:    types.DurationBucket(c.Query("duration")),
	}
	selected := catalog.Select(mh.store.Modules(), filter)
	byType := catalog.GroupByType(selected)

	groups := []moduleGroup{}
	for _, t := range types.ContentTypes() {
		if mods, ok := byType[t]; ok {
			groups = append(groups, moduleGroup{Type: t, Modules: mods})
		}
	}
	RespondOK(c, gin.H{
		"modules":  selected,
		"groups":   groups,
		"journeys": mh.store.Journeys(),
	})
}

func (mh *ModuleHandler) Get(c *gin.Context) {
	id := c.Param("id")
	m, ok := mh.store.Get(id)
	if !ok {
		RespondError(c, http.StatusNotFound, fmt.Errorf("module %q not found", id))
		return
	}
	RespondOK(c, m)
}

type completeRequest struct {
	GroupName string `json:"groupName"`
}

func (mh *ModuleHandler) Complete(c *gin.Context) {
	var req completeRequest
	// body is optional; groupName defaults in the service
	_ = c.ShouldBindJSON(&req)

	record, err := mh.progressService.Complete(c.Param("id"), req.GroupName)
	if err != nil {
		RespondError(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

type reflectionRequest struct {
	Response       string  `json:"response"`
	EmotionalState *string `json:"emotionalState"`
}

// Reflection stores a reflection response as feedback: an optimistic local
// record forwarded to the gateway fire-and-forget.
func (mh *ModuleHandler) Reflection(c *gin.Context) {
	id := c.Param("id")
	m, ok := mh.store.Get(id)
	if !ok {
		RespondError(c, http.StatusNotFound, fmt.Errorf("module %q not found", id))
		return
	}

	var req reflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	message := req.Response
	if message != "" {
		message = fmt.Sprintf("[%s] %s", m.Title, message)
	}
	record, err := mh.feedbackService.SubmitLocal(message, req.EmotionalState)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "record": record})
}
