package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/services"
)

type TeamInterestHandler struct {
	teamService services.TeamInterestService
}

func NewTeamInterestHandler(teamService services.TeamInterestService) *TeamInterestHandler {
	return &TeamInterestHandler{teamService: teamService}
}

// Submit inserts a lead directly through the gateway.
func (th *TeamInterestHandler) Submit(c *gin.Context) {
	var req services.TeamInterestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := th.teamService.Submit(c.Request.Context(), req); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (th *TeamInterestHandler) List(c *gin.Context) {
	rows, err := th.teamService.List(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, rows)
}

// Connect is the public lead-capture form: optimistic local push, then a
// fire-and-forget gateway forward. Gateway failures never fail this call.
func (th *TeamInterestHandler) Connect(c *gin.Context) {
	var req services.TeamInterestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	record, err := th.teamService.SubmitLocal(req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "record": record})
}
