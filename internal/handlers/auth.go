package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/middleware"
	"github.com/saladbowl/saladbowl-backend/internal/services"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type selectRoleRequest struct {
	Role types.Role `json:"role"`
}

// SelectRole swaps the caller's role. Switching role does not navigate;
// the token only changes what the gated surfaces return.
func (ah *AuthHandler) SelectRole(c *gin.Context) {
	var req selectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	token, err := ah.authService.IssueRoleToken(req.Role)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"token": token, "role": req.Role})
}

func (ah *AuthHandler) CurrentRole(c *gin.Context) {
	RespondOK(c, gin.H{"role": middleware.RoleFrom(c)})
}
