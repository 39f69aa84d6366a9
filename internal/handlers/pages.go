package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/middleware"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

// Pages the URL fragment can select directly. The module detail page is only
// reachable through navigation state, never a fragment, so it is absent here.
var fragmentPages = map[string]bool{
	"home":    true,
	"ask":     true,
	"plans":   true,
	"connect": true,
	"teacher": true,
	"admin":   true,
}

// pageRoles maps gated pages to the role they require.
var pageRoles = map[string]types.Role{
	"teacher": types.RoleTeacher,
	"admin":   types.RoleAdmin,
}

// ResolvePage resolves a URL fragment to a page name, defaulting unknown
// fragments to home.
func ResolvePage(fragment string) string {
	if fragmentPages[fragment] {
		return fragment
	}
	return "home"
}

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Resolve reports which page a fragment selects and whether the caller's role
// may see it. Gating here mirrors the dashboard routes: the page resolves
// either way, but gated pages flag accessRequired for insufficient roles.
func (ph *PageHandler) Resolve(c *gin.Context) {
	page := ResolvePage(c.Param("fragment"))
	role := middleware.RoleFrom(c)

	payload := gin.H{"page": page, "role": role}
	if required, gated := pageRoles[page]; gated && !role.CanAccess(required) {
		payload["accessRequired"] = true
		payload["message"] = "Switch to Teacher or Admin role to view this page."
	}
	RespondOK(c, payload)
}
