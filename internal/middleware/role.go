package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/services"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

const roleContextKey = "saladbowl.role"

type RoleMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewRoleMiddleware(log *logger.Logger, authService services.AuthService) *RoleMiddleware {
	return &RoleMiddleware{log: log.With("middleware", "RoleMiddleware"), authService: authService}
}

// Resolve attaches the request's role to the context. No token, or a bad one,
// means public; the request always proceeds.
func (rm *RoleMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := types.RolePublic
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			role = rm.authService.ParseRole(strings.TrimPrefix(header, "Bearer "))
		}
		c.Set(roleContextKey, role)
		c.Next()
	}
}

// RoleFrom reads the resolved role off the context, defaulting to public.
func RoleFrom(c *gin.Context) types.Role {
	if v, ok := c.Get(roleContextKey); ok {
		if role, ok := v.(types.Role); ok {
			return role
		}
	}
	return types.RolePublic
}

// Require gates a route at the given role. Insufficient roles get the
// access-required placeholder payload, never the gated content.
func (rm *RoleMiddleware) Require(required types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleFrom(c)
		if !role.CanAccess(required) {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"accessRequired": true,
				"requiredRole":   required,
				"message":        "Switch to Teacher or Admin role to view this page.",
			})
			return
		}
		c.Next()
	}
}
