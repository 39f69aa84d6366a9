package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

// AuthService issues and verifies role tokens. Roles are self-selected (there
// are no accounts); the token just keeps the chosen role attached to
// subsequent requests. Absent or invalid tokens resolve to the public role.
type AuthService interface {
	IssueRoleToken(role types.Role) (string, error)
	ParseRole(token string) types.Role
}

type roleClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	log    *logger.Logger
	secret []byte
	ttl    time.Duration
}

func NewAuthService(log *logger.Logger, secret string, ttl time.Duration) AuthService {
	return &authService{
		log:    log.With("service", "AuthService"),
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (as *authService) IssueRoleToken(role types.Role) (string, error) {
	if !role.Valid() {
		return "", &ValidationError{Msg: fmt.Sprintf("invalid role %q", role)}
	}
	now := time.Now()
	claims := roleClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(as.secret)
}

func (as *authService) ParseRole(token string) types.Role {
	if token == "" {
		return types.RolePublic
	}
	var claims roleClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return as.secret, nil
	})
	if err != nil || !parsed.Valid {
		as.log.Debug("role token rejected", "error", err)
		return types.RolePublic
	}
	role := types.Role(claims.Role)
	if !role.Valid() {
		return types.RolePublic
	}
	return role
}
