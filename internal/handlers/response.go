package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/services"
)

// RespondError writes the flat error envelope every endpoint uses.
func RespondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, gin.H{"error": msg})
}

// RespondServiceError maps a service failure: validation errors are the
// client's fault (400), everything else is a gateway failure (500) carrying
// the stringified cause.
func RespondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondError(c, http.StatusInternalServerError, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
