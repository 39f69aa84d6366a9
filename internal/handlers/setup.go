package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/db"
	"github.com/saladbowl/saladbowl-backend/internal/logger"
)

// SetupHandler provisions the backing tables. Provisioning runs the same
// idempotent migration on every call.
type SetupHandler struct {
	log       *logger.Logger
	pg        *db.PostgresService
	connError error
}

// NewSetupHandler takes the database service and the error from opening it,
// if any; a connection-configuration error is replayed to callers with the
// list of environment variables that were checked.
func NewSetupHandler(log *logger.Logger, pg *db.PostgresService, connError error) *SetupHandler {
	return &SetupHandler{log: log.With("handler", "SetupHandler"), pg: pg, connError: connError}
}

func (sh *SetupHandler) Setup(c *gin.Context) {
	if sh.pg == nil {
		var cfgErr *db.ConfigError
		if errors.As(sh.connError, &cfgErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "No database URL found",
				"checked": cfgErr.Checked,
			})
			return
		}
		RespondError(c, http.StatusInternalServerError, sh.connError)
		return
	}
	if err := sh.pg.AutoMigrateAll(); err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, gin.H{"ok": true, "message": "Tables created successfully"})
}
