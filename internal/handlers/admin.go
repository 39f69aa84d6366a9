package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/catalog"
	"github.com/saladbowl/saladbowl-backend/internal/services"
)

// AdminModuleHandler is the content-management surface: create drafts, edit,
// toggle flags, delete. Routes are gated at the admin role.
type AdminModuleHandler struct {
	store         catalog.Store
	moduleService services.ModuleService
}

func NewAdminModuleHandler(store catalog.Store, moduleService services.ModuleService) *AdminModuleHandler {
	return &AdminModuleHandler{store: store, moduleService: moduleService}
}

// List returns every module, drafts included.
func (ah *AdminModuleHandler) List(c *gin.Context) {
	RespondOK(c, gin.H{"modules": ah.store.Modules()})
}

func (ah *AdminModuleHandler) Create(c *gin.Context) {
	c.JSON(http.StatusCreated, ah.moduleService.CreateDraft())
}

func (ah *AdminModuleHandler) Update(c *gin.Context) {
	var patch services.ModulePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	m, err := ah.moduleService.Update(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, services.ErrModuleNotFound) {
			RespondError(c, http.StatusNotFound, err)
			return
		}
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, m)
}

func (ah *AdminModuleHandler) Delete(c *gin.Context) {
	if err := ah.moduleService.Delete(c.Param("id")); err != nil {
		RespondError(c, http.StatusNotFound, err)
		return
	}
	RespondOK(c, gin.H{"ok": true})
}
