package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasin/kelasin-api/internal/service"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/response"
)

// ModuleHandler exposes course modules and their materials.
type ModuleHandler struct {
	service *service.ModuleService
}

// NewModuleHandler constructs a module handler.
func NewModuleHandler(svc *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{service: svc}
}

// ListByCourse godoc
// @Summary List a course's modules
// @Tags Modules
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /course/{id}/module [get]
func (h *ModuleHandler) ListByCourse(c *gin.Context) {
	courseID, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	modules, err := h.service.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(modules) == 0 {
		response.Message(c, "No modules found.")
		return
	}
	response.OK(c, modules)
}

// Create godoc
// @Summary Add a module to a course
// @Tags Modules
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.ModuleRequest true "Module payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /course/{id}/module [post]
func (h *ModuleHandler) Create(c *gin.Context) {
	courseID, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	module, err := h.service.Create(c.Request.Context(), courseID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, module, "Module created successfully.")
}

// Update godoc
// @Summary Retitle a module
// @Tags Modules
// @Accept json
// @Produce json
// @Param id path int true "Module ID"
// @Param payload body service.ModuleRequest true "Module payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /module/{id} [put]
func (h *ModuleHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	module, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, module)
}

// Delete godoc
// @Summary Delete a module
// @Tags Modules
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /module/{id} [delete]
func (h *ModuleHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id}, "Module deleted successfully.")
}

// ListMaterials godoc
// @Summary List a module's materials
// @Tags Materials
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} response.Envelope
// @Router /module/{id}/material [get]
func (h *ModuleHandler) ListMaterials(c *gin.Context) {
	moduleID, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	materials, err := h.service.ListMaterials(c.Request.Context(), moduleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(materials) == 0 {
		response.Message(c, "No materials found.")
		return
	}
	response.OK(c, materials)
}

// CreateMaterial godoc
// @Summary Attach a material to a module
// @Tags Materials
// @Accept json
// @Produce json
// @Param id path int true "Module ID"
// @Param payload body service.MaterialRequest true "Material payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /module/{id}/material [post]
func (h *ModuleHandler) CreateMaterial(c *gin.Context) {
	moduleID, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	material, err := h.service.CreateMaterial(c.Request.Context(), moduleID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, material, "Material created successfully.")
}

// DeleteMaterial godoc
// @Summary Delete a material
// @Tags Materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /material/{id} [delete]
func (h *ModuleHandler) DeleteMaterial(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.DeleteMaterial(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id}, "Material deleted successfully.")
}
