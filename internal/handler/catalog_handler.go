package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasin/kelasin-api/internal/service"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/response"
)

// CatalogHandler exposes category and tutor CRUD endpoints.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs a catalog handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ListCategories godoc
// @Summary List course categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /category [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(categories) == 0 {
		response.Message(c, "No categories found.")
		return
	}
	response.OK(c, categories)
}

// GetCategory godoc
// @Summary Get a category
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response.Envelope
// @Router /category/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, category)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.CategoryRequest true "Category payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /category [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, category, "Category created successfully.")
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param payload body service.CategoryRequest true "Category payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /category/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	category, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /category/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id}, "Category deleted successfully.")
}

// ListTutors godoc
// @Summary List tutors
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tutor [get]
func (h *CatalogHandler) ListTutors(c *gin.Context) {
	tutors, err := h.service.ListTutors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(tutors) == 0 {
		response.Message(c, "No tutors found.")
		return
	}
	response.OK(c, tutors)
}

// GetTutor godoc
// @Summary Get a tutor
// @Tags Catalog
// @Produce json
// @Param id path int true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Router /tutor/{id} [get]
func (h *CatalogHandler) GetTutor(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	tutor, err := h.service.GetTutor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tutor)
}

// CreateTutor godoc
// @Summary Create a tutor
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.TutorRequest true "Tutor payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /tutor [post]
func (h *CatalogHandler) CreateTutor(c *gin.Context) {
	var req service.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	tutor, err := h.service.CreateTutor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tutor, "Tutor created successfully.")
}

// UpdateTutor godoc
// @Summary Update a tutor
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Tutor ID"
// @Param payload body service.TutorRequest true "Tutor payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /tutor/{id} [put]
func (h *CatalogHandler) UpdateTutor(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	tutor, err := h.service.UpdateTutor(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tutor)
}

// DeleteTutor godoc
// @Summary Delete a tutor
// @Tags Catalog
// @Produce json
// @Param id path int true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /tutor/{id} [delete]
func (h *CatalogHandler) DeleteTutor(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.DeleteTutor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id}, "Tutor deleted successfully.")
}
