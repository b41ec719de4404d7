package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasin/kelasin-api/internal/service"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/response"
)

// EnrollmentHandler exposes the authenticated user's course ownership.
type EnrollmentHandler struct {
	service *service.EnrollmentService
}

// NewEnrollmentHandler constructs an enrollment handler.
func NewEnrollmentHandler(svc *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc}
}

// Enroll godoc
// @Summary Enroll the authenticated user into a course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body service.EnrollRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /enrollment [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Unauthorized"))
		return
	}
	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	enrollment, err := h.service.Enroll(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment, "Enrolled successfully.")
}

// ListMine godoc
// @Summary List the authenticated user's enrollments
// @Tags Enrollments
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /enrollment [get]
func (h *EnrollmentHandler) ListMine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Unauthorized"))
		return
	}
	enrollments, err := h.service.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(enrollments) == 0 {
		response.Message(c, "No enrollments found.")
		return
	}
	response.OK(c, enrollments)
}

// Delete godoc
// @Summary Remove an enrollment
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /enrollment/{id} [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id}, "Enrollment deleted successfully.")
}

// ExportByCourse godoc
// @Summary Export a course's enrollments as CSV
// @Tags Enrollments
// @Produce text/csv
// @Param id path int true "Course ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /course/{id}/enrollment/export [get]
func (h *EnrollmentHandler) ExportByCourse(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	rendered, err := h.service.ExportByCourse(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("course-%d-enrollments.csv", id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", rendered)
}
