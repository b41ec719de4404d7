package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasin/kelasin-api/internal/service"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/response"
)

// ReviewHandler exposes course reviews and pre-test questions.
type ReviewHandler struct {
	service *service.ReviewService
}

// NewReviewHandler constructs a review handler.
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// Create godoc
// @Summary Review a course
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.CreateReviewRequest true "Review payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /course/{id}/review [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Unauthorized"))
		return
	}
	courseID, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	review, err := h.service.Create(c.Request.Context(), courseID, claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, review, "Review created successfully.")
}

// ListByCourse godoc
// @Summary List a course's reviews
// @Tags Reviews
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /course/{id}/review [get]
func (h *ReviewHandler) ListByCourse(c *gin.Context) {
	courseID, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	reviews, err := h.service.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(reviews) == 0 {
		response.Message(c, "No reviews found.")
		return
	}
	response.OK(c, reviews)
}

// Delete godoc
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /review/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id}, "Review deleted successfully.")
}

// CreatePreTest godoc
// @Summary Attach a pre-test question to a course
// @Tags PreTests
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.CreatePreTestRequest true "Pre-test payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /course/{id}/pretest [post]
func (h *ReviewHandler) CreatePreTest(c *gin.Context) {
	courseID, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.CreatePreTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	preTest, err := h.service.CreatePreTest(c.Request.Context(), courseID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, preTest, "Pretest created successfully.")
}

// ListPreTests godoc
// @Summary List a course's pre-test questions
// @Tags PreTests
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /course/{id}/pretest [get]
func (h *ReviewHandler) ListPreTests(c *gin.Context) {
	courseID, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	preTests, err := h.service.ListPreTests(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(preTests) == 0 {
		response.Message(c, "No pretests found.")
		return
	}
	response.OK(c, preTests)
}

// DeletePreTest godoc
// @Summary Delete a pre-test question
// @Tags PreTests
// @Produce json
// @Param id path int true "Pre-test ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /pretest/{id} [delete]
func (h *ReviewHandler) DeletePreTest(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.DeletePreTest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id}, "Pretest deleted successfully.")
}
