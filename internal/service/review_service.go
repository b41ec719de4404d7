package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kelasin/kelasin-api/internal/models"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
)

type reviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByCourse(ctx context.Context, courseID int64) ([]models.Review, error)
	Delete(ctx context.Context, id int64) (int64, error)
	CreatePreTest(ctx context.Context, preTest *models.PreTest) error
	ListPreTests(ctx context.Context, courseID int64) ([]models.PreTest, error)
	DeletePreTest(ctx context.Context, id int64) (int64, error)
}

// CreateReviewRequest is the payload for reviewing a course.
type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// CreatePreTestRequest is the payload for attaching a screening question.
type CreatePreTestRequest struct {
	Question string `json:"question" validate:"required"`
}

// ReviewService handles course reviews and their pre-test questions.
type ReviewService struct {
	repo      reviewRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReviewService constructs the review service.
func NewReviewService(repo reviewRepository, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{repo: repo, validator: validate, logger: logger}
}

// Create attaches a review to a course on behalf of the authenticated user.
func (s *ReviewService) Create(ctx context.Context, courseID, userID int64, req CreateReviewRequest) (*models.Review, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "rating must be between 1 and 5")
	}
	review := &models.Review{
		CourseID:   courseID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create review")
	}
	return review, nil
}

// ListByCourse returns the reviews left on a course.
func (s *ReviewService) ListByCourse(ctx context.Context, courseID int64) ([]models.Review, error) {
	reviews, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reviews")
	}
	return reviews, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete review")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Review not found")
	}
	return nil
}

// CreatePreTest attaches a screening question to a course.
func (s *ReviewService) CreatePreTest(ctx context.Context, courseID int64, req CreatePreTestRequest) (*models.PreTest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "question is required")
	}
	preTest := &models.PreTest{
		CourseID: courseID,
		Question: req.Question,
	}
	if err := s.repo.CreatePreTest(ctx, preTest); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create pretest")
	}
	return preTest, nil
}

// ListPreTests returns the screening questions of a course.
func (s *ReviewService) ListPreTests(ctx context.Context, courseID int64) ([]models.PreTest, error) {
	preTests, err := s.repo.ListPreTests(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pretests")
	}
	return preTests, nil
}

// DeletePreTest removes a screening question.
func (s *ReviewService) DeletePreTest(ctx context.Context, id int64) error {
	affected, err := s.repo.DeletePreTest(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete pretest")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Pretest not found")
	}
	return nil
}
