package service

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kelasin/kelasin-api/internal/models"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id int64, update models.CourseUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type imageStore interface {
	Store(upload FileUpload) (*UploadedFile, error)
}

// CreateCourseRequest holds the multipart form fields for creating a course.
type CreateCourseRequest struct {
	Name        string  `form:"name" validate:"required"`
	Description *string `form:"description"`
	Price       float64 `form:"price" validate:"gte=0"`
	CategoryID  *int64  `form:"category_id"`
	TutorID     *int64  `form:"tutor_id"`
}

// UpdateCourseRequest holds a partial update; absent fields stay unchanged.
type UpdateCourseRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *int64   `json:"category_id"`
	TutorID     *int64   `json:"tutor_id"`
}

// CourseService handles course listing use-cases.
type CourseService struct {
	repo      courseRepository
	images    imageStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, images imageStore, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, images: images, validator: validate, logger: logger}
}

// List returns courses matching the filter.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Get returns a course by primary key.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	return course, nil
}

// Create persists a new course. When an image accompanies the request it is
// stored first and its URL recorded on the course. Category and tutor
// references are not pre-checked; the database constraints decide.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest, image *FileUpload) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		Price:       roundPrice(req.Price),
		CategoryID:  req.CategoryID,
		TutorID:     req.TutorID,
	}

	if image != nil {
		stored, err := s.images.Store(*image)
		if err != nil {
			return nil, err
		}
		course.ImageURL = &stored.URL
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return course, nil
}

// Update applies a partial update and returns the refreshed course.
func (s *CourseService) Update(ctx context.Context, id int64, req UpdateCourseRequest) (*models.Course, error) {
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, "price must not be negative")
		}
		rounded := roundPrice(*req.Price)
		req.Price = &rounded
	}

	affected, err := s.repo.Update(ctx, id, models.CourseUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		TutorID:     req.TutorID,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Class not found")
	}

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload course")
	}
	return course, nil
}

// Delete removes a course by primary key.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Class not found")
	}
	return nil
}

// roundPrice normalises prices to two decimal places, matching the column
// precision.
func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
