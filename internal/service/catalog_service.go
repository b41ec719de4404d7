package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kelasin/kelasin-api/internal/models"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
)

type categoryRepository interface {
	List(ctx context.Context) ([]models.CourseCategory, error)
	FindByID(ctx context.Context, id int64) (*models.CourseCategory, error)
	Create(ctx context.Context, category *models.CourseCategory) error
	Update(ctx context.Context, id int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type tutorRepository interface {
	List(ctx context.Context) ([]models.Tutor, error)
	FindByID(ctx context.Context, id int64) (*models.Tutor, error)
	Create(ctx context.Context, tutor *models.Tutor) error
	Update(ctx context.Context, tutor *models.Tutor) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// CategoryRequest is the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// TutorRequest is the payload for creating or replacing a tutor.
type TutorRequest struct {
	Name      string `json:"name" validate:"required"`
	Expertise string `json:"expertise" validate:"required"`
}

// CatalogService handles categories and tutors, the reference data behind
// course listings.
type CatalogService struct {
	categories categoryRepository
	tutors     tutorRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(categories categoryRepository, tutors tutorRepository, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{categories: categories, tutors: tutors, validator: validate, logger: logger}
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.CourseCategory, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list categories")
	}
	return categories, nil
}

// GetCategory returns a category by primary key.
func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*models.CourseCategory, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Category not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load category")
	}
	return category, nil
}

// CreateCategory persists a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, req CategoryRequest) (*models.CourseCategory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid category payload")
	}
	category := &models.CourseCategory{Name: req.Name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create category")
	}
	return category, nil
}

// UpdateCategory renames a category.
func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*models.CourseCategory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid category payload")
	}
	affected, err := s.categories.Update(ctx, id, req.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update category")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Category not found")
	}
	return &models.CourseCategory{ID: id, Name: req.Name}, nil
}

// DeleteCategory removes a category by primary key.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	affected, err := s.categories.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete category")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Category not found")
	}
	return nil
}

// ListTutors returns all tutors.
func (s *CatalogService) ListTutors(ctx context.Context) ([]models.Tutor, error) {
	tutors, err := s.tutors.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tutors")
	}
	return tutors, nil
}

// GetTutor returns a tutor by primary key.
func (s *CatalogService) GetTutor(ctx context.Context, id int64) (*models.Tutor, error) {
	tutor, err := s.tutors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Tutor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tutor")
	}
	return tutor, nil
}

// CreateTutor persists a new tutor.
func (s *CatalogService) CreateTutor(ctx context.Context, req TutorRequest) (*models.Tutor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tutor payload")
	}
	tutor := &models.Tutor{Name: req.Name, Expertise: req.Expertise}
	if err := s.tutors.Create(ctx, tutor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create tutor")
	}
	return tutor, nil
}

// UpdateTutor replaces a tutor's fields.
func (s *CatalogService) UpdateTutor(ctx context.Context, id int64, req TutorRequest) (*models.Tutor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tutor payload")
	}
	tutor := &models.Tutor{ID: id, Name: req.Name, Expertise: req.Expertise}
	affected, err := s.tutors.Update(ctx, tutor)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update tutor")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Tutor not found")
	}
	return tutor, nil
}

// DeleteTutor removes a tutor by primary key.
func (s *CatalogService) DeleteTutor(ctx context.Context, id int64) error {
	affected, err := s.tutors.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete tutor")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Tutor not found")
	}
	return nil
}
