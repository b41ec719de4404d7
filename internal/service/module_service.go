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

type moduleRepository interface {
	ListByCourse(ctx context.Context, courseID int64) ([]models.CourseModule, error)
	FindByID(ctx context.Context, id int64) (*models.CourseModule, error)
	Create(ctx context.Context, module *models.CourseModule) error
	Update(ctx context.Context, id int64, title string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListMaterials(ctx context.Context, moduleID int64) ([]models.Material, error)
	CreateMaterial(ctx context.Context, material *models.Material) error
	DeleteMaterial(ctx context.Context, id int64) (int64, error)
}

// ModuleRequest is the payload for creating or retitling a module.
type ModuleRequest struct {
	Title string `json:"title" validate:"required"`
}

// MaterialRequest is the payload for attaching a material to a module.
type MaterialRequest struct {
	Kind models.MaterialKind `json:"kind" validate:"required"`
	Link *string             `json:"link"`
}

// ModuleService handles course modules and their learning materials.
type ModuleService struct {
	repo      moduleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewModuleService constructs the module service.
func NewModuleService(repo moduleRepository, validate *validator.Validate, logger *zap.Logger) *ModuleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModuleService{repo: repo, validator: validate, logger: logger}
}

// ListByCourse returns the modules of a course.
func (s *ModuleService) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseModule, error) {
	modules, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list modules")
	}
	return modules, nil
}

// Create adds a module to a course.
func (s *ModuleService) Create(ctx context.Context, courseID int64, req ModuleRequest) (*models.CourseModule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid module payload")
	}
	module := &models.CourseModule{CourseID: courseID, Title: req.Title}
	if err := s.repo.Create(ctx, module); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create module")
	}
	return module, nil
}

// Update retitles a module.
func (s *ModuleService) Update(ctx context.Context, id int64, req ModuleRequest) (*models.CourseModule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid module payload")
	}
	affected, err := s.repo.Update(ctx, id, req.Title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update module")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Module not found")
	}
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload module")
	}
	return module, nil
}

// Delete removes a module by primary key.
func (s *ModuleService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete module")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Module not found")
	}
	return nil
}

// ListMaterials returns the materials of a module.
func (s *ModuleService) ListMaterials(ctx context.Context, moduleID int64) ([]models.Material, error) {
	materials, err := s.repo.ListMaterials(ctx, moduleID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list materials")
	}
	return materials, nil
}

// CreateMaterial attaches a material to a module after checking the module
// exists and the kind belongs to the enumerated set.
func (s *ModuleService) CreateMaterial(ctx context.Context, moduleID int64, req MaterialRequest) (*models.Material, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}
	if !req.Kind.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "kind must be Summary, Video or Quiz")
	}
	if _, err := s.repo.FindByID(ctx, moduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Module not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load module")
	}
	material := &models.Material{ModuleID: moduleID, Kind: req.Kind, Link: req.Link}
	if err := s.repo.CreateMaterial(ctx, material); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create material")
	}
	return material, nil
}

// DeleteMaterial removes a material by primary key.
func (s *ModuleService) DeleteMaterial(ctx context.Context, id int64) error {
	affected, err := s.repo.DeleteMaterial(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete material")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Material not found")
	}
	return nil
}
