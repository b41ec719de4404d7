package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kelasin/kelasin-api/internal/models"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/export"
)

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListByUser(ctx context.Context, userID int64) ([]models.EnrollmentDetail, error)
	ListByCourse(ctx context.Context, courseID int64) ([]models.EnrollmentDetail, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// EnrollRequest is the payload for enrolling the authenticated user.
type EnrollRequest struct {
	CourseID int64 `json:"course_id" validate:"required"`
}

// EnrollmentService handles course ownership ("kelas saya").
type EnrollmentService struct {
	repo      enrollmentRepository
	csv       csvRenderer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, csv csvRenderer, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, csv: csv, validator: validate, logger: logger}
}

// Enroll records course ownership for the given user. The course reference
// is left to the database constraints.
func (s *EnrollmentService) Enroll(ctx context.Context, userID int64, req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   req.CourseID,
		EnrolledAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create enrollment")
	}
	return enrollment, nil
}

// ListMine returns the authenticated user's enrollments.
func (s *EnrollmentService) ListMine(ctx context.Context, userID int64) ([]models.EnrollmentDetail, error) {
	enrollments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	return enrollments, nil
}

// Delete removes an enrollment by primary key.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete enrollment")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Enrollment not found")
	}
	return nil
}

// ExportByCourse renders a course's enrollments as CSV.
func (s *EnrollmentService) ExportByCourse(ctx context.Context, courseID int64) ([]byte, error) {
	enrollments, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}

	data := export.Dataset{
		Headers: []string{"Fullname", "Email", "Course", "Enrolled At"},
	}
	for _, e := range enrollments {
		data.Rows = append(data.Rows, map[string]string{
			"Fullname":    e.UserFullName,
			"Email":       e.UserEmail,
			"Course":      e.CourseName,
			"Enrolled At": e.EnrolledAt.Format(time.RFC3339),
		})
	}

	rendered, err := s.csv.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to export course %d enrollments", courseID))
	}
	return rendered, nil
}
