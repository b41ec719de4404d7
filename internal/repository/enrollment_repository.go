package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kelasin/kelasin-api/internal/models"
)

// EnrollmentRepository manages persistence for course ownership.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts a new enrollment and fills the generated ID.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	const query = `INSERT INTO enrollments (user_id, course_id, enrolled_at) VALUES ($1, $2, $3) RETURNING id`
	row := r.db.QueryRowxContext(ctx, query, enrollment.UserID, enrollment.CourseID, enrollment.EnrolledAt)
	if err := row.Scan(&enrollment.ID); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// ListByUser returns a user's enrollments joined with their courses.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]models.EnrollmentDetail, error) {
	const query = `SELECT e.id, e.user_id, e.course_id, e.enrolled_at,
		c.name AS course_name, c.price AS course_price,
		u.full_name AS user_full_name, u.email AS user_email
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1 ORDER BY e.id ASC`
	var enrollments []models.EnrollmentDetail
	if err := r.db.SelectContext(ctx, &enrollments, query, userID); err != nil {
		return nil, fmt.Errorf("list enrollments by user: %w", err)
	}
	return enrollments, nil
}

// ListByCourse returns all enrollments of a course joined with the buyers.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.EnrollmentDetail, error) {
	const query = `SELECT e.id, e.user_id, e.course_id, e.enrolled_at,
		c.name AS course_name, c.price AS course_price,
		u.full_name AS user_full_name, u.email AS user_email
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = e.user_id
		WHERE e.course_id = $1 ORDER BY e.id ASC`
	var enrollments []models.EnrollmentDetail
	if err := r.db.SelectContext(ctx, &enrollments, query, courseID); err != nil {
		return nil, fmt.Errorf("list enrollments by course: %w", err)
	}
	return enrollments, nil
}

// Delete removes an enrollment and reports how many rows matched.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete enrollment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete enrollment rows: %w", err)
	}
	return affected, nil
}
