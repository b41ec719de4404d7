package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kelasin/kelasin-api/internal/models"
)

// ReviewRepository manages persistence for course reviews and pre-tests.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review and fills the generated ID.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	const query = `INSERT INTO reviews (course_id, user_id, rating, comment, review_date) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	row := r.db.QueryRowxContext(ctx, query, review.CourseID, review.UserID, review.Rating, review.Comment, review.ReviewDate)
	if err := row.Scan(&review.ID); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// ListByCourse returns the reviews of a course ordered by primary key.
func (r *ReviewRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.SelectContext(ctx, &reviews, `SELECT id, course_id, user_id, rating, comment, review_date FROM reviews WHERE course_id = $1 ORDER BY id ASC`, courseID); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Delete removes a review and reports how many rows matched.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete review: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete review rows: %w", err)
	}
	return affected, nil
}

// CreatePreTest inserts a new pre-test question and fills the generated ID.
func (r *ReviewRepository) CreatePreTest(ctx context.Context, preTest *models.PreTest) error {
	row := r.db.QueryRowxContext(ctx, `INSERT INTO pretests (course_id, question) VALUES ($1, $2) RETURNING id`, preTest.CourseID, preTest.Question)
	if err := row.Scan(&preTest.ID); err != nil {
		return fmt.Errorf("create pretest: %w", err)
	}
	return nil
}

// ListPreTests returns the pre-test questions of a course.
func (r *ReviewRepository) ListPreTests(ctx context.Context, courseID int64) ([]models.PreTest, error) {
	var preTests []models.PreTest
	if err := r.db.SelectContext(ctx, &preTests, `SELECT id, course_id, question FROM pretests WHERE course_id = $1 ORDER BY id ASC`, courseID); err != nil {
		return nil, fmt.Errorf("list pretests: %w", err)
	}
	return preTests, nil
}

// DeletePreTest removes a pre-test question and reports how many rows matched.
func (r *ReviewRepository) DeletePreTest(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pretests WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete pretest: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete pretest rows: %w", err)
	}
	return affected, nil
}
