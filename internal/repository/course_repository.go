package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/kelasin/kelasin-api/internal/models"
)

// CourseRepository manages persistence for course listings.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses matching the provided filters. Category and name
// search combine with AND; sorting defaults to ascending primary key.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	base := "FROM courses WHERE 1=1"
	var args []interface{}

	if filter.CategoryID != nil {
		base += fmt.Sprintf(" AND category_id = $%d", len(args)+1)
		args = append(args, *filter.CategoryID)
	}
	if filter.Search != "" {
		base += fmt.Sprintf(" AND LOWER(name) LIKE $%d", len(args)+1)
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	allowedSorts := map[string]string{
		"id":         "id",
		"name":       "name",
		"price":      "price",
		"created_at": "created_at",
	}
	column, ok := allowedSorts[filter.SortBy]
	if !ok {
		column = "id"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	query := fmt.Sprintf("SELECT id, name, description, price, image_url, category_id, tutor_id, created_at %s ORDER BY %s %s", base, column, order)

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID fetches a course by primary key.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT id, name, description, price, image_url, category_id, tutor_id, created_at FROM courses WHERE id = $1 LIMIT 1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course by id: %w", err)
	}
	return &course, nil
}

// Create inserts a new course and fills the generated ID. Referential
// integrity of category_id/tutor_id is left to the database constraints.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO courses (name, description, price, image_url, category_id, tutor_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		course.Name, course.Description, course.Price, course.ImageURL, course.CategoryID, course.TutorID)
	if err := row.Scan(&course.ID, &course.CreatedAt); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update applies a partial field replacement and reports how many rows
// matched. Zero rows means the course does not exist.
func (r *CourseRepository) Update(ctx context.Context, id int64, update models.CourseUpdate) (int64, error) {
	var sets []string
	var args []interface{}

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Price != nil {
		add("price", *update.Price)
	}
	if update.ImageURL != nil {
		add("image_url", *update.ImageURL)
	}
	if update.CategoryID != nil {
		add("category_id", *update.CategoryID)
	}
	if update.TutorID != nil {
		add("tutor_id", *update.TutorID)
	}

	if len(sets) == 0 {
		// Nothing to change; still report whether the row exists.
		var exists int
		if err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM courses WHERE id = $1 LIMIT 1", id); err != nil {
			if err == sql.ErrNoRows {
				return 0, nil
			}
			return 0, fmt.Errorf("check course: %w", err)
		}
		return 1, nil
	}

	query := fmt.Sprintf("UPDATE courses SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)+1)
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update course: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update course rows: %w", err)
	}
	return affected, nil
}

// Delete removes a course and reports how many rows matched.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete course: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete course rows: %w", err)
	}
	return affected, nil
}
