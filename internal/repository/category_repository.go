package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kelasin/kelasin-api/internal/models"
)

// CategoryRepository manages persistence for course categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository constructs a CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by primary key.
func (r *CategoryRepository) List(ctx context.Context) ([]models.CourseCategory, error) {
	var categories []models.CourseCategory
	if err := r.db.SelectContext(ctx, &categories, `SELECT id, name FROM course_categories ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// FindByID fetches a category by primary key.
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*models.CourseCategory, error) {
	var category models.CourseCategory
	if err := r.db.GetContext(ctx, &category, `SELECT id, name FROM course_categories WHERE id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return &category, nil
}

// Create inserts a new category and fills the generated ID.
func (r *CategoryRepository) Create(ctx context.Context, category *models.CourseCategory) error {
	row := r.db.QueryRowxContext(ctx, `INSERT INTO course_categories (name) VALUES ($1) RETURNING id`, category.Name)
	if err := row.Scan(&category.ID); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Update renames a category and reports how many rows matched.
func (r *CategoryRepository) Update(ctx context.Context, id int64, name string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE course_categories SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return 0, fmt.Errorf("update category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update category rows: %w", err)
	}
	return affected, nil
}

// Delete removes a category and reports how many rows matched.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM course_categories WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete category rows: %w", err)
	}
	return affected, nil
}
