package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kelasin/kelasin-api/internal/models"
)

// ModuleRepository manages persistence for course modules and their
// materials.
type ModuleRepository struct {
	db *sqlx.DB
}

// NewModuleRepository constructs a ModuleRepository.
func NewModuleRepository(db *sqlx.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// ListByCourse returns the modules of a course ordered by primary key.
func (r *ModuleRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseModule, error) {
	var modules []models.CourseModule
	if err := r.db.SelectContext(ctx, &modules, `SELECT id, course_id, title FROM course_modules WHERE course_id = $1 ORDER BY id ASC`, courseID); err != nil {
		return nil, fmt.Errorf("list modules by course: %w", err)
	}
	return modules, nil
}

// FindByID fetches a module by primary key.
func (r *ModuleRepository) FindByID(ctx context.Context, id int64) (*models.CourseModule, error) {
	var module models.CourseModule
	if err := r.db.GetContext(ctx, &module, `SELECT id, course_id, title FROM course_modules WHERE id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find module by id: %w", err)
	}
	return &module, nil
}

// Create inserts a new module and fills the generated ID.
func (r *ModuleRepository) Create(ctx context.Context, module *models.CourseModule) error {
	row := r.db.QueryRowxContext(ctx, `INSERT INTO course_modules (course_id, title) VALUES ($1, $2) RETURNING id`, module.CourseID, module.Title)
	if err := row.Scan(&module.ID); err != nil {
		return fmt.Errorf("create module: %w", err)
	}
	return nil
}

// Update retitles a module and reports how many rows matched.
func (r *ModuleRepository) Update(ctx context.Context, id int64, title string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE course_modules SET title = $2 WHERE id = $1`, id, title)
	if err != nil {
		return 0, fmt.Errorf("update module: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update module rows: %w", err)
	}
	return affected, nil
}

// Delete removes a module and reports how many rows matched.
func (r *ModuleRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM course_modules WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete module: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete module rows: %w", err)
	}
	return affected, nil
}

// ListMaterials returns the materials of a module ordered by primary key.
func (r *ModuleRepository) ListMaterials(ctx context.Context, moduleID int64) ([]models.Material, error) {
	var materials []models.Material
	if err := r.db.SelectContext(ctx, &materials, `SELECT id, module_id, kind, link FROM materials WHERE module_id = $1 ORDER BY id ASC`, moduleID); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// CreateMaterial inserts a new material and fills the generated ID.
func (r *ModuleRepository) CreateMaterial(ctx context.Context, material *models.Material) error {
	row := r.db.QueryRowxContext(ctx, `INSERT INTO materials (module_id, kind, link) VALUES ($1, $2, $3) RETURNING id`, material.ModuleID, material.Kind, material.Link)
	if err := row.Scan(&material.ID); err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// DeleteMaterial removes a material and reports how many rows matched.
func (r *ModuleRepository) DeleteMaterial(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete material: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete material rows: %w", err)
	}
	return affected, nil
}
