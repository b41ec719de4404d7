package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kelasin/kelasin-api/internal/models"
)

// TutorRepository manages persistence for tutors.
type TutorRepository struct {
	db *sqlx.DB
}

// NewTutorRepository constructs a TutorRepository.
func NewTutorRepository(db *sqlx.DB) *TutorRepository {
	return &TutorRepository{db: db}
}

// List returns all tutors ordered by primary key.
func (r *TutorRepository) List(ctx context.Context) ([]models.Tutor, error) {
	var tutors []models.Tutor
	if err := r.db.SelectContext(ctx, &tutors, `SELECT id, name, expertise FROM tutors ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	return tutors, nil
}

// FindByID fetches a tutor by primary key.
func (r *TutorRepository) FindByID(ctx context.Context, id int64) (*models.Tutor, error) {
	var tutor models.Tutor
	if err := r.db.GetContext(ctx, &tutor, `SELECT id, name, expertise FROM tutors WHERE id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find tutor by id: %w", err)
	}
	return &tutor, nil
}

// Create inserts a new tutor and fills the generated ID.
func (r *TutorRepository) Create(ctx context.Context, tutor *models.Tutor) error {
	row := r.db.QueryRowxContext(ctx, `INSERT INTO tutors (name, expertise) VALUES ($1, $2) RETURNING id`, tutor.Name, tutor.Expertise)
	if err := row.Scan(&tutor.ID); err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}
	return nil
}

// Update replaces tutor fields and reports how many rows matched.
func (r *TutorRepository) Update(ctx context.Context, tutor *models.Tutor) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE tutors SET name = $2, expertise = $3 WHERE id = $1`, tutor.ID, tutor.Name, tutor.Expertise)
	if err != nil {
		return 0, fmt.Errorf("update tutor: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update tutor rows: %w", err)
	}
	return affected, nil
}

// Delete removes a tutor and reports how many rows matched.
func (r *TutorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tutors WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete tutor: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete tutor rows: %w", err)
	}
	return affected, nil
}
