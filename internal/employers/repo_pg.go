package employers

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new employer request.
func (r *PGRepo) Create(ctx context.Context, req Request) error {
	const query = `
INSERT INTO employer_requests (
	id, phone, service, locality, gender_preference, hire_type, skill_level,
	max_salary, min_experience_years, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		req.ID,
		req.Phone,
		req.Service,
		req.Locality,
		nullIfEmpty(req.GenderPreference),
		nullIfEmpty(req.HireType),
		nullIfEmpty(req.SkillLevel),
		req.MaxSalary,
		req.MinExperienceYears,
		req.CreatedAt,
	)
	return err
}

// GetByID returns an employer request by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Request, error) {
	const query = `
SELECT id, phone, service, locality, gender_preference, hire_type, skill_level,
       max_salary, min_experience_years, created_at
FROM employer_requests
WHERE id = $1
LIMIT 1`
	var req Request
	var genderPreference sql.NullString
	var hireType sql.NullString
	var skillLevel sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&req.ID,
		&req.Phone,
		&req.Service,
		&req.Locality,
		&genderPreference,
		&hireType,
		&skillLevel,
		&req.MaxSalary,
		&req.MinExperienceYears,
		&req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Request{}, ErrNotFound
		}
		return Request{}, err
	}
	if genderPreference.Valid {
		req.GenderPreference = genderPreference.String
	}
	if hireType.Valid {
		req.HireType = hireType.String
	}
	if skillLevel.Valid {
		req.SkillLevel = skillLevel.String
	}
	return req, nil
}

// List returns employer requests ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit int) ([]Request, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	const query = `
SELECT id, phone, service, locality, gender_preference, hire_type, skill_level,
       max_salary, min_experience_years, created_at
FROM employer_requests
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		var genderPreference sql.NullString
		var hireType sql.NullString
		var skillLevel sql.NullString
		if err := rows.Scan(
			&req.ID,
			&req.Phone,
			&req.Service,
			&req.Locality,
			&genderPreference,
			&hireType,
			&skillLevel,
			&req.MaxSalary,
			&req.MinExperienceYears,
			&req.CreatedAt,
		); err != nil {
			return nil, err
		}
		if genderPreference.Valid {
			req.GenderPreference = genderPreference.String
		}
		if hireType.Valid {
			req.HireType = hireType.String
		}
		if skillLevel.Valid {
			req.SkillLevel = skillLevel.String
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
