package hires

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new hire intent.
func (r *PGRepo) Create(ctx context.Context, intent Intent) error {
	const query = `
INSERT INTO hire_intents (id, employer_name, employer_phone, profile_id, message, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		intent.ID,
		intent.EmployerName,
		intent.EmployerPhone,
		intent.ProfileID,
		intent.Message,
		intent.CreatedAt,
	)
	return err
}

// ListByProfile returns hire intents for a candidate, newest first.
func (r *PGRepo) ListByProfile(ctx context.Context, profileID string) ([]Intent, error) {
	const query = `
SELECT id, employer_name, employer_phone, profile_id, message, created_at
FROM hire_intents
WHERE profile_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Intent
	for rows.Next() {
		var intent Intent
		if err := rows.Scan(
			&intent.ID,
			&intent.EmployerName,
			&intent.EmployerPhone,
			&intent.ProfileID,
			&intent.Message,
			&intent.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, intent)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
