package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fateshift/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, p models.BirthProfile) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO birth_profiles (id, user_id, name, birth_date, birth_time, birth_place, timezone)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.UserID, p.Name, p.BirthDate, nullable(p.BirthTime), nullable(p.BirthPlace), nullable(p.Timezone))
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, p models.BirthProfile) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE birth_profiles
		SET name = ?, birth_date = ?, birth_time = ?, birth_place = ?, timezone = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?
	`, p.Name, p.BirthDate, nullable(p.BirthTime), nullable(p.BirthPlace), nullable(p.Timezone), p.ID, p.UserID)
	if err != nil {
		return false, fmt.Errorf("update profile: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM birth_profiles
		WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete profile: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (*models.BirthProfile, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, name, birth_date, birth_time, birth_place, timezone, created_at, updated_at
		FROM birth_profiles
		WHERE id = ? AND user_id = ?
	`, id, userID)

	p, err := scanProfile(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context, userID string, limit, offset int) ([]models.BirthProfile, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM birth_profiles WHERE user_id = ?
	`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, name, birth_date, birth_time, birth_place, timezone, created_at, updated_at
		FROM birth_profiles
		WHERE user_id = ?
		ORDER BY updated_at DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	out := make([]models.BirthProfile, 0, limit)
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("scan profile row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows err: %w", err)
	}
	return out, total, nil
}

func scanProfile(scan func(...any) error) (*models.BirthProfile, error) {
	var (
		p          models.BirthProfile
		birthTime  sql.NullString
		birthPlace sql.NullString
		timezone   sql.NullString
		created    time.Time
		updated    time.Time
	)
	if err := scan(&p.ID, &p.UserID, &p.Name, &p.BirthDate, &birthTime, &birthPlace, &timezone, &created, &updated); err != nil {
		return nil, err
	}
	p.BirthTime = birthTime.String
	p.BirthPlace = birthPlace.String
	p.Timezone = timezone.String
	p.CreatedAt = created
	p.UpdatedAt = updated
	return &p, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
