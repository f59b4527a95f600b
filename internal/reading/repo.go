package reading

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

func (r *Repo) Create(ctx context.Context, rd models.Reading) (*models.Reading, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO readings (user_id, profile_id, sun_sign, life_path, chinese_zodiac, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rd.UserID, rd.ProfileID, rd.SunSign, rd.LifePath, rd.ChineseZodiac, rd.Note)
	if err != nil {
		return nil, fmt.Errorf("insert reading: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*models.Reading, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, profile_id, sun_sign, life_path, chinese_zodiac, note, timestamp
		FROM readings
		WHERE id = ?
	`, id)

	var rd models.Reading
	var note sql.NullString
	var ts time.Time
	if err := row.Scan(&rd.ID, &rd.UserID, &rd.ProfileID, &rd.SunSign, &rd.LifePath, &rd.ChineseZodiac, &note, &ts); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan reading: %w", err)
	}

	rd.Note = note.String
	rd.Timestamp = ts
	return &rd, nil
}

func (r *Repo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Reading, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, profile_id, sun_sign, life_path, chinese_zodiac, note, timestamp
		FROM readings
		WHERE user_id = ?
		ORDER BY timestamp DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	out := make([]models.Reading, 0, limit)
	for rows.Next() {
		var rd models.Reading
		var note sql.NullString
		var ts time.Time

		if err := rows.Scan(&rd.ID, &rd.UserID, &rd.ProfileID, &rd.SunSign, &rd.LifePath, &rd.ChineseZodiac, &note, &ts); err != nil {
			return nil, fmt.Errorf("scan reading row: %w", err)
		}

		rd.Note = note.String
		rd.Timestamp = ts
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM readings
		WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete reading: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}
