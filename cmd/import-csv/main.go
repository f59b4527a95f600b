package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"fateshift/pkg/database"
	"fateshift/pkg/models"
)

func main() {
	var (
		profilesIn = flag.String("profiles", "data/birth_profiles.csv", "input CSV path for birth profiles")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := importProfiles(ctx, db, *profilesIn); err != nil {
		log.Fatalf("import profiles failed: %v", err)
	}

	log.Printf("imported profiles from %s", *profilesIn)
}

func importProfiles(ctx context.Context, db *sql.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return err
	}

	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO birth_profiles (id, user_id, name, birth_date, birth_time, birth_place, timezone)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  name = excluded.name,
		  birth_date = excluded.birth_date,
		  birth_time = excluded.birth_time,
		  birth_place = excluded.birth_place,
		  timezone = excluded.timezone,
		  updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(row) == 0 {
			continue
		}

		id := valueAt(header, row, "id")
		userID := valueAt(header, row, "user_id")
		name := valueAt(header, row, "name")
		birthDate := valueAt(header, row, "birth_date")
		if id == "" || userID == "" || name == "" {
			continue
		}

		// refuse silently-wrong rows rather than store garbage dates
		if _, err := models.ParseBirthDate(birthDate); err != nil {
			return fmt.Errorf("row %s: %w", id, err)
		}

		if _, err := stmt.ExecContext(
			ctx,
			id,
			userID,
			name,
			birthDate,
			nullString(valueAt(header, row, "birth_time")),
			nullString(valueAt(header, row, "birth_place")),
			nullString(valueAt(header, row, "timezone")),
		); err != nil {
			return err
		}
	}

	return nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func nullString(raw string) sql.NullString {
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}
