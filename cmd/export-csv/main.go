package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fateshift/pkg/database"
)

func main() {
	var (
		profilesOut = flag.String("profiles", "data/birth_profiles.csv", "output CSV path for birth profiles")
		readingsOut = flag.String("readings", "data/readings.csv", "output CSV path for saved readings")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportProfiles(ctx, db, *profilesOut); err != nil {
		log.Fatalf("export profiles failed: %v", err)
	}
	if err := exportReadings(ctx, db, *readingsOut); err != nil {
		log.Fatalf("export readings failed: %v", err)
	}

	log.Printf("exported profiles to %s and readings to %s", *profilesOut, *readingsOut)
}

func exportProfiles(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "user_id", "name", "birth_date", "birth_time", "birth_place", "timezone", "updated_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, user_id, name, birth_date, birth_time, birth_place, timezone, updated_at
        FROM birth_profiles
        ORDER BY updated_at DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         string
			userID     string
			name       string
			birthDate  string
			birthTime  sql.NullString
			birthPlace sql.NullString
			timezone   sql.NullString
			updatedAt  sql.NullTime
		)

		if err := rows.Scan(&id, &userID, &name, &birthDate, &birthTime, &birthPlace, &timezone, &updatedAt); err != nil {
			return err
		}

		updated := ""
		if updatedAt.Valid {
			updated = updatedAt.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{
			id,
			userID,
			name,
			birthDate,
			birthTime.String,
			birthPlace.String,
			timezone.String,
			updated,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportReadings(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "user_id", "profile_id", "sun_sign", "life_path", "chinese_zodiac", "note", "timestamp"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, user_id, profile_id, sun_sign, life_path, chinese_zodiac, note, timestamp
        FROM readings
        ORDER BY timestamp DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            int64
			userID        string
			profileID     string
			sunSign       string
			lifePath      int
			chineseZodiac string
			note          sql.NullString
			ts            sql.NullTime
		)

		if err := rows.Scan(&id, &userID, &profileID, &sunSign, &lifePath, &chineseZodiac, &note, &ts); err != nil {
			return err
		}

		stamp := ""
		if ts.Valid {
			stamp = ts.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{
			strconv.FormatInt(id, 10),
			userID,
			profileID,
			sunSign,
			strconv.Itoa(lifePath),
			chineseZodiac,
			note.String,
			stamp,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
