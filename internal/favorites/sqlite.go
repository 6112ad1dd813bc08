package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
    id INTEGER PRIMARY KEY,
    user_id TEXT NOT NULL,
    thumbnail_url TEXT NOT NULL,
    room_type TEXT NOT NULL,
    style TEXT NOT NULL,
    date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_favorites_user_room_style ON favorites(user_id, room_type, style);
`

// sqliteStore is the primary, authoritative store. It holds the full record
// including the thumbnail url.
type sqliteStore struct {
	db *sql.DB
}

func openSQLite(dbPath string) (*sqliteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Insert(ctx context.Context, userID string, f Favorite) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO favorites (id, user_id, thumbnail_url, room_type, style, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, userID, f.ThumbnailURL, f.RoomType, f.Style, f.Date)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, userID string, id int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

func (s *sqliteStore) List(ctx context.Context, userID string) ([]Favorite, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, thumbnail_url, room_type, style, date
		 FROM favorites WHERE user_id = ? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.ThumbnailURL, &f.RoomType, &f.Style, &f.Date); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
