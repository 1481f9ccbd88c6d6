// Package gallery persists generated images in a local SQLite database.
// Records are append-only; the only mutation is deletion by ID.
package gallery

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/luckystation/luckygen/pkg/models"
)

// ErrNotFound is returned when a gallery record does not exist.
var ErrNotFound = errors.New("gallery record not found")

const schema = `
CREATE TABLE IF NOT EXISTS images (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	prompt TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	blessing TEXT,
	style_id TEXT,
	font_style_tag TEXT
);
CREATE INDEX IF NOT EXISTS idx_images_timestamp ON images(timestamp);
`

type Store struct {
	db *sql.DB
}

// NewStore opens the gallery database in the default location
// (~/.luckygen/gallery.db), creating it if needed.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewStoreWithPath(filepath.Join(home, ".luckygen", "gallery.db"))
}

// NewStoreWithPath opens the gallery database at a specific path.
func NewStoreWithPath(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a gallery record. Saving an existing ID is an error.
func (s *Store) Save(img *models.GeneratedImage) error {
	_, err := s.db.Exec(
		`INSERT INTO images (id, url, prompt, timestamp, blessing, style_id, font_style_tag)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		img.ID, img.URL, img.Prompt, img.Timestamp,
		nullString(img.Blessing), nullString(img.StyleID), nullString(img.FontTag),
	)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// List returns all records, newest first.
func (s *Store) List() ([]*models.GeneratedImage, error) {
	rows, err := s.db.Query(
		`SELECT id, url, prompt, timestamp, blessing, style_id, font_style_tag
		 FROM images ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	var images []*models.GeneratedImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate images: %w", err)
	}
	return images, nil
}

// Get returns a single record by ID.
func (s *Store) Get(id string) (*models.GeneratedImage, error) {
	row := s.db.QueryRow(
		`SELECT id, url, prompt, timestamp, blessing, style_id, font_style_tag
		 FROM images WHERE id = ?`, id)

	img, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Delete removes a record by ID.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM images`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanImage(row scanner) (*models.GeneratedImage, error) {
	var img models.GeneratedImage
	var blessing, styleID, fontTag sql.NullString
	if err := row.Scan(&img.ID, &img.URL, &img.Prompt, &img.Timestamp, &blessing, &styleID, &fontTag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan image: %w", err)
	}
	img.Blessing = blessing.String
	img.StyleID = styleID.String
	img.FontTag = fontTag.String
	return &img, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
