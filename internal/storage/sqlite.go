// Package storage provides SQLite-based persistence for user presets.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gearlogo/internal/config"
)

// ErrPresetNotFound is returned when no preset has the requested name.
var ErrPresetNotFound = errors.New("storage: preset not found")

// Store manages the SQLite database connection for preset persistence.
type Store struct {
	db *sql.DB
}

// PresetEntry describes a stored preset without its body.
type PresetEntry struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			body TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreset stores cfg under name, replacing any preset with the same name.
// The configuration is validated first and stored as YAML.
// Returns the ID of the preset row.
func (s *Store) SavePreset(name string, cfg config.LogoConfig) (int64, error) {
	if name == "" {
		return 0, errors.New("storage: preset name is empty")
	}
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("storage: preset %q: %w", name, err)
	}

	body, err := config.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode preset %q: %w", name, err)
	}

	var id int64
	err = s.db.QueryRow(
		`INSERT INTO presets (name, body) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP
		 RETURNING id`,
		name, string(body),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save preset %q: %w", name, err)
	}

	return id, nil
}

// LoadPreset returns the configuration stored under name.
func (s *Store) LoadPreset(name string) (config.LogoConfig, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM presets WHERE name = ?", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return config.LogoConfig{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	if err != nil {
		return config.LogoConfig{}, fmt.Errorf("storage: cannot query preset %q: %w", name, err)
	}

	cfg, err := config.Parse([]byte(body))
	if err != nil {
		return config.LogoConfig{}, fmt.Errorf("storage: cannot decode preset %q: %w", name, err)
	}
	return cfg, nil
}

// ListPresets returns every stored preset ordered by name.
func (s *Store) ListPresets() ([]PresetEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, created_at, updated_at
		 FROM presets
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query presets: %w", err)
	}
	defer rows.Close()

	var entries []PresetEntry
	for rows.Next() {
		var e PresetEntry
		var createdAt, updatedAt any
		if err := rows.Scan(&e.ID, &e.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeletePreset removes the preset stored under name.
func (s *Store) DeletePreset(name string) error {
	res, err := s.db.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete preset %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete preset %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
