package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS sections (
			id         INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			label      TEXT NOT NULL DEFAULT '',
			instructor TEXT NOT NULL DEFAULT '',
			code       TEXT NOT NULL DEFAULT '',
			schedule   TEXT NOT NULL DEFAULT '',
			location   TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS blocks (
			section_id INTEGER NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
			position   INTEGER NOT NULL,
			day        TEXT NOT NULL,
			slot       TEXT NOT NULL,
			PRIMARY KEY (section_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_blocks_coordinate ON blocks(day, slot);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating catalog tables: %w", err)
	}

	return nil
}
