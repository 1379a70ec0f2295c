// Package db provides the SQLite section catalog.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/horario/internal/timetable"
)

// SQLite stores the section catalog and answers coordinate queries.
type SQLite struct {
	db *sql.DB
}

// New opens the SQLite catalog at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ReplaceSections swaps the whole catalog for sections in one transaction.
func (s *SQLite) ReplaceSections(ctx context.Context, sections []timetable.Section) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM blocks`); err != nil {
		return fmt.Errorf("clearing blocks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sections`); err != nil {
		return fmt.Errorf("clearing sections: %w", err)
	}

	sectionStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sections (id, name, label, instructor, code, schedule, location)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing section insert: %w", err)
	}
	defer func() { _ = sectionStmt.Close() }()

	blockStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO blocks (section_id, position, day, slot) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing block insert: %w", err)
	}
	defer func() { _ = blockStmt.Close() }()

	for _, sec := range sections {
		if _, err := sectionStmt.ExecContext(ctx,
			sec.ID, sec.Name, sec.Label, sec.Instructor, sec.Code, sec.Schedule, sec.Location,
		); err != nil {
			return fmt.Errorf("inserting section %d: %w", sec.ID, err)
		}
		for pos, b := range sec.Blocks {
			if _, err := blockStmt.ExecContext(ctx, sec.ID, pos, b.Day, b.Slot); err != nil {
				return fmt.Errorf("inserting block %s of section %d: %w", b, sec.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

// CountSections returns the number of sections in the catalog.
func (s *SQLite) CountSections(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sections`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sections: %w", err)
	}
	return n, nil
}

// FindSections returns the sections with a block at c, ordered by ID.
func (s *SQLite) FindSections(ctx context.Context, c timetable.Coordinate) ([]timetable.Section, error) {
	query := `
		SELECT s.id, s.name, s.label, s.instructor, s.code, s.schedule, s.location
		FROM sections s
		WHERE s.id IN (SELECT section_id FROM blocks WHERE day = ? AND slot = ?)
		ORDER BY s.id
	`

	rows, err := s.db.QueryContext(ctx, query, c.Day, c.Slot)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sections := []timetable.Section{}
	for rows.Next() {
		var sec timetable.Section
		if err := rows.Scan(&sec.ID, &sec.Name, &sec.Label, &sec.Instructor, &sec.Code, &sec.Schedule, &sec.Location); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}

	for i := range sections {
		blocks, err := s.blocks(ctx, sections[i].ID)
		if err != nil {
			return nil, err
		}
		sections[i].Blocks = blocks
	}
	return sections, nil
}

// blocks loads a section's blocks in their original order.
func (s *SQLite) blocks(ctx context.Context, sectionID int64) ([]timetable.Coordinate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, slot FROM blocks WHERE section_id = ? ORDER BY position
	`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var blocks []timetable.Coordinate
	for rows.Next() {
		var c timetable.Coordinate
		if err := rows.Scan(&c.Day, &c.Slot); err != nil {
			return nil, fmt.Errorf("scanning block: %w", err)
		}
		blocks = append(blocks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}
	return blocks, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
