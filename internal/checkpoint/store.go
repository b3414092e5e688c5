package checkpoint

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mcarve/internal/config"
)

const timeLayout = time.RFC3339

// Store manages checkpoint persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the checkpoint database under the projects
// root and applies pending migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.ProjectsDir, "checkpoints.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

const documentColumns = `project, mode, data_kind, target_crs, offset_x, offset_y,
	batch_size, stage, reproject_cursor, reproject_done, generate_cursor,
	generate_done, floor, region_count, updated_at`

// Save overwrites the persisted document for doc's project with a fresh
// timestamp. There are no partial or merge semantics.
func (s *Store) Save(ctx context.Context, doc *Document) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	doc.UpdatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO checkpoints (`+documentColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(project) DO UPDATE SET
             mode = excluded.mode,
             data_kind = excluded.data_kind,
             target_crs = excluded.target_crs,
             offset_x = excluded.offset_x,
             offset_y = excluded.offset_y,
             batch_size = excluded.batch_size,
             stage = excluded.stage,
             reproject_cursor = excluded.reproject_cursor,
             reproject_done = excluded.reproject_done,
             generate_cursor = excluded.generate_cursor,
             generate_done = excluded.generate_done,
             floor = excluded.floor,
             region_count = excluded.region_count,
             updated_at = excluded.updated_at`,
		doc.Project,
		string(doc.Mode),
		string(doc.DataKind),
		doc.TargetCRS,
		doc.OffsetX,
		doc.OffsetY,
		doc.BatchSize,
		string(doc.Stage),
		doc.ReprojectCursor,
		boolToInt(doc.ReprojectDone),
		doc.GenerateCursor,
		boolToInt(doc.GenerateDone),
		nullableInt(doc.Floor),
		doc.RegionCount,
		doc.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

// Load returns the persisted document for a project, or nil when none
// exists. A document that scans but fails validation is reported as an
// error: an explicit resume against a corrupt checkpoint must fail loudly.
func (s *Store) Load(ctx context.Context, project string) (*Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM checkpoints WHERE project = ?`, project)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load checkpoint for %q: %w", project, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("corrupt checkpoint for %q: %w", project, err)
	}
	return doc, nil
}

// Delete removes the document for a project. Deleting an absent document is
// not an error.
func (s *Store) Delete(ctx context.Context, project string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM checkpoints WHERE project = ?`, project); err != nil {
		return fmt.Errorf("delete checkpoint: %w", err)
	}
	return nil
}

// List returns every resumable project's document ordered by project name.
// Listing is best-effort: rows that fail to scan or validate are silently
// excluded.
func (s *Store) List(ctx context.Context) ([]*Document, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+documentColumns+` FROM checkpoints ORDER BY project`)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints: %w", err)
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			continue
		}
		if err := doc.Validate(); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var (
		doc            Document
		mode, kind     string
		stage          string
		reprojectDone  int
		generateDone   int
		floor          sql.NullInt64
		updatedAtValue string
	)
	err := row.Scan(
		&doc.Project,
		&mode,
		&kind,
		&doc.TargetCRS,
		&doc.OffsetX,
		&doc.OffsetY,
		&doc.BatchSize,
		&stage,
		&doc.ReprojectCursor,
		&reprojectDone,
		&doc.GenerateCursor,
		&generateDone,
		&floor,
		&doc.RegionCount,
		&updatedAtValue,
	)
	if err != nil {
		return nil, err
	}
	doc.Mode = Mode(mode)
	doc.DataKind = DataKind(kind)
	doc.Stage = Stage(stage)
	doc.ReprojectDone = reprojectDone != 0
	doc.GenerateDone = generateDone != 0
	if floor.Valid {
		v := int(floor.Int64)
		doc.Floor = &v
	}
	if updatedAtValue != "" {
		ts, parseErr := time.Parse(timeLayout, updatedAtValue)
		if parseErr != nil {
			return nil, fmt.Errorf("parse updated_at: %w", parseErr)
		}
		doc.UpdatedAt = ts
	}
	return &doc, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
