// Package store is the repository registry: the list of repositories the
// picker shows and the one that was open last, kept in a sqlite file.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/twig/internal/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrRepoNotFound is returned when a path is not registered.
var ErrRepoNotFound = errors.New("repository not registered")

const currentRepoKey = "current_repo"

// Repo is a registered repository.
type Repo struct {
	ID       int64
	Path     string
	Name     string
	AddedAt  time.Time
	OpenedAt time.Time // zero if never opened
}

// Store wraps the registry database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the registry at path and migrates it.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	s, err := New(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Debug(log.CatStore, "Opened store", "path", path)
	return s, nil
}

// New migrates db and wraps it. The caller keeps ownership of db unless it
// calls Close.
func New(db *sql.DB) (*Store, error) {
	if err := migrateUp(db); err != nil {
		return nil, err
	}
	return &Store{db: db, now: time.Now}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	drv, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}
	// m.Close would close db as well, so only the source is released.
	defer func() { _ = src.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// List returns every registered repository, most recently opened first.
func (s *Store) List(ctx context.Context) ([]Repo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, name, added_at, opened_at FROM repos ORDER BY opened_at DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing repos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var repos []Repo
	for rows.Next() {
		r, err := scanRepo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning repo: %w", err)
		}
		repos = append(repos, r)
	}
	return repos, rows.Err()
}

// Get returns the repository registered at path.
func (s *Store) Get(ctx context.Context, path string) (Repo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, path, name, added_at, opened_at FROM repos WHERE path = ?`, path)
	r, err := scanRepo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Repo{}, fmt.Errorf("%s: %w", path, ErrRepoNotFound)
	}
	if err != nil {
		return Repo{}, fmt.Errorf("getting repo: %w", err)
	}
	return r, nil
}

// Add registers path. Adding a path twice returns the existing entry.
func (s *Store) Add(ctx context.Context, path string) (Repo, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO repos (path, name, added_at) VALUES (?, ?, ?) ON CONFLICT(path) DO NOTHING`,
		path, filepath.Base(path), s.now().Unix())
	if err != nil {
		return Repo{}, fmt.Errorf("adding repo: %w", err)
	}
	log.Info(log.CatStore, "Registered repository", "path", path)
	return s.Get(ctx, path)
}

// Remove unregisters path, clearing it as current if it was.
func (s *Store) Remove(ctx context.Context, path string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM repos WHERE path = ?`, path)
	if err != nil {
		return fmt.Errorf("removing repo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", path, ErrRepoNotFound)
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM settings WHERE key = ? AND value = ?`, currentRepoKey, path); err != nil {
		return fmt.Errorf("clearing current repo: %w", err)
	}
	log.Info(log.CatStore, "Removed repository", "path", path)
	return nil
}

// MarkOpened records that path was opened now and makes it current.
func (s *Store) MarkOpened(ctx context.Context, path string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE repos SET opened_at = ? WHERE path = ?`, s.now().Unix(), path)
	if err != nil {
		return fmt.Errorf("marking repo opened: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", path, ErrRepoNotFound)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		currentRepoKey, path)
	if err != nil {
		return fmt.Errorf("saving current repo: %w", err)
	}
	return nil
}

// Current returns the last opened repository path, or "" if none.
func (s *Store) Current(ctx context.Context) (string, error) {
	var path string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, currentRepoKey).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading current repo: %w", err)
	}
	return path, nil
}

func scanRepo(scanner interface{ Scan(...any) error }) (Repo, error) {
	var (
		r             Repo
		added, opened int64
	)
	if err := scanner.Scan(&r.ID, &r.Path, &r.Name, &added, &opened); err != nil {
		return Repo{}, err
	}
	r.AddedAt = time.Unix(added, 0)
	if opened > 0 {
		r.OpenedAt = time.Unix(opened, 0)
	}
	return r, nil
}
