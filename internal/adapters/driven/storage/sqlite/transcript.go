package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/admitlab/admit-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
)

// Ensure TranscriptStore implements the interface.
var _ driven.TranscriptStore = (*TranscriptStore)(nil)

// TranscriptStore records chat exchanges in SQLite.
type TranscriptStore struct {
	db   *sql.DB
	path string
}

// NewTranscriptStore opens (or creates) the transcript database.
// If dataDir is empty, defaults to ~/.admit/data/transcripts.db.
func NewTranscriptStore(dataDir string) (*TranscriptStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".admit", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "transcripts.db")

	// WAL mode keeps the chat loop responsive while history is written
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &TranscriptStore{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Append records one exchange.
func (s *TranscriptStore) Append(ctx context.Context, ex driven.Exchange) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transcripts (session_id, asked_at, question, answer, grounded)
		VALUES (?, ?, ?, ?, ?)
	`, ex.SessionID, ex.AskedAt.UTC().Format(time.RFC3339Nano), ex.Question, ex.Answer, ex.Grounded)
	if err != nil {
		return fmt.Errorf("inserting exchange: %w", err)
	}
	return nil
}

// Recent returns up to limit exchanges, newest first.
func (s *TranscriptStore) Recent(ctx context.Context, limit int) ([]driven.Exchange, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, asked_at, question, answer, grounded
		FROM transcripts
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying transcripts: %w", err)
	}
	defer rows.Close()

	var exchanges []driven.Exchange
	for rows.Next() {
		var ex driven.Exchange
		var askedAt string
		if err := rows.Scan(&ex.SessionID, &askedAt, &ex.Question, &ex.Answer, &ex.Grounded); err != nil {
			return nil, fmt.Errorf("scanning exchange: %w", err)
		}
		ex.AskedAt, err = time.Parse(time.RFC3339Nano, askedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing asked_at %q: %w", askedAt, err)
		}
		exchanges = append(exchanges, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transcripts: %w", err)
	}
	return exchanges, nil
}

// Close closes the database connection.
func (s *TranscriptStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *TranscriptStore) Path() string {
	return s.path
}

// migrate applies any pending .up.sql files in version order.
func (s *TranscriptStore) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
	}
	return nil
}
