package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pagecraft/internal/core"
)

// Store is a sqlite-backed Corpus over the host platform's published
// documents. When siteURL is set, permalinks for relative document URLs are
// resolved against it.
type Store struct {
	db      *sql.DB
	path    string
	siteURL string
}

// NewStore opens (creating if needed) the sqlite corpus database at the
// given path.
func NewStore(dbPath, siteURL string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database: %w", err)
	}

	store := &Store{db: db, path: dbPath, siteURL: strings.TrimSuffix(siteURL, "/")}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		url TEXT NOT NULL,
		published_at TIMESTAMP NOT NULL,
		published INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_documents_published_at ON documents(published_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize corpus schema: %w", err)
	}
	return nil
}

// AddDocument inserts or replaces a published document.
func (s *Store) AddDocument(ctx context.Context, doc core.Document) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO documents (id, title, body, url, published_at, published)
		 VALUES (?, ?, ?, ?, ?, 1)`,
		doc.ID, doc.Title, doc.Body, doc.URL, doc.PublishedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to store document %s: %w", doc.ID, err)
	}
	return nil
}

// FetchPublished returns up to limit published documents, most recent first.
func (s *Store) FetchPublished(ctx context.Context, limit int) ([]core.Document, error) {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, url, published_at FROM documents
		 WHERE published = 1 ORDER BY published_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := []core.Document{}
	for rows.Next() {
		var doc core.Document
		var publishedAt time.Time
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Body, &doc.URL, &publishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		doc.PublishedAt = publishedAt
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Permalink returns the canonical URL for a document, or "" when unknown.
// Relative stored URLs are resolved against the configured site URL.
func (s *Store) Permalink(documentID string) string {
	var url string
	err := s.db.QueryRow(`SELECT url FROM documents WHERE id = ?`, documentID).Scan(&url)
	if err != nil {
		return ""
	}
	if s.siteURL != "" && strings.HasPrefix(url, "/") {
		return s.siteURL + url
	}
	return url
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
