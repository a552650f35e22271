// Package store is the tabular persistence adapter: named append-only row
// ranges with best-effort durability. The coach only ever appends rows and
// reads a recent tail, so the schema is a single log table.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Named ranges used by the coach.
const (
	RangeSessions        = "sessions"
	RangeRecommendations = "recommendations"
)

// RowLog is the store contract the rest of the system depends on.
type RowLog interface {
	Append(ctx context.Context, name string, row []string) error
	Tail(ctx context.Context, name string, k int) ([][]string, error)
}

// Log implements RowLog over SQLite. A nil *Log behaves as an absent store:
// reads are empty, appends report an error for the caller to log.
type Log struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Open creates or opens the log database at path.
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	l := &Log{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return l, nil
}

func (l *Log) migrate() error {
	_, err := l.db.Exec(`
	CREATE TABLE IF NOT EXISTS rows (
		id         TEXT PRIMARY KEY,
		range_name TEXT NOT NULL,
		cells      TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_rows_range ON rows(range_name, id);`)
	return err
}

// newID returns a ULID; lexicographic order matches insertion order.
func (l *Log) newID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), l.entropy).String()
}

// Append adds one row to the named range.
func (l *Log) Append(ctx context.Context, name string, row []string) error {
	if l == nil || l.db == nil {
		return fmt.Errorf("store unavailable")
	}
	cells, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO rows (id, range_name, cells) VALUES (?, ?, ?)`,
		l.newID(), name, string(cells))
	if err != nil {
		return fmt.Errorf("append %s: %w", name, err)
	}
	return nil
}

// Tail returns the last k rows of the named range in chronological order.
// An absent store yields empty history, never an error.
func (l *Log) Tail(ctx context.Context, name string, k int) ([][]string, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	if k <= 0 {
		return nil, nil
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT cells FROM rows WHERE range_name = ? ORDER BY id DESC LIMIT ?`,
		name, k)
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", name, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return nil, err
		}
		var row []string
		if err := json.Unmarshal([]byte(cells), &row); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Query walked newest-first; hand back oldest-first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Close releases the database handle.
func (l *Log) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}
