// Package visits is privacy-conscious, ephemeral analytics: page views and
// section reveals keyed by salted hashes, held in an in-memory SQLite
// database unless configured otherwise.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the database in process memory.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	visited_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_visited_at ON visits(visited_at);
CREATE TABLE IF NOT EXISTS reveals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_session TEXT NOT NULL,
	section TEXT NOT NULL,
	revealed_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS reveals_revealed_at ON reveals(revealed_at);
`

type Option func(*Store)

func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.log = logger }
}

// WithSalt fixes the hashing salt. Without it a random per-process salt
// is used, so hashes cannot be correlated across restarts.
func WithSalt(salt string) Option {
	return func(s *Store) { s.salt = salt }
}

type Store struct {
	db    *sql.DB
	salt  string
	clock clockwork.Clock
	log   zerolog.Logger
}

// Open connects to dsn (MemoryDSN when empty) and creates the schema.
func Open(dsn string, opts ...Option) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("visits: open %s: %w", dsn, err)
	}
	// A memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, clock: clockwork.NewRealClock(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.salt == "" {
		s.salt, err = randomSalt()
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("visits: create schema: %w", err)
	}
	return s, nil
}

func randomSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("visits: generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hash returns the salted, truncated digest stored in place of raw values.
func (s *Store) Hash(v string) string {
	sum := sha256.Sum256([]byte(v + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores one page view. The IP is hashed before storage.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		s.Hash(ip), userAgent, path, s.clock.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("visits: record visit: %w", err)
	}
	return nil
}

// RecordReveal stores that a session saw a section.
func (s *Store) RecordReveal(ctx context.Context, sessionID, section string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reveals (hashed_session, section, revealed_at) VALUES (?, ?, ?)`,
		s.Hash(sessionID), section, s.clock.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("visits: record reveal: %w", err)
	}
	return nil
}

// Purge deletes rows older than keep and returns how many went.
func (s *Store) Purge(ctx context.Context, keep time.Duration) (int64, error) {
	cutoff := s.clock.Now().Add(-keep).UnixMilli()
	var total int64
	for _, q := range []string{
		`DELETE FROM visits WHERE visited_at < ?`,
		`DELETE FROM reveals WHERE revealed_at < ?`,
	} {
		res, err := s.db.ExecContext(ctx, q, cutoff)
		if err != nil {
			return total, fmt.Errorf("visits: purge: %w", err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// RunRetention purges rows older than keep every interval until ctx is
// done.
func (s *Store) RunRetention(ctx context.Context, interval, keep time.Duration) {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			n, err := s.Purge(ctx, keep)
			if err != nil {
				s.log.Error().Err(err).Msg("visit retention purge failed")
				continue
			}
			if n > 0 {
				s.log.Info().Int64("rows", n).Dur("keep", keep).Msg("visit retention purge")
			}
		}
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}
