package visits

import (
	"context"
	"fmt"
	"time"
)

type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// SectionReveals counts distinct sessions that reached a section.
type SectionReveals struct {
	Section  string `json:"section"`
	Sessions int64  `json:"sessions"`
}

type Stats struct {
	TotalVisits    int64            `json:"total_visits"`
	UniqueVisitors int64            `json:"unique_visitors"`
	VisitsToday    int64            `json:"visits_today"`
	VisitsThisWeek int64            `json:"visits_this_week"`
	Reveals        []SectionReveals `json:"reveals"`
	RecentVisits   []Visit          `json:"recent_visits"`
}

// RecentLimit caps Stats.RecentVisits.
const RecentLimit = 50

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.clock.Now()

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, []any{now.Add(-24 * time.Hour).UnixMilli()}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, []any{now.Add(-7 * 24 * time.Hour).UnixMilli()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("visits: stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT section, COUNT(DISTINCT hashed_session) AS sessions
		FROM reveals
		GROUP BY section
		ORDER BY sessions DESC, section ASC`)
	if err != nil {
		return nil, fmt.Errorf("visits: stats reveals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r SectionReveals
		if err := rows.Scan(&r.Section, &r.Sessions); err != nil {
			return nil, fmt.Errorf("visits: scan reveal: %w", err)
		}
		stats.Reveals = append(stats.Reveals, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), visited_at
		FROM visits
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("visits: stats recent: %w", err)
	}
	defer recent.Close()
	for recent.Next() {
		var (
			v  Visit
			ms int64
		)
		if err := recent.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ms); err != nil {
			return nil, fmt.Errorf("visits: scan visit: %w", err)
		}
		v.Timestamp = time.UnixMilli(ms).UTC()
		stats.RecentVisits = append(stats.RecentVisits, v)
	}
	return stats, recent.Err()
}
