package store

import (
	"context"
	"fmt"
	"time"
)

type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	PersonaViews     map[string]int64 `json:"persona_views"`
	TotalMessages    int64            `json:"total_messages"`
	PendingMessages  int64            `json:"pending_messages"`
	RecentVisitors   []Visit          `json:"recent_visitors"`
	RecentMessages   []Message        `json:"recent_messages"`
}

// Stats aggregates the dashboard numbers relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	st := &Stats{PersonaViews: map[string]int64{}}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	week := now.Add(-7 * 24 * time.Hour)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&st.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&st.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&st.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{today.UnixNano()}},
		{&st.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{week.UnixNano()}},
		{&st.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&st.PendingMessages, `SELECT COUNT(*) FROM messages WHERE notified = 0`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT persona, COUNT(*) FROM visitors
		WHERE persona IS NOT NULL AND persona != ''
		GROUP BY persona`)
	if err != nil {
		return nil, fmt.Errorf("persona views: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			p string
			n int64
		)
		if err := rows.Scan(&p, &n); err != nil {
			return nil, fmt.Errorf("scan persona views: %w", err)
		}
		st.PersonaViews[p] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if st.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	if st.RecentMessages, err = s.Messages(ctx, 10); err != nil {
		return nil, err
	}
	return st, nil
}
