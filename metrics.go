package main

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// VisitorMetric is one counted page view. The client IP is never stored,
// only a salted hash of it.
type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

type CertificateStat struct {
	Certificate CertificateRef `json:"certificate"`
	Views       int64          `json:"views"`
}

type AdminStats struct {
	TotalVisitors    int64             `json:"total_visitors"`
	UniqueVisitors   int64             `json:"unique_visitors"`
	VisitorsToday    int64             `json:"visitors_today"`
	VisitorsThisWeek int64             `json:"visitors_this_week"`
	TopPaths         []PathStat        `json:"top_paths"`
	CertificateViews []CertificateStat `json:"certificate_views"`
	RecentVisitors   []VisitorMetric   `json:"recent_visitors"`
}

// MetricsStore records privacy-conscious visit counts in SQLite.
type MetricsStore struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

func OpenMetrics(path, salt string) (*MetricsStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("metrics database path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// SQLite allows one writer; a single connection also keeps :memory:
	// databases from splitting per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}

	s := &MetricsStore{db: db, salt: salt, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrate metrics schema")
	}
	return s, nil
}

func (s *MetricsStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *MetricsStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT,
			viewed_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS visitors_viewed_at ON visitors (viewed_at)`,
		`CREATE TABLE IF NOT EXISTS certificate_views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			certificate TEXT NOT NULL,
			viewed_at INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// hashIP returns a consistent, truncated salted hash for ip.
func hashIP(ip, salt string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// HashIP hashes ip with the store's salt.
func (s *MetricsStore) HashIP(ip string) string {
	return hashIP(ip, s.salt)
}

func (s *MetricsStore) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, viewed_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix(),
	)
	return errors.Wrap(err, "record visit")
}

func (s *MetricsStore) RecordCertificateView(ctx context.Context, ref CertificateRef) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO certificate_views (certificate, viewed_at) VALUES (?, ?)`,
		string(ref), s.now().Unix(),
	)
	return errors.Wrap(err, "record certificate view")
}

// Cleanup deletes rows older than one calendar year.
func (s *MetricsStore) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.now().AddDate(-1, 0, 0).Unix()

	var removed int64
	for _, table := range []string{"visitors", "certificate_views"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE viewed_at < ?`, cutoff)
		if err != nil {
			return removed, errors.Wrapf(err, "clean up %s", table)
		}
		n, _ := res.RowsAffected()
		removed += n
	}
	if removed > 0 {
		log.Printf("Privacy cleanup: removed %d metric records older than 12 months", removed)
	}
	return removed, nil
}

func (s *MetricsStore) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{
		TopPaths:         []PathStat{},
		CertificateViews: []CertificateStat{},
		RecentVisitors:   []VisitorMetric{},
	}

	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE viewed_at >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE viewed_at >= ?`, []any{weekAgo}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, errors.Wrap(err, "count visitors")
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT 10`)
	if err != nil {
		return nil, errors.Wrap(err, "query top paths")
	}
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			continue
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `
		SELECT certificate, COUNT(*) AS views
		FROM certificate_views
		GROUP BY certificate
		ORDER BY views DESC, certificate ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "query certificate views")
	}
	for rows.Next() {
		var c CertificateStat
		var ref string
		if err := rows.Scan(&ref, &c.Views); err != nil {
			continue
		}
		c.Certificate = CertificateRef(ref)
		stats.CertificateViews = append(stats.CertificateViews, c)
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), viewed_at
		FROM visitors
		ORDER BY viewed_at DESC, id DESC
		LIMIT 50`)
	if err != nil {
		return nil, errors.Wrap(err, "query recent visitors")
	}
	defer rows.Close()
	for rows.Next() {
		var v VisitorMetric
		var viewedAt int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &viewedAt); err != nil {
			continue
		}
		v.Timestamp = time.Unix(viewedAt, 0).UTC()
		stats.RecentVisitors = append(stats.RecentVisitors, v)
	}

	return stats, rows.Err()
}
