package main

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
)

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to Postgres with a short connect timeout and
// bootstraps the schema. Hosted platforms hand out URLs in a few broken
// shapes (postgres://, even https://); those are normalized first.
func NewPostgresStore(databaseURL string) (SearchStore, error) {
	dsn, err := normalizeDatabaseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS job_searches (
		id            SERIAL PRIMARY KEY,
		search_id     TEXT NOT NULL DEFAULT '',
		job_title     VARCHAR(255) NOT NULL,
		year_1_risk   DOUBLE PRECISION,
		year_5_risk   DOUBLE PRECISION,
		risk_category VARCHAR(50) DEFAULT '',
		job_category  VARCHAR(50) DEFAULT '',
		searched_at   TIMESTAMPTZ DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_job_searches_title ON job_searches(job_title);

	CREATE TABLE IF NOT EXISTS job_titles (
		id         SERIAL PRIMARY KEY,
		title      VARCHAR(255) NOT NULL,
		soc_code   VARCHAR(10) NOT NULL,
		is_primary BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE(title, soc_code)
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &postgresStore{db: db}, nil
}

func normalizeDatabaseURL(raw string) (string, error) {
	// postgres:// is the legacy scheme lib/pq understands, but normalize
	// everything to postgresql:// for consistency.
	if strings.HasPrefix(raw, "postgres://") {
		raw = "postgresql://" + strings.TrimPrefix(raw, "postgres://")
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		parts := strings.SplitN(raw, "://", 2)
		raw = "postgresql://" + parts[1]
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing database url: %w", err)
	}
	q := u.Query()
	if q.Get("connect_timeout") == "" {
		q.Set("connect_timeout", "3")
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (s *postgresStore) RecordSearch(rec SearchRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO job_searches (search_id, job_title, year_1_risk, year_5_risk, risk_category, job_category, searched_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.SearchID, rec.JobTitle, rec.Year1Risk, rec.Year5Risk,
		rec.RiskCategory, rec.JobCategory, rec.SearchedAt,
	)
	return err
}

func (s *postgresStore) PopularSearches(limit int) ([]SearchCount, error) {
	rows, err := s.db.Query(
		`SELECT job_title, COUNT(*) as cnt
		 FROM job_searches
		 GROUP BY job_title
		 ORDER BY cnt DESC, job_title
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SearchCount
	for rows.Next() {
		var sc SearchCount
		if err := rows.Scan(&sc.JobTitle, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (s *postgresStore) riskRanking(order string, limit int) ([]JobRecordSummary, error) {
	rows, err := s.db.Query(
		`SELECT job_title, year_1_risk, year_5_risk, risk_category
		 FROM job_searches
		 WHERE id IN (SELECT MAX(id) FROM job_searches GROUP BY job_title)
		 ORDER BY year_5_risk `+order+`, job_title
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobRecordSummary
	for rows.Next() {
		var j JobRecordSummary
		if err := rows.Scan(&j.JobTitle, &j.Year1Risk, &j.Year5Risk, &j.RiskCategory); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (s *postgresStore) HighestRiskJobs(limit int) ([]JobRecordSummary, error) {
	return s.riskRanking("DESC", limit)
}

func (s *postgresStore) LowestRiskJobs(limit int) ([]JobRecordSummary, error) {
	return s.riskRanking("ASC", limit)
}

func (s *postgresStore) RecentSearches(limit int) ([]SearchRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, search_id, job_title, year_1_risk, year_5_risk, risk_category, job_category, searched_at
		 FROM job_searches
		 ORDER BY id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SearchRecord
	for rows.Next() {
		var rec SearchRecord
		if err := rows.Scan(
			&rec.ID, &rec.SearchID, &rec.JobTitle, &rec.Year1Risk,
			&rec.Year5Risk, &rec.RiskCategory, &rec.JobCategory, &rec.SearchedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *postgresStore) ListJobTitles() ([]JobTitleEntry, error) {
	rows, err := s.db.Query(
		`SELECT title, soc_code, is_primary
		 FROM job_titles
		 ORDER BY is_primary DESC, title`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobTitleEntry
	for rows.Next() {
		var jt JobTitleEntry
		if err := rows.Scan(&jt.Title, &jt.SOCCode, &jt.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, jt)
	}
	return out, rows.Err()
}

func (s *postgresStore) AddJobTitle(entry JobTitleEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO job_titles (title, soc_code, is_primary)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (title, soc_code) DO NOTHING`,
		entry.Title, entry.SOCCode, entry.IsPrimary,
	)
	return err
}

func (s *postgresStore) Close() error {
	return s.db.Close()
}
