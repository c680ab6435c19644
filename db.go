package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// InitDB opens the sqlite database and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS job_searches (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		search_id     TEXT NOT NULL DEFAULT '',
		job_title     TEXT NOT NULL,
		year_1_risk   REAL,
		year_5_risk   REAL,
		risk_category TEXT DEFAULT '',
		searched_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_job_searches_title ON job_searches(job_title);
	CREATE INDEX IF NOT EXISTS idx_job_searches_at ON job_searches(searched_at);

	CREATE TABLE IF NOT EXISTS job_titles (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		title      TEXT NOT NULL,
		soc_code   TEXT NOT NULL,
		is_primary INTEGER NOT NULL DEFAULT 0,
		UNIQUE(title, soc_code)
	);
	CREATE INDEX IF NOT EXISTS idx_job_titles_title ON job_titles(title);
	`
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	// Migration: add job_category column if missing.
	var colCount int
	_ = db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('job_searches') WHERE name = 'job_category'`).Scan(&colCount)
	if colCount == 0 {
		_, _ = db.Exec(`ALTER TABLE job_searches ADD COLUMN job_category TEXT DEFAULT ''`)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a sqlite-backed search store.
func NewSQLiteStore(path string) (SearchStore, error) {
	db, err := InitDB(path)
	if err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) RecordSearch(rec SearchRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO job_searches (search_id, job_title, year_1_risk, year_5_risk, risk_category, job_category, searched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SearchID, rec.JobTitle, rec.Year1Risk, rec.Year5Risk,
		rec.RiskCategory, rec.JobCategory, rec.SearchedAt,
	)
	return err
}

func (s *sqliteStore) PopularSearches(limit int) ([]SearchCount, error) {
	rows, err := s.db.Query(
		`SELECT job_title, COUNT(*) as cnt
		 FROM job_searches
		 GROUP BY job_title
		 ORDER BY cnt DESC, job_title
		 LIMIT ?`,
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

// riskRanking returns the most recent record per title ordered by five-year
// risk. direction is "DESC" or "ASC".
func (s *sqliteStore) riskRanking(direction string, limit int) ([]JobRecordSummary, error) {
	order := "DESC"
	if direction == "ASC" {
		order = "ASC"
	}
	rows, err := s.db.Query(
		`SELECT job_title, year_1_risk, year_5_risk, risk_category
		 FROM job_searches
		 WHERE id IN (SELECT MAX(id) FROM job_searches GROUP BY job_title)
		 ORDER BY year_5_risk `+order+`, job_title
		 LIMIT ?`,
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

func (s *sqliteStore) HighestRiskJobs(limit int) ([]JobRecordSummary, error) {
	return s.riskRanking("DESC", limit)
}

func (s *sqliteStore) LowestRiskJobs(limit int) ([]JobRecordSummary, error) {
	return s.riskRanking("ASC", limit)
}

func (s *sqliteStore) RecentSearches(limit int) ([]SearchRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, search_id, job_title, year_1_risk, year_5_risk, risk_category, job_category, searched_at
		 FROM job_searches
		 ORDER BY id DESC
		 LIMIT ?`,
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

func (s *sqliteStore) ListJobTitles() ([]JobTitleEntry, error) {
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

func (s *sqliteStore) AddJobTitle(entry JobTitleEntry) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO job_titles (title, soc_code, is_primary) VALUES (?, ?, ?)`,
		entry.Title, entry.SOCCode, entry.IsPrimary,
	)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
