package main

import (
	"log"
	"time"
)

// SearchRecord is one logged job search.
type SearchRecord struct {
	ID           int64     `json:"-"`
	SearchID     string    `json:"search_id"`
	JobTitle     string    `json:"job_title"`
	Year1Risk    float64   `json:"year_1_risk"`
	Year5Risk    float64   `json:"year_5_risk"`
	RiskCategory string    `json:"risk_category"`
	JobCategory  string    `json:"job_category"`
	SearchedAt   time.Time `json:"timestamp"`
}

// SearchCount is one row of the popular-searches ranking.
type SearchCount struct {
	JobTitle string `json:"job_title"`
	Count    int    `json:"count"`
}

// JobTitleEntry is one row of the autocomplete job-title table.
type JobTitleEntry struct {
	Title     string `json:"title"`
	SOCCode   string `json:"soc_code"`
	IsPrimary bool   `json:"is_primary"`
}

// SearchStore persists search history and serves the job-title table.
// RecordSearch is fire-and-forget from the assembler's perspective: errors
// are logged by the caller and never affect the returned record.
type SearchStore interface {
	RecordSearch(rec SearchRecord) error
	PopularSearches(limit int) ([]SearchCount, error)
	HighestRiskJobs(limit int) ([]JobRecordSummary, error)
	LowestRiskJobs(limit int) ([]JobRecordSummary, error)
	RecentSearches(limit int) ([]SearchRecord, error)
	ListJobTitles() ([]JobTitleEntry, error)
	AddJobTitle(entry JobTitleEntry) error
	Close() error
}

// OpenSearchStore picks a store implementation once at startup: Postgres
// when a database URL is configured, sqlite otherwise, and the local
// JSON/in-memory fallback when neither can be opened. A store that cannot
// be reached never stops startup.
func OpenSearchStore(cfg Config) SearchStore {
	if cfg.DatabaseURL != "" {
		store, err := NewPostgresStore(cfg.DatabaseURL)
		if err == nil {
			log.Printf("search store backend=postgres")
			return store
		}
		log.Printf("postgres store unavailable, falling back: %v", err)
	}

	if cfg.DBPath != "" {
		store, err := NewSQLiteStore(cfg.DBPath)
		if err == nil {
			log.Printf("search store backend=sqlite path=%s", cfg.DBPath)
			return store
		}
		log.Printf("sqlite store unavailable, falling back: %v", err)
	}

	log.Printf("search store backend=local path=%s", cfg.LocalStorePath)
	return NewLocalStore(cfg.LocalStorePath)
}

// SeedJobTitles loads the bootstrap title list into an empty store.
// Duplicate rows are ignored by the store implementations.
func SeedJobTitles(store SearchStore, titles []JobTitleEntry) {
	existing, err := store.ListJobTitles()
	if err != nil {
		log.Printf("listing job titles for seed check: %v", err)
	}
	if len(existing) > 0 {
		return
	}
	added := 0
	for _, jt := range titles {
		if err := store.AddJobTitle(jt); err != nil {
			log.Printf("seeding job title %q: %v", jt.Title, err)
			continue
		}
		added++
	}
	log.Printf("seeded job titles count=%d", added)
}
