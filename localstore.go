package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

const localStoreMaxRecords = 100

// localStore keeps search history in memory and mirrors it to a JSON file.
// It is the last-resort backend when neither Postgres nor sqlite can be
// opened. The in-memory list is authoritative for the current process; the
// file write is best-effort.
type localStore struct {
	mu      sync.Mutex
	path    string
	records []SearchRecord
	titles  []JobTitleEntry
}

func NewLocalStore(path string) SearchStore {
	s := &localStore{path: path}
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			// A corrupt file is discarded, not fatal.
			_ = json.Unmarshal(data, &s.records)
		}
	}
	return s
}

func (s *localStore) RecordSearch(rec SearchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = int64(len(s.records) + 1)
	s.records = append(s.records, rec)
	if len(s.records) > localStoreMaxRecords {
		s.records = s.records[len(s.records)-localStoreMaxRecords:]
	}

	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding local store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing local store: %w", err)
	}
	return nil
}

func (s *localStore) PopularSearches(limit int) ([]SearchCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return samplePopularSearches(limit), nil
	}

	counts := make(map[string]int)
	for _, rec := range s.records {
		counts[rec.JobTitle]++
	}
	out := make([]SearchCount, 0, len(counts))
	for title, count := range counts {
		out = append(out, SearchCount{JobTitle: title, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].JobTitle < out[j].JobTitle
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// latestPerTitle keeps only the newest record for each title.
func (s *localStore) latestPerTitle() []SearchRecord {
	latest := make(map[string]SearchRecord)
	for _, rec := range s.records {
		latest[rec.JobTitle] = rec
	}
	out := make([]SearchRecord, 0, len(latest))
	for _, rec := range latest {
		out = append(out, rec)
	}
	return out
}

func (s *localStore) riskRanking(descending bool, limit int) []JobRecordSummary {
	records := s.latestPerTitle()
	sort.Slice(records, func(i, j int) bool {
		if records[i].Year5Risk != records[j].Year5Risk {
			if descending {
				return records[i].Year5Risk > records[j].Year5Risk
			}
			return records[i].Year5Risk < records[j].Year5Risk
		}
		return records[i].JobTitle < records[j].JobTitle
	})
	if len(records) > limit {
		records = records[:limit]
	}
	out := make([]JobRecordSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, JobRecordSummary{
			JobTitle:     rec.JobTitle,
			Year1Risk:    rec.Year1Risk,
			Year5Risk:    rec.Year5Risk,
			RiskCategory: rec.RiskCategory,
		})
	}
	return out
}

func (s *localStore) HighestRiskJobs(limit int) ([]JobRecordSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return sampleHighestRiskJobs(limit), nil
	}
	return s.riskRanking(true, limit), nil
}

func (s *localStore) LowestRiskJobs(limit int) ([]JobRecordSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return sampleLowestRiskJobs(limit), nil
	}
	return s.riskRanking(false, limit), nil
}

func (s *localStore) RecentSearches(limit int) ([]SearchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SearchRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

func (s *localStore) ListJobTitles() ([]JobTitleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]JobTitleEntry(nil), s.titles...), nil
}

func (s *localStore) AddJobTitle(entry JobTitleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, jt := range s.titles {
		if jt.Title == entry.Title && jt.SOCCode == entry.SOCCode {
			return nil
		}
	}
	s.titles = append(s.titles, entry)
	return nil
}

func (s *localStore) Close() error {
	return nil
}

// Sample rankings shown before any real search has been logged, so the
// dashboard endpoints are never empty on a fresh install.

func samplePopularSearches(limit int) []SearchCount {
	samples := []SearchCount{
		{JobTitle: "Software Engineer", Count: 42},
		{JobTitle: "Data Scientist", Count: 38},
		{JobTitle: "Nurse", Count: 27},
		{JobTitle: "Teacher", Count: 21},
		{JobTitle: "Truck Driver", Count: 19},
	}
	if len(samples) > limit {
		samples = samples[:limit]
	}
	return samples
}

func sampleHighestRiskJobs(limit int) []JobRecordSummary {
	samples := []JobRecordSummary{
		{JobTitle: "Data Entry Keyer", Year1Risk: 65, Year5Risk: 90, RiskCategory: "Very High"},
		{JobTitle: "Cashier", Year1Risk: 70, Year5Risk: 90, RiskCategory: "Very High"},
		{JobTitle: "Customer Service Representative", Year1Risk: 60, Year5Risk: 80, RiskCategory: "High"},
		{JobTitle: "Assembler", Year1Risk: 55, Year5Risk: 80, RiskCategory: "High"},
		{JobTitle: "Truck Driver", Year1Risk: 50, Year5Risk: 75, RiskCategory: "High"},
	}
	if len(samples) > limit {
		samples = samples[:limit]
	}
	return samples
}

func sampleLowestRiskJobs(limit int) []JobRecordSummary {
	samples := []JobRecordSummary{
		{JobTitle: "Nurse Practitioner", Year1Risk: 10, Year5Risk: 20, RiskCategory: "Low"},
		{JobTitle: "School Counselor", Year1Risk: 12, Year5Risk: 25, RiskCategory: "Low"},
		{JobTitle: "Physician Assistant", Year1Risk: 15, Year5Risk: 25, RiskCategory: "Low"},
		{JobTitle: "Registered Nurse", Year1Risk: 15, Year5Risk: 30, RiskCategory: "Low to Moderate"},
		{JobTitle: "Special Education Teacher", Year1Risk: 10, Year5Risk: 20, RiskCategory: "Low"},
	}
	if len(samples) > limit {
		samples = samples[:limit]
	}
	return samples
}
