package main

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) SearchStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobrisk-test.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func searchRec(title string, year1, year5 float64, category string, at time.Time) SearchRecord {
	return SearchRecord{
		SearchID:     "s-" + title,
		JobTitle:     title,
		Year1Risk:    year1,
		Year5Risk:    year5,
		RiskCategory: category,
		JobCategory:  "General",
		SearchedAt:   at,
	}
}

func TestInitDBAddsJobCategoryColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobrisk-test.db")
	db, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('job_searches') WHERE name = 'job_category'`).Scan(&count); err != nil {
		t.Fatalf("query pragma_table_info failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected job_category column to exist, count=%d", count)
	}
}

func TestSQLiteSearchLogAndRankings(t *testing.T) {
	store := newTestStore(t)
	base := time.Now().UTC().Truncate(time.Second)

	searches := []SearchRecord{
		searchRec("Cashier", 70, 90, "Very High", base),
		searchRec("Nurse", 15, 30, "Low to Moderate", base.Add(time.Minute)),
		searchRec("Cashier", 70, 90, "Very High", base.Add(2*time.Minute)),
		searchRec("Teacher", 15, 30, "Low to Moderate", base.Add(3*time.Minute)),
		searchRec("Cashier", 65, 85, "Very High", base.Add(4*time.Minute)),
	}
	for _, rec := range searches {
		if err := store.RecordSearch(rec); err != nil {
			t.Fatalf("RecordSearch failed: %v", err)
		}
	}

	popular, err := store.PopularSearches(2)
	if err != nil {
		t.Fatalf("PopularSearches failed: %v", err)
	}
	if len(popular) != 2 {
		t.Fatalf("popular = %d rows, want 2", len(popular))
	}
	if popular[0].JobTitle != "Cashier" || popular[0].Count != 3 {
		t.Errorf("popular[0] = %+v, want Cashier/3", popular[0])
	}

	highest, err := store.HighestRiskJobs(5)
	if err != nil {
		t.Fatalf("HighestRiskJobs failed: %v", err)
	}
	if len(highest) != 3 {
		t.Fatalf("highest = %d rows, want 3 distinct titles", len(highest))
	}
	// Rankings use the latest record per title: Cashier's newest is 65/85.
	if highest[0].JobTitle != "Cashier" || highest[0].Year5Risk != 85 {
		t.Errorf("highest[0] = %+v, want latest Cashier record 85", highest[0])
	}

	lowest, err := store.LowestRiskJobs(5)
	if err != nil {
		t.Fatalf("LowestRiskJobs failed: %v", err)
	}
	if lowest[0].Year5Risk != 30 {
		t.Errorf("lowest[0] = %+v, want a 30 record first", lowest[0])
	}

	recent, err := store.RecentSearches(2)
	if err != nil {
		t.Fatalf("RecentSearches failed: %v", err)
	}
	if len(recent) != 2 || recent[0].JobTitle != "Cashier" || recent[1].JobTitle != "Teacher" {
		t.Errorf("recent = %+v, want newest first", recent)
	}
	if recent[0].SearchID != "s-Cashier" {
		t.Errorf("search_id = %q", recent[0].SearchID)
	}
}

func TestSQLiteJobTitles(t *testing.T) {
	store := newTestStore(t)

	entries := []JobTitleEntry{
		{Title: "Nurse", SOCCode: "29-1141", IsPrimary: true},
		{Title: "Data Analyst", SOCCode: "15-2051", IsPrimary: false},
		{Title: "Nurse", SOCCode: "29-1141", IsPrimary: true}, // duplicate ignored
	}
	for _, e := range entries {
		if err := store.AddJobTitle(e); err != nil {
			t.Fatalf("AddJobTitle failed: %v", err)
		}
	}

	titles, err := store.ListJobTitles()
	if err != nil {
		t.Fatalf("ListJobTitles failed: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("titles = %d, want duplicate collapsed to 2", len(titles))
	}
	// Primary titles sort first.
	if titles[0].Title != "Nurse" || !titles[0].IsPrimary {
		t.Errorf("titles[0] = %+v, want primary Nurse", titles[0])
	}
}

func TestSeedJobTitlesOnlyWhenEmpty(t *testing.T) {
	store := newTestStore(t)

	SeedJobTitles(store, []JobTitleEntry{{Title: "Nurse", SOCCode: "29-1141", IsPrimary: true}})
	titles, err := store.ListJobTitles()
	if err != nil {
		t.Fatalf("ListJobTitles failed: %v", err)
	}
	if len(titles) != 1 {
		t.Fatalf("titles = %d, want 1 after seeding", len(titles))
	}

	// A second seed pass must not touch a populated table.
	SeedJobTitles(store, []JobTitleEntry{{Title: "Teacher", SOCCode: "25-2021", IsPrimary: true}})
	titles, _ = store.ListJobTitles()
	if len(titles) != 1 {
		t.Fatalf("titles = %d after reseed, want 1", len(titles))
	}
}
