package main

import (
	"errors"
	"sync"
	"testing"
)

type fakeProvider struct {
	mu          sync.Mutex
	occupations []Occupation
	data        map[string]OccupationData
	projections map[string]EmploymentProjection
	failAll     bool
	dataCalls   int
}

func (f *fakeProvider) SearchOccupations(query string) ([]Occupation, error) {
	if f.failAll {
		return nil, errors.New("provider down")
	}
	var out []Occupation
	for _, occ := range f.occupations {
		if isCodeQuery(query) {
			if len(occ.Code) >= len(query) && occ.Code[:len(query)] == query {
				out = append(out, occ)
			}
		} else if normalizeTitle(occ.Title) == normalizeTitle(query) {
			out = append(out, occ)
		}
	}
	return out, nil
}

func (f *fakeProvider) GetOccupationData(occCode string) (OccupationData, error) {
	f.mu.Lock()
	f.dataCalls++
	f.mu.Unlock()
	if f.failAll {
		return OccupationData{}, errors.New("provider down")
	}
	return f.data[occCode], nil
}

func (f *fakeProvider) GetEmploymentProjection(occCode string) (EmploymentProjection, error) {
	if f.failAll {
		return EmploymentProjection{}, errors.New("provider down")
	}
	return f.projections[occCode], nil
}

type fakeStore struct {
	localStore
	recorded []SearchRecord
	failNext bool
}

func (f *fakeStore) RecordSearch(rec SearchRecord) error {
	if f.failNext {
		f.failNext = false
		return errors.New("store down")
	}
	f.recorded = append(f.recorded, rec)
	return nil
}

func (f *fakeStore) ListJobTitles() ([]JobTitleEntry, error) { return nil, nil }
func (f *fakeStore) Close() error                            { return nil }

func newTestService(t *testing.T, provider *fakeProvider, store SearchStore) *JobService {
	t.Helper()
	overrides, err := LoadOverrides("")
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}
	resolver := NewResolver(seedJobTitles, provider)
	return NewJobService(provider, resolver, store, NewMemoryCache(), overrides, GrowthPolicyNeutral, 4)
}

func TestGetJobRecordOverrideBypassesProvider(t *testing.T) {
	provider := &fakeProvider{failAll: true}
	store := &fakeStore{}
	svc := newTestService(t, provider, store)

	rec := svc.GetJobRecord("Registered Nurse")
	if rec.Source != SourceOverride {
		t.Fatalf("source = %q, want %q", rec.Source, SourceOverride)
	}
	if rec.Risk.Year1Risk != 15 || rec.Risk.Year5Risk != 30 {
		t.Errorf("risks = %.0f/%.0f, want 15/30", rec.Risk.Year1Risk, rec.Risk.Year5Risk)
	}
	if rec.Risk.RiskCategory != "Low to Moderate" {
		t.Errorf("category = %q, want Low to Moderate", rec.Risk.RiskCategory)
	}
	if provider.dataCalls != 0 {
		t.Errorf("provider called %d times for an override title", provider.dataCalls)
	}
}

func TestGetJobRecordGenericFallback(t *testing.T) {
	provider := &fakeProvider{}
	store := &fakeStore{}
	svc := newTestService(t, provider, store)

	rec := svc.GetJobRecord("Unknown Job XYZ")
	if rec.Source != SourceInternal {
		t.Fatalf("source = %q, want %q", rec.Source, SourceInternal)
	}
	if rec.Risk.Year1Risk != 25 || rec.Risk.Year5Risk != 45 {
		t.Errorf("risks = %.0f/%.0f, want 25/45", rec.Risk.Year1Risk, rec.Risk.Year5Risk)
	}
	if rec.JobCategory != "General" {
		t.Errorf("job category = %q, want General", rec.JobCategory)
	}
}

func TestGetJobRecordBLSPipeline(t *testing.T) {
	pct := 8.5
	current := 50000
	provider := &fakeProvider{
		occupations: []Occupation{
			{Code: "19-1013", Title: "Soil and Plant Scientists"},
			{Code: "19-1022", Title: "Microbiologists"},
			{Code: "19-1029", Title: "Biological Scientists, All Other"},
		},
		data: map[string]OccupationData{
			"19-1013": {LatestValue: "50000", Series: []AnnualEmployment{{Year: 2025, Employment: 50000}}},
		},
		projections: map[string]EmploymentProjection{
			"19-1013": {PercentChange: &pct, CurrentEmployment: &current},
		},
	}
	store := &fakeStore{}
	svc := newTestService(t, provider, store)

	rec := svc.GetJobRecord("Soil and Plant Scientists")
	if rec.Source != SourceBLS {
		t.Fatalf("source = %q, want %q", rec.Source, SourceBLS)
	}
	if rec.OccupationCode != "19-1013" {
		t.Fatalf("occupation code = %q", rec.OccupationCode)
	}
	// 8.5% growth, default group: base 15/35 with no delta.
	if rec.Risk.Year1Risk != 15 || rec.Risk.Year5Risk != 35 {
		t.Errorf("risks = %.0f/%.0f, want 15/35", rec.Risk.Year1Risk, rec.Risk.Year5Risk)
	}
	if rec.LatestEmployment != "50000" {
		t.Errorf("latest employment = %q", rec.LatestEmployment)
	}
	if len(rec.SimilarJobs) != 2 {
		t.Fatalf("similar jobs = %d, want 2 siblings", len(rec.SimilarJobs))
	}
	for _, sj := range rec.SimilarJobs {
		if sj.OccupationCode == "19-1013" {
			t.Error("similar jobs must exclude the occupation itself")
		}
	}
	if len(rec.TrendData.Employment) != 6 || rec.TrendData.Employment[5] != 50000 {
		t.Errorf("trend = %v, want 6 points ending at 50000", rec.TrendData.Employment)
	}
}

func TestGetJobRecordCached(t *testing.T) {
	pct := 5.0
	provider := &fakeProvider{
		occupations: []Occupation{{Code: "19-1013", Title: "Soil and Plant Scientists"}},
		projections: map[string]EmploymentProjection{"19-1013": {PercentChange: &pct}},
	}
	store := &fakeStore{}
	svc := newTestService(t, provider, store)

	first := svc.GetJobRecord("Soil and Plant Scientists")
	second := svc.GetJobRecord("soil and plant scientists")
	if first != second {
		t.Error("cached lookup should return the identical record")
	}
	if provider.dataCalls != 1 {
		t.Errorf("provider called %d times, want 1", provider.dataCalls)
	}
	// Both lookups are logged even when the second is served from cache.
	if len(store.recorded) != 2 {
		t.Errorf("recorded %d searches, want 2", len(store.recorded))
	}
	for _, rec := range store.recorded {
		if rec.SearchID == "" {
			t.Error("search record missing search_id")
		}
	}
}

func TestGetJobRecordPartialProviderFailure(t *testing.T) {
	// Resolution succeeds via the static table; both fetches fail. The record
	// still comes back classified under the unknown-growth policy.
	provider := &fakeProvider{failAll: true}
	store := &fakeStore{}
	overrides, err := LoadOverrides("")
	if err != nil {
		t.Fatal(err)
	}
	resolver := NewResolver([]JobTitleEntry{{Title: "Data Analyst", SOCCode: "15-2051"}}, nil)
	svc := NewJobService(provider, resolver, store, NewMemoryCache(), overrides, GrowthPolicyNeutral, 4)

	rec := svc.GetJobRecord("Data Analyst")
	if rec.Source != SourceBLS {
		t.Fatalf("source = %q, want %q", rec.Source, SourceBLS)
	}
	// Zero change, group 15: 25/50 with no delta.
	if rec.Risk.Year1Risk != 25 || rec.Risk.Year5Risk != 50 {
		t.Errorf("risks = %.0f/%.0f, want 25/50", rec.Risk.Year1Risk, rec.Risk.Year5Risk)
	}
	if rec.Risk.AutomationProbability != 0.35 {
		t.Errorf("automation = %.2f, want 0.35", rec.Risk.AutomationProbability)
	}
}

func TestGetJobRecordStoreFailureTolerated(t *testing.T) {
	provider := &fakeProvider{}
	store := &fakeStore{failNext: true}
	svc := newTestService(t, provider, store)

	rec := svc.GetJobRecord("Unknown Job XYZ")
	if rec == nil {
		t.Fatal("record should be returned despite store failure")
	}
	if len(store.recorded) != 0 {
		t.Errorf("recorded %d searches, want 0", len(store.recorded))
	}
}

func TestRefreshJobRecordReplacesCache(t *testing.T) {
	pct := 5.0
	provider := &fakeProvider{
		occupations: []Occupation{{Code: "19-1013", Title: "Soil and Plant Scientists"}},
		projections: map[string]EmploymentProjection{"19-1013": {PercentChange: &pct}},
	}
	store := &fakeStore{}
	svc := newTestService(t, provider, store)

	first := svc.GetJobRecord("Soil and Plant Scientists")
	refreshed := svc.RefreshJobRecord("Soil and Plant Scientists")
	if refreshed == first {
		t.Error("refresh should rebuild the record, not reuse the cached one")
	}
	if provider.dataCalls != 2 {
		t.Errorf("provider called %d times, want 2", provider.dataCalls)
	}
	// Refreshes are not searches.
	if len(store.recorded) != 1 {
		t.Errorf("recorded %d searches, want 1", len(store.recorded))
	}

	again := svc.GetJobRecord("Soil and Plant Scientists")
	if again != refreshed {
		t.Error("subsequent lookup should serve the refreshed record")
	}
}
