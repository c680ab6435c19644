package main

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectionProvider is the full external data surface the assembler needs.
// BLSClient implements it; tests substitute fakes.
type ProjectionProvider interface {
	OccupationSearcher
	GetOccupationData(occCode string) (OccupationData, error)
	GetEmploymentProjection(occCode string) (EmploymentProjection, error)
}

// JobService assembles job records: override table first, then the resolve,
// fetch, classify pipeline, with a generic fallback when nothing matches.
// GetJobRecord is total; provider and store failures degrade the record
// instead of failing the request.
type JobService struct {
	provider      ProjectionProvider
	resolver      *Resolver
	store         SearchStore
	cache         Cache
	overrides     *OverrideTable
	unknownPolicy string
	similarLimit  int
}

func NewJobService(provider ProjectionProvider, resolver *Resolver, store SearchStore, cache Cache, overrides *OverrideTable, unknownPolicy string, similarLimit int) *JobService {
	if similarLimit <= 0 {
		similarLimit = 4
	}
	return &JobService{
		provider:      provider,
		resolver:      resolver,
		store:         store,
		cache:         cache,
		overrides:     overrides,
		unknownPolicy: unknownPolicy,
		similarLimit:  similarLimit,
	}
}

// GetJobRecord returns the assembled record for a job title. Results are
// cached by normalized title; repeated queries return the identical record
// without re-fetching. Every call, cached or not, is logged to the search
// store.
func (s *JobService) GetJobRecord(title string) *JobRecord {
	key := normalizeTitle(title)
	if key == "" {
		rec := GenericJobRecord(strings.TrimSpace(title))
		return &rec
	}

	if rec, ok := s.cache.Get(key); ok {
		s.logSearch(rec)
		return rec
	}

	rec := s.assemble(title)
	s.cache.Put(key, rec)
	s.logSearch(rec)
	return rec
}

// RefreshJobRecord recomputes a record from live data and replaces the
// cached copy. Refreshes are not logged as searches.
func (s *JobService) RefreshJobRecord(title string) *JobRecord {
	key := normalizeTitle(title)
	if key == "" {
		return nil
	}
	rec := s.assemble(title)
	s.cache.Put(key, rec)
	return rec
}

func (s *JobService) assemble(title string) *JobRecord {
	if rec, ok := s.overrides.Lookup(title); ok {
		return rec
	}

	occ, err := s.resolver.Resolve(title)
	if err != nil {
		if err != ErrNoMatch {
			log.Printf("resolve failed title=%q err=%v", title, err)
		}
		rec := GenericJobRecord(strings.TrimSpace(title))
		return &rec
	}

	rec := s.buildFromOccupation(occ)
	rec.SimilarJobs = s.similarJobs(occ)
	return rec
}

// buildFromOccupation fetches live data for a resolved occupation and runs
// the classifier. Either fetch may fail; the classifier tolerates a missing
// percent change, so a partial record still comes back with Source "bls_api".
func (s *JobService) buildFromOccupation(occ Occupation) *JobRecord {
	data, err := s.provider.GetOccupationData(occ.Code)
	if err != nil {
		log.Printf("occupation data fetch failed code=%s err=%v", occ.Code, err)
	}
	proj, err := s.provider.GetEmploymentProjection(occ.Code)
	if err != nil {
		log.Printf("projection fetch failed code=%s err=%v", occ.Code, err)
		proj = EmploymentProjection{}
	}

	current := 0
	if proj.CurrentEmployment != nil {
		current = *proj.CurrentEmployment
	} else if len(data.Series) > 0 {
		// Series arrives newest first.
		current = data.Series[0].Employment
	}

	return &JobRecord{
		JobTitle:         occ.Title,
		OccupationCode:   occ.Code,
		JobCategory:      InferJobCategory(occ.Title),
		Source:           SourceBLS,
		LatestEmployment: data.LatestValue,
		Projections:      proj,
		Risk:             ClassifyRisk(occ.Title, occ.Code, proj.PercentChange, s.unknownPolicy),
		TrendData:        synthesizeTrend(current, proj.PercentChange, currentYear()),
	}
}

// similarJobs lists classified siblings from the same SOC major group. Each
// sibling is classified without projection data, so the listing reflects
// occupation-group risk only.
func (s *JobService) similarJobs(occ Occupation) []JobRecordSummary {
	group := SOCMajorGroup(occ.Code)
	siblings, err := s.provider.SearchOccupations(group)
	if err != nil {
		log.Printf("similar jobs lookup failed group=%s err=%v", group, err)
		return nil
	}

	var out []JobRecordSummary
	for _, sib := range siblings {
		if sib.Code == occ.Code {
			continue
		}
		risk := ClassifyRisk(sib.Title, sib.Code, nil, s.unknownPolicy)
		out = append(out, JobRecordSummary{
			JobTitle:       sib.Title,
			OccupationCode: sib.Code,
			Year1Risk:      risk.Year1Risk,
			Year5Risk:      risk.Year5Risk,
			RiskCategory:   risk.RiskCategory,
		})
		if len(out) >= s.similarLimit {
			break
		}
	}
	return out
}

// logSearch records a search row. Store failures are logged and swallowed so
// history never blocks a lookup.
func (s *JobService) logSearch(rec *JobRecord) {
	if s.store == nil {
		return
	}
	err := s.store.RecordSearch(SearchRecord{
		SearchID:     uuid.NewString(),
		JobTitle:     rec.JobTitle,
		Year1Risk:    rec.Risk.Year1Risk,
		Year5Risk:    rec.Risk.Year5Risk,
		RiskCategory: rec.Risk.RiskCategory,
		JobCategory:  rec.JobCategory,
		SearchedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Printf("record search failed title=%q err=%v", rec.JobTitle, err)
	}
}
