package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatch is returned when a title cannot be mapped to any SOC code.
// Callers fall back to a generic internal record; it is never surfaced to
// the end user.
var ErrNoMatch = errors.New("no matching occupation")

// OccupationSearcher is the slice of the projection provider the resolver
// needs: a fuzzy search over the occupation title corpus.
type OccupationSearcher interface {
	SearchOccupations(query string) ([]Occupation, error)
}

// Resolver maps free-text job titles to SOC occupation codes. An exact
// lookup against the static title table runs first, then a fuzzy search
// against the provider's corpus.
type Resolver struct {
	titleToCode map[string]string
	searcher    OccupationSearcher
}

// NewResolver builds a resolver from the job-title table. Titles are keyed
// case-insensitively; later duplicates of the same title are ignored.
func NewResolver(titles []JobTitleEntry, searcher OccupationSearcher) *Resolver {
	table := make(map[string]string, len(titles))
	for _, jt := range titles {
		key := normalizeTitle(jt.Title)
		if key == "" {
			continue
		}
		if _, exists := table[key]; !exists {
			table[key] = jt.SOCCode
		}
	}
	return &Resolver{titleToCode: table, searcher: searcher}
}

// Resolve returns the SOC code and standardized title for a job title, or
// ErrNoMatch. Only case-folding and whitespace trimming are applied; title
// variants resolve only if they are present in the static table.
func (r *Resolver) Resolve(title string) (Occupation, error) {
	normalized := normalizeTitle(title)
	if normalized == "" {
		return Occupation{}, ErrNoMatch
	}

	if code, ok := r.titleToCode[normalized]; ok {
		return Occupation{Code: code, Title: strings.TrimSpace(title)}, nil
	}

	if r.searcher != nil {
		matches, err := r.searcher.SearchOccupations(normalized)
		if err != nil {
			return Occupation{}, fmt.Errorf("searching occupations: %w", err)
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}

	return Occupation{}, ErrNoMatch
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// categoryKeywords drives the coarse category sniffing used when resolution
// fails. First match wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Technology", []string{"develop", "program", "engineer", "tech", "data", "software"}},
	{"Marketing & Sales", []string{"market", "sales", "advertis", "brand", "content"}},
	{"Finance", []string{"financ", "account", "audit", "tax", "invest"}},
	{"Human Resources", []string{"hr ", "recruit", "human resource", "talent"}},
	{"Education", []string{"teach", "educat", "instruct", "professor"}},
	{"Healthcare", []string{"health", "medic", "nurs", "doctor", "care"}},
}

// InferJobCategory guesses a broad category from keywords in the title.
// Unrecognized titles land in "General".
func InferJobCategory(title string) string {
	lower := strings.ToLower(title)
	for _, ck := range categoryKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				return ck.category
			}
		}
	}
	return "General"
}

// fallbackRiskLevels holds the fixed defaults for the generic internal
// record, adjusted only by the sniffed category, never by the classifier.
var fallbackRiskLevels = map[string][2]float64{
	"Technology": {15, 35},
	"Healthcare": {15, 30},
	"Education":  {20, 35},
}

const (
	fallbackYear1Risk = 25
	fallbackYear5Risk = 45
)

// GenericJobRecord builds the fallback record returned when no occupation
// matches a title.
func GenericJobRecord(title string) JobRecord {
	category := InferJobCategory(title)

	year1, year5 := float64(fallbackYear1Risk), float64(fallbackYear5Risk)
	if levels, ok := fallbackRiskLevels[category]; ok {
		year1, year5 = levels[0], levels[1]
	}

	return JobRecord{
		JobTitle:       title,
		OccupationCode: "00-0000",
		JobCategory:    category,
		Source:         SourceInternal,
		Risk: RiskRecord{
			Year1Risk:    year1,
			Year5Risk:    year5,
			RiskCategory: "Moderate",
			RiskFactors: []string{
				"AI and automation technologies continue to advance",
				"Routine aspects of many jobs are becoming automated",
				"Digital transformation is changing skill requirements",
			},
			ProtectiveFactors: []string{
				"Complex problem-solving requires human judgment",
				"Creative thinking and innovation are hard to automate",
				"Human relationship management remains valuable",
			},
			AutomationProbability: 0.45,
			WageTrend:             "Varies by specialization",
			EvolvingSkills: []string{
				"Digital literacy",
				"Data analysis",
				"Adaptability and continuous learning",
			},
			GrowthAnalysis: "No employment projection available",
			Analysis:       analysisText(title, "Moderate"),
		},
		TrendData: synthesizeTrend(0, nil, currentYear()),
		SimilarJobs: []JobRecordSummary{
			{
				JobTitle:       "Related Position 1",
				OccupationCode: "00-0001",
				Year1Risk:      maxFloat(10, year1-10),
				Year5Risk:      maxFloat(20, year5-10),
				RiskCategory:   "Low to Moderate",
			},
			{
				JobTitle:       "Related Position 2",
				OccupationCode: "00-0002",
				Year1Risk:      minFloat(35, year1+5),
				Year5Risk:      minFloat(60, year5+10),
				RiskCategory:   "Moderate to High",
			},
		},
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
