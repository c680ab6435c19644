package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed overrides.yaml
var defaultOverridesYAML []byte

type overrideFile struct {
	Jobs []overrideEntry `yaml:"jobs"`
}

type overrideEntry struct {
	Title            string               `yaml:"title"`
	Aliases          []string             `yaml:"aliases"`
	OccupationCode   string               `yaml:"occupation_code"`
	JobCategory      string               `yaml:"job_category"`
	LatestEmployment string               `yaml:"latest_employment"`
	Projections      overrideProjections  `yaml:"projections"`
	Risk             overrideRisk         `yaml:"risk"`
	Trend            overrideTrend        `yaml:"trend"`
	SimilarJobs      []overrideSimilarJob `yaml:"similar_jobs"`
}

type overrideProjections struct {
	CurrentEmployment   int     `yaml:"current_employment"`
	ProjectedEmployment int     `yaml:"projected_employment"`
	PercentChange       float64 `yaml:"percent_change"`
	AnnualJobOpenings   int     `yaml:"annual_job_openings"`
}

type overrideRisk struct {
	Year1Risk             float64  `yaml:"year_1_risk"`
	Year5Risk             float64  `yaml:"year_5_risk"`
	RiskCategory          string   `yaml:"risk_category"`
	AutomationProbability float64  `yaml:"automation_probability"`
	WageTrend             string   `yaml:"wage_trend"`
	GrowthAnalysis        string   `yaml:"growth_analysis"`
	RiskFactors           []string `yaml:"risk_factors"`
	ProtectiveFactors     []string `yaml:"protective_factors"`
	EvolvingSkills        []string `yaml:"evolving_skills"`
	Analysis              string   `yaml:"analysis"`
}

type overrideTrend struct {
	Years      []int `yaml:"years"`
	Employment []int `yaml:"employment"`
}

type overrideSimilarJob struct {
	JobTitle       string  `yaml:"job_title"`
	OccupationCode string  `yaml:"occupation_code"`
	Year1Risk      float64 `yaml:"year_1_risk"`
	Year5Risk      float64 `yaml:"year_5_risk"`
	RiskCategory   string  `yaml:"risk_category"`
}

// OverrideTable resolves a normalized job title (canonical or alias) to a
// hand-authored record served verbatim instead of a computed one.
type OverrideTable struct {
	byTitle map[string]*JobRecord
}

// LoadOverrides reads the override table from path, or from the embedded
// default asset when path is empty.
func LoadOverrides(path string) (*OverrideTable, error) {
	data := defaultOverridesYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read overrides: %w", err)
		}
		data = b
	}

	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse overrides yaml: %w", err)
	}

	t := &OverrideTable{byTitle: make(map[string]*JobRecord)}
	for i := range f.Jobs {
		e := &f.Jobs[i]
		if err := validateOverride(e); err != nil {
			return nil, fmt.Errorf("override %q: %w", e.Title, err)
		}
		rec := e.toRecord()
		key := normalizeTitle(e.Title)
		if _, dup := t.byTitle[key]; dup {
			return nil, fmt.Errorf("override %q: duplicate title", e.Title)
		}
		t.byTitle[key] = rec
		for _, alias := range e.Aliases {
			ak := normalizeTitle(alias)
			if _, dup := t.byTitle[ak]; dup {
				return nil, fmt.Errorf("override %q: duplicate alias %q", e.Title, alias)
			}
			t.byTitle[ak] = rec
		}
	}
	return t, nil
}

func validateOverride(e *overrideEntry) error {
	if e.Title == "" {
		return fmt.Errorf("missing title")
	}
	if e.OccupationCode == "" {
		return fmt.Errorf("missing occupation_code")
	}
	r := e.Risk
	if r.Year1Risk < minYear1Risk || r.Year1Risk > maxYear1Risk {
		return fmt.Errorf("year_1_risk %.1f out of range", r.Year1Risk)
	}
	if r.Year5Risk < minYear5Risk || r.Year5Risk > maxYear5Risk {
		return fmt.Errorf("year_5_risk %.1f out of range", r.Year5Risk)
	}
	if r.Year5Risk < r.Year1Risk+riskGap {
		return fmt.Errorf("year_5_risk %.1f must exceed year_1_risk %.1f by at least %d", r.Year5Risk, r.Year1Risk, riskGap)
	}
	if r.RiskCategory == "" {
		return fmt.Errorf("missing risk_category")
	}
	if len(e.Trend.Years) != len(e.Trend.Employment) {
		return fmt.Errorf("trend years/employment length mismatch")
	}
	return nil
}

func (e *overrideEntry) toRecord() *JobRecord {
	pct := e.Projections.PercentChange
	current := e.Projections.CurrentEmployment
	projected := e.Projections.ProjectedEmployment
	openings := e.Projections.AnnualJobOpenings

	rec := &JobRecord{
		JobTitle:         e.Title,
		OccupationCode:   e.OccupationCode,
		JobCategory:      e.JobCategory,
		Source:           SourceOverride,
		LatestEmployment: e.LatestEmployment,
		Projections: EmploymentProjection{
			CurrentEmployment:   &current,
			ProjectedEmployment: &projected,
			PercentChange:       &pct,
			AnnualJobOpenings:   &openings,
		},
		Risk: RiskRecord{
			Year1Risk:             e.Risk.Year1Risk,
			Year5Risk:             e.Risk.Year5Risk,
			RiskCategory:          e.Risk.RiskCategory,
			RiskFactors:           e.Risk.RiskFactors,
			ProtectiveFactors:     e.Risk.ProtectiveFactors,
			AutomationProbability: e.Risk.AutomationProbability,
			WageTrend:             e.Risk.WageTrend,
			EvolvingSkills:        e.Risk.EvolvingSkills,
			GrowthAnalysis:        e.Risk.GrowthAnalysis,
			Analysis:              e.Risk.Analysis,
		},
		TrendData: TrendData{
			Years:      e.Trend.Years,
			Employment: e.Trend.Employment,
		},
	}
	for _, s := range e.SimilarJobs {
		rec.SimilarJobs = append(rec.SimilarJobs, JobRecordSummary{
			JobTitle:       s.JobTitle,
			OccupationCode: s.OccupationCode,
			Year1Risk:      s.Year1Risk,
			Year5Risk:      s.Year5Risk,
			RiskCategory:   s.RiskCategory,
		})
	}
	return rec
}

// Lookup returns the override record for a title, matching the canonical
// title or any alias after normalization. The returned record is shared;
// callers must not mutate it.
func (t *OverrideTable) Lookup(title string) (*JobRecord, bool) {
	rec, ok := t.byTitle[normalizeTitle(title)]
	return rec, ok
}

// Len reports the number of normalized keys, aliases included.
func (t *OverrideTable) Len() int {
	return len(t.byTitle)
}
