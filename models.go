package main

import "time"

// Occupation is one entry in the SOC occupation catalog.
type Occupation struct {
	Code  string `json:"code"` // "NN-NNNN"
	Title string `json:"title"`
}

// EmploymentProjection holds BLS employment projection figures for one
// occupation. Any field may be nil when the provider returned partial data.
type EmploymentProjection struct {
	CurrentEmployment   *int     `json:"current_employment,omitempty"`
	ProjectedEmployment *int     `json:"projected_employment,omitempty"`
	PercentChange       *float64 `json:"percent_change,omitempty"`
	AnnualJobOpenings   *int     `json:"annual_job_openings,omitempty"`
}

// RiskRecord is the classifier output for one occupation.
type RiskRecord struct {
	Year1Risk             float64  `json:"year_1_risk"`
	Year5Risk             float64  `json:"year_5_risk"`
	RiskCategory          string   `json:"risk_category"`
	RiskFactors           []string `json:"risk_factors"`
	ProtectiveFactors     []string `json:"protective_factors"`
	AutomationProbability float64  `json:"automation_probability"`
	WageTrend             string   `json:"wage_trend"`
	EvolvingSkills        []string `json:"evolving_skills"`
	GrowthAnalysis        string   `json:"growth_analysis"`
	Analysis              string   `json:"analysis"`
}

// JobRecordSummary is the condensed form used for similar-job listings.
type JobRecordSummary struct {
	JobTitle       string  `json:"job_title"`
	OccupationCode string  `json:"occupation_code"`
	Year1Risk      float64 `json:"year_1_risk"`
	Year5Risk      float64 `json:"year_5_risk"`
	RiskCategory   string  `json:"risk_category"`
}

// TrendData is a short annual employment series for charting.
type TrendData struct {
	Years      []int `json:"years"`
	Employment []int `json:"employment"`
}

// Provenance values for JobRecord.Source.
const (
	SourceBLS      = "bls_api"
	SourceOverride = "override"
	SourceInternal = "internal"
)

// JobRecord is the fully assembled result returned to callers. Records are
// constructed once per query and never mutated afterwards.
type JobRecord struct {
	JobTitle         string               `json:"job_title"`
	OccupationCode   string               `json:"occupation_code"`
	JobCategory      string               `json:"job_category"`
	Source           string               `json:"source"` // "bls_api", "override", or "internal"
	LatestEmployment string               `json:"latest_employment,omitempty"`
	Projections      EmploymentProjection `json:"projections"`
	Risk             RiskRecord           `json:"risk_analysis"`
	TrendData        TrendData            `json:"trend_data"`
	SimilarJobs      []JobRecordSummary   `json:"similar_jobs"`
}

// Summary condenses a record for similar-job lists and history rows.
func (r JobRecord) Summary() JobRecordSummary {
	return JobRecordSummary{
		JobTitle:       r.JobTitle,
		OccupationCode: r.OccupationCode,
		Year1Risk:      r.Risk.Year1Risk,
		Year5Risk:      r.Risk.Year5Risk,
		RiskCategory:   r.Risk.RiskCategory,
	}
}

// SOCMajorGroup returns the two-digit prefix of a SOC code ("29-1141" -> "29").
// Codes without a dash map to the default adjustment bucket instead of failing.
func SOCMajorGroup(code string) string {
	for i := 0; i < len(code); i++ {
		if code[i] == '-' {
			return code[:i]
		}
	}
	return code
}

// synthesizeTrend builds a six-point annual employment series ending at
// endYear. The series backfills from the current figure using the projected
// ten-year change, so declining occupations trend down and growing ones up.
func synthesizeTrend(current int, percentChange *float64, endYear int) TrendData {
	const points = 6

	years := make([]int, points)
	for i := range years {
		years[i] = endYear - (points - 1) + i
	}

	if current <= 0 {
		// Placeholder series when no employment figure exists.
		employment := make([]int, points)
		for i := range employment {
			employment[i] = 100000 + i*2400
		}
		return TrendData{Years: years, Employment: employment}
	}

	annualGrowth := 0.0
	if percentChange != nil {
		// BLS projections cover a ten-year horizon.
		annualGrowth = *percentChange / 100.0 / 10.0
	}

	employment := make([]int, points)
	employment[points-1] = current
	value := float64(current)
	for i := points - 2; i >= 0; i-- {
		value /= 1 + annualGrowth
		employment[i] = int(value)
	}
	return TrendData{Years: years, Employment: employment}
}

func currentYear() int {
	return time.Now().Year()
}
