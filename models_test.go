package main

import "testing"

func TestSOCMajorGroup(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"29-1141", "29"},
		{"11-3021", "11"},
		{"00-0000", "00"},
		{"nodash", "nodash"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SOCMajorGroup(tt.code); got != tt.want {
			t.Errorf("SOCMajorGroup(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestSynthesizeTrendGrowth(t *testing.T) {
	pct := 10.0
	trend := synthesizeTrend(100000, &pct, 2026)

	if len(trend.Years) != 6 || len(trend.Employment) != 6 {
		t.Fatalf("trend lengths = %d/%d, want 6/6", len(trend.Years), len(trend.Employment))
	}
	if trend.Years[0] != 2021 || trend.Years[5] != 2026 {
		t.Errorf("years = %v, want 2021..2026", trend.Years)
	}
	if trend.Employment[5] != 100000 {
		t.Errorf("final point = %d, want the current figure", trend.Employment[5])
	}
	// Positive projected change backfills a rising series.
	for i := 1; i < 6; i++ {
		if trend.Employment[i] <= trend.Employment[i-1] {
			t.Errorf("employment = %v, want strictly rising", trend.Employment)
			break
		}
	}
}

func TestSynthesizeTrendDecline(t *testing.T) {
	pct := -20.0
	trend := synthesizeTrend(50000, &pct, 2026)
	for i := 1; i < 6; i++ {
		if trend.Employment[i] >= trend.Employment[i-1] {
			t.Errorf("employment = %v, want strictly falling", trend.Employment)
			break
		}
	}
}

func TestSynthesizeTrendUnknownChangeIsFlat(t *testing.T) {
	trend := synthesizeTrend(75000, nil, 2026)
	for _, v := range trend.Employment {
		if v != 75000 {
			t.Errorf("employment = %v, want flat at 75000", trend.Employment)
			break
		}
	}
}

func TestSynthesizeTrendPlaceholder(t *testing.T) {
	trend := synthesizeTrend(0, nil, 2026)
	if trend.Employment[0] != 100000 || trend.Employment[5] != 112000 {
		t.Errorf("placeholder employment = %v", trend.Employment)
	}
}

func TestJobRecordSummary(t *testing.T) {
	rec := JobRecord{
		JobTitle:       "Nurse",
		OccupationCode: "29-1141",
		Risk:           RiskRecord{Year1Risk: 15, Year5Risk: 30, RiskCategory: "Low to Moderate"},
	}
	sum := rec.Summary()
	if sum.JobTitle != "Nurse" || sum.OccupationCode != "29-1141" {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Year1Risk != 15 || sum.Year5Risk != 30 || sum.RiskCategory != "Low to Moderate" {
		t.Errorf("summary risk = %+v", sum)
	}
}
