package main

import "fmt"

// Unknown-growth policies. The BLS projection feed regularly omits
// percent_change for small occupations, so the behavior is configurable
// instead of silently assuming one or the other.
const (
	// GrowthPolicyNeutral coerces a missing percent change to 0, which lands
	// in the slight-decline bucket.
	GrowthPolicyNeutral = "neutral"
	// GrowthPolicyUnknown uses the same base numbers but drops the growth
	// narrative, so callers can tell no projection was available.
	GrowthPolicyUnknown = "unknown"
)

// growthBucket fixes the base risk levels for one band of projected
// employment change. Buckets are evaluated in order; the first one whose
// threshold admits the value wins.
type growthBucket struct {
	maxChange  float64 // percent_change <= maxChange selects this bucket
	year1Risk  float64
	year5Risk  float64
	category   string
	factor     string // appended to risk or protective factors
	protective bool   // factor goes to protective_factors instead
	analysis   string
}

var growthBuckets = []growthBucket{
	{
		maxChange: -20,
		year1Risk: 60, year5Risk: 90,
		category: "Very High",
		factor:   "BLS projects significant employment decline for this occupation",
		analysis: "Significant decline projected",
	},
	{
		maxChange: -10,
		year1Risk: 40, year5Risk: 75,
		category: "High",
		factor:   "BLS projects moderate employment decline for this occupation",
		analysis: "Moderate decline projected",
	},
	{
		maxChange: 0,
		year1Risk: 25, year5Risk: 50,
		category: "Moderate",
		factor:   "BLS projects slight employment decline for this occupation",
		analysis: "Slight decline projected",
	},
	{
		maxChange: 10,
		year1Risk: 15, year5Risk: 35,
		category:   "Moderate",
		factor:     "BLS projects slight employment growth for this occupation",
		protective: true,
		analysis:   "Slight growth projected",
	},
	{
		maxChange: maxPercentChange,
		year1Risk: 10, year5Risk: 25,
		category:   "Low",
		factor:     "BLS projects significant employment growth for this occupation",
		protective: true,
		analysis:   "Strong growth projected",
	},
}

const maxPercentChange = 1e9 // sentinel for the open-ended top bucket

// groupAdjustment is the per-SOC-major-group correction applied on top of
// the growth bucket. The management group (11) overwrites the risk levels
// outright instead of shifting them; downstream fixtures depend on the exact
// 35/60 values, so that asymmetry must stay.
type groupAdjustment struct {
	deltaYear1 float64
	deltaYear5 float64

	overwrite      bool
	overwriteYear1 float64
	overwriteYear5 float64

	automationProbability float64
	wageTrend             string
	evolvingSkills        []string
	riskFactors           []string
	protectiveFactors     []string
}

var groupAdjustments = map[string]groupAdjustment{
	// Office and administrative support
	"43": {
		deltaYear1: 10, deltaYear5: 15,
		automationProbability: 0.75,
		wageTrend:             "Declining",
		riskFactors: []string{
			"Administrative tasks are highly susceptible to automation",
			"Document processing can be handled by AI systems",
		},
		evolvingSkills: []string{
			"Advanced data analysis",
			"Digital process management",
			"Client relationship management",
		},
	},
	// Computer and mathematical
	"15": {
		automationProbability: 0.35,
		wageTrend:             "Increasing",
		riskFactors: []string{
			"Automated code generation is improving rapidly",
		},
		protectiveFactors: []string{
			"Complex problem-solving still requires human insight",
		},
		evolvingSkills: []string{
			"AI/ML engineering",
			"Cloud architecture",
			"Cybersecurity expertise",
		},
	},
	// Healthcare practitioners
	"29": {
		deltaYear1: -5, deltaYear5: -10,
		automationProbability: 0.20,
		wageTrend:             "Increasing",
		protectiveFactors: []string{
			"Direct patient care requires human empathy and dexterity",
		},
		evolvingSkills: []string{
			"Telemedicine competence",
			"Medical technology operation",
			"Patient data interpretation",
		},
	},
	// Transportation and material moving
	"53": {
		deltaYear1: 5, deltaYear5: 10,
		automationProbability: 0.65,
		wageTrend:             "Stable to declining",
		riskFactors: []string{
			"Autonomous vehicle technology is developing rapidly",
		},
		evolvingSkills: []string{
			"Advanced vehicle systems",
			"Logistics optimization",
			"Remote monitoring",
		},
	},
	// Management: fixed 35/60 regardless of the growth bucket.
	"11": {
		overwrite:      true,
		overwriteYear1: 35, overwriteYear5: 60,
		automationProbability: 0.45,
		wageTrend:             "Stable to increasing, depending on specialization",
		riskFactors: []string{
			"Project management software becoming increasingly automated",
		},
		protectiveFactors: []string{
			"Strategic decision-making requires human judgment",
			"Complex stakeholder management requires human relationships",
		},
		evolvingSkills: []string{
			"AI tools implementation and oversight",
			"Data-driven decision making",
			"Agile management practices",
			"Cross-functional leadership",
			"Change management expertise",
		},
	},
	// Educational instruction
	"25": {
		deltaYear1: -3, deltaYear5: -7,
		automationProbability: 0.30,
		wageTrend:             "Stable",
		protectiveFactors: []string{
			"Teaching requires adaptability and emotional intelligence",
		},
		evolvingSkills: []string{
			"Educational technology proficiency",
			"Personalized learning approaches",
			"Digital content creation",
		},
	},
	// Sales and related
	"41": {
		deltaYear1: 8, deltaYear5: 12,
		automationProbability: 0.55,
		wageTrend:             "Declining for basic roles, increasing for consultative sales",
		riskFactors: []string{
			"Online shopping and self-service technologies reduce demand",
		},
		evolvingSkills: []string{
			"Consultative selling",
			"Customer experience design",
			"Digital marketing",
		},
	},
	// Food preparation and serving
	"35": {
		deltaYear1: 7, deltaYear5: 14,
		automationProbability: 0.60,
		wageTrend:             "Stable to declining",
		riskFactors: []string{
			"Food preparation and service seeing increased automation",
		},
		evolvingSkills: []string{
			"Culinary specialization",
			"Customer experience",
			"Food safety and quality management",
		},
	},
	// Production
	"51": {
		deltaYear1: 12, deltaYear5: 18,
		automationProbability: 0.80,
		wageTrend:             "Declining",
		riskFactors: []string{
			"Manufacturing processes increasingly automated",
		},
		evolvingSkills: []string{
			"Advanced manufacturing tech",
			"Quality control systems",
			"Process optimization",
		},
	},
}

var defaultGroupAdjustment = groupAdjustment{
	automationProbability: 0.40,
	wageTrend:             "Varies by specialization",
	evolvingSkills: []string{
		"Digital literacy",
		"Data analysis",
		"Adaptability and continuous learning",
	},
}

// Risk bounds applied after the group adjustment.
const (
	minYear1Risk = 5
	maxYear1Risk = 95
	minYear5Risk = 10
	maxYear5Risk = 95
	riskGap      = 5 // year-5 risk must exceed year-1 risk by at least this
)

// ClassifyRisk maps an occupation code and projected employment change to a
// full risk record. percentChange may be nil; unknownPolicy decides how the
// gap is filled. The function is total: it never fails, and malformed codes
// fall through to the default group adjustment.
func ClassifyRisk(jobTitle, occCode string, percentChange *float64, unknownPolicy string) RiskRecord {
	var rec RiskRecord

	change := 0.0
	known := percentChange != nil
	if known {
		change = *percentChange
	}

	// Step 1: base bucket from projected growth.
	bucket := growthBuckets[len(growthBuckets)-1]
	for _, b := range growthBuckets {
		if change <= b.maxChange {
			bucket = b
			break
		}
	}
	rec.Year1Risk = bucket.year1Risk
	rec.Year5Risk = bucket.year5Risk
	rec.RiskCategory = bucket.category
	rec.GrowthAnalysis = bucket.analysis
	if known || unknownPolicy != GrowthPolicyUnknown {
		if bucket.protective {
			rec.ProtectiveFactors = append(rec.ProtectiveFactors, bucket.factor)
		} else {
			rec.RiskFactors = append(rec.RiskFactors, bucket.factor)
		}
	} else {
		rec.GrowthAnalysis = "No employment projection available"
	}

	// Step 2: occupation-group adjustment.
	adj, ok := groupAdjustments[SOCMajorGroup(occCode)]
	if !ok {
		adj = defaultGroupAdjustment
	}
	if adj.overwrite {
		rec.Year1Risk = adj.overwriteYear1
		rec.Year5Risk = adj.overwriteYear5
	} else {
		rec.Year1Risk += adj.deltaYear1
		rec.Year5Risk += adj.deltaYear5
	}
	rec.AutomationProbability = adj.automationProbability
	rec.WageTrend = adj.wageTrend
	rec.EvolvingSkills = append(rec.EvolvingSkills, adj.evolvingSkills...)
	rec.RiskFactors = append(rec.RiskFactors, adj.riskFactors...)
	rec.ProtectiveFactors = append(rec.ProtectiveFactors, adj.protectiveFactors...)

	// Step 3: clamp and restore ordering.
	rec.Year1Risk = clamp(rec.Year1Risk, minYear1Risk, maxYear1Risk)
	rec.Year5Risk = clamp(rec.Year5Risk, minYear5Risk, maxYear5Risk)
	if rec.Year5Risk < rec.Year1Risk+riskGap {
		rec.Year5Risk = rec.Year1Risk + riskGap
	}

	// Step 4: narrative, driven by category alone.
	rec.Analysis = analysisText(jobTitle, rec.RiskCategory)

	return rec
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func analysisText(jobTitle, category string) string {
	switch category {
	case "Very High":
		return fmt.Sprintf("%ss face extremely high displacement risk as AI and automation technologies advance rapidly. Within 5 years, most routine aspects of this role may be automated.", jobTitle)
	case "High":
		return fmt.Sprintf("%ss face significant displacement risk, though roles requiring complex judgment and specialized skills will be more resilient to automation.", jobTitle)
	case "Moderate":
		return fmt.Sprintf("%ss face moderate automation risk. While some aspects of the role may be automated, human expertise will remain valuable, especially for complex tasks.", jobTitle)
	default:
		return fmt.Sprintf("%ss have relatively low displacement risk due to the complexity, creativity, or human elements required in this role. Technology will likely augment rather than replace these positions.", jobTitle)
	}
}
