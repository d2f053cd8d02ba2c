// Package alignment scores how closely a candidate's evidence matches a job
// function and how much credible depth sits behind that evidence.
package alignment

import (
	"slices"

	"github.com/spigell/jobfit/internal/signals"
	"github.com/spigell/jobfit/internal/textnorm"
)

// Level is the categorical closeness between profile evidence and the job function.
type Level string

const (
	LevelDirect         Level = "direct"
	LevelStrongAdjacent Level = "strong_adjacent"
	LevelWeakAdjacent   Level = "weak_adjacent"
	LevelNone           Level = "none"
)

// minWeakCategories is how many distinct weak signal categories make a weak fit.
const minWeakCategories = 2

// DirectKeywords holds the profile keywords that prove direct experience in a function.
//
//nolint:gochecknoglobals // keyword table
var DirectKeywords = map[signals.Function]textnorm.PhraseSet{
	signals.FunctionIBPE: textnorm.Compile(
		"investment banking", "private equity", "financial modeling", "financial model", "dcf", "lbo",
		"valuation", "m&a", "pitch book", "pitchbook", "comparable companies", "precedent transactions",
		"capital markets", "leveraged buyout", "deal team",
	),
	signals.FunctionConsulting: textnorm.Compile(
		"consulting", "consultant", "case interview", "client engagement", "market sizing",
		"strategy project", "process improvement", "stakeholder interviews",
	),
	signals.FunctionRealEstate: textnorm.Compile(
		"real estate", "argus", "underwriting", "rent roll", "cap rate", "property management",
		"acquisitions", "reit", "leasing",
	),
	signals.FunctionFinanceAccounting: textnorm.Compile(
		"accounting", "audit", "fp&a", "financial analysis", "financial statements", "reconciliation",
		"budgeting", "forecasting", "general ledger", "tax", "treasury", "variance analysis",
	),
	signals.FunctionSales: textnorm.Compile(
		"sales", "quota", "cold calling", "prospecting", "lead generation", "crm", "salesforce",
		"business development", "closed deals",
	),
	signals.FunctionMarketingAnalytics: textnorm.Compile(
		"marketing analytics", "google analytics", "a/b test", "a/b testing", "seo", "sem", "campaign analysis",
		"attribution", "conversion rate", "digital marketing",
	),
	signals.FunctionBrandMarketing: textnorm.Compile(
		"brand", "branding", "social media", "content creation", "campaign", "marketing", "copywriting",
		"consumer insights",
	),
	signals.FunctionSoftwareData: textnorm.Compile(
		"python", "sql", "java", "javascript", "software", "data analysis", "machine learning", "tableau",
		"power bi", "r programming", "data pipeline", "dashboard",
	),
	signals.FunctionClinical: textnorm.Compile(
		"clinical", "patient", "hospital", "emt", "scribe", "nursing", "cna", "medical assistant", "phlebotomy",
	),
	signals.FunctionResearch: textnorm.Compile(
		"research", "lab", "laboratory", "thesis", "literature review", "published", "publication", "experiment",
	),
	signals.FunctionCustomerSuccess: textnorm.Compile(
		"customer success", "customer service", "client support", "onboarding", "account management",
		"customer experience", "help desk",
	),
	signals.FunctionGovernment: textnorm.Compile(
		"public policy", "policy", "government", "legislative", "city council", "public sector", "nonprofit",
	),
	signals.FunctionProgramOps: textnorm.Compile(
		"operations", "program coordination", "project management", "logistics", "scheduling",
		"process improvement", "event planning", "supply chain",
	),
}

// Adjacent lists functions whose direct evidence transfers strongly to a function.
//
//nolint:gochecknoglobals // adjacency table
var Adjacent = map[signals.Function][]signals.Function{
	signals.FunctionIBPE:               {signals.FunctionFinanceAccounting, signals.FunctionRealEstate},
	signals.FunctionFinanceAccounting:  {signals.FunctionIBPE, signals.FunctionRealEstate},
	signals.FunctionRealEstate:         {signals.FunctionIBPE, signals.FunctionFinanceAccounting},
	signals.FunctionConsulting:         {signals.FunctionProgramOps},
	signals.FunctionProgramOps:         {signals.FunctionConsulting},
	signals.FunctionMarketingAnalytics: {signals.FunctionBrandMarketing, signals.FunctionSoftwareData},
	signals.FunctionBrandMarketing:     {signals.FunctionMarketingAnalytics},
	signals.FunctionSales:              {signals.FunctionCustomerSuccess},
	signals.FunctionCustomerSuccess:    {signals.FunctionSales},
	signals.FunctionSoftwareData:       {signals.FunctionResearch},
	signals.FunctionResearch:           {signals.FunctionSoftwareData, signals.FunctionClinical},
	signals.FunctionClinical:           {signals.FunctionResearch},
	signals.FunctionGovernment:         {signals.FunctionProgramOps},
}

// WeakCategory is a generic signal that shows effort without proving function fit.
type WeakCategory struct {
	Name    string
	Phrases textnorm.PhraseSet
}

// WeakCategories are checked in order.
//
//nolint:gochecknoglobals // keyword table
var WeakCategories = []WeakCategory{
	{Name: "project", Phrases: textnorm.Compile("project", "projects", "capstone", "case competition", "stock pitch")},
	{Name: "leadership", Phrases: leadershipPhrases},
	{Name: "analysis", Phrases: textnorm.Compile("analysis", "analyzed", "analytical", "excel", "modeling", "data", "research")},
	{Name: "internship", Phrases: internshipPhrases},
}

// Result is the alignment assessment of a profile against a job function.
type Result struct {
	Level Level `json:"level"`
	// DirectHits are direct keywords of the job function found in the profile.
	DirectHits []string `json:"direct_hits,omitempty"`
	// AdjacentHits are direct keywords of adjacent functions found in the profile.
	AdjacentHits []string `json:"adjacent_hits,omitempty"`
	// WeakSignals are weak categories present in the profile.
	WeakSignals []string `json:"weak_signals,omitempty"`
	// Pairings are direct keywords present in both the job and the profile.
	Pairings []string `json:"pairings,omitempty"`
}

// Assess classifies profile evidence against the job's function.
func Assess(job signals.Function, jobText, profileText string) Result {
	profile := textnorm.Normalize(profileText)
	posting := textnorm.Normalize(jobText)

	res := Result{Level: LevelNone}

	if direct, ok := DirectKeywords[job]; ok {
		res.DirectHits = direct.Matches(profile)
		inPosting := direct.Matches(posting)
		for _, hit := range res.DirectHits {
			if slices.Contains(inPosting, hit) {
				res.Pairings = append(res.Pairings, hit)
			}
		}
	}

	for _, fn := range Adjacent[job] {
		res.AdjacentHits = appendUnique(res.AdjacentHits, DirectKeywords[fn].Matches(profile)...)
	}

	for _, c := range WeakCategories {
		if c.Phrases.Any(profile) {
			res.WeakSignals = append(res.WeakSignals, c.Name)
		}
	}

	switch {
	case len(res.DirectHits) > 0:
		res.Level = LevelDirect
	case len(res.AdjacentHits) > 0:
		res.Level = LevelStrongAdjacent
	case len(res.WeakSignals) >= minWeakCategories:
		res.Level = LevelWeakAdjacent
	}

	return res
}

func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		dup := false
		for _, existing := range dst {
			if existing == item {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, item)
		}
	}
	return dst
}
