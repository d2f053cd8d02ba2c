package signals

import (
	"regexp"

	"github.com/spigell/jobfit/internal/textnorm"
)

// FunctionRule maps patterns to a job function. Pattern holds role phrases;
// Fallback holds bare words that only count when no rule's Pattern matched.
type FunctionRule struct {
	Function Function
	Pattern  *regexp.Regexp
	Fallback *regexp.Regexp
}

// FunctionRules are evaluated in order, first by Pattern across all rules and
// then by Fallback. A posting that merely mentions "the sales team" is
// classified by its role phrases before the bare word is considered.
//
//nolint:gochecknoglobals // classification table
var FunctionRules = []FunctionRule{
	{
		Function: FunctionIBPE,
		Pattern: textnorm.PhraseRegexp(
			"investment banking", "investment bank", "private equity", "m&a", "mergers and acquisitions",
			"leveraged finance", "capital markets", "ib analyst", "pe associate", "growth equity",
		),
	},
	{
		Function: FunctionConsulting,
		Pattern: textnorm.PhraseRegexp(
			"management consulting", "strategy consulting", "consulting analyst", "business analyst consultant",
			"associate consultant",
		),
		Fallback: textnorm.PhraseRegexp("consultant", "consulting"),
	},
	{
		Function: FunctionRealEstate,
		Pattern: textnorm.PhraseRegexp(
			"commercial real estate", "real estate", "cre", "property management", "reit", "acquisitions analyst",
		),
	},
	{
		Function: FunctionFinanceAccounting,
		Pattern: textnorm.PhraseRegexp(
			"financial analyst", "finance analyst", "fp&a", "accounting", "accountant", "audit", "tax associate",
			"controller", "treasury", "corporate finance", "credit analyst",
		),
	},
	{
		Function: FunctionSales,
		Pattern: textnorm.PhraseRegexp(
			"sales representative", "sales development", "account executive", "business development representative",
			"sdr", "bdr", "inside sales", "sales associate", "outside sales", "sales analyst", "sales role",
		),
		Fallback: textnorm.PhraseRegexp("sales"),
	},
	{
		Function: FunctionMarketingAnalytics,
		Pattern: textnorm.PhraseRegexp(
			"marketing analytics", "marketing analyst", "growth analyst", "digital marketing analyst",
			"performance marketing", "seo", "sem", "marketing data",
		),
	},
	{
		Function: FunctionBrandMarketing,
		Pattern: textnorm.PhraseRegexp(
			"brand marketing", "brand manager", "brand associate", "marketing coordinator", "social media",
			"content marketing", "marketing assistant",
		),
		Fallback: textnorm.PhraseRegexp("marketing"),
	},
	{
		Function: FunctionSoftwareData,
		Pattern: textnorm.PhraseRegexp(
			"software engineer", "software developer", "data analyst", "data scientist", "data engineer",
			"machine learning", "web developer",
		),
		Fallback: textnorm.PhraseRegexp("developer"),
	},
	{
		Function: FunctionClinical,
		Pattern: textnorm.PhraseRegexp(
			"clinical", "patient care", "medical assistant", "nurse", "nursing", "emt", "phlebotom", "scribe",
		),
	},
	{
		Function: FunctionResearch,
		Pattern: textnorm.PhraseRegexp(
			"research assistant", "research associate", "research analyst", "laboratory", "lab technician",
			"research coordinator",
		),
	},
	{
		Function: FunctionCustomerSuccess,
		Pattern: textnorm.PhraseRegexp(
			"customer success", "client success", "customer support", "customer service", "client services",
			"account manager",
		),
	},
	{
		Function: FunctionGovernment,
		Pattern: textnorm.PhraseRegexp(
			"public sector", "federal agency", "state agency", "policy analyst", "legislative",
			"public administration",
		),
		Fallback: textnorm.PhraseRegexp("government"),
	},
	{
		Function: FunctionProgramOps,
		Pattern: textnorm.PhraseRegexp(
			"program coordinator", "program associate", "operations analyst", "operations associate",
			"project coordinator", "program manager", "operations coordinator",
		),
		Fallback: textnorm.PhraseRegexp("operations"),
	},
}

// ClassifyFunction returns the job function the text is about.
func ClassifyFunction(text string) Function {
	return classifyFunction(textnorm.Normalize(text), FunctionRules)
}

func classifyFunction(normalized string, rules []FunctionRule) Function {
	if normalized == "" {
		return FunctionUnknown
	}
	for _, rule := range rules {
		if rule.Pattern != nil && rule.Pattern.MatchString(normalized) {
			return rule.Function
		}
	}
	for _, rule := range rules {
		if rule.Fallback != nil && rule.Fallback.MatchString(normalized) {
			return rule.Function
		}
	}
	return FunctionUnknown
}
