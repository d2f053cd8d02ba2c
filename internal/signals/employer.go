package signals

import "github.com/spigell/jobfit/internal/textnorm"

type tierRule struct {
	tier    EmployerTier
	phrases textnorm.PhraseSet
}

// Checked in order; the first tier with a hit wins.
var tierRules = []tierRule{
	{
		tier: TierOne,
		phrases: textnorm.Compile(
			"goldman sachs", "morgan stanley", "j.p. morgan", "jp morgan", "jpmorgan", "bank of america",
			"citigroup", "citi", "barclays", "ubs", "deutsche bank", "evercore", "lazard", "centerview",
			"pjt partners", "moelis", "blackstone", "kkr", "mckinsey", "bain & company", "bain and company",
			"boston consulting group", "bcg", "private equity", "m&a", "mergers and acquisitions",
			"mergers & acquisitions",
		),
	},
	{
		tier: TierTwo,
		phrases: textnorm.Compile(
			"rotational program", "rotation program", "rotational analyst", "leadership development program",
			"ldp", "analyst development program", "leadership rotation",
		),
	},
}

// InferEmployerTier classifies employer competitiveness from the posting.
// A valid override always wins; anything unrecognised is tier 3.
func InferEmployerTier(jobText string, override EmployerTier) EmployerTier {
	if override.Valid() {
		return override
	}

	normalized := textnorm.Normalize(jobText)
	for _, rule := range tierRules {
		if rule.phrases.Any(normalized) {
			return rule.tier
		}
	}

	return TierThree
}
