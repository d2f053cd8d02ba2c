package signals

import (
	"strings"

	"github.com/spigell/jobfit/internal/textnorm"
)

var schoolAllowlist = []struct {
	tier    SchoolTier
	schools textnorm.PhraseSet
}{
	{SchoolTierS, textnorm.Compile(
		"harvard", "stanford", "massachusetts institute of technology", "mit", "wharton",
		"university of pennsylvania", "upenn", "princeton", "yale", "columbia university",
		"university of chicago", "uchicago",
	)},
	{SchoolTierA, textnorm.Compile(
		"duke", "dartmouth", "cornell", "brown university", "northwestern", "georgetown", "nyu stern",
		"university of michigan", "ross school of business", "uc berkeley", "berkeley haas",
		"university of virginia", "mcintire", "notre dame", "vanderbilt", "rice university", "emory",
		"carnegie mellon",
	)},
}

// MaxGPA is the highest GPA accepted as a hint. Weighted scales above 4.0
// are common, anything past this is treated as a typo.
const MaxGPA = 4.5

// ResolveSchoolTier prefers an explicit tier letter and otherwise looks for a
// known school name in the profile. Unrecognised schools stay unknown.
func ResolveSchoolTier(hint string, profileText string) SchoolTier {
	switch SchoolTier(strings.ToUpper(strings.TrimSpace(hint))) {
	case SchoolTierS:
		return SchoolTierS
	case SchoolTierA:
		return SchoolTierA
	case SchoolTierB:
		return SchoolTierB
	case SchoolTierC:
		return SchoolTierC
	}

	normalized := textnorm.Normalize(profileText)
	for _, entry := range schoolAllowlist {
		if entry.schools.Any(normalized) {
			return entry.tier
		}
	}

	return SchoolTierUnknown
}

// ResolveGPABand prefers an explicit band, then a GPA decimal. GPA is never
// guessed from profile prose.
func ResolveGPABand(band string, gpa *float64) GPABand {
	switch b := GPABand(strings.ToLower(strings.TrimSpace(band))); b {
	case GPA38Plus, GPA35To379, GPA30To349, GPABelow30:
		return b
	}

	if gpa == nil || *gpa <= 0 || *gpa > MaxGPA {
		return GPAUnknown
	}

	switch g := *gpa; {
	case g >= 3.8:
		return GPA38Plus
	case g >= 3.5:
		return GPA35To379
	case g >= 3.0:
		return GPA30To349
	default:
		return GPABelow30
	}
}
