package alignment

import (
	"regexp"

	"github.com/spigell/jobfit/internal/signals"
	"github.com/spigell/jobfit/internal/textnorm"
)

// DepthLabel buckets a depth score.
type DepthLabel string

const (
	DepthStrong   DepthLabel = "strong"
	DepthModerate DepthLabel = "moderate"
	DepthWeak     DepthLabel = "weak"
)

// AtLeast reports whether l is the same as or better than other.
func (l DepthLabel) AtLeast(other DepthLabel) bool {
	return depthRank[l] >= depthRank[other]
}

var depthRank = map[DepthLabel]int{DepthWeak: 0, DepthModerate: 1, DepthStrong: 2}

const (
	maxDepth      = 10
	strongDepth   = 6
	moderateDepth = 3
)

//nolint:gochecknoglobals // keyword tables shared with weak categories
var (
	internshipPhrases = textnorm.Compile("internship", "internships", "intern", "summer analyst", "co-op", "externship")
	leadershipPhrases = textnorm.Compile(
		"president", "vice president", "founder", "co-founder", "captain", "chair", "chairman", "head of",
		"team lead", "led", "treasurer", "director", "officer",
	)
	internshipMention = regexp.MustCompile(`\b(?:internships?|intern|summer\s+analyst|co-?op|externship)\b`)
	quantified        = regexp.MustCompile(`\d+(?:\.\d+)?\s?%|\$\s?\d`)
)

// Indicator is one weighted piece of depth evidence.
type Indicator struct {
	Name    string
	Weight  int
	Present func(profile string) bool
}

func phrasesIndicator(name string, weight int, set textnorm.PhraseSet) Indicator {
	return Indicator{Name: name, Weight: weight, Present: set.Any}
}

// Indicators are summed in order to build the depth score.
//
//nolint:gochecknoglobals // weight table
var Indicators = []Indicator{
	phrasesIndicator("internship", 2, internshipPhrases),
	phrasesIndicator("work_title", 1, textnorm.Compile(
		"analyst", "associate", "assistant", "coordinator", "consultant", "specialist", "engineer",
		"developer", "accountant", "representative", "manager",
	)),
	phrasesIndicator("leadership", 1, leadershipPhrases),
	phrasesIndicator("project", 1, textnorm.Compile("project", "projects", "case competition", "capstone", "stock pitch")),
	phrasesIndicator("research", 1, textnorm.Compile("research", "thesis", "published", "publication")),
	phrasesIndicator("academic", 1, textnorm.Compile(
		"gpa", "dean's list", "deans list", "honors", "cum laude", "scholarship", "scholar", "coursework",
	)),
	{Name: "second_internship", Weight: 1, Present: func(profile string) bool {
		return len(internshipMention.FindAllStringIndex(profile, -1)) >= 2
	}},
	{Name: "quantified_outcome", Weight: 1, Present: quantified.MatchString},
}

// Depth is the evidence depth of a profile.
type Depth struct {
	Score      int        `json:"score"`
	Label      DepthLabel `json:"label"`
	Indicators []string   `json:"indicators,omitempty"`
}

// ScoreDepth sums indicator weights, adjusts them for the posting's seniority
// and clamps the result to 0..10.
func ScoreDepth(profileText string, seniority signals.Seniority) Depth {
	profile := textnorm.Normalize(profileText)

	var d Depth
	for _, ind := range Indicators {
		if ind.Present(profile) {
			d.Score += ind.Weight
			d.Indicators = append(d.Indicators, ind.Name)
		}
	}

	switch seniority {
	case signals.SeniorityExperienced:
		d.Score--
	case signals.SeniorityInternship:
		d.Score++
	}

	d.Score = clamp(d.Score, 0, maxDepth)
	d.Label = LabelFor(d.Score)

	return d
}

// LabelFor buckets a score.
func LabelFor(score int) DepthLabel {
	switch {
	case score >= strongDepth:
		return DepthStrong
	case score >= moderateDepth:
		return DepthModerate
	default:
		return DepthWeak
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
