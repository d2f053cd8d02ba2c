package signals

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/jobfit/internal/textnorm"
)

// ProfileConstraints are the candidate's hard exclusions and soft preferences.
type ProfileConstraints struct {
	HardNoHourlyPay    bool               `json:"hard_no_hourly_pay"`
	PrefFullTime       bool               `json:"pref_full_time"`
	HardNoContract     bool               `json:"hard_no_contract"`
	HardNoSales        bool               `json:"hard_no_sales"`
	HardNoGovernment   bool               `json:"hard_no_government"`
	HardNoFullyRemote  bool               `json:"hard_no_fully_remote"`
	LocationConstraint LocationConstraint `json:"location_constraint"`
}

// Negation is a phrase that turns a following topic keyword into an exclusion.
// MaxGapWords bounds how many words may sit between the phrase and the keyword.
type Negation struct {
	Phrase      string
	MaxGapWords int
}

// NegationTemplates trade recall for precision: an exclusion only counts
// when one of these phrases directly precedes a topic keyword.
//
//nolint:gochecknoglobals // tuning table
var NegationTemplates = []Negation{
	{Phrase: "no", MaxGapWords: 0},
	{Phrase: "no more", MaxGapWords: 2},
	{Phrase: "do not want", MaxGapWords: 3},
	{Phrase: "don't want", MaxGapWords: 3},
	{Phrase: "not interested in", MaxGapWords: 3},
	{Phrase: "hard exclusion", MaxGapWords: 4},
	{Phrase: "hard no", MaxGapWords: 3},
	{Phrase: "avoid", MaxGapWords: 2},
	{Phrase: "exclude", MaxGapWords: 3},
}

type topic int

const (
	topicHourly topic = iota
	topicContract
	topicSales
	topicGovernment
	topicFullyRemote
)

var topicKeywords = map[topic][]string{
	topicHourly:      {"hourly", "per hour", "hourly pay", "hourly roles", "hourly wage"},
	topicContract:    {"contract", "contracts", "contractor", "contract roles", "contract work", "1099", "temp", "temporary"},
	topicSales:       {"sales", "commission", "commissions", "commission-based", "quota", "cold calling"},
	topicGovernment:  {"government", "federal", "public sector", "civil service"},
	topicFullyRemote: {"fully remote", "remote only", "remote roles", "remote work", "remote jobs", "remote"},
}

var (
	fullTimePreference = regexp.MustCompile(`\b(?:prefer(?:ring|s)?|seeking|looking\s+for|want(?:ing)?|only)\b(?:\s+\S+){0,3}?\s+full[\s-]time\b|\bfull[\s-]time\s+(?:only|roles?|positions?|employment)\b`)

	locationConstrained = textnorm.Compile(
		"cannot relocate", "can't relocate", "unable to relocate", "not able to relocate", "no relocation",
		"not willing to relocate", "not open to relocation", "must stay in", "must remain in",
		"need to stay in", "need to stay near",
	)
	locationOpen = textnorm.Compile(
		"willing to relocate", "open to relocate", "open to relocation", "open to relocating",
		"happy to relocate", "anywhere in the", "location flexible", "flexible on location",
	)
)

// ExtractProfileConstraints reads exclusions and preferences from profile prose.
func ExtractProfileConstraints(profileText string) ProfileConstraints {
	normalized := textnorm.Normalize(profileText)

	c := ProfileConstraints{
		HardNoHourlyPay:   negated(normalized, topicHourly),
		HardNoContract:    negated(normalized, topicContract),
		HardNoSales:       negated(normalized, topicSales),
		HardNoGovernment:  negated(normalized, topicGovernment),
		HardNoFullyRemote: negated(normalized, topicFullyRemote),
		PrefFullTime:      fullTimePreference.MatchString(normalized),
	}

	// "open to relocation" wins over incidental constraint wording such as "only in".
	switch {
	case locationOpen.Any(normalized):
		c.LocationConstraint = LocationNotConstrained
	case locationConstrained.Any(normalized):
		c.LocationConstraint = LocationConstrained
	default:
		c.LocationConstraint = LocationUnclear
	}

	return c
}

var negationPatterns = buildNegationPatterns()

func buildNegationPatterns() map[topic]*regexp.Regexp {
	out := make(map[topic]*regexp.Regexp, len(topicKeywords))
	for t, kws := range topicKeywords {
		out[t] = negationPattern(NegationTemplates, kws)
	}
	return out
}

// NegationPattern compiles the conjunction of negation templates and keywords.
// It is exported so callers adjusting NegationTemplates can rebuild matchers.
func NegationPattern(templates []Negation, keywords []string) *regexp.Regexp {
	return negationPattern(templates, keywords)
}

func negationPattern(templates []Negation, keywords []string) *regexp.Regexp {
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		kw = append(kw, strings.ReplaceAll(regexp.QuoteMeta(k), " ", `\s+`))
	}

	alts := make([]string, 0, len(templates))
	for _, n := range templates {
		phrase := strings.ReplaceAll(regexp.QuoteMeta(n.Phrase), " ", `\s+`)
		gap := `(?:[\s:,-]+[^\s.;!?]+){0,` + strconv.Itoa(max(n.MaxGapWords, 0)) + `}?`
		alts = append(alts, `\b`+phrase+gap+`[\s:,-]+(?:`+strings.Join(kw, "|")+`)\b`)
	}

	return regexp.MustCompile(`(?:` + strings.Join(alts, "|") + `)`)
}

// "no sales experience" describes a gap, not an exclusion.
var describesGap = regexp.MustCompile(`^[\s,-]*(?:experience|background|exposure|knowledge|skills)\b`)

func negated(normalized string, t topic) bool {
	re, ok := negationPatterns[t]
	if !ok {
		return false
	}
	for _, loc := range re.FindAllStringIndex(normalized, -1) {
		if describesGap.MatchString(normalized[loc[1]:]) {
			continue
		}
		return true
	}
	return false
}
