package signals

import (
	"regexp"

	"github.com/spigell/jobfit/internal/textnorm"
)

// JobFacts are structural facts about a posting.
type JobFacts struct {
	IsHourly         bool   `json:"is_hourly"`
	HourlyEvidence   string `json:"hourly_evidence,omitempty"`
	IsContract       bool   `json:"is_contract"`
	ContractEvidence string `json:"contract_evidence,omitempty"`
	IsFullyRemote    bool   `json:"is_fully_remote"`
	IsCommission     bool   `json:"is_commission"`
	IsGovernment     bool   `json:"is_government"`
}

// Patterns run against the raw text so evidence keeps its original casing.
var (
	hourlyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\$\s?\d+(?:\.\d{1,2})?(?:\s?(?:-|–|to)\s?\$?\s?\d+(?:\.\d{1,2})?)?\s?(?:/|per\s+|an\s+|a\s+)\s?(?:hr|hour)\b`),
		regexp.MustCompile(`(?i)\bhourly\s+(?:rate|pay|wage|compensation|position|role)\b`),
		regexp.MustCompile(`(?i)\bpaid\s+hourly\b`),
		regexp.MustCompile(`(?i)\bpay:?\s+hourly\b`),
		regexp.MustCompile(`(?i)\b\d+(?:\.\d{1,2})?\s*(?:/|per\s+)\s*(?:hr|hour)\b`),
		regexp.MustCompile(`(?i)\bhourly\b`),
	}

	// Phrases where "hourly" is a cadence rather than the pay structure.
	nonPayHourly = regexp.MustCompile(`(?i)\bhourly\s+(?:reports?|reporting|updates?|data|checks?|rounds?|logs?|readings?|snapshots?|intervals?|forecasts?|volumes?|dashboards?|monitoring|backups?)\b|\b(?:on|at)\s+an\s+hourly\s+cadence\b`)

	contractPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:\d{1,2}|three|six|nine|twelve)[\s-]+(?:month|week)s?\s+contract\b`),
		regexp.MustCompile(`(?i)\bcontract(?:\s+|-)(?:role|position|assignment|basis|to[\s-]+hire|employee|opportunity|job|engagement)\b`),
		regexp.MustCompile(`(?i)\btemp(?:orary)?(?:\s+|-)(?:to[\s-]+hire|role|position|assignment|job|employee)\b`),
		regexp.MustCompile(`(?i)\bemployment\s+type:?\s+(?:contract|temporary|temp)\b`),
		regexp.MustCompile(`(?i)\b1099\b`),
		regexp.MustCompile(`(?i)\bthis\s+is\s+a\s+contract\b`),
	}

	// Phrases where "contract" is the work product rather than the employment type.
	nonEmploymentContract = regexp.MustCompile(`(?i)\b(?:draft(?:ing)?|review(?:ing)?|negotiat(?:e|ing|ion)|manag(?:e|ing))\s+(?:a\s+|the\s+)?contracts?\b|\bcontracts?\s+(?:review|negotiation|management|manager|administrator|law)\b`)

	remotePhrases = textnorm.Compile("fully remote", "fully-remote", "100% remote", "work from home", "remote-only position", "remote only role")

	commissionPhrases = textnorm.Compile(
		"commission-based", "commission based", "commission only", "commission-only", "base + commission",
		"base plus commission", "uncapped commission", "ote", "on-target earnings", "on target earnings",
	)

	governmentPhrases = textnorm.Compile(
		"federal agency", "state agency", "public sector", "government agency", "department of",
		"city of", "county of", "civil service", "municipal government",
	)
)

// ExtractJobFacts reads hourly/contract/remote structure from the posting text.
func ExtractJobFacts(jobText string) JobFacts {
	normalized := textnorm.Normalize(jobText)

	facts := JobFacts{
		IsFullyRemote: remotePhrases.Any(normalized),
		IsCommission:  commissionPhrases.Any(normalized),
		IsGovernment:  governmentPhrases.Any(normalized),
	}

	if ev, ok := firstEvidence(jobText, hourlyPatterns, nonPayHourly); ok {
		facts.IsHourly = true
		facts.HourlyEvidence = ev
	}

	if ev, ok := firstEvidence(jobText, contractPatterns, nonEmploymentContract); ok {
		facts.IsContract = true
		facts.ContractEvidence = ev
	}

	return facts
}

func firstEvidence(raw string, patterns []*regexp.Regexp, exclude *regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(raw, -1) {
			if exclude != nil && excludedAround(raw, loc, exclude) {
				continue
			}
			return textnorm.Collapse(raw[loc[0]:loc[1]]), true
		}
	}
	return "", false
}

// excludedAround reports whether the match sits inside an excluded phrase.
func excludedAround(raw string, loc []int, exclude *regexp.Regexp) bool {
	start := max(loc[0]-40, 0)
	end := min(loc[1]+40, len(raw))
	for _, ex := range exclude.FindAllStringIndex(raw[start:end], -1) {
		exStart, exEnd := ex[0]+start, ex[1]+start
		if exStart < loc[1] && exEnd > loc[0] {
			return true
		}
	}
	return false
}
