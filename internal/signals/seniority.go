package signals

import (
	"regexp"

	"github.com/spigell/jobfit/internal/textnorm"
)

type seniorityRule struct {
	seniority Seniority
	pattern   *regexp.Regexp
	// reject drops matches that describe something other than the role's experience bar.
	reject *regexp.Regexp
}

const yearsWord = `\s*(?:\+\s*)?(?:years?|yrs?)\b`

// Order matters: "0-1 years" must be read as entry before any experienced rule sees the "1".
var seniorityRules = []seniorityRule{
	{
		seniority: SeniorityInternship,
		pattern:   regexp.MustCompile(`\b(?:interns?|internships?|co-op|summer analyst|summer associate)\b`),
		reject:    regexp.MustCompile(`\b(?:prior|previous|past|relevant|completed|former)\s+(?:\w+\s+){0,2}internships?\b|\binternships?\s+experience\b`),
	},
	{seniority: SeniorityEntry, pattern: regexp.MustCompile(`\b0\s*(?:-|–|to)\s*[12]` + yearsWord + `|\bentry[\s-]level\b|\bnew\s+grad(?:uate)?s?\b|\bno\s+(?:prior\s+)?experience\s+(?:is\s+)?required\b|\brecent\s+graduates?\b`)},
	{seniority: SeniorityEarlyCareer, pattern: regexp.MustCompile(`\b[12]\s*(?:-|–|to)\s*[234]` + yearsWord + `|\b[12]\s*\+` + yearsWord + `|\b[12]` + yearsWord + `\s+of\s+(?:relevant\s+|professional\s+)?experience`)},
	{
		seniority: SeniorityExperienced,
		pattern:   regexp.MustCompile(`\b(?:[3-9]|[1-9]\d)\s*(?:\+|(?:-|–|to)\s*\d{1,2})?` + yearsWord),
		reject:    regexp.MustCompile(`\b(?:years?|yrs?)\s+(?:\w+\s+)?(?:degree|program|programme|college|university|institution|bachelor'?s?|course|curriculum)\b|\b(?:years?|yrs?)\s+old\b`),
	},
}

// ClassifySeniority reads the experience band implied by years-of-experience phrasing.
func ClassifySeniority(jobText string) Seniority {
	normalized := textnorm.Normalize(jobText)
	for _, rule := range seniorityRules {
		for _, loc := range rule.pattern.FindAllStringIndex(normalized, -1) {
			if rule.reject != nil && excludedAround(normalized, loc, rule.reject) {
				continue
			}
			return rule.seniority
		}
	}
	return SeniorityUnknown
}
