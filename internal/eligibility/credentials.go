package eligibility

import (
	"regexp"
	"strings"

	"github.com/spigell/jobfit/internal/textnorm"
)

// Credential is an unambiguous license or certification a posting can require.
// Work authorization and driving licenses are deliberately not listed.
type Credential struct {
	Name    string
	Pattern *regexp.Regexp
}

// Credentials is the allowlist scanned in job text, in reporting order.
var Credentials = []Credential{
	{Name: "CPA", Pattern: regexp.MustCompile(`\bcpa\b|certified public accountant`)},
	{Name: "PMP", Pattern: regexp.MustCompile(`\bpmp\b|project management professional`)},
	{Name: "CFA charter", Pattern: regexp.MustCompile(`\bcfa\b|chartered financial analyst`)},
	{Name: "Series 7", Pattern: regexp.MustCompile(`\bseries\s*7\b`)},
	{Name: "Series 63", Pattern: regexp.MustCompile(`\bseries\s*63\b`)},
	{Name: "Series 79", Pattern: regexp.MustCompile(`\bseries\s*79\b`)},
	{Name: "security clearance", Pattern: regexp.MustCompile(`\b(?:security|secret|top\s+secret|ts/sci)\s+clearance\b|\bts/sci\b`)},
	{Name: "RN license", Pattern: regexp.MustCompile(`\brn\b|registered\s+nurse`)},
	{Name: "EMT certification", Pattern: regexp.MustCompile(`\bemt\b|emergency medical technician`)},
	{Name: "real estate license", Pattern: regexp.MustCompile(`real\s+estate\s+(?:salesperson\s+|agent\s+|broker\s+)?licen[cs]e`)},
	{Name: "PE license", Pattern: regexp.MustCompile(`\bpe\s+licen[cs]e\b|professional\s+engineer\s+licen[cs]e|licensed\s+professional\s+engineer`)},
	{Name: "bar admission", Pattern: regexp.MustCompile(`\bbar\s+admission\b|admitted\s+to\s+(?:the|a|any)\s+(?:\w+\s+)?bar\b|licensed\s+attorney`)},
}

var (
	// Sentences carrying any of these describe a preference or a credential
	// to be earned on the job, not one the candidate must already hold.
	softRequirement = textnorm.Compile(
		"preferred", "a plus", "nice to have", "working toward", "working towards", "pursuing", "bonus",
		"obtain", "acquire", "ability to obtain", "ability to earn", "eligible for", "eligibility",
		"progress toward", "progress towards", "upon hire",
	)
	sentenceSplit = regexp.MustCompile(`[.;!?\n]+`)
)

// RequiredCredentials lists credentials the job text states as hard
// requirements. Sentences phrased as preferences are skipped.
func RequiredCredentials(jobText string) []string {
	return requiredIn(Credentials, textnorm.Normalize(jobText))
}

func requiredIn(list []Credential, normalized string) []string {
	seen := make(map[string]bool, len(list))
	for _, sentence := range sentenceSplit.Split(normalized, -1) {
		if strings.TrimSpace(sentence) == "" || softRequirement.Any(sentence) {
			continue
		}
		for _, c := range list {
			if c.Pattern.MatchString(sentence) {
				seen[c.Name] = true
			}
		}
	}

	// allowlist order regardless of where the sentence was
	var required []string
	for _, c := range list {
		if seen[c.Name] {
			required = append(required, c.Name)
		}
	}
	return required
}

// MissingCredentials returns required credentials the profile never mentions.
func MissingCredentials(jobText, profileText string) []string {
	profile := textnorm.Normalize(profileText)

	var missing []string
	for _, name := range RequiredCredentials(jobText) {
		c := credentialByName(name)
		if c == nil || c.Pattern.MatchString(profile) {
			continue
		}
		missing = append(missing, name)
	}
	return missing
}

func credentialByName(name string) *Credential {
	for i := range Credentials {
		if Credentials[i].Name == name {
			return &Credentials[i]
		}
	}
	return nil
}

// MissingReason renders the terminal reason for missing credentials.
func MissingReason(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return "Posting explicitly requires " + strings.Join(missing, ", ") + ", which your profile does not show."
}
