package signals

import (
	"regexp"
	"slices"
	"strings"

	"github.com/spigell/jobfit/internal/textnorm"
)

// Short names candidates use for their targets that the posting table does not cover.
var targetAliases = []FunctionRule{
	{Function: FunctionIBPE, Pattern: textnorm.PhraseRegexp("banking", "ib", "pe", "buy side", "buy-side")},
	{Function: FunctionFinanceAccounting, Pattern: textnorm.PhraseRegexp("finance", "fp&a", "corporate development")},
	{Function: FunctionConsulting, Pattern: textnorm.PhraseRegexp("strategy")},
	{Function: FunctionSoftwareData, Pattern: textnorm.PhraseRegexp("data", "software", "engineering", "analytics")},
	{Function: FunctionBrandMarketing, Pattern: textnorm.PhraseRegexp("brand", "advertising", "communications")},
	{Function: FunctionProgramOps, Pattern: textnorm.PhraseRegexp("ops", "project management", "program management")},
	{Function: FunctionGovernment, Pattern: textnorm.PhraseRegexp("policy", "public service")},
	{Function: FunctionClinical, Pattern: textnorm.PhraseRegexp("healthcare", "medicine", "pre-med")},
	{Function: FunctionResearch, Pattern: textnorm.PhraseRegexp("research")},
}

var (
	targetLead     = regexp.MustCompile(`\b(?:target(?:ed)?\s+roles?|targeting|target\s+functions?|interested\s+in|seeking\s+(?:roles?|positions?|opportunities)\s+in|looking\s+for\s+(?:roles?|positions?)\s+in)\s*:?\s*([^.;!?\n]+)`)
	targetSplitter = regexp.MustCompile(`\s*(?:,|/|\bor\b|\band\b|&|\|)\s*`)
)

// ParseTargets returns the functions a candidate declared, in first-seen order.
// Explicit hints win over prose.
func ParseTargets(hints []string, profileText string) []Function {
	raw := hints
	if len(nonBlank(raw)) == 0 {
		raw = targetsFromProse(textnorm.Normalize(profileText))
	}

	var out []Function
	for _, item := range nonBlank(raw) {
		f := classifyTarget(textnorm.Normalize(item))
		if f == FunctionUnknown || slices.Contains(out, f) {
			continue
		}
		out = append(out, f)
	}

	return out
}

// AlignTargets compares the job function against the declared targets.
func AlignTargets(job Function, targets []Function) TargetAlignment {
	if len(targets) == 0 || job == FunctionUnknown {
		return TargetUnclear
	}
	if slices.Contains(targets, job) {
		return TargetOn
	}
	return TargetOff
}

func targetsFromProse(normalized string) []string {
	var out []string
	for _, m := range targetLead.FindAllStringSubmatch(normalized, -1) {
		out = append(out, targetSplitter.Split(m[1], -1)...)
	}
	return out
}

func classifyTarget(normalized string) Function {
	if f := classifyFunction(normalized, FunctionRules); f != FunctionUnknown {
		return f
	}
	return classifyFunction(normalized, targetAliases)
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
