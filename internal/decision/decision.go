// Package decision resolves the categorical recommendation from the decision
// matrix, applies gate ceilings and assigns a banded score.
package decision

import (
	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/signals"
)

// Decision is the final recommendation. Values are ordered from weakest to strongest.
type Decision int

const (
	Pass Decision = iota
	Review
	Apply
	PriorityApply
)

var names = map[Decision]string{
	Pass:          "Pass",
	Review:        "Review",
	Apply:         "Apply",
	PriorityApply: "Priority Apply",
}

var icons = map[Decision]string{
	Pass:          "⛔",
	Review:        "🟡",
	Apply:         "✅",
	PriorityApply: "🚀",
}

func (d Decision) String() string {
	if n, ok := names[d]; ok {
		return n
	}
	return names[Review]
}

// Icon is the emoji shown next to the decision.
func (d Decision) Icon() string {
	if i, ok := icons[d]; ok {
		return i
	}
	return icons[Review]
}

// Parse maps a decision name back to its value.
func Parse(s string) (Decision, bool) {
	for d, n := range names {
		if n == s {
			return d, true
		}
	}
	return Review, false
}

// Facts are the matrix inputs.
type Facts struct {
	Alignment  alignment.Level
	Tier       signals.EmployerTier
	Depth      alignment.DepthLabel
	Seniority  signals.Seniority
	SchoolTier signals.SchoolTier
	GPA        signals.GPABand
}

func (f Facts) pedigree() bool {
	return f.SchoolTier.Strong() || f.GPA.Strong()
}

// Rule is one row of the decision matrix. The first row whose guard holds wins.
type Rule struct {
	Name     string
	Decision Decision
	When     func(f Facts) bool
}

func direct(f Facts) bool   { return f.Alignment == alignment.LevelDirect }
func adjacent(f Facts) bool { return f.Alignment == alignment.LevelStrongAdjacent }

func strong(f Facts) bool   { return f.Depth == alignment.DepthStrong }
func moderate(f Facts) bool { return f.Depth.AtLeast(alignment.DepthModerate) }

func tier1(f Facts) bool    { return f.Tier == signals.TierOne }
func tier2(f Facts) bool    { return f.Tier == signals.TierTwo }
func tierLow(f Facts) bool  { return f.Tier != signals.TierOne && f.Tier != signals.TierTwo }
func intern(f Facts) bool   { return f.Seniority == signals.SeniorityInternship }
func notTier1(f Facts) bool { return !tier1(f) }

func all(preds ...func(Facts) bool) func(Facts) bool {
	return func(f Facts) bool {
		for _, p := range preds {
			if !p(f) {
				return false
			}
		}
		return true
	}
}

// Matrix is the ordered decision table.
//
//nolint:gochecknoglobals // decision table
var Matrix = []Rule{
	{Name: "direct_tier1_strong_pedigree", Decision: PriorityApply, When: all(direct, tier1, strong, Facts.pedigree)},
	{Name: "direct_tier1_moderate_pedigree", Decision: Apply, When: all(direct, tier1, moderate, Facts.pedigree)},
	{Name: "direct_strong", Decision: PriorityApply, When: all(direct, notTier1, strong)},
	{Name: "direct_moderate", Decision: Apply, When: all(direct, notTier1, moderate)},
	{Name: "direct_internship_carve_out", Decision: Apply, When: all(direct, intern, moderate)},

	{Name: "adjacent_tier1_full_pedigree", Decision: Apply, When: all(adjacent, tier1, strong,
		func(f Facts) bool { return f.SchoolTier.Strong() && f.GPA.Strong() })},
	{Name: "adjacent_tier2_competitive_gpa", Decision: Apply, When: all(adjacent, tier2, strong,
		func(f Facts) bool { return f.GPA.Competitive() })},
	{Name: "adjacent_internship_strong", Decision: Apply, When: all(adjacent, tierLow, intern, strong)},
}

// Raw returns the matrix decision before ceilings and the rule that produced it.
func Raw(f Facts) (Decision, string) {
	for _, r := range Matrix {
		if r.When(f) {
			return r.Decision, r.Name
		}
	}
	return Review, "default_review"
}

// Cap applies ceilings. A ceiling can only lower a decision to Review.
func Cap(d Decision, ceilings int) Decision {
	if ceilings > 0 && d > Review {
		return Review
	}
	return d
}
