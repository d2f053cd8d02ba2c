package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/signals"
)

func facts(level alignment.Level, tier signals.EmployerTier, depth alignment.DepthLabel) Facts {
	return Facts{
		Alignment:  level,
		Tier:       tier,
		Depth:      depth,
		Seniority:  signals.SeniorityEntry,
		SchoolTier: signals.SchoolTierUnknown,
		GPA:        signals.GPAUnknown,
	}
}

func TestRawMatrix(t *testing.T) {
	t.Parallel()

	withPedigree := func(f Facts) Facts { f.SchoolTier = signals.SchoolTierS; return f }
	withGPA := func(f Facts, b signals.GPABand) Facts { f.GPA = b; return f }
	asIntern := func(f Facts) Facts { f.Seniority = signals.SeniorityInternship; return f }

	tests := []struct {
		name string
		in   Facts
		want Decision
	}{
		{"direct tier1 strong pedigree", withPedigree(facts(alignment.LevelDirect, signals.TierOne, alignment.DepthStrong)), PriorityApply},
		{"direct tier1 strong gpa only", withGPA(facts(alignment.LevelDirect, signals.TierOne, alignment.DepthStrong), signals.GPA38Plus), PriorityApply},
		{"direct tier1 moderate pedigree", withPedigree(facts(alignment.LevelDirect, signals.TierOne, alignment.DepthModerate)), Apply},
		{"direct tier1 strong no pedigree", facts(alignment.LevelDirect, signals.TierOne, alignment.DepthStrong), Review},
		{"direct tier1 intern carve out", asIntern(facts(alignment.LevelDirect, signals.TierOne, alignment.DepthModerate)), Apply},
		{"direct tier1 intern weak depth", asIntern(facts(alignment.LevelDirect, signals.TierOne, alignment.DepthWeak)), Review},
		{"direct tier1 intern strong no pedigree never priority", asIntern(facts(alignment.LevelDirect, signals.TierOne, alignment.DepthStrong)), Apply},
		{"direct tier2 strong", facts(alignment.LevelDirect, signals.TierTwo, alignment.DepthStrong), PriorityApply},
		{"direct tier3 moderate", facts(alignment.LevelDirect, signals.TierThree, alignment.DepthModerate), Apply},
		{"direct tier4 weak", facts(alignment.LevelDirect, signals.TierFour, alignment.DepthWeak), Review},
		{"adjacent tier1 full pedigree", withGPA(withPedigree(facts(alignment.LevelStrongAdjacent, signals.TierOne, alignment.DepthStrong)), signals.GPA38Plus), Apply},
		{"adjacent tier1 school only", withPedigree(facts(alignment.LevelStrongAdjacent, signals.TierOne, alignment.DepthStrong)), Review},
		{"adjacent tier2 competitive", withGPA(facts(alignment.LevelStrongAdjacent, signals.TierTwo, alignment.DepthStrong), signals.GPA35To379), Apply},
		{"adjacent tier2 low gpa", withGPA(facts(alignment.LevelStrongAdjacent, signals.TierTwo, alignment.DepthStrong), signals.GPA30To349), Review},
		{"adjacent tier3 strong", facts(alignment.LevelStrongAdjacent, signals.TierThree, alignment.DepthStrong), Review},
		{"adjacent tier3 intern strong", asIntern(facts(alignment.LevelStrongAdjacent, signals.TierThree, alignment.DepthStrong)), Apply},
		{"weak adjacent", facts(alignment.LevelWeakAdjacent, signals.TierThree, alignment.DepthStrong), Review},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rule := Raw(tt.in)
			assert.Equal(t, tt.want, got, "rule %s", rule)
		})
	}
}

func TestCapNeverRaises(t *testing.T) {
	t.Parallel()

	for _, d := range []Decision{Pass, Review, Apply, PriorityApply} {
		for _, n := range []int{0, 1, 3} {
			got := Cap(d, n)
			assert.LessOrEqual(t, int(got), int(d), "%s with %d ceilings", d, n)
			if n > 0 {
				assert.LessOrEqual(t, int(got), int(Review))
			} else {
				assert.Equal(t, d, got)
			}
		}
	}
}

func TestScoreStaysInBand(t *testing.T) {
	t.Parallel()

	levels := []alignment.Level{alignment.LevelDirect, alignment.LevelStrongAdjacent, alignment.LevelWeakAdjacent, alignment.LevelNone}
	depths := []alignment.DepthLabel{alignment.DepthStrong, alignment.DepthModerate, alignment.DepthWeak}
	tiers := []signals.EmployerTier{signals.TierOne, signals.TierTwo, signals.TierThree, signals.TierFour}
	targets := []signals.TargetAlignment{signals.TargetOn, signals.TargetOff, signals.TargetUnclear}

	for d, band := range Bands {
		for _, l := range levels {
			for _, dp := range depths {
				for _, tr := range tiers {
					for _, tg := range targets {
						score := Score(d, ScoreInput{Alignment: l, Depth: dp, Tier: tr, Targets: tg})
						assert.True(t, band.Contains(score), "%s score %d outside [%d,%d]", d, score, band.Min, band.Max)
					}
				}
			}
		}
	}
}

func TestScoreModifiers(t *testing.T) {
	t.Parallel()

	best := ScoreInput{Alignment: alignment.LevelDirect, Depth: alignment.DepthStrong, Tier: signals.TierOne, Targets: signals.TargetOn}
	assert.Equal(t, 6, Modifier(best))
	assert.Equal(t, 94, Score(PriorityApply, best))

	worst := ScoreInput{Alignment: alignment.LevelWeakAdjacent, Depth: alignment.DepthWeak, Tier: signals.TierFour, Targets: signals.TargetOff}
	assert.Equal(t, -8, Modifier(worst))
	assert.Equal(t, 50, Score(Review, worst))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	f := facts(alignment.LevelDirect, signals.TierTwo, alignment.DepthStrong)

	open := Resolve(f, 0, signals.TargetUnclear)
	assert.Equal(t, PriorityApply, open.Decision)
	assert.False(t, open.Capped())

	capped := Resolve(f, 1, signals.TargetOff)
	assert.Equal(t, Review, capped.Decision)
	assert.Equal(t, PriorityApply, capped.Raw)
	assert.True(t, capped.Capped())
	assert.True(t, Bands[Review].Contains(capped.Score))

	term := Terminal("hard_exclusion")
	assert.Equal(t, Pass, term.Decision)
	assert.Equal(t, TerminalPassScore, term.Score)
}

func TestNamesAndIcons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Priority Apply", PriorityApply.String())
	assert.Equal(t, "🚀", PriorityApply.Icon())
	assert.Equal(t, "✅", Apply.Icon())
	assert.Equal(t, "🟡", Review.Icon())
	assert.Equal(t, "⛔", Pass.Icon())

	d, ok := Parse("Apply")
	assert.True(t, ok)
	assert.Equal(t, Apply, d)

	_, ok = Parse("Maybe")
	assert.False(t, ok)
}
