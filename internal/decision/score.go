package decision

import (
	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/signals"
)

// TerminalPassScore is the fixed score of a gate-forced Pass.
const TerminalPassScore = 45

// Band is the closed score range allowed for a decision.
type Band struct {
	Min  int
	Max  int
	Base int
}

// Bands holds the score range of every decision.
//
//nolint:gochecknoglobals // score table
var Bands = map[Decision]Band{
	PriorityApply: {Min: 85, Max: 95, Base: 88},
	Apply:         {Min: 70, Max: 84, Base: 76},
	Review:        {Min: 50, Max: 69, Base: 58},
	Pass:          {Min: 40, Max: 49, Base: 45},
}

// Contains reports whether score lies inside the band.
func (b Band) Contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

// ScoreInput are the signals that nudge a score inside its band.
type ScoreInput struct {
	Alignment alignment.Level
	Depth     alignment.DepthLabel
	Tier      signals.EmployerTier
	Targets   signals.TargetAlignment
}

// Modifier returns the deterministic adjustment applied to the band base.
func Modifier(in ScoreInput) int {
	mod := 0

	switch in.Alignment {
	case alignment.LevelDirect:
		mod += 2
	case alignment.LevelWeakAdjacent:
		mod -= 2
	}

	switch in.Depth {
	case alignment.DepthStrong:
		mod += 2
	case alignment.DepthWeak:
		mod -= 2
	}

	switch in.Tier {
	case signals.TierOne:
		mod++
	case signals.TierFour:
		mod--
	}

	switch in.Targets {
	case signals.TargetOn:
		mod++
	case signals.TargetOff:
		mod -= 3
	}

	return mod
}

// Score assigns the final score for a decision, always inside its band.
func Score(d Decision, in ScoreInput) int {
	b, ok := Bands[d]
	if !ok {
		b = Bands[Review]
	}
	return clamp(b.Base+Modifier(in), b.Min, b.Max)
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

// Outcome is the resolved decision with its provenance.
type Outcome struct {
	Decision Decision
	// Raw is the matrix result before ceilings.
	Raw   Decision
	Rule  string
	Score int
}

// Capped reports whether ceilings lowered the matrix result.
func (o Outcome) Capped() bool {
	return o.Decision < o.Raw
}

// Resolve runs the matrix, applies ceilings and scores the result.
func Resolve(f Facts, ceilings int, targets signals.TargetAlignment) Outcome {
	raw, rule := Raw(f)
	final := Cap(raw, ceilings)

	return Outcome{
		Decision: final,
		Raw:      raw,
		Rule:     rule,
		Score: Score(final, ScoreInput{
			Alignment: f.Alignment,
			Depth:     f.Depth,
			Tier:      f.Tier,
			Targets:   targets,
		}),
	}
}

// Terminal is the outcome of a gate-forced Pass.
func Terminal(rule string) Outcome {
	return Outcome{Decision: Pass, Raw: Pass, Rule: rule, Score: TerminalPassScore}
}
