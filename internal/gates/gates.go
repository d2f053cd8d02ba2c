// Package gates evaluates the ordered short-circuit rules that either end an
// evaluation with a Pass or cap the final decision at Review.
package gates

import (
	"sort"

	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/eligibility"
	"github.com/spigell/jobfit/internal/signals"
)

// Stage groups gates by the data they need. Eligibility gates run before any
// scoring work is done.
type Stage string

const (
	StageEligibility Stage = "eligibility"
	StageScoring     Stage = "scoring"
)

// Effect is what a gate does when its predicate holds.
type Effect string

const (
	EffectNone      Effect = "none"
	EffectForcePass Effect = "force_pass"
	EffectCapReview Effect = "cap_review"
)

// Ceiling names a cap-to-Review condition.
type Ceiling string

const (
	CeilingTargetMismatch     Ceiling = "target_mismatch"
	CeilingWeakDepth          Ceiling = "weak_depth"
	CeilingWeakAlignment      Ceiling = "weak_alignment"
	CeilingRemotePreference   Ceiling = "remote_preference"
	CeilingContractPreference Ceiling = "contract_preference"
)

// Input carries every signal a gate may look at. Scoring fields are zero
// while the eligibility stage runs.
type Input struct {
	Facts       signals.JobFacts
	Constraints signals.ProfileConstraints
	Function    signals.Function
	Seniority   signals.Seniority

	Window        eligibility.Window
	HasWindow     bool
	Graduation    eligibility.YearMonth
	HasGraduation bool
	Missing       []string

	Targets   signals.TargetAlignment
	Alignment alignment.Level
	Depth     alignment.DepthLabel
}

// Predicate reports whether a gate fires and, if so, why.
type Predicate func(in Input) (fired bool, reason string)

// Gate is one ordered (predicate, effect) pair.
type Gate struct {
	Order     int
	Name      string
	Stage     Stage
	Effect    Effect
	Ceiling   Ceiling
	Predicate Predicate
}

// Step describes the result of checking a single gate.
type Step struct {
	Order  int    `json:"order"`
	Name   string `json:"name"`
	Fired  bool   `json:"fired"`
	Effect Effect `json:"effect"`
	Reason string `json:"reason,omitempty"`
}

// Terminal is the gate that ended an evaluation.
type Terminal struct {
	Gate   string `json:"gate"`
	Reason string `json:"reason"`
}

// Verdict is the outcome of running a list of gates.
type Verdict struct {
	Terminal *Terminal
	Ceilings []Ceiling
	Steps    []Step
}

// Run checks gates in order. The first force_pass gate stops the loop;
// cap_review gates accumulate ceilings. Ceilings are returned sorted.
func Run(logger *zap.Logger, list []Gate, in Input) Verdict {
	if logger == nil {
		logger = zap.NewNop()
	}

	var v Verdict
	seen := make(map[Ceiling]bool)

	for _, g := range list {
		fired, reason := g.Predicate(in)

		step := Step{Order: g.Order, Name: g.Name, Fired: fired, Effect: EffectNone}
		if fired {
			step.Effect = g.Effect
			step.Reason = reason
		}
		v.Steps = append(v.Steps, step)

		logger.Debug("gate step",
			zap.Int("order", g.Order),
			zap.String("name", g.Name),
			zap.Bool("fired", fired),
			zap.String("effect", string(step.Effect)),
		)

		if !fired {
			continue
		}

		switch g.Effect {
		case EffectForcePass:
			v.Terminal = &Terminal{Gate: g.Name, Reason: reason}
			logger.Debug("terminal gate", zap.String("name", g.Name), zap.String("reason", reason))
			v.Ceilings = sortedCeilings(seen)
			return v
		case EffectCapReview:
			seen[g.Ceiling] = true
		}
	}

	v.Ceilings = sortedCeilings(seen)
	return v
}

func sortedCeilings(seen map[Ceiling]bool) []Ceiling {
	out := make([]Ceiling, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ForStage returns the gates of one stage, keeping their order.
func ForStage(list []Gate, stage Stage) []Gate {
	out := make([]Gate, 0, len(list))
	for _, g := range list {
		if g.Stage == stage {
			out = append(out, g)
		}
	}
	return out
}

// Status is a printable row describing a gate.
type Status struct {
	Order   int    `json:"order"`
	Name    string `json:"name"`
	Stage   Stage  `json:"stage"`
	Effect  Effect `json:"effect"`
	Ceiling string `json:"ceiling,omitempty"`
}

// Describe returns status entries for the provided gates.
func Describe(list []Gate) []Status {
	statuses := make([]Status, 0, len(list))
	for _, g := range list {
		statuses = append(statuses, Status{
			Order:   g.Order,
			Name:    g.Name,
			Stage:   g.Stage,
			Effect:  g.Effect,
			Ceiling: string(g.Ceiling),
		})
	}
	return statuses
}
