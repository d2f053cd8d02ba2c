// Package engine wires the extractors, gates, resolver and composer into a
// single deterministic evaluation of one profile against one job posting.
package engine

import (
	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/compose"
	"github.com/spigell/jobfit/internal/decision"
	"github.com/spigell/jobfit/internal/eligibility"
	"github.com/spigell/jobfit/internal/gates"
	"github.com/spigell/jobfit/internal/logger"
	"github.com/spigell/jobfit/internal/risk"
	"github.com/spigell/jobfit/internal/signals"
)

// LogicVersion identifies the rule set that produced a result.
const LogicVersion = "rules-v4"

const notEvaluated = "not_evaluated"

// Request is one evaluation input.
type Request struct {
	ProfileText       string         `json:"profile_text" yaml:"profile_text" validate:"required"`
	JobText           string         `json:"job_text" yaml:"job_text" validate:"required"`
	ProfileStructured map[string]any `json:"profile_structured,omitempty" yaml:"profile_structured,omitempty"`
}

// Result is the engine output.
type Result struct {
	Decision           string                     `json:"decision"`
	Icon               string                     `json:"icon"`
	Score              int                        `json:"score"`
	Bullets            []string                   `json:"bullets"`
	RiskFlags          []string                   `json:"risk_flags"`
	NextStep           string                     `json:"next_step"`
	LocationConstraint signals.LocationConstraint `json:"location_constraint"`
	LogicVersion       string                     `json:"logic_version"`
	Debug              Debug                      `json:"debug"`
}

// Debug is diagnostic detail. Nothing a caller needs lives only here.
type Debug struct {
	EmployerTier    signals.EmployerTier    `json:"employer_tier"`
	SchoolTier      signals.SchoolTier      `json:"school_tier"`
	GPABand         signals.GPABand         `json:"gpa_band"`
	JobSeniority    signals.Seniority       `json:"job_seniority"`
	PrimaryFunction signals.Function        `json:"primary_function"`
	AlignmentLevel  string                  `json:"alignment_level"`
	DepthScore      *int                    `json:"depth_score"`
	TargetAlignment signals.TargetAlignment `json:"target_alignment"`
	Ceilings        []string                `json:"ceilings"`
	RiskCodes       []string                `json:"risk_codes"`
	TerminalGate    string                  `json:"terminal_gate,omitempty"`
	MatrixRule      string                  `json:"matrix_rule,omitempty"`
}

// Engine evaluates requests. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	logger *zap.Logger
	gates  []gates.Gate
}

// New returns an engine logging through logger. A nil logger disables logging.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, gates: gates.Default()}
}

// Gates returns the gate table the engine runs.
func (e *Engine) Gates() []gates.Gate {
	return e.gates
}

// evaluation carries the signals shared by the stages of one call.
type evaluation struct {
	req   Request
	hints Hints

	facts       signals.JobFacts
	constraints signals.ProfileConstraints
	function    signals.Function
	seniority   signals.Seniority
	tier        signals.EmployerTier
	school      signals.SchoolTier
	gpa         signals.GPABand
	targets     signals.TargetAlignment
}

// Evaluate runs the full pipeline. It never fails: malformed hints fall back
// to defaults and missing signals resolve to unknown values.
func (e *Engine) Evaluate(req Request) Result {
	log := e.logger
	log.Debug("evaluation started", logger.PreviewFields(req.ProfileText, req.JobText)...)

	ev := e.extract(req)

	window, hasWindow := eligibility.ParseWindow(req.JobText)
	grad, hasGrad := eligibility.CandidateGraduation(ev.hints.GradYear, ev.hints.GradMonth, req.ProfileText)

	in := gates.Input{
		Facts:         ev.facts,
		Constraints:   ev.constraints,
		Function:      ev.function,
		Seniority:     ev.seniority,
		Window:        window,
		HasWindow:     hasWindow,
		Graduation:    grad,
		HasGraduation: hasGrad,
		Missing:       eligibility.MissingCredentials(req.JobText, req.ProfileText),
		Targets:       ev.targets,
	}

	verdict := gates.Run(log, gates.ForStage(e.gates, gates.StageEligibility), in)
	if verdict.Terminal != nil {
		return e.finish(ev, verdict, nil, nil)
	}

	align := alignment.Assess(ev.function, req.JobText, req.ProfileText)
	depth := alignment.ScoreDepth(req.ProfileText, ev.seniority)

	in.Alignment = align.Level
	in.Depth = depth.Label

	scoring := gates.Run(log, gates.ForStage(e.gates, gates.StageScoring), in)

	return e.finish(ev, scoring, &align, &depth)
}

func (e *Engine) extract(req Request) evaluation {
	hints := DecodeHints(req.ProfileStructured)
	function := signals.ClassifyFunction(req.JobText)

	return evaluation{
		req:         req,
		hints:       hints,
		facts:       signals.ExtractJobFacts(req.JobText),
		constraints: signals.ExtractProfileConstraints(req.ProfileText),
		function:    function,
		seniority:   signals.ClassifySeniority(req.JobText),
		tier:        signals.InferEmployerTier(req.JobText, signals.EmployerTier(hints.EmployerTier)),
		school:      signals.ResolveSchoolTier(hints.SchoolTier, req.ProfileText),
		gpa:         signals.ResolveGPABand(hints.GPABand, hints.GPA),
		targets:     signals.AlignTargets(function, signals.ParseTargets(hints.TargetRoles, req.ProfileText)),
	}
}

func (e *Engine) finish(ev evaluation, v gates.Verdict, align *alignment.Result, depth *alignment.Depth) Result {
	var (
		outcome decision.Outcome
		codes   []risk.Code
		flags   []string
		reason  string
	)

	if v.Terminal != nil {
		outcome = decision.Terminal(v.Terminal.Gate)
		reason = v.Terminal.Reason
	} else {
		outcome = decision.Resolve(decision.Facts{
			Alignment:  align.Level,
			Tier:       ev.tier,
			Depth:      depth.Label,
			Seniority:  ev.seniority,
			SchoolTier: ev.school,
			GPA:        ev.gpa,
		}, len(v.Ceilings), ev.targets)

		assessment := risk.Assemble(risk.Input{
			JobText:    ev.req.JobText,
			Facts:      ev.facts,
			Targets:    ev.targets,
			Alignment:  align.Level,
			Depth:      depth.Label,
			Tier:       ev.tier,
			SchoolTier: ev.school,
			GPA:        ev.gpa,
			Seniority:  ev.seniority,
		})
		codes = assessment.Codes
		flags = compose.Guard(assessment.Flags, ev.req.JobText)
	}

	bullets := compose.Bullets(compose.Input{
		JobText:        ev.req.JobText,
		Function:       ev.function,
		Outcome:        outcome,
		TerminalReason: reason,
		Alignment:      align,
		Depth:          depth,
	})

	res := Result{
		Decision:           outcome.Decision.String(),
		Icon:               outcome.Decision.Icon(),
		Score:              outcome.Score,
		Bullets:            nonNil(bullets),
		RiskFlags:          nonNil(flags),
		NextStep:           compose.NextStep(outcome.Decision),
		LocationConstraint: ev.constraints.LocationConstraint,
		LogicVersion:       LogicVersion,
		Debug: Debug{
			EmployerTier:    ev.tier,
			SchoolTier:      ev.school,
			GPABand:         ev.gpa,
			JobSeniority:    ev.seniority,
			PrimaryFunction: ev.function,
			AlignmentLevel:  notEvaluated,
			TargetAlignment: ev.targets,
			Ceilings:        ceilingNames(v.Ceilings),
			RiskCodes:       codeNames(codes),
		},
	}

	if align != nil {
		res.Debug.AlignmentLevel = string(align.Level)
	}
	if depth != nil {
		score := depth.Score
		res.Debug.DepthScore = &score
	}
	if v.Terminal != nil {
		res.Debug.TerminalGate = v.Terminal.Gate
	} else {
		res.Debug.MatrixRule = outcome.Rule
	}

	e.logger.Debug("evaluation complete", logger.EvaluationFields(logger.Evaluation{
		Decision:        res.Decision,
		Score:           res.Score,
		PrimaryFunction: string(res.Debug.PrimaryFunction),
		AlignmentLevel:  res.Debug.AlignmentLevel,
	})...)

	return res
}

func ceilingNames(in []gates.Ceiling) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		out = append(out, string(c))
	}
	return out
}

func codeNames(in []risk.Code) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		out = append(out, string(c))
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
