// Package risk turns upstream signals into internal risk codes and the
// human-readable flags shown to the candidate.
package risk

import (
	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/signals"
	"github.com/spigell/jobfit/internal/textnorm"
)

// Code is an internal risk identifier.
type Code string

const (
	ContractRole     Code = "contract_role"
	HourlyPay        Code = "hourly_pay"
	FullyRemote      Code = "fully_remote"
	CommissionPay    Code = "commission_pay"
	OffTarget        Code = "off_target"
	TargetsUnclear   Code = "targets_unclear"
	AdjacentFit      Code = "adjacent_fit"
	TransferableOnly Code = "transferable_only"
	CompetitiveTier1 Code = "competitive_tier1"
	CompetitiveTier2 Code = "competitive_tier2"
	PedigreeGap      Code = "pedigree_gap"
	GPARisk          Code = "gpa_risk"
	DepthLimited     Code = "depth_limited"
	SeniorityStretch Code = "seniority_stretch"
	SeniorityUnknown Code = "seniority_unknown"
	VisaSponsorship  Code = "visa_sponsorship"
	DriversLicense   Code = "drivers_license"
	BackgroundCheck  Code = "background_check"
	JDMissingDetail  Code = "jd_missing_detail"
)

const (
	// MaxCodes is how many codes survive suppression and dedupe.
	MaxCodes = 8
	// MaxFlags is how many labelled flags are emitted.
	MaxFlags = 6
)

// Suppressed codes are never surfaced: they are not actionable for the candidate.
//
//nolint:gochecknoglobals // suppression list
var Suppressed = map[Code]bool{
	VisaSponsorship: true,
	DriversLicense:  true,
	BackgroundCheck: true,
	JDMissingDetail: true,
}

// Labels maps a code to the sentence shown to the candidate. Codes without a
// label are dropped.
//
//nolint:gochecknoglobals // label table
var Labels = map[Code]string{
	ContractRole:     "Contract role: confirm length, conversion odds and benefits before committing.",
	HourlyPay:        "Hourly pay: total compensation may swing with scheduled hours.",
	FullyRemote:      "Fully remote: plan how you will build visibility and mentorship.",
	CommissionPay:    "Commission-based pay: part of earnings depends on hitting targets.",
	OffTarget:        "Outside your stated target roles; make sure the detour is deliberate.",
	TargetsUnclear:   "Your target roles are unclear, so fit to your goals could not be checked.",
	AdjacentFit:      "Your experience is adjacent rather than direct; frame the transferable pieces explicitly.",
	TransferableOnly: "Fit relies on general skills; expect screeners to look for role-specific proof.",
	CompetitiveTier1: "Highly competitive employer with a large applicant pool.",
	CompetitiveTier2: "Structured program with competitive, cohort-based hiring.",
	PedigreeGap:      "Top-tier screens weigh school and GPA heavily; lean on referrals.",
	GPARisk:          "GPA may fall below this employer's typical screen.",
	DepthLimited:     "Limited visible experience depth; add concrete results where you can.",
	SeniorityStretch: "Posting asks for more experience than a typical early-career profile.",
}

// Input holds the signals that generate risk codes.
type Input struct {
	JobText    string
	Facts      signals.JobFacts
	Targets    signals.TargetAlignment
	Alignment  alignment.Level
	Depth      alignment.DepthLabel
	Tier       signals.EmployerTier
	SchoolTier signals.SchoolTier
	GPA        signals.GPABand
	Seniority  signals.Seniority
}

// Generator emits a code when its condition holds.
type Generator struct {
	Code Code
	When func(in Input, normalizedJob string) bool
}

//nolint:gochecknoglobals // phrase tables
var (
	visaPhrases       = textnorm.Compile("visa", "sponsorship", "work authorization", "authorized to work")
	driverPhrases     = textnorm.Compile("driver's license", "drivers license", "driving license", "valid license")
	backgroundPhrases = textnorm.Compile("background check", "background screening", "drug test", "drug screen")
	payPhrases        = textnorm.Compile("salary", "compensation", "pay", "$", "per year", "stipend")
)

// jdMinWords is the length below which a posting is considered thin.
const jdMinWords = 40

// Generators run in order; that order is the priority used when capping.
//
//nolint:gochecknoglobals // generation table
var Generators = []Generator{
	{ContractRole, func(in Input, _ string) bool { return in.Facts.IsContract }},
	{HourlyPay, func(in Input, _ string) bool { return in.Facts.IsHourly }},
	{CommissionPay, func(in Input, _ string) bool { return in.Facts.IsCommission }},
	{FullyRemote, func(in Input, _ string) bool { return in.Facts.IsFullyRemote }},
	{VisaSponsorship, func(_ Input, job string) bool { return visaPhrases.Any(job) }},
	{OffTarget, func(in Input, _ string) bool { return in.Targets == signals.TargetOff }},
	{TargetsUnclear, func(in Input, _ string) bool { return in.Targets == signals.TargetUnclear }},
	{DriversLicense, func(_ Input, job string) bool { return driverPhrases.Any(job) }},
	{AdjacentFit, func(in Input, _ string) bool { return in.Alignment == alignment.LevelStrongAdjacent }},
	{TransferableOnly, func(in Input, _ string) bool { return in.Alignment == alignment.LevelWeakAdjacent }},
	{CompetitiveTier1, func(in Input, _ string) bool { return in.Tier == signals.TierOne }},
	{CompetitiveTier2, func(in Input, _ string) bool { return in.Tier == signals.TierTwo }},
	{PedigreeGap, func(in Input, _ string) bool {
		return in.Tier == signals.TierOne && !in.SchoolTier.Strong() && !in.GPA.Strong()
	}},
	{GPARisk, func(in Input, _ string) bool {
		return (in.Tier == signals.TierOne || in.Tier == signals.TierTwo) && in.GPA.Known() && !in.GPA.Competitive()
	}},
	{BackgroundCheck, func(_ Input, job string) bool { return backgroundPhrases.Any(job) }},
	{DepthLimited, func(in Input, _ string) bool { return in.Depth == alignment.DepthWeak }},
	{SeniorityStretch, func(in Input, _ string) bool { return in.Seniority == signals.SeniorityExperienced }},
	{JDMissingDetail, func(_ Input, job string) bool {
		return len(textnorm.Words(job)) < jdMinWords || !payPhrases.Any(job)
	}},
	{SeniorityUnknown, func(in Input, _ string) bool { return in.Seniority == signals.SeniorityUnknown }},
}

// Assessment is the result of risk assembly.
type Assessment struct {
	Codes []Code
	Flags []string
}

// Assemble generates, suppresses, dedupes and caps codes, then maps the
// survivors to labelled flags.
func Assemble(in Input) Assessment {
	job := textnorm.Normalize(in.JobText)

	codes := take(dedupe(filter(generate(in, job), notSuppressed)), MaxCodes)
	flags := take(labels(codes), MaxFlags)

	return Assessment{Codes: codes, Flags: flags}
}

func generate(in Input, job string) []Code {
	out := make([]Code, 0, len(Generators))
	for _, g := range Generators {
		if g.When(in, job) {
			out = append(out, g.Code)
		}
	}
	return out
}

func notSuppressed(c Code) bool { return !Suppressed[c] }

func filter(codes []Code, keep func(Code) bool) []Code {
	out := make([]Code, 0, len(codes))
	for _, c := range codes {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func dedupe(codes []Code) []Code {
	seen := make(map[Code]bool, len(codes))
	return filter(codes, func(c Code) bool {
		if seen[c] {
			return false
		}
		seen[c] = true
		return true
	})
}

func labels(codes []Code) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if l, ok := Labels[c]; ok {
			out = append(out, l)
		}
	}
	return out
}

func take[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n:n]
}
