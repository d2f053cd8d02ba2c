package gates

import (
	"fmt"

	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/eligibility"
	"github.com/spigell/jobfit/internal/signals"
)

// Default returns the gate table in priority order.
func Default() []Gate {
	return []Gate{
		{Order: 1, Name: "hard_exclusion", Stage: StageEligibility, Effect: EffectForcePass, Predicate: hardExclusion},
		{Order: 2, Name: "graduation_window", Stage: StageEligibility, Effect: EffectForcePass, Predicate: graduationWindow},
		{Order: 3, Name: "required_credential", Stage: StageEligibility, Effect: EffectForcePass, Predicate: requiredCredential},
		{Order: 4, Name: "target_mismatch", Stage: StageScoring, Effect: EffectCapReview, Ceiling: CeilingTargetMismatch, Predicate: targetMismatch},
		{Order: 5, Name: "weak_depth", Stage: StageScoring, Effect: EffectCapReview, Ceiling: CeilingWeakDepth, Predicate: weakDepth},
		{Order: 6, Name: "no_alignment", Stage: StageScoring, Effect: EffectForcePass, Predicate: noAlignment},
		{Order: 7, Name: "weak_alignment", Stage: StageScoring, Effect: EffectCapReview, Ceiling: CeilingWeakAlignment, Predicate: weakAlignment},
		{Order: 8, Name: "remote_preference", Stage: StageScoring, Effect: EffectCapReview, Ceiling: CeilingRemotePreference, Predicate: remotePreference},
		{Order: 9, Name: "contract_preference", Stage: StageScoring, Effect: EffectCapReview, Ceiling: CeilingContractPreference, Predicate: contractPreference},
	}
}

func hardExclusion(in Input) (bool, string) {
	c, f := in.Constraints, in.Facts

	switch {
	case c.HardNoHourlyPay && f.IsHourly:
		return true, withEvidence("Your profile rules out hourly pay, and this posting pays hourly", f.HourlyEvidence)
	case c.HardNoContract && f.IsContract:
		return true, withEvidence("Your profile rules out contract roles, and this posting is a contract position", f.ContractEvidence)
	case c.HardNoSales && (in.Function == signals.FunctionSales || f.IsCommission):
		return true, "Your profile rules out sales or commission work, and this posting is a sales role."
	case c.HardNoGovernment && (in.Function == signals.FunctionGovernment || f.IsGovernment):
		return true, "Your profile rules out government roles, and this posting is with a public-sector employer."
	}
	return false, ""
}

func withEvidence(msg, evidence string) string {
	if evidence == "" {
		return msg + "."
	}
	return fmt.Sprintf("%s (%q).", msg, evidence)
}

func graduationWindow(in Input) (bool, string) {
	return eligibility.CheckWindow(in.Window, in.HasWindow, in.Graduation, in.HasGraduation)
}

func requiredCredential(in Input) (bool, string) {
	if len(in.Missing) == 0 {
		return false, ""
	}
	return true, eligibility.MissingReason(in.Missing)
}

func targetMismatch(in Input) (bool, string) {
	if in.Targets != signals.TargetOff {
		return false, ""
	}
	return true, fmt.Sprintf("This %s role sits outside the roles you are targeting.", in.Function.Label())
}

func weakDepth(in Input) (bool, string) {
	if in.Depth != alignment.DepthWeak || in.Seniority == signals.SeniorityInternship {
		return false, ""
	}
	return true, "Visible experience depth is thin for a non-internship role."
}

func noAlignment(in Input) (bool, string) {
	if in.Alignment != alignment.LevelNone {
		return false, ""
	}
	return true, fmt.Sprintf("Your profile shows no experience that maps to this %s role.", in.Function.Label())
}

func weakAlignment(in Input) (bool, string) {
	if in.Alignment != alignment.LevelWeakAdjacent {
		return false, ""
	}
	return true, "Your fit rests on general skills rather than role-specific experience."
}

func remotePreference(in Input) (bool, string) {
	if !in.Facts.IsFullyRemote || !in.Constraints.HardNoFullyRemote {
		return false, ""
	}
	return true, "The role is fully remote, which you said you want to avoid."
}

func contractPreference(in Input) (bool, string) {
	if !in.Facts.IsContract || !in.Constraints.PrefFullTime || in.Constraints.HardNoContract {
		return false, ""
	}
	return true, "The role is a contract position while you prefer full-time work."
}
