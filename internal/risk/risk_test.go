package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/signals"
)

const noisyJob = "Analyst role. Must have a valid driver's license. Visa sponsorship is not available. " +
	"Offer contingent on a background check."

func TestAssembleSuppressesNoise(t *testing.T) {
	t.Parallel()

	a := Assemble(Input{
		JobText:   noisyJob,
		Targets:   signals.TargetOn,
		Alignment: alignment.LevelDirect,
		Depth:     alignment.DepthStrong,
		Tier:      signals.TierThree,
		Seniority: signals.SeniorityEntry,
	})

	assert.Empty(t, a.Codes)
	assert.Empty(t, a.Flags)
}

func TestFlagsNeverMentionSuppressedTopics(t *testing.T) {
	t.Parallel()

	for code, label := range Labels {
		lower := strings.ToLower(label)
		for _, banned := range []string{"visa", "driver", "not stated"} {
			assert.NotContains(t, lower, banned, "label of %s", code)
		}
	}

	everything := Input{
		JobText:    noisyJob,
		Facts:      signals.JobFacts{IsContract: true, IsHourly: true, IsFullyRemote: true, IsCommission: true},
		Targets:    signals.TargetOff,
		Alignment:  alignment.LevelWeakAdjacent,
		Depth:      alignment.DepthWeak,
		Tier:       signals.TierOne,
		SchoolTier: signals.SchoolTierC,
		GPA:        signals.GPA30To349,
		Seniority:  signals.SeniorityExperienced,
	}
	for _, flag := range Assemble(everything).Flags {
		lower := strings.ToLower(flag)
		assert.NotContains(t, lower, "visa")
		assert.NotContains(t, lower, "driver")
		assert.NotContains(t, lower, "not stated")
	}
}

func TestAssembleCapsInPriorityOrder(t *testing.T) {
	t.Parallel()

	a := Assemble(Input{
		JobText:    "Contract analyst, $30/hr, fully remote.",
		Facts:      signals.JobFacts{IsContract: true, IsHourly: true, IsFullyRemote: true, IsCommission: true},
		Targets:    signals.TargetOff,
		Alignment:  alignment.LevelWeakAdjacent,
		Depth:      alignment.DepthWeak,
		Tier:       signals.TierOne,
		SchoolTier: signals.SchoolTierC,
		GPA:        signals.GPA30To349,
		Seniority:  signals.SeniorityExperienced,
	})

	require.Len(t, a.Codes, MaxCodes)
	assert.Equal(t, []Code{
		ContractRole, HourlyPay, CommissionPay, FullyRemote,
		OffTarget, TransferableOnly, CompetitiveTier1, PedigreeGap,
	}, a.Codes)

	require.Len(t, a.Flags, MaxFlags)
	assert.Equal(t, Labels[ContractRole], a.Flags[0])
	assert.Equal(t, Labels[TransferableOnly], a.Flags[5])
}

func TestUnlabelledCodesAreDropped(t *testing.T) {
	t.Parallel()

	a := Assemble(Input{
		JobText:   "Analyst",
		Targets:   signals.TargetOn,
		Alignment: alignment.LevelDirect,
		Depth:     alignment.DepthModerate,
		Tier:      signals.TierThree,
		Seniority: signals.SeniorityUnknown,
	})

	assert.Equal(t, []Code{SeniorityUnknown}, a.Codes)
	assert.Empty(t, a.Flags)
}

func TestGPARiskOnlyWhereGPAMatters(t *testing.T) {
	t.Parallel()

	base := Input{
		JobText:   "Analyst",
		Targets:   signals.TargetOn,
		Alignment: alignment.LevelDirect,
		Depth:     alignment.DepthModerate,
		Seniority: signals.SeniorityEntry,
		GPA:       signals.GPABelow30,
	}

	tier3 := base
	tier3.Tier = signals.TierThree
	assert.NotContains(t, Assemble(tier3).Codes, GPARisk)

	tier2 := base
	tier2.Tier = signals.TierTwo
	assert.Contains(t, Assemble(tier2).Codes, GPARisk)

	unknown := tier2
	unknown.GPA = signals.GPAUnknown
	assert.NotContains(t, Assemble(unknown).Codes, GPARisk)
}

func TestDedupeKeepsFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Code{HourlyPay, ContractRole}, dedupe([]Code{HourlyPay, ContractRole, HourlyPay}))
	assert.Len(t, take([]Code{HourlyPay}, 3), 1)
}
