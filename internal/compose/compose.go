// Package compose builds the user-facing bullets and next step of a result.
package compose

import (
	"fmt"
	"strings"

	"github.com/spigell/jobfit/internal/alignment"
	"github.com/spigell/jobfit/internal/decision"
	"github.com/spigell/jobfit/internal/signals"
	"github.com/spigell/jobfit/internal/textnorm"
)

// MaxBullets is the most bullets a result carries.
const MaxBullets = 6

const maxCenterKeywords = 3

// Disclaimer reminds the candidate that screeners judge only visible evidence.
const Disclaimer = "The market only sees what is visible: evidence missing from your profile cannot count in your favor."

//nolint:gochecknoglobals // fixed copy
var nextSteps = map[decision.Decision]string{
	decision.PriorityApply: "Apply within the next few days and ask for a referral from someone at the firm.",
	decision.Apply:         "Tailor your resume to the posting's core requirements and apply.",
	decision.Review:        "Decide whether this role serves your goals before investing in a tailored application.",
	decision.Pass:          "Skip this posting and spend the time on roles that match your profile.",
}

// NextStep is the fixed follow-up sentence for a decision.
func NextStep(d decision.Decision) string {
	if s, ok := nextSteps[d]; ok {
		return s
	}
	return nextSteps[decision.Review]
}

// Input is everything the composer can draw on. Alignment and Depth are nil
// when an eligibility gate ended the evaluation before scoring.
type Input struct {
	JobText        string
	Function       signals.Function
	Outcome        decision.Outcome
	TerminalReason string
	Alignment      *alignment.Result
	Depth          *alignment.Depth
}

// Bullets builds the narrative bullets in their fixed order, then dedupes,
// guards against verbatim job text and caps the list.
func Bullets(in Input) []string {
	raw := []string{
		in.TerminalReason,
		roleCenter(in.Function, in.JobText),
		pairing(in.Alignment),
		momentum(in.Outcome.Decision),
		depth(in.Depth),
		disclaimer(in.Outcome),
	}

	return Cap(Guard(Dedupe(nonEmpty(raw)), in.JobText), MaxBullets)
}

func roleCenter(fn signals.Function, jobText string) string {
	if fn == signals.FunctionUnknown || fn == "" {
		return "The posting does not point to one clear function, so fit was judged on general signals."
	}

	var found []string
	if set, ok := alignment.DirectKeywords[fn]; ok {
		found = set.Matches(textnorm.Normalize(jobText))
	}
	if len(found) > maxCenterKeywords {
		found = found[:maxCenterKeywords]
	}

	if len(found) == 0 {
		return fmt.Sprintf("The role centers on %s work.", fn.Label())
	}
	return fmt.Sprintf("The role centers on %s work (%s).", fn.Label(), strings.Join(found, ", "))
}

func pairing(res *alignment.Result) string {
	if res == nil {
		return ""
	}

	switch res.Level {
	case alignment.LevelDirect:
		if len(res.Pairings) > 0 {
			return fmt.Sprintf("Your profile shows %s, which the posting asks for directly.", joinAnd(limit(res.Pairings, 2)))
		}
		return fmt.Sprintf("Your profile shows direct experience in this function (%s).", joinAnd(limit(res.DirectHits, 2)))
	case alignment.LevelStrongAdjacent:
		return fmt.Sprintf("Your %s experience transfers closely to this role.", joinAnd(limit(res.AdjacentHits, 2)))
	case alignment.LevelWeakAdjacent:
		return fmt.Sprintf("Your fit rests on general signals (%s) rather than role-specific experience.", strings.Join(res.WeakSignals, ", "))
	default:
		return "Nothing in your profile maps to the core work of this role."
	}
}

func momentum(d decision.Decision) string {
	switch d {
	case decision.PriorityApply:
		return "This is one of your strongest matches: move quickly while the posting is fresh."
	case decision.Apply:
		return "You clear the bar for this role; a focused application is worth the time."
	default:
		return ""
	}
}

func depth(d *alignment.Depth) string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Experience depth scores %d/10 (%s)", d.Score, d.Label)
	if len(d.Indicators) > 0 {
		fmt.Fprintf(&b, ", backed by %s", strings.Join(humanize(d.Indicators), ", "))
	}
	b.WriteString(".")
	return b.String()
}

// disclaimer is shown on Pass, or on a Review the matrix itself produced
// rather than one forced by a ceiling.
func disclaimer(o decision.Outcome) string {
	if o.Decision == decision.Pass || (o.Decision == decision.Review && !o.Capped()) {
		return Disclaimer
	}
	return ""
}

func humanize(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ReplaceAll(s, "_", " ")
	}
	return out
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return "related"
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Dedupe drops case-insensitive repeats, keeping the first occurrence.
func Dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		key := textnorm.Normalize(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// Cap keeps at most n items.
func Cap(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
