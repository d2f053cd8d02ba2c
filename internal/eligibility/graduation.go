// Package eligibility holds the absolute checks that run before any scoring:
// graduation windows and explicitly required credentials.
package eligibility

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/jobfit/internal/textnorm"
)

// DefaultGraduationMonth is assumed when only a year is known ("Class of 2027").
const DefaultGraduationMonth = time.May

// YearMonth is a calendar month.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Index is a comparable month number (year*12 + month).
func (ym YearMonth) Index() int {
	return ym.Year*12 + int(ym.Month)
}

// IsZero reports whether no date is set.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0
}

// String formats the date as "May 2026".
func (ym YearMonth) String() string {
	if ym.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d", ym.Month, ym.Year)
}

// Window is an inclusive graduation date range required by a posting.
type Window struct {
	Start YearMonth `json:"start"`
	End   YearMonth `json:"end"`
}

// Contains reports whether ym falls inside the window.
func (w Window) Contains(ym YearMonth) bool {
	return ym.Index() >= w.Start.Index() && ym.Index() <= w.End.Index()
}

const monthToken = `(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\.?`

var (
	windowPattern = regexp.MustCompile(`graduat(?:e|es|ion|ing)\s+(?:date\s+)?(?:between|from)\s+(?:` + monthToken + `\s+)?(\d{4})\s*(?:and|to|through|-|–)\s*(?:` + monthToken + `\s+)?(\d{4})`)

	candidateMonthYear = regexp.MustCompile(`graduat(?:e|es|ed|ion|ing)\b[^.;!?]{0,40}?\b` + monthToken + `\s*,?\s*(\d{4})\b`)
	candidateClassOf   = regexp.MustCompile(`\bclass\s+of\s+'?(\d{4}|\d{2})\b`)
	candidateYearOnly  = regexp.MustCompile(`graduat(?:e|es|ed|ion|ing)\b[^.;!?]{0,40}?\b(20\d{2})\b`)
)

// ParseWindow finds an "expected graduation between X and Y" requirement.
// Missing months widen the window to the whole start and end years.
func ParseWindow(jobText string) (Window, bool) {
	m := windowPattern.FindStringSubmatch(textnorm.Normalize(jobText))
	if m == nil {
		return Window{}, false
	}

	startYear, err1 := strconv.Atoi(m[2])
	endYear, err2 := strconv.Atoi(m[4])
	if err1 != nil || err2 != nil {
		return Window{}, false
	}

	startMonth, ok := ParseMonth(m[1])
	if !ok {
		startMonth = time.January
	}
	endMonth, ok := ParseMonth(m[3])
	if !ok {
		endMonth = time.December
	}

	w := Window{
		Start: YearMonth{Year: startYear, Month: startMonth},
		End:   YearMonth{Year: endYear, Month: endMonth},
	}
	if w.Start.Index() > w.End.Index() {
		return Window{}, false
	}

	return w, true
}

// CandidateGraduation resolves when the candidate graduates. A hinted year
// wins over prose; a hinted month without a year is ignored.
func CandidateGraduation(hintYear int, hintMonth time.Month, profileText string) (YearMonth, bool) {
	if plausibleYear(hintYear) {
		if hintMonth < time.January || hintMonth > time.December {
			hintMonth = DefaultGraduationMonth
		}
		return YearMonth{Year: hintYear, Month: hintMonth}, true
	}

	normalized := textnorm.Normalize(profileText)

	if m := candidateMonthYear.FindStringSubmatch(normalized); m != nil {
		month, okMonth := ParseMonth(m[1])
		year, err := strconv.Atoi(m[2])
		if okMonth && err == nil && plausibleYear(year) {
			return YearMonth{Year: year, Month: month}, true
		}
	}

	if m := candidateClassOf.FindStringSubmatch(normalized); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil && year < 100 {
			year += 2000
		}
		if err == nil && plausibleYear(year) {
			return YearMonth{Year: year, Month: DefaultGraduationMonth}, true
		}
	}

	if m := candidateYearOnly.FindStringSubmatch(normalized); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil && plausibleYear(year) {
			return YearMonth{Year: year, Month: DefaultGraduationMonth}, true
		}
	}

	return YearMonth{}, false
}

// ParseMonth accepts full or abbreviated English month names and numbers.
func ParseMonth(token string) (time.Month, bool) {
	token = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(token)), ".")
	if token == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n), true
		}
		return 0, false
	}

	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if token == name || (len(token) >= 3 && strings.HasPrefix(name, token)) {
			return m, true
		}
	}
	return 0, false
}

func plausibleYear(y int) bool {
	return y >= 1950 && y <= 2100
}

// CheckWindow compares a candidate date against a window. It only reports a
// mismatch when both sides are known.
func CheckWindow(w Window, hasWindow bool, candidate YearMonth, hasCandidate bool) (mismatch bool, reason string) {
	if !hasWindow || !hasCandidate {
		return false, ""
	}
	if w.Contains(candidate) {
		return false, ""
	}
	return true, fmt.Sprintf("Posting requires graduation between %s and %s; your profile shows %s.", w.Start, w.End, candidate)
}
