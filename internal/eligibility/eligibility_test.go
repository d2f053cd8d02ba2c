package eligibility

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  Window
		found bool
	}{
		{
			name:  "months on both sides",
			text:  "Candidates must have an expected graduation between December 2025 and May 2026.",
			want:  Window{Start: YearMonth{2025, time.December}, End: YearMonth{2026, time.May}},
			found: true,
		},
		{
			name:  "years only widen to full years",
			text:  "Graduating between 2025 and 2026",
			want:  Window{Start: YearMonth{2025, time.January}, End: YearMonth{2026, time.December}},
			found: true,
		},
		{
			name:  "from to with abbreviations",
			text:  "graduation date from Dec. 2024 to Jun 2025",
			want:  Window{Start: YearMonth{2024, time.December}, End: YearMonth{2025, time.June}},
			found: true,
		},
		{
			name: "inverted window is ignored",
			text: "graduation between May 2027 and May 2026",
		},
		{
			name: "no window",
			text: "Recent graduates welcome.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseWindow(tt.text)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if got != tt.want {
				t.Fatalf("window = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCandidateGraduation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		year    int
		month   time.Month
		profile string
		want    YearMonth
		found   bool
	}{
		{name: "hint year defaults to may", year: 2026, want: YearMonth{2026, time.May}, found: true},
		{name: "hint year and month", year: 2025, month: time.December, profile: "Class of 2027", want: YearMonth{2025, time.December}, found: true},
		{name: "explicit month year", profile: "Expected graduation: December 2025, BS Finance", want: YearMonth{2025, time.December}, found: true},
		{name: "class of", profile: "Economics major, Class of 2027", want: YearMonth{2027, time.May}, found: true},
		{name: "class of short year", profile: "Class of '26", want: YearMonth{2026, time.May}, found: true},
		{name: "graduating year", profile: "Graduating in spring 2026 with honors", want: YearMonth{2026, time.May}, found: true},
		{name: "implausible hint falls back to prose", year: 26, profile: "Class of 2027", want: YearMonth{2027, time.May}, found: true},
		{name: "nothing", profile: "I like spreadsheets."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := CandidateGraduation(tt.year, tt.month, tt.profile)
			if ok != tt.found || got != tt.want {
				t.Fatalf("CandidateGraduation() = %v, %v; want %v, %v", got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	tests := map[string]time.Month{
		"May":       time.May,
		"sept.":     time.September,
		"12":        time.December,
		"february":  time.February,
		" Jan ":     time.January,
		"13":        0,
		"ma":        0,
		"":          0,
		"thursday":  0,
		"decembers": 0,
	}

	for in, want := range tests {
		got, ok := ParseMonth(in)
		if got != want || ok != (want != 0) {
			t.Fatalf("ParseMonth(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
}

func TestCheckWindow(t *testing.T) {
	t.Parallel()

	w := Window{Start: YearMonth{2025, time.December}, End: YearMonth{2026, time.May}}

	mismatch, reason := CheckWindow(w, true, YearMonth{2027, time.May}, true)
	if !mismatch {
		t.Fatalf("expected mismatch")
	}
	for _, want := range []string{"December 2025", "May 2026", "May 2027"} {
		if !strings.Contains(reason, want) {
			t.Fatalf("reason %q does not mention %q", reason, want)
		}
	}

	if mismatch, _ := CheckWindow(w, true, YearMonth{2026, time.May}, true); mismatch {
		t.Fatalf("end month is inclusive")
	}
	if mismatch, _ := CheckWindow(w, false, YearMonth{2030, time.May}, true); mismatch {
		t.Fatalf("no window means no check")
	}
	if mismatch, _ := CheckWindow(w, true, YearMonth{}, false); mismatch {
		t.Fatalf("unknown candidate date means no check")
	}
}

func TestMissingCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		job     string
		profile string
		want    []string
	}{
		{
			name:    "required cpa missing",
			job:     "Staff Accountant. Active CPA license required.",
			profile: "Accounting major with audit internship.",
			want:    []string{"CPA"},
		},
		{
			name:    "cpa present in profile",
			job:     "Staff Accountant. Active CPA license required.",
			profile: "Passed all four sections; licensed CPA in Ohio.",
		},
		{
			name:    "preferred credentials do not count",
			job:     "CPA preferred. PMP is a plus. Pursuing CFA charter is a bonus.",
			profile: "Finance student.",
		},
		{
			name:    "allowlist order",
			job:     "Must hold Series 63. Must hold Series 7. Active security clearance required.",
			profile: "Series 7 licensed.",
			want:    []string{"Series 63", "security clearance"},
		},
		{
			name:    "visa and driving are not credentials",
			job:     "Valid driver's license and work authorization required.",
			profile: "",
		},
		{
			name:    "clearance to be obtained",
			job:     "Analyst role. Must be able to obtain a security clearance.",
			profile: "Economics major.",
		},
		{
			name:    "eligibility and progress",
			job:     "Candidates must be eligible for a secret clearance. Progress toward the CPA is expected.",
			profile: "Economics major.",
		},
		{
			name:    "held clearance still required",
			job:     "Active TS/SCI clearance required. Ability to travel.",
			profile: "Economics major.",
			want:    []string{"security clearance"},
		},
		{
			name:    "series prefix does not overlap",
			job:     "Series 79 required.",
			profile: "Series 7",
			want:    []string{"Series 79"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MissingCredentials(tt.job, tt.profile)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("MissingCredentials() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMissingReason(t *testing.T) {
	t.Parallel()

	if got := MissingReason(nil); got != "" {
		t.Fatalf("MissingReason(nil) = %q", got)
	}
	got := MissingReason([]string{"CPA", "PMP"})
	if !strings.Contains(got, "CPA, PMP") {
		t.Fatalf("MissingReason() = %q", got)
	}
}
