package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/jobfit/internal/eligibility"
	"github.com/spigell/jobfit/internal/signals"
)

// Hints are the structured profile fields the engine understands. Each field
// is decoded on its own, so one malformed value never affects another.
type Hints struct {
	SchoolTier   string     `json:"school_tier,omitempty"`
	GPA          *float64   `json:"gpa,omitempty"`
	GPABand      string     `json:"gpa_band,omitempty"`
	EmployerTier int        `json:"employer_tier,omitempty"`
	GradYear     int        `json:"grad_year,omitempty"`
	GradMonth    time.Month `json:"grad_month,omitempty"`
	TargetRoles  []string   `json:"target_roles_list,omitempty"`
}

// DecodeHints reads loosely typed profile hints. Unknown keys are ignored and
// values that cannot be coerced fall back to their zero value.
func DecodeHints(raw map[string]any) Hints {
	var h Hints
	if len(raw) == 0 {
		return h
	}

	h.SchoolTier = strings.ToUpper(coerceString(raw["school_tier"]))
	h.GPABand = strings.ToLower(coerceString(raw["gpa_band"]))

	if v, ok := raw["gpa"]; ok {
		if f := coerceFloat(v); !math.IsNaN(f) && f > 0 && f <= signals.MaxGPA {
			h.GPA = &f
		}
	}

	h.EmployerTier = coerceInt(raw["employer_tier"])
	h.GradYear = coerceInt(raw["grad_year"])
	h.GradMonth = coerceMonth(raw["grad_month"])

	roles, ok := raw["target_roles_list"]
	if !ok {
		roles = raw["target_roles"]
	}
	h.TargetRoles = coerceStrings(roles)

	return h
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	}

	var s string
	if err := mapstructure.WeakDecode(v, &s); err == nil {
		return strings.TrimSpace(s)
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}

func coerceFloat(v any) float64 {
	if v == nil {
		return math.NaN()
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
		if v == "" {
			return math.NaN()
		}
	}

	var f float64
	if err := mapstructure.WeakDecode(v, &f); err != nil {
		return math.NaN()
	}
	return f
}

func coerceInt(v any) int {
	f := coerceFloat(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0
	}
	return int(f)
}

func coerceMonth(v any) time.Month {
	if s, ok := v.(string); ok {
		if m, ok := eligibility.ParseMonth(s); ok {
			return m
		}
		return 0
	}

	n := coerceInt(v)
	if n < 1 || n > 12 {
		return 0
	}
	return time.Month(n)
}

func coerceStrings(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return strings.Split(val, ",")
	}

	var out []string
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return nil
	}
	return out
}
