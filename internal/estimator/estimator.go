package estimator

import (
	"fmt"
	"math"
	"strings"
)

// RiskLevel is the coarse three-bucket classification of a stress score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

var riskRank = map[RiskLevel]int{
	RiskLow:      0,
	RiskModerate: 1,
	RiskHigh:     2,
}

func (r RiskLevel) String() string {
	return string(r)
}

// AtLeast returns true if r is at or above the target level.
func (r RiskLevel) AtLeast(target RiskLevel) bool {
	return riskRank[r] >= riskRank[target]
}

// ParseRiskLevel converts a string flag value to a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, nil
	case "moderate":
		return RiskModerate, nil
	case "high":
		return RiskHigh, nil
	default:
		return RiskLow, fmt.Errorf("invalid risk level %q: must be low, moderate, or high", s)
	}
}

// Subject is one person's input record. Measurements are taken as given:
// the estimator performs no plausibility checks, so negative or extreme
// values flow through the formula and are handled by the final clamp.
type Subject struct {
	Name             string
	HeartRateBPM     float64
	SleepHoursPerDay float64
	WorkHoursPerWeek float64
}

// Result pairs a subject with its rounded score and risk level. Results are
// derived on demand and never cached.
type Result struct {
	Subject Subject
	Score   float64
	Risk    RiskLevel
}

// Estimator scores an ordered list of subjects with a fixed coefficient set.
// It is intended for sequential use by a single caller.
type Estimator struct {
	coeffs   Coefficients
	subjects []Subject
}

// New returns an Estimator over the given subjects. The slice is copied;
// insertion order is preserved and duplicates are allowed. A nil or empty
// slice is valid.
func New(coeffs Coefficients, subjects []Subject) *Estimator {
	return &Estimator{
		coeffs:   coeffs,
		subjects: append([]Subject(nil), subjects...),
	}
}

// Len returns the number of subjects held.
func (e *Estimator) Len() int {
	return len(e.subjects)
}

// normalize converts raw measurements into the scales the formula expects.
// Heart rate and work hours are divided by their baselines; sleep is already
// hours/day and passes through unchanged.
func (e *Estimator) normalize(s Subject) (hrNorm, sleep, workNorm float64) {
	hrNorm = s.HeartRateBPM / e.coeffs.HeartRateBaseline
	sleep = s.SleepHoursPerDay
	workNorm = s.WorkHoursPerWeek / e.coeffs.WorkBaseline
	return hrNorm, sleep, workNorm
}

// Score returns the stress score for a subject, clamped into [0, 100].
// Pure function of the coefficient set and the subject.
func (e *Estimator) Score(s Subject) float64 {
	hr, sleep, work := e.normalize(s)
	raw := e.coeffs.HeartRateWeight*hr +
		e.coeffs.SleepWeight*sleep +
		e.coeffs.WorkWeight*work +
		e.coeffs.Bias
	return math.Max(0.0, math.Min(100.0, raw))
}

// Classify buckets a score into a risk level. Boundaries are strict:
// >70 High, >40 Moderate, otherwise Low.
func Classify(score float64) RiskLevel {
	switch {
	case score > 70:
		return RiskHigh
	case score > 40:
		return RiskModerate
	default:
		return RiskLow
	}
}

// Results computes one Result per subject in insertion order. Scores are
// rounded to one decimal, half away from zero, and the rounded value is what
// gets classified so displayed scores and labels never disagree.
func (e *Estimator) Results() []Result {
	out := make([]Result, 0, len(e.subjects))
	for _, s := range e.subjects {
		score := roundScore(e.Score(s))
		out = append(out, Result{
			Subject: s,
			Score:   score,
			Risk:    Classify(score),
		})
	}
	return out
}

// roundScore rounds to one decimal place, half away from zero.
func roundScore(s float64) float64 {
	return math.Round(s*10) / 10
}
