package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSubject(name string, hr, sleep, work float64) Subject {
	return Subject{Name: name, HeartRateBPM: hr, SleepHoursPerDay: sleep, WorkHoursPerWeek: work}
}

func TestScore_ClampInvariant(t *testing.T) {
	tests := []struct {
		name    string
		subject Subject
	}{
		{"typical", mkSubject("a", 75, 8, 40)},
		{"extreme high heart rate", mkSubject("b", 1000, 0, 0)},
		{"extreme negative heart rate", mkSubject("c", -1000, 0, 0)},
		{"extreme sleep", mkSubject("d", 80, 1000, 40)},
		{"negative everything", mkSubject("e", -500, -500, -500)},
		{"extreme work", mkSubject("f", 80, 0, 10000)},
		{"zero subject", mkSubject("g", 0, 0, 0)},
	}

	est := New(DefaultCoefficients(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := est.Score(tt.subject)
			require.GreaterOrEqual(t, score, 0.0)
			require.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0.0, RiskLow},
		{40.0, RiskLow},
		{40.1, RiskModerate},
		{70.0, RiskModerate},
		{70.1, RiskHigh},
		{100.0, RiskHigh},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.score))
		})
	}
}

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    RiskLevel
		wantErr bool
	}{
		{"low", RiskLow, false},
		{"Moderate", RiskModerate, false},
		{" HIGH ", RiskHigh, false},
		{"", RiskLow, true},
		{"critical", RiskLow, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRiskLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRiskLevel_AtLeast(t *testing.T) {
	require.True(t, RiskHigh.AtLeast(RiskLow))
	require.True(t, RiskModerate.AtLeast(RiskModerate))
	require.False(t, RiskLow.AtLeast(RiskModerate))
}

func TestResults_AliceScenario(t *testing.T) {
	// raw = 0.8*(75/80) + (-1.5)*8 + 1.0*(40/50) + 20 = 9.55,
	// rounded half away from zero to 9.6.
	est := New(DefaultCoefficients(), []Subject{mkSubject("Alice", 75.0, 8.0, 40.0)})

	results := est.Results()
	require.Len(t, results, 1)
	assert.InDelta(t, 9.6, results[0].Score, 1e-9)
	assert.Equal(t, RiskLow, results[0].Risk)
	assert.Equal(t, "Alice", results[0].Subject.Name)
}

func TestResults_PreservesOrderAndLength(t *testing.T) {
	subjects := SampleSubjects()
	est := New(DefaultCoefficients(), subjects)

	results := est.Results()
	require.Len(t, results, len(subjects))
	for i, r := range results {
		assert.Equal(t, subjects[i], r.Subject)
	}
}

func TestResults_DuplicatesAllowed(t *testing.T) {
	s := mkSubject("Twin", 80, 7, 45)
	est := New(DefaultCoefficients(), []Subject{s, s})

	results := est.Results()
	require.Len(t, results, 2)
	assert.Equal(t, results[0], results[1])
}

func TestResults_Empty(t *testing.T) {
	est := New(DefaultCoefficients(), nil)
	require.Zero(t, est.Len())
	require.Empty(t, est.Results())
}

func TestResults_ClassifiesRoundedValue(t *testing.T) {
	// A raw score of 39.96 rounds to 40.0, which must classify Low,
	// not Moderate.
	coeffs := Coefficients{Bias: 39.96, HeartRateBaseline: 80, WorkBaseline: 50}
	est := New(coeffs, []Subject{mkSubject("edge", 0, 0, 0)})

	results := est.Results()
	require.Len(t, results, 1)
	assert.InDelta(t, 40.0, results[0].Score, 1e-9)
	assert.Equal(t, RiskLow, results[0].Risk)
}

func TestScore_CustomCoefficients(t *testing.T) {
	// Raising the bias past the ceiling exercises the upper clamp.
	coeffs := DefaultCoefficients()
	coeffs.Bias = 500.0
	est := New(coeffs, nil)

	score := est.Score(mkSubject("x", 75, 8, 40))
	require.Equal(t, 100.0, score)
	require.Equal(t, RiskHigh, Classify(score))
}

func TestDefaultCoefficients(t *testing.T) {
	c := DefaultCoefficients()
	assert.Equal(t, 0.8, c.HeartRateWeight)
	assert.Equal(t, -1.5, c.SleepWeight)
	assert.Equal(t, 1.0, c.WorkWeight)
	assert.Equal(t, 20.0, c.Bias)
	assert.Equal(t, 80.0, c.HeartRateBaseline)
	assert.Equal(t, 50.0, c.WorkBaseline)
}
