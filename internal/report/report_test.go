package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmhq/stresscale/internal/estimator"
)

func renderToString(t *testing.T, results []estimator.Result) string {
	t.Helper()
	var buf bytes.Buffer
	Render(&buf, results)
	return buf.String()
}

func TestRender_Empty(t *testing.T) {
	out := renderToString(t, nil)
	assert.Equal(t, EmptyNotice+"\n", out)
}

func TestRender_Table(t *testing.T) {
	results := estimator.New(estimator.DefaultCoefficients(), estimator.SampleSubjects()).Results()
	out := renderToString(t, results)

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Score | Risk")
	for _, name := range []string{"Alice", "Bob", "Charlie", "Diana"} {
		assert.Contains(t, out, name)
	}
	// HR and work as whole numbers, sleep and score to one decimal.
	assert.Contains(t, out, "|   75 |   8.0 |   40 |   9.6 | Low")
	assert.Contains(t, out, "Processed 4 record(s).")
	assert.Contains(t, out, "not medical advice")
}

func TestRender_PreservesOrder(t *testing.T) {
	results := estimator.New(estimator.DefaultCoefficients(), estimator.SampleSubjects()).Results()
	out := renderToString(t, results)

	require.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Bob"))
	require.Less(t, strings.Index(out, "Bob"), strings.Index(out, "Charlie"))
	require.Less(t, strings.Index(out, "Charlie"), strings.Index(out, "Diana"))
}

func TestRender_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 40)
	results := []estimator.Result{{
		Subject: estimator.Subject{Name: long, HeartRateBPM: 80, SleepHoursPerDay: 7, WorkHoursPerWeek: 40},
		Score:   10.0,
		Risk:    estimator.RiskLow,
	}}

	out := renderToString(t, results)
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 10))
	assert.Equal(t, "exactlyten", truncateName("exactlyten", 10))
	assert.Equal(t, "overlengt…", truncateName("overlengthy", 10))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 5))
}
