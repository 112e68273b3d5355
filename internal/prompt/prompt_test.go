package prompt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"72.5", false},
		{" 80 ", false},
		{"-5", false},
		{"0", false},
		{"", true},
		{"eighty", true},
		{"7,5", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateNumber(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 72.5, parseNumber("72.5"))
	assert.Equal(t, 80.0, parseNumber(" 80 "))
	assert.Zero(t, parseNumber(""))
}

func TestLoadWithFallback_MissingFile(t *testing.T) {
	var out bytes.Buffer
	subjects, err := loadWithFallback(&out, filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	require.Len(t, subjects, 4)
	assert.Contains(t, out.String(), "File not found")
}

func TestLoadWithFallback_NoUsableRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	content := strings.Join([]string{
		"name,heart_rate_bpm,sleep_hours_per_day,work_hours_per_week",
		"Mallory,not-a-number,7,50",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var out bytes.Buffer
	subjects, err := loadWithFallback(&out, path)
	require.NoError(t, err)
	require.Len(t, subjects, 4)
	assert.Contains(t, out.String(), "no usable rows")
}

func TestLoadWithFallback_GoodFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "good.csv")
	content := strings.Join([]string{
		"name,heart_rate_bpm,sleep_hours_per_day,work_hours_per_week",
		"Alice,75,8,40",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var out bytes.Buffer
	subjects, err := loadWithFallback(&out, path)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Alice", subjects[0].Name)
	assert.Empty(t, out.String())
}
