package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_DMY(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"plain", "01/02/2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"single digits", "1/2/2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"spaced slashes", "15 / 07 / 2023", time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)},
		{"leading spaces", "  9/12/2020", time.Date(2020, 12, 9, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_Fallbacks(t *testing.T) {
	got, err := ParseDate("2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("Jan 2, 2006")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "32/01/2024", "29/02/2023", "00/05/2024", "15/13/2024"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseDate_LeapDay(t *testing.T) {
	got, err := ParseDate("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestValidDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty is fine", "", true},
		{"blank is fine", "   ", true},
		{"past date", "01/01/2024", true},
		{"today", "15/06/2024", true},
		{"tomorrow", "16/06/2024", false},
		{"garbage", "soon", false},
		{"impossible", "31/02/2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDate(tt.input, now))
		})
	}
}

func TestCanonicalDate(t *testing.T) {
	assert.Equal(t, "2024-02-01", CanonicalDate("01/02/2024"))
	assert.Equal(t, "2024-02-01", CanonicalDate("1/2/2024"))
	assert.Equal(t, "", CanonicalDate("  "))
	// Unparseable input passes through trimmed; saving is blocked elsewhere.
	assert.Equal(t, "mystery", CanonicalDate(" mystery "))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "01/02/2024", DisplayDate("2024-02-01"))
	assert.Equal(t, "09/12/2020", DisplayDate("9/12/2020"))
	assert.Equal(t, "", DisplayDate(""))
	assert.Equal(t, "mystery", DisplayDate("mystery"))
}
