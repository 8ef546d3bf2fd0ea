package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2024-03-01", "2024-03-01"},
		{" 2024-03-01 ", "2024-03-01"},
		{"01/03/2024", "2024-03-01"},
		{"1/3/2024", "2024-03-01"},
		{"3/1/26", "2026-01-03"},
		{"31/12/2024", "2024-12-31"},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.want, got, tc.input)
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	bad := []string{
		"",
		"   ",
		"2024-13-01",
		"32/01/2024",
		"01/2024",
		"01/03/2024/extra",
		"not a date",
	}
	for _, input := range bad {
		_, err := Normalize(input)
		require.Error(t, err, input)
	}
}

func TestLocationFallsBack(t *testing.T) {
	require.Equal(t, "UTC", Location("UTC").String())
	require.Equal(t, DefaultTimezone, Location("").String())
	require.Equal(t, DefaultTimezone, Location("Nope/Nowhere").String())
}

func TestToday(t *testing.T) {
	got := Today("UTC")
	parsed, err := time.Parse(ISO, got)
	require.NoError(t, err)
	require.Equal(t, got, parsed.Format(ISO))
}
