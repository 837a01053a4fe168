package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	cases := []struct {
		name  string
		value string
		loc   *time.Location
		want  time.Time
	}{
		{"date only", "2024-01-02", time.UTC, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"surrounding spaces", " 2024-01-02 ", time.UTC, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 truncated", "2024-01-02T18:30:00Z", time.UTC, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 crosses midnight in zone", "2024-01-02T18:30:00Z", jakarta, time.Date(2024, 1, 3, 0, 0, 0, 0, jakarta)},
		{"local timestamp", "2024-01-02T08:00:00", jakarta, time.Date(2024, 1, 2, 0, 0, 0, 0, jakarta)},
		{"nil location", "2024-03-04", nil, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tc.value, tc.loc)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestParseCalendarDate_Rejects(t *testing.T) {
	for _, value := range []string{"", "tomorrow", "02/01/2024", "2024-13-01"} {
		_, err := ParseCalendarDate(value, time.UTC)
		assert.Error(t, err, "value %q", value)
	}
}

func TestValidator_IsoDate(t *testing.T) {
	InitValidator()

	type payload struct {
		ExpiryDate string `validate:"required,isodate"`
	}

	assert.NoError(t, Validate.Struct(payload{ExpiryDate: "2024-01-02"}))
	assert.Error(t, Validate.Struct(payload{ExpiryDate: "soon"}))
	assert.Error(t, Validate.Struct(payload{}))
}
