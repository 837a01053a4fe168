package inventory

import (
	"Pantry-Inventory/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiryWindow_Contains(t *testing.T) {
	w := NewExpiryWindow(3, time.UTC)
	now := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)

	cases := []struct {
		expiry string
		want   bool
	}{
		{"2023-12-31", false},
		{"2024-01-01", true},
		{"2024-01-02", true},
		{"2024-01-04", true},
		{"2024-01-05", false},
	}
	for _, tc := range cases {
		day, err := w.ParseExpiry(tc.expiry)
		require.NoError(t, err)
		assert.Equal(t, tc.want, w.Contains(day, now), "expiry %s", tc.expiry)
	}
}

func TestExpiryWindow_UsesConfiguredZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	w := NewExpiryWindow(3, jakarta)

	// 20:00 UTC on Jan 4 is already Jan 5 in Jakarta.
	now := time.Date(2024, 1, 4, 20, 0, 0, 0, time.UTC)

	jan4, err := w.ParseExpiry("2024-01-04")
	require.NoError(t, err)
	jan8, err := w.ParseExpiry("2024-01-08")
	require.NoError(t, err)

	assert.False(t, w.Contains(jan4, now))
	assert.True(t, w.Contains(jan8, now))
}

func TestExpiryWindow_Status(t *testing.T) {
	w := NewExpiryWindow(3, time.UTC)

	cases := map[string]string{
		"2023-12-31": domain.StatusExpired,
		"2024-01-01": domain.StatusWarning,
		"2024-01-04": domain.StatusWarning,
		"2024-01-05": domain.StatusSafe,
	}
	for expiry, want := range cases {
		day, err := w.ParseExpiry(expiry)
		require.NoError(t, err)
		assert.Equal(t, want, w.Status(day, newYear), "expiry %s", expiry)
	}
}

func TestNewExpiryWindow_Defaults(t *testing.T) {
	w := NewExpiryWindow(-1, nil)
	assert.Equal(t, domain.DefaultExpiryWindowDays, w.Days)
	assert.Equal(t, time.UTC, w.Location)
}
