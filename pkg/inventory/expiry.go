package inventory

import (
	"Pantry-Inventory/domain"
	"Pantry-Inventory/internal/utils"
	"time"
)

// ExpiryWindow is the closed range of calendar days [today, today+Days]
// evaluated in Location.
type ExpiryWindow struct {
	Days     int
	Location *time.Location
}

func NewExpiryWindow(days int, loc *time.Location) ExpiryWindow {
	if days < 0 {
		days = domain.DefaultExpiryWindowDays
	}
	if loc == nil {
		loc = time.UTC
	}
	return ExpiryWindow{Days: days, Location: loc}
}

// ParseExpiry reads a stored expiry_date as a calendar day in the window's zone.
func (w ExpiryWindow) ParseExpiry(value string) (time.Time, error) {
	return utils.ParseCalendarDate(value, w.Location)
}

func (w ExpiryWindow) Contains(expiryDay, now time.Time) bool {
	today := utils.StartOfDay(now, w.Location)
	last := today.AddDate(0, 0, w.Days)
	return !expiryDay.Before(today) && !expiryDay.After(last)
}

func (w ExpiryWindow) Status(expiryDay, now time.Time) string {
	today := utils.StartOfDay(now, w.Location)
	if expiryDay.Before(today) {
		return domain.StatusExpired
	}
	if w.Contains(expiryDay, now) {
		return domain.StatusWarning
	}
	return domain.StatusSafe
}
