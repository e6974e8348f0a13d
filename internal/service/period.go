package service

import "time"

// periodLength is one paid subscription term.
const periodLength = 30 * 24 * time.Hour

// NextPeriodEnd computes the expiry after one more paid term. An expired or
// never-set period starts a fresh term from now; an active one stacks on top
// of the current expiry so paying early never shortens a subscription.
// A period ending exactly now counts as expired.
func NextPeriodEnd(now time.Time, current *time.Time) time.Time {
	if current == nil || !current.After(now) {
		return now.Add(periodLength)
	}
	return current.Add(periodLength)
}
