package domain

import "time"

// NormalizeExpiry lifts any suspension or blacklist on the board whose expiry is at or before now.
// The two flags are checked independently. It reports which of them were lifted.
func NormalizeExpiry(b *Board, now time.Time) (suspensionLifted bool, blacklistLifted bool) {
	if b.Suspension.Expired(now) {
		b.Suspension = Lifted()
		suspensionLifted = true
	}
	if b.Blacklist.Expired(now) {
		b.Blacklist = Lifted()
		blacklistLifted = true
	}
	return suspensionLifted, blacklistLifted
}

// NormalizeWhitelistExpiry is NormalizeExpiry for a whitelist status
func NormalizeWhitelistExpiry(s *WhitelistStatus, now time.Time) (suspensionLifted bool, blacklistLifted bool) {
	if s.Suspension.Expired(now) {
		s.Suspension = Lifted()
		suspensionLifted = true
	}
	if s.Blacklist.Expired(now) {
		s.Blacklist = Lifted()
		blacklistLifted = true
	}
	return suspensionLifted, blacklistLifted
}
