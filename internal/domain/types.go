package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BoardStatus represents whether a board serves ads
type BoardStatus string

const (
	BoardStatusActive   BoardStatus = "active"
	BoardStatusDisabled BoardStatus = "disabled"
)

// IsValidBoardStatus checks if a board status is valid
func IsValidBoardStatus(status BoardStatus) bool {
	return status == BoardStatusActive || status == BoardStatusDisabled
}

// Moderation is a suspension or blacklist flag with an optional expiry.
// A nil Until means the flag holds until it is lifted explicitly.
type Moderation struct {
	Active bool
	Until  *time.Time
}

// Indefinite returns an active moderation with no expiry
func Indefinite() Moderation {
	return Moderation{Active: true}
}

// Lifted returns an inactive moderation
func Lifted() Moderation {
	return Moderation{}
}

// ModerationFromToken builds an active moderation from a duration token.
// Tokens that don't parse produce an indefinite moderation.
func ModerationFromToken(token string, now time.Time) Moderation {
	d, ok := ParseDuration(token)
	if !ok {
		return Indefinite()
	}
	until := now.Add(d)
	return Moderation{Active: true, Until: &until}
}

// Expired reports whether an active, time-bounded moderation has run out at now
func (m Moderation) Expired(now time.Time) bool {
	return m.Active && m.Until != nil && !now.Before(*m.Until)
}

// Board is the per-game ad-slot and moderation state
type Board struct {
	GameID          string
	UserAds         []string
	Status          BoardStatus
	Suspension      Moderation
	Blacklist       Moderation
	EvoqAdsPresent  bool
	EvoVisionsCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Visible reports whether the board is active
func (b *Board) Visible() bool {
	return b.Status == BoardStatusActive
}

// WhitelistStatus is the moderation state of a user as seen by callers.
// Whitelisted is false when no record exists for the user.
type WhitelistStatus struct {
	UserID      int64
	Whitelisted bool
	Enabled     bool
	Suspension  Moderation
	Blacklist   Moderation
	CreatedAt   *time.Time
}

// WhitelistUpdate carries the fields supplied to a whitelist upsert.
// Nil fields are left untouched.
type WhitelistUpdate struct {
	Enabled             *bool
	Suspended           *bool
	SuspendedDuration   *string
	Blacklisted         *bool
	BlacklistedDuration *string
}

// Validate rejects a duration token supplied without its flag. A duration only applies
// together with the flag it belongs to.
func (u WhitelistUpdate) Validate() error {
	if u.SuspendedDuration != nil && u.Suspended == nil {
		return fmt.Errorf("%w: suspendedDuration requires suspended", ErrInvalidArgument)
	}
	if u.BlacklistedDuration != nil && u.Blacklisted == nil {
		return fmt.Errorf("%w: blacklistedDuration requires blacklisted", ErrInvalidArgument)
	}
	return nil
}

// ParseGameID validates a game identifier. The identifier is used as given;
// one made only of whitespace is rejected.
func ParseGameID(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: gameID is required", ErrInvalidArgument)
	}
	return raw, nil
}

// ParseUserID parses a base-10 numeric user identifier
func ParseUserID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: userID is required", ErrInvalidArgument)
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: userID must be numeric, got %q", ErrInvalidArgument, raw)
	}

	return userID, nil
}
