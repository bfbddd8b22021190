package schema

import "time"

// WhitelistEntry represents the evoq_whitelist table - per-user membership and moderation state
type WhitelistEntry struct {
	UserID  int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Enabled bool  `gorm:"column:enabled;not null"`
	// SuspendedDuration holds the absolute suspension expiry, nil while indefinite
	Suspended         bool       `gorm:"column:suspended;not null"`
	SuspendedDuration *time.Time `gorm:"column:suspended_duration;type:timestamptz"`
	// BlacklistedDuration holds the absolute blacklist expiry, nil while indefinite
	Blacklisted         bool       `gorm:"column:blacklisted;not null"`
	BlacklistedDuration *time.Time `gorm:"column:blacklisted_duration;type:timestamptz"`
	CreatedAt           time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WhitelistEntry model
func (WhitelistEntry) TableName() string {
	return "evoq_whitelist"
}
