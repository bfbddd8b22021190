package schema

import (
	"time"

	"gorm.io/datatypes"
)

// BoardStatus represents the board status stored in evoq_boards.status
type BoardStatus string

const (
	BoardStatusActive   BoardStatus = "active"
	BoardStatusDisabled BoardStatus = "disabled"
)

// Board represents the evoq_boards table - per-game ad-slot and moderation state
type Board struct {
	// GameID is the caller-supplied game identifier
	GameID string `gorm:"column:game_id;primaryKey;type:text"`
	// UserAds is the ordered list of ad references attached by the game owner
	UserAds datatypes.JSONSlice[string] `gorm:"column:user_ads;not null;type:jsonb"`
	// Status is either active or disabled
	Status BoardStatus `gorm:"column:status;not null;type:text"`
	// Suspended indicates the board is suspended; SuspensionEnd is nil while indefinite
	Suspended     bool       `gorm:"column:suspended;not null"`
	SuspensionEnd *time.Time `gorm:"column:suspension_end;type:timestamptz"`
	// Blacklisted indicates the board is blacklisted; BlacklistEnd is nil while indefinite
	Blacklisted  bool       `gorm:"column:blacklisted;not null"`
	BlacklistEnd *time.Time `gorm:"column:blacklist_end;type:timestamptz"`
	// EvoqAdsPresent is whether the global ad set was non-empty when the board was created
	EvoqAdsPresent bool `gorm:"column:evoq_ads_present;not null"`
	// EvoVisionsCount is the number of EvoVision models configured when the board was created
	EvoVisionsCount int       `gorm:"column:evo_visions_count;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Board model
func (Board) TableName() string {
	return "evoq_boards"
}
