package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AdSet represents the evoq_ads table
// The set with ID "global" is the one boards check at creation.
type AdSet struct {
	ID        string                      `gorm:"column:id;primaryKey;type:text"`
	Ads       datatypes.JSONSlice[string] `gorm:"column:ads;not null;type:jsonb"`
	UpdatedAt time.Time                   `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AdSet model
func (AdSet) TableName() string {
	return "evoq_ads"
}
