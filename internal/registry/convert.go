package registry

import (
	"github.com/evovision/evoq-api/internal/domain"
	"github.com/evovision/evoq-api/internal/store/schema"
)

func toDomainBoard(record *schema.Board) *domain.Board {
	userAds := make([]string, len(record.UserAds))
	copy(userAds, record.UserAds)

	// Unknown statuses never serve ads
	status := domain.BoardStatus(record.Status)
	if !domain.IsValidBoardStatus(status) {
		status = domain.BoardStatusDisabled
	}

	return &domain.Board{
		GameID:          record.GameID,
		UserAds:         userAds,
		Status:          status,
		Suspension:      domain.Moderation{Active: record.Suspended, Until: record.SuspensionEnd},
		Blacklist:       domain.Moderation{Active: record.Blacklisted, Until: record.BlacklistEnd},
		EvoqAdsPresent:  record.EvoqAdsPresent,
		EvoVisionsCount: record.EvoVisionsCount,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}

func toWhitelistStatus(entry *schema.WhitelistEntry) *domain.WhitelistStatus {
	createdAt := entry.CreatedAt
	return &domain.WhitelistStatus{
		UserID:      entry.UserID,
		Whitelisted: true,
		Enabled:     entry.Enabled,
		Suspension:  domain.Moderation{Active: entry.Suspended, Until: entry.SuspendedDuration},
		Blacklist:   domain.Moderation{Active: entry.Blacklisted, Until: entry.BlacklistedDuration},
		CreatedAt:   &createdAt,
	}
}
