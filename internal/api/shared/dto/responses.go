package dto

import (
	"time"

	"github.com/evovision/evoq-api/internal/domain"
)

// BoardResponse represents a board as returned by the API.
// Timestamps are milliseconds since the Unix epoch; a null end means indefinite.
type BoardResponse struct {
	GameID          string   `json:"gameID"`
	UserAds         []string `json:"userAds"`
	Status          string   `json:"status"`
	Visibility      bool     `json:"visibility"`
	Suspended       bool     `json:"suspended"`
	SuspensionEnd   *int64   `json:"suspensionEnd"`
	Blacklisted     bool     `json:"blacklisted"`
	BlacklistEnd    *int64   `json:"blacklistEnd"`
	EvoqAdsPresent  bool     `json:"evoqAdsPresent"`
	EvoVisionsCount int      `json:"evoVisionsCount"`
	CreatedAt       int64    `json:"createdAt"`
	UpdatedAt       int64    `json:"updatedAt"`
}

// BoardListResponse represents a list of boards
type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
}

// WhitelistStatusResponse represents the moderation status of a user
type WhitelistStatusResponse struct {
	UserID              int64  `json:"userID"`
	Whitelisted         bool   `json:"whitelisted"`
	Enabled             bool   `json:"enabled"`
	Suspended           bool   `json:"suspended"`
	SuspendedDuration   *int64 `json:"suspendedDuration"`
	Blacklisted         bool   `json:"blacklisted"`
	BlacklistedDuration *int64 `json:"blacklistedDuration"`
	CreatedAt           *int64 `json:"createdAt,omitempty"`
}

// WhitelistListResponse represents a list of whitelist entries
type WhitelistListResponse struct {
	Users []WhitelistStatusResponse `json:"users"`
}

// AdsResponse represents the global EvoqAds set
type AdsResponse struct {
	Ads []string `json:"ads"`
}

// HealthResponse represents the health status of the API
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// MapBoardToDTO converts a domain board to its API representation
func MapBoardToDTO(board *domain.Board) *BoardResponse {
	userAds := board.UserAds
	if userAds == nil {
		userAds = []string{}
	}

	return &BoardResponse{
		GameID:          board.GameID,
		UserAds:         userAds,
		Status:          string(board.Status),
		Visibility:      board.Visible(),
		Suspended:       board.Suspension.Active,
		SuspensionEnd:   millisPtr(board.Suspension.Until),
		Blacklisted:     board.Blacklist.Active,
		BlacklistEnd:    millisPtr(board.Blacklist.Until),
		EvoqAdsPresent:  board.EvoqAdsPresent,
		EvoVisionsCount: board.EvoVisionsCount,
		CreatedAt:       board.CreatedAt.UnixMilli(),
		UpdatedAt:       board.UpdatedAt.UnixMilli(),
	}
}

// MapBoardsToDTO converts a list of domain boards
func MapBoardsToDTO(boards []domain.Board) *BoardListResponse {
	resp := &BoardListResponse{Boards: make([]BoardResponse, 0, len(boards))}
	for i := range boards {
		resp.Boards = append(resp.Boards, *MapBoardToDTO(&boards[i]))
	}
	return resp
}

// MapWhitelistStatusToDTO converts a domain whitelist status to its API representation
func MapWhitelistStatusToDTO(status *domain.WhitelistStatus) *WhitelistStatusResponse {
	return &WhitelistStatusResponse{
		UserID:              status.UserID,
		Whitelisted:         status.Whitelisted,
		Enabled:             status.Enabled,
		Suspended:           status.Suspension.Active,
		SuspendedDuration:   millisPtr(status.Suspension.Until),
		Blacklisted:         status.Blacklist.Active,
		BlacklistedDuration: millisPtr(status.Blacklist.Until),
		CreatedAt:           millisPtr(status.CreatedAt),
	}
}

// MapWhitelistStatusesToDTO converts a list of domain whitelist statuses
func MapWhitelistStatusesToDTO(statuses []domain.WhitelistStatus) *WhitelistListResponse {
	resp := &WhitelistListResponse{Users: make([]WhitelistStatusResponse, 0, len(statuses))}
	for i := range statuses {
		resp.Users = append(resp.Users, *MapWhitelistStatusToDTO(&statuses[i]))
	}
	return resp
}

func millisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
