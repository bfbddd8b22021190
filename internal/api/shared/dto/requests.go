package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/evovision/evoq-api/internal/api/shared/constants"
	apierrors "github.com/evovision/evoq-api/internal/api/shared/errors"
	"github.com/evovision/evoq-api/internal/domain"
)

// CreateBoardRequest represents the request body for explicitly creating a board
type CreateBoardRequest struct {
	GameID  string   `json:"gameID"`
	UserAds []string `json:"userAds"`
}

// Validate validates the request body
func (r *CreateBoardRequest) Validate() error {
	if strings.TrimSpace(r.GameID) == "" {
		return apierrors.NewValidationError("gameID is required")
	}

	if len(r.UserAds) > constants.MAX_USER_ADS_PER_BOARD {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d user ads allowed", constants.MAX_USER_ADS_PER_BOARD))
	}

	for _, ad := range r.UserAds {
		if strings.TrimSpace(ad) == "" {
			return apierrors.NewValidationError("userAds must not contain empty entries")
		}
	}

	return nil
}

// BoardActionRequest represents the request body for a board state transition.
// Time is a duration token and is only read by suspend and blacklist.
type BoardActionRequest struct {
	GameID string `json:"gameID"`
	Time   string `json:"time"`
}

// Validate validates the request body
func (r *BoardActionRequest) Validate() error {
	if strings.TrimSpace(r.GameID) == "" {
		return apierrors.NewValidationError("gameID is required")
	}
	return nil
}

// UpsertWhitelistRequest represents the request body for creating or updating a whitelist entry.
// Omitted fields keep their stored values.
type UpsertWhitelistRequest struct {
	UserID              json.Number `json:"userID"`
	Enabled             *bool       `json:"enabled"`
	Suspended           *bool       `json:"suspended"`
	SuspendedDuration   *string     `json:"suspendedDuration"`
	Blacklisted         *bool       `json:"blacklisted"`
	BlacklistedDuration *string     `json:"blacklistedDuration"`
}

// Validate validates the request body
func (r *UpsertWhitelistRequest) Validate() error {
	if r.UserID == "" {
		return apierrors.NewValidationError("userID is required")
	}
	if _, err := domain.ParseUserID(r.UserID.String()); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid userID: %s", r.UserID))
	}
	if err := r.Update().Validate(); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// Update returns the domain update carried by the request
func (r *UpsertWhitelistRequest) Update() domain.WhitelistUpdate {
	return domain.WhitelistUpdate{
		Enabled:             r.Enabled,
		Suspended:           r.Suspended,
		SuspendedDuration:   r.SuspendedDuration,
		Blacklisted:         r.Blacklisted,
		BlacklistedDuration: r.BlacklistedDuration,
	}
}

// AddWhitelistRequest represents the request body for adding a user to the whitelist
type AddWhitelistRequest struct {
	UserID json.Number `json:"userID"`
}

// Validate validates the request body
func (r *AddWhitelistRequest) Validate() error {
	if r.UserID == "" {
		return apierrors.NewValidationError("userID is required")
	}
	if _, err := domain.ParseUserID(r.UserID.String()); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid userID: %s", r.UserID))
	}
	return nil
}
