package store

import (
	"context"
	"time"

	"github.com/evovision/evoq-api/internal/domain"
	"github.com/evovision/evoq-api/internal/store/schema"
)

// UpdateBoardInput carries a partial board update. Nil fields are left untouched.
type UpdateBoardInput struct {
	Status     *schema.BoardStatus
	Suspension *domain.Moderation
	Blacklist  *domain.Moderation
}

// IsEmpty reports whether the update sets no field
func (i UpdateBoardInput) IsEmpty() bool {
	return i.Status == nil && i.Suspension == nil && i.Blacklist == nil
}

// UpsertWhitelistInput carries a partial whitelist upsert. Nil fields are left untouched
// on an existing entry and take their defaults on a new one.
type UpsertWhitelistInput struct {
	Enabled    *bool
	Suspension *domain.Moderation
	Blacklist  *domain.Moderation
}

// Store defines the interface for record store operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetBoard retrieves a board by game ID, returning nil when absent
	GetBoard(ctx context.Context, gameID string) (*schema.Board, error)
	// InsertBoardIfAbsent inserts the board unless one with the same game ID exists.
	// It reports whether the insert happened.
	InsertBoardIfAbsent(ctx context.Context, board *schema.Board) (bool, error)
	// UpdateBoard applies a partial update to an existing board.
	// It reports whether a board with the game ID was found.
	UpdateBoard(ctx context.Context, gameID string, input UpdateBoardInput) (bool, error)
	// LiftExpiredBoardModeration clears the suspension and blacklist of a board whose stored
	// end is at or before now. Each flag is checked against the row as it is at write time,
	// so moderation set after the caller's read is kept. It reports whether anything was cleared.
	LiftExpiredBoardModeration(ctx context.Context, gameID string, now time.Time) (bool, error)
	// ListBoards retrieves all boards ordered by creation time
	ListBoards(ctx context.Context) ([]schema.Board, error)

	// GetWhitelistEntry retrieves a whitelist entry by user ID, returning nil when absent
	GetWhitelistEntry(ctx context.Context, userID int64) (*schema.WhitelistEntry, error)
	// InsertWhitelistEntryIfAbsent inserts the entry unless one with the same user ID exists.
	// It reports whether the insert happened.
	InsertWhitelistEntryIfAbsent(ctx context.Context, entry *schema.WhitelistEntry) (bool, error)
	// UpsertWhitelistEntry sets the supplied fields, creating the entry if absent
	UpsertWhitelistEntry(ctx context.Context, userID int64, input UpsertWhitelistInput) error
	// LiftExpiredWhitelistModeration is LiftExpiredBoardModeration for whitelist entries
	LiftExpiredWhitelistModeration(ctx context.Context, userID int64, now time.Time) (bool, error)
	// ListWhitelistEntries retrieves all whitelist entries ordered by user ID
	ListWhitelistEntries(ctx context.Context) ([]schema.WhitelistEntry, error)

	// GetAdSet retrieves an ad set by ID, returning nil when absent
	GetAdSet(ctx context.Context, id string) (*schema.AdSet, error)

	// Ping checks the connection to the database
	Ping(ctx context.Context) error
}

// nullableTime converts a nil time pointer into an untyped nil so gorm writes NULL
func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
