package registry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/evovision/evoq-api/internal/adapter"
	"github.com/evovision/evoq-api/internal/domain"
	"github.com/evovision/evoq-api/internal/logger"
	"github.com/evovision/evoq-api/internal/store"
	"github.com/evovision/evoq-api/internal/store/schema"
)

// WhitelistRegistry owns the lifecycle of per-user whitelist entries.
// User IDs arrive as text and must be base-10 integers.
//
//go:generate mockgen -source=whitelist.go -destination=../mocks/whitelist_registry.go -package=mocks -mock_names=WhitelistRegistry=MockWhitelistRegistry
type WhitelistRegistry interface {
	// IsWhitelisted reports whether an entry exists for the user
	IsWhitelisted(ctx context.Context, userID string) (bool, error)

	// GetStatus returns the moderation status of a user.
	// Unknown users are reported as not whitelisted and not enabled, without a write.
	GetStatus(ctx context.Context, userID string) (*domain.WhitelistStatus, error)

	// Upsert merges the supplied fields into the user's entry, creating it if absent
	Upsert(ctx context.Context, userID string, update domain.WhitelistUpdate) (*domain.WhitelistStatus, error)

	// Add creates a bare entry, failing with domain.ErrAlreadyExists if one exists
	Add(ctx context.Context, userID string) (*domain.WhitelistStatus, error)

	// List returns every entry
	List(ctx context.Context) ([]domain.WhitelistStatus, error)
}

type whitelistRegistry struct {
	store store.Store
	clock adapter.Clock
}

// NewWhitelistRegistry creates a new whitelist registry
func NewWhitelistRegistry(store store.Store, clock adapter.Clock) WhitelistRegistry {
	return &whitelistRegistry{
		store: store,
		clock: clock,
	}
}

// IsWhitelisted reports whether an entry exists for the user
func (r *whitelistRegistry) IsWhitelisted(ctx context.Context, userID string) (bool, error) {
	id, err := domain.ParseUserID(userID)
	if err != nil {
		return false, err
	}

	entry, err := r.store.GetWhitelistEntry(ctx, id)
	if err != nil {
		return false, storeError("get whitelist entry", err)
	}

	return entry != nil, nil
}

// GetStatus returns the moderation status of a user
func (r *whitelistRegistry) GetStatus(ctx context.Context, userID string) (*domain.WhitelistStatus, error) {
	id, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}

	status, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return &domain.WhitelistStatus{
			UserID:      id,
			Whitelisted: false,
			Enabled:     false,
		}, nil
	}

	return status, nil
}

// Upsert merges the supplied fields into the user's entry
func (r *whitelistRegistry) Upsert(ctx context.Context, userID string, update domain.WhitelistUpdate) (*domain.WhitelistStatus, error) {
	id, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	input := store.UpsertWhitelistInput{
		Enabled:    update.Enabled,
		Suspension: moderationUpdate(update.Suspended, update.SuspendedDuration, now),
		Blacklist:  moderationUpdate(update.Blacklisted, update.BlacklistedDuration, now),
	}

	if err := r.store.UpsertWhitelistEntry(ctx, id, input); err != nil {
		return nil, storeError("upsert whitelist entry", err)
	}

	logger.InfoCtx(ctx, "Upserted whitelist entry",
		zap.Int64("user_id", id),
		zap.Boolp("enabled", update.Enabled),
		zap.Boolp("suspended", update.Suspended),
		zap.Boolp("blacklisted", update.Blacklisted),
	)

	status, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, fmt.Errorf("%w: whitelist entry %d missing after upsert", domain.ErrStoreUnavailable, id)
	}

	return status, nil
}

// Add creates a bare entry
func (r *whitelistRegistry) Add(ctx context.Context, userID string) (*domain.WhitelistStatus, error) {
	id, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	entry := &schema.WhitelistEntry{
		UserID:    id,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	inserted, err := r.store.InsertWhitelistEntryIfAbsent(ctx, entry)
	if err != nil {
		return nil, storeError("insert whitelist entry", err)
	}
	if !inserted {
		return nil, fmt.Errorf("%w: whitelist entry %d", domain.ErrAlreadyExists, id)
	}

	logger.InfoCtx(ctx, "Added user to whitelist", zap.Int64("user_id", id))

	return toWhitelistStatus(entry), nil
}

// List returns every entry with expired moderation lifted
func (r *whitelistRegistry) List(ctx context.Context) ([]domain.WhitelistStatus, error) {
	entries, err := r.store.ListWhitelistEntries(ctx)
	if err != nil {
		return nil, storeError("list whitelist entries", err)
	}

	now := r.clock.Now()
	statuses := make([]domain.WhitelistStatus, 0, len(entries))
	for i := range entries {
		status := toWhitelistStatus(&entries[i])
		if err := r.writeBack(ctx, status, now); err != nil {
			return nil, err
		}
		statuses = append(statuses, *status)
	}

	return statuses, nil
}

// load reads an entry and writes back any expired moderation. It returns nil when the entry is absent.
func (r *whitelistRegistry) load(ctx context.Context, userID int64) (*domain.WhitelistStatus, error) {
	entry, err := r.store.GetWhitelistEntry(ctx, userID)
	if err != nil {
		return nil, storeError("get whitelist entry", err)
	}
	if entry == nil {
		return nil, nil
	}

	status := toWhitelistStatus(entry)
	if err := r.writeBack(ctx, status, r.clock.Now()); err != nil {
		return nil, err
	}

	return status, nil
}

// writeBack lifts expired moderation on status and, if anything expired, asks the store to clear it
func (r *whitelistRegistry) writeBack(ctx context.Context, status *domain.WhitelistStatus, now time.Time) error {
	suspensionLifted, blacklistLifted := domain.NormalizeWhitelistExpiry(status, now)
	if !suspensionLifted && !blacklistLifted {
		return nil
	}

	cleared, err := r.store.LiftExpiredWhitelistModeration(ctx, status.UserID, now)
	if err != nil {
		return storeError("write back whitelist expiry", err)
	}

	logger.DebugCtx(ctx, "Lifted expired whitelist moderation",
		zap.Int64("user_id", status.UserID),
		zap.Bool("suspension_lifted", suspensionLifted),
		zap.Bool("blacklist_lifted", blacklistLifted),
		zap.Bool("cleared", cleared),
	)

	return nil
}

// moderationUpdate turns a supplied flag and duration token into a stored moderation.
// A nil flag leaves the moderation untouched. A false flag clears the expiry.
func moderationUpdate(flag *bool, token *string, now time.Time) *domain.Moderation {
	if flag == nil {
		return nil
	}

	moderation := domain.Lifted()
	if *flag {
		var t string
		if token != nil {
			t = *token
		}
		moderation = domain.ModerationFromToken(t, now)
	}

	return &moderation
}
