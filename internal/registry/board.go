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

// BoardRegistry owns the lifecycle of per-game boards
//
//go:generate mockgen -source=board.go -destination=../mocks/board_registry.go -package=mocks -mock_names=BoardRegistry=MockBoardRegistry
type BoardRegistry interface {
	// GetOrCreate returns the board for a game, creating it on first access
	GetOrCreate(ctx context.Context, gameID string) (*domain.Board, error)

	// Create explicitly creates a board, failing with domain.ErrAlreadyExists if one exists
	Create(ctx context.Context, gameID string, userAds []string) (*domain.Board, error)

	// Suspend suspends a board for the duration in token, or indefinitely if token does not parse
	Suspend(ctx context.Context, gameID string, token string) (*domain.Board, error)

	// Unsuspend lifts a board suspension
	Unsuspend(ctx context.Context, gameID string) (*domain.Board, error)

	// Blacklist blacklists a board for the duration in token, or indefinitely if token does not parse
	Blacklist(ctx context.Context, gameID string, token string) (*domain.Board, error)

	// Unblacklist lifts a board blacklist
	Unblacklist(ctx context.Context, gameID string) (*domain.Board, error)

	// Enable sets the board status to active
	Enable(ctx context.Context, gameID string) (*domain.Board, error)

	// Disable sets the board status to disabled
	Disable(ctx context.Context, gameID string) (*domain.Board, error)

	// List returns every board
	List(ctx context.Context) ([]domain.Board, error)
}

// BoardConfig holds the values snapshotted into new boards
type BoardConfig struct {
	EvoVisionsCount int
}

type boardRegistry struct {
	config BoardConfig
	store  store.Store
	ads    AdsGate
	clock  adapter.Clock
}

// NewBoardRegistry creates a new board registry
func NewBoardRegistry(config BoardConfig, store store.Store, ads AdsGate, clock adapter.Clock) BoardRegistry {
	return &boardRegistry{
		config: config,
		store:  store,
		ads:    ads,
		clock:  clock,
	}
}

// boardTransition mutates the board and records the fields it changed in input
type boardTransition func(board *domain.Board, now time.Time, input *store.UpdateBoardInput)

// GetOrCreate returns the board for a game, creating it on first access
func (r *boardRegistry) GetOrCreate(ctx context.Context, gameID string) (*domain.Board, error) {
	gameID, err := domain.ParseGameID(gameID)
	if err != nil {
		return nil, err
	}

	board, err := r.load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if board != nil {
		return board, nil
	}

	record := r.newRecord(ctx, gameID, nil)
	inserted, err := r.store.InsertBoardIfAbsent(ctx, record)
	if err != nil {
		return nil, storeError("insert board", err)
	}
	if inserted {
		logger.InfoCtx(ctx, "Created board on first access",
			zap.String("game_id", gameID),
			zap.Bool("evoq_ads_present", record.EvoqAdsPresent),
		)
		return toDomainBoard(record), nil
	}

	// Another request created the board between our lookup and insert
	logger.DebugCtx(ctx, "Board insert lost race, reading existing board", zap.String("game_id", gameID))
	board, err = r.load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("%w: board %q neither inserted nor found", domain.ErrStoreUnavailable, gameID)
	}

	return board, nil
}

// Create explicitly creates a board
func (r *boardRegistry) Create(ctx context.Context, gameID string, userAds []string) (*domain.Board, error) {
	gameID, err := domain.ParseGameID(gameID)
	if err != nil {
		return nil, err
	}

	record := r.newRecord(ctx, gameID, userAds)
	inserted, err := r.store.InsertBoardIfAbsent(ctx, record)
	if err != nil {
		return nil, storeError("insert board", err)
	}
	if !inserted {
		return nil, fmt.Errorf("%w: board %q", domain.ErrAlreadyExists, gameID)
	}

	logger.InfoCtx(ctx, "Created board",
		zap.String("game_id", gameID),
		zap.Int("user_ads", len(record.UserAds)),
	)

	return toDomainBoard(record), nil
}

// Suspend suspends a board
func (r *boardRegistry) Suspend(ctx context.Context, gameID string, token string) (*domain.Board, error) {
	return r.transition(ctx, gameID, "suspend", func(board *domain.Board, now time.Time, input *store.UpdateBoardInput) {
		suspension := domain.ModerationFromToken(token, now)
		board.Suspension = suspension
		input.Suspension = &suspension
	})
}

// Unsuspend lifts a board suspension
func (r *boardRegistry) Unsuspend(ctx context.Context, gameID string) (*domain.Board, error) {
	return r.transition(ctx, gameID, "unsuspend", func(board *domain.Board, _ time.Time, input *store.UpdateBoardInput) {
		lifted := domain.Lifted()
		board.Suspension = lifted
		input.Suspension = &lifted
	})
}

// Blacklist blacklists a board
func (r *boardRegistry) Blacklist(ctx context.Context, gameID string, token string) (*domain.Board, error) {
	return r.transition(ctx, gameID, "blacklist", func(board *domain.Board, now time.Time, input *store.UpdateBoardInput) {
		blacklist := domain.ModerationFromToken(token, now)
		board.Blacklist = blacklist
		input.Blacklist = &blacklist
	})
}

// Unblacklist lifts a board blacklist
func (r *boardRegistry) Unblacklist(ctx context.Context, gameID string) (*domain.Board, error) {
	return r.transition(ctx, gameID, "unblacklist", func(board *domain.Board, _ time.Time, input *store.UpdateBoardInput) {
		lifted := domain.Lifted()
		board.Blacklist = lifted
		input.Blacklist = &lifted
	})
}

// Enable sets the board status to active
func (r *boardRegistry) Enable(ctx context.Context, gameID string) (*domain.Board, error) {
	return r.setStatus(ctx, gameID, "enable", domain.BoardStatusActive)
}

// Disable sets the board status to disabled
func (r *boardRegistry) Disable(ctx context.Context, gameID string) (*domain.Board, error) {
	return r.setStatus(ctx, gameID, "disable", domain.BoardStatusDisabled)
}

// List returns every board with expired moderation lifted
func (r *boardRegistry) List(ctx context.Context) ([]domain.Board, error) {
	records, err := r.store.ListBoards(ctx)
	if err != nil {
		return nil, storeError("list boards", err)
	}

	now := r.clock.Now()
	boards := make([]domain.Board, 0, len(records))
	for i := range records {
		board := toDomainBoard(&records[i])
		if err := r.writeBack(ctx, board, now); err != nil {
			return nil, err
		}
		boards = append(boards, *board)
	}

	return boards, nil
}

func (r *boardRegistry) setStatus(ctx context.Context, gameID string, action string, status domain.BoardStatus) (*domain.Board, error) {
	return r.transition(ctx, gameID, action, func(board *domain.Board, _ time.Time, input *store.UpdateBoardInput) {
		board.Status = status
		stored := schema.BoardStatus(status)
		input.Status = &stored
	})
}

// transition loads an existing board, lifting expired moderation, then persists only the
// fields the action changes
func (r *boardRegistry) transition(ctx context.Context, gameID string, action string, apply boardTransition) (*domain.Board, error) {
	gameID, err := domain.ParseGameID(gameID)
	if err != nil {
		return nil, err
	}

	board, err := r.load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("%w: board %q", domain.ErrNotFound, gameID)
	}

	now := r.clock.Now()
	var input store.UpdateBoardInput
	apply(board, now, &input)

	found, err := r.store.UpdateBoard(ctx, gameID, input)
	if err != nil {
		return nil, storeError("update board", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: board %q", domain.ErrNotFound, gameID)
	}
	board.UpdatedAt = now

	logger.InfoCtx(ctx, "Board transition applied",
		zap.String("game_id", gameID),
		zap.String("action", action),
		zap.String("status", string(board.Status)),
		zap.Bool("suspended", board.Suspension.Active),
		zap.Bool("blacklisted", board.Blacklist.Active),
	)

	return board, nil
}

// load reads a board and writes back any expired moderation. It returns nil when the board is absent.
func (r *boardRegistry) load(ctx context.Context, gameID string) (*domain.Board, error) {
	record, err := r.store.GetBoard(ctx, gameID)
	if err != nil {
		return nil, storeError("get board", err)
	}
	if record == nil {
		return nil, nil
	}

	board := toDomainBoard(record)
	if err := r.writeBack(ctx, board, r.clock.Now()); err != nil {
		return nil, err
	}

	return board, nil
}

// writeBack lifts expired moderation on board and, if anything expired, asks the store to
// clear it. The store re-checks expiry on the current row, so a concurrent write wins.
func (r *boardRegistry) writeBack(ctx context.Context, board *domain.Board, now time.Time) error {
	suspensionLifted, blacklistLifted := domain.NormalizeExpiry(board, now)
	if !suspensionLifted && !blacklistLifted {
		return nil
	}

	cleared, err := r.store.LiftExpiredBoardModeration(ctx, board.GameID, now)
	if err != nil {
		return storeError("write back board expiry", err)
	}
	if cleared {
		board.UpdatedAt = now
	}

	logger.DebugCtx(ctx, "Lifted expired board moderation",
		zap.String("game_id", board.GameID),
		zap.Bool("suspension_lifted", suspensionLifted),
		zap.Bool("blacklist_lifted", blacklistLifted),
		zap.Bool("cleared", cleared),
	)

	return nil
}

func (r *boardRegistry) newRecord(ctx context.Context, gameID string, userAds []string) *schema.Board {
	if userAds == nil {
		userAds = []string{}
	}

	now := r.clock.Now()
	return &schema.Board{
		GameID:          gameID,
		UserAds:         userAds,
		Status:          schema.BoardStatusActive,
		EvoqAdsPresent:  r.ads.HasActiveAds(ctx),
		EvoVisionsCount: r.config.EvoVisionsCount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
