package registry_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evovision/evoq-api/internal/domain"
	"github.com/evovision/evoq-api/internal/mocks"
	"github.com/evovision/evoq-api/internal/registry"
	"github.com/evovision/evoq-api/internal/store"
	"github.com/evovision/evoq-api/internal/store/schema"
)

// testBoardMocks contains all the mocks needed for testing the board registry
type testBoardMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	ads      *mocks.MockAdsGate
	clock    *mocks.MockClock
	registry registry.BoardRegistry
	now      time.Time
}

func setupTestBoardRegistry(t *testing.T) *testBoardMocks {
	ctrl := gomock.NewController(t)

	tm := &testBoardMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		ads:   mocks.NewMockAdsGate(ctrl),
		clock: mocks.NewMockClock(ctrl),
		now:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	tm.clock.EXPECT().Now().Return(tm.now).AnyTimes()
	tm.registry = registry.NewBoardRegistry(registry.BoardConfig{EvoVisionsCount: 3}, tm.store, tm.ads, tm.clock)

	return tm
}

func TestBoardRegistry_GetOrCreate_CreatesMissingBoard(t *testing.T) {
	tm := setupTestBoardRegistry(t)
	ctx := context.Background()

	tm.store.EXPECT().GetBoard(ctx, "game1").Return(nil, nil)
	tm.ads.EXPECT().HasActiveAds(ctx).Return(true)
	tm.store.EXPECT().
		InsertBoardIfAbsent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, board *schema.Board) (bool, error) {
			assert.Equal(t, "game1", board.GameID)
			assert.Equal(t, schema.BoardStatusActive, board.Status)
			assert.Empty(t, board.UserAds)
			assert.NotNil(t, board.UserAds)
			assert.False(t, board.Suspended)
			assert.False(t, board.Blacklisted)
			assert.True(t, board.EvoqAdsPresent)
			assert.Equal(t, 3, board.EvoVisionsCount)
			assert.Equal(t, tm.now, board.CreatedAt)
			return true, nil
		})

	board, err := tm.registry.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	assert.Equal(t, "game1", board.GameID)
	assert.True(t, board.Visible())
	assert.True(t, board.EvoqAdsPresent)
}

func TestBoardRegistry_GetOrCreate_ExistingBoardIsNotRecreated(t *testing.T) {
	tm := setupTestBoardRegistry(t)
	ctx := context.Background()

	existing := &schema.Board{
		GameID:    "game1",
		UserAds:   []string{"ad-1"},
		Status:    schema.BoardStatusDisabled,
		CreatedAt: tm.now.Add(-time.Hour),
	}
	tm.store.EXPECT().GetBoard(ctx, "game1").Return(existing, nil)

	board, err := tm.registry.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ad-1"}, board.UserAds)
	assert.Equal(t, domain.BoardStatusDisabled, board.Status)
	assert.False(t, board.Visible())
}

func TestBoardRegistry_GetOrCreate_WritesBackExpiredSuspension(t *testing.T) {
	tm := setupTestBoardRegistry(t)
	ctx := context.Background()

	expired := tm.now.Add(-time.Minute)
	future := tm.now.Add(time.Hour)
	tm.store.EXPECT().GetBoard(ctx, "game1").Return(&schema.Board{
		GameID:        "game1",
		Status:        schema.BoardStatusActive,
		Suspended:     true,
		SuspensionEnd: &expired,
		Blacklisted:   true,
		BlacklistEnd:  &future,
	}, nil)
	// No UpdateBoard expectation: expiry is lifted by the store's guarded write only
	tm.store.EXPECT().LiftExpiredBoardModeration(ctx, "game1", tm.now).Return(true, nil)

	board, err := tm.registry.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	assert.False(t, board.Suspension.Active)
	assert.Nil(t, board.Suspension.Until)
	assert.True(t, board.Blacklist.Active)
}

func TestBoardRegistry_GetOrCreate_LostInsertRaceReadsExisting(t *testing.T) {
	tm := setupTestBoardRegistry(t)
	ctx := context.Background()

	winner := &schema.Board{GameID: "game1", Status: schema.BoardStatusActive, EvoqAdsPresent: true}
	gomock.InOrder(
		tm.store.EXPECT().GetBoard(ctx, "game1").Return(nil, nil),
		tm.store.EXPECT().InsertBoardIfAbsent(ctx, gomock.Any()).Return(false, nil),
		tm.store.EXPECT().GetBoard(ctx, "game1").Return(winner, nil),
	)
	tm.ads.EXPECT().HasActiveAds(ctx).Return(false)

	board, err := tm.registry.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	assert.True(t, board.EvoqAdsPresent, "the winning record is returned, not our candidate")
}

func TestBoardRegistry_GetOrCreate_Errors(t *testing.T) {
	t.Run("blank game ID is rejected before store access", func(t *testing.T) {
		tm := setupTestBoardRegistry(t)
		_, err := tm.registry.GetOrCreate(context.Background(), "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("store failure is reported as unavailable", func(t *testing.T) {
		tm := setupTestBoardRegistry(t)
		ctx := context.Background()
		tm.store.EXPECT().GetBoard(ctx, "game1").Return(nil, assert.AnError)

		_, err := tm.registry.GetOrCreate(ctx, "game1")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("insert failure is reported as unavailable", func(t *testing.T) {
		tm := setupTestBoardRegistry(t)
		ctx := context.Background()
		tm.store.EXPECT().GetBoard(ctx, "game1").Return(nil, nil)
		tm.ads.EXPECT().HasActiveAds(ctx).Return(false)
		tm.store.EXPECT().InsertBoardIfAbsent(ctx, gomock.Any()).Return(false, assert.AnError)

		_, err := tm.registry.GetOrCreate(ctx, "game1")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestBoardRegistry_Create(t *testing.T) {
	t.Run("creates board with user ads", func(t *testing.T) {
		tm := setupTestBoardRegistry(t)
		ctx := context.Background()

		tm.ads.EXPECT().HasActiveAds(ctx).Return(false)
		tm.store.EXPECT().
			InsertBoardIfAbsent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, board *schema.Board) (bool, error) {
				assert.Equal(t, []string{"ad-1", "ad-2"}, []string(board.UserAds))
				return true, nil
			})

		board, err := tm.registry.Create(ctx, "game1", []string{"ad-1", "ad-2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ad-1", "ad-2"}, board.UserAds)
		assert.False(t, board.EvoqAdsPresent)
	})

	t.Run("existing board is a conflict", func(t *testing.T) {
		tm := setupTestBoardRegistry(t)
		ctx := context.Background()

		tm.ads.EXPECT().HasActiveAds(ctx).Return(false)
		tm.store.EXPECT().InsertBoardIfAbsent(ctx, gomock.Any()).Return(false, nil)

		_, err := tm.registry.Create(ctx, "game1", nil)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestBoardRegistry_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		call     func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error)
		validate func(t *testing.T, now time.Time, input store.UpdateBoardInput, board *domain.Board)
	}{
		{
			name: "suspend with duration",
			call: func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error) {
				return r.Suspend(ctx, "game1", "2d")
			},
			validate: func(t *testing.T, now time.Time, input store.UpdateBoardInput, board *domain.Board) {
				require.NotNil(t, input.Suspension)
				assert.True(t, input.Suspension.Active)
				require.NotNil(t, input.Suspension.Until)
				assert.Equal(t, now.Add(48*time.Hour), *input.Suspension.Until)
				assert.Nil(t, input.Blacklist)
				assert.Nil(t, input.Status)
				assert.True(t, board.Suspension.Active)
			},
		},
		{
			name: "suspend without duration is indefinite",
			call: func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error) {
				return r.Suspend(ctx, "game1", "")
			},
			validate: func(t *testing.T, _ time.Time, input store.UpdateBoardInput, board *domain.Board) {
				require.NotNil(t, input.Suspension)
				assert.True(t, input.Suspension.Active)
				assert.Nil(t, input.Suspension.Until)
			},
		},
		{
			name: "suspend with malformed duration is indefinite",
			call: func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error) {
				return r.Suspend(ctx, "game1", "2 days")
			},
			validate: func(t *testing.T, _ time.Time, input store.UpdateBoardInput, _ *domain.Board) {
				require.NotNil(t, input.Suspension)
				assert.True(t, input.Suspension.Active)
				assert.Nil(t, input.Suspension.Until)
			},
		},
		{
			name: "unsuspend",
			call: func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error) {
				return r.Unsuspend(ctx, "game1")
			},
			validate: func(t *testing.T, _ time.Time, input store.UpdateBoardInput, board *domain.Board) {
				require.NotNil(t, input.Suspension)
				assert.False(t, input.Suspension.Active)
				assert.False(t, board.Suspension.Active)
			},
		},
		{
			name: "blacklist with duration",
			call: func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error) {
				return r.Blacklist(ctx, "game1", "1w")
			},
			validate: func(t *testing.T, now time.Time, input store.UpdateBoardInput, board *domain.Board) {
				require.NotNil(t, input.Blacklist)
				assert.True(t, input.Blacklist.Active)
				require.NotNil(t, input.Blacklist.Until)
				assert.Equal(t, now.Add(7*24*time.Hour), *input.Blacklist.Until)
				assert.Nil(t, input.Suspension)
			},
		},
		{
			name: "unblacklist",
			call: func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error) {
				return r.Unblacklist(ctx, "game1")
			},
			validate: func(t *testing.T, _ time.Time, input store.UpdateBoardInput, board *domain.Board) {
				require.NotNil(t, input.Blacklist)
				assert.False(t, input.Blacklist.Active)
				assert.False(t, board.Blacklist.Active)
			},
		},
		{
			name: "disable touches only status",
			call: func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error) {
				return r.Disable(ctx, "game1")
			},
			validate: func(t *testing.T, _ time.Time, input store.UpdateBoardInput, board *domain.Board) {
				require.NotNil(t, input.Status)
				assert.Equal(t, schema.BoardStatusDisabled, *input.Status)
				assert.Nil(t, input.Suspension)
				assert.Nil(t, input.Blacklist)
				assert.False(t, board.Visible())
			},
		},
		{
			name: "enable touches only status",
			call: func(r registry.BoardRegistry, ctx context.Context) (*domain.Board, error) {
				return r.Enable(ctx, "game1")
			},
			validate: func(t *testing.T, _ time.Time, input store.UpdateBoardInput, board *domain.Board) {
				require.NotNil(t, input.Status)
				assert.Equal(t, schema.BoardStatusActive, *input.Status)
				assert.Nil(t, input.Suspension)
				assert.Nil(t, input.Blacklist)
				assert.True(t, board.Visible())
				assert.True(t, board.Suspension.Active, "enable does not lift moderation")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestBoardRegistry(t)
			ctx := context.Background()

			tm.store.EXPECT().GetBoard(ctx, "game1").Return(&schema.Board{
				GameID:    "game1",
				Status:    schema.BoardStatusDisabled,
				Suspended: true,
			}, nil)

			var captured store.UpdateBoardInput
			tm.store.EXPECT().
				UpdateBoard(ctx, "game1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, input store.UpdateBoardInput) (bool, error) {
					captured = input
					return true, nil
				})

			board, err := tt.call(tm.registry, ctx)
			require.NoError(t, err)
			tt.validate(t, tm.now, captured, board)
		})
	}
}

func TestBoardRegistry_Transition_MissingBoard(t *testing.T) {
	tm := setupTestBoardRegistry(t)
	ctx := context.Background()

	tm.store.EXPECT().GetBoard(ctx, "ghost").Return(nil, nil).Times(6)

	calls := []func() (*domain.Board, error){
		func() (*domain.Board, error) { return tm.registry.Suspend(ctx, "ghost", "1h") },
		func() (*domain.Board, error) { return tm.registry.Unsuspend(ctx, "ghost") },
		func() (*domain.Board, error) { return tm.registry.Blacklist(ctx, "ghost", "") },
		func() (*domain.Board, error) { return tm.registry.Unblacklist(ctx, "ghost") },
		func() (*domain.Board, error) { return tm.registry.Enable(ctx, "ghost") },
		func() (*domain.Board, error) { return tm.registry.Disable(ctx, "ghost") },
	}
	for _, call := range calls {
		board, err := call()
		assert.Nil(t, board)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}

func TestBoardRegistry_Transition_LiftsExpiryBeforeApplying(t *testing.T) {
	tm := setupTestBoardRegistry(t)
	ctx := context.Background()

	expired := tm.now.Add(-time.Second)
	tm.store.EXPECT().GetBoard(ctx, "game1").Return(&schema.Board{
		GameID:       "game1",
		Status:       schema.BoardStatusActive,
		Blacklisted:  true,
		BlacklistEnd: &expired,
	}, nil)
	gomock.InOrder(
		tm.store.EXPECT().LiftExpiredBoardModeration(ctx, "game1", tm.now).Return(true, nil),
		tm.store.EXPECT().
			UpdateBoard(ctx, "game1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, input store.UpdateBoardInput) (bool, error) {
				require.NotNil(t, input.Suspension)
				assert.True(t, input.Suspension.Active)
				assert.Nil(t, input.Blacklist, "expired blacklist is not folded into the transition write")
				return true, nil
			}),
	)

	board, err := tm.registry.Suspend(ctx, "game1", "1h")
	require.NoError(t, err)
	assert.True(t, board.Suspension.Active)
	assert.False(t, board.Blacklist.Active)
}

func TestBoardRegistry_WriteBackStoreFailure(t *testing.T) {
	tm := setupTestBoardRegistry(t)
	ctx := context.Background()

	expired := tm.now.Add(-time.Second)
	tm.store.EXPECT().GetBoard(ctx, "game1").Return(&schema.Board{
		GameID:        "game1",
		Status:        schema.BoardStatusActive,
		Suspended:     true,
		SuspensionEnd: &expired,
	}, nil)
	tm.store.EXPECT().LiftExpiredBoardModeration(ctx, "game1", tm.now).Return(false, assert.AnError)

	_, err := tm.registry.GetOrCreate(ctx, "game1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBoardRegistry_List(t *testing.T) {
	tm := setupTestBoardRegistry(t)
	ctx := context.Background()

	expired := tm.now.Add(-time.Hour)
	tm.store.EXPECT().ListBoards(ctx).Return([]schema.Board{
		{GameID: "a", Status: schema.BoardStatusActive},
		{GameID: "b", Status: schema.BoardStatusActive, Suspended: true, SuspensionEnd: &expired},
		{GameID: "c", Status: schema.BoardStatus("paused")},
	}, nil)
	tm.store.EXPECT().LiftExpiredBoardModeration(ctx, "b", tm.now).Return(true, nil)

	boards, err := tm.registry.List(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 3)
	assert.False(t, boards[1].Suspension.Active)
	assert.Equal(t, domain.BoardStatusDisabled, boards[2].Status)
}

// The following tests run the registry against an in-memory store to check read/write sequences

func newMemoryBoardRegistry(now time.Time) (registry.BoardRegistry, *memoryStore, *testClock) {
	memStore := newMemoryStore()
	clock := &testClock{now: now}
	ads := registry.NewAdsGate(memStore, domain.DEFAULT_GLOBAL_AD_SET_ID)
	return registry.NewBoardRegistry(registry.BoardConfig{EvoVisionsCount: 3}, memStore, ads, clock), memStore, clock
}

func TestBoardRegistry_SuspensionExpiresOnRead(t *testing.T) {
	ctx := context.Background()
	reg, memStore, clock := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)

	_, err = reg.Suspend(ctx, "game1", "1h")
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	board, err := reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	assert.True(t, board.Suspension.Active)

	clock.Advance(31 * time.Minute)
	board, err = reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	assert.False(t, board.Suspension.Active)
	assert.Nil(t, board.Suspension.Until)

	stored, err := memStore.GetBoard(ctx, "game1")
	require.NoError(t, err)
	assert.False(t, stored.Suspended, "lifted suspension is persisted")
	assert.Nil(t, stored.SuspensionEnd)
}

func TestBoardRegistry_ZeroDurationSuspensionIsAlreadyExpired(t *testing.T) {
	ctx := context.Background()
	reg, _, _ := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)

	board, err := reg.Suspend(ctx, "game1", "0s")
	require.NoError(t, err)
	assert.True(t, board.Suspension.Active)

	board, err = reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	assert.False(t, board.Suspension.Active)
}

func TestBoardRegistry_IndefiniteBlacklistSurvivesTime(t *testing.T) {
	ctx := context.Background()
	reg, _, clock := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	_, err = reg.Blacklist(ctx, "game1", "")
	require.NoError(t, err)

	clock.Advance(10 * 365 * 24 * time.Hour)
	board, err := reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	assert.True(t, board.Blacklist.Active)

	board, err = reg.Unblacklist(ctx, "game1")
	require.NoError(t, err)
	assert.False(t, board.Blacklist.Active)
}

func TestBoardRegistry_GetOrCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	reg, memStore, _ := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	memStore.adSets[domain.DEFAULT_GLOBAL_AD_SET_ID] = schema.AdSet{ID: domain.DEFAULT_GLOBAL_AD_SET_ID, Ads: []string{"evoq-1"}}

	first, err := reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	second, err := reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.EvoqAdsPresent)
	assert.Equal(t, 1, memStore.inserts)
}

func TestBoardRegistry_ConcurrentGetOrCreateInsertsOnce(t *testing.T) {
	ctx := context.Background()
	reg, memStore, _ := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reg.GetOrCreate(ctx, "game1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, memStore.inserts)
}

func TestBoardRegistry_CreateConflictLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	reg, memStore, _ := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := reg.Create(ctx, "game1", []string{"ad-1"})
	require.NoError(t, err)

	_, err = reg.Create(ctx, "game1", []string{"ad-2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAlreadyExists))

	stored, err := memStore.GetBoard(ctx, "game1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ad-1"}, []string(stored.UserAds))
}

func TestBoardRegistry_ReadKeepsConcurrentSuspension(t *testing.T) {
	ctx := context.Background()
	admin, memStore, clock := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := admin.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	_, err = admin.Suspend(ctx, "game1", "1h")
	require.NoError(t, err)
	clock.Advance(61 * time.Minute)

	// The admin suspends indefinitely after the reader loaded the expired board
	interleaved := &interleavingStore{memoryStore: memStore}
	interleaved.afterGetBoard = func() {
		_, err := admin.Suspend(ctx, "game1", "")
		require.NoError(t, err)
	}
	reader := registry.NewBoardRegistry(registry.BoardConfig{EvoVisionsCount: 3}, interleaved,
		registry.NewAdsGate(memStore, domain.DEFAULT_GLOBAL_AD_SET_ID), clock)

	_, err = reader.GetOrCreate(ctx, "game1")
	require.NoError(t, err)

	stored, err := memStore.GetBoard(ctx, "game1")
	require.NoError(t, err)
	assert.True(t, stored.Suspended, "indefinite suspension is only cleared by unsuspend")
	assert.Nil(t, stored.SuspensionEnd)
}

func TestBoardRegistry_TransitionKeepsConcurrentBlacklist(t *testing.T) {
	ctx := context.Background()
	admin, memStore, clock := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := admin.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	_, err = admin.Blacklist(ctx, "game1", "1d")
	require.NoError(t, err)
	clock.Advance(25 * time.Hour)

	interleaved := &interleavingStore{memoryStore: memStore}
	interleaved.afterGetBoard = func() {
		_, err := admin.Blacklist(ctx, "game1", "")
		require.NoError(t, err)
	}
	other := registry.NewBoardRegistry(registry.BoardConfig{EvoVisionsCount: 3}, interleaved,
		registry.NewAdsGate(memStore, domain.DEFAULT_GLOBAL_AD_SET_ID), clock)

	_, err = other.Disable(ctx, "game1")
	require.NoError(t, err)

	stored, err := memStore.GetBoard(ctx, "game1")
	require.NoError(t, err)
	assert.Equal(t, schema.BoardStatusDisabled, stored.Status)
	assert.True(t, stored.Blacklisted)
	assert.Nil(t, stored.BlacklistEnd)
}

func TestBoardRegistry_GameIDIsUsedAsGiven(t *testing.T) {
	ctx := context.Background()
	reg, memStore, _ := newMemoryBoardRegistry(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	plain, err := reg.GetOrCreate(ctx, "game1")
	require.NoError(t, err)
	padded, err := reg.GetOrCreate(ctx, " game1")
	require.NoError(t, err)

	assert.Equal(t, "game1", plain.GameID)
	assert.Equal(t, " game1", padded.GameID)
	assert.Equal(t, 2, memStore.inserts)
}
