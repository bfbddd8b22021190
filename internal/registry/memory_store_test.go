package registry_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/evovision/evoq-api/internal/store"
	"github.com/evovision/evoq-api/internal/store/schema"
)

// memoryStore is an in-memory store.Store used to exercise full read/write sequences
type memoryStore struct {
	mu        sync.Mutex
	boards    map[string]schema.Board
	whitelist map[int64]schema.WhitelistEntry
	adSets    map[string]schema.AdSet
	inserts   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		boards:    make(map[string]schema.Board),
		whitelist: make(map[int64]schema.WhitelistEntry),
		adSets:    make(map[string]schema.AdSet),
	}
}

func (s *memoryStore) GetBoard(_ context.Context, gameID string) (*schema.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[gameID]
	if !ok {
		return nil, nil
	}
	return &board, nil
}

func (s *memoryStore) InsertBoardIfAbsent(_ context.Context, board *schema.Board) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[board.GameID]; ok {
		return false, nil
	}
	s.boards[board.GameID] = *board
	s.inserts++
	return true, nil
}

func (s *memoryStore) UpdateBoard(_ context.Context, gameID string, input store.UpdateBoardInput) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[gameID]
	if !ok {
		return false, nil
	}
	if input.Status != nil {
		board.Status = *input.Status
	}
	if input.Suspension != nil {
		board.Suspended = input.Suspension.Active
		board.SuspensionEnd = input.Suspension.Until
	}
	if input.Blacklist != nil {
		board.Blacklisted = input.Blacklist.Active
		board.BlacklistEnd = input.Blacklist.Until
	}
	s.boards[gameID] = board
	return true, nil
}

// expired mirrors the store's guard: a set flag whose end is at or before now
func expired(flag bool, end *time.Time, now time.Time) bool {
	return flag && end != nil && !end.After(now)
}

func (s *memoryStore) LiftExpiredBoardModeration(_ context.Context, gameID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[gameID]
	if !ok {
		return false, nil
	}
	lifted := false
	if expired(board.Suspended, board.SuspensionEnd, now) {
		board.Suspended, board.SuspensionEnd = false, nil
		lifted = true
	}
	if expired(board.Blacklisted, board.BlacklistEnd, now) {
		board.Blacklisted, board.BlacklistEnd = false, nil
		lifted = true
	}
	s.boards[gameID] = board
	return lifted, nil
}

func (s *memoryStore) ListBoards(_ context.Context) ([]schema.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	boards := make([]schema.Board, 0, len(s.boards))
	for _, board := range s.boards {
		boards = append(boards, board)
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].GameID < boards[j].GameID })
	return boards, nil
}

func (s *memoryStore) GetWhitelistEntry(_ context.Context, userID int64) (*schema.WhitelistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.whitelist[userID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *memoryStore) InsertWhitelistEntryIfAbsent(_ context.Context, entry *schema.WhitelistEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.whitelist[entry.UserID]; ok {
		return false, nil
	}
	s.whitelist[entry.UserID] = *entry
	return true, nil
}

func (s *memoryStore) UpsertWhitelistEntry(_ context.Context, userID int64, input store.UpsertWhitelistInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.whitelist[userID]
	if !ok {
		entry = schema.WhitelistEntry{UserID: userID, Enabled: true}
	}
	if input.Enabled != nil {
		entry.Enabled = *input.Enabled
	}
	if input.Suspension != nil {
		entry.Suspended = input.Suspension.Active
		entry.SuspendedDuration = input.Suspension.Until
	}
	if input.Blacklist != nil {
		entry.Blacklisted = input.Blacklist.Active
		entry.BlacklistedDuration = input.Blacklist.Until
	}
	s.whitelist[userID] = entry
	return nil
}

func (s *memoryStore) LiftExpiredWhitelistModeration(_ context.Context, userID int64, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.whitelist[userID]
	if !ok {
		return false, nil
	}
	lifted := false
	if expired(entry.Suspended, entry.SuspendedDuration, now) {
		entry.Suspended, entry.SuspendedDuration = false, nil
		lifted = true
	}
	if expired(entry.Blacklisted, entry.BlacklistedDuration, now) {
		entry.Blacklisted, entry.BlacklistedDuration = false, nil
		lifted = true
	}
	s.whitelist[userID] = entry
	return lifted, nil
}

func (s *memoryStore) ListWhitelistEntries(_ context.Context) ([]schema.WhitelistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]schema.WhitelistEntry, 0, len(s.whitelist))
	for _, entry := range s.whitelist {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].UserID < entries[j].UserID })
	return entries, nil
}

func (s *memoryStore) GetAdSet(_ context.Context, id string) (*schema.AdSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	adSet, ok := s.adSets[id]
	if !ok {
		return nil, nil
	}
	return &adSet, nil
}

func (s *memoryStore) Ping(context.Context) error {
	return nil
}

// interleavingStore runs a one-shot hook right after a read returns, landing another
// request's write between a read and its write-back
type interleavingStore struct {
	*memoryStore
	afterGetBoard          func()
	afterGetWhitelistEntry func()
}

func (s *interleavingStore) GetBoard(ctx context.Context, gameID string) (*schema.Board, error) {
	board, err := s.memoryStore.GetBoard(ctx, gameID)
	if hook := s.afterGetBoard; hook != nil {
		s.afterGetBoard = nil
		hook()
	}
	return board, err
}

func (s *interleavingStore) GetWhitelistEntry(ctx context.Context, userID int64) (*schema.WhitelistEntry, error) {
	entry, err := s.memoryStore.GetWhitelistEntry(ctx, userID)
	if hook := s.afterGetWhitelistEntry; hook != nil {
		s.afterGetWhitelistEntry = nil
		hook()
	}
	return entry, err
}

// testClock is a settable adapter.Clock
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
