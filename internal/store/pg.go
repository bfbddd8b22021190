package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/evovision/evoq-api/internal/logger"
	"github.com/evovision/evoq-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Open connects to PostgreSQL, retrying with exponential backoff until maxElapsed passes.
// A zero maxElapsed means a single attempt.
func Open(ctx context.Context, dsn string, debug bool, maxElapsed time.Duration) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if debug {
		logLevel = gormlogger.Info
	}

	var db *gorm.DB
	operation := func() error {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(logLevel),
		})
		if err != nil {
			return err
		}
		db = conn
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = maxElapsed

	var policy backoff.BackOff = b
	if maxElapsed == 0 {
		policy = &backoff.StopBackOff{}
	}

	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Database not reachable, retrying",
			zap.Error(err),
			zap.Duration("retry_in", wait),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Migrate creates or updates the tables used by the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.Board{}, &schema.WhitelistEntry{}, &schema.AdSet{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults applied by NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetBoard retrieves a board by game ID
func (s *pgStore) GetBoard(ctx context.Context, gameID string) (*schema.Board, error) {
	var board schema.Board
	err := s.db.WithContext(ctx).Where("game_id = ?", gameID).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return &board, nil
}

// InsertBoardIfAbsent inserts a board, doing nothing if the game ID is taken
func (s *pgStore) InsertBoardIfAbsent(ctx context.Context, board *schema.Board) (bool, error) {
	if board.UserAds == nil {
		board.UserAds = []string{}
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "game_id"}},
			DoNothing: true,
		}).
		Create(board)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert board: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// UpdateBoard applies a partial update to an existing board
func (s *pgStore) UpdateBoard(ctx context.Context, gameID string, input UpdateBoardInput) (bool, error) {
	if input.IsEmpty() {
		var count int64
		if err := s.db.WithContext(ctx).Model(&schema.Board{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to count boards: %w", err)
		}
		return count > 0, nil
	}

	updates := map[string]interface{}{}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Suspension != nil {
		updates["suspended"] = input.Suspension.Active
		updates["suspension_end"] = nullableTime(input.Suspension.Until)
	}
	if input.Blacklist != nil {
		updates["blacklisted"] = input.Blacklist.Active
		updates["blacklist_end"] = nullableTime(input.Blacklist.Until)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Board{}).
		Where("game_id = ?", gameID).
		Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update board: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// moderationColumns names the flag and end columns of a table's suspension and blacklist
type moderationColumns struct {
	suspended     string
	suspensionEnd string
	blacklisted   string
	blacklistEnd  string
}

var (
	boardModerationColumns     = moderationColumns{"suspended", "suspension_end", "blacklisted", "blacklist_end"}
	whitelistModerationColumns = moderationColumns{"suspended", "suspended_duration", "blacklisted", "blacklisted_duration"}
)

// expiredGuard matches a set flag whose end is at or before the bound time.
// A NULL end never matches, so indefinite moderation is only cleared explicitly.
func expiredGuard(flag, end string) string {
	return flag + " AND " + end + " IS NOT NULL AND " + end + " <= ?"
}

// liftExpired clears, in one UPDATE, each flag/end pair of the row matched by key whose
// guard holds against the row's current values
func liftExpired(db *gorm.DB, model interface{}, key string, value interface{}, cols moderationColumns, now time.Time) *gorm.DB {
	suspension := expiredGuard(cols.suspended, cols.suspensionEnd)
	blacklist := expiredGuard(cols.blacklisted, cols.blacklistEnd)

	return db.Model(model).
		Where(key+" = ?", value).
		Where("("+suspension+") OR ("+blacklist+")", now, now).
		Updates(map[string]interface{}{
			cols.suspended:     gorm.Expr("CASE WHEN "+suspension+" THEN FALSE ELSE "+cols.suspended+" END", now),
			cols.suspensionEnd: gorm.Expr("CASE WHEN "+suspension+" THEN NULL ELSE "+cols.suspensionEnd+" END", now),
			cols.blacklisted:   gorm.Expr("CASE WHEN "+blacklist+" THEN FALSE ELSE "+cols.blacklisted+" END", now),
			cols.blacklistEnd:  gorm.Expr("CASE WHEN "+blacklist+" THEN NULL ELSE "+cols.blacklistEnd+" END", now),
			"updated_at":       now,
		})
}

// LiftExpiredBoardModeration clears board moderation whose end has passed at now
func (s *pgStore) LiftExpiredBoardModeration(ctx context.Context, gameID string, now time.Time) (bool, error) {
	result := liftExpired(s.db.WithContext(ctx), &schema.Board{}, "game_id", gameID, boardModerationColumns, now)
	if result.Error != nil {
		return false, fmt.Errorf("failed to lift expired board moderation: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ListBoards retrieves all boards
func (s *pgStore) ListBoards(ctx context.Context) ([]schema.Board, error) {
	var boards []schema.Board
	err := s.db.WithContext(ctx).Order("created_at ASC, game_id ASC").Find(&boards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// GetWhitelistEntry retrieves a whitelist entry by user ID
func (s *pgStore) GetWhitelistEntry(ctx context.Context, userID int64) (*schema.WhitelistEntry, error) {
	var entry schema.WhitelistEntry
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get whitelist entry: %w", err)
	}
	return &entry, nil
}

// InsertWhitelistEntryIfAbsent inserts a whitelist entry, doing nothing if the user ID is taken
func (s *pgStore) InsertWhitelistEntryIfAbsent(ctx context.Context, entry *schema.WhitelistEntry) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(entry)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert whitelist entry: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// UpsertWhitelistEntry inserts a whitelist entry or updates only the supplied columns of an existing one
func (s *pgStore) UpsertWhitelistEntry(ctx context.Context, userID int64, input UpsertWhitelistInput) error {
	entry := schema.WhitelistEntry{
		UserID:  userID,
		Enabled: true,
	}

	var columns []string
	if input.Enabled != nil {
		entry.Enabled = *input.Enabled
		columns = append(columns, "enabled")
	}
	if input.Suspension != nil {
		entry.Suspended = input.Suspension.Active
		entry.SuspendedDuration = input.Suspension.Until
		columns = append(columns, "suspended", "suspended_duration")
	}
	if input.Blacklist != nil {
		entry.Blacklisted = input.Blacklist.Active
		entry.BlacklistedDuration = input.Blacklist.Until
		columns = append(columns, "blacklisted", "blacklisted_duration")
	}

	conflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
	}
	if len(columns) == 0 {
		conflict.DoNothing = true
	} else {
		conflict.DoUpdates = clause.AssignmentColumns(append(columns, "updated_at"))
	}

	if err := s.db.WithContext(ctx).Clauses(conflict).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to upsert whitelist entry: %w", err)
	}

	return nil
}

// LiftExpiredWhitelistModeration clears whitelist moderation whose end has passed at now
func (s *pgStore) LiftExpiredWhitelistModeration(ctx context.Context, userID int64, now time.Time) (bool, error) {
	result := liftExpired(s.db.WithContext(ctx), &schema.WhitelistEntry{}, "user_id", userID, whitelistModerationColumns, now)
	if result.Error != nil {
		return false, fmt.Errorf("failed to lift expired whitelist moderation: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ListWhitelistEntries retrieves all whitelist entries
func (s *pgStore) ListWhitelistEntries(ctx context.Context) ([]schema.WhitelistEntry, error) {
	var entries []schema.WhitelistEntry
	err := s.db.WithContext(ctx).Order("user_id ASC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list whitelist entries: %w", err)
	}
	return entries, nil
}

// GetAdSet retrieves an ad set by ID
func (s *pgStore) GetAdSet(ctx context.Context, id string) (*schema.AdSet, error) {
	var adSet schema.AdSet
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&adSet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ad set: %w", err)
	}
	return &adSet, nil
}

// Ping checks the connection to the database
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
