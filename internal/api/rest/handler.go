package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evovision/evoq-api/internal/api/shared/constants"
	"github.com/evovision/evoq-api/internal/api/shared/dto"
	"github.com/evovision/evoq-api/internal/domain"
	"github.com/evovision/evoq-api/internal/logger"
	"github.com/evovision/evoq-api/internal/registry"
)

// healthCheckTimeout bounds the store ping issued by the health endpoint
const healthCheckTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetBoard returns the board of a game, creating it on first access
	// GET /board/:gameID
	GetBoard(c *gin.Context)

	// ListBoards returns every board
	// GET /board
	ListBoards(c *gin.Context)

	// CreateBoard explicitly creates a board
	// POST /board
	CreateBoard(c *gin.Context)

	// SuspendBoard suspends a board for the optional duration in "time"
	// POST /board/suspend
	SuspendBoard(c *gin.Context)

	// UnsuspendBoard lifts a board suspension
	// POST /board/unsuspend
	UnsuspendBoard(c *gin.Context)

	// BlacklistBoard blacklists a board for the optional duration in "time"
	// POST /board/blacklist
	BlacklistBoard(c *gin.Context)

	// UnblacklistBoard lifts a board blacklist
	// POST /board/unblacklist
	UnblacklistBoard(c *gin.Context)

	// EnableBoard sets a board active
	// POST /board/enable
	EnableBoard(c *gin.Context)

	// DisableBoard sets a board disabled
	// POST /board/disable
	DisableBoard(c *gin.Context)

	// GetWhitelistStatus returns the moderation status of a user
	// GET /whitelist/:userID
	GetWhitelistStatus(c *gin.Context)

	// ListWhitelist returns every whitelist entry
	// GET /whitelist
	ListWhitelist(c *gin.Context)

	// UpsertWhitelist creates or updates a whitelist entry
	// POST /whitelist
	UpsertWhitelist(c *gin.Context)

	// AddWhitelist adds a user to the whitelist
	// POST /whitelist/add
	AddWhitelist(c *gin.Context)

	// GetEvoqAds returns the global EvoqAds set
	// GET /evoqAds
	GetEvoqAds(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	boards    registry.BoardRegistry
	whitelist registry.WhitelistRegistry
	ads       registry.AdsGate
	pinger    Pinger
}

// NewHandler creates a new REST API handler over the registries
func NewHandler(boards registry.BoardRegistry, whitelist registry.WhitelistRegistry, ads registry.AdsGate, pinger Pinger) Handler {
	return &handler{
		boards:    boards,
		whitelist: whitelist,
		ads:       ads,
		pinger:    pinger,
	}
}

// GetBoard returns the board of a game, creating it on first access
func (h *handler) GetBoard(c *gin.Context) {
	board, err := h.boards.GetOrCreate(c.Request.Context(), c.Param("gameID"))
	if err != nil {
		respondRegistryError(c, err, "Failed to get board")
		return
	}

	c.JSON(http.StatusOK, dto.MapBoardToDTO(board))
}

// ListBoards returns every board
func (h *handler) ListBoards(c *gin.Context) {
	boards, err := h.boards.List(c.Request.Context())
	if err != nil {
		respondRegistryError(c, err, "Failed to list boards")
		return
	}

	c.JSON(http.StatusOK, dto.MapBoardsToDTO(boards))
}

// CreateBoard explicitly creates a board
func (h *handler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	board, err := h.boards.Create(c.Request.Context(), req.GameID, req.UserAds)
	if err != nil {
		respondRegistryError(c, err, "Failed to create board")
		return
	}

	c.JSON(http.StatusCreated, dto.MapBoardToDTO(board))
}

// SuspendBoard suspends a board
func (h *handler) SuspendBoard(c *gin.Context) {
	h.boardAction(c, "suspend board", func(ctx context.Context, req dto.BoardActionRequest) (*domain.Board, error) {
		return h.boards.Suspend(ctx, req.GameID, req.Time)
	})
}

// UnsuspendBoard lifts a board suspension
func (h *handler) UnsuspendBoard(c *gin.Context) {
	h.boardAction(c, "unsuspend board", func(ctx context.Context, req dto.BoardActionRequest) (*domain.Board, error) {
		return h.boards.Unsuspend(ctx, req.GameID)
	})
}

// BlacklistBoard blacklists a board
func (h *handler) BlacklistBoard(c *gin.Context) {
	h.boardAction(c, "blacklist board", func(ctx context.Context, req dto.BoardActionRequest) (*domain.Board, error) {
		return h.boards.Blacklist(ctx, req.GameID, req.Time)
	})
}

// UnblacklistBoard lifts a board blacklist
func (h *handler) UnblacklistBoard(c *gin.Context) {
	h.boardAction(c, "unblacklist board", func(ctx context.Context, req dto.BoardActionRequest) (*domain.Board, error) {
		return h.boards.Unblacklist(ctx, req.GameID)
	})
}

// EnableBoard sets a board active
func (h *handler) EnableBoard(c *gin.Context) {
	h.boardAction(c, "enable board", func(ctx context.Context, req dto.BoardActionRequest) (*domain.Board, error) {
		return h.boards.Enable(ctx, req.GameID)
	})
}

// DisableBoard sets a board disabled
func (h *handler) DisableBoard(c *gin.Context) {
	h.boardAction(c, "disable board", func(ctx context.Context, req dto.BoardActionRequest) (*domain.Board, error) {
		return h.boards.Disable(ctx, req.GameID)
	})
}

// boardAction binds and validates a board action request and responds with the resulting board
func (h *handler) boardAction(c *gin.Context, action string, apply func(ctx context.Context, req dto.BoardActionRequest) (*domain.Board, error)) {
	var req dto.BoardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	board, err := apply(c.Request.Context(), req)
	if err != nil {
		respondRegistryError(c, err, "Failed to "+action)
		return
	}

	c.JSON(http.StatusOK, dto.MapBoardToDTO(board))
}

// GetWhitelistStatus returns the moderation status of a user
func (h *handler) GetWhitelistStatus(c *gin.Context) {
	status, err := h.whitelist.GetStatus(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondRegistryError(c, err, "Failed to get whitelist status")
		return
	}

	c.JSON(http.StatusOK, dto.MapWhitelistStatusToDTO(status))
}

// ListWhitelist returns every whitelist entry
func (h *handler) ListWhitelist(c *gin.Context) {
	statuses, err := h.whitelist.List(c.Request.Context())
	if err != nil {
		respondRegistryError(c, err, "Failed to list whitelist")
		return
	}

	c.JSON(http.StatusOK, dto.MapWhitelistStatusesToDTO(statuses))
}

// UpsertWhitelist creates or updates a whitelist entry
func (h *handler) UpsertWhitelist(c *gin.Context) {
	var req dto.UpsertWhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	status, err := h.whitelist.Upsert(c.Request.Context(), req.UserID.String(), req.Update())
	if err != nil {
		respondRegistryError(c, err, "Failed to update whitelist")
		return
	}

	c.JSON(http.StatusOK, dto.MapWhitelistStatusToDTO(status))
}

// AddWhitelist adds a user to the whitelist
func (h *handler) AddWhitelist(c *gin.Context) {
	var req dto.AddWhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	status, err := h.whitelist.Add(c.Request.Context(), req.UserID.String())
	if err != nil {
		respondRegistryError(c, err, "Failed to add user to whitelist")
		return
	}

	c.JSON(http.StatusCreated, dto.MapWhitelistStatusToDTO(status))
}

// GetEvoqAds returns the global EvoqAds set
func (h *handler) GetEvoqAds(c *gin.Context) {
	ads, err := h.ads.GlobalAds(c.Request.Context())
	if err != nil {
		respondRegistryError(c, err, "No EvoqAds found")
		return
	}

	c.JSON(http.StatusOK, dto.AdsResponse{Ads: ads})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		logger.WarnCtx(ctx, "Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "degraded",
			Service:  constants.SERVICE_NAME,
			Database: "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Service:  constants.SERVICE_NAME,
		Database: "ok",
	})
}
