package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Global EvoqAds set
	router.GET("/evoqAds", handler.GetEvoqAds)

	// Board endpoints
	board := router.Group("/board")
	{
		board.GET("", handler.ListBoards)
		board.POST("", handler.CreateBoard)
		board.GET("/:gameID", handler.GetBoard)

		// State transitions take {gameID, time?} in the body
		board.POST("/suspend", handler.SuspendBoard)
		board.POST("/unsuspend", handler.UnsuspendBoard)
		board.POST("/blacklist", handler.BlacklistBoard)
		board.POST("/unblacklist", handler.UnblacklistBoard)
		board.POST("/enable", handler.EnableBoard)
		board.POST("/disable", handler.DisableBoard)
	}

	// Whitelist endpoints
	whitelist := router.Group("/whitelist")
	{
		whitelist.GET("", handler.ListWhitelist)
		whitelist.POST("", handler.UpsertWhitelist)
		whitelist.POST("/add", handler.AddWhitelist)
		whitelist.GET("/:userID", handler.GetWhitelistStatus)
	}
}
