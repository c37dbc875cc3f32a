package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/proptoken/proptoken-backend/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.HealthCheck)

		// Property endpoints
		v1.POST("/properties", handler.CreateProperty)
		v1.GET("/properties", handler.ListProperties)
		v1.GET("/properties/:id", handler.GetProperty)
		v1.PATCH("/properties/:id", handler.UpdateProperty)
		v1.GET("/properties/:id/verify", handler.VerifyProperty)
		v1.POST("/properties/:id/tokenize", auth, handler.TokenizeProperty)
		v1.POST("/properties/:id/buy", handler.BuyTokens)
		v1.GET("/properties/:id/sales", handler.ListPropertySales)
		v1.GET("/properties/:id/holders", handler.GetPropertyHolders)

		// Token endpoints (supply changes require authentication)
		v1.GET("/tokens", handler.ListTokens)
		v1.GET("/tokens/:tokenId", handler.GetToken)
		v1.POST("/tokens/:tokenId/mint", auth, handler.MintTokens)
		v1.POST("/tokens/:tokenId/burn", auth, handler.BurnTokens)
		v1.POST("/tokens/:tokenId/transfer", auth, handler.TransferTokens)

		v1.GET("/sales/:id", handler.GetSale)

		// Holder endpoints backed by the mirror node
		v1.GET("/holders/account/:accountId", handler.GetAccountHoldings)
		v1.GET("/holders/:tokenId", handler.GetTokenHolders)
		v1.GET("/holders/:tokenId/transfers", handler.GetTokenTransfers)
		v1.GET("/holders/:tokenId/verify", handler.VerifyTokenOnChain)

		// Audit endpoints
		v1.GET("/audit/topic/:topicId", handler.GetTopicMessages)
		v1.GET("/audit/property/:propertyId", handler.GetPropertyAuditTrail)
		v1.GET("/audit/token/:tokenId", handler.GetTokenAuditTrail)
		v1.POST("/audit/invalidate", auth, handler.InvalidateCache)

		// Content endpoints
		v1.POST("/content", handler.UploadContent)
		v1.GET("/content/:cid", handler.GetContent)
		v1.GET("/content/:cid/pin", handler.GetPinStatus)
	}
}
