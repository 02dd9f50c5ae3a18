// Package router wires the HTTP routes of the service.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "giftlink_backend/internal/feature/auth/transport/handler"
	gifthandler "giftlink_backend/internal/feature/gifts/transport/handler"
	"giftlink_backend/internal/platform/http/handler"
	jwtmw "giftlink_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with all routes mounted.
// Auth and browsing routes are public; posting a gift requires a valid
// bearer token.
func NewRouter(auth *authhandler.AuthHandler, gifts *gifthandler.GiftHandler, verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)

	// Credential and session-token flows. The update endpoint identifies the
	// account by the `email` request header, not by the caller's token.
	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)
	r.PUT("/api/auth/update", auth.Update)

	// Public browsing
	r.GET("/api/gifts", gifts.List)
	r.GET("/api/gifts/:id", gifts.Get)
	r.GET("/api/search", gifts.Search)

	// Authenticated routes
	authRequired := r.Group("/")
	authRequired.Use(jwtmw.AuthRequired(verifier))
	{
		authRequired.POST("/api/gifts", gifts.Create)
	}

	return r
}
