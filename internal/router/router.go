package router // package router wires HTTP routes to their handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/comite-ethique/backend/internal/handler"
	"github.com/comite-ethique/backend/internal/middleware"
)

// Register mounts the public, auth and admin routes under /api.  The login
// limiter applies to /api/login only; the guard protects everything under
// /api/admin.
func Register(e *echo.Echo, auth *handler.AuthHandler, pub *handler.PublicHandler,
	adm *handler.AdminHandler, limiter *middleware.LoginRateLimiter, guard echo.MiddlewareFunc) {

	api := e.Group("/api")

	// Auth
	api.POST("/login", auth.Login, limiter.Middleware())
	api.POST("/logout", auth.Logout)
	api.GET("/me", auth.Me)

	// Public reads
	api.GET("/stats", pub.Stats)
	api.GET("/protocols", pub.ListProtocols)
	api.GET("/content", pub.SiteContent)

	// Public submissions
	api.POST("/plaintes", pub.CreateComplaint)
	api.POST("/messages", pub.CreateMessage)
	api.POST("/suggestions", pub.CreateSuggestion)

	// Admin
	admin := api.Group("/admin", guard)
	admin.GET("/plaintes", adm.ListComplaints)
	admin.PATCH("/plaintes/:id", adm.UpdateComplaintStatus)
	admin.GET("/messages", adm.ListMessages)
	admin.PATCH("/messages/:id", adm.MarkMessageRead)
	admin.GET("/suggestions", adm.ListSuggestions)
	admin.PATCH("/suggestions/:id", adm.MarkSuggestionRead)
	admin.POST("/protocols", adm.UpsertProtocol)
	admin.DELETE("/protocols/:id", adm.DeleteProtocol)
	admin.PUT("/content", adm.UpsertContent)
	admin.GET("/accounts", adm.ListAccounts)
	admin.POST("/accounts", adm.CreateAccount)
	admin.DELETE("/accounts/:id", adm.DeleteAccount)
}
