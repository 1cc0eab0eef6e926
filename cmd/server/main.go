package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/comite-ethique/backend/internal/config"
	"github.com/comite-ethique/backend/internal/database"
	"github.com/comite-ethique/backend/internal/handler"
	"github.com/comite-ethique/backend/internal/middleware"
	"github.com/comite-ethique/backend/internal/repository"
	"github.com/comite-ethique/backend/internal/router"
)

// contentSecurityPolicy mirrors what the frontend needs: inline scripts and
// the Google font hosts are allowed, everything else stays same-origin.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline'; " +
	"script-src-attr 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; " +
	"img-src 'self' data:; " +
	"connect-src 'self'"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: no .env file loaded")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Bootstrap(ctx, db, cfg.BcryptCost); err != nil {
		log.Fatalf("bootstrap database: %v", err)
	}
	cancel()

	admins := repository.NewAdminRepo(db)
	complaints := repository.NewComplaintRepo(db)
	messages := repository.NewMessageRepo(db)
	suggestions := repository.NewSuggestionRepo(db)
	protocols := repository.NewProtocolRepo(db)
	content := repository.NewContentRepo(db)
	sessions := repository.NewSessionRepo(db)

	auth := handler.NewAuthHandler(cfg, admins, sessions)
	pub := handler.NewPublicHandler(complaints, messages, suggestions, protocols, content)
	adm := handler.NewAdminHandler(cfg, admins, complaints, messages, suggestions, protocols, content)

	e := echo.New()
	e.HideBanner = true
	// Deployments sit behind a reverse proxy; the rate limiter must key on
	// the real client address, not the proxy's.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.BodyLimit("2M"))
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ContentSecurityPolicy: contentSecurityPolicy,
	}))
	// Frontend assets, with the SPA entry point answering unmatched
	// non-API paths.
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  cfg.StaticDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api")
		},
	}))

	limiter := middleware.NewLoginRateLimiter(10, 15*time.Minute)
	guard := middleware.RequireAdmin(cfg.SessionSecret, sessions)
	router.Register(e, auth, pub, adm, limiter, guard)

	log.Printf("comité d'éthique backend — mode=%s port=%s db=%s", cfg.Env, cfg.Port, cfg.DBPath)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
