package server

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/logvault/logvault/internal/auth"
	"github.com/logvault/logvault/internal/config"
	"github.com/logvault/logvault/internal/handler"
	"github.com/logvault/logvault/internal/repository"
	"github.com/logvault/logvault/internal/response"
	"github.com/logvault/logvault/internal/service"
	"github.com/logvault/logvault/internal/storage"
)

// Server holds the Echo app and dependencies.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config
	pool   *pgxpool.Pool
}

// New builds the Echo server and registers routes. Caller provides the pool
// and the blob store client; nothing here opens global connections.
func New(cfg *config.Config, pool *pgxpool.Pool, blobs *storage.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover(), middleware.Logger())
	if len(cfg.Server.CORSAllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.Server.CORSAllowedOrigins,
		}))
	}

	e.Server.ReadTimeout = time.Duration(cfg.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.Server.WriteTimeout) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.Server.IdleTimeout) * time.Second

	authorizer := auth.NewIdentityAuthorizer(cfg.Auth.AdminIdentity)
	logService := service.NewLogService(repository.NewLogRepository(pool), blobs, authorizer)
	authService := service.NewAuthService(repository.NewUserRepository(pool))

	logHandler := &handler.LogHandler{Logs: logService}
	authHandler := &handler.AuthHandler{Auth: authService}

	api := e.Group("/api")
	api.POST("/login", authHandler.Login)
	api.POST("/upload-log", logHandler.Upload)
	api.GET("/logs", logHandler.List)
	api.GET("/stats", logHandler.Stats)
	api.GET("/view-log/:id", logHandler.View)
	api.GET("/download-log/:id", logHandler.Download)

	e.GET("/healthz", func(c echo.Context) error {
		if err := pool.Ping(c.Request().Context()); err != nil {
			return response.InternalError(c, "database unreachable", err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return &Server{Echo: e, Config: cfg, pool: pool}
}

// Start starts the HTTP server. Blocks until the context is cancelled or the
// server fails; on cancel the server is shut down gracefully.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.Echo.Shutdown(shutdownCtx)
	}()
	addr := ":" + s.Config.Server.Port
	err := s.Echo.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
