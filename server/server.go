package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/pss-admin/api/v1"
	"github.com/pss-admin/config"
	"github.com/pss-admin/logging"
	"github.com/pss-admin/metrics"
	"github.com/pss-admin/middleware"
	"github.com/pss-admin/services"
	"github.com/pss-admin/storage"
	"github.com/pss-admin/web"
	"gorm.io/gorm"
)

// Server is the HTTP front of the admin backend
type Server struct {
	cfg        *config.Config
	log        *logging.Logger
	router     *gin.Engine
	httpServer *http.Server
}

// NewLayout maps the image store settings onto a storage layout
func NewLayout(cfg *config.Config) storage.Layout {
	return storage.Layout{
		Root:          cfg.ImageRoot,
		URLPrefix:     cfg.ImageURLPrefix,
		ResultsDir:    cfg.ResultsDir,
		CameraSegment: cfg.CameraSegment,
		ModelSegment:  cfg.ModelSegment,
		OriginalsDir:  cfg.OriginalImageDir,
	}
}

// New builds the router and every service behind it
func New(cfg *config.Config, log *logging.Logger, db *gorm.DB) *Server {
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	layout := NewLayout(cfg)
	auth := services.NewAuthService(cfg.JWTSecret, cfg.AdminPasswordHash, cfg.TokenTTL)
	gallery := services.NewGalleryService(db, layout)
	gallery.SetLocation(cfg.DBLocation())

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))

	if cfg.MetricsEnabled {
		router.Use(metrics.Middleware())
		router.GET("/metrics", metrics.Handler())
	}

	base := router.Group(cfg.BasePath)

	// Image store, read only
	base.Static(cfg.ImageURLPrefix, cfg.ImageRoot)

	v1.RegisterRoutes(base.Group("/api"), v1.Dependencies{
		DB:              db,
		Gallery:         gallery,
		Deletion:        services.NewDeletionService(db, layout, storage.NewLocalStore(), log),
		Auth:            auth,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	})

	if cfg.UIEnabled {
		web.Register(base, web.Options{
			BasePath:  cfg.BasePath,
			ProjectID: cfg.UIProjectID,
			PageSize:  cfg.DefaultPageSize,
		})
	} else {
		base.GET("/", v1.Root)
	}
	if cfg.BasePath != "" {
		router.GET("/", v1.Root)
	}

	return &Server{
		cfg:    cfg,
		log:    log,
		router: router,
	}
}

// Router exposes the handler for tests and embedding
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("🚀 PSS admin starting", "port", s.cfg.Port, "base_path", s.cfg.BasePath)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	for _, origin := range origins {
		if origin == "*" {
			// Browsers refuse credentials with a wildcard origin
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
