package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kisan-backend/internal/auth"
	"kisan-backend/internal/chat"
	"kisan-backend/internal/handler"
	"kisan-backend/internal/mandi"
	"kisan-backend/internal/middleware"
	"kisan-backend/internal/storage"
	"kisan-backend/internal/tasks"
	"kisan-backend/internal/users"
	"kisan-backend/internal/vision"
	"kisan-backend/internal/voice"
)

// Deps are the services the HTTP API is built on. Images may be nil.
type Deps struct {
	Chat      *chat.Service
	Vision    *vision.Client
	Voice     *voice.Client
	Mandi     *mandi.Client
	Tasks     *tasks.Service
	Users     *users.Service
	Issuer    *auth.Issuer
	Images    storage.ImageStore
	Providers handler.Providers
}

type Server struct {
	router          *gin.Engine
	deps            Deps
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func NewServer(deps Deps, shutdownTimeout time.Duration, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.CORSMiddleware(), middleware.RequestLogger(logger))

	s := &Server{
		router:          router,
		deps:            deps,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
	s.setupRoutes()
	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	chatHandler := handler.NewChatHandler(s.deps.Chat, s.logger)
	cropHandler := handler.NewCropHandler(s.deps.Vision, s.deps.Images, s.logger)
	marketHandler := handler.NewMarketHandler(s.deps.Mandi, s.logger)
	voiceHandler := handler.NewVoiceHandler(s.deps.Voice, s.logger)
	userHandler := handler.NewUserHandler(s.deps.Users, s.deps.Issuer, s.logger)
	taskHandler := handler.NewTaskHandler(s.deps.Tasks, s.logger)

	s.router.GET("/health", handler.Health(s.deps.Providers))

	api := s.router.Group("/api/v1")
	api.Use(middleware.OptionalAuthMiddleware(s.deps.Issuer, s.logger))
	{
		api.POST("/chat", chatHandler.Chat)
		api.POST("/chat/market-advice", chatHandler.MarketAdvice)
		api.POST("/chat/farming-guidance", chatHandler.FarmingGuidance)
		api.POST("/chat/schemes", chatHandler.Schemes)

		api.POST("/crop/analyze", cropHandler.Analyze)

		api.POST("/market/prices", marketHandler.Prices)
		api.POST("/market/advice", marketHandler.Advice)
		api.GET("/market/trends", marketHandler.Trends)
		api.GET("/market/nearby", marketHandler.Nearby)

		api.POST("/voice/transcribe", voiceHandler.Transcribe)
		api.POST("/voice/synthesize", voiceHandler.Synthesize)

		api.POST("/users", userHandler.Register)
	}

	authRequired := s.router.Group("/api/v1")
	authRequired.Use(middleware.AuthMiddleware(s.deps.Issuer, s.logger))
	{
		authRequired.GET("/users/me", userHandler.Me)
		authRequired.PUT("/users/me", userHandler.UpdateMe)

		authRequired.GET("/tasks", taskHandler.List)
		authRequired.POST("/tasks", taskHandler.Create)
		authRequired.POST("/tasks/generate", taskHandler.Generate)
		authRequired.PUT("/tasks/:id", taskHandler.Update)
		authRequired.DELETE("/tasks/:id", taskHandler.Delete)
	}
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
