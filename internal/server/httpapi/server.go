// Package httpapi exposes the RMS backend over HTTP/JSON: the public
// branding document, auth, profile, and the admin branding endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rmsplatform/rms/internal/logging"
	"github.com/rmsplatform/rms/internal/server/services"
)

// LogoPresigner issues presigned upload URLs for the branding logo.
// *blob.Presigner satisfies it.
type LogoPresigner interface {
	PresignedLogoPutURL(ctx context.Context) (key string, url string, err error)
}

type Server struct {
	addr            string
	logger          logging.Logger
	userService     *services.UserService
	brandingService *services.BrandingService
	presigner       LogoPresigner
	jwtSecret       []byte
	engine          *gin.Engine
}

func NewServer(addr string, logger logging.Logger, us *services.UserService, bs *services.BrandingService, presigner LogoPresigner, secretKey string) *Server {
	s := &Server{
		addr:            addr,
		logger:          logger,
		userService:     us,
		brandingService: bs,
		presigner:       presigner,
		jwtSecret:       []byte(secretKey),
	}
	s.engine = s.buildEngine()
	return s
}

func (s *Server) buildEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.loggingMiddleware())

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api/v1")
	api.GET("/cms/public/branding", s.handleGetBranding)
	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	secured := api.Group("")
	secured.Use(s.authRequired())
	secured.GET("/users/me", s.handleProfile)
	secured.PATCH("/users/me", s.handleUpdateProfile)

	admin := api.Group("/admin")
	admin.Use(s.authRequired(), s.adminRequired())
	admin.PUT("/branding", s.handleUpdateBranding)
	admin.POST("/branding/logo-url", s.handleLogoUploadURL)

	return engine
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
