package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nebulastellary-afk/fash-rodah/internal/config"
	"github.com/nebulastellary-afk/fash-rodah/internal/handler"
	"github.com/nebulastellary-afk/fash-rodah/internal/middleware"
	"github.com/nebulastellary-afk/fash-rodah/internal/ratelimit"
	"github.com/nebulastellary-afk/fash-rodah/internal/service"
)

const serviceName = "Fash Rodah Portfolio"

type Server struct {
	router         *gin.Engine
	config         *config.Config
	contactHandler *handler.ContactHandler
	indexPath      string
	httpServer     *http.Server
}

// New wires the contact flow onto a gin engine. The limiter and store
// are injected so their lifetime is tied to the server's and tests can
// substitute fakes.
func New(cfg *config.Config, limiter ratelimit.Limiter, store service.Store) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)

		if cfg.UsesDefaultSecret() {
			log.Println("Warning: SECRET_KEY is the development default; set a real key in production")
		}
	}

	router := gin.New()

	contactService := service.NewContactService(store, limiter)
	contactHandler := handler.NewContactHandler(contactService, cfg.Contact)

	s := &Server{
		router:         router,
		config:         cfg,
		contactHandler: contactHandler,
		indexPath:      cfg.Server.IndexPath,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Logger())
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.home)
	s.router.POST("/submit", s.contactHandler.Submit)
	s.router.GET("/contact-info", s.contactHandler.ContactInfo)
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/submissions", s.contactHandler.Submissions)

	// Unknown routes get the landing page with a 404 status.
	s.router.NoRoute(func(c *gin.Context) {
		s.serveIndex(c, http.StatusNotFound)
	})
}

func (s *Server) home(c *gin.Context) {
	s.serveIndex(c, http.StatusOK)
}

func (s *Server) serveIndex(c *gin.Context, status int) {
	page, err := os.ReadFile(s.indexPath)
	if err != nil {
		requestID := c.GetString("request_id")
		log.Printf("[%s] Failed to read landing page: %v", requestID, err)

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	c.Data(status, "text/html; charset=utf-8", page)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"timestamp":    time.Now().Format(time.RFC3339),
		"service":      serviceName,
		"contact_info": s.config.Contact,
	})
}

func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	log.Printf("Starting %s backend on %s", serviceName, addr)
	log.Printf("Environment: %s", s.config.Server.Environment)

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
