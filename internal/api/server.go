package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ticketpub/internal/auth"
	"ticketpub/internal/config"
	"ticketpub/internal/handlers"
	"ticketpub/internal/logger"
	"ticketpub/internal/middleware"
	"ticketpub/internal/service"
	"ticketpub/internal/store"
)

// Server представляет HTTP сервер API
type Server struct {
	router   *gin.Engine
	config   *config.Config
	catalog  *store.Catalog
	sessions *store.Sessions
	services *service.Services
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	catalog := store.NewCatalog()
	sessions := store.NewSessions()
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.SessionTTL)
	services := service.NewServices(catalog, sessions, tokens)

	if cfg.SeedDemo {
		if err := store.SeedDemo(catalog); err != nil {
			logger.Fatal("Failed to seed demo catalog", "error", err)
		}
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORSAllowOrigins))
	router.Use(middleware.SessionResolver(services.Profile))

	server := &Server{
		router:   router,
		config:   cfg,
		catalog:  catalog,
		sessions: sessions,
		services: services,
	}

	server.setupRoutes()

	return server
}

// setupRoutes настраивает все API роуты
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.sessions)

	api := s.router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
		}

		events := api.Group("/events")
		{
			events.GET("", h.ListEvents)
			events.POST("", h.CreateEvent)
			events.PUT("/:id", h.UpdateEvent)
			events.DELETE("/:id", h.DeleteEvent)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", h.GetCart)
			cart.POST("/items", h.AddToCart)
			cart.DELETE("/items/:eventId", h.RemoveCartItem)
		}

		api.POST("/checkout", h.Checkout)
		api.GET("/checkout/state", h.CheckoutState)

		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)

		tickets := api.Group("/tickets")
		{
			tickets.GET("", h.ListTickets)
			tickets.GET("/:id/download", h.DownloadTicket)
		}
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/health", s.healthCheck)
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ticketpub-api",
		"events":  s.catalog.Count(),
	})
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
