package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pritishraj04/delhi-lounge-new-menu/internal/config"
	"github.com/pritishraj04/delhi-lounge-new-menu/internal/menu"
	"github.com/pritishraj04/delhi-lounge-new-menu/internal/monitoring"
	"github.com/pritishraj04/delhi-lounge-new-menu/internal/store"
)

// Server represents the main API handler for the menu service
type Server struct {
	Router    *gin.Engine
	store     *store.Store
	config    *config.Config
	schedule  *menu.Schedule
	monitor   *monitoring.Monitor
	collector *monitoring.Collector
	hub       *Hub
	events    []menu.Event
}

// NewServer creates a new menu API instance
func NewServer(cfg *config.Config, st *store.Store, schedule *menu.Schedule, monitor *monitoring.Monitor, collector *monitoring.Collector) *Server {
	router := gin.Default()

	events := make([]menu.Event, 0, len(cfg.Events))
	for _, e := range cfg.Events {
		events = append(events, menu.Event{Name: e.Name, Image: e.Image})
	}

	s := &Server{
		Router:    router,
		store:     st,
		config:    cfg,
		schedule:  schedule,
		monitor:   monitor,
		collector: collector,
		hub:       newHub(),
		events:    events,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.Use(s.timing())

	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Menu API is running"})
	})

	s.Router.GET("/ws", s.hub.handleWebSocket)

	v1 := s.Router.Group("/api/v1")
	{
		// Menu data
		v1.GET("/menu", s.GetMenu)
		v1.GET("/bar", s.GetBar)
		v1.GET("/events", s.GetEvents)
		v1.GET("/categories", s.GetCategories)
		v1.GET("/search", s.SearchMenu)

		// Service stats
		v1.GET("/stats", s.GetStats)

		// Admin operations
		admin := v1.Group("/", AuthMiddleware(s.config.Auth.JWTSecret))
		{
			admin.POST("/convert/food", s.ConvertFood)
			admin.POST("/convert/bar", s.ConvertBar)
			admin.POST("/import", s.ImportCSV)
		}
	}
}

// timing records request durations into the prometheus collector.
func (s *Server) timing() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.collector.RecordRequest(c.FullPath(), c.Request.Method, time.Since(start))
	}
}
