package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/monitoring"
	"github.com/SAP-F-2025/employability-assessment/internal/services"
	"github.com/SAP-F-2025/employability-assessment/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterOptions configures the engine built by NewRouter
type RouterOptions struct {
	CORSOrigins []string
	StaticDir   string
	Metrics     *monitoring.Metrics
}

type HandlerManager struct {
	participantHandler *ParticipantHandler
	assessmentHandler  *AssessmentHandler
	contentHandler     *ContentHandler
	adminHandler       *AdminHandler
	pinger             Pinger
}

func NewHandlerManager(serviceManager services.ServiceManager, pinger Pinger, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		participantHandler: NewParticipantHandler(serviceManager.Participant(), logger),
		assessmentHandler:  NewAssessmentHandler(serviceManager.Assessment(), logger),
		contentHandler:     NewContentHandler(serviceManager.Content(), logger),
		adminHandler:       NewAdminHandler(serviceManager.Admin(), serviceManager.Export(), logger),
		pinger:             pinger,
	}
}

// NewRouter builds the gin engine with middleware and every route registered
func NewRouter(hm *HandlerManager, logger utils.Logger, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.RequestID())
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(utils.ContextLogger(logger))
	router.Use(corsMiddleware(opts.CORSOrigins))

	if opts.Metrics != nil {
		router.Use(opts.Metrics.MetricsMiddleware())
		router.GET("/metrics", opts.Metrics.PrometheusHandler())
	}

	hm.SetupRoutes(router)

	if opts.StaticDir != "" {
		router.NoRoute(staticFiles(opts.StaticDir))
	}
	return router
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/users", hm.participantHandler.RegisterParticipant)

		api.GET("/questions", hm.contentHandler.GetQuestions)
		api.GET("/suggestions", hm.contentHandler.GetSuggestions)
		api.POST("/score", hm.contentHandler.PreviewScore)
		api.POST("/progress", hm.contentHandler.GetProgress)

		assessments := api.Group("/assessments")
		{
			assessments.POST("", hm.assessmentHandler.SubmitAssessment)
			assessments.GET("/:phone/latest", hm.assessmentHandler.GetLatestAssessment)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/users", hm.adminHandler.ListParticipants)
			admin.DELETE("/users/:id", hm.adminHandler.DeleteParticipant)
			admin.GET("/users/:id/report", hm.adminHandler.GetReport)
			admin.GET("/stats", hm.adminHandler.GetStats)
			admin.GET("/export", hm.adminHandler.ExportWorkbook)
		}
	}
}

// HealthCheck reports service health including database reachability
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":   "healthy",
		"service":  "employability-assessment",
		"database": "up",
	}

	if hm.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := hm.pinger.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = "down"
		}
	}

	c.JSON(status, body)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", utils.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return cors.New(config)
}

// staticFiles serves the browser client from dir for unmatched GET requests, falling
// back to index.html for the site root
func staticFiles(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Not found"})
			return
		}

		name := filepath.Clean("/" + c.Request.URL.Path)
		if name == "/" {
			name = "/index.html"
		}
		path := filepath.Join(dir, filepath.FromSlash(name))

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Not found"})
			return
		}
		c.File(path)
	}
}
