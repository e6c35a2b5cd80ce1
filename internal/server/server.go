package server

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Coding-Mohamed/Forum/internal/database"
	"github.com/Coding-Mohamed/Forum/internal/forum"
	"github.com/Coding-Mohamed/Forum/internal/handlers"
	"github.com/Coding-Mohamed/Forum/internal/middleware"
)

type Server struct {
	db      database.Service
	svc     *forum.Service
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize database
	db, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := db.Initialize(); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Printf("Failed to close bootstrap connection: %v", err)
	}

	dbService := database.New()
	gormDB := dbService.GetDB()

	// Core forum rules over the store
	svc := forum.NewService(gormDB, logger)

	// Create unified handler
	handler := handlers.NewHandler(gormDB, svc)

	newServer := &Server{
		db:      dbService,
		svc:     svc,
		handler: handler,
	}

	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("server configured", slog.String("port", port))
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Thread routes (public reads)
		api.GET("/threads", s.handler.Thread.GetThreads)
		api.GET("/threads/:id", s.handler.Thread.GetThread)
		api.GET("/categories", s.handler.Thread.GetCategories)

		// Comment routes (public reads)
		api.GET("/threads/:id/comments", s.handler.Comment.GetComments)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", s.handler.Auth.GetMe)
			protected.GET("/me/admin", s.handler.Admin.CheckAdmin)

			// Thread protected routes
			protected.POST("/threads", s.handler.Thread.CreateThread)
			protected.PUT("/threads/:id", s.handler.Thread.EditThread)
			protected.DELETE("/threads/:id", s.handler.Thread.DeleteThread)

			// Vote toggle
			protected.POST("/threads/:id/upvote", s.handler.Thread.UpvoteThread)
			protected.POST("/threads/:id/downvote", s.handler.Thread.DownvoteThread)
			protected.GET("/threads/:id/vote", s.handler.Thread.GetUserVote)

			// Comment protected routes
			protected.POST("/threads/:id/comments", s.handler.Comment.CreateComment)

			// Admin routes - gated before any handler runs; outsiders are
			// redirected home, not shown an error
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminRequired(func(c *gin.Context, userID string) (bool, error) {
				return s.svc.IsAdmin(c.Request.Context(), userID)
			}))
			{
				admin.POST("/admins", s.handler.Admin.MakeAdmin)
			}
		}
	}

	return r
}
