// Package mockserver is an in-process double of the RecipeNest API. It
// serves the same REST surface as the real backend, backed by an in-memory
// sqlite database, and exists for the test suite and local development.
// The production backend is a separate system and is not reimplemented
// here.
package mockserver

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Server hosts the mock API.
type Server struct {
	db        *gorm.DB
	engine    *gin.Engine
	jwtSecret []byte
	logger    *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates a mock server with its own in-memory database,
// migrated and seeded with the sample catalog.
func NewServer(jwtSecret string, opts ...Option) (*Server, error) {
	// A uniquely named shared-cache database keeps every pooled
	// connection on the same in-memory store while isolating servers
	// from each other.
	dsn := fmt.Sprintf("file:mockapi-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&User{}, &Recipe{}, &Favorite{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Server{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	s.engine = s.buildRouter()
	return s, nil
}

// Handler returns the server as an http.Handler, ready to mount under
// httptest.NewServer or an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// The real backend allows all origins.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: false,
	}))

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", s.handleListRecipes)
		recipes.GET("/search", s.handleSearchRecipes)
		recipes.GET("/:id", s.handleGetRecipe)
		recipes.POST("", s.requireAuth(), s.handleCreateRecipe)
	}

	favorites := api.Group("/favorites", s.requireAuth())
	{
		favorites.GET("", s.handleListFavorites)
		favorites.POST("", s.handleAddFavorite)
		favorites.DELETE("/:recipe_id", s.handleRemoveFavorite)
	}

	return router
}

func detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}
