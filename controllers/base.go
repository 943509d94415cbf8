package controllers

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"Chronicle/cache"
	"Chronicle/feed"
	"Chronicle/middlewares"
	"Chronicle/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	// DefaultPageSize is the number of posts per page on every listing view.
	DefaultPageSize = 10
	// DefaultIndexCacheTTL bounds how stale the cached index may get.
	DefaultIndexCacheTTL = 20 * time.Second
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine

	Feed       *feed.Aggregator
	IndexCache *cache.IndexCache
	PageSize   int
}

// Initialize connects to Postgres and wires the server. In production the
// DSN comes from DATABASE_URL; otherwise it is assembled from the pieces.
func (server *Server) Initialize(DbUser, DbPassword, DbPort, DbHost, DbName string) {
	var dsn string

	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		dsn = os.Getenv("DATABASE_URL")
		if dsn != "" && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			DbHost, DbUser, DbPassword, DbName, DbPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Cannot connect to Postgres: %v", err)
	}

	if err := cache.InitFromEnv(); err != nil {
		log.Printf("warning: redis not available, using in-process cache: %v", err)
	}

	server.InitializeWithDB(db)
}

// InitializeWithDB wires the server onto an open database handle. Tests use
// this directly with an in-memory sqlite handle.
func (server *Server) InitializeWithDB(db *gorm.DB) {
	server.DB = db

	if err := server.DB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if err := ensureFollowConstraints(server.DB); err != nil {
		log.Printf("warning: follow constraints not ensured: %v", err)
	}

	server.PageSize = envInt("POSTS_PER_PAGE", DefaultPageSize)
	ttl := time.Duration(envInt("INDEX_CACHE_TTL_SECONDS", int(DefaultIndexCacheTTL/time.Second))) * time.Second

	server.Feed = feed.NewGormAggregator(server.DB)
	server.IndexCache = cache.NewIndexCache(ttl)

	server.Router = gin.Default()
	server.Router.Use(middlewares.CORSMiddleware())
	if gin.Mode() != gin.TestMode {
		server.Router.Use(middlewares.RateLimitMiddleware())
	}
	server.initializeRoutes()
}

// ensureFollowConstraints guards the composite unique index on the follow
// pair; the uniqueness check must be atomic with the insert.
func ensureFollowConstraints(db *gorm.DB) error {
	if db.Migrator().HasIndex(&models.Follow{}, "idx_follows_unique") {
		return nil
	}
	return db.Migrator().CreateIndex(&models.Follow{}, "idx_follows_unique")
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("ignoring invalid %s=%q", key, raw)
		return fallback
	}
	return n
}

func (server *Server) Run(addr string) {
	log.Printf("Listening to port %s", addr)
	log.Fatal(server.Router.Run(addr))
}
