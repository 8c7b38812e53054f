package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/akunbaitpro/OpenForgeAI/internal/api"
	"github.com/akunbaitpro/OpenForgeAI/internal/config"
	"github.com/akunbaitpro/OpenForgeAI/internal/service"
	"github.com/akunbaitpro/OpenForgeAI/internal/store"
	"github.com/akunbaitpro/OpenForgeAI/internal/upstream"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Redis is best effort: without it every request goes upstream.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("warning: redis ping failed, caching disabled: %v", err)
			rdb = nil
		}
		cancel()
	}

	// Submissions stay in process memory unless a database is configured.
	var subs store.SubmissionStore = store.NewMemStore()
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		for i := 0; i < 10; i++ {
			if err = db.Ping(); err == nil {
				break
			}
			log.Printf("waiting for db: attempt %d, err: %v", i+1, err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			log.Fatalf("could not connect to db: %v", err)
		}
		if err := store.RunMigrations(db); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		subs = store.NewPgStore(db)
	}

	source := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamKey, nil)
	svc := service.NewService(source, rdb)
	handler := api.NewHandler(svc, subs)

	router := gin.Default()
	router.Use(api.CORS(cfg.AllowedOrigin))
	api.RegisterRoutes(router, handler)

	log.Printf("listening on :%s (env=%s, origin=%s)", cfg.Port, cfg.Env, cfg.AllowedOrigin)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
