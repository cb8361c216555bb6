// Package di wires the application's dependency graph.
package di

import (
	"context"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"euston-server/config"
	"euston-server/dao/redis"
	"euston-server/db"
	"euston-server/server"
	"euston-server/server/handlers"
	services "euston-server/service"
)

// Container holds all application dependencies.
type Container struct {
	Config           *config.Config
	RedisClient      db.RedisClient
	SessionDao       *redis.SessionDAO
	AnalysisService  *services.AnalysisService
	SessionService   *services.SessionService
	AnalysisHandler  *handlers.AnalysisHandler
	MuxRouter        *mux.Router
	Router           *server.Router
	EustonHttpServer *server.EustonHttpServer
}

// NewContainer initializes and wires up all dependencies. Env "prod"
// connects to a real Redis; any other env runs on the in-memory store.
func NewContainer(env string, cfg *config.Config) *Container {
	log.Infof("[DI] Initializing container - env: %s", env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if env == "prod" {
		internal := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		client, err := db.NewStoreRedisClient(ctx, internal)
		if err != nil {
			log.Fatalf("[DI] Failed to connect to Redis: %v", err)
		}
		redisClient = client
	} else {
		log.Info("[DI] Using in-memory session store")
		redisClient = db.NewMockRedisClient(ctx)
	}

	sessionDao := redis.NewSessionDAO(redisClient, cfg.Redis.SessionTTL)

	analysisService := services.NewAnalysisService(
		cfg.Station.Code,
		cfg.Staffing.Efficiency,
		cfg.Staffing.OverstaffBuffer,
		nil,
	)
	sessionService := services.NewSessionService(sessionDao)

	analysisHandler := handlers.NewAnalysisHandler(analysisService, sessionService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(analysisHandler, muxRouter)
	httpServer := server.NewEustonHttpServer(router, muxRouter, cfg.Server.Addr, cfg.Server.ShutdownTimeout)

	return &Container{
		Config:           cfg,
		RedisClient:      redisClient,
		SessionDao:       sessionDao,
		AnalysisService:  analysisService,
		SessionService:   sessionService,
		AnalysisHandler:  analysisHandler,
		MuxRouter:        muxRouter,
		Router:           router,
		EustonHttpServer: httpServer,
	}
}
