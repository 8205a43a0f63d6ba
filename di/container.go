package di

import (
	"context"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"oh-server/api"
	"oh-server/api/content"
	"oh-server/config"
	"oh-server/dao/redis"
	"oh-server/db"
	"oh-server/hours"
	"oh-server/models"
	"oh-server/server"
	"oh-server/server/handlers"
	services "oh-server/service"
	ws "oh-server/websocket"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisVenueDao           *redis.RedisVenueDAO
	Clock                   hours.Clock
	ContentAPI              content.ContentAPI
	StatusService           *services.StatusService
	PollerManager           *services.PollerManager
	CatalogRefresherService *services.CatalogRefresherService
	Hub                     *ws.Hub
	StatusHandler           *handlers.StatusHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	StatusHttpServer        *server.StatusHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewAppRedisClient(ctx, redisInternalClient)

	// Initialize Redis Venue DAO
	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	// The venue timezone is a single fixed offset, no DST.
	clock := hours.NewFixedOffsetClock(config.TIMEZONE_OFFSET_HOURS)

	// Initialize ContentApi - mock outside prod
	var contentApiClient content.ContentAPI
	if env != "prod" {
		contentApiClient = content.NewContentApiClientMock()
		log.Printf("Using mock content api")
	} else {
		log.Printf("Using prod content api")
		httpClient := api.NewHTTPClient(config.CONTENT_ENDPOINT_BASE_V1)

		contentApiClient = content.NewContentApiClient(httpClient)
		contentApiClient.SetAPIKey(config.ContentAPIKey())
	}

	// Initialize status service
	statusService := services.NewStatusService(redisVenueDao, clock)

	// Initialize websocket hub
	hub := ws.NewHub()

	// Every poller publication lands in the cache and on the wire.
	subscriber := func(venueID string, result *models.StatusResult) {
		if err := redisVenueDao.SetLatestStatus(venueID, result); err != nil {
			log.Printf("[Container] Failed to cache status for %s: %v", venueID, err)
		}
		hub.BroadcastStatus(venueID, result)
	}

	pollerManager := services.NewPollerManager(
		redisVenueDao,
		clock,
		config.STATUS_POLL_INTERVAL_SECONDS*time.Second,
		subscriber,
	)

	catalogRefresherService := services.NewCatalogRefresherService(
		redisVenueDao, contentApiClient, pollerManager)

	// Initialize status handler
	statusHandler := handlers.NewStatusHandler(statusService, redisVenueDao)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(statusHandler, hub, muxRouter)

	// initialize status http server
	statusHttpServer := server.NewStatusHttpServer(router, muxRouter)

	return &Container{
		RedisClient:             redisClient,
		RedisVenueDao:           redisVenueDao,
		Clock:                   clock,
		ContentAPI:              contentApiClient,
		StatusService:           statusService,
		PollerManager:           pollerManager,
		CatalogRefresherService: catalogRefresherService,
		Hub:                     hub,
		StatusHandler:           statusHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		StatusHttpServer:        statusHttpServer,
	}
}
