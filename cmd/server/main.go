package main

import (
	"log"

	"github.com/JijoBose/web5-wallet/internal/cache"
	"github.com/JijoBose/web5-wallet/internal/config"
	"github.com/JijoBose/web5-wallet/internal/database"
	"github.com/JijoBose/web5-wallet/internal/handlers"
	"github.com/JijoBose/web5-wallet/internal/resolver"
	"github.com/JijoBose/web5-wallet/internal/routes"
)

func main() {
	cfg := config.Load()

	// Init database (resolution audit log)
	database.InitDB(cfg.DBPath)

	// Pick the resolver-cache backend
	var backend resolver.Cache
	switch cfg.CacheBackend {
	case "bolt":
		b, err := resolver.OpenBolt(cfg.CacheDBPath, cfg.CacheTTL)
		if err != nil {
			log.Fatal("Failed to open cache database: ", err)
		}
		backend = b
	case "memory":
		m, err := resolver.NewMemoryCache(cache.Options{
			TTL:           cfg.CacheTTL,
			SweepInterval: cfg.CacheSweepInterval,
		})
		if err != nil {
			log.Fatal("Failed to create cache: ", err)
		}
		backend = m
	default:
		log.Fatalf("Unknown CACHE_BACKEND %q (want \"memory\" or \"bolt\")", cfg.CacheBackend)
	}
	defer backend.Close()

	// Wire the handlers
	handlers.ResolverCache = backend
	handlers.DIDResolver = resolver.NewCachedResolver(resolver.NewHTTPResolver(cfg.ResolverURL), backend)
	handlers.ClientSecret = cfg.ClientSecret

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	// Start server
	log.Printf("Server starting on port %s (cache backend: %s)", cfg.Port, cfg.CacheBackend)
	log.Println("API endpoints:")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/resolve/:did")
	log.Println("  GET    /api/cache/:did")
	log.Println("  DELETE /api/cache/:did")
	log.Println("  DELETE /api/cache")
	log.Println("  GET    /api/stats")
	log.Println("  GET    /api/ws")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
