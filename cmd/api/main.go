// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hooked-store/storefront/internal/config"
	"github.com/hooked-store/storefront/internal/domain/cart"
	"github.com/hooked-store/storefront/internal/domain/catalog"
	"github.com/hooked-store/storefront/internal/domain/checkout"
	"github.com/hooked-store/storefront/internal/domain/contact"
	"github.com/hooked-store/storefront/internal/infrastructure/database/postgres"
	"github.com/hooked-store/storefront/internal/infrastructure/database/redis"
	"github.com/hooked-store/storefront/internal/interfaces/http"
	"github.com/hooked-store/storefront/internal/interfaces/http/routes"
	"github.com/hooked-store/storefront/internal/pkg/inbox"
	"github.com/hooked-store/storefront/internal/pkg/logger"
	"github.com/hooked-store/storefront/internal/pkg/telemetry"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg)
	log.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	shutdownTracing, err := telemetry.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	ctx := context.Background()
	opts := http.Options{}

	// Load the catalog
	var store *catalog.Store
	if cfg.UsesPostgres() {
		db, err := postgres.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Health(ctx); err != nil {
			log.Fatalf("Database health check failed: %v", err)
		}

		migration := postgres.NewMigration(db.GetDB(), log)
		if err := migration.RunAutoMigrations(); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			log.Warnf("Index creation failed: %v", err)
		}
		if cfg.Catalog.Seed {
			if err := migration.SeedCatalog(ctx, catalog.DefaultProducts()); err != nil {
				log.Warnf("Catalog seeding failed: %v", err)
			}
		}

		store, err = catalog.NewRepository(db.GetDB()).LoadStore(ctx)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		opts.Database = db
	} else {
		store, err = catalog.New(catalog.DefaultProducts())
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}
	log.WithField("products", store.Len()).Info("📦 Catalog loaded")

	// Cart slots
	var slots cart.Store
	if cfg.UsesRedis() {
		redisClient, err := redis.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		slots = cart.NewRedisStore(redisClient.GetClient(), cfg.Cart.TTL)
		opts.RedisClient = redisClient.GetClient()
	} else {
		log.Warn("Cart store is in memory, carts are lost on restart")
		slots = cart.NewMemoryStore()
	}

	inboxClient := inbox.NewClient(inbox.Options{
		Endpoint:         cfg.Contact.Endpoint,
		Timeout:          cfg.Contact.Timeout,
		BreakerFailures:  cfg.Contact.BreakerFailures,
		BreakerOpenDelay: cfg.Contact.BreakerOpenDelay,
	})

	opts.ContactRelay = inboxClient

	deps := routes.Dependencies{
		Catalog:  store,
		Cart:     cart.NewService(slots, store, cfg.Cart.KeyName, cfg.Shop.ShippingFee, log),
		Checkout: checkout.NewService(cfg, log),
		Contact:  contact.NewService(inboxClient, log),
	}

	log.Info("✅ All systems operational!")

	server := http.NewServer(cfg, log, deps, opts)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("👋 Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Errorf("Failed to flush traces: %v", err)
	}

	log.Info("✅ Server shutdown completed")
}
