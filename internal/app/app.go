package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	emailadapter "github.com/ecofinds/marketplace/internal/adapter/email"
	"github.com/ecofinds/marketplace/internal/adapter/memory"
	mongoadapter "github.com/ecofinds/marketplace/internal/adapter/mongo"
	natsadapter "github.com/ecofinds/marketplace/internal/adapter/nats"
	redisadapter "github.com/ecofinds/marketplace/internal/adapter/redis"
	"github.com/ecofinds/marketplace/internal/app/config"
	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/platform/logger"
	"github.com/ecofinds/marketplace/internal/repository"
	"github.com/ecofinds/marketplace/internal/service"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	cfg *config.Config
	log logger.Logger

	Catalog   service.CatalogService
	Cart      service.CartService
	Listings  service.ListingService
	Purchases service.PurchaseService
	Profile   service.ProfileService

	mongoClient *mongo.Client
	redisClient *redis.Client
	natsConn    *nats.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("Configuration loaded: Env=%s, Storage=%s, CartStore=%s", cfg.Env, cfg.Storage.Driver, cfg.Cart.Store)

	a := &App{cfg: cfg, log: appLogger}

	var (
		productRepo  repository.ProductRepository
		purchaseRepo repository.PurchaseRepository
		userRepo     repository.UserRepository
	)
	switch cfg.Storage.Driver {
	case "mongo":
		appLogger.Info("Initializing MongoDB client...")
		mongoClient, err := mongoadapter.NewClient(ctx, cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
		}
		a.mongoClient = mongoClient
		productRepo = mongoadapter.NewProductRepository(mongoClient, cfg.MongoDB)
		purchaseRepo = mongoadapter.NewPurchaseRepository(mongoClient, cfg.MongoDB)
		// Profiles stay in memory until a dedicated user store exists.
		userRepo = memory.NewUserRepository()
	case "memory":
		productRepo = memory.NewProductRepository()
		purchaseRepo = memory.NewPurchaseRepository()
		userRepo = memory.NewUserRepository()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	var cartRepo repository.CartRepository
	switch cfg.Cart.Store {
	case "redis":
		appLogger.Info("Initializing Redis client...")
		redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		a.redisClient = redisClient
		cartRepo = redisadapter.NewCartRepository(redisClient)
	case "memory":
		cartRepo = memory.NewCartRepository()
	default:
		return nil, fmt.Errorf("unknown cart store %q", cfg.Cart.Store)
	}

	var publisher natsadapter.MessagePublisher
	if cfg.NATS.URL != "" {
		appLogger.Infof("Connecting to NATS at %s...", cfg.NATS.URL)
		natsConn, err := natsadapter.NewConnection(cfg.NATS)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		a.natsConn = natsConn
		publisher, err = natsadapter.NewPublisher(natsConn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize NATS publisher: %w", err)
		}
	}

	var receiptMail emailadapter.Sender
	if cfg.SMTP.Host != "" {
		receiptMail, err = emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SMTP sender: %w", err)
		}
		appLogger.Info("SMTP receipt sender initialized")
	}

	if cfg.Demo.SeedData {
		if err := memory.SeedDemoData(ctx, productRepo, purchaseRepo, userRepo); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		appLogger.Info("Demo data seeded")
	}

	a.Catalog = service.NewCatalogService(productRepo, appLogger)
	a.Cart = service.NewCartService(cartRepo, productRepo, publisher, appLogger, service.CartServiceConfig{
		CartTTL:     cfg.Cart.TTL,
		MergePolicy: entity.MergePolicy(cfg.Cart.MergePolicy),
	})
	a.Listings = service.NewListingService(productRepo, publisher, appLogger)
	a.Purchases = service.NewPurchaseService(purchaseRepo, a.Cart, publisher, receiptMail, appLogger)
	a.Profile = service.NewProfileService(userRepo, appLogger)

	return a, nil
}

// Run walks one demo marketplace session over the seeded data and then shuts
// down. SIGINT/SIGTERM cancels the session early.
func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.runDemoSession(ctx); err != nil {
		a.log.Errorf("Demo session aborted: %v", err)
	}

	a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) {
	a.log.Info("Shutting down application...")

	if a.natsConn != nil {
		a.natsConn.Close()
		a.log.Info("NATS connection closed")
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		} else {
			a.log.Info("Redis client closed")
		}
	}
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.log.Errorf("Error disconnecting from MongoDB: %v", err)
		} else {
			a.log.Info("MongoDB connection closed")
		}
	}

	a.log.Info("Application shut down successfully")
}
