package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storetrack/internal/config"
	"storetrack/internal/database"
	"storetrack/internal/handlers"
	"storetrack/internal/logging"
	"storetrack/internal/models"
	"storetrack/internal/repositories"
	"storetrack/internal/server"
	"storetrack/internal/services"
	"storetrack/pkg/rabbitmq"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:          "storetrack",
		Short:        "Warehouse product and order administration API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(envFile)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "create or update the database tables",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(envFile)
				if err != nil {
					return err
				}
				_, _, err = openStore(cfg)
				if err == nil {
					logging.Info().Str("driver", cfg.DBDriver).Msg("migrations completed")
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "insert sample products into an empty database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(envFile)
				if err != nil {
					return err
				}
				store, _, err := openStore(cfg)
				if err != nil {
					return err
				}
				return seedProducts(context.Background(), store)
			},
		},
	)
	return rootCmd
}

func loadConfig(envFile string) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.IsDevelopment())
	return cfg, nil
}

// openStore connects to the configured backend and migrates it. The returned
// *gorm.DB is nil for the memory driver.
func openStore(cfg *config.Config) (repositories.Store, *gorm.DB, error) {
	if cfg.DBDriver == config.DriverMemory {
		return repositories.NewMemoryStore(), nil, nil
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, err
	}
	return repositories.NewGORMStore(db), db, nil
}

func runServe(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	store, db, err := openStore(cfg)
	if err != nil {
		logging.Error().Err(err).Msg("failed to open store")
		return err
	}
	if cfg.SeedData {
		if err := seedProducts(context.Background(), store); err != nil {
			logging.Warn().Err(err).Msg("failed to seed products")
		}
	}

	checks := map[string]server.HealthCheck{}
	if db != nil {
		checks["database"] = func() error { return database.Ping(db) }
	}

	// Left as a nil interface when the broker is disabled.
	var publisher services.EventPublisher
	if cfg.BrokerEnabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			logging.Error().Err(err).Msg("failed to initialize RabbitMQ client")
			return err
		}
		defer mqClient.Close()
		publisher = mqClient
		checks["broker"] = mqClient.Ping

		eventHandler := handlers.NewEventHandler(services.NewStockAlertService(store))
		if err := mqClient.ConsumeOrderEvents(eventHandler.HandleDelivery); err != nil {
			logging.Error().Err(err).Msg("failed to start RabbitMQ consumer")
			return err
		}
		logging.Info().Str("queue", mqClient.Queue()).Msg("consuming order events")
	}

	app := server.New(server.Dependencies{
		Products:  services.NewProductService(store),
		Orders:    services.NewOrderService(store, publisher),
		Reports:   services.NewReportService(store),
		Checks:    checks,
		AccessLog: true,
	})

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("port", cfg.AppPort).Str("driver", cfg.DBDriver).Msg("starting server")
		errCh <- app.Listen(cfg.AppPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logging.Error().Err(err).Msg("server failed")
			return err
		}
		return nil
	case <-quit:
	}

	logging.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	logging.Info().Msg("server gracefully stopped")
	return nil
}

// seedProducts inserts a few sample products when the store has none.
func seedProducts(ctx context.Context, store repositories.Store) error {
	total, err := store.Products().Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		logging.Info().Int64("products", total).Msg("store already has products, skipping seed")
		return nil
	}

	products := []models.Product{
		{Name: "Laptop", Description: "High performance laptop", Price: decimal.NewFromInt(1200), Stock: 10, MinStock: 2},
		{Name: "Keyboard", Description: "Mechanical keyboard", Price: decimal.NewFromInt(75), Stock: 25, MinStock: 5},
		{Name: "Mouse", Description: "Ergonomic wireless mouse", Price: decimal.NewFromInt(25), Stock: 3, MinStock: 5},
	}
	productService := services.NewProductService(store)
	for i := range products {
		if err := productService.CreateProduct(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
		logging.Info().Str("product", products[i].Name).Str("id", products[i].ID).Msg("seeded product")
	}
	return nil
}
