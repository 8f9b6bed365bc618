package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/wichananm65/petshop-storefront/internal/config"
	"github.com/wichananm65/petshop-storefront/internal/database"
	"github.com/wichananm65/petshop-storefront/internal/logger"
	"github.com/wichananm65/petshop-storefront/internal/notify"
	"github.com/wichananm65/petshop-storefront/internal/pet"
	"github.com/wichananm65/petshop-storefront/internal/server"
	"github.com/wichananm65/petshop-storefront/internal/user"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate, seed and start the HTTP server (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		db, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		slog.Info("schema up to date", "driver", cfg.DBDriver)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin account and load the pet catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		cfg.SeedPets = true
		db, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		return seed(cmd.Context(), cfg, db)
	},
}

func bootstrap() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	logger.Setup(cfg.Env)
	return cfg, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(ctx, db, cfg.DBDriver); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func seed(ctx context.Context, cfg config.Config, db *sql.DB) error {
	users := user.NewService(user.NewSQLRepository(db))
	if _, created, err := users.EnsureUser(ctx, cfg.AdminEmail, cfg.AdminPassword, user.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	} else if created {
		slog.Info("admin account created", "email", cfg.AdminEmail)
	}

	if !cfg.SeedPets {
		return nil
	}
	if _, err := pet.NewService(pet.NewSQLRepository(db, cfg.DBDriver), nil).Seed(ctx, pet.Catalog); err != nil {
		return fmt.Errorf("seed pets: %w", err)
	}
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := seed(ctx, cfg, db); err != nil {
		return err
	}

	broker := notify.NewBroker()
	if cfg.RedisURL != "" {
		client, err := startRedisBridge(ctx, cfg, broker)
		if err != nil {
			return err
		}
		defer client.Close()
	}

	srv := server.New(cfg, db, broker)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr, "env", cfg.Env, "driver", cfg.DBDriver)
		errCh <- srv.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// startRedisBridge relays broker events through Redis so viewers connected
// to other instances see them too. Bridge failures never stop the server.
func startRedisBridge(ctx context.Context, cfg config.Config, broker *notify.Broker) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	bridge := notify.NewRedisBridge(client, cfg.RedisChannel, broker)
	go func() {
		if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("redis bridge stopped", "error", err)
		}
	}()
	return client, nil
}
