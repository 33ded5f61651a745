package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/solatis/wordgate/internal/cache"
	"github.com/solatis/wordgate/internal/core/api"
	"github.com/solatis/wordgate/internal/core/auth"
	"github.com/solatis/wordgate/internal/core/config"
	"github.com/solatis/wordgate/internal/core/db"
	"github.com/solatis/wordgate/internal/core/server"
	"github.com/solatis/wordgate/internal/matcher"
)

const Version = "0.1.0"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP moderation API service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("host", "0.0.0.0", "HTTP server host")
	serveCmd.Flags().Int("port", 5000, "HTTP server port")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		host, _ := cmd.Flags().GetString("host")
		cfg.Host = host
	}
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Port = port
	}

	if dbURL == "" {
		return fmt.Errorf("--db-url required")
	}
	database, err := db.Open(dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var migrationID string
	checkQuery := `SELECT migration_id FROM migrations WHERE migration_id = '001_initial_schema.sql'`
	err = database.Get(&migrationID, database.Rebind(checkQuery))
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("migration 001_initial_schema not applied - run 'wordgate migrate' first")
		}
		return fmt.Errorf("failed to check migrations: %w", err)
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}
	store := db.NewStore(queries)

	keys, err := config.APIKeys()
	if err != nil {
		return fmt.Errorf("failed to load API keys: %w", err)
	}
	if len(keys) == 0 {
		return fmt.Errorf("no API keys configured (set WG_API_KEY environment variable)")
	}
	authenticator := auth.NewAuthenticator(keys)

	ruleCache, err := cache.New()
	if err != nil {
		return fmt.Errorf("failed to create rule cache: %w", err)
	}
	engine := matcher.NewEngine()
	reloader := cache.NewReloader(ruleCache, engine, logger)

	// Warm everything from the store before accepting traffic. A persisted
	// rule that fails to compile aborts startup: booting with moderation
	// silently disabled is worse than not booting.
	if err := warmCaches(store, reloader); err != nil {
		return fmt.Errorf("failed to load rules at startup: %w", err)
	}

	service, err := api.NewService(store, ruleCache, engine, reloader, logger)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestID(), api.BodyLimit(cfg.MaxBodyBytes), api.AccessLog(logger))

	router.GET("/healthz", api.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := router.Group("/", authenticator.Middleware())
	service.Register(protected)

	httpServer, err := server.NewHTTPServer(cfg, router)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info().
		Str("version", Version).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("starting WordGate moderation API")

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Start(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		logger.Info().Msg("shutting down gracefully")
		return httpServer.Shutdown(ctx)
	}
}

// warmCaches runs the initial full reload of every rule kind.
func warmCaches(store *db.Store, reloader *cache.Reloader) error {
	literals, err := store.FetchAllLiteralRules()
	if err != nil {
		return err
	}
	reloader.ReloadLiterals(literals)

	regexes, err := store.FetchAllRegexRules()
	if err != nil {
		return err
	}
	if err := reloader.ReloadRegexes(regexes); err != nil {
		return err
	}

	settings, err := store.FetchAllSettings()
	if err != nil {
		return err
	}
	reloader.ReloadSettings(settings)

	return nil
}
