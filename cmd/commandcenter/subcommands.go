package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/config"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/dashboard"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/repository"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/service"
	transport "github.com/Design-Arena-Gens/agentic-c0a91717/internal/transport/http"
	"github.com/Design-Arena-Gens/agentic-c0a91717/policy"
)

// Create the serve command
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the API and overview page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				cfg.HTTPPort = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().Int("port", 0, "HTTP port (overrides HTTP_PORT)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log.Info().
		Int("port", cfg.HTTPPort).
		Str("backend", cfg.DataBackend).
		Str("fixtures", cfg.FixturesPath).
		Msg("starting command center")

	repo, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer repo.Close()

	if err := store.CheckConsistency(ctx, repo); err != nil {
		log.Warn().Err(err).Msg("fixture data is inconsistent")
	}

	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		return fmt.Errorf("failed to initialize policy engine: %w", err)
	}

	svc := service.New(repo, policyEngine)
	server := transport.NewServer(svc, cfg)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Int("port", cfg.HTTPPort).Msg("command center started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Info().Msg("shutting down command center")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown server gracefully")
	}
	log.Info().Msg("command center stopped")
	return nil
}

// openStore builds the configured repository, seeded from FIXTURES_PATH
// when set.
func openStore(cfg *config.Config) (store.Repository, error) {
	var fixtures *store.Fixtures
	if cfg.FixturesPath != "" {
		f, err := store.LoadFixtures(cfg.FixturesPath)
		if err != nil {
			return nil, err
		}
		fixtures = f
	}

	switch cfg.DataBackend {
	case config.BackendSQLite:
		s, err := store.NewSQLiteStore(cfg.DatabaseURL, fixtures)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return store.NewMemoryStore(fixtures), nil
	}
}

// Create the dashboard command
func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Render the dashboard from a running command center",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL, _ := cmd.Flags().GetString("url")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			if timeout <= 0 {
				return fmt.Errorf("timeout must be positive, got %s", timeout)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			ctrl := dashboard.NewController(dashboard.NewClient(baseURL, timeout))
			ctrl.Mount(ctx)
			select {
			case <-ctrl.Done():
			case <-ctx.Done():
				log.Warn().Dur("timeout", timeout).Msg("dashboard rendered before fetches settled")
			}
			ctrl.Unmount()

			return dashboard.RenderText(cmd.OutOrStdout(), ctrl.View())
		},
	}
	cmd.Flags().String("url", config.Load().CommandCenterURL, "Command center base URL")
	cmd.Flags().Duration("timeout", 5*time.Second, "How long to wait for the fetches")
	return cmd
}
