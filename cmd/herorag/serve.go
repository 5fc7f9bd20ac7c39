package herorag

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/soundprediction/herorag"
	"github.com/soundprediction/herorag/pkg/config"
	"github.com/soundprediction/herorag/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HeroRAG HTTP server",
	Long: `Start the HeroRAG HTTP server providing REST access to both
retrieval strategies.

The server provides endpoints for:
- Answer generation (POST /api/v1/answer)
- Raw retrieval (POST /api/v1/search)
- Graph seeding and export (POST /api/v1/graph/seed, GET /api/v1/graph/export)
- Health and readiness checks

Configuration can be provided through config files, environment
variables, or command-line flags. The graph is seeded on startup.`,
	RunE: runServe,
}

var (
	serveHost string
	servePort int
	serveMode string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "server host")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "server port")
	serveCmd.Flags().StringVar(&serveMode, "mode", "debug", "server mode (debug, release, test)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode = serveMode
	}

	client, err := herorag.New(cfg, nil)
	if err != nil {
		return err
	}
	defer client.Close(context.Background())

	if err := client.Seed(cmd.Context()); err != nil {
		return err
	}

	srv := server.New(cfg, client)
	srv.Setup()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()
	fmt.Printf("Listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		fmt.Println("Server stopped gracefully")
		return nil
	}
}
