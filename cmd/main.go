package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tomas-vilte/RepoPulse/internal/config"
	"github.com/Tomas-vilte/RepoPulse/internal/domain/ports"
	"github.com/Tomas-vilte/RepoPulse/internal/infrastructure/ai/gemini"
	ghclient "github.com/Tomas-vilte/RepoPulse/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/RepoPulse/internal/logger"
	"github.com/Tomas-vilte/RepoPulse/internal/server"
	"github.com/Tomas-vilte/RepoPulse/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "repopulse",
		Usage:   "API gateway que colecta actividad de GitHub y genera contenido con Gemini",
		Version: version.FullVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "ruta a un archivo de configuración TOML opcional",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "puerto de escucha (pisa PORT y el archivo de config)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "logging de debug con source",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "logging de info",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("Error iniciando el servidor: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.IsSet("port") {
		cfg.Port = int(cmd.Int("port"))
	}

	var ai ports.AIProvider
	if cfg.GeminiAPIKey == "" {
		logger.Warn(ctx, "Gemini API key not found in environment variables!")
	} else {
		provider, err := gemini.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.UpstreamTimeout())
		if err != nil {
			return err
		}
		defer func() {
			if err := provider.Close(); err != nil {
				logger.Error(ctx, "error closing Gemini client", err)
			}
		}()
		ai = provider
		logger.Info(ctx, "Gemini provider ready", "model", provider.GetModelName())
	}

	srv := server.New(cfg, ai, func(owner, repo, token string) ports.VCSClient {
		return ghclient.NewGitHubClient(owner, repo, token, cfg.UpstreamTimeout())
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.NewRouter(srv),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server listening", "port", cfg.Port, "version", version.FullVersion())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
