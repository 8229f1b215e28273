package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/blockedby/chartpage/internal/chart"
	"github.com/blockedby/chartpage/internal/config"
	"github.com/blockedby/chartpage/internal/logger"
	"github.com/blockedby/chartpage/internal/web"
	"github.com/blockedby/chartpage/internal/web/handlers"
)

func main() {
	// 1. Load .env (optional) and config
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// 2. Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log := logger.Get()
	log.Info().Msg("starting chart page service")

	// 3. Setup context with graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		cancel()
	}()

	// 4. Load chart style
	style, err := chart.LoadStyle(cfg.ChartStyleFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load chart style")
	}

	// 5. Templates: embedded unless a directory is configured
	var tmpl *web.TemplateEngine
	if cfg.TemplatesDir != "" {
		tmpl = web.NewDirTemplateEngine(cfg.TemplatesDir, cfg.TemplatesReload)
		log.Info().Str("dir", cfg.TemplatesDir).Bool("reload", cfg.TemplatesReload).Msg("using templates from disk")
	} else {
		tmpl = web.NewTemplateEngine(web.EmbeddedTemplates(), false)
	}
	if err := tmpl.Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load templates")
	}

	// 6. Initialize handlers
	pagesHandler := handlers.NewPagesHandler(tmpl, chart.NewStaticProvider(), style, cfg.NoscriptFallback, log)

	// 7. Initialize server
	server := web.NewServer(&web.Config{
		Port:           cfg.HTTPPort,
		RequestTimeout: cfg.RequestTimeout,
	}, log)
	server.RegisterPagesHandler(pagesHandler)

	// 8. Start server
	log.Info().Int("port", cfg.HTTPPort).Msg("starting web server")
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// 9. Wait for shutdown
	<-ctx.Done()
	log.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("shutdown complete")
}
