package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/melih/lighthouse-bot/internal/adapters/discord"
	"github.com/melih/lighthouse-bot/internal/adapters/docker"
	"github.com/melih/lighthouse-bot/internal/adapters/http"
	"github.com/melih/lighthouse-bot/internal/config"
	"github.com/melih/lighthouse-bot/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	log := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Initialize Adapters (Infrastructure)
	dockerAdapter, err := docker.NewAdapter()
	if err != nil {
		log.Fatalf("Failed to initialize Docker adapter: %v", err)
	}
	defer dockerAdapter.Close()

	// 2. Core: the controller owns the runtime client for the life of the process
	controller := services.NewController(dockerAdapter, cfg.ContainerName, cfg.StopTimeout, log)
	bot := services.NewBot(controller, log)

	// 3. Optional HTTP control API
	if cfg.HTTPAddr != "" {
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		http.NewServerHandler(controller).Register(app)

		go func() {
			log.Infof("HTTP API listening on %s", cfg.HTTPAddr)
			if err := app.Listen(cfg.HTTPAddr); err != nil {
				log.Errorf("HTTP API stopped: %v", err)
			}
		}()
		defer app.Shutdown()
	}

	// 4. Chat platform
	discordAdapter, err := discord.NewAdapter(cfg.DiscordToken, bot, log)
	if err != nil {
		log.Fatalf("Failed to initialize Discord adapter: %v", err)
	}

	log.WithFields(logrus.Fields{
		"container":    cfg.ContainerName,
		"stop_timeout": cfg.StopTimeout,
	}).Info("Bot starting")

	if err := discordAdapter.Start(ctx); err != nil {
		log.Errorf("Discord adapter error: %v", err)
	}
	log.Info("Bot stopped")
}
