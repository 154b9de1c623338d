package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultContainerName = "gameserver"
	DefaultStopTimeout   = 30 * time.Second
)

var ErrMissingToken = errors.New("DISCORD_TOKEN is not set")

type Config struct {
	DiscordToken  string
	ContainerName string
	StopTimeout   time.Duration
	// HTTPAddr enables the HTTP control API when non-empty.
	HTTPAddr  string
	LogLevel  logrus.Level
	LogFormat string
}

// Load reads a .env file if present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DiscordToken:  getenv("DISCORD_TOKEN"),
		ContainerName: getenv("CONTAINER_NAME"),
		StopTimeout:   DefaultStopTimeout,
		HTTPAddr:      getenv("HTTP_ADDR"),
		LogLevel:      logrus.InfoLevel,
		LogFormat:     getenv("LOG_FORMAT"),
	}

	if cfg.DiscordToken == "" {
		return nil, ErrMissingToken
	}
	if cfg.ContainerName == "" {
		cfg.ContainerName = DefaultContainerName
	}

	if v := getenv("STOP_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid STOP_TIMEOUT %q: must be a positive number of seconds", v)
		}
		cfg.StopTimeout = time.Duration(secs) * time.Second
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", cfg.LogFormat)
	}

	return cfg, nil
}

// Logger builds the process logger from the config.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
