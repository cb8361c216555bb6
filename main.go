package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"euston-server/config"
	"euston-server/di"
)

func main() {
	cfg, err := config.Load(os.Getenv("EUSTON_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	configureLogging(cfg)

	env := os.Getenv("EUSTON_ENV")
	if env == "" {
		env = "dev"
	}

	container := di.NewContainer(env, cfg)
	container.EustonHttpServer.Start()
}

func configureLogging(cfg *config.Config) {
	if level, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}
	if cfg.Logging.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
