package config

import (
	"github.com/eskrenkovic/dj-wishboard-go/internal/env"

	"go.uber.org/zap"
)

const (
	PortEnv      = "PORT"
	DataFileEnv  = "DATA_FILE"
	PublicDirEnv = "PUBLIC_DIR"
)

const (
	defaultPort      = 3000
	defaultDataFile  = "data.json"
	defaultPublicDir = "public"
)

type Config struct {
	Logger *zap.Logger

	Port         int
	DataFilePath string
	PublicDir    string
}

func Load() (Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return Config{}, err
	}

	port, err := env.GetIntOrDefault(PortEnv, defaultPort)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Logger:       logger,
		Port:         port,
		DataFilePath: env.GetStringOrDefault(DataFileEnv, defaultDataFile),
		PublicDir:    env.GetStringOrDefault(PublicDirEnv, defaultPublicDir),
	}, nil
}
