package config

import (
	"EchoVoice/pkg/logger"
	"EchoVoice/pkg/util"
	"log"
	"os"
)

type Config struct {
	Addr              string `env:"ADDR"`
	Mode              string `env:"MODE"`
	APIPassword       string `env:"API_PASSWORD"`
	DBDriver          string `env:"DB_DRIVER"`
	DSN               string `env:"DSN"`
	StorageDriver     string `env:"STORAGE_DRIVER"`
	SweepSchedule     string `env:"SWEEP_SCHEDULE"`
	SweepGraceMinutes int64  `env:"SWEEP_GRACE_MINUTES"`
	Log               logger.LogConfig
}

var GlobalConfig *Config

func Load() error {
	// 1. Load the .env file for the current environment
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	err := util.LoadEnv(env)
	if err != nil {
		log.Printf("Failed to load .env file: %v", err)
	}

	// 2. Populate the global configuration
	GlobalConfig = &Config{
		Addr:              util.GetEnv("ADDR"),
		Mode:              util.GetEnv("MODE"),
		APIPassword:       util.GetEnv("API_PASSWORD"),
		DBDriver:          util.GetEnv("DB_DRIVER"),
		DSN:               util.GetEnv("DSN"),
		StorageDriver:     util.GetEnv("STORAGE_DRIVER"),
		SweepSchedule:     util.GetEnv("SWEEP_SCHEDULE"),
		SweepGraceMinutes: util.GetIntEnv("SWEEP_GRACE_MINUTES"),
		Log: logger.LogConfig{
			Level:      util.GetEnv("LOG_LEVEL"),
			Filename:   util.GetEnv("LOG_FILENAME"),
			MaxSize:    int(util.GetIntEnv("LOG_MAX_SIZE")),
			MaxAge:     int(util.GetIntEnv("LOG_MAX_AGE")),
			MaxBackups: int(util.GetIntEnv("LOG_MAX_BACKUPS")),
		},
	}
	if GlobalConfig.Addr == "" {
		GlobalConfig.Addr = ":8000"
	}
	if GlobalConfig.SweepGraceMinutes <= 0 {
		GlobalConfig.SweepGraceMinutes = 60
	}
	return nil
}
