package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel  zerolog.Level
	LogPretty bool
	ShowBoard bool
}

var AppConfig *Config

func LoadConfig() *Config {
	logLevelStr := GetEnv("LOG_LEVEL", "info")
	logLevel, err := zerolog.ParseLevel(logLevelStr)
	if err != nil || logLevel == zerolog.NoLevel {
		log.Warn().Str("key", "LOG_LEVEL").Str("value", logLevelStr).Msg("invalid log level, using info")
		logLevel = zerolog.InfoLevel
	}

	AppConfig = &Config{
		LogLevel:  logLevel,
		LogPretty: GetEnvAsBool("LOG_PRETTY", true),
		ShowBoard: GetEnvAsBool("SHOW_BOARD", true),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid boolean value, using default")
		return defaultValue
	}
	return value
}
