package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_USER_SECRET"`

	EmbeddingAPIURL string `env:"EMBEDDING_API_URL"`
	EmbeddingAPIKey string `env:"EMBEDDING_API_KEY"`
	EmbeddingModel  string `env:"EMBEDDING_MODEL"`

	MailerAPIURL string `env:"MAILER_API_URL"`
	MailerAPIKey string `env:"MAILER_API_KEY"`
	MailerFrom   string `env:"MAILER_FROM"`
}

func LoadConfig() (*Config, error) {
	// .env необязателен, в продакшене конфигурация приходит из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT user secret is not set")
	}
	// Без ключа провайдера семантический поиск не работает вовсе,
	// поэтому падаем на старте, а не на первом запросе.
	if conf.EmbeddingAPIKey == "" {
		return nil, errors.New("embedding API key is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagConfig.EmbeddingAPIURL, "e", "https://api.openai.com", "Embedding provider base URL")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:   defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		EmbeddingAPIURL: defaultIfBlank(envConfig.EmbeddingAPIURL, flagsConfig.EmbeddingAPIURL),
		EmbeddingAPIKey: envConfig.EmbeddingAPIKey,
		EmbeddingModel:  envConfig.EmbeddingModel,
		MailerAPIURL:    envConfig.MailerAPIURL,
		MailerAPIKey:    envConfig.MailerAPIKey,
		MailerFrom:      defaultIfBlank(envConfig.MailerFrom, "MentorLink <no-reply@mentorlink.io>"),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
