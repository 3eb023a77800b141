package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Search SearchConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SearchConfig struct {
	DefaultRadiusKm float64
	DefaultLimit    int
	MaxLimit        int
	CacheTTL        time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	defaultRadius := viper.GetFloat64("SEARCH_DEFAULT_RADIUS_KM")
	if defaultRadius <= 0 {
		defaultRadius = 10
	}

	defaultLimit := viper.GetInt("SEARCH_DEFAULT_LIMIT")
	if defaultLimit < 1 {
		defaultLimit = 10
	}

	maxLimit := viper.GetInt("SEARCH_MAX_LIMIT")
	if maxLimit < 1 {
		maxLimit = 100
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("SEARCH_CACHE_TTL"))
	if err != nil {
		cacheTTL = time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Search: SearchConfig{
			DefaultRadiusKm: defaultRadius,
			DefaultLimit:    defaultLimit,
			MaxLimit:        maxLimit,
			CacheTTL:        cacheTTL,
		},
	}

	return config, nil
}
