package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV" envDefault:"development"`
		Port        string `env:"PORT"    envDefault:"8000"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	}
	DB struct {
		Driver   string `env:"DB_DRIVER"   envDefault:"sqlite"`
		Path     string `env:"DB_PATH"     envDefault:"trades.db"`
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"tradegrader"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
	}
	Gemini struct {
		APIKey string `env:"GEMINI_API_KEY"`
		Model  string `env:"GEMINI_MODEL" envDefault:"gemini-pro"`
	}
	Players struct {
		CacheFile   string `env:"PLAYER_CACHE_FILE" envDefault:"data/player_cache.json"`
		RankingsURL string `env:"RANKINGS_URL" envDefault:"https://www.fantasypros.com/nfl/rankings/consensus-cheatsheets.php"`
	}
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

// Global appConfig instance, accessible after LoadConfig() is called via Initialize.
var appConfig *Config
var once sync.Once // Used for singleton pattern to load config only once

// LoadConfig loads configuration from environment variables into the Config struct.
// It's designed to be called once.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8000")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")

	// --- Database Configuration ---
	cfg.DB.Driver = getEnv("DB_DRIVER", "sqlite")
	cfg.DB.Path = getEnv("DB_PATH", "trades.db")
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "tradegrader")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// --- Gemini Configuration ---
	cfg.Gemini.APIKey = getEnv("GEMINI_API_KEY", "")
	cfg.Gemini.Model = getEnv("GEMINI_MODEL", "gemini-pro")

	// --- Player data Configuration ---
	cfg.Players.CacheFile = getEnv("PLAYER_CACHE_FILE", "data/player_cache.json")
	cfg.Players.RankingsURL = getEnv("RANKINGS_URL", "https://www.fantasypros.com/nfl/rankings/consensus-cheatsheets.php")

	if cfg.Gemini.APIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is not set. Trade analyses will use the local mock scorer.")
	}

	appConfig = cfg // Set the global instance
	return cfg, nil
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable. The default driver is an on-disk sqlite file
// (the trades.db the service historically used); set DB_DRIVER=postgres to run
// against Postgres instead.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent) // Less verbose in production
	}

	var dialector gorm.Dialector
	switch dbCfg.DB.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			dbCfg.DB.Host,
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Name,
			dbCfg.DB.Port,
			dbCfg.DB.SSLMode,
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dbCfg.DB.Path)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", dbCfg.DB.Driver)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB // Set the global DB instance
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of your application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	// Load configuration only once
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg // Ensure global appConfig is set

		_, err = ConnectDB(*appConfig) // Use the loaded configuration
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if the configuration has not been loaded yet,
// ensuring that configuration is always available when requested after Initialize().
func GetConfig() *Config {
	if appConfig == nil {
		// This should ideally not happen if Initialize() is called correctly in main.
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
