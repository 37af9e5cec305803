package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"weekscheduler/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	AllowedOrigins []string
	Rooms          []domain.Room
}

// roomsFile is the shape of the optional YAML file pointed at by ROOMS_FILE.
type roomsFile struct {
	Rooms []string `yaml:"rooms"`
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env may not exist; system environment variables are
	// authoritative there.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		Rooms:       domain.DefaultRooms(),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	// ROOMS_FILE replaces the built-in room enumeration with a deployment's
	// own list of bookable spaces.
	if path := os.Getenv("ROOMS_FILE"); path != "" {
		rooms, err := loadRooms(path)
		if err != nil {
			return nil, err
		}
		cfg.Rooms = rooms
	}

	return cfg, nil
}

func loadRooms(path string) ([]domain.Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rooms file: %w", err)
	}
	var parsed roomsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse rooms file %s: %w", path, err)
	}
	if len(parsed.Rooms) == 0 {
		return nil, fmt.Errorf("rooms file %s lists no rooms", path)
	}
	rooms := domain.NormalizeRooms(parsed.Rooms)
	return rooms, nil
}
