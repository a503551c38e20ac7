package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for ArtSpace.
type Config struct {
	HTTPAddr       string
	GRPCHealthAddr string
	HealthInterval time.Duration

	StorageDriver string
	StorageDSN    string

	// SecretKey signs the browser profile cookie (HS256).
	SecretKey       string
	BrowserTokenTTL time.Duration

	MuseumBaseURL    string
	MuseumSearchTerm string
	MuseumLimit      int
	MuseumTimeout    time.Duration
	// LikeSeed seeds synthetic like counts; 0 picks a time based seed.
	LikeSeed int64

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	PresignTTL     time.Duration

	ProfileID string
	LogFormat string
}

// LoadDefaults populates c with development defaults.
// NOTE: SecretKey must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.GRPCHealthAddr = ""
	c.HealthInterval = 10 * time.Second
	c.StorageDriver = "sqlite"
	c.StorageDSN = "file:data/artspace.db?_pragma=busy_timeout(5000)"
	c.SecretKey = "dev-secret-change-me"
	c.BrowserTokenTTL = 365 * 24 * time.Hour
	c.MuseumBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"
	c.MuseumSearchTerm = "painting"
	c.MuseumLimit = 12
	c.MuseumTimeout = 15 * time.Second
	c.LikeSeed = 0
	c.S3Region = "us-east-1"
	c.PresignTTL = 15 * time.Minute
	c.ProfileID = "local"
	c.LogFormat = "json"
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// then flags found in args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
