package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/artspace/internal/flagx"
	"github.com/dmitrijs2005/artspace/internal/timex"
)

// fileConfig mirrors Config for unmarshalling. Pointer fields distinguish
// "absent" from zero values so a partial file only overrides what it names.
type fileConfig struct {
	HTTPAddr         *string         `json:"http_addr"`
	GRPCHealthAddr   *string         `json:"grpc_health_addr"`
	HealthInterval   *timex.Duration `json:"health_interval"`
	StorageDriver    *string         `json:"storage_driver"`
	StorageDSN       *string         `json:"storage_dsn"`
	SecretKey        *string         `json:"secret_key"`
	BrowserTokenTTL  *timex.Duration `json:"browser_token_ttl"`
	MuseumBaseURL    *string         `json:"museum_base_url"`
	MuseumSearchTerm *string         `json:"museum_search_term"`
	MuseumLimit      *int            `json:"museum_limit"`
	MuseumTimeout    *timex.Duration `json:"museum_timeout"`
	LikeSeed         *int64          `json:"like_seed"`
	S3Bucket         *string         `json:"s3_bucket"`
	S3Region         *string         `json:"s3_region"`
	S3BaseEndpoint   *string         `json:"s3_base_endpoint"`
	S3AccessKey      *string         `json:"s3_access_key"`
	S3SecretKey      *string         `json:"s3_secret_key"`
	PresignTTL       *timex.Duration `json:"presign_ttl"`
	ProfileID        *string         `json:"profile_id"`
	LogFormat        *string         `json:"log_format"`
}

// parseJSON overlays values from the file named by -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return err
	}
	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setString(&cfg.HTTPAddr, fc.HTTPAddr)
	setString(&cfg.GRPCHealthAddr, fc.GRPCHealthAddr)
	setDuration(&cfg.HealthInterval, fc.HealthInterval)
	setString(&cfg.StorageDriver, fc.StorageDriver)
	setString(&cfg.StorageDSN, fc.StorageDSN)
	setString(&cfg.SecretKey, fc.SecretKey)
	setDuration(&cfg.BrowserTokenTTL, fc.BrowserTokenTTL)
	setString(&cfg.MuseumBaseURL, fc.MuseumBaseURL)
	setString(&cfg.MuseumSearchTerm, fc.MuseumSearchTerm)
	if fc.MuseumLimit != nil {
		cfg.MuseumLimit = *fc.MuseumLimit
	}
	setDuration(&cfg.MuseumTimeout, fc.MuseumTimeout)
	if fc.LikeSeed != nil {
		cfg.LikeSeed = *fc.LikeSeed
	}
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, fc.S3AccessKey)
	setString(&cfg.S3SecretKey, fc.S3SecretKey)
	setDuration(&cfg.PresignTTL, fc.PresignTTL)
	setString(&cfg.ProfileID, fc.ProfileID)
	setString(&cfg.LogFormat, fc.LogFormat)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
