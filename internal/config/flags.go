package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/artspace/internal/flagx"
)

var ownFlags = []string{"-a", "-g", "-s", "-d", "-k", "-m", "-b", "-e", "-p", "-l"}

// parseFlags overlays the flags listed in the package doc. Other arguments
// (for example -c) are filtered out before parsing.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("artspace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCHealthAddr, "g", cfg.GRPCHealthAddr, "gRPC health listen address")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite, pgx, memory)")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "storage DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "browser token secret")
	fs.StringVar(&cfg.MuseumBaseURL, "m", cfg.MuseumBaseURL, "museum API base URL")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for images")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.ProfileID, "p", cfg.ProfileID, "terminal browser profile id")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format (json, text)")

	return fs.Parse(flagx.FilterArgs(args, ownFlags))
}
