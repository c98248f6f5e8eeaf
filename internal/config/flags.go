// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// BindFlags registers the configuration flags on fs and returns the layer
// they are parsed into. The returned value is filled once fs is parsed
// (cobra parses persistent flags before running a command).
//
// Flags:
//
//	-a, --address          remote API endpoint URL
//	    --request-timeout  per-call deadline (e.g. "30s"), 0 disables it
//	-d, --db               local SQLite file
//	    --refresh-interval booking cache refresh interval for watch
//	    --timezone         school timezone (IANA name)
//	    --export-dir       directory exported reports are written to
//	    --log-level        minimum log level
//	    --log-file         log file path
//	-c, --config           JSON or YAML config file
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "Remote API endpoint URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Remote call timeout (e.g. 30s), 0 disables it")
	fs.StringVarP(&cfg.Storage.DB.DSN, "db", "d", "", "Local SQLite file")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Booking refresh interval (e.g. 1m)")
	fs.StringVar(&cfg.App.Timezone, "timezone", "", "School timezone (IANA name)")
	fs.StringVar(&cfg.Export.Dir, "export-dir", "", "Directory exported reports are written to")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "JSON or YAML config file path")

	return cfg
}
