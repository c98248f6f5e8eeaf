// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_AllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-a", "https://script.example.com/exec",
		"--request-timeout", "15s",
		"-d", "/tmp/a.db",
		"--refresh-interval", "30s",
		"--timezone", "Asia/Tokyo",
		"--export-dir", "/tmp/out",
		"--log-level", "warn",
		"--log-file", "/tmp/log",
		"-c", "conf.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://script.example.com/exec", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/a.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "Asia/Tokyo", cfg.App.Timezone)
	assert.Equal(t, "/tmp/out", cfg.Export.Dir)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/log", cfg.App.LogFile)
	assert.Equal(t, "conf.json", cfg.ConfigFilePath)
}

func TestBindFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestBindFlags_UnknownFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--nope"}))
}
