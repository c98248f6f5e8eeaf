// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// validate checks the merged [StructuredConfig]. Only cross-source
// invariants live here; per-runtime checks are in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil || cfg.App.Timezone == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Export.Dir == "" {
		return ErrInvalidExportConfigs
	}

	return nil
}
