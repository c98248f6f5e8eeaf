// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the booking client.
//
// Configuration is assembled from several layers. Later layers override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Config file (JSON or YAML, path from CONFIG or --config)
//  3. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  4. Command-line flags
//
// The main entry point is [GetClientConfig].
package config
