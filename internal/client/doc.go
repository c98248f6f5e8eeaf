// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the booking command-line client.
//
// It wires the session, booking and user services, the report exporter and
// the background refresh worker into a cobra command tree. Services are
// built lazily by a [Bootstrap] once flags are parsed, so every command
// sees the fully layered configuration.
package client
