// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package booking holds the pure booking rules of the portal: the school
// calendar, the program/classroom catalog, double-booking detection, the
// classroom × period schedule projection, report filtering and the status
// transition policy.
//
// Nothing in this package performs I/O or mutates its inputs. The booking
// store in package service feeds it snapshots of its cache.
package booking
