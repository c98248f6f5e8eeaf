// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export writes the filtered booking report to an xlsx workbook.
package export
