// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-av-booking/models"
)

type argumentError struct {
	msg string
}

func (e *argumentError) Error() string {
	return e.msg
}

func argErrorf(format string, args ...any) error {
	return &argumentError{msg: fmt.Sprintf(format, args...)}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, argErrorf("invalid id %q", raw)
	}
	return id, nil
}

// parseStatus accepts a status value or label in any case, with dashes or
// underscores for spaces ("in-use", "AWAITING_RETURN").
func parseStatus(raw string) (models.Status, error) {
	norm := strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(raw)))
	for _, s := range models.Statuses {
		if norm == strings.ToLower(string(s)) || norm == strings.ToLower(s.Label()) {
			return s, nil
		}
	}
	return "", argErrorf("unknown status %q", raw)
}

// readSecret reads one line from r without its line ending.
func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", argErrorf("password must be given on stdin")
	}
	return line, nil
}
