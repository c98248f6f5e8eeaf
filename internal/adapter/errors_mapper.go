// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx answer into a *TransportError. The body of
// such answers is ignored; the endpoint serves an HTML error page there.
func mapHTTPError(action string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := http.StatusText(resp.StatusCode())
	if raw := strings.TrimSpace(resp.Status()); raw != "" {
		// resty reports "404 Not Found"; keep the reason phrase only
		if _, reason, ok := strings.Cut(raw, " "); ok {
			status = reason
		}
	}

	return &TransportError{
		Action:     action,
		StatusCode: resp.StatusCode(),
		Status:     status,
	}
}
