// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/config"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/utils"
	"github.com/MKhiriev/go-av-booking/models"
)

// RequestIDHeader carries the correlation id of a remote call.
const RequestIDHeader = "X-Request-ID"

type httpGateway struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPGateway constructs the HTTP implementation of [Gateway].
// adapterCfg.HTTPAddress is normalised (a missing scheme becomes https);
// adapterCfg.RequestTimeout of zero leaves calls bounded only by their
// context.
func NewHTTPGateway(adapterCfg config.ClientAdapter, logger *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpGateway{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Call implements [Gateway].
func (g *httpGateway) Call(ctx context.Context, action string, payload, result any) error {
	requestID := g.ids.Generate()
	ctx = utils.WithRequestID(ctx, requestID)
	log := g.logger.With().Str("action", action).Str("request_id", requestID).Logger()

	body, err := json.Marshal(models.Request{Action: action, Payload: payload})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", action, err)
	}

	started := time.Now()
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain;charset=utf-8").
		SetHeader(RequestIDHeader, requestID).
		SetBody(body).
		Post("")
	if err != nil {
		log.Warn().Err(err).Msg("remote call failed")
		return &TransportError{Action: action, Err: err}
	}
	if err = mapHTTPError(action, resp); err != nil {
		log.Warn().Int("status_code", resp.StatusCode()).Msg("remote call rejected")
		return err
	}

	var envelope models.Response
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		log.Warn().Err(err).Msg("undecodable response envelope")
		return &TransportError{Action: action, Err: fmt.Errorf("decode response envelope: %w", err)}
	}
	if !envelope.OK() {
		log.Warn().Str("status", envelope.Status).Str("message", envelope.Message).Msg("remote operation failed")
		return &RemoteError{Action: action, Message: envelope.Message}
	}

	log.Debug().Dur("elapsed", time.Since(started)).Msg("remote call completed")

	data := bytes.TrimSpace(envelope.Data)
	if result == nil || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err = json.Unmarshal(data, result); err != nil {
		return &TransportError{Action: action, Err: fmt.Errorf("decode %s data: %w", action, err)}
	}

	return nil
}
