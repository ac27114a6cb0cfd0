// Package sms sends rendered notification texts through an HTTP SMS gateway
// and normalizes stored phone numbers to E.164 at the dispatch boundary.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// Config holds the gateway endpoint settings.
type Config struct {
	URL    string
	APIKey string
	// SenderID is the alphanumeric sender shown on the recipient's phone.
	SenderID string
}

// Gateway is an HTTP client for the SMS provider's send endpoint.
type Gateway struct {
	cfg    Config
	client *http.Client
}

// NewGateway creates a gateway client with a bounded request timeout.
func NewGateway(cfg Config) (*Gateway, error) {
	if cfg.URL == "" {
		return nil, errs.NewValueIsRequiredError("sms gateway url")
	}

	return &Gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// Send delivers one text to an E.164 phone number.
// Callers normalize the number first; the gateway call itself does not retry,
// the worker treats failures as logged and skipped.
func (g *Gateway) Send(ctx context.Context, to, message string) error {
	body, err := json.Marshal(sendRequest{
		From:    g.cfg.SenderID,
		To:      to,
		Message: message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, payload)
	}
	return nil
}
