package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"emy-orders/internal/pkg/clock"
	"emy-orders/internal/pkg/config"
)

// The collaborator speaks one uniform contract for every action:
//
//	request:  {"action": string, "payload": object}
//	response: {"success": bool, "data": any, "message": string}
//
// success=false carries a human-readable message that is surfaced to
// the caller as-is. There are no retries; a failed call is retried only
// by an explicit user re-invocation.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

type scriptRequest struct {
	Action  string `json:"action"`
	Payload any    `json:"payload"`
}

// Caller issues raw actions against the persistence web app. The typed
// stores in this package are the only consumers.
type Caller interface {
	Call(ctx context.Context, action string, payload any) (json.RawMessage, string, error)
}

type Client struct {
	httpClient *http.Client
	scriptURL  string
	logger     *slog.Logger
	clock      clock.Clock
}

func NewClient(cfg config.GatewayConfig, logger *slog.Logger, clk clock.Clock) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		scriptURL:  cfg.ScriptURL,
		logger:     logger,
		clock:      clk,
	}
}

// Call posts one action and decodes the envelope. It returns the data
// blob and the collaborator's message on success; on failure the error
// carries the message text for display (see error.go).
func (c *Client) Call(ctx context.Context, action string, payload any) (json.RawMessage, string, error) {
	if payload == nil {
		payload = struct{}{}
	}
	body, err := json.Marshal(scriptRequest{Action: action, Payload: payload})
	if err != nil {
		return nil, "", wrapErr(KindBadResponse, "failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scriptURL, bytes.NewReader(body))
	if err != nil {
		return nil, "", wrapErr(KindUnavailable, "failed to build request", err)
	}
	// The script endpoint expects text/plain bodies.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gateway call failed", "action", action, "error", err)
		return nil, "", wrapErr(KindUnavailable, "persistence service unreachable", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", wrapErr(KindUnavailable, "failed to read response", err)
	}

	c.logger.Debug("gateway call completed",
		"action", action,
		"status", resp.StatusCode,
		"duration", c.clock.Now().Sub(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", wrapErr(KindUnavailable, "persistence service error ("+resp.Status+")", nil)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		c.logger.Error("gateway returned a non-JSON body", "action", action)
		return nil, "", wrapErr(KindBadResponse, "invalid response from persistence service", err)
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "unknown persistence error"
		}
		return nil, "", wrapErr(KindRejected, msg, nil)
	}

	return env.Data, env.Message, nil
}
