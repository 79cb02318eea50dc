// Package client drives a judge (local practice server or remote)
// through the HTTP surface described by SPEC_FULL.md §8, and hosts the
// live spectator feed that pushes solve progress over a websocket.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/callegarimattia/battleship/internal/dto"
	"golang.org/x/time/rate"
)

// StatusError reports a non-2xx response from the judge, preserving the
// HTTP status code so callers can distinguish "game over" (404) from a
// transient failure without parsing message text.
type StatusError struct {
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("judge: %s returned %d: %s", e.Path, e.Code, e.Message)
}

// JudgeClient fires shots at a judge, throttled by a rate.Limiter so a
// misconfigured solve loop can never outrun the judge's own rate limits.
type JudgeClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	limiter *rate.Limiter
}

// New builds a JudgeClient throttled to requestsPerSecond outbound
// requests, following the teacher's golang.org/x/time/rate dependency
// (there, an Echo rate-limit middleware; here, the client side of the
// same concern).
func New(baseURL, token string, requestsPerSecond float64) *JudgeClient {
	return &JudgeClient{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (c *JudgeClient) get(ctx context.Context, path string, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, bytes.NewReader(nil))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &StatusError{Path: path, Code: resp.StatusCode, Message: errResp.Error}
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

// Status reports the current board without firing (GET /fire).
func (c *JudgeClient) Status(ctx context.Context) (dto.FireResponse, error) {
	var resp dto.FireResponse
	err := c.get(ctx, "/fire", &resp)
	return resp, err
}

// Fire shoots at (row, column) (GET /fire/{row}/{column}).
func (c *JudgeClient) Fire(ctx context.Context, row, column int) (dto.FireResponse, error) {
	var resp dto.FireResponse
	err := c.get(ctx, fmt.Sprintf("/fire/%d/%d", row, column), &resp)
	return resp, err
}

// FireAvenger shoots at (row, column) spending avenger
// (GET /fire/{row}/{column}/avenger/{avenger}).
func (c *JudgeClient) FireAvenger(
	ctx context.Context,
	row, column int,
	avenger string,
) (dto.AvengerFireResponse, error) {
	var resp dto.AvengerFireResponse
	err := c.get(ctx, fmt.Sprintf("/fire/%d/%d/avenger/%s", row, column, avenger), &resp)
	return resp, err
}

// Reset deletes the ongoing board, optionally wiping all token data.
func (c *JudgeClient) Reset(ctx context.Context, wipe bool) error {
	path := "/reset"
	if wipe {
		path += "?wipe"
	}
	return c.get(ctx, path, nil)
}
