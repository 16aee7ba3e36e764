// Package upstream talks to the main homestay backend over HTTP.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/pkg/config"

	"github.com/shopspring/decimal"
)

const errorSnippetLimit = 512

// RejectionError is a 4xx answer. Detail is the server's message, verbatim when it sent one.
type RejectionError struct {
	Status int
	Detail string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Detail)
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
	Logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: cfg.Timeout},
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		Logger:  logger,
	}
}

// do sends body as JSON (when non-nil) and decodes a 2xx response into out.
// 404 maps to KindNotFound, other 4xx to KindUpstreamRejected wrapping a
// *RejectionError, and transport failures or 5xx to KindUpstreamFailure.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return infra.WrapRepoErr(c.Logger, infra.KindUpstreamFailure, method+" "+path+" failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorSnippetLimit))
		rejection := &RejectionError{Status: resp.StatusCode, Detail: detailFrom(snippet)}
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return infra.WrapRepoErr(c.Logger, infra.KindNotFound, method+" "+path+" not found", rejection)
		case resp.StatusCode < http.StatusInternalServerError:
			return infra.WrapRepoErr(c.Logger, infra.KindUpstreamRejected, method+" "+path+" rejected", rejection)
		default:
			return infra.WrapRepoErr(c.Logger, infra.KindUpstreamFailure, method+" "+path+" returned error", rejection)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapRepoErr(c.Logger, infra.KindUpstreamFailure, method+" "+path+" decode failed", err)
	}
	return nil
}

// detailFrom extracts {"detail": "..."} and falls back to the raw snippet.
func detailFrom(snippet []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(snippet, &body); err == nil && len(body.Detail) > 0 {
		var s string
		if json.Unmarshal(body.Detail, &s) == nil {
			return s
		}
		return string(body.Detail)
	}
	return strings.TrimSpace(string(snippet))
}

// Rejection returns the upstream 4xx rejection carried by err, if any.
func Rejection(err error) (*RejectionError, bool) {
	var r *RejectionError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// amount converts a decimal amount from a response. A value outside the money
// range is a broken response, not a price.
func (c *Client) amount(d decimal.Decimal, what string) (money.VND, error) {
	v, err := money.FromDecimal(d)
	if err != nil {
		return 0, infra.WrapRepoErr(c.Logger, infra.KindUpstreamFailure, what+" "+d.String()+" is out of range", err)
	}
	return v, nil
}
