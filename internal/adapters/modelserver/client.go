package modelserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"transit-delay-service/internal/domain"
)

// Client scores predictions against an out-of-process model server speaking
// the same /predict JSON contract as this service. Configured via
// MODEL_SERVER_URL; every failure is recoverable by the caller, which falls
// through to local scoring.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("model server base URL is empty")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

type predictRequest struct {
	RouteID       string `json:"route_id"`
	ScheduledTime string `json:"scheduled_time"`
	Weather       string `json:"weather"`
	DayType       string `json:"day_type"`
}

type predictResponse struct {
	Delay      float64 `json:"delay"`
	Status     string  `json:"status"`
	Confidence int     `json:"confidence"`
	Reasons    []struct {
		Factor string `json:"factor"`
		Impact string `json:"impact"`
	} `json:"reasons"`
	Error string `json:"error"`
}

// Predict posts the request to the remote /predict endpoint.
func (c *Client) Predict(ctx context.Context, req domain.PredictionRequest) (*domain.Prediction, error) {
	payload, err := json.Marshal(predictRequest{
		RouteID:       req.RouteID,
		ScheduledTime: req.ScheduledTime,
		Weather:       req.Weather,
		DayType:       req.DayType,
	})
	if err != nil {
		return nil, fmt.Errorf("remote predict: marshal request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("remote predict: %w", err)
	}
	defer resp.Body.Close()

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("remote predict: decode response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("remote predict: server error: %s", out.Error)
	}

	pred := &domain.Prediction{
		Delay:      out.Delay,
		Status:     domain.Status(out.Status),
		Confidence: out.Confidence,
		Reasons:    make([]domain.Reason, 0, len(out.Reasons)),
	}
	for _, r := range out.Reasons {
		pred.Reasons = append(pred.Reasons, domain.Reason{Factor: r.Factor, Impact: r.Impact})
	}

	return pred, nil
}

func (c *Client) newRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 5xx responses)
// using exponential backoff while respecting context cancellation.
func (c *Client) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 100 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
