package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodbank/internal/entities"
	retrierconfig "foodbank/pkg/retrier"
	"foodbank/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "sms-gateway"

	maxErrorBody = 1 << 10
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

var (
	ErrEmptyMessageID = errors.New("gateway returned empty message id")
	ErrNoCredits      = errors.New("gateway returned no credits")
)

type Config struct {
	BaseURL  string
	APIKey   string
	Sender   string
	TestMode bool
}

// StatusError - ответ шлюза с кодом 4xx/5xx.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sms gateway status %d: %s", e.Code, e.Message)
}

type SmsGateway struct {
	client  client
	retrier retrier
	config  Config
}

func New(client client, config Config) *SmsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &SmsGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		config:  config,
	}
}

func (g *SmsGateway) Send(ctx context.Context, to, text string) (*entities.SmsSendResult, error) {
	body, err := json.Marshal(sendRequest{
		To:   to,
		From: g.config.Sender,
		Text: text,
		Test: g.config.TestMode,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal send request: %w", err)
	}

	var resp sendResponse
	err = g.executeWithMetrics(ctx, "Send", func(ctx context.Context) error {
		return g.call(ctx, http.MethodPost, "/sms/send", body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway sms, send: %w", err)
	}
	if resp.MessageID == "" {
		return nil, fmt.Errorf("gateway sms, send: %w", ErrEmptyMessageID)
	}

	return toDomain(resp), nil
}

func (g *SmsGateway) CheckBalance(ctx context.Context) (float64, error) {
	var resp balanceResponse
	err := g.executeWithMetrics(ctx, "CheckBalance", func(ctx context.Context) error {
		return g.call(ctx, http.MethodGet, "/account/balance", nil, &resp)
	})
	if err != nil {
		return 0, fmt.Errorf("gateway sms, check balance: %w", err)
	}
	if resp.Credits == nil {
		return 0, fmt.Errorf("gateway sms, check balance: %w", ErrNoCredits)
	}

	return *resp.Credits, nil
}

func (g *SmsGateway) call(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.config.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{Code: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// latency metric -> attempts metric -> retrier -> gateway
func (g *SmsGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func getCode(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return "NETWORK"
	}
	return "UNKNOWN"
}
