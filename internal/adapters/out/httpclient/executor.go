// Package httpclient runs JSON requests against external services and folds
// the outcome into a result.Result.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"orders/internal/core/application/result"
	"orders/internal/telemetry"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Executor is shared by the clients of one external service.
type Executor struct {
	name    string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewExecutor builds an executor whose requests time out after timeout.
func NewExecutor(name, baseURL string, timeout time.Duration, logger *zap.Logger) *Executor {
	return &Executor{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger.With(zap.String("service", name)),
	}
}

// Request describes one call. Body is encoded as JSON when not nil.
type Request struct {
	Method string
	Path   string
	Body   any
}

// Execute sends req and decodes a 2xx body into T. A non-2xx answer is a
// logical failure carrying the response text; transport and decoding
// problems are internal failures.
func Execute[T any](ctx context.Context, e *Executor, req Request) result.Result[T] {
	ctx, span := telemetry.StartSpan(ctx, e.name+" "+req.Method+" "+req.Path)
	defer span.End()

	httpReq, err := e.newRequest(ctx, req)
	if err != nil {
		telemetry.RecordSpanError(span, err)
		return result.InternalFailure[T](err)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		err = fmt.Errorf("%s %s %s: %w", e.name, req.Method, req.Path, err)
		telemetry.RecordSpanError(span, err)
		e.logger.Error("request failed", zap.String("path", req.Path), zap.Error(err))
		return result.InternalFailure[T](err)
	}
	defer resp.Body.Close()

	telemetry.AddSpanAttributes(span, attribute.Int("http.response.status_code", resp.StatusCode))

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		err = fmt.Errorf("%s read response: %w", e.name, err)
		telemetry.RecordSpanError(span, err)
		return result.InternalFailure[T](err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(string(payload))
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		e.logger.Warn("request rejected",
			zap.String("path", req.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return result.LogicalFailure[T](message)
	}

	var data T
	if err := json.Unmarshal(payload, &data); err != nil {
		err = fmt.Errorf("%s decode response: %w", e.name, err)
		telemetry.RecordSpanError(span, err)
		e.logger.Error("invalid response", zap.String("path", req.Path), zap.Error(err))
		return result.InternalFailure[T](err)
	}

	telemetry.SetSpanSuccess(span)
	return result.Success(data)
}

func (e *Executor) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%s encode request: %w", e.name, err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, e.baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("%s build request: %w", e.name, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}
