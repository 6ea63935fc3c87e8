package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "meteo-gateway/openmeteo"

// StatusError is returned when Open-Meteo answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}

// getJSON performs a traced GET against u and decodes the body into out
func getJSON(ctx context.Context, httpClient *http.Client, logger *slog.Logger, spanName string, u *url.URL, out any) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", u.String()),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		logger.Error("failed to fetch", "url", u.String(), "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		span.SetStatus(codes.Error, resp.Status)
		logger.Error("Open-Meteo API returned error",
			"status_code", resp.StatusCode,
			"url", u.String(),
			"response_body", string(body),
		)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		logger.Error("failed to decode Open-Meteo response", "url", u.String(), "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
