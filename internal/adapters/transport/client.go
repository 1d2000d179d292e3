// Package transport implements the Transport port on top of resty.
package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
	"golang.org/x/time/rate"
)

const tracerName = "go.trai.ch/scaledash/transport"

// pathKey carries the caller's relative path through resty hooks, which only
// see the resolved URL.
type pathKey struct{}

// Client implements ports.Transport. It is safe for concurrent use.
type Client struct {
	rest     *resty.Client
	tracer   trace.Tracer
	notifier ports.Notifier
	logger   ports.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	limiter        *rate.Limiter
	httpTransport  http.RoundTripper
	tracerProvider trace.TracerProvider
}

// WithRateLimit caps outbound requests to limit per second with the given burst.
// Requests wait for a token; a limit of zero or less disables the limiter.
func WithRateLimit(limit float64, burst int) Option {
	return func(o *options) {
		if limit <= 0 {
			o.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	}
}

// WithHTTPTransport replaces the underlying round tripper.
func WithHTTPTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.httpTransport = rt }
}

// WithTracerProvider sets the provider used for request spans.
// The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// New creates a Client for the API described by cfg. Failures are reported to
// notifier and logger by the error hook before they are returned.
func New(cfg domain.APIConfig, notifier ports.Notifier, logger ports.Logger, opts ...Option) *Client {
	o := options{tracerProvider: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(&o)
	}

	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = domain.APIConfig{TimeoutMs: domain.DefaultTimeoutMs}.Timeout()
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}

	c := &Client{
		tracer:   o.tracerProvider.Tracer(tracerName),
		notifier: notifier,
		logger:   logger,
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	if o.httpTransport != nil {
		rest.SetTransport(o.httpTransport)
	}
	if o.limiter != nil {
		limiter := o.limiter
		rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			return limiter.Wait(r.Context())
		})
	}
	rest.OnAfterResponse(rejectUnsuccessful)
	rest.OnError(c.onError)

	c.rest = rest
	return c
}

// Do performs req and returns the raw response body.
func (c *Client) Do(ctx context.Context, req domain.Request) (*domain.Response, error) {
	ctx, span := c.tracer.Start(ctx, req.Method+" "+req.Path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.path", req.Path),
	)

	r := c.rest.R().SetContext(context.WithValue(ctx, pathKey{}, req.Path))
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if resp != nil && resp.StatusCode() != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))
	}
	if err != nil {
		terr := asTransportError(r, err)
		span.RecordError(terr)
		span.SetStatus(codes.Error, terr.Error())
		return nil, terr
	}

	return &domain.Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

// rejectUnsuccessful turns every non-2xx response into a TransportError so it
// reaches the error hook like a network failure.
func rejectUnsuccessful(_ *resty.Client, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &domain.TransportError{
		Method:     resp.Request.Method,
		Path:       requestPath(resp.Request),
		StatusCode: resp.StatusCode(),
	}
}

// asTransportError normalizes any error resty returned for r.
func asTransportError(r *resty.Request, err error) *domain.TransportError {
	var respErr *resty.ResponseError
	if errors.As(err, &respErr) {
		err = respErr.Err
	}

	var terr *domain.TransportError
	if errors.As(err, &terr) {
		return terr
	}
	return &domain.TransportError{
		Method: r.Method,
		Path:   requestPath(r),
		Err:    err,
	}
}

func requestPath(r *resty.Request) string {
	if path, ok := r.Context().Value(pathKey{}).(string); ok {
		return path
	}
	return r.URL
}
