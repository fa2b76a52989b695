package invoicegen

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/alapierre/go-invoicegen-client/invoicegen/util"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/exp/maps"
)

const (
	apiKeyHeader    = "x-api-key"
	requestIDHeader = "X-Request-ID"
	userAgent       = "go-invoicegen-client"
)

// Client sends QueryOptions to the invoice generator.
// It is safe for concurrent use.
type Client struct {
	rest      *resty.Client
	baseURL   string
	apiKey    string
	breaker   *gobreaker.CircuitBreaker
	preflight bool
	trace     bool
}

type clientOptions struct {
	httpClient   *http.Client
	timeout      time.Duration
	retryCount   int
	retryWait    time.Duration
	retryMaxWait time.Duration
	breaker      *gobreaker.CircuitBreaker
	preflight    bool
	userAgent    string
}

// Option configures a Client built by NewClient.
type Option func(*clientOptions)

// WithHTTPClient makes resty use hc. The client timeout is still set from
// Config.Timeout or WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTimeout overrides Config.Timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithRetry overrides Config.RetryCount and the wait bounds between attempts.
func WithRetry(count int, wait, maxWait time.Duration) Option {
	return func(o *clientOptions) {
		o.retryCount = count
		o.retryWait = wait
		o.retryMaxWait = maxWait
	}
}

// WithCircuitBreaker routes every call through cb.
func WithCircuitBreaker(cb *gobreaker.CircuitBreaker) Option {
	return func(o *clientOptions) { o.breaker = cb }
}

// WithPreflightValidation makes Generate run QueryOptions.Validate and fail
// without a network call when it reports problems.
func WithPreflightValidation() Option {
	return func(o *clientOptions) { o.preflight = true }
}

// WithUserAgent replaces the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// NewCircuitBreaker returns a breaker that opens after at least 5 calls in
// a 30s window with 60% of them failing, and probes again after 10s.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})
}

// NewClient returns a Client for cfg. An empty BaseURL means DefaultBaseURL.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid base URL")
	}

	o := clientOptions{
		timeout:      cfg.Timeout,
		retryCount:   cfg.RetryCount,
		retryWait:    500 * time.Millisecond,
		retryMaxWait: 5 * time.Second,
		userAgent:    userAgent,
	}
	if o.timeout <= 0 {
		o.timeout = DefaultTimeout
	}
	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetTimeout(o.timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", o.userAgent).
		SetRetryCount(o.retryCount).
		SetRetryWaitTime(o.retryWait).
		SetRetryMaxWaitTime(o.retryMaxWait).
		AddRetryCondition(shouldRetry)

	trace := util.HttpTraceEnabled()
	if trace {
		rc.EnableTrace()
	}

	return &Client{
		rest:      rc,
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		breaker:   o.breaker,
		preflight: o.preflight,
		trace:     trace,
	}, nil
}

// Generate asks the service to generate the invoice described by q.
//
// q is only read. A nil q is sent as an empty parameter set.
func (c *Client) Generate(ctx context.Context, q *QueryOptions) (*Response, error) {
	if q == nil {
		q = NewQueryOptions()
	}
	if c.preflight {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}

	body, err := q.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "encode QueryOptions")
	}

	return c.post(ctx, body)
}

// GenerateRaw sends params as given, for keys QueryOptions does not know.
func (c *Client) GenerateRaw(ctx context.Context, params map[string]string) (*Response, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	keys := maps.Keys(params)
	slices.Sort(keys)
	for _, k := range keys {
		e.FieldStart(k)
		e.Str(params[k])
	}
	e.ObjEnd()

	body := make([]byte, len(e.Bytes()))
	copy(body, e.Bytes())

	return c.post(ctx, body)
}

// Download fetches the generated document behind r's download URL.
func (c *Client) Download(ctx context.Context, r *Response) ([]byte, error) {
	if r == nil || r.Data.DownloadURL == "" {
		return nil, ErrNoDownloadURL
	}

	res, err := c.call(func() (*resty.Response, error) {
		return c.rest.R().
			SetContext(ctx).
			SetHeader("Accept", "application/pdf, application/octet-stream").
			Get(r.Data.DownloadURL)
	})
	if err != nil {
		return nil, errors.Wrap(err, "download invoice")
	}
	if res.IsError() {
		return nil, newAPIError(res.StatusCode(), res.Body(), "")
	}

	logger.WithFields(logrus.Fields{
		"pdf":  r.Data.PdfName,
		"size": len(res.Body()),
	}).Debug("invoice downloaded")

	return res.Body(), nil
}

func (c *Client) post(ctx context.Context, body []byte) (*Response, error) {
	key, ok := APIKeyFromContext(ctx)
	if !ok {
		key = c.apiKey
	}
	if key == "" {
		return nil, ErrNoAPIKey
	}

	requestID := uuid.NewString()
	log := logger.WithField("request_id", requestID)

	res, err := c.call(func() (*resty.Response, error) {
		return c.rest.R().
			SetContext(ctx).
			SetHeader(apiKeyHeader, key).
			SetHeader(requestIDHeader, requestID).
			SetBody(body).
			Post(c.baseURL)
	})
	if err != nil {
		return nil, errors.Wrap(err, "invoice generator request")
	}

	if res.IsError() {
		apiErr := newAPIError(res.StatusCode(), res.Body(), requestID)
		log.WithError(apiErr).Debug("invoice generator rejected request")
		return nil, apiErr
	}

	var out Response
	if err := out.UnmarshalJSON(res.Body()); err != nil {
		return nil, errors.Wrap(err, "decode invoice generator response")
	}
	if out.Failed() {
		msg := out.Error
		if msg == "" {
			msg = "service reported status " + out.Status
		}
		return nil, &APIError{
			Status:    res.StatusCode(),
			Message:   msg,
			Body:      res.String(),
			RequestID: requestID,
		}
	}

	log.WithField("pdf", out.Data.PdfName).Debug("invoice generated")
	return &out, nil
}

// call runs fn through the circuit breaker when one is configured.
// 4xx responses other than 429 do not count as breaker failures.
func (c *Client) call(fn func() (*resty.Response, error)) (*resty.Response, error) {
	do := func() (*resty.Response, error) {
		res, err := fn()
		c.traceInfo(res, err)
		return res, err
	}

	if c.breaker == nil {
		return do()
	}

	var res *resty.Response
	_, err := c.breaker.Execute(func() (interface{}, error) {
		var err error
		res, err = do()
		if err != nil {
			return nil, err
		}
		if s := res.StatusCode(); s == http.StatusTooManyRequests || s >= http.StatusInternalServerError {
			return nil, errors.Errorf("status %d", s)
		}
		return nil, nil
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, errors.Wrap(ErrCircuitOpen, err.Error())
	case err != nil && res != nil && res.RawResponse != nil:
		// the service answered, let the caller turn the status into APIError
		return res, nil
	case err != nil:
		return nil, err
	}
	return res, nil
}

func shouldRetry(r *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	if r == nil {
		return false
	}
	s := r.StatusCode()
	return s == http.StatusTooManyRequests || s >= http.StatusInternalServerError
}

func (c *Client) traceInfo(res *resty.Response, err error) {
	if !c.trace || res == nil || res.Request == nil {
		return
	}

	ti := res.Request.TraceInfo()
	logger.WithFields(logrus.Fields{
		"url":             res.Request.URL,
		"error":           err,
		"status":          res.StatusCode(),
		"time":            res.Time(),
		"dns_lookup":      ti.DNSLookup,
		"conn_time":       ti.ConnTime,
		"tls_handshake":   ti.TLSHandshake,
		"server_time":     ti.ServerTime,
		"total_time":      ti.TotalTime,
		"conn_reused":     ti.IsConnReused,
		"request_attempt": ti.RequestAttempt,
	}).Debug("invoice generator http trace")
}
