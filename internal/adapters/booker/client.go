// internal/adapters/booker/client.go
package booker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"

	"restful_booker/internal/adapters/observability"
	"restful_booker/internal/domain"
)

// TokenCookie is the session cookie carrying the auth token.
const TokenCookie = "token"

// Client issues requests against one booking platform instance. Wrappers
// return the raw response; interpreting the status is left to the caller.
type Client struct {
	base      *url.URL
	hc        *http.Client
	timeout   *time.Duration
	creds     domain.Credentials
	log       zerolog.Logger
	logBodies bool

	Auth     *AuthAPI
	Branding *BrandingAPI
	Report   *ReportAPI
	Message  *MessageAPI
	Room     *RoomAPI
	Booking  *BookingAPI
}

type Option func(*Client)

// WithHTTPClient replaces the transport client, e.g. httptest's.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.hc = hc } }

// WithTimeout sets a per-request timeout; 0 waits forever. It applies to a
// copy of the transport client, never to one passed in by the caller.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = &d } }

func WithLogger(l zerolog.Logger) Option { return func(c *Client) { c.log = l } }

func WithCredentials(username, password string) Option {
	return func(c *Client) { c.creds = domain.Credentials{Username: username, Password: password} }
}

// WithBodyLogging logs request and response bodies at debug level.
func WithBodyLogging(on bool) Option { return func(c *Client) { c.logBodies = on } }

func New(base string, opts ...Option) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(strings.TrimSuffix(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", base)
	}
	c := &Client{
		base:  u,
		hc:    &http.Client{},
		creds: domain.Credentials{Username: "admin", Password: "password"},
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.timeout != nil {
		hc := *c.hc
		hc.Timeout = *c.timeout
		c.hc = &hc
	}
	c.Auth = &AuthAPI{c: c}
	c.Branding = &BrandingAPI{c: c}
	c.Report = &ReportAPI{c: c}
	c.Message = &MessageAPI{c: c}
	c.Room = &RoomAPI{c: c}
	c.Booking = &BookingAPI{c: c}
	return c, nil
}

// BaseURL returns the platform root without trailing slash.
func (c *Client) BaseURL() string { return c.base.String() }

// Response is a fully read HTTP response.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode %s %s body: %w", r.Method, r.URL, err)
	}
	return nil
}

// Err classifies the status; nil for 2xx.
func (r *Response) Err() error { return domain.StatusError(r.StatusCode) }

// String is meant for assertion messages: status plus the full body.
func (r *Response) String() string {
	return fmt.Sprintf("%s %s -> %d\nresponse is %s\n", r.Method, r.URL, r.StatusCode, strings.TrimSpace(string(r.Body)))
}

// ---- Internals ----

type request struct {
	method   string
	resource string
	segments []string
	query    any // struct with `url` tags, encoded by go-querystring
	body     any
	token    *string
}

func withToken(t string) *string { return &t }

// endpoint builds <base>/<resource>/<seg>/.../ with a trailing slash.
func (c *Client) endpoint(resource string, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.base.String())
	b.WriteString("/")
	b.WriteString(url.PathEscape(resource))
	b.WriteString("/")
	for _, s := range segments {
		b.WriteString(url.PathEscape(s))
		b.WriteString("/")
	}
	return b.String()
}

func (c *Client) do(ctx context.Context, r request) (*Response, error) {
	target := c.endpoint(r.resource, r.segments...)
	if r.query != nil {
		v, err := query.Values(r.query)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		if enc := v.Encode(); enc != "" {
			target += "?" + enc
		}
	}

	var body io.Reader
	var raw []byte
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s body: %w", r.resource, err)
		}
		raw = b
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "restful-booker-check/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != nil {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: *r.token})
	}

	ev := c.log.Debug().Str("method", r.method).Str("url", target)
	if c.logBodies && raw != nil {
		ev = ev.RawJSON("request", raw)
	}
	ev.Msg("booker request")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(r.resource, r.method, 0, time.Since(start))
		cause := unwrapURLError(err)
		c.log.Warn().Err(cause).Str("err_type", observability.LabelErr(cause)).
			Str("method", r.method).Str("url", target).Msg("booker request failed")
		return nil, &domain.TransportError{Method: r.method, URL: target, Err: cause}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	dur := time.Since(start)
	observability.ObserveExternal(r.resource, r.method, resp.StatusCode, dur)
	if err != nil {
		return nil, &domain.TransportError{Method: r.method, URL: target, Err: fmt.Errorf("read body: %w", err)}
	}

	ev = c.log.Debug().Str("method", r.method).Str("url", target).Int("status", resp.StatusCode).Dur("duration", dur)
	if c.logBodies && len(respBody) > 0 {
		ev = ev.Bytes("response", respBody)
	}
	ev.Msg("booker response")

	return &Response{
		Method:     r.method,
		URL:        target,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// unwrapURLError drops the *url.Error layer; TransportError already carries method and URL.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

// decodeID pulls an id field out of a JSON response body.
func decodeID(resp *Response, field string) (int, error) {
	var m map[string]any
	if err := resp.JSON(&m); err != nil {
		return 0, err
	}
	v, ok := m[field].(float64)
	if !ok {
		return 0, fmt.Errorf("%s missing from %s response", field, resp.URL)
	}
	return int(v), nil
}
