package http_fetch_driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"newsdeck/config"
	"syscall"
	"time"
)

const maxRedirects = 5

// Response is a fully read upstream response.
type Response struct {
	StatusCode  int
	Status      string
	ContentType string
	Body        []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// URLGuard vets every hop of a guarded client: redirect targets before they
// are followed and the resolved address before a connection is opened.
type URLGuard interface {
	ValidateURL(ctx context.Context, u *url.URL) error
	ValidateConnectionAddress(network, address string) error
}

// HTTPFetchDriver performs outbound GETs shared by every gateway. It paces
// requests per host and caps body size.
type HTTPFetchDriver struct {
	httpClient   *http.Client
	pacer        *hostPacer
	maxBodyBytes int64
}

// NewHTTPClient builds the outbound client for configured sources.
func NewHTTPClient(cfg config.HTTPConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: 30 * time.Second,
	}
	transport := newTransport(cfg, dialer)
	transport.Proxy = http.ProxyFromEnvironment

	return &http.Client{
		Timeout:   cfg.ClientTimeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", len(via))
			}
			return nil
		},
	}
}

// NewGuardedHTTPClient builds the client for user-supplied URLs. Each redirect
// target is validated again, and the dialer checks the address it actually
// connects to, which also catches DNS answers that change after validation.
// It never goes through an environment proxy.
func NewGuardedHTTPClient(cfg config.HTTPConfig, guard URLGuard) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: 30 * time.Second,
		Control: func(network, address string, _ syscall.RawConn) error {
			return guard.ValidateConnectionAddress(network, address)
		},
	}

	return &http.Client{
		Timeout:   cfg.ClientTimeout,
		Transport: newTransport(cfg, dialer),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", len(via))
			}
			if err := guard.ValidateURL(req.Context(), req.URL); err != nil {
				return fmt.Errorf("redirect to %s blocked: %w", req.URL.Redacted(), err)
			}
			return nil
		},
	}
}

func newTransport(cfg config.HTTPConfig, dialer *net.Dialer) *http.Transport {
	return &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		ResponseHeaderTimeout: cfg.ClientTimeout,
		ForceAttemptHTTP2:     true,
	}
}

// NewHTTPFetchDriver returns a driver over httpClient. hostInterval is the
// minimum spacing between requests to one host; zero disables pacing.
func NewHTTPFetchDriver(httpClient *http.Client, hostInterval time.Duration, maxBodyBytes int64) *HTTPFetchDriver {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPFetchDriver{
		httpClient:   httpClient,
		pacer:        newHostPacer(hostInterval),
		maxBodyBytes: maxBodyBytes,
	}
}

// WithClient returns a driver that sends through httpClient but shares this
// driver's host pacing and body cap.
func (d *HTTPFetchDriver) WithClient(httpClient *http.Client) *HTTPFetchDriver {
	return &HTTPFetchDriver{
		httpClient:   httpClient,
		pacer:        d.pacer,
		maxBodyBytes: d.maxBodyBytes,
	}
}

// Get issues a GET for target with the given headers. Non-2xx responses are
// returned, not treated as errors; callers decide.
func (d *HTTPFetchDriver) Get(ctx context.Context, target string, headers map[string]string) (*Response, error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	if parsed.Host == "" {
		return nil, &url.Error{Op: "parse", URL: target, Err: errors.New("missing host in URL")}
	}

	if err := d.pacer.wait(ctx, parsed.Host); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := d.readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (d *HTTPFetchDriver) readBody(r io.Reader) ([]byte, error) {
	if d.maxBodyBytes <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, d.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(body)) > d.maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", d.maxBodyBytes)
	}
	return body, nil
}
