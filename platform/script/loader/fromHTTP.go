package loader

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"time"

	"github.com/robbyt/go-bfscript/internal/helpers"
	"github.com/robbyt/go-bfscript/platform/script/loader/httpauth"
)

// HTTPOptions configures the HTTP loader. Start from DefaultHTTPOptions and
// chain the With* methods.
type HTTPOptions struct {
	// Timeout bounds each request. Default 30 seconds.
	Timeout time.Duration

	// TLSConfig overrides the transport TLS settings when set.
	TLSConfig *tls.Config

	// InsecureSkipVerify disables certificate verification. Test use only.
	InsecureSkipVerify bool

	// Authenticator applies credentials. Default NoAuth.
	Authenticator httpauth.Authenticator

	// Headers are added to every request.
	Headers map[string]string
}

// DefaultHTTPOptions returns a 30s timeout, verified TLS and no authentication.
func DefaultHTTPOptions() *HTTPOptions {
	return &HTTPOptions{
		Timeout:       30 * time.Second,
		Authenticator: httpauth.NewNoAuth(),
		Headers:       make(map[string]string),
	}
}

func (o *HTTPOptions) WithTimeout(timeout time.Duration) *HTTPOptions {
	o.Timeout = timeout
	return o
}

func (o *HTTPOptions) WithBasicAuth(username, password string) *HTTPOptions {
	o.Authenticator = httpauth.NewBasicAuth(username, password)
	return o
}

func (o *HTTPOptions) WithBearerAuth(token string) *HTTPOptions {
	o.Authenticator = httpauth.NewBearerAuth(token)
	return o
}

func (o *HTTPOptions) WithHeaderAuth(headers map[string]string) *HTTPOptions {
	o.Authenticator = httpauth.NewHeaderAuth(headers)
	return o
}

func (o *HTTPOptions) WithInsecureTLS() *HTTPOptions {
	o.InsecureSkipVerify = true
	return o
}

func (o *HTTPOptions) WithTLSConfig(cfg *tls.Config) *HTTPOptions {
	o.TLSConfig = cfg
	return o
}

// FromHTTP loads a program from an http or https URL. The program is
// fetched again on every GetReader call.
type FromHTTP struct {
	url       string
	sourceURL *url.URL
	options   *HTTPOptions
	client    *http.Client
}

// NewFromHTTP creates an HTTP loader with DefaultHTTPOptions.
func NewFromHTTP(rawURL string) (*FromHTTP, error) {
	return NewFromHTTPWithOptions(rawURL, DefaultHTTPOptions())
}

// NewFromHTTPWithOptions creates an HTTP loader. A nil options uses the defaults.
func NewFromHTTPWithOptions(rawURL string, options *HTTPOptions) (*FromHTTP, error) {
	sourceURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse URL: %w", err)
	}
	if sourceURL.Scheme != "http" && sourceURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, rawURL)
	}

	if options == nil {
		options = DefaultHTTPOptions()
	}
	if options.Authenticator == nil {
		options.Authenticator = httpauth.NewNoAuth()
	}

	client := &http.Client{Timeout: options.Timeout}
	if options.InsecureSkipVerify || options.TLSConfig != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if options.TLSConfig != nil {
			transport.TLSClientConfig = options.TLSConfig
		} else {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		client.Transport = transport
	}

	return &FromHTTP{
		url:       rawURL,
		sourceURL: sourceURL,
		options:   options,
		client:    client,
	}, nil
}

// GetReader fetches the program with a background context.
func (l *FromHTTP) GetReader() (io.ReadCloser, error) {
	return l.GetReaderWithContext(context.Background())
}

// GetReaderWithContext fetches the program. The caller closes the returned body.
func (l *FromHTTP) GetReaderWithContext(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	headers := maps.Clone(l.options.Headers)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", "go-bfscript/http-loader")
	}

	if err := l.options.Authenticator.AuthenticateWithContext(ctx, req); err != nil {
		return nil, fmt.Errorf("authentication failed (%s): %w", l.options.Authenticator.Name(), err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d - %s", ErrScriptNotAvailable, resp.StatusCode, resp.Status)
	}

	return resp.Body, nil
}

func (l *FromHTTP) GetSourceURL() *url.URL {
	return l.sourceURL
}

func (l *FromHTTP) String() string {
	noChkSum := fmt.Sprintf("loader.FromHTTP{URL: %s}", l.url)

	reader, err := l.GetReader()
	if err != nil {
		return noChkSum
	}
	defer reader.Close()

	chksum, err := helpers.SHA256Reader(reader)
	if err != nil {
		return noChkSum
	}
	return fmt.Sprintf("loader.FromHTTP{URL: %s, SHA256: %s}", l.url, chksum[:8])
}
