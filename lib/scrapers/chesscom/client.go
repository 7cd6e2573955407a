// Package chesscom is a client for the chess.com published-data api.
//
// The api is read-only and unauthenticated. Every endpoint used here
// returns a complete json document, there is no pagination below the
// archive index.
package chesscom

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/elibenporat/hikaru/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/chesscom")

const (
	// DefaultBaseUrl is the public published-data api.
	DefaultBaseUrl = "https://api.chess.com/pub"
	// DefaultUserAgent identifies this library to the api operators,
	// who ask serious clients to be reachable through their user agent.
	DefaultUserAgent = "hikaru/1.0 (+https://github.com/elibenporat/hikaru)"
)

type Client struct {
	http    *resty.Client
	baseUrl string
}

type ClientOptions struct {
	// BaseUrl replaces DefaultBaseUrl, mainly for tests.
	BaseUrl string
	// UserAgent replaces DefaultUserAgent.
	UserAgent string
	// Timeout bounds a single request, 30 seconds when zero.
	Timeout time.Duration
	// BypassCloudflare swaps in a browser-like transport for
	// environments where the cdn challenges plain http clients.
	BypassCloudflare bool
}

func NewClient(opts ClientOptions) Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetHeader("accept", "application/json")
	client.SetTimeout(opts.Timeout)
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return Client{
		http:    client,
		baseUrl: strings.TrimSuffix(opts.BaseUrl, "/"),
	}
}

// get fetches one endpoint and hands back the raw body, classifying
// every failure mode into the error types of this package.
func (c Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	res, err := c.http.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &TransportError{
			URL: endpoint,
			Err: fmt.Errorf("unexpected status %q", res.Status()),
		}
	}
	body := res.Body()
	if !utf8.Valid(body) {
		return nil, &DecodeError{
			URL: endpoint,
			Err: errors.New("response body is not valid utf-8"),
		}
	}
	return body, nil
}
