package fixturefeed

import (
	"context"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/platform/resilience"
	"github.com/riskibarqy/prediction-league/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	upcomingPath       = "/fixtures/upcoming"
	defaultTimeout     = 10 * time.Second
	maxResponseBodyLen = 4 << 20
)

var errFeedTransient = crerr.New("fixture feed transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads upcoming fixtures from an HTTP fixture provider.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	token      string
	timeout    time.Duration
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	backoff    func(attempt int) time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                     "prediction-league",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxResponseBodyLen,
			NoDefaultUserAgentHeader: true,
		}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:      strings.TrimSpace(cfg.Token),
		timeout:    timeout,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * time.Second
		},
	}
}

type upcomingEnvelope struct {
	Data []upcomingItem `json:"data"`
}

type upcomingItem struct {
	HomeTeam      string `json:"home_team"`
	AwayTeam      string `json:"away_team"`
	MatchDatetime string `json:"match_datetime"`
}

// FetchUpcoming returns the fixtures the provider lists as upcoming. Rows
// without both teams or with an unparseable kickoff are dropped.
func (c *Client) FetchUpcoming(ctx context.Context) ([]usecase.ExternalFixture, error) {
	var raw []byte
	err := c.breaker.Do(ctx, isTransient, func(ctx context.Context) error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, c.baseURL+upcomingPath)
		return reqErr
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "fixture feed circuit breaker rejected request", "state", c.breaker.State())
		}
		return nil, err
	}

	items, err := decodeUpcoming(raw)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalFixture, 0, len(items))
	dropped := 0
	for _, item := range items {
		kickoff, ok := parseKickoff(item.MatchDatetime)
		home := strings.TrimSpace(item.HomeTeam)
		away := strings.TrimSpace(item.AwayTeam)
		if !ok || home == "" || away == "" {
			dropped++
			continue
		}
		out = append(out, usecase.ExternalFixture{
			HomeTeam:  home,
			AwayTeam:  away,
			KickoffAt: kickoff,
		})
	}
	if dropped > 0 {
		c.logger.WarnContext(ctx, "some upcoming fixtures could not be mapped", "provider_count", len(items), "dropped_count", dropped)
	}

	return out, nil
}

func decodeUpcoming(raw []byte) ([]upcomingItem, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var direct []upcomingItem
		if err := sonic.UnmarshalString(trimmed, &direct); err != nil {
			return nil, crerr.Wrap(err, "decode fixture feed payload")
		}
		return direct, nil
	}

	var envelope upcomingEnvelope
	if err := sonic.UnmarshalString(trimmed, &envelope); err != nil {
		return nil, crerr.Wrap(err, "decode fixture feed payload")
	}
	return envelope.Data, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, err := c.doOnce(ctx, fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !isTransient(err) || attempt == c.maxRetries {
			break
		}

		timer := time.NewTimer(c.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "fixture feed request failed", "url", redactURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, fullURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.token)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "send request"), errFeedTransient)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status >= fasthttp.StatusOK && status < fasthttp.StatusMultipleChoices {
		return body, nil
	}

	err := crerr.Newf("provider status=%d body=%s", status, abbreviateBody(body))
	if isRetryableStatus(status) {
		return nil, crerr.Mark(err, errFeedTransient)
	}
	return nil, err
}

func isTransient(err error) bool {
	return err != nil && crerr.Is(err, errFeedTransient)
}

func isRetryableStatus(code int) bool {
	return code == fasthttp.StatusTooManyRequests || code >= fasthttp.StatusInternalServerError
}

func parseKickoff(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.User = nil
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
