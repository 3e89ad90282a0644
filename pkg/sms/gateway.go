package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/pkg/config"
)

// Message is a single outbound SMS.
type Message struct {
	To   string `json:"to"`
	Body string `json:"message"`
}

// Receipt is what the gateway reports for an accepted message.
type Receipt struct {
	ProviderID string
	SentAt     time.Time
}

// Gateway delivers SMS messages to a provider.
type Gateway interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// ErrNotConfigured is returned when delivery is attempted without a gateway URL.
var ErrNotConfigured = errors.New("sms gateway not configured")

// New returns the HTTP gateway when SMS is enabled, otherwise a log-only gateway.
func New(cfg config.SMSConfig, logger *zap.Logger) Gateway {
	if !cfg.Enabled {
		return NewLogGateway(logger)
	}
	return NewHTTPGateway(cfg, nil)
}

// HTTPGateway posts messages as JSON to a provider endpoint.
type HTTPGateway struct {
	url      string
	apiKey   string
	senderID string
	client   *http.Client
}

// NewHTTPGateway builds a gateway. A nil client gets one honouring cfg.Timeout.
func NewHTTPGateway(cfg config.SMSConfig, client *http.Client) *HTTPGateway {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPGateway{url: cfg.GatewayURL, apiKey: cfg.APIKey, senderID: cfg.SenderID, client: client}
}

type httpRequest struct {
	APIKey   string `json:"api_key"`
	SenderID string `json:"sender_id,omitempty"`
	To       string `json:"to"`
	Message  string `json:"message"`
}

type httpResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Send implements Gateway.
func (g *HTTPGateway) Send(ctx context.Context, msg Message) (Receipt, error) {
	if g.url == "" {
		return Receipt{}, ErrNotConfigured
	}

	body, err := json.Marshal(httpRequest{APIKey: g.apiKey, SenderID: g.senderID, To: msg.To, Message: msg.Body})
	if err != nil {
		return Receipt{}, fmt.Errorf("encode sms: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var decoded httpResponse
	_ = json.Unmarshal(raw, &decoded)

	if resp.StatusCode >= http.StatusBadRequest {
		reason := decoded.Error
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		return Receipt{}, fmt.Errorf("sms gateway rejected message: %d %s", resp.StatusCode, reason)
	}

	return Receipt{ProviderID: decoded.ID, SentAt: time.Now().UTC()}, nil
}

// LogGateway records messages in the log instead of delivering them.
type LogGateway struct {
	logger *zap.Logger
}

// NewLogGateway constructs a log-only gateway.
func NewLogGateway(logger *zap.Logger) *LogGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogGateway{logger: logger}
}

// Send implements Gateway.
func (g *LogGateway) Send(ctx context.Context, msg Message) (Receipt, error) {
	g.logger.Info("sms delivery skipped (gateway disabled)", zap.String("to", msg.To), zap.Int("length", len(msg.Body)))
	return Receipt{ProviderID: "log", SentAt: time.Now().UTC()}, nil
}
