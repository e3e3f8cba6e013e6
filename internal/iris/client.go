package iris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kapu/arabic-name-bot-go/internal/constants"
	"github.com/kapu/arabic-name-bot-go/internal/util"
	"github.com/kapu/arabic-name-bot-go/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the Iris HTTP API for replies and health checks.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *util.CircuitBreaker
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: constants.IrisConfig.RequestTimeout,
		},
		breaker: util.NewCircuitBreaker(
			constants.IrisConfig.BreakerThreshold,
			constants.IrisConfig.BreakerCooldown,
			logger,
		),
		logger: logger,
	}
}

func (c *Client) GetConfig(ctx context.Context) (*Config, error) {
	var config Config
	if err := c.doRequest(ctx, http.MethodGet, "/config", nil, &config); err != nil {
		c.logger.Error("Failed to get Iris config", zap.Error(err))
		return nil, err
	}
	return &config, nil
}

// SendMessage posts a text reply into a room. While Iris keeps failing the
// breaker rejects replies without touching the network.
func (c *Client) SendMessage(ctx context.Context, room, message string) error {
	if !c.breaker.Allow() {
		return errors.NewServiceError("iris reply circuit is open", "iris", "reply", nil)
	}

	req := ReplyRequest{
		Type: "text",
		Room: room,
		Data: message,
	}

	err := c.doRequest(ctx, http.MethodPost, "/reply", req, nil)
	if err != nil && ctx.Err() == nil {
		c.breaker.RecordFailure()
	} else if err == nil {
		c.breaker.RecordSuccess()
	}
	if err != nil {
		c.logger.Error("Failed to send message",
			zap.Error(err),
			zap.String("room", room),
		)
		return err
	}

	return nil
}

func (c *Client) Ping(ctx context.Context) bool {
	_, err := c.GetConfig(ctx)
	return err == nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, reqBody, respBody any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return errors.NewAPIError("failed to marshal request", http.StatusBadRequest, map[string]any{
				"url": url,
			}).WithCause(err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return errors.NewAPIError("failed to create request", http.StatusInternalServerError, map[string]any{
			"url": url,
		}).WithCause(err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewAPIError("request failed", http.StatusBadGateway, map[string]any{
			"url": url,
		}).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.NewAPIError(
			fmt.Sprintf("Iris API error: %s", resp.Status),
			resp.StatusCode,
			map[string]any{
				"url":  url,
				"body": string(bodyBytes),
			},
		)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return errors.NewAPIError("failed to decode response", http.StatusInternalServerError, map[string]any{
				"url": url,
			}).WithCause(err)
		}
	}

	return nil
}
