package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// SetWebhookRequest запрос на регистрацию webhook
type SetWebhookRequest struct {
	URL string `json:"url"`
}

// SetWebhook регистрирует webhook и возвращает сырой JSON-ответ Telegram как есть
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, webhookTimeout)
	defer cancel()

	jsonData, err := json.Marshal(SetWebhookRequest{URL: webhookURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/setWebhook"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("failed to call setWebhook",
			"error", err,
			"webhook_url", webhookURL,
		)
		return nil, fmt.Errorf("failed to call setWebhook: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Info("setWebhook called",
		"webhook_url", webhookURL,
		"status_code", resp.StatusCode,
	)

	return body, nil
}
