package prometheus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/prometheus/common/model"

	"github.com/admin/tg-bots/monitor-bot/internal/domain"
)

const queryTimeout = 10 * time.Second

// Client клиент для мгновенных запросов к Prometheus HTTP API
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// NewClient создаёт новый клиент для Prometheus
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		log:        log,
	}
}

// queryResponse ответ /api/v1/query, result парсится как вектор
type queryResponse struct {
	Status string `json:"status"`
	Data   struct {
		ResultType string       `json:"resultType"`
		Result     model.Vector `json:"result"`
	} `json:"data"`
}

// Query выполняет мгновенный запрос и возвращает скаляр первого результата.
// Любой сбой (транспорт, статус != success, пустой результат, битый ответ)
// схлопывается в domain.ErrNoValue - деталей наружу не выносим.
func (c *Client) Query(ctx context.Context, expr string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	queryURL := c.baseURL + "/api/v1/query?query=" + url.QueryEscape(expr)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("prometheus query failed",
			"error", err,
			"query", expr,
		)
		return 0, domain.ErrNoValue
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("prometheus returned non-OK status",
			"status_code", resp.StatusCode,
			"query", expr,
		)
		return 0, domain.ErrNoValue
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("failed to read prometheus response",
			"error", err,
			"query", expr,
		)
		return 0, domain.ErrNoValue
	}

	var queryResp queryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		c.log.Error("failed to unmarshal prometheus response",
			"error", err,
			"query", expr,
		)
		return 0, domain.ErrNoValue
	}

	if queryResp.Status != "success" {
		c.log.Warn("prometheus query status is not success",
			"status", queryResp.Status,
			"query", expr,
		)
		return 0, domain.ErrNoValue
	}

	result := queryResp.Data.Result
	if len(result) == 0 {
		return 0, domain.ErrNoValue
	}

	value := float64(result[0].Value)

	c.log.Debug("prometheus query succeeded",
		"query", expr,
		"value", value,
	)

	return value, nil
}
