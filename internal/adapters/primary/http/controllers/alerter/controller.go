package alerter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/tg-bots/monitor-bot/internal/ports/service"
)

type Controller struct {
	AlerterService service.IAlerterService
	Log            *slog.Logger
}

func New(alerterService service.IAlerterService, log *slog.Logger) *Controller {
	return &Controller{
		AlerterService: alerterService,
		Log:            log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/grafana_webhook", c.handleGrafanaWebhook)
}

// handleGrafanaWebhook принимает алерты от Grafana/Alertmanager.
// Тело передаётся в usecase сырым: формат у двух источников разный,
// и поля ищутся по нескольким кандидатам уже при рендеринге.
func (c *Controller) handleGrafanaWebhook(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	// литеральный null валиден для json.Valid, но алерта в нём нет - тоже 400
	if err != nil || !json.Valid(body) || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		c.Log.Warn("failed to parse alert payload",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false})
		return
	}

	c.Log.Debug("received alert webhook",
		"body_length", len(body),
	)

	if err := c.AlerterService.HandleAlert(ctx.Request.Context(), body); err != nil {
		// Ошибки доставки уже залогированы внутри; источнику всегда отвечаем успехом,
		// чтобы он не ретраил
		c.Log.Warn("failed to handle alert",
			"error", err,
		)
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
