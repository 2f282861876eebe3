package admin

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/tg-bots/monitor-bot/internal/ports/service"
)

type Controller struct {
	Registrar service.IWebhookRegistrar
	Log       *slog.Logger
}

func New(registrar service.IWebhookRegistrar, log *slog.Logger) *Controller {
	return &Controller{
		Registrar: registrar,
		Log:       log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/set_telegram_webhook", c.handleSetWebhook)
}

// SetWebhookRequest тело запроса на регистрацию webhook
type SetWebhookRequest struct {
	URL string `json:"url"`
}

// handleSetWebhook пробрасывает URL в Telegram setWebhook
// и возвращает ответ платформы как есть
func (c *Controller) handleSetWebhook(ctx *gin.Context) {
	var req SetWebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.URL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "url required"})
		return
	}

	body, err := c.Registrar.SetWebhook(ctx.Request.Context(), req.URL)
	if err != nil {
		c.Log.Error("failed to register webhook",
			"error", err,
			"url", req.URL,
		)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "failed to register webhook"})
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}
