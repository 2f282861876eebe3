package telegram

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/tg-bots/monitor-bot/internal/domain"
	telegramService "github.com/admin/tg-bots/monitor-bot/internal/services/telegram"
)

type Controller struct {
	TgService *telegramService.Service
	Log       *slog.Logger
}

func New(tgService *telegramService.Service, log *slog.Logger) *Controller {
	return &Controller{
		TgService: tgService,
		Log:       log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/telegram_webhook", c.handleWebhook)
}

// handleWebhook принимает обновления от Telegram.
// Telegram ожидает 200 OK в любом случае, иначе начнёт ретраить доставку,
// поэтому ошибки разбора и обработки здесь не превращаются в HTTP-ошибки.
func (c *Controller) handleWebhook(ctx *gin.Context) {
	var update domain.Update

	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.Log.Warn("failed to bind webhook request",
			"error", err,
		)
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if update.IncomingMessage() == nil {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.Log.Debug("received webhook update",
		"update_id", update.UpdateID,
	)

	if err := c.TgService.HandleUpdate(ctx.Request.Context(), &update); err != nil {
		c.Log.Error("failed to handle update",
			"error", err,
			"update_id", update.UpdateID,
		)
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
