package healthcheckController

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IndexMessage фиксированный ответ liveness-проверки
const IndexMessage = "Monitoring Telegram webhook service is running."

type HealthCheckController struct {
	log *slog.Logger
}

func New(log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		log: log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/", c.index)
	r.GET("/health", c.health)
}

// index liveness-проверка, plain text
func (c *HealthCheckController) index(ctx *gin.Context) {
	ctx.String(http.StatusOK, IndexMessage)
}

// health проверка для контейнерных проб
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
