package telegram_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	telegramController "github.com/admin/tg-bots/monitor-bot/internal/adapters/primary/http/controllers/telegram"
	telegramService "github.com/admin/tg-bots/monitor-bot/internal/services/telegram"
)

type fakeBot struct {
	commands []string
	chatIDs  []int64
}

func (f *fakeBot) HandleCommand(_ context.Context, chatID int64, command string, _ int64) error {
	f.commands = append(f.commands, command)
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

func (f *fakeBot) HandleText(_ context.Context, chatID int64, _ string, _ int64) error {
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

func newRouter() (*gin.Engine, *fakeBot) {
	gin.SetMode(gin.TestMode)

	bot := &fakeBot{}
	svc := telegramService.New(nil, slog.Default())
	svc.SetBotService(bot)

	router := gin.New()
	telegramController.New(svc, slog.Default()).RegisterRoutes(router)
	return router, bot
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/telegram_webhook", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhook_CommandDispatched(t *testing.T) {
	router, bot := newRouter()

	w := post(router, `{
		"update_id": 1,
		"message": {"message_id": 10, "chat": {"id": 42, "type": "private"}, "text": "/start"}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, []string{"start"}, bot.commands)
	assert.Equal(t, []int64{42}, bot.chatIDs)
}

func TestWebhook_EditedMessageDispatched(t *testing.T) {
	router, bot := newRouter()

	w := post(router, `{
		"update_id": 2,
		"edited_message": {"message_id": 11, "chat": {"id": 42, "type": "private"}, "text": "/status"}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"status"}, bot.commands)
}

func TestWebhook_NoMessage_AcksImmediately(t *testing.T) {
	router, bot := newRouter()

	w := post(router, `{"update_id": 3}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Empty(t, bot.commands)
	assert.Empty(t, bot.chatIDs)
}

func TestWebhook_MalformedBody_StillAcks(t *testing.T) {
	router, bot := newRouter()

	w := post(router, `{broken`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Empty(t, bot.commands)
}
