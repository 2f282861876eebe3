package admin_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/admin/tg-bots/monitor-bot/internal/adapters/primary/http/controllers/admin"
)

type fakeRegistrar struct {
	urls     []string
	response []byte
	err      error
}

func (f *fakeRegistrar) SetWebhook(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.response, f.err
}

func newRouter(registrar *fakeRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin.New(registrar, slog.Default()).RegisterRoutes(router)
	return router
}

func TestSetWebhook_RelaysPlatformResponse(t *testing.T) {
	registrar := &fakeRegistrar{response: []byte(`{"ok":true,"description":"Webhook was set"}`)}
	router := newRouter(registrar)

	req := httptest.NewRequest(http.MethodPost, "/set_telegram_webhook",
		bytes.NewBufferString(`{"url":"https://example.com/telegram_webhook"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"description":"Webhook was set"}`, w.Body.String())
	assert.Equal(t, []string{"https://example.com/telegram_webhook"}, registrar.urls)
}

func TestSetWebhook_MissingURL(t *testing.T) {
	registrar := &fakeRegistrar{}
	router := newRouter(registrar)

	req := httptest.NewRequest(http.MethodPost, "/set_telegram_webhook", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"url required"}`, w.Body.String())
	assert.Empty(t, registrar.urls, "outbound registration must not be called without url")
}

func TestSetWebhook_MalformedBody(t *testing.T) {
	registrar := &fakeRegistrar{}
	router := newRouter(registrar)

	req := httptest.NewRequest(http.MethodPost, "/set_telegram_webhook", bytes.NewBufferString("{nope"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, registrar.urls)
}

func TestSetWebhook_OutboundFailure(t *testing.T) {
	registrar := &fakeRegistrar{err: assert.AnError}
	router := newRouter(registrar)

	req := httptest.NewRequest(http.MethodPost, "/set_telegram_webhook",
		bytes.NewBufferString(`{"url":"https://example.com/hook"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
