package monitor_test

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/admin/tg-bots/monitor-bot/internal/domain"
	subscriberRepo "github.com/admin/tg-bots/monitor-bot/internal/repository/subscriber"
	"github.com/admin/tg-bots/monitor-bot/internal/usecases/monitor"
)

type sentMessage struct {
	ChatID int64
	Text   string
}

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[int64]bool
}

func (f *fakeNotifier) SendMessage(_ context.Context, chatID int64, text string) error {
	if f.failFor[chatID] {
		return fmt.Errorf("send failed for chat %d", chatID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text})
	return nil
}

// fakeMetrics отвечает по подстроке запроса; метрики из failing возвращают ErrNoValue
type fakeMetrics struct {
	values  map[string]float64
	failing []string
}

func (f *fakeMetrics) Query(_ context.Context, expr string) (float64, error) {
	for _, substr := range f.failing {
		if strings.Contains(expr, substr) {
			return 0, domain.ErrNoValue
		}
	}
	for substr, value := range f.values {
		if strings.Contains(expr, substr) {
			return value, nil
		}
	}
	return 0, domain.ErrNoValue
}

func allMetrics() *fakeMetrics {
	return &fakeMetrics{values: map[string]float64{
		"node_cpu_seconds_total":            12.34,
		"node_memory_MemAvailable_bytes":    56.78,
		"node_filesystem_avail_bytes":       40.5,
		"node_network_receive_bytes_total":  1.234,
		"node_network_transmit_bytes_total": 0.567,
	}}
}

func newService(t *testing.T, notifier *fakeNotifier, metrics *fakeMetrics, adminChatID int64) *monitor.Service {
	t.Helper()
	repo := subscriberRepo.New(&subscriberRepo.Config{
		Path: filepath.Join(t.TempDir(), "subscribers.json"),
	}, slog.Default())
	return monitor.New(repo, notifier, metrics, adminChatID, slog.Default())
}
