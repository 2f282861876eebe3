package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/admin/tg-bots/monitor-bot/internal/usecases/monitor/texts"
)

// HandleAlert форматирует входящий алерт и рассылает его подписчикам
func (s *Service) HandleAlert(ctx context.Context, body []byte) error {
	text := FormatAlert(body)
	delivered := s.deliverAlert(ctx, text)

	s.Log.Info("alert processed",
		"delivered", delivered,
	)

	return nil
}

// FormatAlert рендерит текст алерта из сырого JSON.
// Payload может быть либо Alertmanager-формата со списком alerts,
// либо плоским Grafana-алертом; поля ищутся по нескольким кандидатам.
func FormatAlert(body []byte) string {
	var b strings.Builder
	b.WriteString(texts.AlertHeader)

	root := gjson.ParseBytes(body)

	alerts := root.Get("alerts").Array()
	if len(alerts) > 0 {
		for _, a := range alerts {
			name := firstNonEmpty(a.Get("labels.alertname").String(), "alert")
			status := a.Get("status").String()
			instance := firstNonEmpty(a.Get("labels.instance").String(), a.Get("labels.host").String())
			description := firstNonEmpty(a.Get("annotations.description").String(), a.Get("annotations.summary").String())

			fmt.Fprintf(&b, "\n*%s* — %s\nInstance: `%s`\n%s\n", name, status, instance, description)
		}
		return b.String()
	}

	title := firstNonEmpty(root.Get("title").String(), root.Get("ruleName").String(), "Grafana alert")
	state := firstNonEmpty(root.Get("state").String(), root.Get("status").String())
	message := root.Get("message").String()

	fmt.Fprintf(&b, "\n*%s* — `%s`\n%s\n", title, state, message)
	return b.String()
}

// deliverAlert рассылает текст всем подписчикам; при пустом списке
// отправляет единственное сообщение резервному получателю, если он настроен.
// Ошибки доставки отдельным получателям логируются и не влияют на ответ.
func (s *Service) deliverAlert(ctx context.Context, text string) int {
	recipients := s.loadSubscribers(ctx)
	if len(recipients) == 0 && s.AdminChatID != 0 {
		recipients = []int64{s.AdminChatID}
	}

	delivered := 0
	for _, chatID := range recipients {
		if err := s.Notifier.SendMessage(ctx, chatID, text); err != nil {
			s.Log.Error("failed to deliver alert",
				"error", err,
				"chat_id", chatID,
			)
			continue
		}
		delivered++
	}

	return delivered
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
