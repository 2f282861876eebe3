package texts

const (
	// StartGreeting приветствие при подписке
	StartGreeting = "Привет! Я бот мониторинга. Ты подписан на оповещения."

	// StopConfirmation подтверждение отписки
	StopConfirmation = "Отключил оповещения для этого чата."

	// UnknownCommand ответ на нераспознанную команду
	UnknownCommand = "Команда не распознана. Используйте /status или /start."

	// AlertHeader первая строка любого алерта
	AlertHeader = "[ALERT] Received notification\n"
)
