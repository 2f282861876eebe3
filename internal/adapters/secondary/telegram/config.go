package telegram

type Config struct {
	BotToken   string `envconfig:"BOT_TOKEN"`
	APIURL     string `envconfig:"API_URL" default:"https://api.telegram.org"`
	WebhookURL string `envconfig:"WEBHOOK_URL"`
}
