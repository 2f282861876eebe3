package app

import (
	"encoding/json"
	"fmt"
	"os"

	server "github.com/admin/tg-bots/monitor-bot/internal/adapters/primary/http"
	prometheusAdapter "github.com/admin/tg-bots/monitor-bot/internal/adapters/secondary/prometheus"
	telegramAdapter "github.com/admin/tg-bots/monitor-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/monitor-bot/internal/pkg/logger"
	subscriberRepo "github.com/admin/tg-bots/monitor-bot/internal/repository/subscriber"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultPrometheusURL = "http://localhost:9090"

type Config struct {
	Log         *logger.Config            `envconfig:"LOG"`
	Server      *server.Config            `envconfig:"APISERVER"`
	Telegram    *telegramAdapter.Config   `envconfig:"TELEGRAM"`
	Prometheus  *prometheusAdapter.Config `envconfig:"PROMETHEUS"`
	Subscribers *subscriberRepo.Config    `envconfig:"SUBSCRIBERS"`
	AdminChatID int64                     `envconfig:"ADMIN_CHAT_ID"`
	ConfigFile  string                    `envconfig:"CONFIG_FILE" default:"config.json"`

	// ошибка чтения файлового конфига: не фатальна, логируется после создания логгера
	fileErr error
}

// fileConfig необязательный JSON-файл с настройками.
// ADMIN_CHAT_ID встречается и строкой, и числом
type fileConfig struct {
	BotToken      string      `json:"BOT_TOKEN"`
	PrometheusURL string      `json:"PROMETHEUS_URL"`
	AdminChatID   json.Number `json:"ADMIN_CHAT_ID"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// Файловый конфиг заполняет только то, что не задано окружением
	cfg.fileErr = cfg.applyConfigFile(cfg.ConfigFile)

	if cfg.Prometheus.URL == "" {
		cfg.Prometheus.URL = defaultPrometheusURL
	}

	return cfg, nil
}

// applyConfigFile подтягивает значения из необязательного JSON-файла.
// Отсутствующий файл - норма; ошибки чтения и разбора не фатальны
func (c *Config) applyConfigFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if c.Telegram.BotToken == "" {
		c.Telegram.BotToken = fc.BotToken
	}

	if c.Prometheus.URL == "" {
		c.Prometheus.URL = fc.PrometheusURL
	}

	if c.AdminChatID == 0 && fc.AdminChatID != "" {
		id, err := fc.AdminChatID.Int64()
		if err != nil {
			return fmt.Errorf("failed to parse ADMIN_CHAT_ID: %w", err)
		}
		c.AdminChatID = id
	}

	return nil
}

// Validate проверяет, что обязательные настройки заданы.
// Токен бота обязан приходить из окружения или файла - дефолта у него нет
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is required (env or config file)")
	}
	return nil
}
