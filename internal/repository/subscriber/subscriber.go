package subscriberRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"log/slog"

	ports "github.com/admin/tg-bots/monitor-bot/internal/ports/repository"
)

type Config struct {
	Path string `envconfig:"PATH" default:"subscribers.json"`
}

// Repository файловое хранилище подписчиков: JSON-массив chat_id.
// Читается и перезаписывается целиком на каждой операции, без кэша.
type Repository struct {
	path string
	mu   sync.Mutex
	Log  *slog.Logger
}

// New создаёт новый репозиторий подписчиков поверх JSON-файла
func New(cfg *Config, log *slog.Logger) ports.ISubscriberRepo {
	return &Repository{
		path: cfg.Path,
		Log:  log,
	}
}

// Load читает список подписчиков из файла.
// Отсутствующий файл - это пустой список, а не ошибка.
func (r *Repository) Load(_ context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Save перезаписывает файл подписчиков целиком.
func (r *Repository) Save(_ context.Context, subscribers []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(subscribers)
}

// Add добавляет chat_id, если его ещё нет; возвращает true при фактической записи.
// Весь цикл чтение-изменение-запись идёт под одной блокировкой,
// иначе параллельные подписки теряют друг друга.
// Нечитаемый файл трактуется как пустой список и перезаписывается.
func (r *Repository) Add(_ context.Context, chatID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subscribers, err := r.load()
	if err != nil {
		r.Log.Error("failed to load subscribers, treating as empty",
			"error", err,
		)
		subscribers = []int64{}
	}

	for _, id := range subscribers {
		if id == chatID {
			return false, nil
		}
	}

	subscribers = append(subscribers, chatID)
	if err := r.save(subscribers); err != nil {
		return false, err
	}

	return true, nil
}

// Remove убирает chat_id, если он есть; возвращает true при фактической записи
func (r *Repository) Remove(_ context.Context, chatID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subscribers, err := r.load()
	if err != nil {
		r.Log.Error("failed to load subscribers, treating as empty",
			"error", err,
		)
		return false, nil
	}

	filtered := subscribers[:0]
	for _, id := range subscribers {
		if id != chatID {
			filtered = append(filtered, id)
		}
	}

	if len(filtered) == len(subscribers) {
		return false, nil
	}

	if err := r.save(filtered); err != nil {
		return false, err
	}

	return true, nil
}

func (r *Repository) load() ([]int64, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []int64{}, nil
		}
		return nil, fmt.Errorf("failed to read subscribers file: %w", err)
	}

	var subscribers []int64
	if err := json.Unmarshal(data, &subscribers); err != nil {
		return nil, fmt.Errorf("failed to parse subscribers file: %w", err)
	}

	return subscribers, nil
}

// save пишет во временный файл и переименовывает, чтобы не оставить битый JSON при падении
func (r *Repository) save(subscribers []int64) error {
	data, err := json.Marshal(subscribers)
	if err != nil {
		return fmt.Errorf("failed to marshal subscribers: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "subscribers-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	r.Log.Debug("subscribers saved",
		"path", r.path,
		"count", len(subscribers),
	)

	return nil
}
