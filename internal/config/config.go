// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/hazadus/go-tunes/internal/metadata"
	"github.com/hazadus/go-tunes/internal/track"
)

// Config структура для хранения конфигурации приложения.
// Переменные окружения переопределяют значения из файла.
type Config struct {
	Backend       string `yaml:"backend" env:"TUNES_BACKEND" env-default:"native"`
	SortKey       string `yaml:"sort_key" env:"TUNES_SORT_KEY" env-default:"title"`
	SortDirection string `yaml:"sort_direction" env:"TUNES_SORT_DIRECTION" env-default:"asc"`
	Workers       int    `yaml:"workers" env:"TUNES_WORKERS" env-default:"4"`
	LogLevel      string `yaml:"log_level" env:"TUNES_LOG_LEVEL" env-default:"info"`
}

// LoadConfig загружает конфигурацию приложения из указанного файла
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Default возвращает конфигурацию по умолчанию с учетом переменных окружения
func Default() (*Config, error) {
	config := &Config{}
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Backend != metadata.BackendNative && c.Backend != metadata.BackendFFprobe {
		return fmt.Errorf("неизвестный backend %q: ожидается %s или %s",
			c.Backend, metadata.BackendNative, metadata.BackendFFprobe)
	}
	if _, _, err := c.Sort(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers должно быть не меньше 1, получено %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Sort возвращает ключ и направление сортировки по умолчанию
func (c *Config) Sort() (track.SortKey, track.Direction, error) {
	key, err := track.ParseSortKey(c.SortKey)
	if err != nil {
		return 0, 0, err
	}
	dir, err := track.ParseDirection(c.SortDirection)
	if err != nil {
		return 0, 0, err
	}
	return key, dir, nil
}

// Level возвращает уровень логирования
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("неверный уровень логирования %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// ExpandHome раскрывает тильду в начале пути
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}
