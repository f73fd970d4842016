package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-tunes/internal/config"
	"github.com/hazadus/go-tunes/internal/metadata"
)

const (
	defaultConfigPath = "~/.tunes.yaml"
)

// Application содержит зависимости, общие для всех команд
type Application struct {
	Config *config.Config
	Loader *metadata.Loader
	Logger *slog.Logger
	// Progress получает индикатор загрузки и предупреждения; stdout остается для результата
	Progress io.Writer
}

// configure создает логгер и загрузчик по конфигурации
func (app *Application) configure(cfg *config.Config, logWriter io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: level}))

	opener, err := metadata.NewOpener(cfg.Backend)
	if err != nil {
		return err
	}

	app.Config = cfg
	app.Logger = logger
	app.Loader = metadata.NewLoader(opener, logger)
	return nil
}

// loadConfig читает конфигурацию. Отсутствие файла по умолчанию не считается
// ошибкой, явно указанный файл должен существовать.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if path == "" {
		return nil, errors.New("не указан путь к файлу конфигурации")
	}

	cfg, err := config.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default()
	}
	return nil, err
}

func main() {
	app := &Application{Progress: os.Stderr}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := app.createRootCommand(ctx)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Ошибка: %v\n", err)
		stop()
		os.Exit(1)
	}
}
