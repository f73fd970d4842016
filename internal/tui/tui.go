// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tunes/internal/metadata"
	"github.com/hazadus/go-tunes/internal/track"
	"github.com/hazadus/go-tunes/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	tracks *track.List
	loader *metadata.Loader
	opts   app.Options
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(tracks *track.List, loader *metadata.Loader, opts app.Options) *App {
	return &App{
		tracks: tracks,
		loader: loader,
		opts:   opts,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	model := app.NewMainModel(tuiApp.tracks, tuiApp.loader, tuiApp.opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	model.Close()

	return err
}
