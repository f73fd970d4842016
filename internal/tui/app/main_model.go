// Package app содержит основную логику TUI приложения
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tunes/internal/metadata"
	"github.com/hazadus/go-tunes/internal/track"
	"github.com/hazadus/go-tunes/internal/tui/details"
	"github.com/hazadus/go-tunes/internal/tui/tracklist"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(4)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// DetailsScreen - экран информации о треке
	DetailsScreen
)

// TrackLoadedMsg отправляется после успешной загрузки файла
type TrackLoadedMsg struct {
	Track *track.Track
}

// LoadFailedMsg отправляется, если файл не удалось загрузить
type LoadFailedMsg struct {
	Source string
	Err    error
}

// Options настройки главной модели
type Options struct {
	Sources   []string        // Файлы для загрузки
	SortKey   track.SortKey   // Сортировка после загрузки всех файлов
	Direction track.Direction // Направление сортировки
}

// MainModel представляет главную модель TUI
type MainModel struct {
	tracks         *track.List
	loader         *metadata.Loader
	opts           Options
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	detailsModel   *details.Model
	loaded         int
	failed         []LoadFailedMsg
}

// NewMainModel создает новую главную модель
func NewMainModel(tracks *track.List, loader *metadata.Loader, opts Options) *MainModel {
	return &MainModel{
		tracks:         tracks,
		loader:         loader,
		opts:           opts,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(tracks),
	}
}

// Init запускает загрузку файлов. Каждый файл загружается отдельной командой,
// а в список треки попадают только из Update.
func (m *MainModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.opts.Sources)+1)
	cmds = append(cmds, m.tracklistModel.Init())
	for _, source := range m.opts.Sources {
		cmds = append(cmds, m.loadCmd(source))
	}
	return tea.Batch(cmds...)
}

func (m *MainModel) loadCmd(source string) tea.Cmd {
	return func() tea.Msg {
		t, err := m.loader.Load(source)
		if err != nil {
			return LoadFailedMsg{Source: source, Err: err}
		}
		return TrackLoadedMsg{Track: t}
	}
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case TrackLoadedMsg:
		m.loaded++
		m.tracks.Append(msg.Track)
		m.sortWhenLoaded()
		return m, m.tracklistModel.PendingCmd()

	case LoadFailedMsg:
		m.failed = append(m.failed, msg)
		m.sortWhenLoaded()
		return m, m.tracklistModel.PendingCmd()

	case tracklist.TrackSelectedMsg:
		m.currentScreen = DetailsScreen
		m.detailsModel = details.NewModel(msg.Track)
		return m, m.detailsModel.Init()

	case details.GoBackMsg:
		m.currentScreen = TracklistScreen
		m.detailsModel = nil
		return m, nil
	}

	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)

	case DetailsScreen:
		if m.detailsModel != nil {
			m.detailsModel, cmd = m.detailsModel.Update(msg)
		}
	}

	return m, cmd
}

// sortWhenLoaded применяет сортировку по умолчанию, когда загружены все файлы
func (m *MainModel) sortWhenLoaded() {
	if m.loaded+len(m.failed) == len(m.opts.Sources) {
		m.tracklistModel.Sort(m.opts.SortKey, m.opts.Direction)
	}
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View() + "\n" + m.statusLine()

	case DetailsScreen:
		if m.detailsModel != nil {
			return m.detailsModel.View()
		}
		return "Ошибка: модель информации о треке не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

func (m *MainModel) statusLine() string {
	total := len(m.opts.Sources)
	status := fmt.Sprintf("Загружено %d из %d", m.loaded, total)
	if len(m.failed) > 0 {
		last := m.failed[len(m.failed)-1]
		status += fmt.Sprintf(" • ошибок: %d (последняя: %v)", len(m.failed), last.Err)
	}
	return statusStyle.Render(status)
}

// Close закрывает ресурсы главной модели
func (m *MainModel) Close() {
	m.tracklistModel.Close()
}
