// Package details содержит модель экрана с информацией о треке для TUI
package details

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tunes/internal/track"
	"github.com/hazadus/go-tunes/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(16)

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// GoBackMsg отправляется для возврата к списку треков
type GoBackMsg struct{}

// Model представляет модель экрана информации о треке
type Model struct {
	track *track.Track
	width int
}

// NewModel создает модель для выбранного трека
func NewModel(t *track.Track) *Model {
	return &Model{track: t}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "backspace":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}
		}
	}

	return m, nil
}

// View отображает модель
func (m *Model) View() string {
	title := titleStyle.Render("🎵 " + m.track.Title())

	artist := m.track.Artist()
	if artist == "" {
		artist = "—"
	}
	album := m.track.Album()
	if album == "" {
		album = "—"
	}

	row := func(label, value string) string {
		return labelStyle.Render(label) + value
	}

	info := trackInfoStyle.Render(fmt.Sprintf("%s\n%s\n%s\n%s",
		row("🎤 Исполнитель", artist),
		row("💿 Альбом", album),
		row("⏱️  Длительность", utils.FormatDuration(m.track.Length())),
		row("📁 Файл", m.track.Source()),
	))

	controls := controlsStyle.Render("q/esc: назад к списку")

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, info, controls)
}
