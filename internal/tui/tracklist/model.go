// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tunes/internal/track"
	"github.com/hazadus/go-tunes/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// Клавиши сортировки
var sortKeys = map[string]track.SortKey{
	"t": track.ByTitle,
	"d": track.ByDuration,
	"s": track.BySinger,
	"a": track.ByAlbum,
}

// TrackSelectedMsg отправляется при выборе трека
type TrackSelectedMsg struct {
	Track *track.Track
}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track *track.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.track.Artist(), i.track.Title(), i.track.Album())
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Исполнитель | Название | Альбом | Продолжительность
	str := fmt.Sprintf("%-20s %-40s %-20s %s",
		utils.TruncateString(i.track.Artist(), 20),
		utils.TruncateString(i.track.Title(), 40),
		utils.TruncateString(i.track.Album(), 20),
		utils.FormatDuration(i.track.Length()))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка треков.
// Модель подписана на изменения track.List и перестраивает элементы
// после каждого уведомления.
type Model struct {
	list        list.Model
	tracks      *track.List
	unsubscribe func()
	sortKey     track.SortKey
	direction   track.Direction
	sorted      bool
	quitting    bool
	pending     []tea.Cmd // команды перефильтрации после изменений списка
}

// NewModel создает новую модель списка треков
func NewModel(tracks *track.List) *Model {
	l := list.New(nil, trackItemDelegate{}, 0, 0)
	l.Title = "Треки"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	m := &Model{
		list:   l,
		tracks: tracks,
	}
	m.RefreshData()
	m.unsubscribe = tracks.Subscribe(func(track.Change) {
		m.pending = append(m.pending, m.RefreshData())
	})
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет элементы списка по текущему содержимому track.List.
// При активном фильтре возвращает команду повторной фильтрации.
func (m *Model) RefreshData() tea.Cmd {
	tracks := m.tracks.Tracks()

	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}

	return m.list.SetItems(items)
}

// PendingCmd возвращает накопленные после изменений списка команды
func (m *Model) PendingCmd() tea.Cmd {
	cmd := tea.Batch(m.pending...)
	m.pending = nil
	return cmd
}

// SortBy сортирует список. Повторный выбор того же ключа меняет направление.
func (m *Model) SortBy(key track.SortKey) {
	dir := track.Ascending
	if m.sorted && m.sortKey == key && m.direction == track.Ascending {
		dir = track.Descending
	}
	m.Sort(key, dir)
}

// Sort передает запрос сортировки в track.List
func (m *Model) Sort(key track.SortKey, dir track.Direction) {
	m.sortKey, m.direction, m.sorted = key, dir, true
	m.tracks.Sort(key, dir)
}

// Close отменяет подписку на изменения списка
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат полю ввода
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch key := msg.String(); key {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				return m, func() tea.Msg {
					return TrackSelectedMsg{Track: item.track}
				}
			}

		case "t", "d", "s", "a":
			m.SortBy(sortKeys[key])
			return m, m.PendingCmd()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, tea.Batch(m.PendingCmd(), cmd)
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()
	extraHelp := helpStyle.Render(
		"Enter: подробнее • t/d/s/a: сортировка по названию/длительности/исполнителю/альбому • q: выход")
	if m.sorted {
		extraHelp += "\n" + helpStyle.Render(fmt.Sprintf("Сортировка: %s %s", m.sortKey, m.direction))
	}
	return view + "\n" + extraHelp
}
