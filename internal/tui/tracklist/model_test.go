package tracklist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tunes/internal/track"
)

func newTestList() *track.List {
	l := track.NewList()
	l.Append(track.New("/b.mp3", "B Track", "Artist 2", "Album 1", 240))
	l.Append(track.New("/a.mp3", "A Track", "Artist 1", "Album 2", 180))
	return l
}

func itemTitles(m *Model) []string {
	var titles []string
	for _, item := range m.list.Items() {
		titles = append(titles, item.(trackItem).track.Title())
	}
	return titles
}

func keyMsg(key rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}}
}

func TestNewModel(t *testing.T) {
	model := NewModel(newTestList())

	if model == nil {
		t.Fatal("NewModel returned nil")
	}
	if len(model.list.Items()) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(model.list.Items()))
	}
}

func TestModelFollowsListChanges(t *testing.T) {
	tracks := newTestList()
	model := NewModel(tracks)

	tracks.Append(track.New("/c.mp3", "C Track", "", "", 10))
	if len(model.list.Items()) != 3 {
		t.Errorf("Ожидалось 3 элемента после Append, получено %d", len(model.list.Items()))
	}

	tracks.Clear()
	if len(model.list.Items()) != 0 {
		t.Errorf("Ожидался пустой список после Clear, получено %d", len(model.list.Items()))
	}

	model.Close()
	tracks.Append(track.New("/d.mp3", "D Track", "", "", 10))
	if len(model.list.Items()) != 0 {
		t.Error("После Close модель не должна получать уведомления")
	}
}

func TestSortKeys(t *testing.T) {
	tracks := newTestList()
	model := NewModel(tracks)

	model, _ = model.Update(keyMsg('t'))
	titles := itemTitles(model)
	if titles[0] != "A Track" || titles[1] != "B Track" {
		t.Errorf("Ожидалась сортировка по названию по возрастанию, получено %v", titles)
	}

	// Повторное нажатие меняет направление
	model, _ = model.Update(keyMsg('t'))
	titles = itemTitles(model)
	if titles[0] != "B Track" {
		t.Errorf("Ожидалась сортировка по названию по убыванию, получено %v", titles)
	}
	if model.direction != track.Descending {
		t.Errorf("Ожидалось направление desc, получено %s", model.direction)
	}

	model, _ = model.Update(keyMsg('d'))
	if model.sortKey != track.ByDuration || model.direction != track.Ascending {
		t.Errorf("Ожидалась сортировка duration/asc, получено %s/%s", model.sortKey, model.direction)
	}
	first, _ := tracks.At(0)
	if first.Duration() != 180 {
		t.Errorf("Ожидался первым трек длительностью 180, получено %v", first.Duration())
	}
}

func TestTrackSelected(t *testing.T) {
	tracks := newTestList()
	model := NewModel(tracks)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Ожидалась команда выбора трека")
	}
	msg, ok := cmd().(TrackSelectedMsg)
	if !ok {
		t.Fatal("Ожидалось TrackSelectedMsg")
	}
	first, _ := tracks.At(0)
	if msg.Track != first {
		t.Errorf("Ожидался трек %s, получено %s", first.Title(), msg.Track.Title())
	}
}

func TestQuit(t *testing.T) {
	model := NewModel(newTestList())

	model, cmd := model.Update(keyMsg('q'))
	if cmd == nil {
		t.Error("Ожидалась команда tea.Quit")
	}
	if model.View() != quitTextStyle.Render("До свидания!") {
		t.Errorf("Неожиданный вывод после выхода: %s", model.View())
	}
}

// runCmd выполняет команду и передает результат в модель
func runCmd(model *Model, cmd tea.Cmd) *Model {
	if cmd == nil {
		return model
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			model = runCmd(model, c)
		}
		return model
	}
	model, _ = model.Update(msg)
	return model
}

func TestFilterReappliedAfterListChanges(t *testing.T) {
	tracks := newTestList()
	model := NewModel(tracks)

	model.list.SetFilterText("Zebra")
	if len(model.list.VisibleItems()) != 0 {
		t.Fatalf("Фильтр не должен находить треки, найдено %d", len(model.list.VisibleItems()))
	}

	tracks.Append(track.New("/z.mp3", "Zebra", "", "", 10))

	cmd := model.PendingCmd()
	if cmd == nil {
		t.Fatal("Ожидалась команда повторной фильтрации после Append")
	}
	model = runCmd(model, cmd)

	visible := model.list.VisibleItems()
	if len(visible) != 1 || visible[0].(trackItem).track.Title() != "Zebra" {
		t.Errorf("Ожидался один видимый трек Zebra, получено %d", len(visible))
	}

	if model.PendingCmd() != nil {
		t.Error("Команды должны выдаваться один раз")
	}
}

func TestSortKeyReturnsFilterCmd(t *testing.T) {
	model := NewModel(newTestList())
	model.list.SetFilterText("Track")

	_, cmd := model.Update(keyMsg('t'))
	if cmd == nil {
		t.Error("При активном фильтре сортировка должна вернуть команду фильтрации")
	}
}
