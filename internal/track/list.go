package track

import (
	"errors"
	"fmt"
)

// NotFound возвращается IndexOf, если трека нет в списке
const NotFound = -1

// ErrIndexOutOfRange возвращается At при выходе индекса за границы списка
var ErrIndexOutOfRange = errors.New("индекс вне диапазона")

// ChangeKind описывает вид изменения списка
type ChangeKind int

// Виды изменений списка
const (
	// Appended - трек добавлен в конец
	Appended ChangeKind = iota
	// Replaced - содержимое заменено целиком
	Replaced
	// Cleared - список очищен
	Cleared
	// Sorted - порядок изменен сортировкой
	Sorted
)

func (k ChangeKind) String() string {
	switch k {
	case Appended:
		return "appended"
	case Replaced:
		return "replaced"
	case Cleared:
		return "cleared"
	case Sorted:
		return "sorted"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change передается наблюдателям после каждого изменения списка
type Change struct {
	Kind  ChangeKind
	Count int // Длина списка после изменения
}

// List упорядоченный наблюдаемый список треков.
//
// List не защищен мьютексом: вызывающая сторона обеспечивает
// единственного писателя.
type List struct {
	tracks    []*Track
	observers map[int]func(Change)
	nextID    int
}

// NewList создает пустой список
func NewList() *List {
	return &List{
		tracks:    make([]*Track, 0),
		observers: make(map[int]func(Change)),
	}
}

// Subscribe регистрирует наблюдателя. Наблюдатель вызывается синхронно,
// ровно один раз на каждую изменяющую операцию, после ее завершения.
// Возвращаемая функция отменяет подписку.
func (l *List) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := l.nextID
	l.nextID++
	l.observers[id] = fn
	return func() {
		delete(l.observers, id)
	}
}

// notify уведомляет наблюдателей в порядке подписки
func (l *List) notify(kind ChangeKind) {
	change := Change{Kind: kind, Count: len(l.tracks)}
	last := l.nextID
	for id := 0; id < last; id++ {
		if fn, ok := l.observers[id]; ok {
			fn(change)
		}
	}
}

// Append добавляет трек в конец списка
func (l *List) Append(t *Track) {
	l.tracks = append(l.tracks, t)
	l.notify(Appended)
}

// ReplaceAll заменяет содержимое списка переданными треками.
// Наблюдатели получают одно уведомление.
func (l *List) ReplaceAll(tracks []*Track) {
	fresh := make([]*Track, len(tracks))
	copy(fresh, tracks)
	l.release()
	l.tracks = fresh
	l.notify(Replaced)
}

// Clear удаляет все треки
func (l *List) Clear() {
	l.release()
	l.tracks = l.tracks[:0]
	l.notify(Cleared)
}

// release обнуляет ссылки, чтобы удаленные треки мог собрать GC
func (l *List) release() {
	clear(l.tracks)
}

// Count возвращает количество треков
func (l *List) Count() int {
	return len(l.tracks)
}

// At возвращает трек по индексу
func (l *List) At(index int) (*Track, error) {
	if index < 0 || index >= len(l.tracks) {
		return nil, fmt.Errorf("%w: %d (длина %d)", ErrIndexOutOfRange, index, len(l.tracks))
	}
	return l.tracks[index], nil
}

// IndexOf возвращает позицию первого вхождения трека (сравнение по указателю)
// или NotFound
func (l *List) IndexOf(t *Track) int {
	for i, item := range l.tracks {
		if item == t {
			return i
		}
	}
	return NotFound
}

// Tracks возвращает копию текущего содержимого
func (l *List) Tracks() []*Track {
	result := make([]*Track, len(l.tracks))
	copy(result, l.tracks)
	return result
}
