package track

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey определяет поле, по которому сортируется список
type SortKey int

// Ключи сортировки
const (
	ByTitle SortKey = iota
	ByDuration
	BySinger
	ByAlbum
)

func (k SortKey) String() string {
	switch k {
	case ByTitle:
		return "title"
	case ByDuration:
		return "duration"
	case BySinger:
		return "singer"
	case ByAlbum:
		return "album"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// ParseSortKey разбирает имя ключа сортировки. "artist" - синоним "singer".
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return ByTitle, nil
	case "duration", "length":
		return ByDuration, nil
	case "singer", "artist":
		return BySinger, nil
	case "album":
		return ByAlbum, nil
	}
	return 0, fmt.Errorf("неизвестный ключ сортировки: %q", s)
}

// Direction направление сортировки
type Direction int

// Направления сортировки
const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection разбирает направление сортировки
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return 0, fmt.Errorf("неизвестное направление сортировки: %q", s)
}

// compareBy возвращает функцию сравнения для ключа в порядке возрастания.
// Строки сравниваются побайтно, длительность - численно.
func compareBy(key SortKey) func(a, b *Track) int {
	switch key {
	case ByDuration:
		return func(a, b *Track) int { return cmp.Compare(a.duration, b.duration) }
	case BySinger:
		return func(a, b *Track) int { return strings.Compare(a.artist, b.artist) }
	case ByAlbum:
		return func(a, b *Track) int { return strings.Compare(a.album, b.album) }
	default:
		return func(a, b *Track) int { return strings.Compare(a.title, b.title) }
	}
}

// Sort упорядочивает список на месте. Сортировка устойчивая:
// равные элементы сохраняют взаимный порядок.
// Наблюдатели получают одно уведомление после сортировки.
func (l *List) Sort(key SortKey, dir Direction) {
	compare := compareBy(key)
	if dir == Descending {
		asc := compare
		compare = func(a, b *Track) int { return asc(b, a) }
	}
	slices.SortStableFunc(l.tracks, compare)
	l.notify(Sorted)
}
