// Package track содержит сущность трека и наблюдаемый сортируемый список треков
package track

import (
	"math"
	"path/filepath"
	"strings"
	"time"
)

// Track хранит метаданные одного аудиофайла.
// После создания трек не изменяется.
type Track struct {
	source   string
	title    string
	artist   string
	album    string
	duration float64 // Длительность в секундах
}

// New создает трек. Пустое название заменяется именем файла,
// отрицательная или неопределенная длительность приводится к нулю.
func New(source, title, artist, album string, duration float64) *Track {
	if title == "" {
		title = TitleFromSource(source)
	}
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		duration = 0
	}
	return &Track{
		source:   source,
		title:    title,
		artist:   artist,
		album:    album,
		duration: duration,
	}
}

// Source возвращает ссылку на исходный файл (путь или URI)
func (t *Track) Source() string { return t.source }

// Filename синоним Source
func (t *Track) Filename() string { return t.source }

// Title возвращает название трека, никогда не пустое
func (t *Track) Title() string { return t.title }

// Artist возвращает исполнителя или пустую строку
func (t *Track) Artist() string { return t.artist }

// Singer синоним Artist
func (t *Track) Singer() string { return t.artist }

// Album возвращает альбом или пустую строку
func (t *Track) Album() string { return t.album }

// Duration возвращает длительность в секундах
func (t *Track) Duration() float64 { return t.duration }

// Length возвращает длительность как time.Duration
func (t *Track) Length() time.Duration {
	return time.Duration(t.duration * float64(time.Second))
}

// TitleFromSource получает название из имени файла: без каталога и расширения.
// Если имя пустое, возвращается исходная строка.
func TitleFromSource(source string) string {
	name := filepath.Base(strings.TrimRight(source, "/"))
	// У скрытого файла без расширения, например .hidden, имя целиком
	if stem := strings.TrimSuffix(name, filepath.Ext(name)); stem != "" {
		name = stem
	}
	if name == "." || name == "/" {
		if source != "" {
			return source
		}
		return "?"
	}
	return name
}
