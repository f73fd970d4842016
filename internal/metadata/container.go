package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

// Ключи тегов, которые читает загрузчик. Сравнение регистрозависимое.
const (
	TagTitle  = "title"
	TagArtist = "artist"
	TagAlbum  = "album"
)

// Opener открывает контейнер аудиофайла для чтения метаданных.
// Каждый вызов возвращает независимый дескриптор.
type Opener interface {
	Open(path string) (Container, error)
}

// Container открытый контейнер: теги и информация о потоках
type Container interface {
	// Tags возвращает теги контейнера
	Tags() map[string]string
	// Streams возвращает описание потоков контейнера
	Streams() ([]Stream, error)
	// Close освобождает дескриптор
	Close() error
}

// MediaKind тип потока
type MediaKind string

// Типы потоков
const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
	MediaOther MediaKind = "other"
)

// Stream описывает один поток контейнера
type Stream struct {
	Index         int
	Kind          MediaKind
	Default       bool     // Поток помечен как основной
	DurationTicks int64    // Длительность в единицах TimeBase, <= 0 если неизвестна
	TimeBase      Rational // Длительность одного тика в секундах
}

// Seconds переводит длительность потока в секунды
func (s Stream) Seconds() float64 {
	if s.DurationTicks <= 0 || !s.TimeBase.Valid() {
		return 0
	}
	return float64(s.DurationTicks) * s.TimeBase.Float64()
}

// Rational рациональное число Num/Den
type Rational struct {
	Num int64
	Den int64
}

// Valid сообщает, задает ли дробь положительную величину
func (r Rational) Valid() bool {
	return r.Num > 0 && r.Den > 0
}

// Float64 возвращает значение дроби
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// ParseRational разбирает строку вида "1/44100"
func ParseRational(s string) (Rational, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Rational{}, fmt.Errorf("неверный формат дроби: %q", s)
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("неверный числитель %q: %w", s, err)
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("неверный знаменатель %q: %w", s, err)
	}
	return Rational{Num: n, Den: d}, nil
}

// findBestAudioStream возвращает индекс в срезе лучшего аудиопотока:
// первого основного, иначе первого аудиопотока. -1 если аудио нет.
func findBestAudioStream(streams []Stream) int {
	best := -1
	for i, s := range streams {
		if s.Kind != MediaAudio {
			continue
		}
		if s.Default {
			return i
		}
		if best < 0 {
			best = i
		}
	}
	return best
}
