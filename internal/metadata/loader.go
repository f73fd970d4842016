// Package metadata загружает метаданные аудиофайлов: название, исполнителя,
// альбом и длительность
package metadata

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/hazadus/go-tunes/internal/track"
)

// ErrCannotOpen возвращается, если контейнер не удалось открыть
var ErrCannotOpen = errors.New("не удалось открыть контейнер")

// Loader создает треки из аудиофайлов
type Loader struct {
	opener Opener
	logger *slog.Logger
}

// NewLoader создает загрузчик поверх указанного способа открытия контейнеров
func NewLoader(opener Opener, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{
		opener: opener,
		logger: logger,
	}
}

// Load открывает файл и создает трек.
// Если контейнер не открывается, возвращается ошибка ErrCannotOpen.
// Если длительность определить нельзя, трек создается с длительностью 0.
func (l *Loader) Load(source string) (*track.Track, error) {
	path, err := LocalPath(source)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCannotOpen, source, err)
	}

	container, err := l.opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCannotOpen, source, err)
	}
	defer func() {
		if cerr := container.Close(); cerr != nil {
			l.logger.Warn("ошибка закрытия контейнера", "source", source, "error", cerr)
		}
	}()

	tags := container.Tags()
	title := tags[TagTitle]
	if title == "" {
		title = track.TitleFromSource(path)
	}

	duration := l.duration(container, source)

	l.logger.Debug("трек загружен",
		"source", source,
		"title", title,
		"duration", duration)

	return track.New(source, title, tags[TagArtist], tags[TagAlbum], duration), nil
}

// duration вычисляет длительность лучшего аудиопотока в секундах
func (l *Loader) duration(container Container, source string) float64 {
	streams, err := container.Streams()
	if err != nil {
		l.logger.Debug("не удалось прочитать потоки", "source", source, "error", err)
		return 0
	}

	idx := findBestAudioStream(streams)
	if idx < 0 {
		l.logger.Debug("аудиопоток не найден", "source", source, "streams", len(streams))
		return 0
	}

	stream := streams[idx]
	l.logger.Debug("выбран аудиопоток",
		"source", source,
		"stream", stream.Index,
		"time_base", stream.TimeBase.String())
	return stream.Seconds()
}

// LocalPath превращает ссылку на файл в локальный путь.
// Поддерживаются обычные пути и URI со схемой file.
func LocalPath(source string) (string, error) {
	if !strings.Contains(source, "://") {
		return source, nil
	}

	u, err := url.Parse(source)
	if err != nil {
		return "", fmt.Errorf("неверный URI: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("поддерживаются только локальные файлы, получена схема %q", u.Scheme)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("файл на удаленном хосте %q не поддерживается", u.Host)
	}
	return u.Path, nil
}
