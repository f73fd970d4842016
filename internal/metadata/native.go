package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// containerFormat формат контейнера, определенный по сигнатуре
type containerFormat string

const (
	formatMP3  containerFormat = "mp3"
	formatWAV  containerFormat = "wav"
	formatFLAC containerFormat = "flac"
	formatOGG  containerFormat = "ogg"
	formatMP4  containerFormat = "mp4"
)

var errUnsupportedFormat = errors.New("неподдерживаемый формат файла")

// NativeOpener открывает файлы средствами Go: теги читаются через
// dhowden/tag, длительность MP3 и WAV - через beep.
// Для остальных форматов информация о потоках не возвращается.
type NativeOpener struct{}

// Open открывает файл и читает его теги
func (NativeOpener) Open(path string) (Container, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	format, err := sniffFormat(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	c := &nativeContainer{
		file:   file,
		format: format,
		tags:   make(map[string]string),
	}
	c.readTags()
	return c, nil
}

// sniffFormat определяет формат контейнера по первым байтам
func sniffFormat(r io.ReadSeeker) (containerFormat, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	header := make([]byte, 12)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("ошибка чтения заголовка: %w", err)
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, []byte("ID3")):
		return formatMP3, nil
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		return formatMP3, nil
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return formatWAV, nil
	case bytes.HasPrefix(header, []byte("fLaC")):
		return formatFLAC, nil
	case bytes.HasPrefix(header, []byte("OggS")):
		return formatOGG, nil
	case len(header) >= 8 && bytes.Equal(header[4:8], []byte("ftyp")):
		return formatMP4, nil
	}
	return "", errUnsupportedFormat
}

type nativeContainer struct {
	file   *os.File
	format containerFormat
	tags   map[string]string
}

// readTags читает теги. Отсутствие тегов не считается ошибкой.
func (c *nativeContainer) readTags() {
	if _, err := c.file.Seek(0, io.SeekStart); err != nil {
		return
	}

	m, err := tag.ReadFrom(c.file)
	if err != nil {
		return
	}

	for key, value := range map[string]string{
		TagTitle:  m.Title(),
		TagArtist: m.Artist(),
		TagAlbum:  m.Album(),
	} {
		if value != "" {
			c.tags[key] = value
		}
	}
}

func (c *nativeContainer) Tags() map[string]string {
	return c.tags
}

// Streams возвращает единственный аудиопоток для MP3 и WAV.
// Тик равен одному сэмплу, база времени - 1/частота дискретизации.
func (c *nativeContainer) Streams() ([]Stream, error) {
	if c.format != formatMP3 && c.format != formatWAV {
		return nil, nil
	}

	if _, err := c.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// Декодер не должен закрывать файл: им владеет контейнер
	src := nopCloser{c.file}

	var (
		length     int
		sampleRate int
	)
	switch c.format {
	case formatMP3:
		streamer, format, err := mp3.Decode(src)
		if err != nil {
			return nil, fmt.Errorf("ошибка декодирования MP3: %w", err)
		}
		length, sampleRate = streamer.Len(), int(format.SampleRate)
		streamer.Close()
	case formatWAV:
		streamer, format, err := wav.Decode(src)
		if err != nil {
			return nil, fmt.Errorf("ошибка декодирования WAV: %w", err)
		}
		length, sampleRate = streamer.Len(), int(format.SampleRate)
		streamer.Close()
	}

	return []Stream{{
		Index:         0,
		Kind:          MediaAudio,
		Default:       true,
		DurationTicks: int64(length),
		TimeBase:      Rational{Num: 1, Den: int64(sampleRate)},
	}}, nil
}

func (c *nativeContainer) Close() error {
	return c.file.Close()
}

// nopCloser сохраняет io.Seeker, в отличие от io.NopCloser
type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() error { return nil }
