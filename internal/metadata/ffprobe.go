package metadata

import (
	"fmt"
	"strings"

	simplejson "github.com/bitly/go-simplejson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FFprobeOpener открывает файлы через ffprobe (нужен в PATH).
// Поддерживает все форматы, которые понимает ffmpeg.
type FFprobeOpener struct{}

// Open запускает ffprobe и разбирает его JSON-вывод
func (FFprobeOpener) Open(path string) (Container, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка ffprobe: %w", err)
	}
	return parseProbeOutput([]byte(out))
}

// probeContainer результат ffprobe. Процесс уже завершен,
// поэтому закрывать нечего.
type probeContainer struct {
	doc  *simplejson.Json
	tags map[string]string
}

// parseProbeOutput разбирает вывод ffprobe -show_format -show_streams -of json
func parseProbeOutput(data []byte) (*probeContainer, error) {
	doc, err := simplejson.NewJson(data)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора вывода ffprobe: %w", err)
	}
	if _, ok := doc.CheckGet("format"); !ok {
		return nil, fmt.Errorf("в выводе ffprobe нет описания формата")
	}

	tags := make(map[string]string)
	raw, _ := doc.GetPath("format", "tags").Map()
	for key, value := range raw {
		if s, ok := value.(string); ok {
			tags[key] = s
		}
	}

	return &probeContainer{doc: doc, tags: tags}, nil
}

func (c *probeContainer) Tags() map[string]string {
	return c.tags
}

func (c *probeContainer) Streams() ([]Stream, error) {
	items, err := c.doc.Get("streams").Array()
	if err != nil {
		return nil, fmt.Errorf("в выводе ffprobe нет потоков: %w", err)
	}

	streams := make([]Stream, 0, len(items))
	for i := range items {
		item := c.doc.Get("streams").GetIndex(i)

		s := Stream{
			Index:         item.Get("index").MustInt(i),
			Kind:          mediaKind(item.Get("codec_type").MustString()),
			Default:       item.GetPath("disposition", "default").MustInt() == 1,
			DurationTicks: -1,
		}
		if ticks, err := item.Get("duration_ts").Int64(); err == nil {
			s.DurationTicks = ticks
		}
		if tb, err := ParseRational(item.Get("time_base").MustString()); err == nil {
			s.TimeBase = tb
		}
		streams = append(streams, s)
	}
	return streams, nil
}

func (c *probeContainer) Close() error {
	return nil
}

func mediaKind(codecType string) MediaKind {
	switch strings.ToLower(codecType) {
	case "audio":
		return MediaAudio
	case "video":
		return MediaVideo
	default:
		return MediaOther
	}
}
