package metadata

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hazadus/go-tunes/internal/track"
)

// Result результат загрузки одного файла
type Result struct {
	Source string
	Track  *track.Track
	Err    error
}

// LoadMany загружает файлы параллельно, не более workers одновременно.
// Результаты возвращаются в порядке sources. Ошибка одного файла
// не прерывает остальные; после отмены ctx новые загрузки не начинаются.
// onDone, если задан, вызывается после каждого файла, по одному за раз.
func (l *Loader) LoadMany(ctx context.Context, sources []string, workers int, onDone func(Result)) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Source: source, Err: err}
			} else {
				t, err := l.Load(source)
				results[i] = Result{Source: source, Track: t, Err: err}
			}

			if onDone != nil {
				mu.Lock()
				onDone(results[i])
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Tracks возвращает успешно загруженные треки в исходном порядке
func Tracks(results []Result) []*track.Track {
	tracks := make([]*track.Track, 0, len(results))
	for _, r := range results {
		if r.Err == nil && r.Track != nil {
			tracks = append(tracks, r.Track)
		}
	}
	return tracks
}
