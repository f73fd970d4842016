package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-tunes/internal/metadata"
	"github.com/hazadus/go-tunes/internal/track"
	"github.com/hazadus/go-tunes/internal/utils"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

// listOptions флаги команды list
type listOptions struct {
	sortKey string
	desc    bool
	format  string
}

// trackRecord представление трека для YAML вывода
type trackRecord struct {
	Title    string  `yaml:"title"`
	Artist   string  `yaml:"artist,omitempty"`
	Album    string  `yaml:"album,omitempty"`
	Duration float64 `yaml:"duration"`
	Source   string  `yaml:"source"`
}

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand(ctx context.Context) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "Load audio files and print them as a sorted track list",
		Long:  `Load metadata of the given audio files concurrently and print the sorted track list. Files that cannot be opened are reported and skipped.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.listTracks(ctx, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sortKey, "sort", "s", "", "sort key: title, duration, singer or album (default from config)")
	cmd.Flags().BoolVarP(&opts.desc, "desc", "d", false, "sort in descending order")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table or yaml")

	return cmd
}

// sortOrder возвращает сортировку из флагов, а при их отсутствии из конфигурации
func (app *Application) sortOrder(opts *listOptions) (track.SortKey, track.Direction, error) {
	key, dir, err := app.Config.Sort()
	if err != nil {
		return key, dir, err
	}

	if opts.sortKey != "" {
		if key, err = track.ParseSortKey(opts.sortKey); err != nil {
			return key, dir, err
		}
	}
	if opts.desc {
		dir = track.Descending
	}
	return key, dir, nil
}

// loadTracks загружает файлы в список, пропуская те, что не удалось открыть
func (app *Application) loadTracks(ctx context.Context, sources []string) (*track.List, error) {
	bar := progressbar.NewOptions(
		len(sources),
		progressbar.OptionSetWriter(app.Progress),
		progressbar.OptionSetDescription("Loading tracks..."),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionShowCount(),
		progressbar.OptionFullWidth(),
		progressbar.OptionClearOnFinish(),
	)

	results := app.Loader.LoadMany(ctx, sources, app.Config.Workers, func(metadata.Result) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(app.Progress, "⚠️  Пропущен файл %s: %v\n", r.Source, r.Err)
			app.Logger.Warn("файл не загружен", "source", r.Source, "error", r.Err)
		}
	}

	tracks := track.NewList()
	tracks.ReplaceAll(metadata.Tracks(results))
	return tracks, nil
}

func (app *Application) listTracks(ctx context.Context, sources []string, opts *listOptions) error {
	if opts.format != formatTable && opts.format != formatYAML {
		return fmt.Errorf("неизвестный формат вывода %q: ожидается %s или %s", opts.format, formatTable, formatYAML)
	}

	key, dir, err := app.sortOrder(opts)
	if err != nil {
		return err
	}

	tracks, err := app.loadTracks(ctx, sources)
	if err != nil {
		return err
	}
	tracks.Sort(key, dir)

	if opts.format == formatYAML {
		return printYAML(tracks)
	}
	printTable(tracks, key, dir)
	return nil
}

func printTable(tracks *track.List, key track.SortKey, dir track.Direction) {
	if tracks.Count() == 0 {
		fmt.Println("📚 Нет треков для отображения.")
		return
	}

	fmt.Printf("📚 Найдено треков: %d (сортировка: %s %s)\n\n", tracks.Count(), key, dir)

	// Выводим заголовок таблицы
	fmt.Printf("%-4s %-30s %-30s %-20s %-10s\n",
		"#", "Исполнитель", "Название", "Альбом", "Длительность")
	fmt.Println(strings.Repeat("-", 100))

	for i, t := range tracks.Tracks() {
		// Обрезаем длинные строки для красивого отображения
		artist := utils.TruncateString(t.Artist(), 28)
		title := utils.TruncateString(t.Title(), 28)
		album := utils.TruncateString(t.Album(), 18)

		fmt.Printf("%-4d %-30s %-30s %-20s %-10s\n",
			i+1, artist, title, album, utils.FormatDuration(t.Length()))
	}
}

func printYAML(tracks *track.List) error {
	records := make([]trackRecord, 0, tracks.Count())
	for _, t := range tracks.Tracks() {
		records = append(records, trackRecord{
			Title:    t.Title(),
			Artist:   t.Artist(),
			Album:    t.Album(),
			Duration: t.Duration(),
			Source:   t.Source(),
		})
	}

	out, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("ошибка сериализации списка: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
