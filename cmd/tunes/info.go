package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tunes/internal/metadata"
	"github.com/hazadus/go-tunes/internal/track"
	"github.com/hazadus/go-tunes/internal/utils"
)

// createInfoCommand создает команду info с привязкой к экземпляру приложения
func (app *Application) createInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Show metadata of an audio file",
		Long:  `Read tags and duration of a single audio file and print them.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.showInfo(args[0])
		},
	}
}

func (app *Application) showInfo(source string) error {
	t, err := app.Loader.Load(source)
	if err != nil {
		return err
	}

	printTrack(t)

	// Размер выводится, только если его удалось определить
	if path, err := metadata.LocalPath(source); err == nil {
		if stat, err := os.Stat(path); err == nil {
			fmt.Printf("   Размер: %s\n", utils.FormatFileSize(stat.Size()))
		}
	}
	return nil
}

func printTrack(t *track.Track) {
	fmt.Printf("🎵 %s\n", t.Title())
	fmt.Printf("   Исполнитель: %s\n", valueOrDash(t.Artist()))
	fmt.Printf("   Альбом: %s\n", valueOrDash(t.Album()))
	fmt.Printf("   Продолжительность: %s\n", utils.FormatDuration(t.Length()))
	fmt.Printf("   Файл: %s\n", t.Source())
}

func valueOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
