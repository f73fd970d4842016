package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-tunes/internal/track"
	"github.com/hazadus/go-tunes/internal/tui"
	tuiapp "github.com/hazadus/go-tunes/internal/tui/app"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [files...]",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface showing the given files as a sortable track list.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.launchTUI(args)
		},
	}
}

func (app *Application) launchTUI(sources []string) error {
	key, dir, err := app.Config.Sort()
	if err != nil {
		return err
	}

	ui := tui.NewApp(track.NewList(), app.Loader, tuiapp.Options{
		Sources:   sources,
		SortKey:   key,
		Direction: dir,
	})
	return ui.Run()
}
