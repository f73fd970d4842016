package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tunes",
		Short: "A command line tool to inspect and sort audio tracks",
		Long:  `A command line tool that reads title, artist, album and duration from local audio files and shows them as a sortable track list.`,
		// Ошибки выводит main
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			return app.configure(cfg, os.Stderr)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML configuration file")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createInfoCommand())
	rootCmd.AddCommand(app.createListCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
