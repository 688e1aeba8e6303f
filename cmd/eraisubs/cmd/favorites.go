package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"eraisubs/internal/adapters/filesystem"
	"eraisubs/internal/application/commands"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite directories",
	Long: `List or add favorite directories without opening the picker.

Examples:
  eraisubs favorites list
  eraisubs favorites add "Sub/2024/Winter/Show Name"`,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the favorites, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		repo := filesystem.NewFavoritesRepository(favoritesFile)
		favorites, err := commands.NewListFavoritesCommand(repo).Execute(ctx)
		if err != nil {
			return err
		}

		for _, f := range favorites {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Append a directory path to the favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		repo := filesystem.NewFavoritesRepository(favoritesFile)
		msg, err := commands.NewAddFavoriteCommand(repo, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		logger.Info().Str("path", repo.Path()).Msg(msg)
		return nil
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	rootCmd.AddCommand(favoritesCmd)
}
