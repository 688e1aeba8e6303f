package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eraisubs/internal/adapters/cookiejar"
	"eraisubs/internal/adapters/filesystem"
	"eraisubs/internal/adapters/fzf"
	"eraisubs/internal/adapters/httpsession"
	"eraisubs/internal/adapters/sqlite"
	"eraisubs/internal/adapters/tui"
	"eraisubs/internal/application"
	"eraisubs/internal/application/commands"
	"eraisubs/internal/config"
	"eraisubs/internal/ports"
)

var (
	destDir       string
	useFavorites  bool
	removeMode    bool
	latest        bool
	year          int
	cookieFile    string
	cookieString  string
	verbose       bool
	pickerName    string
	favoritesFile string

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "eraisubs",
	Short: "Browse and download subtitles from erai-raws",
	Long: `eraisubs browses the erai-raws subtitle listing through an interactive
picker. Picking a directory opens it, picking files downloads them, and
confirming an empty pick exits.

Cookies from a logged-in browser session are required. Pass a browser
cookie database or Netscape cookie file with --cookie-file, or a raw
"name=value; name2=value2" string with --cookie. Both are remembered.

Examples:
  eraisubs --cookie-file ~/.mozilla/firefox/xyz.default/cookies.sqlite
  eraisubs --latest -d ~/subs
  eraisubs --year 2019
  eraisubs --favorites`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.InfoLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
	RunE: runBrowse,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&destDir, "dir", "d", ".", "directory to save downloads in")
	flags.BoolVarP(&useFavorites, "favorites", "f", false, "start from a favorite directory")
	flags.BoolVarP(&removeMode, "remove", "r", false, "remove favorites and exit")
	flags.BoolVarP(&latest, "latest", "l", false, "start at the current season")
	flags.IntVarP(&year, "year", "y", 0, "start at the given year")
	flags.StringVarP(&cookieFile, "cookie-file", "C", "", "browser cookie database or Netscape cookie file")
	flags.StringVarP(&cookieString, "cookie", "c", "", `raw cookie string, "name=value; name2=value2"`)
	flags.StringVar(&pickerName, "picker", "fzf", "picker to use: fzf or builtin")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each listing before it is fetched")
	rootCmd.PersistentFlags().StringVar(&favoritesFile, "favorites-file", config.FavoritesPath(), "favorites file")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	baseURL := config.BaseURL()
	favorites := filesystem.NewFavoritesRepository(favoritesFile)

	picker, err := newPicker(favorites)
	if err != nil {
		return err
	}

	if removeMode {
		result, err := commands.NewRemoveFavoritesCommand(favorites, picker).Execute(ctx)
		if err != nil {
			return err
		}
		if len(result.Removed) > 0 {
			fmt.Println(result.Message)
		}
		return nil
	}

	var startURL string
	if useFavorites {
		result, err := commands.NewPickFavoriteCommand(favorites, picker, baseURL).Execute(ctx)
		if err != nil {
			return err
		}
		if result.Cancelled {
			return nil
		}
		startURL = result.URL
	} else {
		startURL, err = commands.StartURL(commands.StartOptions{
			BaseURL: baseURL,
			Year:    year,
			Latest:  latest,
		})
		if err != nil {
			return err
		}
	}

	session, err := newSession(baseURL)
	if err != nil {
		return err
	}

	browse := commands.NewBrowseCommand(session, picker, baseURL, startURL, destDir, cmd.OutOrStdout(), logger)
	result, err := browse.Execute(ctx)
	if err != nil {
		return err
	}
	logger.Info().Strs("files", result.Downloaded).Int("listings", result.Visited).Msg(result.Message)
	return nil
}

// newSession merges the cookie flags into the stored settings, persists
// them when given, and builds the authenticated session
func newSession(baseURL string) (*httpsession.Session, error) {
	settingsPath := config.SettingsPath()
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	if settings.Merge(cookieFile, cookieString) {
		if err := config.SaveSettings(settingsPath, settings); err != nil {
			return nil, err
		}
		logger.Info().Str("path", settingsPath).Msg("saved cookie settings")
	}

	loader := application.NewCookieLoader(sqlite.NewCookieStore(), cookiejar.NewReader(), logger)
	cookies, err := loader.Load(settings.CookieFile, settings.CookieString, config.CookieDomain(baseURL))
	if err != nil {
		return nil, err
	}
	logger.Info().Stringer("source", cookies.Source).Int("cookies", len(cookies.Cookies)).Msg("loaded cookies")

	return httpsession.New(cookies, httpsession.WithLogger(logger))
}

// newPicker returns the fzf picker, or the built-in one when requested or
// when fzf is not installed
func newPicker(favorites ports.FavoritesRepository) (ports.Picker, error) {
	switch pickerName {
	case "builtin":
		return tui.NewPicker(favorites, tui.WithHeader(builtinHeader)), nil
	case "fzf":
	default:
		return nil, fmt.Errorf("unknown picker %q (want fzf or builtin)", pickerName)
	}

	picker := fzf.NewPicker(fzf.WithFavoriteAction(favoriteAction()))
	if !picker.Available() {
		logger.Warn().Msg("fzf not found in PATH, using the built-in picker")
		return tui.NewPicker(favorites, tui.WithHeader(builtinHeader)), nil
	}
	return picker, nil
}

const builtinHeader = "ctrl-f add to favorites | ctrl-a select-all | f1 help"

// favoriteAction is the shell command fzf runs on ctrl-f. It calls this
// executable so the entry is appended exactly like "favorites add".
func favoriteAction() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s favorites add --favorites-file %s -- {2..}",
		fzf.ShellQuote(exe), fzf.ShellQuote(favoritesFile))
}
