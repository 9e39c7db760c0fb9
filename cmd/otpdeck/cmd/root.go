package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/otpdeck/internal/config"
	"github.com/iiroan/otpdeck/internal/locale"
	"github.com/iiroan/otpdeck/internal/settings"
	"github.com/iiroan/otpdeck/internal/ui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string
	logFile string
	logger  *log.Logger
	cfg     *config.Config
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "otpdeck",
	Short: "Terminal authenticator settings",
	Long: `otpdeck keeps one-time password tokens in the terminal.

Run without arguments for the interactive menu, or use the subcommands to
inspect and change appearance settings from scripts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() != "version" && cmd.Name() != "help" {
			if err := loadConfig(); err != nil {
				return err
			}
		}

		applyUISettings()
		setupLogger()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && ui.IsInteractiveTerminal() {
			return runRootTUI()
		}
		return cmd.Help()
	},
}

func loadConfig() error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}
	cfgPath = path

	loaded, err := config.Load(path)
	if err == nil {
		err = loaded.Validate()
	}
	if err != nil {
		logger.Warn("could not load config, using defaults", "path", path, "error", err)
		loaded = config.DefaultConfig()
	}
	cfg = loaded
	return nil
}

func runRootTUI() error {
	menuItems := []ui.MenuItem{
		{ID: "appearance", TitleText: "Appearance", Details: "Theme, list style, token preview and reminders"},
		{ID: "show", TitleText: "Show settings", Details: "Print the stored appearance settings"},
		{ID: "about", TitleText: "About", Details: "Version and build information"},
		{ID: "exit", TitleText: "Exit", Details: "Close otpdeck"},
	}

	last := ""
	for {
		choice, err := ui.RunMenu(currentStyles(), "OTPDECK", "Choose an action to continue.", menuItems,
			ui.WithInitialSelectionID(last))
		if err != nil {
			return err
		}
		if choice == ui.MenuActionQuit || choice == "exit" || choice == "" {
			return nil
		}
		last = choice

		if err := runRootChoice(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}

		if choice != "appearance" {
			if err := waitForEnter("Press enter to return to the menu"); err != nil {
				return err
			}
		}
	}
}

func runRootChoice(choice string) error {
	switch choice {
	case "appearance":
		return appearanceCmd.RunE(appearanceCmd, []string{})
	case "show":
		return showCmd.RunE(showCmd, []string{})
	case "about":
		versionCmd.Run(versionCmd, []string{})
		return nil
	default:
		return nil
	}
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(currentStyles().Muted.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}

// Execute runs the root command and logs the error it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger == nil {
			setupLogger()
		}
		logger.Error(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $"+config.EnvConfigPath+" or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file used while the full-screen UI runs")

	rootCmd.AddCommand(appearanceCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(versionCmd)
}

func colorDisabled() bool {
	return noColor || os.Getenv("NO_COLOR") != "" || (cfg != nil && cfg.UI.NoColor)
}

func applyUISettings() {
	ui.ApplyPreferences(ui.Preferences{NoColor: colorDisabled()})
}

// currentStyles resolves the stored theme for output outside the settings
// screen, where the terminal background is not queried.
func currentStyles() ui.Styles {
	theme := settings.ThemeSystem
	if cfg != nil {
		if t, err := settings.ParseTheme(cfg.Appearance.Theme); err == nil {
			theme = t
		}
	}
	return ui.StylesFor(theme, true)
}

func currentPalette() ui.Palette {
	s := settings.Defaults()
	if cfg != nil {
		if t, err := settings.ParseTheme(cfg.Appearance.Theme); err == nil {
			s.SelectedTheme = t
		}
	}
	p := ui.PaletteFor(s.SelectedTheme, true)
	p.Disabled = colorDisabled()
	return p
}

func currentStrings() locale.Strings {
	preferred := ""
	if cfg != nil {
		preferred = cfg.UI.Locale
	}
	return locale.FromEnv(preferred)
}

func logLevel() log.Level {
	if verbose {
		return log.DebugLevel
	}
	if quiet {
		return log.WarnLevel
	}
	if cfg != nil && cfg.Log.Level != "" {
		if level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level)); err == nil {
			return level
		}
	}
	return log.InfoLevel
}

func setupLogger() {
	styles := log.DefaultStyles()
	if !colorDisabled() {
		p := ui.DarkPalette()
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(lipgloss.Color(p.Muted)).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(lipgloss.Color(p.Primary)).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(lipgloss.Color(p.Warning)).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(lipgloss.Color(p.Error)).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           logLevel(),
	})
	logger.SetStyles(styles)
}
