package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/otpdeck/internal/appsettings"
	"github.com/iiroan/otpdeck/internal/config"
	"github.com/iiroan/otpdeck/internal/settings"
	"github.com/iiroan/otpdeck/internal/ui"
)

var appearanceCmd = &cobra.Command{
	Use:   "appearance",
	Short: "Open the appearance settings screen",
	Long: `Open the full-screen appearance settings.

Changes are saved as soon as they are made. Edits to the config file by other
processes show up while the screen is open.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractiveTerminal() {
			return fmt.Errorf("appearance: %w (use 'otpdeck set' instead)", ui.ErrNonInteractive)
		}
		return runAppearance(cmd.Context())
	},
}

func runAppearance(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	store, coordinator, err := openSettings()
	if err != nil {
		return err
	}
	defer coordinator.Close()

	// Stops before the coordinator closes and the log file is restored.
	stopWatch := goUntilStopped(ctx, func(ctx context.Context) {
		watchSettings(ctx, store, coordinator)
	})
	defer stopWatch()

	route := appsettings.NewRoute(coordinator, currentStrings())
	defer route.Close()

	if _, err := tea.NewProgram(route).Run(); err != nil {
		return fmt.Errorf("running settings screen: %w", err)
	}
	return nil
}

// openSettings returns the file store for the active config path and a
// coordinator loaded from it.
func openSettings() (*settings.FileStore, *settings.Coordinator, error) {
	store := settings.NewFileStore(cfgPath)
	coordinator, err := settings.NewCoordinator(lenientStore{FileStore: store, logger: logger}, logger)
	if err != nil {
		return nil, nil, err
	}
	return store, coordinator, nil
}

// lenientStore serves defaults when the stored appearance names an unknown
// theme or list style. The next save rewrites the section.
type lenientStore struct {
	*settings.FileStore
	logger *log.Logger
}

func (s lenientStore) Load() (settings.AppSettings, error) {
	v, err := s.FileStore.Load()
	if errors.Is(err, settings.ErrUnknownTheme) || errors.Is(err, settings.ErrUnknownListStyle) {
		s.logger.Warn("invalid appearance settings, using defaults", "path", s.Path(), "error", err)
		return settings.Defaults(), nil
	}
	return v, err
}

// goUntilStopped runs fn in a goroutine. The returned func cancels fn's
// context and waits for fn to return.
func goUntilStopped(ctx context.Context, fn func(context.Context)) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func watchSettings(ctx context.Context, store *settings.FileStore, coordinator *settings.Coordinator) {
	err := store.Watch(ctx, func() {
		if err := coordinator.Reload(); err != nil {
			logger.Warn("reloading settings", "error", err)
		}
	})
	if err != nil {
		logger.Warn("config watcher stopped", "error", err)
	}
}

// redirectLogs sends log output to the log file while the full-screen UI
// owns the terminal. The returned func restores stderr.
func redirectLogs() (func(), error) {
	path, err := resolveLogPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger.Debug("logging to file", "path", path)
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close() //nolint:errcheck
	}, nil
}

func resolveLogPath() (string, error) {
	if logFile != "" {
		return logFile, nil
	}
	if cfg != nil && cfg.Log.File != "" {
		return cfg.Log.File, nil
	}
	return config.DefaultLogPath()
}
