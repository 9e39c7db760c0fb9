package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/otpdeck/internal/appsettings"
	"github.com/iiroan/otpdeck/internal/locale"
	"github.com/iiroan/otpdeck/internal/settings"
	"github.com/iiroan/otpdeck/internal/ui"
)

var (
	// ErrUnknownField is returned for a field name set does not know.
	ErrUnknownField = errors.New("unknown setting")
	// ErrConfirmationRequired is returned when turning the backup notice off
	// without a confirmation.
	ErrConfirmationRequired = errors.New("confirmation required")
	// ErrInvalidSwitch is returned for an on/off value that cannot be parsed.
	ErrInvalidSwitch = errors.New("expected on or off")
	// ErrValueRequired is returned when no value is given and none can be prompted for.
	ErrValueRequired = errors.New("value required")
	// ErrNotSaved is returned when the coordinator kept the previous snapshot.
	ErrNotSaved = errors.New("settings were not saved")
)

const (
	fieldTheme        = "theme"
	fieldListStyle    = "list-style"
	fieldNextCode     = "next-code"
	fieldAutoFocus    = "auto-focus"
	fieldBackupNotice = "backup-notice"
)

var setFields = []string{fieldTheme, fieldListStyle, fieldNextCode, fieldAutoFocus, fieldBackupNotice}

var assumeYes bool

var setCmd = &cobra.Command{
	Use:   "set <field> [value]",
	Short: "Change one appearance setting",
	Long: `Change one appearance setting.

Fields:
  theme          SYSTEM, LIGHT or DARK
  list-style     LIST or COMPACT
  next-code      on or off
  auto-focus     on or off
  backup-notice  on or off (turning it off asks for confirmation)

Without a value, an interactive terminal prompts for one.`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: setFields,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, coordinator, err := openSettings()
		if err != nil {
			return err
		}
		defer coordinator.Close()

		req := setRequest{field: args[0]}
		if len(args) == 2 {
			req.value = args[1]
			req.hasValue = true
		}

		strs := currentStrings()
		interactive := ui.IsInteractiveTerminal()
		opts := setOptions{yes: assumeYes}
		if interactive {
			theme := ui.HuhTheme(currentPalette())
			opts.prompt = func(field string, current settings.AppSettings) (string, error) {
				return promptValue(theme, strs, field, current)
			}
			opts.confirm = func() (bool, error) {
				return confirmDisableBackupNotice(theme, strs)
			}
		}

		if err := applySet(coordinator, req, opts); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				logger.Info("cancelled, nothing changed")
				return nil
			}
			return err
		}
		logger.Info("setting updated", "field", req.field, "path", cfgPath)
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}

type setRequest struct {
	field    string
	value    string
	hasValue bool
}

// setOptions carries the interactive hooks. A nil prompt or confirm means
// the terminal cannot ask.
type setOptions struct {
	yes     bool
	prompt  func(field string, current settings.AppSettings) (string, error)
	confirm func() (bool, error)
}

// applySet validates req against the current snapshot and fires the matching
// intent. Switch values equal to the current state are a no-op.
func applySet(c appsettings.Coordinator, req setRequest, opts setOptions) error {
	field := strings.ToLower(strings.TrimSpace(req.field))
	if !isSetField(field) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownField, req.field, strings.Join(setFields, ", "))
	}

	current := c.Snapshot()
	value := req.value
	if !req.hasValue {
		if opts.prompt == nil {
			return fmt.Errorf("%s: %w", field, ErrValueRequired)
		}
		var err error
		value, err = opts.prompt(field, current)
		if err != nil {
			return err
		}
	}

	var want settings.AppSettings
	switch field {
	case fieldTheme:
		t, err := settings.ParseTheme(value)
		if err != nil {
			return err
		}
		want = current.WithSelectedTheme(t)
		c.SetSelectedTheme(t)
	case fieldListStyle:
		v, err := settings.ParseListStyle(value)
		if err != nil {
			return err
		}
		want = current.WithListStyle(v)
		c.SetListStyle(v)
	case fieldNextCode:
		on, err := parseSwitch(value)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		want = current.WithShowNextCode(on)
		if on != current.ShowNextCode {
			c.ToggleShowNextCode()
		}
	case fieldAutoFocus:
		on, err := parseSwitch(value)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		want = current.WithAutoFocusSearch(on)
		if on != current.AutoFocusSearch {
			c.ToggleAutoFocusSearch()
		}
	case fieldBackupNotice:
		on, err := parseSwitch(value)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		want = current.WithShowBackupNotice(on)
		if on == current.ShowBackupNotice {
			break
		}
		if !on && !opts.yes {
			if opts.confirm == nil {
				return fmt.Errorf("turning %s off: %w (pass --yes)", field, ErrConfirmationRequired)
			}
			ok, err := opts.confirm()
			if err != nil {
				return err
			}
			if !ok {
				return huh.ErrUserAborted
			}
		}
		c.ToggleShowBackupNotice()
	}

	if c.Snapshot() != want {
		return fmt.Errorf("%s: %w", field, ErrNotSaved)
	}
	return nil
}

func isSetField(field string) bool {
	for _, f := range setFields {
		if f == field {
			return true
		}
	}
	return false
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w, got %q", ErrInvalidSwitch, s)
}

func switchValue(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func promptValue(theme *huh.Theme, strs locale.Strings, field string, current settings.AppSettings) (string, error) {
	var (
		title   string
		value   string
		options []huh.Option[string]
	)

	switch field {
	case fieldTheme:
		title = strs.Get(locale.SettingsTheme)
		value = current.SelectedTheme.String()
		for _, t := range settings.AllThemes() {
			options = append(options, huh.NewOption(appsettings.ThemeLabel(strs, t), t.String()))
		}
	case fieldListStyle:
		title = strs.Get(locale.SettingsListStyle)
		value = current.ListStyle.String()
		for _, v := range settings.AllListStyles() {
			options = append(options, huh.NewOption(appsettings.ListStyleLabel(strs, v), v.String()))
		}
	default:
		var on bool
		switch field {
		case fieldNextCode:
			title, on = strs.Get(locale.SettingsShowNextCode), current.ShowNextCode
		case fieldAutoFocus:
			title, on = strs.Get(locale.SettingsAutoFocusSearch), current.AutoFocusSearch
		default:
			title, on = strs.Get(locale.SettingsShowBackupNotice), current.ShowBackupNotice
		}
		value = switchValue(on)
		options = []huh.Option[string]{
			huh.NewOption(strs.Get(locale.CommonOn), "on"),
			huh.NewOption(strs.Get(locale.CommonOff), "off"),
		}
	}

	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&value).
		WithTheme(theme).
		Run()
	if err != nil {
		return "", err
	}
	return value, nil
}

func confirmDisableBackupNotice(theme *huh.Theme, strs locale.Strings) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(strs.Get(locale.SettingsShowBackupNotice)).
		Description(strs.Get(locale.SettingsShowBackupNoticeConfirmBody)).
		Affirmative(strs.Get(locale.CommonConfirm)).
		Negative(strs.Get(locale.CommonCancel)).
		Value(&ok).
		WithTheme(theme).
		Run()
	return ok, err
}
