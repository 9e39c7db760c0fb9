package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/otpdeck/internal/appsettings"
	"github.com/iiroan/otpdeck/internal/config"
	"github.com/iiroan/otpdeck/internal/locale"
	"github.com/iiroan/otpdeck/internal/settings"
	"github.com/iiroan/otpdeck/internal/ui"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored appearance settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := lenientStore{FileStore: settings.NewFileStore(cfgPath), logger: logger}.Load()
		if err != nil {
			return err
		}
		return writeSettings(os.Stdout, showOutput, snapshot)
	},
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "text", "Output format: text or yaml")
}

func writeSettings(w io.Writer, format string, snapshot settings.AppSettings) error {
	switch strings.ToLower(format) {
	case "", "text":
		_, err := fmt.Fprintln(w, renderSettings(currentStyles(), currentStrings(), snapshot, cfgPath))
		return err
	case "yaml":
		out := struct {
			Appearance config.AppearanceConfig `yaml:"appearance"`
		}{settings.ToConfig(snapshot)}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding settings: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
}

func renderSettings(s ui.Styles, strs locale.Strings, snapshot settings.AppSettings, path string) string {
	onOff := func(v bool) string {
		if v {
			return s.SwitchOn.Render("● " + strs.Get(locale.CommonOn))
		}
		return s.SwitchOff.Render("○ " + strs.Get(locale.CommonOff))
	}

	rows := [][2]string{
		{strs.Get(locale.SettingsTheme), s.Primary.Render(appsettings.ThemeLabel(strs, snapshot.SelectedTheme))},
		{strs.Get(locale.SettingsListStyle), s.Primary.Render(appsettings.ListStyleLabel(strs, snapshot.ListStyle))},
		{strs.Get(locale.SettingsShowNextCode), onOff(snapshot.ShowNextCode)},
		{strs.Get(locale.SettingsAutoFocusSearch), onOff(snapshot.AutoFocusSearch)},
		{strs.Get(locale.SettingsShowBackupNotice), onOff(snapshot.ShowBackupNotice)},
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(r[0]))
		lines = append(lines, s.Bold.Render(r[0])+pad+"  "+r[1])
	}

	parts := []string{ui.Header(s, strings.ToUpper(strs.Get(locale.SettingsAppearance))), "", strings.Join(lines, "\n")}
	if path != "" {
		parts = append(parts, "", s.Muted.Render("config: "+path))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
