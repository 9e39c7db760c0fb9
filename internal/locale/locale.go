// Package locale provides the localized strings shown by otpdeck.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Key identifies a localized string.
type Key string

const (
	SettingsAppearance                  Key = "settings_appearance"
	SettingsTheme                       Key = "settings_theme"
	SettingsListStyle                   Key = "settings_list_style"
	SettingsShowNextCode                Key = "settings_show_next_code"
	SettingsShowNextCodeBody            Key = "settings_show_next_code_body"
	SettingsAutoFocusSearch             Key = "settings_auto_focus_search"
	SettingsAutoFocusSearchBody         Key = "settings_auto_focus_search_body"
	SettingsShowBackupNotice            Key = "settings_show_backup_notice"
	SettingsShowBackupNoticeConfirmBody Key = "settings_show_backup_notice_confirm_body"

	ThemeSystem  Key = "theme_system"
	ThemeLight   Key = "theme_light"
	ThemeDark    Key = "theme_dark"
	StyleList    Key = "style_list"
	StyleCompact Key = "style_compact"

	CommonOn      Key = "common_on"
	CommonOff     Key = "common_off"
	CommonCancel  Key = "common_cancel"
	CommonConfirm Key = "common_confirm"

	HelpMove   Key = "help_move"
	HelpSelect Key = "help_select"
	HelpBack   Key = "help_back"
	HelpQuit   Key = "help_quit"
	HelpYes    Key = "help_yes"
	HelpNo     Key = "help_no"
)

var english = map[Key]string{
	SettingsAppearance:                  "Appearance",
	SettingsTheme:                       "Theme",
	SettingsListStyle:                   "Services list style",
	SettingsShowNextCode:                "Show next token",
	SettingsShowNextCodeBody:            "Preview the upcoming code shortly before the current one expires",
	SettingsAutoFocusSearch:             "Auto-focus search",
	SettingsAutoFocusSearchBody:         "Place the cursor in the search field when the token list opens",
	SettingsShowBackupNotice:            "Show backup notice",
	SettingsShowBackupNoticeConfirmBody: "Without the reminder you may forget that your tokens are not backed up. Losing this device would mean losing access to your accounts. Turn the backup notice off?",

	ThemeSystem:  "System default",
	ThemeLight:   "Light",
	ThemeDark:    "Dark",
	StyleList:    "Default",
	StyleCompact: "Compact",

	CommonOn:      "On",
	CommonOff:     "Off",
	CommonCancel:  "Cancel",
	CommonConfirm: "Turn off",

	HelpMove:   "move",
	HelpSelect: "select",
	HelpBack:   "back",
	HelpQuit:   "quit",
	HelpYes:    "yes",
	HelpNo:     "no",
}

var polish = map[Key]string{
	SettingsAppearance:                  "Wygląd",
	SettingsTheme:                       "Motyw",
	SettingsListStyle:                   "Styl listy usług",
	SettingsShowNextCode:                "Pokaż następny token",
	SettingsShowNextCodeBody:            "Wyświetlaj kolejny kod tuż przed wygaśnięciem bieżącego",
	SettingsAutoFocusSearch:             "Automatyczne wyszukiwanie",
	SettingsAutoFocusSearchBody:         "Ustaw kursor w polu wyszukiwania po otwarciu listy tokenów",
	SettingsShowBackupNotice:            "Pokaż przypomnienie o kopii zapasowej",
	SettingsShowBackupNoticeConfirmBody: "Bez przypomnienia możesz zapomnieć, że tokeny nie mają kopii zapasowej. Utrata urządzenia oznaczałaby utratę dostępu do kont. Wyłączyć przypomnienie?",

	ThemeSystem:  "Systemowy",
	ThemeLight:   "Jasny",
	ThemeDark:    "Ciemny",
	StyleList:    "Domyślny",
	StyleCompact: "Kompaktowy",

	CommonOn:      "Wł.",
	CommonOff:     "Wył.",
	CommonCancel:  "Anuluj",
	CommonConfirm: "Wyłącz",

	HelpMove:   "ruch",
	HelpSelect: "wybierz",
	HelpBack:   "wstecz",
	HelpQuit:   "wyjdź",
	HelpYes:    "tak",
	HelpNo:     "nie",
}

var supported = []language.Tag{language.English, language.Polish}

var tables = []map[Key]string{english, polish}

// Strings is a read-only string table.
type Strings struct {
	tag   language.Tag
	table map[Key]string
}

// English returns the default table.
func English() Strings {
	return Strings{tag: language.English, table: english}
}

// For returns the table that best matches the given language preferences,
// for example "pl-PL" or "en_US.UTF-8". Unmatched preferences yield English.
func For(prefs ...string) Strings {
	cleaned := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p = normalize(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return English()
	}
	_, idx, conf := language.NewMatcher(supported).Match(parseTags(cleaned)...)
	if conf == language.No {
		return English()
	}
	return Strings{tag: supported[idx], table: tables[idx]}
}

// FromEnv picks a table from an explicit preference, then LC_ALL,
// LC_MESSAGES and LANG.
func FromEnv(preferred string) Strings {
	return For(preferred, os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

// Tag returns the language of the table.
func (s Strings) Tag() language.Tag { return s.tag }

// Get returns the string for key, falling back to English and then to the
// key itself.
func (s Strings) Get(key Key) string {
	if v, ok := s.table[key]; ok {
		return v
	}
	if v, ok := english[key]; ok {
		return v
	}
	return string(key)
}

func parseTags(prefs []string) []language.Tag {
	tags := make([]language.Tag, 0, len(prefs))
	for _, p := range prefs {
		tag, err := language.Parse(p)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// normalize turns POSIX locale names into BCP 47 tags: "pl_PL.UTF-8" -> "pl-PL".
func normalize(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, ".@"); i >= 0 {
		p = p[:i]
	}
	if p == "C" || p == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(p, "_", "-")
}
