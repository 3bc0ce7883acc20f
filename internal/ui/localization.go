package ui

import "github.com/homeboard/homeboard/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage model.Language
	texts           map[model.Language]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyProjects            = "projects"
	KeyNewProject          = "new_project"
	KeyCreateProject       = "create_project"
	KeyEditProject         = "edit_project"
	KeyDeleteProject       = "delete_project"
	KeyDeleteProjectAsk    = "delete_project_ask"
	KeyProjectName         = "project_name"
	KeyDescription         = "description"
	KeyIPAddress           = "ip_address"
	KeyGateway             = "gateway"
	KeyInterface           = "interface"
	KeySearch              = "search"
	KeyPin                 = "pin"
	KeyUnpin               = "unpin"
	KeySortAZ              = "sort_az"
	KeySortZA              = "sort_za"
	KeySelectProject       = "select_project"
	KeyShortcuts           = "shortcuts"
	KeyAddShortcut         = "add_shortcut"
	KeyEditShortcut        = "edit_shortcut"
	KeyRemoveShortcut      = "remove_shortcut"
	KeyRemoveShortcutAsk   = "remove_shortcut_ask"
	KeyNoProjects          = "no_projects"
	KeyAddGlobalShortcut   = "add_global_shortcut"
	KeyEditGlobalShortcut  = "edit_global_shortcut"
	KeyShortcutName        = "shortcut_name"
	KeyFile                = "file"
	KeyFolder              = "folder"
	KeyURL                 = "url"
	KeyPath                = "path"
	KeyBrowse              = "browse"
	KeyOpenFailed          = "open_failed"
	KeyMoveLeft            = "move_left"
	KeyMoveRight           = "move_right"
	KeyNotes               = "notes"
	KeyNotesPreview        = "notes_preview"
	KeyNotesEdit           = "notes_edit"
	KeyNotesExportMD       = "notes_export_md"
	KeyNotesExportHTML     = "notes_export_html"
	KeyCalendar            = "calendar"
	KeyMemo                = "memo"
	KeyToday               = "today"
	KeySettings            = "settings"
	KeyGeneral             = "general"
	KeyData                = "data"
	KeyNetwork             = "network"
	KeyTheme               = "theme"
	KeyThemeLight          = "theme_light"
	KeyThemeDark           = "theme_dark"
	KeyLanguage            = "language"
	KeyExport              = "export"
	KeyImport              = "import"
	KeyImportWarning       = "import_warning"
	KeyImportDone          = "import_done"
	KeyImportFailed        = "import_failed"
	KeyApplyNetwork        = "apply_network"
	KeyApplyingNetwork     = "applying_network"
	KeyNetworkApplied      = "network_applied"
	KeyNetworkApplyFailed  = "network_apply_failed"
	KeyInvalidIP           = "invalid_ip"
	KeyGoogleCalendar      = "google_calendar"
	KeyGoogleConfigured    = "google_configured"
	KeyGoogleMissing       = "google_not_configured"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyCreate              = "create"
	KeyDelete              = "delete"
	KeyClose               = "close"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: model.LanguageEnglish,
		texts:           make(map[model.Language]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang model.Language) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[model.LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() model.Language {
	return l.currentLanguage
}

// Languages returns the supported languages in display order.
func (l *Localization) Languages() []model.Language {
	return []model.Language{model.LanguageEnglish, model.LanguageJapanese}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[model.LanguageEnglish] = map[string]string{
		KeyAppTitle:           "Home Board",
		KeyProjects:           "Projects",
		KeyNewProject:         "New Project",
		KeyCreateProject:      "Create New Project",
		KeyEditProject:        "Edit Project",
		KeyDeleteProject:      "Delete Project",
		KeyDeleteProjectAsk:   "Are you sure you want to delete this project?",
		KeyProjectName:        "Project Name",
		KeyDescription:        "Description (Optional)",
		KeyIPAddress:          "IP Address (Optional)",
		KeyGateway:            "Gateway (Optional)",
		KeyInterface:          "Interface",
		KeySearch:             "Search...",
		KeyPin:                "Pin",
		KeyUnpin:              "Unpin",
		KeySortAZ:             "Sort A-Z",
		KeySortZA:             "Sort Z-A",
		KeySelectProject:      "Select a project to view shortcuts",
		KeyShortcuts:          "Shortcuts",
		KeyAddShortcut:        "Add Shortcut",
		KeyEditShortcut:       "Edit Shortcut",
		KeyRemoveShortcut:     "Remove Shortcut",
		KeyRemoveShortcutAsk:  "Are you sure you want to remove this shortcut?",
		KeyNoProjects:         "No projects yet",
		KeyAddGlobalShortcut:  "Add Global Shortcut",
		KeyEditGlobalShortcut: "Edit Global Shortcut",
		KeyShortcutName:       "Shortcut Name",
		KeyFile:               "File",
		KeyFolder:             "Folder",
		KeyURL:                "Link",
		KeyPath:               "Path",
		KeyBrowse:             "Browse",
		KeyOpenFailed:         "Failed to open shortcut",
		KeyMoveLeft:           "Move Left",
		KeyMoveRight:          "Move Right",
		KeyNotes:              "Notes",
		KeyNotesPreview:       "Preview",
		KeyNotesEdit:          "Edit",
		KeyNotesExportMD:      "Export Markdown",
		KeyNotesExportHTML:    "Export HTML",
		KeyCalendar:           "Calendar",
		KeyMemo:               "Memo",
		KeyToday:              "Today",
		KeySettings:           "Settings",
		KeyGeneral:            "General",
		KeyData:               "Data",
		KeyNetwork:            "Network",
		KeyTheme:              "Theme",
		KeyThemeLight:         "Light",
		KeyThemeDark:          "Dark",
		KeyLanguage:           "Language",
		KeyExport:             "Export JSON",
		KeyImport:             "Import JSON",
		KeyImportWarning:      "Importing data will overwrite all your current projects and settings. This action cannot be undone.",
		KeyImportDone:         "Data imported successfully!",
		KeyImportFailed:       "Failed to import data. Invalid file format.",
		KeyApplyNetwork:       "Apply Network Settings",
		KeyApplyingNetwork:    "Applying network settings...",
		KeyNetworkApplied:     "Network settings applied",
		KeyNetworkApplyFailed: "Failed to apply network settings",
		KeyInvalidIP:          "Not a valid IPv4 address",
		KeyGoogleCalendar:     "Google Calendar",
		KeyGoogleConfigured:   "Credentials configured",
		KeyGoogleMissing:      "Credentials not configured",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyCreate:             "Create",
		KeyDelete:             "Delete",
		KeyClose:              "Close",
	}

	// Japanese texts
	l.texts[model.LanguageJapanese] = map[string]string{
		KeyAppTitle:           "ホームボード",
		KeyProjects:           "プロジェクト",
		KeyNewProject:         "新規プロジェクト",
		KeyCreateProject:      "プロジェクトを作成",
		KeyEditProject:        "プロジェクトを編集",
		KeyDeleteProject:      "プロジェクトを削除",
		KeyDeleteProjectAsk:   "このプロジェクトを削除してもよろしいですか？",
		KeyProjectName:        "プロジェクト名",
		KeyDescription:        "説明（任意）",
		KeyIPAddress:          "IPアドレス（任意）",
		KeyGateway:            "ゲートウェイ（任意）",
		KeyInterface:          "インターフェース",
		KeySearch:             "検索...",
		KeyPin:                "ピン留め",
		KeyUnpin:              "ピン留め解除",
		KeySortAZ:             "昇順で並べ替え",
		KeySortZA:             "降順で並べ替え",
		KeySelectProject:      "プロジェクトを選択してください",
		KeyShortcuts:          "ショートカット",
		KeyAddShortcut:        "ショートカットを追加",
		KeyEditShortcut:       "ショートカットを編集",
		KeyRemoveShortcut:     "ショートカットを削除",
		KeyRemoveShortcutAsk:  "このショートカットを削除してもよろしいですか？",
		KeyNoProjects:         "プロジェクトがありません",
		KeyAddGlobalShortcut:  "共通ショートカットを追加",
		KeyEditGlobalShortcut: "共通ショートカットを編集",
		KeyShortcutName:       "ショートカット名",
		KeyFile:               "ファイル",
		KeyFolder:             "フォルダー",
		KeyURL:                "リンク",
		KeyPath:               "パス",
		KeyBrowse:             "参照",
		KeyOpenFailed:         "ショートカットを開けませんでした",
		KeyMoveLeft:           "左へ移動",
		KeyMoveRight:          "右へ移動",
		KeyNotes:              "メモ",
		KeyNotesPreview:       "プレビュー",
		KeyNotesEdit:          "編集",
		KeyNotesExportMD:      "Markdownをエクスポート",
		KeyNotesExportHTML:    "HTMLをエクスポート",
		KeyCalendar:           "カレンダー",
		KeyMemo:               "メモ",
		KeyToday:              "今日",
		KeySettings:           "設定",
		KeyGeneral:            "一般",
		KeyData:               "データ",
		KeyNetwork:            "ネットワーク",
		KeyTheme:              "テーマ",
		KeyThemeLight:         "ライト",
		KeyThemeDark:          "ダーク",
		KeyLanguage:           "言語",
		KeyExport:             "JSONをエクスポート",
		KeyImport:             "JSONをインポート",
		KeyImportWarning:      "データをインポートすると、現在のプロジェクトと設定はすべて上書きされます。この操作は元に戻せません。",
		KeyImportDone:         "データをインポートしました！",
		KeyImportFailed:       "データをインポートできませんでした。ファイル形式が無効です。",
		KeyApplyNetwork:       "ネットワーク設定を適用",
		KeyApplyingNetwork:    "ネットワーク設定を適用しています...",
		KeyNetworkApplied:     "ネットワーク設定を適用しました",
		KeyNetworkApplyFailed: "ネットワーク設定の適用に失敗しました",
		KeyInvalidIP:          "有効なIPv4アドレスではありません",
		KeyGoogleCalendar:     "Googleカレンダー",
		KeyGoogleConfigured:   "認証情報が設定されています",
		KeyGoogleMissing:      "認証情報が設定されていません",
		KeySave:               "保存",
		KeyCancel:             "キャンセル",
		KeyCreate:             "作成",
		KeyDelete:             "削除",
		KeyClose:              "閉じる",
	}
}
