package translation

import (
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Configure loads the catalogue for lang ("vi", "vi_VN.UTF-8", ...) from dir.
func Configure(dir, lang string) {
	gotext.Configure(dir, NormalizeLanguage(lang), "default")
}

// NormalizeLanguage strips region and encoding from a locale name.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_.-@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "c" || lang == "posix" {
		return "en"
	}
	return lang
}

func GetLanguage() string {
	lang := gotext.GetLanguage()

	if lang == "und" || lang == "" {
		return "en"
	}

	return lang
}

func Translate(msgID string, vars ...interface{}) string {
	return gotext.Get(msgID, vars...)
}
