// Package i18n localizes bitext's own user-facing strings.
//
// It wraps gotext behind two tiny helpers, T() and N(). Translations are
// compiled into the binary with //go:embed; Init() picks the language
// from the environment the way GNU gettext does. Uninitialized, both
// helpers pass the msgid through unchanged.
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// locales embeds the translation catalogs,
// laid out as locales/{lang}/LC_MESSAGES/bitext.po.
//
//go:embed all:locales
var locales embed.FS

// domain is the gettext domain name.
const domain = "bitext"

var locale *gotext.Locale

// Init loads the catalog for lang, auto-detecting from
// LANGUAGE/LC_ALL/LC_MESSAGES/LANG when lang is empty. Call once at
// startup, before T or N.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	locale = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	locale.AddDomain(domain)
	locale.SetDomain(domain)
}

// T translates msgid, returning it unchanged when no translation exists.
func T(msgid string) string {
	if locale == nil {
		return msgid
	}
	return locale.Get(msgid)
}

// N translates with plural forms, n selecting the form.
func N(singular, plural string, n int) string {
	if locale == nil {
		if n == 1 {
			return singular
		}
		return plural
	}
	return locale.GetN(singular, plural, n)
}

// detectLanguage follows the GNU gettext environment priority:
// LANGUAGE > LC_ALL > LC_MESSAGES > LANG.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE is a colon-separated preference list.
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// Drop the encoding suffix: "ja_JP.UTF-8" -> "ja_JP".
		if idx := strings.IndexByte(val, '.'); idx >= 0 {
			val = val[:idx]
		}
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return "en"
}
