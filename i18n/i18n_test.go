package i18n

import "testing"

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(env, "")
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Run("LANGUAGE wins and list is cut", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "ja_JP.UTF-8:en_US")
		t.Setenv("LC_ALL", "de_DE.UTF-8")
		if got := detectLanguage(); got != "ja_JP" {
			t.Fatalf("detectLanguage() = %q, want ja_JP", got)
		}
	})

	t.Run("C and POSIX skipped", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LC_ALL", "C")
		t.Setenv("LANG", "fr_FR.UTF-8")
		if got := detectLanguage(); got != "fr_FR" {
			t.Fatalf("detectLanguage() = %q, want fr_FR", got)
		}
	})

	t.Run("default en", func(t *testing.T) {
		clearLocaleEnv(t)
		if got := detectLanguage(); got != "en" {
			t.Fatalf("detectLanguage() = %q, want en", got)
		}
	})
}

func TestPassthroughWhenUninitialized(t *testing.T) {
	old := locale
	locale = nil
	t.Cleanup(func() { locale = old })

	if got := T("Available corpora:"); got != "Available corpora:" {
		t.Fatalf("T passthrough = %q", got)
	}
	if got := N("record", "records", 1); got != "record" {
		t.Fatalf("N(1) = %q, want record", got)
	}
	if got := N("record", "records", 3); got != "records" {
		t.Fatalf("N(3) = %q, want records", got)
	}
}
