package download

import "testing"

func TestSanitizeTitle_KeepsSafeCharacters(t *testing.T) {
	got := SanitizeTitle("My Video_01 - final")
	if got != "My Video_01 - final" {
		t.Fatalf("unexpected title: %q", got)
	}
}

func TestSanitizeTitle_StripsUnsafeCharacters(t *testing.T) {
	cases := map[string]string{
		"a/b\\c:d*e?f\"g<h>i|j": "abcdefghij",
		"Song (Official) [HD]!": "Song Official HD",
		"  padded title  ":      "padded title",
		"Tabs\tand\nnewlines":   "Tabsandnewlines",
	}
	for raw, want := range cases {
		if got := SanitizeTitle(raw); got != want {
			t.Fatalf("SanitizeTitle(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSanitizeTitle_DropsNonASCII(t *testing.T) {
	got := SanitizeTitle("видео 番組 🎵")
	if got != "" {
		t.Fatalf("expected empty title for non-ASCII input, got %q", got)
	}
}

func TestResolveTitle_FallsBackWhenEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "🎵🎵🎵", "///"} {
		if got := ResolveTitle(raw); got != DefaultTitle {
			t.Fatalf("ResolveTitle(%q) = %q, want %q", raw, got, DefaultTitle)
		}
	}
}

func TestFileName_ComposesSuffix(t *testing.T) {
	got := FileName("video", "abc-123")
	if got != "video_abc-123.mp3" {
		t.Fatalf("unexpected file name: %q", got)
	}
}
