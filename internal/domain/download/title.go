package download

import "strings"

// DefaultTitle is used when a remote title cannot be resolved or
// sanitizes to nothing.
const DefaultTitle = "video"

// SanitizeTitle strips every character that is unsafe in a file name,
// keeping letters, digits, hyphen, underscore and space, and trims the
// result. Returns an empty string when nothing safe remains.
func SanitizeTitle(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// ResolveTitle sanitizes a raw remote title and falls back to
// DefaultTitle when the result is empty.
func ResolveTitle(raw string) string {
	title := SanitizeTitle(raw)
	if title == "" {
		return DefaultTitle
	}
	return title
}

// FileName composes the downloadable artifact name from a sanitized
// title and a unique identifier.
func FileName(title, id string) string {
	return title + "_" + id + ".mp3"
}
