// Package text cleans model output before it is sent to Telegram.
package text

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// controlChars matches ASCII control characters other than tab and
	// newline. Each one becomes a space.
	controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

	// excessNewlines matches runs of three or more newlines.
	excessNewlines = regexp.MustCompile(`\n{3,}`)

	// invisibles removes format characters that render as nothing and maps
	// exotic spaces and separators to plain ones.
	invisibles = strings.NewReplacer(
		"\u2060", "", // word joiner
		"\uFEFF", "", // byte order mark
		"\u00AD", "", // soft hyphen
		"\u200E", "", // left-to-right mark
		"\u200F", "",
		"\u2061", "",
		"\u2062", "",
		"\u2063", "",
		"\u2064", "",

		"\u2028", "\n", // line separator
		"\u2029", "\n\n", // paragraph separator
		"\u200B", " ",
		"\u205F", " ",
		"\u2009", " ",
		"\u200A", " ",
		"\u202F", " ",
		"\u3000", " ",
		"\u00A0", " ",
	)
)

// Sanitize normalizes line endings, replaces control characters with spaces,
// strips invisible characters, collapses runs of spaces within each line and
// caps blank lines at one. Lines inside ``` fences keep their spacing. The
// result is trimmed and may be empty.
func Sanitize(input string) string {
	s := strings.ReplaceAll(input, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = invisibles.Replace(s)
	s = controlChars.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			lines[i] = collapseSpaces(line)
			continue
		}
		if inFence {
			lines[i] = strings.TrimRight(line, " \t")
			continue
		}
		lines[i] = collapseSpaces(line)
	}

	s = strings.Join(lines, "\n")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func collapseSpaces(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	space := false
	for _, r := range line {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteRune(' ')
				space = true
			}
			continue
		}
		b.WriteRune(r)
		space = false
	}
	return strings.TrimSpace(b.String())
}
