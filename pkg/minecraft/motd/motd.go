package motd

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

var codePattern = regexp.MustCompile(`(?i)§[0-9a-fk-or]`)

// Telegram accepts a narrow entity set, so quotes are left alone.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var formatTags = map[rune]string{
	'l': "b",
	'o': "i",
	'n': "u",
	'm': "s",
}

// Clean strips the legacy formatting codes from text.
// Sequences that are not valid codes are kept as is.
func Clean(text string) string {
	return strings.TrimSpace(codePattern.ReplaceAllString(text, ""))
}

// ToHTML renders the legacy formatting codes as html tags:
// bold, italic, underline and strikethrough survive, colors and
// the obfuscation code are dropped. A color code resets formatting,
// same as in the game.
func ToHTML(text string) string {
	var sb strings.Builder
	open := make([]string, 0, 4)

	closeAll := func() {
		for i := len(open) - 1; i >= 0; i-- {
			sb.WriteString("</" + open[i] + ">")
		}
		open = open[:0]
	}

	runes := []rune(htmlEscaper.Replace(text))
	for i := 0; i < len(runes); i++ {
		if runes[i] != '§' || i+1 == len(runes) {
			sb.WriteRune(runes[i])
			continue
		}
		code := unicode.ToLower(runes[i+1])
		switch {
		case code == 'r' || (code >= '0' && code <= '9') || (code >= 'a' && code <= 'f'):
			closeAll()
			i++
		case code == 'k':
			i++
		default:
			tag, ok := formatTags[code]
			if !ok {
				sb.WriteRune(runes[i])
				continue
			}
			if !slices.Contains(open, tag) {
				sb.WriteString("<" + tag + ">")
				open = append(open, tag)
			}
			i++
		}
	}
	closeAll()

	return strings.TrimSpace(sb.String())
}
