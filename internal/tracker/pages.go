package tracker

import (
	"strconv"
	"strings"
	"unicode"
)

// ParsePages reads a page count from free-form input. It takes the leading
// integer (optional sign, then digits) and ignores anything after it, so
// "12.5" is 12. Input without a leading integer, or one too large for an
// int, yields 0.
func ParsePages(text string) int {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)

	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0
	}
	return n
}
