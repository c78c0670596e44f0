package util

import (
	"regexp"
	"strings"
)

var (
	reNonAlnum      = regexp.MustCompile(`[^A-Z0-9]`)
	reNonAlnumSpace = regexp.MustCompile(`[^A-Z0-9\s]`)
	reSpaces        = regexp.MustCompile(`\s+`)
)

func UpperTrim(input string) string {
	return strings.TrimSpace(strings.ToUpper(input))
}

func StripNonAlnum(input string) string {
	return reNonAlnum.ReplaceAllString(strings.ToUpper(input), "")
}

func StripToAlnumSpace(input string) string {
	return reNonAlnumSpace.ReplaceAllString(strings.ToUpper(input), "")
}

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func AllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
