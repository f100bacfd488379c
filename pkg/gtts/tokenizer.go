package gtts

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxChars is the maximum number of characters the endpoint accepts per
// request.
const MaxChars = 100

var (
	// hyphenated words broken across lines are joined back together
	lineBreakHyphen = regexp.MustCompile(`-\r?\n`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	toneMarkSpacing = regexp.MustCompile(`([?!？！])(\S)`)
	abbreviations   = regexp.MustCompile(`(?i)\b(dr|jr|mr|mrs|ms|msgr|prof|sr|st)\.`)
)

var wordSubstitutions = strings.NewReplacer(
	"Esq.", "Esquire",
)

// cutAfterSpace are marks that end a part when followed by whitespace.
const cutAfterSpace = ".,;:?!…"

// cutAlways are full-width marks that end a part unconditionally.
const cutAlways = "。，、；：？！"

// Tokenize pre-processes text and splits it into parts of at most MaxChars
// characters, preferring to cut at punctuation and then at spaces. Parts
// without any letter or digit are dropped.
func Tokenize(text string) []string {
	text = preprocess(text)

	var parts []string
	for _, sentence := range splitSentences(text) {
		for _, p := range minimize(sentence, " ", MaxChars) {
			p = strings.TrimSpace(p)
			if speakable(p) {
				parts = append(parts, p)
			}
		}
	}
	return parts
}

func preprocess(text string) string {
	text = lineBreakHyphen.ReplaceAllString(text, "")
	text = toneMarkSpacing.ReplaceAllString(text, "$1 $2")
	text = abbreviations.ReplaceAllString(text, "$1")
	text = wordSubstitutions.Replace(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// splitSentences cuts text after punctuation marks.
func splitSentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		cut := strings.ContainsRune(cutAlways, r)
		if !cut && strings.ContainsRune(cutAfterSpace, r) {
			cut = i+1 == len(runes) || unicode.IsSpace(runes[i+1])
		}
		if cut {
			out = append(out, string(runes[start:i+1]))
			start = i + 1
		}
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

// minimize recursively splits s at the last delim before limit characters.
// When no delim is found the part is cut hard at limit.
func minimize(s, delim string, limit int) []string {
	s = strings.TrimPrefix(s, delim)
	if utf8.RuneCountInString(s) <= limit {
		return []string{s}
	}

	runes := []rune(s)
	// a delim right after the limit still leaves a part of exactly limit
	idx := strings.LastIndex(string(runes[:limit+1]), delim)
	if idx <= 0 {
		return append([]string{string(runes[:limit])}, minimize(string(runes[limit:]), delim, limit)...)
	}
	return append([]string{s[:idx]}, minimize(s[idx:], delim, limit)...)
}

func speakable(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
