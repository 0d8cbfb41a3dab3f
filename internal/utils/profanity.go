package utils

import (
	"strings"
)

// badWords is the static prohibited-word list. Matching is substring based on
// purpose: it catches a listed word even when embedded in a longer token, at
// the cost of the occasional false positive.
var badWords = []string{
	"fuck", "shit", "bitch", "asshole", "bastard", "dick", "cock",
	"whore", "slut", "wanker", "dumbass", "jackass", "scumbag",
	"idiot", "stupid", "moron",
}

// asciiLower folds A-Z to a-z and leaves every other byte alone. The word
// list is plain ASCII, and unlike Unicode case folding this never changes
// the byte length, so offsets into the folded text line up with the
// original bytes.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// ContainsProfanity reports whether any listed word occurs in text,
// case-insensitively.
func ContainsProfanity(text string) bool {
	if text == "" {
		return false
	}
	lower := asciiLower(text)
	for _, word := range badWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// CleanText masks every listed word with an asterisk run of equal length.
// Matching is done on the lower-cased text; characters outside matches keep
// their original casing. Applying CleanText to its own output changes nothing.
func CleanText(text string) string {
	if text == "" {
		return text
	}
	out := []byte(text)
	lower := asciiLower(text)
	for _, word := range badWords {
		mask := strings.Repeat("*", len(word))
		for start := 0; ; {
			i := strings.Index(lower[start:], word)
			if i < 0 {
				break
			}
			pos := start + i
			copy(out[pos:pos+len(word)], mask)
			start = pos + len(word)
		}
	}
	return string(out)
}
