package botanical

import (
	"strings"
	"unicode/utf8"
)

// lastNChars returns the last n runes of word, or the whole word when it
// is shorter than n.
func lastNChars(word string, n int) string {
	if n <= 0 {
		return ""
	}
	i := len(word)
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(word[:i])
		i -= size
	}
	return word[i:]
}

// trimChars drops the last n runes of word. Words shorter than n
// become "".
func trimChars(word string, n int) string {
	return word[:len(word)-len(lastNChars(word, n))]
}

// stripEnding removes ending from word when word ends with it.
// ok reports whether the ending matched.
func stripEnding(word, ending string) (stem string, ok bool) {
	if !strings.HasSuffix(word, ending) {
		return word, false
	}
	return word[:len(word)-len(ending)], true
}
