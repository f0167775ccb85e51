// Package words renders integers as English number words.
package words

import (
	"strconv"
	"strings"
	"unicode"
)

var small = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// tensWords is used by Hyphenate to recognize compound tens-ones pairs.
var tensWords = map[string]struct{}{
	"twenty": {}, "thirty": {}, "forty": {}, "fifty": {},
	"sixty": {}, "seventy": {}, "eighty": {}, "ninety": {},
}

// Verbalize converts n to English words for 0 <= n <= 999.
// Out-of-range input degrades to the decimal string rather than failing;
// callers only pass in-range values in practice.
func Verbalize(n int) string {
	switch {
	case n < 0 || n > 999:
		return strconv.Itoa(n)
	case n < 20:
		return small[n]
	case n < 100:
		return belowHundred(n)
	default:
		var b strings.Builder
		b.WriteString(small[n/100])
		b.WriteString(" hundred")
		rem := n % 100
		if rem == 0 {
			return b.String()
		}
		b.WriteString(" and ")
		b.WriteString(belowHundred(rem))
		return b.String()
	}
}

func belowHundred(n int) string {
	if n < 20 {
		return small[n]
	}
	word := tens[n/10]
	if units := n % 10; units != 0 {
		return word + " " + small[units]
	}
	return word
}

// Hyphenate joins compound tens-ones pairs with a hyphen for display text,
// e.g. "twenty one" becomes "twenty-one". Spoken phrases are never hyphenated.
func Hyphenate(phrase string) string {
	parts := strings.Split(phrase, " ")
	out := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		word := parts[i]
		if _, ok := tensWords[word]; ok && i+1 < len(parts) && isOnesWord(parts[i+1]) {
			out = append(out, word+"-"+parts[i+1])
			i++
			continue
		}
		out = append(out, word)
	}
	return strings.Join(out, " ")
}

func isOnesWord(word string) bool {
	for _, w := range small[1:10] {
		if word == w {
			return true
		}
	}
	return false
}

// Capitalize uppercases the first rune for display text.
func Capitalize(phrase string) string {
	runes := []rune(phrase)
	if len(runes) == 0 {
		return phrase
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
