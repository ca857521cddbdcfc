package modules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yacobolo/scsstypes/internal/config"
)

var dashRun = regexp.MustCompile(`-+(\w)`)

// ApplyConvention rewrites the keys of locals according to convention.
// Scoped identifiers are carried over unchanged.
func ApplyConvention(convention config.LocalsConvention, locals *Locals) *Locals {
	out := NewLocals()
	for _, name := range locals.Names() {
		scoped, _ := locals.Lookup(name)

		switch convention {
		case config.ConventionCamelCase:
			out.Add(name, scoped)
			out.Add(camelCase(name), scoped)
		case config.ConventionCamelCaseOnly:
			out.Add(camelCase(name), scoped)
		case config.ConventionDashes:
			out.Add(name, scoped)
			out.Add(dashesCamelCase(name), scoped)
		case config.ConventionDashesOnly:
			out.Add(dashesCamelCase(name), scoped)
		default:
			out.Add(name, scoped)
		}
	}
	return out
}

// camelCase produces the keys the CSS modules runtime exports for the camelCase
// conventions (lodash camelCase): "button-active" → "buttonActive",
// "myHTMLButton" → "myHtmlButton", "déjà-vu" → "dejaVu".
func camelCase(name string) string {
	var b strings.Builder
	for i, word := range words(apostrophes.Replace(deburr(name))) {
		word = strings.ToLower(word)
		if i > 0 {
			word = upperFirst(word)
		}
		b.WriteString(word)
	}
	return b.String()
}

// dashesCamelCase only collapses dashes: "btn-primary_x" → "btnPrimary_x"
func dashesCamelCase(name string) string {
	return dashRun.ReplaceAllStringFunc(name, func(m string) string {
		return strings.ToUpper(strings.TrimLeft(m, "-"))
	})
}

var apostrophes = strings.NewReplacer("'", "", "’", "")

// Letters without a canonical decomposition
var ligatures = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "Ae", "œ", "oe", "Œ", "Oe",
	"ø", "o", "Ø", "O", "ð", "d", "Ð", "D", "þ", "th", "Þ", "Th",
	"đ", "d", "Đ", "D", "ł", "l", "Ł", "L", "ı", "i", "ĳ", "ij", "Ĳ", "IJ", "ſ", "s",
)

// deburr strips diacritics: "é" → "e".
func deburr(s string) string {
	// Transformers are stateful, so each call gets its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return ligatures.Replace(out)
}

// Rune classes used for word splitting. Letters without case count as both.
func isUpper(r rune) bool { return unicode.IsUpper(r) }
func isLower(r rune) bool { return unicode.IsLower(r) }
func isMisc(r rune) bool {
	return (unicode.IsLetter(r) || unicode.IsMark(r)) && !unicode.IsUpper(r) && !unicode.IsLower(r)
}
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isBreak(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsMark(r) && !isDigit(r) }

// words splits s the way lodash does before camel casing: on separators,
// lower to upper transitions, the end of an acronym run ("HTMLButton" →
// "HTML", "Button"), and letter/digit changes. Ordinals like "1st" stay whole.
func words(s string) []string {
	rs := []rune(s)
	var out []string
	for i := 0; i < len(rs); {
		r := rs[i]
		if isBreak(r) {
			i++
			continue
		}

		var end int
		if isDigit(r) {
			end = digitWord(rs, i)
		} else {
			end = letterWord(rs, i)
		}
		out = append(out, string(rs[i:end]))
		i = end
	}
	return out
}

func digitWord(rs []rune, i int) int {
	j := i
	for j < len(rs) && isDigit(rs[j]) {
		j++
	}
	if end, ok := ordinal(rs, j); ok {
		return end
	}
	return j
}

// ordinal reports whether the digits ending at j carry an ordinal suffix.
func ordinal(rs []rune, j int) (int, bool) {
	if j+2 > len(rs) {
		return 0, false
	}
	suffix := string(rs[j : j+2])
	lower := strings.ToLower(suffix)
	if suffix != lower && suffix != strings.ToUpper(suffix) {
		return 0, false
	}

	last := rs[j-1]
	switch lower {
	case "st":
		if last != '1' {
			return 0, false
		}
	case "nd":
		if last != '2' {
			return 0, false
		}
	case "rd":
		if last != '3' {
			return 0, false
		}
	case "th":
		if last == '1' || last == '2' || last == '3' {
			return 0, false
		}
	default:
		return 0, false
	}

	end := j + 2
	if end == len(rs) {
		return end, true
	}
	next := rs[end]
	if isDigit(next) || next == '_' {
		return end, next == '_'
	}
	if suffix == lower {
		// Lower suffix ends at a non-word rune or an upper case letter
		return end, !(next >= 'a' && next <= 'z')
	}
	return end, !(next >= 'A' && next <= 'Z')
}

func letterWord(rs []rune, i int) int {
	n := len(rs)
	at := func(k int) rune {
		if k < n {
			return rs[k]
		}
		return -1
	}

	// Optional upper followed by lowers, ending at a separator, an upper or the end
	j := i
	if isUpper(at(j)) && isLower(at(j+1)) {
		j++
	}
	if isLower(at(j)) {
		for isLower(at(j)) {
			j++
		}
		if j == n || isBreak(rs[j]) || isUpper(rs[j]) {
			return j
		}
	}

	// Upper run, giving back its last letter when that one starts a new word
	j = i
	for isUpper(at(j)) || isMisc(at(j)) {
		j++
	}
	for k := j; k > i; k-- {
		if k == n || isBreak(rs[k]) || (isUpper(rs[k]) && (isLower(at(k+1)) || isMisc(at(k+1)))) {
			return k
		}
	}

	// Optional upper followed by any lower or uncased letters
	j = i
	if isUpper(at(j)) && (isLower(at(j+1)) || isMisc(at(j+1))) {
		j++
	}
	if isLower(at(j)) || isMisc(at(j)) {
		for isLower(at(j)) || isMisc(at(j)) {
			j++
		}
		return j
	}

	j = i
	for isUpper(at(j)) {
		j++
	}
	if j == i {
		j++
	}
	return j
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
