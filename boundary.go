package autolink

import (
	"unicode"
	"unicode/utf8"
)

func runeAt(s string, i int) (rune, int) {
	if i >= len(s) {
		return utf8.RuneError, 0
	}
	if c := s[i]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(s[i:])
}

// runeBefore returns the rune ending at i, never reading before floor.
func runeBefore(s string, i, floor int) (rune, int) {
	if i <= floor {
		return utf8.RuneError, 0
	}
	if c := s[i-1]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeLastRuneInString(s[floor:i])
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlnum(r rune) bool {
	return isASCIIAlpha(r) || isDigit(r)
}

// isWordRune reports whether r belongs to a word in any script.
func isWordRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isASCIIAlnum(r)
	}
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r))
}

// boundaryBefore reports whether a link may start at trigger: either nothing precedes it
// within [rewind, trigger) or the preceding rune is not rejected.
func boundaryBefore(input string, trigger, rewind int, reject func(rune) bool) bool {
	r, size := runeBefore(input, trigger, rewind)
	if size == 0 {
		return true
	}
	return !reject(r)
}

// findURLEnd extends a link greedily from begin and returns its exclusive end. end is the
// end of the part already accepted by the caller and is returned unchanged when nothing
// after begin qualifies.
//
// Sentence punctuation may occur inside a link but never ends one. Brackets are balanced
// within the link: an opener allows one matching closer to end the link and an unmatched
// closer stops the scan. Quotes toggle, so only a closing quote can end the link. A slash
// ends the link only when it directly follows an accepted rune.
func findURLEnd(input string, begin, end int) int {
	var round, square, curly int
	var doubleQuote, singleQuote bool
loop:
	for i := begin; i < len(input); {
		r, size := runeAt(input, i)
		next := i + size
		switch r {
		case '<', '>':
			break loop
		case '?', '!', '.', ',', ':', ';':
		case '/':
			if end == i {
				end = next
			}
		case '(':
			round++
		case ')':
			round--
			if round < 0 {
				break loop
			}
			end = next
		case '[':
			square++
		case ']':
			square--
			if square < 0 {
				break loop
			}
			end = next
		case '{':
			curly++
		case '}':
			curly--
			if curly < 0 {
				break loop
			}
			end = next
		case '"':
			doubleQuote = !doubleQuote
			if !doubleQuote {
				end = next
			}
		case '\'':
			singleQuote = !singleQuote
			if !singleQuote {
				end = next
			}
		default:
			if (r == utf8.RuneError && size == 1) || unicode.IsSpace(r) || unicode.IsControl(r) {
				break loop
			}
			end = next
		}
		i = next
	}
	return end
}

func isLabelRune(r rune) bool {
	return r == '-' || isWordRune(r)
}

// domain describes a host name found by scanDomain.
type domain struct {
	end    int
	labels int
	tld    string
}

// maxHostLen is the longest host name DNS allows in text form.
const maxHostLen = 253

// scanDomain reads dot-separated labels starting at begin. A trailing dot or trailing
// hyphens are left out of the domain. Two consecutive dots make the whole host invalid,
// and so does a label rune reaching past limit.
func scanDomain(input string, begin, limit int) (domain, bool) {
	d := domain{end: begin}
	i := begin
	for {
		start := i
		for i < len(input) {
			r, size := runeAt(input, i)
			if !isLabelRune(r) || (r == '-' && i == start) {
				break
			}
			if i+size > limit {
				return domain{}, false
			}
			i += size
		}
		labelEnd := i
		for labelEnd > start && input[labelEnd-1] == '-' {
			labelEnd--
		}
		if labelEnd == start {
			break
		}
		d.labels++
		d.end = labelEnd
		d.tld = input[start:labelEnd]
		if labelEnd != i || i >= len(input) || input[i] != '.' {
			break
		}
		if i+1 < len(input) && input[i+1] == '.' {
			return domain{}, false
		}
		if r, _ := runeAt(input, i+1); r == '-' || !isLabelRune(r) {
			break
		}
		i++
	}
	return d, d.labels > 0
}

// knownTLDShape reports whether label looks like a top-level domain: two or more letters,
// or an IDNA "xn--" label.
func knownTLDShape(label string) bool {
	if len(label) > 4 && (label[:4] == "xn--" || label[:4] == "XN--") {
		return true
	}
	n := 0
	for _, r := range label {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n >= 2
}
