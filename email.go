package autolink

import (
	"strings"
	"unicode/utf8"
)

// LocalPartMode selects which characters an EmailScanner accepts before the '@'.
type LocalPartMode uint8

const (
	// LocalPartLax accepts the RFC 5321 atom characters plus non-ASCII letters (RFC 6531).
	LocalPartLax LocalPartMode = iota
	// LocalPartStrict accepts ASCII letters, digits, '_', '+' and '-' only.
	LocalPartStrict
)

func (m LocalPartMode) String() string {
	switch m {
	case LocalPartLax:
		return "lax"
	case LocalPartStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseLocalPartMode parses "lax" or "strict".
func ParseLocalPartMode(name string) (LocalPartMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lax":
		return LocalPartLax, true
	case "strict":
		return LocalPartStrict, true
	default:
		return 0, false
	}
}

// EmailScanner finds email addresses. Register it under '@'.
type EmailScanner struct {
	// DomainMustHaveDot rejects domains without a dot, such as "foo@localhost".
	DomainMustHaveDot bool
	// LocalPart selects the accepted local-part characters.
	LocalPart LocalPartMode
}

// Scan implements Scanner.
func (s EmailScanner) Scan(input string, trigger, rewind int) (Span, bool) {
	start := s.localPartStart(input, trigger, rewind)
	if start < 0 || !boundaryBefore(input, start, rewind, isWordRune) {
		return Span{}, false
	}
	end := s.domainEnd(input, trigger+1)
	if end < 0 {
		return Span{}, false
	}
	return NewSpan(start, end, KindEmail), true
}

// localPartStart walks back from the '@' over dot-separated atoms and returns the start
// of the local part, or -1. An empty atom ends the local part. Scan rejects a local part
// that starts in the middle of a word, which only the strict mode can produce.
func (s EmailScanner) localPartStart(input string, at, rewind int) int {
	first := -1
	atomBoundary := true
	for i := at; i > rewind; {
		r, size := runeBefore(input, i, rewind)
		i -= size
		switch {
		case s.atomRune(r):
			first = i
			atomBoundary = false
		case r == '.' && !atomBoundary:
			atomBoundary = true
		default:
			i = rewind
		}
	}
	return first
}

func (s EmailScanner) atomRune(r rune) bool {
	if isASCIIAlnum(r) {
		return true
	}
	if s.LocalPart == LocalPartStrict {
		return r == '_' || r == '+' || r == '-'
	}
	switch r {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return r >= utf8.RuneSelf && isWordRune(r)
}

// domainEnd reads sub-domains (RFC 5321 with the RFC 6531 extension) from begin and
// returns the exclusive end, or -1.
func (s EmailScanner) domainEnd(input string, begin int) int {
	end, firstDot := -1, -1
	firstInSubDomain, canEndSubDomain := true, false
loop:
	for i := begin; i < len(input); {
		r, size := runeAt(input, i)
		switch {
		case firstInSubDomain:
			if !subDomainRune(r) {
				break loop
			}
			end = i + size
			firstInSubDomain = false
			canEndSubDomain = true
		case r == '.':
			if !canEndSubDomain {
				break loop
			}
			firstInSubDomain = true
			if firstDot < 0 {
				firstDot = i
			}
		case r == '-':
			canEndSubDomain = false
		case subDomainRune(r):
			end = i + size
			canEndSubDomain = true
		default:
			break loop
		}
		i += size
	}
	if end < 0 {
		return -1
	}
	if s.DomainMustHaveDot && (firstDot < 0 || firstDot >= end) {
		return -1
	}
	return end
}

func subDomainRune(r rune) bool {
	return isWordRune(r)
}
