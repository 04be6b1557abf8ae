package autolink

// WWWScanner finds bare web addresses such as "www.example.org/path". Register it under
// both 'w' and 'W'.
type WWWScanner struct{}

const wwwPrefixLen = len("www.")

func isWWWPrefix(input string, i int) bool {
	if i+wwwPrefixLen > len(input) || input[i+3] != '.' {
		return false
	}
	for j := i; j < i+3; j++ {
		if input[j] != 'w' && input[j] != 'W' {
			return false
		}
	}
	return true
}

// rejectBeforeWWW rejects starts in the middle of a word, a host name or a run of w's.
func rejectBeforeWWW(r rune) bool {
	return r == '.' || isWordRune(r)
}

// Scan implements Scanner.
func (WWWScanner) Scan(input string, trigger, rewind int) (Span, bool) {
	if !isWWWPrefix(input, trigger) {
		return Span{}, false
	}
	if !boundaryBefore(input, trigger, rewind, rejectBeforeWWW) {
		return Span{}, false
	}
	host, ok := scanDomain(input, trigger+wwwPrefixLen, trigger+maxHostLen)
	if !ok || host.labels < 2 || !knownTLDShape(host.tld) {
		return Span{}, false
	}
	end := host.end
	if end < len(input) {
		switch input[end] {
		case ':', '/', '?', '#':
			end = findURLEnd(input, end, end)
		}
	}
	return NewSpan(trigger, end, KindWWW), true
}
