package autolink

// URLScanner finds links with a scheme followed by "://", such as "https://example.org".
// Register it under ':'.
type URLScanner struct{}

// Scan implements Scanner.
func (URLScanner) Scan(input string, trigger, rewind int) (Span, bool) {
	authority := trigger + len("://")
	if authority >= len(input) || input[trigger+1] != '/' || input[trigger+2] != '/' {
		return Span{}, false
	}
	start, ok := schemeStart(input, trigger, rewind)
	if !ok {
		return Span{}, false
	}
	end := findURLEnd(input, authority, authority)
	if end == authority {
		return Span{}, false
	}
	return NewSpan(start, end, KindURL), true
}

// schemeStart walks back from the colon over scheme characters (RFC 3986) and returns the
// offset of the leftmost letter. A scheme glued to a preceding word rune, as in "1abc://"
// or "éhttp://", is rejected; other separators before the scheme are fine.
func schemeStart(input string, colon, rewind int) (int, bool) {
	first := -1
	for i := colon; i > rewind; {
		r, size := runeBefore(input, i, rewind)
		i -= size
		switch {
		case isASCIIAlpha(r):
			first = i
		case isDigit(r), r == '+', r == '-', r == '.':
		default:
			i = rewind
		}
	}
	if first < 0 || !boundaryBefore(input, first, rewind, isWordRune) {
		return 0, false
	}
	return first, true
}
