package autolink

import (
	"fmt"
	"strings"
)

// LinkKind identifies the kind of link a Span covers.
type LinkKind uint8

const (
	// KindURL is a link with an explicit scheme, such as https://example.org.
	KindURL LinkKind = iota + 1
	// KindWWW is a bare web address starting with "www.".
	KindWWW
	// KindEmail is an email address.
	KindEmail
)

var kindNames = [...]string{
	KindURL:   "url",
	KindWWW:   "www",
	KindEmail: "email",
}

// AllKinds returns every link kind in declaration order.
func AllKinds() []LinkKind {
	return []LinkKind{KindURL, KindWWW, KindEmail}
}

func (k LinkKind) valid() bool {
	return k >= KindURL && k <= KindEmail
}

// String returns the lower-case name of the kind.
func (k LinkKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("LinkKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k LinkKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("autolink: invalid link kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LinkKind) UnmarshalText(text []byte) error {
	parsed, err := ParseLinkKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseLinkKind parses a kind name as returned by LinkKind.String.
func ParseLinkKind(name string) (LinkKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "url":
		return KindURL, nil
	case "www":
		return KindWWW, nil
	case "email":
		return KindEmail, nil
	default:
		return 0, fmt.Errorf("autolink: unknown link kind %q", name)
	}
}

// Span is a half-open byte range [Start, End) of the scanned input holding one link.
type Span struct {
	start int
	end   int
	kind  LinkKind
}

// NewSpan returns a span for input[start:end]. Scanners use it to report a match.
func NewSpan(start, end int, kind LinkKind) Span {
	return Span{start: start, end: end, kind: kind}
}

// Start returns the byte offset of the first byte of the link.
func (s Span) Start() int { return s.start }

// End returns the byte offset just past the link.
func (s Span) End() int { return s.end }

// Kind returns the kind of link.
func (s Span) Kind() LinkKind { return s.kind }

// Len returns the length of the span in bytes.
func (s Span) Len() int { return s.end - s.start }

// Text returns the part of input covered by the span.
func (s Span) Text(input string) string {
	return input[s.start:s.end]
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]", s.kind, s.start, s.end)
}

func (s Span) validFor(input string) bool {
	return s.start >= 0 && s.start < s.end && s.end <= len(input)
}

// Segment is a slice of the input that is either a link or the plain text between links.
// Segments returned by Extractor.Segments tile the input without gaps.
type Segment struct {
	Start int
	End   int
	// Kind is zero for plain text.
	Kind LinkKind
}

// IsLink reports whether the segment is a link.
func (s Segment) IsLink() bool { return s.Kind != 0 }

// Text returns the part of input covered by the segment.
func (s Segment) Text(input string) string {
	return input[s.Start:s.End]
}
