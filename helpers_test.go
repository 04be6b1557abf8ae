package autolink

import (
	"strings"
	"testing"
)

// marked returns input with every link wrapped in '|', e.g. "see |www.example.org| now".
func marked(input string, links []Span) string {
	var b strings.Builder
	pos := 0
	for _, link := range links {
		b.WriteString(input[pos:link.Start()])
		b.WriteByte('|')
		b.WriteString(link.Text(input))
		b.WriteByte('|')
		pos = link.End()
	}
	b.WriteString(input[pos:])
	return b.String()
}

func mustNew(t testing.TB, opts ...Option) *Extractor {
	t.Helper()
	ex, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ex
}

type extractorCase struct {
	name string
	ex   *Extractor
}

// kindConfigs returns an extractor with only kind enabled and one with every kind, so
// each corpus is checked in isolation and next to the other scanners.
func kindConfigs(t *testing.T, kind LinkKind, opts ...Option) []extractorCase {
	t.Helper()
	only := append([]Option{WithKinds(kind)}, opts...)
	return []extractorCase{
		{name: kind.String(), ex: mustNew(t, only...)},
		{name: "all", ex: mustNew(t, opts...)},
	}
}

func assertLinked(t *testing.T, ex *Extractor, input, want string, kind LinkKind) {
	t.Helper()
	links := ex.Extract(input)
	if got := marked(input, links); got != want {
		t.Fatalf("links in %q\nwant: %q\n got: %q", input, want, got)
	}
	for _, link := range links {
		if link.Kind() != kind {
			t.Fatalf("link %q in %q has kind %s, want %s", link.Text(input), input, link.Kind(), kind)
		}
	}
}

func assertNotLinked(t *testing.T, ex *Extractor, input string) {
	t.Helper()
	if links := ex.Extract(input); len(links) != 0 {
		t.Fatalf("expected no links in %q, got %q", input, marked(input, links))
	}
}
