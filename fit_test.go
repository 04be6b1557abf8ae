package autolink

import "testing"

func TestFitText(t *testing.T) {
	input := "see https://example.org/very/long/path and www.example.org"
	ex := mustNew(t)
	links := ex.Extract(input)
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %v", links)
	}
	url, www := links[0], links[1]

	cases := []struct {
		name  string
		link  Span
		width int
		want  string
	}{
		{"fits", url, 80, "https://example.org/very/long/path"},
		{"disabled", url, 0, "https://example.org/very/long/path"},
		{"drop scheme", url, 26, "example.org/very/long/path"},
		{"truncate url", url, 12, "example.org…"},
		{"truncate www", www, 8, "www.exa…"},
		{"single cell", www, 1, "…"},
	}
	for _, tc := range cases {
		if got := FitText(tc.link, input, tc.width); got != tc.want {
			t.Fatalf("%s: FitText(width=%d)=%q want %q", tc.name, tc.width, got, tc.want)
		}
	}
}
