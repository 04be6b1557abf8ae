package autolink

import "testing"

func TestURLNotLinked(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"foo",
		":",
		"://",
		":::",
		"::::",
		"http://",
		"http:// is not a link",
		"1abc://example.com",
		"http:/example.com",
		"http:example.com",
		"-://example.com",
		"fooéhttps://example.com",
		"日本http://example.com",
		"x\u0301http://example.com",
		"_1http://example.com",
	}
	for _, tc := range kindConfigs(t, KindURL) {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, input := range inputs {
				assertNotLinked(t, tc.ex, input)
			}
		})
	}
}

func TestURLLinked(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"ftp://example.com", "|ftp://example.com|"},
		{"foo http://example.com bar", "foo |http://example.com| bar"},
		{"http://example.com/path?query=1&b=2#frag", "|http://example.com/path?query=1&b=2#frag|"},
		{"a.b+c-d://example.com", "|a.b+c-d://example.com|"},
		{"1.abc://example.com", "1.|abc://example.com|"},
		{"+http://example.com", "+|http://example.com|"},
		{"http://example.com http://example.org", "|http://example.com| |http://example.org|"},
		{"http://üñîçøðé.com/ä", "|http://üñîçøðé.com/ä|"},
		{"http://[::1]:8080/", "|http://[::1]:8080/|"},
		{"http://user@example.com/", "|http://user@example.com/|"},
		{"see:http://example.com", "see:|http://example.com|"},
		{"file:///etc/hosts", "|file:///etc/hosts|"},
		{"é:http://example.com", "é:|http://example.com|"},
		{"_http://example.com", "_|http://example.com|"},
		{"a1b://example.com", "|a1b://example.com|"},
	}
	for _, tc := range kindConfigs(t, KindURL) {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, tt := range tests {
				assertLinked(t, tc.ex, tt.input, tt.want, KindURL)
			}
		})
	}
}

func TestURLDelimiters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"(http://example.com)", "(|http://example.com|)"},
		{"[http://example.com]", "[|http://example.com|]"},
		{"{http://example.com}", "{|http://example.com|}"},
		{"<http://example.com>", "<|http://example.com|>"},
		{"\"http://example.com\"", "\"|http://example.com|\""},
		{"'http://example.com'", "'|http://example.com|'"},
		{"http://example.com/foo_(bar)", "|http://example.com/foo_(bar)|"},
		{"(http://example.com/foo_(bar))", "(|http://example.com/foo_(bar)|)"},
		{"http://example.com/a[1]", "|http://example.com/a[1]|"},
		{"http://example.com/it's", "|http://example.com/it's|"},
		{"http://example.com/\"quoted\"", "|http://example.com/\"quoted\"|"},
		{"http://example.com.", "|http://example.com|."},
		{"http://example.com,", "|http://example.com|,"},
		{"http://example.com/.", "|http://example.com/|."},
		{"http://example.com!?", "|http://example.com|!?"},
		{"http://example.com/path:", "|http://example.com/path|:"},
		{"http://example.com/path;", "|http://example.com/path|;"},
		{"http://example.com/a.b/", "|http://example.com/a.b/|"},
		{"http://example.com./", "|http://example.com|./"},
		{"(http://one.org/)(http://two.org/)", "(|http://one.org/|)(|http://two.org/|)"},
		{"http://example.com\u00A0next", "|http://example.com|\u00A0next"},
		{"http://example.com\u3000next", "|http://example.com|\u3000next"},
	}
	for _, tc := range kindConfigs(t, KindURL) {
		for _, tt := range tests {
			assertLinked(t, tc.ex, tt.input, tt.want, KindURL)
		}
	}
}
