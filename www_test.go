package autolink

import (
	"strings"
	"testing"
)

func TestWWWNotLinked(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"wwwsomething.com",
		"ww.foo.com",
		"w.bar.foo.co",
		"www.something",
		"www.go",
		"foo.www.fo.uk",
		"www..com",
		"www.foo..com",
		"wwww.toomany.com",
		"www.example.123",
		"www.-example.org",
		"awww.example.org",
		"www.",
	}
	for _, tc := range kindConfigs(t, KindWWW) {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, input := range inputs {
				assertNotLinked(t, tc.ex, input)
			}
		})
	}
}

func TestWWWLinked(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"www.s.com", "|www.s.com|"},
		{"www.fo.uk", "|www.fo.uk|"},
		{"foo:www.fo.uk", "foo:|www.fo.uk|"},
		{"foo-www.fo.uk", "foo-|www.fo.uk|"},
		{"WWW.EXAMPLE.ORG", "|WWW.EXAMPLE.ORG|"},
		{"www.xn--bcher-kva.example", "|www.xn--bcher-kva.example|"},
		{"www.example.org.", "|www.example.org|."},
		{"www.example.org-", "|www.example.org|-"},
		{"www.my-site.example.org", "|www.my-site.example.org|"},
		{"www.example.org:8080/path", "|www.example.org:8080/path|"},
		{"www.example.org: see", "|www.example.org|: see"},
		{"www.example.org?q=1#top", "|www.example.org?q=1#top|"},
		{"www.example.org/wiki/Foo_(bar)", "|www.example.org/wiki/Foo_(bar)|"},
		{"go to www.example.org/path.", "go to |www.example.org/path|."},
		{"\"www.example.org/\"", "\"|www.example.org/|\""},
	}
	for _, tc := range kindConfigs(t, KindWWW) {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, tt := range tests {
				assertLinked(t, tc.ex, tt.input, tt.want, KindWWW)
			}
		})
	}
}

func TestWWWInHTML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"<a href=\"somelink\">www.example.org</a>", "<a href=\"somelink\">|www.example.org|</a>"},
		{"<a href=\"www.example.org\">sometext</a>", "<a href=\"|www.example.org|\">sometext</a>"},
		{"<p>www.example.org</p>", "<p>|www.example.org|</p>"},
	}
	for _, tc := range kindConfigs(t, KindWWW) {
		for _, tt := range tests {
			assertLinked(t, tc.ex, tt.input, tt.want, KindWWW)
		}
	}
}

func TestWWWMultiple(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"www.one.org/ www.two.org/", "|www.one.org/| |www.two.org/|"},
		{"www.one.org/ : www.two.org/", "|www.one.org/| : |www.two.org/|"},
		{"(www.one.org/)(www.two.org/)", "(|www.one.org/|)(|www.two.org/|)"},
	}
	for _, tc := range kindConfigs(t, KindWWW) {
		for _, tt := range tests {
			assertLinked(t, tc.ex, tt.input, tt.want, KindWWW)
		}
	}
}

func TestWWWInternational(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"www.üñîçøðé.com/ä", "|www.üñîçøðé.com/ä|"},
		{"www.example.org/¡", "|www.example.org/¡|"},
		{"www.example.org/¢", "|www.example.org/¢|"},
		{"www.example.org/ more", "|www.example.org/| more"},
		{"ääwww.example.org", "ääwww.example.org"},
	}
	for _, tc := range kindConfigs(t, KindWWW) {
		for _, tt := range tests {
			assertLinked(t, tc.ex, tt.input, tt.want, KindWWW)
		}
	}
}

func TestWWWReplyLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{">www.example.org/", ">|www.example.org/|"},
		{"> www.example.org/", "> |www.example.org/|"},
		{">>www.example.org/", ">>|www.example.org/|"},
		{">> www.example.org/", ">> |www.example.org/|"},
		{"> > www.example.org/", "> > |www.example.org/|"},
		{">>>www.example.org/", ">>>|www.example.org/|"},
		{">>> www.example.org/", ">>> |www.example.org/|"},
		{"> > > www.example.org/", "> > > |www.example.org/|"},
	}
	for _, tc := range kindConfigs(t, KindWWW) {
		for _, tt := range tests {
			assertLinked(t, tc.ex, tt.input, tt.want, KindWWW)
		}
	}
}

func TestWWWHostLengthLimit(t *testing.T) {
	t.Parallel()
	ex := mustNew(t, WithKinds(KindWWW))
	// "www." + label + ".org" is exactly the longest host DNS allows.
	longest := "www." + strings.Repeat("a", maxHostLen-8) + ".org"
	if len(longest) != maxHostLen {
		t.Fatalf("bad fixture length %d", len(longest))
	}
	assertLinked(t, ex, longest+"/path", "|"+longest+"/path|", KindWWW)
	assertNotLinked(t, ex, "www."+strings.Repeat("a", maxHostLen-7)+".org")
	assertNotLinked(t, ex, "www."+strings.Repeat("a.", maxHostLen)+"org")
}
