package goldmarkext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"

	"pkt.systems/autolink"
)

func convert(t *testing.T, md goldmark.Markdown, src string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(src), &buf))
	return buf.String()
}

func TestLinkify_Paragraphs(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(Linkify))
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "www",
			src:  "Visit www.example.org today.",
			want: "<p>Visit <a href=\"http://www.example.org\">www.example.org</a> today.</p>\n",
		},
		{
			name: "email",
			src:  "Mail foo@example.com",
			want: "<p>Mail <a href=\"mailto:foo@example.com\">foo@example.com</a></p>\n",
		},
		{
			name: "url in parens",
			src:  "(see https://example.org/docs)",
			want: "<p>(see <a href=\"https://example.org/docs\">https://example.org/docs</a>)</p>\n",
		},
		{
			name: "soft line break",
			src:  "see www.example.org\nnext line",
			want: "<p>see <a href=\"http://www.example.org\">www.example.org</a>\nnext line</p>\n",
		},
		{
			name: "emphasis",
			src:  "*https://example.org*",
			want: "<p><em><a href=\"https://example.org\">https://example.org</a></em></p>\n",
		},
		{
			name: "intraword underscore",
			src:  "https://example.org/a_b_c",
			want: "<p><a href=\"https://example.org/a_b_c\">https://example.org/a_b_c</a></p>\n",
		},
		{
			name: "no links",
			src:  "Nothing to see.",
			want: "<p>Nothing to see.</p>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, convert(t, md, tt.src))
		})
	}
}

func TestLinkify_LeavesCodeAndLinksAlone(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(Linkify))

	require.Equal(t,
		"<p><a href=\"http://other.org\">www.example.org</a></p>\n",
		convert(t, md, "[www.example.org](http://other.org)"))
	require.Equal(t,
		"<p><code>www.example.org</code></p>\n",
		convert(t, md, "`www.example.org`"))
	require.Equal(t,
		"<pre><code>www.example.org\n</code></pre>\n",
		convert(t, md, "    www.example.org\n"))
	require.Equal(t,
		"<p><a href=\"https://example.org\">https://example.org</a></p>\n",
		convert(t, md, "<https://example.org>"))
}

func TestNew_CustomExtractorAndProtocol(t *testing.T) {
	ex, err := autolink.New(autolink.WithKinds(autolink.KindWWW))
	require.NoError(t, err)
	md := goldmark.New(goldmark.WithExtensions(New(ex, WithWWWProtocol("https"))))

	out := convert(t, md, "www.example.org and foo@example.com")
	require.Equal(t, "<p><a href=\"https://www.example.org\">www.example.org</a> and foo@example.com</p>\n", out)
}
